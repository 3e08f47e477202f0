// Package results reads and writes lint results produced by external linters.
package results

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format is the encoding of a results file.
type Format uint8

const (
	// FormatAuto picks the format from the file extension.
	FormatAuto Format = iota
	// FormatJSON is the ESLint JSON formatter output.
	FormatJSON
	// FormatMsgpack carries the same fields as FormatJSON, msgpack-encoded.
	FormatMsgpack
)

func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatJSON:
		return "json"
	case FormatMsgpack:
		return "msgpack"
	}
	return "unknown"
}

// ParseFormat converts a flag or config value to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return FormatAuto, nil
	case "json":
		return FormatJSON, nil
	case "msgpack", "mp":
		return FormatMsgpack, nil
	default:
		return FormatAuto, fmt.Errorf("unknown results format %q (expected auto|json|msgpack)", s)
	}
}

// Resolve returns the concrete format for path. Auto falls back to JSON
// unless the extension names msgpack.
func (f Format) Resolve(path string) Format {
	if f != FormatAuto {
		return f
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".msgpack", ".mp":
		return FormatMsgpack
	default:
		return FormatJSON
	}
}
