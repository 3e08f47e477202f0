package results

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"lintab/internal/diag"
)

// Decode reads one results document from r. Every file result is validated;
// a null messages list becomes an empty one.
func Decode(r io.Reader, f Format) (diag.Report, error) {
	var report diag.Report
	switch f {
	case FormatJSON, FormatAuto:
		if err := json.NewDecoder(r).Decode(&report); err != nil {
			return nil, fmt.Errorf("failed to decode JSON results: %w", err)
		}
	case FormatMsgpack:
		if err := msgpack.NewDecoder(r).Decode(&report); err != nil {
			return nil, fmt.Errorf("failed to decode msgpack results: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported results format: %v", f)
	}

	for i := range report {
		if err := report[i].Validate(); err != nil {
			return nil, fmt.Errorf("result %d: %w", i, err)
		}
		if report[i].Messages == nil {
			report[i].Messages = []diag.Message{}
		}
	}
	return report, nil
}

// Encode writes report to w in format f. FormatAuto encodes JSON.
func Encode(w io.Writer, report diag.Report, f Format) error {
	if report == nil {
		report = diag.Report{}
	}
	switch f {
	case FormatJSON, FormatAuto:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to encode JSON results: %w", err)
		}
	case FormatMsgpack:
		if err := msgpack.NewEncoder(w).Encode(report); err != nil {
			return fmt.Errorf("failed to encode msgpack results: %w", err)
		}
	default:
		return fmt.Errorf("unsupported results format: %v", f)
	}
	return nil
}
