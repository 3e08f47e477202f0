package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fortio.org/safecast"
	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"lintab/internal/diagfmt"
	"lintab/internal/results"
	"lintab/internal/table"
)

const configFileName = "lintab.toml"

// maxLayoutWidth is the widest column that still wraps at word boundaries.
const maxLayoutWidth = table.MaxWordWrapWidth

type fileConfig struct {
	Output outputConfig `toml:"output"`
	Layout layoutConfig `toml:"layout"`
}

type outputConfig struct {
	Color  string `toml:"color"`
	Border string `toml:"border"`
	Format string `toml:"format"`
}

type layoutConfig struct {
	MessageWidth int64 `toml:"message_width"`
	RuleWidth    int64 `toml:"rule_width"`
	SummaryWidth int64 `toml:"summary_width"`
}

// settings is the effective configuration after merging lintab.toml and flags.
type settings struct {
	color  colorMode
	border table.Border
	format results.Format
	widths diagfmt.ColumnWidths
	source string // config path, empty when none was found
}

func defaultSettings() settings {
	return settings{
		color:  colorModeAuto,
		border: table.Honeywell,
		format: results.FormatAuto,
		widths: diagfmt.DefaultWidths,
	}
}

func findConfig(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, configFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// loadConfigFile applies the values defined in path on top of s.
func loadConfigFile(path string, s settings) (settings, error) {
	var cfg fileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return s, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return s, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	s.source = path

	if meta.IsDefined("output", "color") {
		if s.color, err = readColorMode(cfg.Output.Color); err != nil {
			return s, fmt.Errorf("%s: [output].color: %w", path, err)
		}
	}
	if meta.IsDefined("output", "border") {
		if s.border, err = table.BorderByName(cfg.Output.Border); err != nil {
			return s, fmt.Errorf("%s: [output].border: %w", path, err)
		}
	}
	if meta.IsDefined("output", "format") {
		if s.format, err = results.ParseFormat(cfg.Output.Format); err != nil {
			return s, fmt.Errorf("%s: [output].format: %w", path, err)
		}
	}

	widths := []struct {
		key string
		raw int64
		dst *int
	}{
		{"message_width", cfg.Layout.MessageWidth, &s.widths.Message},
		{"rule_width", cfg.Layout.RuleWidth, &s.widths.RuleID},
		{"summary_width", cfg.Layout.SummaryWidth, &s.widths.Summary},
	}
	for _, w := range widths {
		if !meta.IsDefined("layout", w.key) {
			continue
		}
		v, err := safecast.Conv[int](w.raw)
		if err != nil {
			return s, fmt.Errorf("%s: [layout].%s: %w", path, w.key, err)
		}
		if v <= 0 || v > maxLayoutWidth {
			return s, fmt.Errorf("%s: [layout].%s must be between 1 and %d, got %d", path, w.key, maxLayoutWidth, v)
		}
		*w.dst = v
	}
	return s, nil
}

// resolveSettings merges defaults, lintab.toml and command-line flags, in
// that order of precedence from lowest to highest.
func resolveSettings(cmd *cobra.Command) (settings, error) {
	s := defaultSettings()
	flags := cmd.Flags()

	configPath, err := flags.GetString("config")
	if err != nil {
		return s, fmt.Errorf("failed to get config flag: %w", err)
	}
	if configPath == "" {
		found, ok, err := findConfig(".")
		if err != nil {
			return s, err
		}
		if ok {
			configPath = found
		}
	}
	if configPath != "" {
		if s, err = loadConfigFile(configPath, s); err != nil {
			return s, err
		}
	}

	if flags.Changed("color") {
		value, err := flags.GetString("color")
		if err != nil {
			return s, fmt.Errorf("failed to get color flag: %w", err)
		}
		if s.color, err = readColorMode(value); err != nil {
			return s, err
		}
	}
	if f := flags.Lookup("border"); f != nil && f.Changed {
		if s.border, err = table.BorderByName(f.Value.String()); err != nil {
			return s, err
		}
	}
	if f := flags.Lookup("format"); f != nil && f.Changed {
		if s.format, err = results.ParseFormat(f.Value.String()); err != nil {
			return s, err
		}
	}
	return s, nil
}
