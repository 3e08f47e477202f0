// Package style decorates report text for terminal output.
package style

import "github.com/fatih/color"

// Styler applies terminal styling to a piece of text.
type Styler interface {
	Bold(text string) string
	Red(text string) string
}

// Plain leaves text untouched.
type Plain struct{}

func (Plain) Bold(text string) string { return text }

func (Plain) Red(text string) string { return text }

// Color styles text with ANSI escape sequences.
type Color struct {
	bold *color.Color
	red  *color.Color
}

// NewColor returns a Color styler. When enabled is false the styler
// emits plain text regardless of the terminal.
func NewColor(enabled bool) *Color {
	c := &Color{
		bold: color.New(color.Bold),
		red:  color.New(color.FgRed),
	}
	if enabled {
		c.bold.EnableColor()
		c.red.EnableColor()
	} else {
		c.bold.DisableColor()
		c.red.DisableColor()
	}
	return c
}

func (c *Color) Bold(text string) string { return c.bold.Sprint(text) }

func (c *Color) Red(text string) string { return c.red.Sprint(text) }

// For returns a Color styler when enabled is true and Plain otherwise.
func For(enabled bool) Styler {
	if !enabled {
		return Plain{}
	}
	return NewColor(true)
}
