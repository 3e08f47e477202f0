package table

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/unicode/norm"
)

// displayWidth is the number of terminal cells text occupies, ignoring ANSI
// escape sequences.
func displayWidth(text string) int {
	return lipgloss.Width(text)
}

func hasEscapes(text string) bool {
	return strings.ContainsRune(text, '\x1b')
}

// prepare normalises a cell and applies truncation. Styling survives only when
// the cell fits its column unwrapped.
func prepare(text string, col Column) string {
	text = norm.NFC.String(text)
	if col.Truncate > 0 && displayWidth(text) > col.Truncate {
		text = runewidth.Truncate(ansi.Strip(text), col.Truncate, "…")
	}
	return text
}

func split(text string, col Column) []string {
	if !strings.Contains(text, "\n") && displayWidth(text) <= col.Width {
		return []string{text}
	}
	if hasEscapes(text) {
		text = ansi.Strip(text)
	}
	if col.Wrap == WrapWord {
		return wrapWord(text, col.Width)
	}
	return wrapChar(text, col.Width)
}

func align(text string, width int, a Alignment) string {
	gap := width - displayWidth(text)
	if gap <= 0 {
		return text
	}
	switch a {
	case AlignRight:
		return strings.Repeat(" ", gap) + text
	case AlignCenter:
		left := gap / 2
		return strings.Repeat(" ", left) + text + strings.Repeat(" ", gap-left)
	default:
		return text + strings.Repeat(" ", gap)
	}
}
