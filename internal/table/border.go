package table

import (
	"fmt"
	"strings"
)

// Border holds the characters used to draw a table frame.
type Border struct {
	TopBody, TopJoin, TopLeft, TopRight             string
	BottomBody, BottomJoin, BottomLeft, BottomRight string
	BodyLeft, BodyRight, BodyJoin                   string
	JoinBody, JoinLeft, JoinRight, JoinJoin         string
}

var (
	// Honeywell draws a double outer frame with single inner lines.
	Honeywell = Border{
		TopBody: "═", TopJoin: "╤", TopLeft: "╔", TopRight: "╗",
		BottomBody: "═", BottomJoin: "╧", BottomLeft: "╚", BottomRight: "╝",
		BodyLeft: "║", BodyRight: "║", BodyJoin: "│",
		JoinBody: "─", JoinLeft: "╟", JoinRight: "╢", JoinJoin: "┼",
	}

	// Norc draws single box-drawing lines.
	Norc = Border{
		TopBody: "─", TopJoin: "┬", TopLeft: "┌", TopRight: "┐",
		BottomBody: "─", BottomJoin: "┴", BottomLeft: "└", BottomRight: "┘",
		BodyLeft: "│", BodyRight: "│", BodyJoin: "│",
		JoinBody: "─", JoinLeft: "├", JoinRight: "┤", JoinJoin: "┼",
	}

	// Ramac uses ASCII only.
	Ramac = Border{
		TopBody: "-", TopJoin: "+", TopLeft: "+", TopRight: "+",
		BottomBody: "-", BottomJoin: "+", BottomLeft: "+", BottomRight: "+",
		BodyLeft: "|", BodyRight: "|", BodyJoin: "|",
		JoinBody: "-", JoinLeft: "|", JoinRight: "|", JoinJoin: "|",
	}

	// Void draws no frame at all.
	Void = Border{}
)

// BorderByName resolves honeywell|norc|ramac|void.
func BorderByName(name string) (Border, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "honeywell":
		return Honeywell, nil
	case "norc":
		return Norc, nil
	case "ramac":
		return Ramac, nil
	case "void":
		return Void, nil
	default:
		return Border{}, fmt.Errorf("unknown border %q (expected honeywell|norc|ramac|void)", name)
	}
}

func drawRule(b *strings.Builder, sizes []int, left, body, join, right string) {
	if left == "" && body == "" && join == "" && right == "" {
		return
	}
	b.WriteString(left)
	for i, size := range sizes {
		if i > 0 {
			b.WriteString(join)
		}
		b.WriteString(strings.Repeat(body, size))
	}
	b.WriteString(right)
	b.WriteByte('\n')
}
