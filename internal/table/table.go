// Package table lays out a grid of cell strings as a fixed-width text table.
//
// Columns have a content width and padding; content that does not fit is
// wrapped onto additional lines of the same row. Horizontal rules are drawn
// at line indexes chosen by Config.DrawHorizontalLine: index 0 is the top
// border, index len(rows) the bottom border, and index i the rule between
// row i-1 and row i.
package table

import "strings"

// Alignment positions content within a column.
type Alignment uint8

const (
	AlignLeft Alignment = iota
	AlignRight
	AlignCenter
)

// WrapMode selects how overlong cells are split.
type WrapMode uint8

const (
	// WrapChar cuts every Width characters.
	WrapChar WrapMode = iota
	// WrapWord breaks at whitespace or separators where possible. Columns
	// wider than MaxWordWrapWidth fall back to WrapChar.
	WrapWord
)

// Column configures one table column.
type Column struct {
	Width        int // content width; 0 means the widest cell
	Wrap         WrapMode
	PaddingLeft  int
	PaddingRight int
	Align        Alignment
	Truncate     int // 0 disables truncation
}

// NewColumn returns a left-aligned column of the given width with one space
// of padding on each side.
func NewColumn(width int) Column {
	return Column{Width: width, PaddingLeft: 1, PaddingRight: 1}
}

// Config describes how to render a table.
type Config struct {
	// Columns overrides the layout per column index. Missing columns use
	// NewColumn(0).
	Columns map[int]Column
	Border  Border
	// DrawHorizontalLine reports whether to draw the rule at index for a
	// table of size rows. Nil draws every rule.
	DrawHorizontalLine func(index, size int) bool
}

func (c Config) drawLine(index, size int) bool {
	if c.DrawHorizontalLine == nil {
		return true
	}
	return c.DrawHorizontalLine(index, size)
}

// Render lays rows out according to cfg. Each output line, including the
// last, ends with a newline. Rows shorter than the widest row are padded
// with empty cells.
func Render(rows [][]string, cfg Config) string {
	if len(rows) == 0 {
		return ""
	}
	columns := resolveColumns(rows, cfg.Columns)

	sizes := make([]int, len(columns))
	for i, col := range columns {
		sizes[i] = col.PaddingLeft + col.Width + col.PaddingRight
	}

	var b strings.Builder
	size := len(rows)
	if cfg.drawLine(0, size) {
		drawRule(&b, sizes, cfg.Border.TopLeft, cfg.Border.TopBody, cfg.Border.TopJoin, cfg.Border.TopRight)
	}
	for i, row := range rows {
		drawRow(&b, row, columns, cfg.Border)
		if i < size-1 && cfg.drawLine(i+1, size) {
			drawRule(&b, sizes, cfg.Border.JoinLeft, cfg.Border.JoinBody, cfg.Border.JoinJoin, cfg.Border.JoinRight)
		}
	}
	if cfg.drawLine(size, size) {
		drawRule(&b, sizes, cfg.Border.BottomLeft, cfg.Border.BottomBody, cfg.Border.BottomJoin, cfg.Border.BottomRight)
	}
	return b.String()
}

func resolveColumns(rows [][]string, overrides map[int]Column) []Column {
	count := 0
	for _, row := range rows {
		count = max(count, len(row))
	}
	columns := make([]Column, count)
	for i := range columns {
		col, ok := overrides[i]
		if !ok {
			col = NewColumn(0)
		}
		col.PaddingLeft = max(col.PaddingLeft, 0)
		col.PaddingRight = max(col.PaddingRight, 0)
		if col.Width <= 0 {
			for _, row := range rows {
				if i < len(row) {
					col.Width = max(col.Width, displayWidth(prepare(row[i], col)))
				}
			}
		}
		columns[i] = col
	}
	return columns
}

func drawRow(b *strings.Builder, row []string, columns []Column, border Border) {
	cells := make([][]string, len(columns))
	height := 1
	for i, col := range columns {
		text := ""
		if i < len(row) {
			text = row[i]
		}
		cells[i] = split(prepare(text, col), col)
		height = max(height, len(cells[i]))
	}
	for line := 0; line < height; line++ {
		b.WriteString(border.BodyLeft)
		for i, col := range columns {
			if i > 0 {
				b.WriteString(border.BodyJoin)
			}
			chunk := ""
			if line < len(cells[i]) {
				chunk = cells[i][line]
			}
			b.WriteString(strings.Repeat(" ", col.PaddingLeft))
			b.WriteString(align(chunk, col.Width, col.Align))
			b.WriteString(strings.Repeat(" ", col.PaddingRight))
		}
		b.WriteString(border.BodyRight)
		b.WriteByte('\n')
	}
}
