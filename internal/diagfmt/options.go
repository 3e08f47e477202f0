package diagfmt

import (
	"github.com/gertd/go-pluralize"

	"lintab/internal/style"
	"lintab/internal/table"
)

// Pluralizer renders a noun for a count. *pluralize.Client satisfies it.
type Pluralizer interface {
	Pluralize(word string, count int, inclusive bool) string
}

// ColumnWidths sets the content width of each report column.
// Zero fields fall back to the defaults.
type ColumnWidths struct {
	Line    int
	Column  int
	Type    int
	Message int
	RuleID  int
	Summary int
}

// DefaultWidths is the stock report layout.
var DefaultWidths = ColumnWidths{
	Line:    8,
	Column:  8,
	Type:    8,
	Message: 50,
	RuleID:  20,
	Summary: 110,
}

func (w ColumnWidths) withDefaults() ColumnWidths {
	pick := func(v, def int) int {
		if v <= 0 {
			return def
		}
		return v
	}
	return ColumnWidths{
		Line:    pick(w.Line, DefaultWidths.Line),
		Column:  pick(w.Column, DefaultWidths.Column),
		Type:    pick(w.Type, DefaultWidths.Type),
		Message: pick(w.Message, DefaultWidths.Message),
		RuleID:  pick(w.RuleID, DefaultWidths.RuleID),
		Summary: pick(w.Summary, DefaultWidths.Summary),
	}
}

// TableOpts configures the table report.
type TableOpts struct {
	Styler     style.Styler // nil renders plain text
	Pluralizer Pluralizer   // nil uses the English pluralization rules
	Border     *table.Border
	Widths     ColumnWidths
}

func (o TableOpts) withDefaults() TableOpts {
	if o.Styler == nil {
		o.Styler = style.Plain{}
	}
	if o.Pluralizer == nil {
		o.Pluralizer = pluralize.NewClient()
	}
	if o.Border == nil {
		b := table.Honeywell
		o.Border = &b
	}
	o.Widths = o.Widths.withDefaults()
	return o
}
