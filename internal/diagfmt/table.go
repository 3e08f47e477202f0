package diagfmt

import (
	"strconv"
	"strings"

	"lintab/internal/diag"
	"lintab/internal/style"
	"lintab/internal/table"
)

var headerCells = [...]string{"Line", "Column", "Type", "Message", "Rule ID"}

// messageColumn reserves extra space on the right of the message text.
const messageColumn = 3

// Renderer draws lint results as one table per file followed by an error
// summary. A Renderer is safe for concurrent use.
type Renderer struct {
	opts TableOpts
}

// NewRenderer returns a Renderer with opts, filling unset fields with defaults.
func NewRenderer(opts TableOpts) *Renderer {
	return &Renderer{opts: opts.withDefaults()}
}

// Render draws report with the default layout.
// The second result is false when the report holds no errors.
func Render(report diag.Report, styler style.Styler) (string, bool) {
	return NewRenderer(TableOpts{Styler: styler}).Render(report)
}

// Render draws report. It returns false, and no text, when the summed error
// count of the report is zero, whatever the number of warnings.
func (r *Renderer) Render(report diag.Report) (string, bool) {
	errorCount, _ := report.Totals()
	if errorCount == 0 {
		return "", false
	}

	var b strings.Builder
	for i := range report {
		block, ok := r.fileBlock(report[i])
		if !ok {
			continue
		}
		b.WriteString(block)
	}
	b.WriteByte('\n')
	b.WriteString(r.summary(errorCount))
	return b.String(), true
}

// fileBlock renders the header and table for one file, or false when the file
// has nothing to show.
func (r *Renderer) fileBlock(f diag.FileResult) (string, bool) {
	if !fileVisible(f) {
		return "", false
	}
	tbl, ok := r.buildTable(withoutWarnings(f.Messages))
	if !ok {
		return "", false
	}
	return "\n" + f.FilePath + "\n\n" + tbl, true
}

// fileVisible reports whether a file has any message that is not a warning.
// The check is looser than the row filter: a file whose only non-warning
// messages are not errors passes here and is then dropped by buildTable.
func fileVisible(f diag.FileResult) bool {
	if len(f.Messages) == 0 {
		return false
	}
	for i := range f.Messages {
		if !f.Messages[i].IsWarning() {
			return true
		}
	}
	return false
}

func withoutWarnings(msgs []diag.Message) []diag.Message {
	out := make([]diag.Message, 0, len(msgs))
	for _, m := range msgs {
		if !m.IsWarning() {
			out = append(out, m)
		}
	}
	return out
}

// buildTable draws one row per error-equivalent message, in input order,
// under a bold header. It returns false when no message qualifies.
func (r *Renderer) buildTable(msgs []diag.Message) (string, bool) {
	rows := make([][]string, 0, len(msgs)+1)
	header := make([]string, len(headerCells))
	for i, h := range headerCells {
		header[i] = r.opts.Styler.Bold(h)
	}
	rows = append(rows, header)

	for _, m := range msgs {
		if !m.IsError() {
			continue
		}
		rows = append(rows, []string{
			strconv.Itoa(m.LineOrZero()),
			strconv.Itoa(m.ColumnOrZero()),
			r.opts.Styler.Red("error"),
			m.Message,
			m.RuleID,
		})
	}
	if len(rows) == 1 {
		return "", false
	}

	w := r.opts.Widths
	columns := map[int]table.Column{
		0: wordColumn(w.Line),
		1: wordColumn(w.Column),
		2: wordColumn(w.Type),
		3: wordColumn(w.Message),
		4: wordColumn(w.RuleID),
	}
	msgCol := columns[messageColumn]
	msgCol.PaddingRight = 5
	columns[messageColumn] = msgCol

	return table.Render(rows, table.Config{
		Columns: columns,
		Border:  *r.opts.Border,
		DrawHorizontalLine: func(index, _ int) bool {
			return index == 1
		},
	}), true
}

// summary draws the boxed "<N> Error(s)" line.
func (r *Renderer) summary(errorCount int) string {
	text := r.opts.Pluralizer.Pluralize("Error", errorCount, true)
	return table.Render([][]string{{r.opts.Styler.Red(text)}}, table.Config{
		Columns: map[int]table.Column{0: wordColumn(r.opts.Widths.Summary)},
		Border:  *r.opts.Border,
	})
}

func wordColumn(width int) table.Column {
	col := table.NewColumn(width)
	col.Wrap = table.WrapWord
	return col
}
