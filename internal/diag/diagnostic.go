package diag

import (
	"errors"
	"fmt"
)

// ErrInvalidInput reports a file result that does not have the expected shape.
var ErrInvalidInput = errors.New("invalid input")

// Message is a single lint message attached to a file.
type Message struct {
	RuleID    string   `json:"ruleId,omitempty" msgpack:"ruleId,omitempty"`
	Severity  Severity `json:"severity" msgpack:"severity"`
	Fatal     bool     `json:"fatal,omitempty" msgpack:"fatal,omitempty"`
	Message   string   `json:"message" msgpack:"message"`
	Line      *int     `json:"line,omitempty" msgpack:"line,omitempty"`
	Column    *int     `json:"column,omitempty" msgpack:"column,omitempty"`
	EndLine   *int     `json:"endLine,omitempty" msgpack:"endLine,omitempty"`
	EndColumn *int     `json:"endColumn,omitempty" msgpack:"endColumn,omitempty"`
	NodeType  string   `json:"nodeType,omitempty" msgpack:"nodeType,omitempty"`
}

// IsError reports whether the message counts as an error: fatal, or severity error.
func (m Message) IsError() bool {
	return m.Fatal || m.Severity == SevError
}

// IsWarning reports whether the message has warning severity.
func (m Message) IsWarning() bool {
	return m.Severity == SevWarning
}

// LineOrZero returns the 1-based line, or 0 when the message has no line.
func (m Message) LineOrZero() int {
	return valueOrZero(m.Line)
}

// ColumnOrZero returns the 1-based column, or 0 when the message has no column.
func (m Message) ColumnOrZero() int {
	return valueOrZero(m.Column)
}

func valueOrZero(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

// FileResult holds the messages produced for one file.
// ErrorCount and WarningCount are precomputed by the producer and trusted as given.
type FileResult struct {
	FilePath     string    `json:"filePath" msgpack:"filePath"`
	Messages     []Message `json:"messages" msgpack:"messages"`
	ErrorCount   int       `json:"errorCount" msgpack:"errorCount"`
	WarningCount int       `json:"warningCount" msgpack:"warningCount"`
}

// Validate checks the shape of a decoded file result.
func (f FileResult) Validate() error {
	if f.FilePath == "" {
		return fmt.Errorf("%w: missing filePath", ErrInvalidInput)
	}
	if f.ErrorCount < 0 {
		return fmt.Errorf("%w: %s: negative errorCount %d", ErrInvalidInput, f.FilePath, f.ErrorCount)
	}
	if f.WarningCount < 0 {
		return fmt.Errorf("%w: %s: negative warningCount %d", ErrInvalidInput, f.FilePath, f.WarningCount)
	}
	return nil
}

// Report is the ordered list of file results of one lint run.
type Report []FileResult

// Totals sums the precomputed per-file counts.
func (r Report) Totals() (errorCount, warningCount int) {
	for i := range r {
		errorCount += r[i].ErrorCount
		warningCount += r[i].WarningCount
	}
	return errorCount, warningCount
}
