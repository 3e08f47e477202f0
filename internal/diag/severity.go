package diag

// Severity is the numeric severity reported by a lint rule.
// Values other than the named ones can arrive from external tools and are kept as is.
type Severity uint8

const (
	// SevOff marks a message from a rule that is switched off.
	SevOff Severity = iota
	// SevWarning is for warning messages.
	SevWarning
	// SevError is for error messages.
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevOff:
		return "off"
	case SevWarning:
		return "warning"
	case SevError:
		return "error"
	}
	return "unknown"
}
