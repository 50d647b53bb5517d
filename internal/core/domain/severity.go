package domain

import "fmt"

// Severity ranks a clause issue. The set of severities is closed.
type Severity string

// Available severities.
const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// IsValid returns true if the severity is recognised.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityHigh, SeverityMedium, SeverityLow:
		return true
	default:
		return false
	}
}

// String returns the string representation of the severity.
func (s Severity) String() string {
	return string(s)
}

// ParseSeverity converts a string to a Severity.
// Matching is exact; "High" is rejected.
func ParseSeverity(s string) (Severity, error) {
	sev := Severity(s)
	if !sev.IsValid() {
		return "", fmt.Errorf("%w %q", ErrUnknownSeverity, s)
	}
	return sev, nil
}
