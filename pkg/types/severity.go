package types

import "fmt"

// Severity ranks a check outcome. The zero value is SeverityPass.
type Severity int

const (
	SeverityPass Severity = iota
	SeverityWarn
	SeverityFail
)

// String returns the lowercase name of the severity
func (s Severity) String() string {
	switch s {
	case SeverityPass:
		return "pass"
	case SeverityWarn:
		return "warn"
	case SeverityFail:
		return "fail"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// Worse returns the more severe of s and other
func (s Severity) Worse(other Severity) Severity {
	if other > s {
		return other
	}
	return s
}

// ExitCode is the process exit status derived from a report
type ExitCode int

const (
	ExitOK       ExitCode = 0
	ExitWarnings ExitCode = 1
	ExitFailures ExitCode = 2
)
