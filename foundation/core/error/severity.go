// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. The logger picks its
//              output level from the severity of the error it is given.
// Author: msto63
// Version: v0.1.0
// Created: 2025-01-24
// Modified: 2025-01-24
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error such as invalid user input
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects one operation only
	SeverityMedium

	// SeverityHigh indicates a serious error such as an unreadable config file
	SeverityHigh

	// SeverityCritical indicates a broken invariant inside the program
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level should be surfaced loudly
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical

	case CodeConfigError, CodeEnvironmentError:
		return SeverityHigh

	case CodeInvalidInput, CodeInvalidArgument, CodeNotFound, CodeValidationFailed,
		CodeInvalidFormat, CodeValueOutOfRange, CodeInvalidConfig:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
