// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across strlab. Codes are stable
//              strings so they can be logged and compared without depending
//              on message wording.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2025-10-18 v0.2.0: Trimmed to lab codes, added CodeInvalidArgument

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown         Code = "UNKNOWN"
	CodeInternal        Code = "INTERNAL"
	CodeNotFound        Code = "NOT_FOUND"
	CodeInvalidInput    Code = "INVALID_INPUT"
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeOperationFailed Code = "OPERATION_FAILED"

	// Configuration and environment
	CodeConfigError      Code = "CONFIG_ERROR"
	CodeInvalidConfig    Code = "INVALID_CONFIG"
	CodeEnvironmentError Code = "ENVIRONMENT_ERROR"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput, CodeInvalidArgument, CodeOperationFailed,
		CodeConfigError, CodeInvalidConfig, CodeEnvironmentError,
		CodeValidationFailed, CodeInvalidFormat, CodeValueOutOfRange:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeConfigError, CodeInvalidConfig, CodeEnvironmentError:
		return "configuration"
	case CodeInvalidArgument, CodeValidationFailed, CodeInvalidFormat, CodeValueOutOfRange:
		return "validation"
	default:
		return "generic"
	}
}

// ExitCode maps the error code to a process exit status for the CLI.
// Rejected input exits with 2, configuration problems with 3.
func (c Code) ExitCode() int {
	switch c.Category() {
	case "validation":
		return 2
	case "configuration":
		return 3
	default:
		return 1
	}
}
