// File: utils.go
// Title: Shared Error Handling Utilities
// Description: Fluent error builder, the standard constructors used by all
//              strlab modules, and helpers to read module/operation details
//              back out of an error.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of shared error utilities
// - 2025-07-26 v0.1.1: Enhanced OutOfRange function with "validation failed:" prefix
// - 2025-10-18 v0.2.0: Added InvalidArgument, merged code table from standards.go

package errors

import (
	"fmt"

	mdwerror "github.com/msto63/strlab/foundation/core/error"
)

// Module identifiers for error categorization
const (
	ModuleSequence = "sequence"
	ModuleBench    = "bench"
	ModuleConfig   = "config"
	ModuleMenu     = "menu"
	ModuleCLI      = "cli"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	severity  mdwerror.Severity
	code      mdwerror.Code
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:   module,
		details:  make(map[string]interface{}),
		severity: mdwerror.SeverityMedium,
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Severity sets the error severity
func (eb *ErrorBuilder) Severity(severity mdwerror.Severity) *ErrorBuilder {
	eb.severity = severity
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code mdwerror.Code) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *mdwerror.Error {
	if eb.code == "" {
		eb.code = mdwerror.CodeOperationFailed
	}

	if eb.message == "" {
		if eb.operation != "" {
			eb.message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			eb.message = fmt.Sprintf("%s operation failed", eb.module)
		}
	}

	eb.details["module"] = eb.module
	if eb.operation != "" {
		eb.details["operation"] = eb.operation
	}

	var err *mdwerror.Error
	if eb.cause != nil {
		err = mdwerror.Wrap(eb.cause, eb.message)
	} else {
		err = mdwerror.New(eb.message)
	}

	op := eb.module
	if eb.operation != "" {
		op = eb.module + "." + eb.operation
	}

	return err.
		WithCode(eb.code).
		WithOperation(op).
		WithDetails(eb.details).
		WithSeverity(eb.severity)
}

// InvalidArgument reports a violated precondition on a named argument
func InvalidArgument(module, operation, argument string, value interface{}, expected string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid argument %s=%v for %s.%s: want %s", argument, value, module, operation, expected).
		Code(mdwerror.CodeInvalidArgument).
		Detail("argument", argument).
		Detail("value", value).
		Detail("expected", expected).
		Severity(mdwerror.SeverityLow).
		Build()
}

// InvalidInput creates a standardized invalid input error
func InvalidInput(module, operation string, input interface{}, expected string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid input for %s.%s", module, operation).
		Code(mdwerror.CodeInvalidInput).
		Detail("input", input).
		Detail("expected", expected).
		Severity(mdwerror.SeverityLow).
		Build()
}

// OutOfRange creates a standardized out of range error
func OutOfRange(module, operation string, value, min, max interface{}) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("validation failed: value %v out of range [%v, %v] in %s.%s", value, min, max, module, operation).
		Code(mdwerror.CodeValueOutOfRange).
		Detail("value", value).
		Detail("min", min).
		Detail("max", max).
		Severity(mdwerror.SeverityLow).
		Build()
}

// OperationFailed creates a standardized operation failure error
func OperationFailed(module, operation string, cause error) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s operation failed", module, operation).
		Cause(cause).
		Code(mdwerror.CodeOperationFailed).
		Severity(mdwerror.SeverityHigh).
		Build()
}

// Internal reports a broken invariant
func Internal(module, operation, message string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(message).
		Code(mdwerror.CodeInternal).
		Severity(mdwerror.SeverityCritical).
		Build()
}

// ExtractDetails extracts all details from a structured error
func ExtractDetails(err error) map[string]interface{} {
	if e, ok := mdwerror.As(err); ok {
		return e.Details()
	}
	return nil
}

// GetErrorModule extracts the module name from a standardized error
func GetErrorModule(err error) string {
	if module, ok := ExtractDetails(err)["module"].(string); ok {
		return module
	}
	return ""
}

// GetErrorOperation extracts the operation name from a standardized error
func GetErrorOperation(err error) string {
	if operation, ok := ExtractDetails(err)["operation"].(string); ok {
		return operation
	}
	return ""
}

// IsModuleError checks if an error belongs to a specific module
func IsModuleError(err error, module string) bool {
	return GetErrorModule(err) == module
}

// IsModuleOperation checks if error is from specific module and operation
func IsModuleOperation(err error, module, operation string) bool {
	return GetErrorModule(err) == module && GetErrorOperation(err) == operation
}
