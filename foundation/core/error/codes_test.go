// File: codes_test.go
// Title: Error Code Tests
// Description: Tests for code validity, categories and CLI exit status mapping.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-18

package error

import "testing"

func TestCodeIsValid(t *testing.T) {
	tests := []struct {
		code Code
		want bool
	}{
		{CodeUnknown, true},
		{CodeInvalidArgument, true},
		{CodeValueOutOfRange, true},
		{CodeInvalidConfig, true},
		{Code("NOT_A_CODE"), false},
		{Code(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if got := tt.code.IsValid(); got != tt.want {
				t.Errorf("IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCodeCategory(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{CodeInvalidArgument, "validation"},
		{CodeValueOutOfRange, "validation"},
		{CodeConfigError, "configuration"},
		{CodeInvalidConfig, "configuration"},
		{CodeInternal, "generic"},
		{CodeUnknown, "generic"},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if got := tt.code.Category(); got != tt.want {
				t.Errorf("Category() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCodeExitCode(t *testing.T) {
	if got := CodeInvalidArgument.ExitCode(); got != 2 {
		t.Errorf("ExitCode(INVALID_ARGUMENT) = %d, want 2", got)
	}
	if got := CodeConfigError.ExitCode(); got != 3 {
		t.Errorf("ExitCode(CONFIG_ERROR) = %d, want 3", got)
	}
	if got := CodeInternal.ExitCode(); got != 1 {
		t.Errorf("ExitCode(INTERNAL) = %d, want 1", got)
	}
}
