// File: logger_test.go
// Title: Logger Tests
// Description: Tests for level filtering, context fields, formatters,
//              structured error logging and caller reporting.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial logger tests
// - 2025-10-18 v0.2.0: Rewritten for synchronous logger

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	mdwerror "github.com/msto63/strlab/foundation/core/error"
)

func newTestLogger(buf *bytes.Buffer, level Level, format Format) *Logger {
	return NewWithConfig(Config{
		Level:  level,
		Format: format,
		Output: buf,
		Name:   "test",
	})
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelWarn, FormatText)

	logger.Debug("debug message")
	logger.Info("info message")
	if buf.Len() != 0 {
		t.Fatalf("expected no output below warn, got %q", buf.String())
	}

	logger.Warn("warn message")
	if !strings.Contains(buf.String(), "[WRN] {test} warn message") {
		t.Errorf("unexpected warn output: %q", buf.String())
	}

	buf.Reset()
	logger.Trace("trace message")
	if buf.Len() != 0 {
		t.Errorf("trace should be filtered at warn: %q", buf.String())
	}

	newTestLogger(&buf, LevelTrace, FormatText).Trace("trace message")
	if !strings.Contains(buf.String(), "[TRC] {test} trace message") {
		t.Errorf("unexpected trace output: %q", buf.String())
	}
}

func TestLoggerWithName(t *testing.T) {
	var buf bytes.Buffer
	base := newTestLogger(&buf, LevelInfo, FormatText)
	base.WithName("bench").Info("named")
	base.Info("unnamed")

	out := buf.String()
	if !strings.Contains(out, "{bench} named") {
		t.Errorf("renamed logger not used: %q", out)
	}
	if !strings.Contains(out, "{test} unnamed") {
		t.Errorf("base logger name changed: %q", out)
	}
}

func TestLoggerWithFieldIsImmutable(t *testing.T) {
	var buf bytes.Buffer
	base := newTestLogger(&buf, LevelInfo, FormatText)
	child := base.WithField("run_id", "abc").WithField("n", 3)

	base.Info("base")
	if strings.Contains(buf.String(), "run_id") {
		t.Errorf("base logger picked up child fields: %q", buf.String())
	}

	buf.Reset()
	child.Info("child", Int("n", 5))
	out := buf.String()
	if !strings.Contains(out, "run_id=abc") {
		t.Errorf("missing context field: %q", out)
	}
	if !strings.Contains(out, "n=5") {
		t.Errorf("call fields should override context fields: %q", out)
	}
}

func TestLoggerJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelDebug, FormatJSON)

	logger.Info("hello", String("strategy", "builder"))

	var data map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if data["message"] != "hello" {
		t.Errorf("message = %v", data["message"])
	}
	if data["level"] != "info" {
		t.Errorf("level = %v", data["level"])
	}
	if data["strategy"] != "builder" {
		t.Errorf("strategy = %v", data["strategy"])
	}
	if data["logger"] != "test" {
		t.Errorf("logger = %v", data["logger"])
	}
}

func TestLoggerWarnWithErr(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelWarn, FormatText)

	logger.WarnWithErr("input rejected", errors.New("not a number"), String("task", "1"))
	out := buf.String()
	if !strings.Contains(out, "[WRN] {test} input rejected [task=1]") {
		t.Errorf("unexpected warn output: %q", out)
	}
	if !strings.Contains(out, `error="not a number"`) {
		t.Errorf("missing error text: %q", out)
	}
}

func TestLoggerLogError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
		wantText  []string
	}{
		{
			name:      "low severity logs at info",
			err:       mdwerror.New("bad n").WithCode(mdwerror.CodeInvalidArgument).WithDetail("n", 0),
			wantLevel: "[INF]",
			wantText:  []string{"error_code=INVALID_ARGUMENT", "error_n=0"},
		},
		{
			name:      "critical severity logs at error",
			err:       mdwerror.New("mismatch").WithCode(mdwerror.CodeInternal),
			wantLevel: "[ERR]",
			wantText:  []string{"error_severity=critical"},
		},
		{
			name:      "plain errors log at error",
			err:       errors.New("plain"),
			wantLevel: "[ERR]",
			wantText:  []string{"plain"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newTestLogger(&buf, LevelTrace, FormatText)
			logger.LogError(tt.err)

			out := buf.String()
			if !strings.Contains(out, tt.wantLevel) {
				t.Errorf("want level %s in %q", tt.wantLevel, out)
			}
			for _, want := range tt.wantText {
				if !strings.Contains(out, want) {
					t.Errorf("want %q in %q", want, out)
				}
			}
		})
	}

	var buf bytes.Buffer
	newTestLogger(&buf, LevelTrace, FormatText).LogError(nil)
	if buf.Len() != 0 {
		t.Error("LogError(nil) should not write")
	}
}

func TestLoggerReportsCaller(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{
		Level:        LevelInfo,
		Format:       FormatText,
		Output:       &buf,
		EnableCaller: true,
	})

	logger.Info("where")
	if !strings.Contains(buf.String(), "(logger_test.go:") {
		t.Errorf("caller should point at the test file: %q", buf.String())
	}
}

func TestNewNopDiscards(t *testing.T) {
	logger := NewNop()
	if logger.IsLevelEnabled(LevelError) {
		t.Error("nop logger should not enable error")
	}
	logger.Error("ignored")
}
