package logging

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	mdwlog "github.com/msto63/strlab/foundation/core/log"
	"github.com/msto63/strlab/pkg/core/config"
)

func TestDefaultLoggerConfig(t *testing.T) {
	cfg := DefaultLoggerConfig("strlab")

	if cfg.Name != "strlab" {
		t.Errorf("Name = %v, want strlab", cfg.Name)
	}
	if cfg.Level != "warn" {
		t.Errorf("Level = %v, want warn", cfg.Level)
	}
	if cfg.Format != "text" {
		t.Errorf("Format = %v, want text", cfg.Format)
	}
}

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		level string
		want  mdwlog.Level
	}{
		{"debug", mdwlog.LevelDebug},
		{"info", mdwlog.LevelInfo},
		{"error", mdwlog.LevelError},
		{"bogus", mdwlog.LevelWarn},
		{"", mdwlog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger := NewLogger(LoggerConfig{Name: "t", Level: tt.level, Output: &bytes.Buffer{}})
			if got := logger.GetLevel(); got != tt.want {
				t.Errorf("GetLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewLogger_JSONWithAdditionalOutput(t *testing.T) {
	var primary, extra bytes.Buffer
	logger := NewLogger(LoggerConfig{
		Name:              "bench",
		Level:             "info",
		Format:            "json",
		Output:            &primary,
		AdditionalOutputs: []io.Writer{&extra},
	})

	logger.Info("measured", mdwlog.String("strategy", "BuilderAppendEnd"))

	for name, buf := range map[string]*bytes.Buffer{"primary": &primary, "extra": &extra} {
		var data map[string]interface{}
		if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
			t.Fatalf("%s output is not JSON: %v", name, err)
		}
		if data["logger"] != "bench" || data["strategy"] != "BuilderAppendEnd" {
			t.Errorf("%s output = %v", name, data)
		}
	}
}

func TestFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.General.LogLevel = "debug"
	cfg.General.LogFormat = "logfmt"

	var buf bytes.Buffer
	lc := FromConfig(cfg)
	lc.Output = &buf
	logger := NewLogger(lc)

	logger.Debug("hello")
	if !strings.Contains(buf.String(), `message="hello"`) || !strings.Contains(buf.String(), "level=debug") {
		t.Errorf("expected logfmt output, got %q", buf.String())
	}
	if lc.Name != "strlab" {
		t.Errorf("Name = %v, want strlab", lc.Name)
	}
}
