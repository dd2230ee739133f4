// ============================================================================
// strlab - String Manipulation Lab
// ============================================================================
//
// Package:     config
// Description: Configuration loading from TOML or YAML with env overrides
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/strlab/foundation/core/error"
	"github.com/msto63/strlab/foundation/core/errors"
	mdwlog "github.com/msto63/strlab/foundation/core/log"
)

// Environment variables consulted by Resolve and applyEnv
const (
	EnvConfigPath = "STRLAB_CONFIG"
	EnvLogLevel   = "STRLAB_LOG_LEVEL"
	EnvMaxN       = "STRLAB_MAX_N"
)

// Default values
const (
	DefaultName       = "strlab"
	DefaultLogLevel   = "warn"
	DefaultLogFormat  = "text"
	DefaultMaxN       = 50000
	DefaultWordsMode  = "strict"
	DefaultNormalize  = "none"
	DefaultConfigFile = "strlab.toml"
)

// Config holds the complete application configuration
type Config struct {
	General  GeneralConfig  `toml:"general" yaml:"general"`
	Sequence SequenceConfig `toml:"sequence" yaml:"sequence"`
	Words    WordsConfig    `toml:"words" yaml:"words"`
	Display  DisplayConfig  `toml:"display" yaml:"display"`

	// Source is the file the configuration was read from, empty for defaults
	Source string `toml:"-" yaml:"-"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name      string `toml:"name" yaml:"name"`
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// SequenceConfig limits the sequence benchmark
type SequenceConfig struct {
	MaxN int `toml:"max_n" yaml:"max_n"`
}

// WordsConfig holds sentence transformation defaults
type WordsConfig struct {
	DefaultMode string `toml:"default_mode" yaml:"default_mode"`
	Normalize   string `toml:"normalize" yaml:"normalize"`
}

// NormalizeNFC reports whether input should be NFC-normalized before transformation
func (w WordsConfig) NormalizeNFC() bool {
	return strings.EqualFold(w.Normalize, "nfc")
}

// DisplayConfig holds output settings
type DisplayConfig struct {
	// MaxSequenceChars truncates printed sequences; 0 prints them in full
	MaxSequenceChars int `toml:"max_sequence_chars" yaml:"max_sequence_chars"`
}

// Default returns a configuration with all defaults applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML file, or YAML when the extension
// is .yaml or .yml. Environment overrides are applied after decoding.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewErrorBuilder(errors.ModuleConfig).
				Operation("Load").
				Messagef("config file not found: %s", path).
				Code(mdwerror.CodeNotFound).
				Detail("path", path).
				Build()
		}
		return nil, errors.NewErrorBuilder(errors.ModuleConfig).
			Operation("Load").
			Message("failed to read config").
			Cause(err).
			Code(mdwerror.CodeConfigError).
			Severity(mdwerror.SeverityHigh).
			Detail("path", path).
			Build()
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		_, err = toml.Decode(string(data), &cfg)
	}
	if err != nil {
		return nil, errors.NewErrorBuilder(errors.ModuleConfig).
			Operation("Load").
			Message("failed to parse config").
			Cause(err).
			Code(mdwerror.CodeConfigError).
			Severity(mdwerror.SeverityHigh).
			Detail("path", path).
			Build()
	}

	cfg.Source = path
	cfg.applyDefaults()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Resolve finds and loads the configuration. An explicit path must exist.
// Otherwise STRLAB_CONFIG, ./strlab.toml and ~/.config/strlab/config.toml
// are tried in order, falling back to defaults when none exists.
func Resolve(explicitPath string) (*Config, error) {
	if explicitPath != "" {
		return Load(explicitPath)
	}
	if path := os.Getenv(EnvConfigPath); path != "" {
		return Load(path)
	}

	for _, p := range defaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}

	cfg := Default()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaultPaths() []string {
	paths := []string{"./" + DefaultConfigFile}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "strlab", "config.toml"))
	}
	return paths
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.General.Name == "" {
		c.General.Name = DefaultName
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = DefaultLogLevel
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = DefaultLogFormat
	}

	if c.Sequence.MaxN == 0 {
		c.Sequence.MaxN = DefaultMaxN
	}

	if c.Words.DefaultMode == "" {
		c.Words.DefaultMode = DefaultWordsMode
	}
	if c.Words.Normalize == "" {
		c.Words.Normalize = DefaultNormalize
	}
}

// applyEnv applies STRLAB_LOG_LEVEL and STRLAB_MAX_N
func (c *Config) applyEnv() error {
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.General.LogLevel = level
	}

	if raw := os.Getenv(EnvMaxN); raw != "" {
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return invalidConfig("applyEnv", EnvMaxN, raw, "an integer")
		}
		c.Sequence.MaxN = n
	}

	return nil
}

// Validate checks every setting and reports the first invalid one
func (c *Config) Validate() error {
	if _, err := mdwlog.ParseLevel(c.General.LogLevel); err != nil {
		return invalidConfig("Validate", "general.log_level", c.General.LogLevel, "trace, debug, info, warn, error or fatal")
	}
	if _, err := mdwlog.ParseFormat(c.General.LogFormat); err != nil {
		return invalidConfig("Validate", "general.log_format", c.General.LogFormat, "json, text, console or logfmt")
	}
	if c.Sequence.MaxN < 1 {
		return invalidConfig("Validate", "sequence.max_n", c.Sequence.MaxN, "a positive integer")
	}
	switch strings.ToLower(c.Words.DefaultMode) {
	case "strict", "ignore":
	default:
		return invalidConfig("Validate", "words.default_mode", c.Words.DefaultMode, "strict or ignore")
	}
	switch strings.ToLower(c.Words.Normalize) {
	case "none", "nfc":
	default:
		return invalidConfig("Validate", "words.normalize", c.Words.Normalize, "none or nfc")
	}
	if c.Display.MaxSequenceChars < 0 {
		return invalidConfig("Validate", "display.max_sequence_chars", c.Display.MaxSequenceChars, "zero or a positive integer")
	}
	return nil
}

func invalidConfig(operation, key string, value interface{}, expected string) error {
	return errors.NewErrorBuilder(errors.ModuleConfig).
		Operation(operation).
		Messagef("invalid config value %s=%v: want %s", key, value, expected).
		Code(mdwerror.CodeInvalidConfig).
		Severity(mdwerror.SeverityHigh).
		Detail("key", key).
		Detail("value", value).
		Build()
}
