// File: level.go
// Title: Log Level Definitions
// Description: Defines log levels for filtering and controlling log output.
//              Names, short tags and console colors come from one table.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with standard log levels
// - 2025-10-18 v0.2.0: Level metadata table, aliases resolved through it

package log

import (
	"strings"
)

// Level represents the importance level of a log message
type Level int

const (
	// LevelTrace covers per-item detail such as each timed strategy starting
	LevelTrace Level = iota

	// LevelDebug provides detailed information such as per-strategy timings
	LevelDebug

	// LevelInfo represents general informational messages
	LevelInfo

	// LevelWarn indicates rejected input or other recoverable situations
	LevelWarn

	// LevelError represents failed commands
	LevelError

	// LevelFatal represents errors that terminate the program
	LevelFatal

	// LevelAudit is always written regardless of the minimum level
	LevelAudit
)

type levelMeta struct {
	name    string
	short   string
	color   string
	aliases []string
}

var levels = [...]levelMeta{
	LevelTrace: {"trace", "TRC", "\033[37m", nil},
	LevelDebug: {"debug", "DBG", "\033[36m", nil},
	LevelInfo:  {"info", "INF", "\033[32m", []string{"information"}},
	LevelWarn:  {"warn", "WRN", "\033[33m", []string{"warning"}},
	LevelError: {"error", "ERR", "\033[31m", []string{"err"}},
	LevelFatal: {"fatal", "FTL", "\033[35m", nil},
	LevelAudit: {"audit", "AUD", "\033[34m", nil},
}

func (l Level) meta() (levelMeta, bool) {
	if l < LevelTrace || l > LevelAudit {
		return levelMeta{}, false
	}
	return levels[l], true
}

// String returns the lower-case level name, or "unknown"
func (l Level) String() string {
	if m, ok := l.meta(); ok {
		return m.name
	}
	return "unknown"
}

// ShortString returns the three-letter tag used by the text formatter
func (l Level) ShortString() string {
	if m, ok := l.meta(); ok {
		return m.short
	}
	return "???"
}

// Color returns the ANSI color sequence used by the console formatter
func (l Level) Color() string {
	if m, ok := l.meta(); ok {
		return m.color
	}
	return "\033[0m"
}

// ShouldLog returns true if this level should be logged given the minimum level
func (l Level) ShouldLog(minLevel Level) bool {
	return l == LevelAudit || l >= minLevel
}

// ParseLevel accepts a level name, its short tag or an alias, in any case
func ParseLevel(level string) (Level, error) {
	s := strings.ToLower(strings.TrimSpace(level))
	for i, m := range levels {
		if s == m.name || s == strings.ToLower(m.short) {
			return Level(i), nil
		}
		for _, alias := range m.aliases {
			if s == alias {
				return Level(i), nil
			}
		}
	}
	return LevelInfo, &ParseError{Input: level, Type: "level"}
}

// ParseError reports a log level or format that could not be parsed
type ParseError struct {
	Input string
	Type  string
}

func (e *ParseError) Error() string {
	return "invalid " + e.Type + ": " + e.Input
}

// DefaultLevel returns the default log level. The CLI writes task output to
// stdout, so only warnings and above are logged unless asked otherwise.
func DefaultLevel() Level {
	return LevelWarn
}
