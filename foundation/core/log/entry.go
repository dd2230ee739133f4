// File: entry.go
// Title: Log Entry Structure
// Description: Defines the log entry that holds one message with its level,
//              fields, error and optional duration.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive log entry structure
// - 2025-10-18 v0.2.0: Removed request/user/correlation context, added SortedKeys,
//                      field sets are merged when the entry is built

package log

import (
	"sort"
	"time"
)

// Entry is one log record as handed to a Formatter
type Entry struct {
	Timestamp time.Time
	Level     Level
	Message   string
	Logger    string

	Fields Fields
	Error  error

	// Duration is set by Timer completions
	Duration time.Duration

	Caller *CallerInfo
}

// CallerInfo locates the log call in the source
type CallerInfo struct {
	Function string
	File     string
	Line     int
}

// Fields holds the key-value pairs attached to an entry
type Fields map[string]interface{}

// Int creates an integer field
func Int(key string, value int) Fields {
	return Fields{key: value}
}

// String creates a string field
func String(key string, value string) Fields {
	return Fields{key: value}
}

// Clone returns a shallow copy, or nil for nil
func (f Fields) Clone() Fields {
	if f == nil {
		return nil
	}
	result := make(Fields, len(f))
	for k, v := range f {
		result[k] = v
	}
	return result
}

// SortedKeys returns the field keys in lexical order
func (f Fields) SortedKeys() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// NewEntry builds an entry stamped with the current time. Later field sets
// override earlier ones.
func NewEntry(level Level, message string, sets ...Fields) *Entry {
	fields := make(Fields)
	for _, set := range sets {
		for k, v := range set {
			fields[k] = v
		}
	}
	return &Entry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
		Fields:    fields,
	}
}
