// File: timer.go
// Title: Performance Timer
// Description: Provides timing functionality for measuring and logging
//              performance metrics. Integrates with the logging system
//              to automatically log timing information.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with performance timing
// - 2025-10-18 v0.2.0: Added Restart, completion entries carry Duration

package log

import (
	"time"
)

// Timer represents a performance timer for measuring operation duration
type Timer struct {
	logger    *Logger
	operation string
	startTime time.Time
	fields    Fields
	stopped   bool
	elapsed   time.Duration
}

// NewTimer creates a new timer for the given operation
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		startTime: time.Now(),
		fields:    make(Fields),
	}
}

// WithField adds a field to be logged when the timer completes
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Restart resets the start time to now. Work done between StartTimer and
// Restart is excluded from the measurement.
func (t *Timer) Restart() *Timer {
	t.startTime = time.Now()
	t.stopped = false
	t.elapsed = 0
	return t
}

// Elapsed returns the time since start, or the final duration once stopped
func (t *Timer) Elapsed() time.Duration {
	if t.stopped {
		return t.elapsed
	}
	return time.Since(t.startTime)
}

// Stop stops the timer, logs the completion and returns the elapsed time.
// Calling Stop again returns the same duration without logging.
func (t *Timer) Stop() time.Duration {
	return t.finish(nil)
}

// StopWithError stops the timer and logs the completion together with err.
// A non-nil err raises the entry to at least warning level.
func (t *Timer) StopWithError(err error) time.Duration {
	return t.finish(err)
}

func (t *Timer) finish(err error) time.Duration {
	if t.stopped {
		return t.elapsed
	}
	t.elapsed = time.Since(t.startTime)
	t.stopped = true

	level := LevelDebug
	if err != nil {
		level = LevelWarn
	}
	if t.logger == nil || !t.logger.IsLevelEnabled(level) {
		return t.elapsed
	}

	message := "operation completed"
	if err != nil {
		message = "operation failed"
	}

	entry := NewEntry(level, message,
		Fields{"operation": t.operation, "success": err == nil}, t.fields)
	entry.Duration = t.elapsed
	entry.Error = err

	t.logger.write(entry, 1)
	return t.elapsed
}

// IsRunning returns true if the timer has not been stopped
func (t *Timer) IsRunning() bool {
	return !t.stopped
}

// Operation returns the operation name of the timer
func (t *Timer) Operation() string {
	return t.operation
}
