// Package log provides structured logging for strlab.
//
// Package: log
// Title: strlab Structured Logging
// Description: Leveled, structured logger with JSON, text, console and logfmt
//              output, persistent context fields, integration with the core
//              error type, and a Timer used by the benchmark harness to time
//              each sequence strategy.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2025-10-18 v0.2.0: Removed request/user context, async mode and the default
//                      logger; sorted field output; Timer.Restart for excluding
//                      setup from measurements
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{
//		Level:  log.LevelDebug,
//		Format: log.FormatText,
//		Name:   "bench",
//	}).WithField("run_id", runID)
//
//	logger.Trace("building sequence", log.String("strategy", "StringAppendEnd"))
//
//	timer := logger.StartTimer("sequence.build").WithField("n", 1000)
//	timer.Restart()
//	out, err := sequence.AppendConcat(1000)
//	elapsed := timer.Stop()
package log
