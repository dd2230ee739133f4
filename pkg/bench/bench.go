// ============================================================================
// strlab - String Manipulation Lab
// ============================================================================
//
// Package:     bench
// Description: Times every sequence strategy for one n
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

// Package bench runs every sequence strategy for the same n and records how
// long each one took. Only the build call is inside the timed region.
package bench

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/msto63/strlab/foundation/core/errors"
	mdwlog "github.com/msto63/strlab/foundation/core/log"
	"github.com/msto63/strlab/pkg/sequence"
)

// Result is the measurement of one strategy
type Result struct {
	Label       string
	Elapsed     time.Duration
	Description string
}

// Report is the outcome of one Measure call
type Report struct {
	RunID    string
	N        int
	Sequence string
	Results  []Result
}

// Harness runs the configured strategies
type Harness struct {
	logger     *mdwlog.Logger
	strategies []sequence.Strategy
}

// Option configures a Harness
type Option func(*Harness)

// WithLogger sets the logger that receives one timer entry per strategy
func WithLogger(logger *mdwlog.Logger) Option {
	return func(h *Harness) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// WithStrategies replaces the default strategy table
func WithStrategies(strategies []sequence.Strategy) Option {
	return func(h *Harness) {
		h.strategies = strategies
	}
}

// New creates a harness over sequence.Strategies
func New(opts ...Option) *Harness {
	h := &Harness{
		logger:     mdwlog.NewNop(),
		strategies: sequence.Strategies(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Measure builds the sequence for n with every strategy in order and
// returns one Result per strategy. An invalid n fails before anything is
// recorded. Strategies that disagree on the output are reported as an
// internal error.
func (h *Harness) Measure(n int) (*Report, error) {
	if len(h.strategies) == 0 {
		return nil, errors.Internal(errors.ModuleBench, "Measure", "no strategies configured")
	}

	report := &Report{
		RunID:   uuid.NewString(),
		N:       n,
		Results: make([]Result, 0, len(h.strategies)),
	}
	logger := h.logger.WithName("bench").WithField("run_id", report.RunID)

	for i, s := range h.strategies {
		logger.Trace("building sequence", mdwlog.String("strategy", s.Name))
		timer := logger.StartTimer("sequence.build").
			WithField("strategy", s.Name).
			WithField("n", n)

		timer.Restart()
		out, err := s.Build(n)
		if err != nil {
			timer.StopWithError(err)
			return nil, err
		}
		elapsed := timer.Stop()

		if i == 0 {
			report.Sequence = out
		} else if out != report.Sequence {
			err := errors.Internal(errors.ModuleBench, "Measure",
				fmt.Sprintf("strategy %s produced different output than %s", s.Name, h.strategies[0].Name)).
				WithDetail("strategy", s.Name).
				WithDetail("n", n)
			logger.LogError(err)
			return nil, err
		}

		report.Results = append(report.Results, Result{
			Label:       s.Name,
			Elapsed:     elapsed,
			Description: s.Description,
		})
	}

	logger.Debug("benchmark finished", mdwlog.Int("n", n), mdwlog.Int("strategies", len(report.Results)))
	return report, nil
}
