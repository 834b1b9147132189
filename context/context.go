// Copyright 2026 The DISet Verifier Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package context provides the AnalysisContext carried through state-space
// exploration and property checking.
//
// AnalysisContext combines:
//   - Standard Go context for cancellation
//   - Clock for timing and timestamps
//   - Observability tools (Tracer, Metrics, Logger)
//   - An ErrorRecorder for analyses that stop early
//
// Every component defaults to a NoOp implementation, so an analysis run
// with NewAnalysisContext(ctx) logs and measures nothing.
//
// Example usage:
//
//	actx := context.NewAnalysisContext(goCtx).
//	    WithLogger(context.NewSlogLogger(slog.Default()))
//	span := actx.Tracer.StartSpan("lts-explore")
//	defer span.End()
package context

import (
	"context"

	"github.com/diset/verifier/clock"
)

// AnalysisContext carries cancellation and observability through an analysis.
type AnalysisContext struct {
	// Context is the standard Go context for cancellation and deadlines.
	// Long explorations check it between states.
	Context context.Context

	// Clock times explorations and stamps certificates.
	// Defaults to RealTimeClock; use VirtualClock in tests.
	Clock clock.Clock

	// Tracer handles tracing. Defaults to NoOpTracer.
	Tracer Tracer

	// Metrics handles metrics collection. Defaults to NoOpMetrics.
	Metrics MetricsCollector

	// Logger handles structured logging. Defaults to NoOpLogger.
	Logger Logger

	// ErrorRecorder records errors that end an analysis early.
	// Defaults to NoOpErrorRecorder.
	ErrorRecorder ErrorRecorder
}

// NewAnalysisContext creates a context with NoOp observability. A nil ctx
// is replaced by context.Background().
func NewAnalysisContext(ctx context.Context) *AnalysisContext {
	if ctx == nil {
		ctx = context.Background()
	}
	ac := &AnalysisContext{Context: ctx}
	ac.ensureObservability()
	return ac
}

// ensureObservability replaces nil components with NoOp implementations.
func (a *AnalysisContext) ensureObservability() {
	if a.Context == nil {
		a.Context = context.Background()
	}
	if a.Clock == nil {
		a.Clock = clock.NewRealTimeClock()
	}
	if a.Logger == nil {
		a.Logger = &NoOpLogger{}
	}
	if a.Metrics == nil {
		a.Metrics = &NoOpMetrics{}
	}
	if a.Tracer == nil {
		a.Tracer = &NoOpTracer{}
	}
	if a.ErrorRecorder == nil {
		a.ErrorRecorder = &NoOpErrorRecorder{}
	}
}

// Err returns the error of the underlying Go context, if any.
func (a *AnalysisContext) Err() error {
	if a.Context == nil {
		return nil
	}
	return a.Context.Err()
}

// GetClock returns the clock, ensuring it's never nil.
func (a *AnalysisContext) GetClock() clock.Clock {
	if a.Clock == nil {
		a.Clock = clock.NewRealTimeClock()
	}
	return a.Clock
}

// GetLogger returns the logger, ensuring it's never nil.
func (a *AnalysisContext) GetLogger() Logger {
	if a.Logger == nil {
		a.Logger = &NoOpLogger{}
	}
	return a.Logger
}

// GetMetrics returns the metrics collector, ensuring it's never nil.
func (a *AnalysisContext) GetMetrics() MetricsCollector {
	if a.Metrics == nil {
		a.Metrics = &NoOpMetrics{}
	}
	return a.Metrics
}

// GetTracer returns the tracer, ensuring it's never nil.
func (a *AnalysisContext) GetTracer() Tracer {
	if a.Tracer == nil {
		a.Tracer = &NoOpTracer{}
	}
	return a.Tracer
}

// GetErrorRecorder returns the error recorder, ensuring it's never nil.
func (a *AnalysisContext) GetErrorRecorder() ErrorRecorder {
	if a.ErrorRecorder == nil {
		a.ErrorRecorder = &NoOpErrorRecorder{}
	}
	return a.ErrorRecorder
}

// WithTracer returns a new context with the specified tracer.
func (a *AnalysisContext) WithTracer(tracer Tracer) *AnalysisContext {
	c := *a
	c.Tracer = tracer
	c.ensureObservability()
	return &c
}

// WithMetrics returns a new context with the specified metrics collector.
func (a *AnalysisContext) WithMetrics(metrics MetricsCollector) *AnalysisContext {
	c := *a
	c.Metrics = metrics
	c.ensureObservability()
	return &c
}

// WithLogger returns a new context with the specified logger.
func (a *AnalysisContext) WithLogger(logger Logger) *AnalysisContext {
	c := *a
	c.Logger = logger
	c.ensureObservability()
	return &c
}

// WithErrorRecorder returns a new context with the specified error recorder.
func (a *AnalysisContext) WithErrorRecorder(recorder ErrorRecorder) *AnalysisContext {
	c := *a
	c.ErrorRecorder = recorder
	c.ensureObservability()
	return &c
}

// WithClock returns a new context with the specified clock.
func (a *AnalysisContext) WithClock(clk clock.Clock) *AnalysisContext {
	c := *a
	c.Clock = clk
	c.ensureObservability()
	return &c
}

// WithContext returns a new context with the specified Go context.
func (a *AnalysisContext) WithContext(ctx context.Context) *AnalysisContext {
	c := *a
	c.Context = ctx
	c.ensureObservability()
	return &c
}

// Clone returns a builder seeded with this context's components.
func (a *AnalysisContext) Clone() *AnalysisContextBuilder {
	return &AnalysisContextBuilder{
		ctx:      a.Context,
		clock:    a.Clock,
		logger:   a.Logger,
		metrics:  a.Metrics,
		tracer:   a.Tracer,
		recorder: a.ErrorRecorder,
	}
}
