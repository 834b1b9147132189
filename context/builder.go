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

package context

import (
	stdcontext "context"

	"github.com/diset/verifier/clock"
)

// AnalysisContextBuilder provides a fluent API for building AnalysisContext.
type AnalysisContextBuilder struct {
	ctx      stdcontext.Context
	clock    clock.Clock
	logger   Logger
	metrics  MetricsCollector
	tracer   Tracer
	recorder ErrorRecorder
}

// NewAnalysisContextBuilder creates a new builder with default values.
func NewAnalysisContextBuilder() *AnalysisContextBuilder {
	return &AnalysisContextBuilder{
		ctx:     stdcontext.Background(),
		clock:   clock.NewRealTimeClock(),
		logger:  &NoOpLogger{},
		metrics: &NoOpMetrics{},
		tracer:  &NoOpTracer{},
	}
}

// WithLogger sets the logger.
func (b *AnalysisContextBuilder) WithLogger(logger Logger) *AnalysisContextBuilder {
	b.logger = logger
	return b
}

// WithMetrics sets the metrics collector.
func (b *AnalysisContextBuilder) WithMetrics(metrics MetricsCollector) *AnalysisContextBuilder {
	b.metrics = metrics
	return b
}

// WithTracer sets the tracer.
func (b *AnalysisContextBuilder) WithTracer(tracer Tracer) *AnalysisContextBuilder {
	b.tracer = tracer
	return b
}

// WithErrorRecorder sets the error recorder.
func (b *AnalysisContextBuilder) WithErrorRecorder(recorder ErrorRecorder) *AnalysisContextBuilder {
	b.recorder = recorder
	return b
}

// WithContext sets the standard context.
func (b *AnalysisContextBuilder) WithContext(ctx stdcontext.Context) *AnalysisContextBuilder {
	b.ctx = ctx
	return b
}

// WithClock sets the clock.
func (b *AnalysisContextBuilder) WithClock(clk clock.Clock) *AnalysisContextBuilder {
	b.clock = clk
	return b
}

// Build creates the AnalysisContext. Components left unset are NoOps.
func (b *AnalysisContextBuilder) Build() *AnalysisContext {
	ac := NewAnalysisContext(b.ctx)

	if b.clock != nil {
		ac.Clock = b.clock
	}
	if b.logger != nil {
		ac.Logger = b.logger
	}
	if b.metrics != nil {
		ac.Metrics = b.metrics
	}
	if b.tracer != nil {
		ac.Tracer = b.tracer
	}
	if b.recorder != nil {
		ac.ErrorRecorder = b.recorder
	}

	return ac
}

// ContextWithAnalysisContext embeds an AnalysisContext in a standard context.
func ContextWithAnalysisContext(ctx stdcontext.Context, actx *AnalysisContext) stdcontext.Context {
	return stdcontext.WithValue(ctx, analysisContextKey, actx)
}

// AnalysisContextFromContext retrieves an AnalysisContext from a standard context.
func AnalysisContextFromContext(ctx stdcontext.Context) (*AnalysisContext, bool) {
	actx, ok := ctx.Value(analysisContextKey).(*AnalysisContext)
	return actx, ok
}

type contextKey int

const analysisContextKey contextKey = 0
