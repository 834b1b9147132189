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

// Fields are the structured key-value pairs attached to log lines,
// recorded errors and span attributes. Keys are snake_case.
type Fields = map[string]interface{}

// Tracer opens spans around analysis phases such as exploring an LTS.
type Tracer interface {
	// StartSpan opens a span; the caller ends it, usually with defer.
	StartSpan(name string) Span
}

// Span is one traced analysis phase.
type Span interface {
	End()
	SetAttribute(key string, value interface{})

	// RecordError attaches err to the span. It may be called more than once
	// and does not end the span.
	RecordError(err error)
}

// MetricsCollector receives exploration measurements. The explorer uses
// all four kinds:
//
//	Inc/Add   lts_states_discovered, lts_transitions_added, lts_end_states
//	Set       lts_frontier_size
//	Observe   lts_state_out_degree, lts_explore_duration_seconds
//
// Implementations must be safe for concurrent use.
type MetricsCollector interface {
	Inc(name string)
	Add(name string, value float64)
	Set(name string, value float64)
	Observe(name string, value float64)
}

// Logger writes leveled messages with Fields. Debug is per state, Info per
// finished analysis, Warn when an analysis stops short of a full answer.
type Logger interface {
	Debug(msg string, fields Fields)
	Info(msg string, fields Fields)
	Warn(msg string, fields Fields)
	Error(msg string, fields Fields)
}

// ErrorRecorder keeps errors that ended an analysis early, such as a state
// limit, an unbounded bus or cancellation, even when the caller handles
// them.
type ErrorRecorder interface {
	RecordError(err error, fields Fields)
}
