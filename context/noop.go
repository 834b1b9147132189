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

// The NoOp types are what AnalysisContext falls back to for any
// observability component left unset.

// NoOpTracer hands out spans that record nothing.
type NoOpTracer struct{}

func (*NoOpTracer) StartSpan(string) Span { return noOpSpan }

// NoOpSpan discards attributes and errors.
type NoOpSpan struct{}

var noOpSpan = &NoOpSpan{}

func (*NoOpSpan) End()                             {}
func (*NoOpSpan) SetAttribute(string, interface{}) {}
func (*NoOpSpan) RecordError(error)                {}

// NoOpMetrics discards every measurement.
type NoOpMetrics struct{}

func (*NoOpMetrics) Inc(string)              {}
func (*NoOpMetrics) Add(string, float64)     {}
func (*NoOpMetrics) Set(string, float64)     {}
func (*NoOpMetrics) Observe(string, float64) {}

// NoOpLogger discards every message.
type NoOpLogger struct{}

func (*NoOpLogger) Debug(string, Fields) {}
func (*NoOpLogger) Info(string, Fields)  {}
func (*NoOpLogger) Warn(string, Fields)  {}
func (*NoOpLogger) Error(string, Fields) {}

// NoOpErrorRecorder drops recorded errors.
type NoOpErrorRecorder struct{}

func (*NoOpErrorRecorder) RecordError(error, Fields) {}
