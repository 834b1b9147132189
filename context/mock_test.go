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

// LogCall is one captured logger call.
type LogCall struct {
	Level   string
	Message string
	Fields  Fields
}

// MockLogger captures log calls for verification.
type MockLogger struct {
	calls []LogCall
}

func (m *MockLogger) Debug(msg string, fields Fields) {
	m.calls = append(m.calls, LogCall{Level: "DEBUG", Message: msg, Fields: fields})
}

func (m *MockLogger) Info(msg string, fields Fields) {
	m.calls = append(m.calls, LogCall{Level: "INFO", Message: msg, Fields: fields})
}

func (m *MockLogger) Warn(msg string, fields Fields) {
	m.calls = append(m.calls, LogCall{Level: "WARN", Message: msg, Fields: fields})
}

func (m *MockLogger) Error(msg string, fields Fields) {
	m.calls = append(m.calls, LogCall{Level: "ERROR", Message: msg, Fields: fields})
}

type mockTracer struct {
	spans []string
}

func (m *mockTracer) StartSpan(name string) Span {
	m.spans = append(m.spans, name)
	return &mockSpan{name: name}
}

type mockSpan struct {
	name   string
	ended  bool
	attrs  Fields
	errors []error
}

func (m *mockSpan) End() {
	m.ended = true
}

func (m *mockSpan) SetAttribute(key string, value interface{}) {
	if m.attrs == nil {
		m.attrs = make(Fields)
	}
	m.attrs[key] = value
}

func (m *mockSpan) RecordError(err error) {
	m.errors = append(m.errors, err)
}

type mockRecorder struct {
	errors []error
}

func (m *mockRecorder) RecordError(err error, metadata Fields) {
	m.errors = append(m.errors, err)
}
