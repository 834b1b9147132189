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
	"log/slog"
	"maps"
	"slices"
)

// SlogLogger adapts a *slog.Logger to Logger. Fields become attributes in
// sorted key order so that output is stable.
type SlogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger wraps l. A nil l uses slog.Default().
func NewSlogLogger(l *slog.Logger) *SlogLogger {
	if l == nil {
		l = slog.Default()
	}
	return &SlogLogger{logger: l}
}

// Debug logs at slog.LevelDebug.
func (s *SlogLogger) Debug(msg string, fields Fields) {
	s.log(slog.LevelDebug, msg, fields)
}

// Info logs at slog.LevelInfo.
func (s *SlogLogger) Info(msg string, fields Fields) {
	s.log(slog.LevelInfo, msg, fields)
}

// Warn logs at slog.LevelWarn.
func (s *SlogLogger) Warn(msg string, fields Fields) {
	s.log(slog.LevelWarn, msg, fields)
}

// Error logs at slog.LevelError.
func (s *SlogLogger) Error(msg string, fields Fields) {
	s.log(slog.LevelError, msg, fields)
}

func (s *SlogLogger) log(level slog.Level, msg string, fields Fields) {
	ctx := stdcontext.Background()
	if !s.logger.Enabled(ctx, level) {
		return
	}
	attrs := make([]slog.Attr, 0, len(fields))
	for _, k := range slices.Sorted(maps.Keys(fields)) {
		attrs = append(attrs, slog.Any(k, fields[k]))
	}
	s.logger.LogAttrs(ctx, level, msg, attrs...)
}
