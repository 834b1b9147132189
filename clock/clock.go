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

// Package clock provides the time source used to stamp and time analyses.
//
// Production code uses RealTimeClock. Tests use VirtualClock, whose time
// only moves when told to, so durations and timestamps are deterministic.
//
// Example usage in tests:
//
//	clk := clock.NewVirtualClock(start).WithTick(time.Millisecond)
//	actx := context.NewAnalysisContextBuilder().WithClock(clk).Build()
package clock

import "time"

// Clock abstracts reading the current time.
// Implementations must be safe for concurrent use by multiple goroutines.
type Clock interface {
	// Now returns the current time according to this clock.
	Now() time.Time
}

// Since returns the time elapsed on c since t.
func Since(c Clock, t time.Time) time.Duration {
	return c.Now().Sub(t)
}
