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

package clock

import (
	"sync"
	"time"
)

// VirtualClock is a Clock under manual control. Time advances only through
// AdvanceBy, AdvanceTo, or the optional tick applied after every Now.
//
// VirtualClock is safe for concurrent use by multiple goroutines.
type VirtualClock struct {
	mu      sync.Mutex
	current time.Time
	tick    time.Duration
}

// NewVirtualClock creates a virtual clock starting at start.
func NewVirtualClock(start time.Time) *VirtualClock {
	return &VirtualClock{current: start}
}

// WithTick makes every call to Now advance the clock by d afterwards, so
// that two consecutive readings are d apart.
func (v *VirtualClock) WithTick(d time.Duration) *VirtualClock {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.tick = d
	return v
}

// Now returns the current virtual time.
func (v *VirtualClock) Now() time.Time {
	v.mu.Lock()
	defer v.mu.Unlock()
	now := v.current
	v.current = v.current.Add(v.tick)
	return now
}

// AdvanceBy moves the clock forward by d. Negative durations are ignored.
func (v *VirtualClock) AdvanceBy(d time.Duration) {
	if d <= 0 {
		return
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.current = v.current.Add(d)
}

// AdvanceTo moves the clock to t. Times in the past are ignored.
func (v *VirtualClock) AdvanceTo(t time.Time) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if t.After(v.current) {
		v.current = t
	}
}
