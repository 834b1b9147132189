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
	"testing"
	"time"
)

var start = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func TestRealTimeClock(t *testing.T) {
	c := NewRealTimeClock()
	before := time.Now()
	now := c.Now()
	if now.Before(before) {
		t.Errorf("Now() = %v is before %v", now, before)
	}
}

func TestVirtualClock_Advance(t *testing.T) {
	c := NewVirtualClock(start)
	if !c.Now().Equal(start) {
		t.Fatal("clock should start at the given time")
	}

	c.AdvanceBy(5 * time.Second)
	if got := c.Now(); !got.Equal(start.Add(5 * time.Second)) {
		t.Errorf("after AdvanceBy: %v", got)
	}

	c.AdvanceBy(-time.Hour)
	c.AdvanceTo(start)
	if got := c.Now(); !got.Equal(start.Add(5 * time.Second)) {
		t.Errorf("clock moved backwards: %v", got)
	}

	c.AdvanceTo(start.Add(time.Minute))
	if got := c.Now(); !got.Equal(start.Add(time.Minute)) {
		t.Errorf("after AdvanceTo: %v", got)
	}
}

func TestVirtualClock_Tick(t *testing.T) {
	c := NewVirtualClock(start).WithTick(time.Millisecond)
	first := c.Now()
	if got := Since(c, first); got != time.Millisecond {
		t.Errorf("Since() = %v, want 1ms", got)
	}
}

func TestVirtualClock_Concurrent(t *testing.T) {
	c := NewVirtualClock(start).WithTick(time.Nanosecond)
	done := make(chan struct{})
	for i := 0; i < 4; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				c.Now()
			}
			done <- struct{}{}
		}()
	}
	for i := 0; i < 4; i++ {
		<-done
	}
	if got := c.Now(); !got.Equal(start.Add(400 * time.Nanosecond)) {
		t.Errorf("Now() = %v, want start+400ns", got)
	}
}
