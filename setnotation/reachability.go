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

package setnotation

import "github.com/bits-and-blooms/bitset"

// ReachableStates returns the states reachable from start by following
// transitions, start included. An invalid start yields an empty set.
func (m *Module) ReachableStates(start int) *bitset.BitSet {
	seen := bitset.New(uint(len(m.states)))
	if start < 0 || start >= len(m.states) {
		return seen
	}
	seen.Set(uint(start))
	work := []int{start}
	for len(work) > 0 {
		s := work[0]
		work = work[1:]
		for _, t := range m.TransitionsFrom(s) {
			if !seen.Test(uint(t.Target)) {
				seen.Set(uint(t.Target))
				work = append(work, t.Target)
			}
		}
	}
	return seen
}

// UnreachableStates lists, in index order, the states ReachableStates(start)
// does not contain.
func (m *Module) UnreachableStates(start int) []int {
	seen := m.ReachableStates(start)
	var out []int
	for s := range m.states {
		if !seen.Test(uint(s)) {
			out = append(out, s)
		}
	}
	return out
}

// AllStatesReachableBySomeTransition reports whether every state is the
// source of at least one transition.
func (m *Module) AllStatesReachableBySomeTransition() bool {
	sources := bitset.New(uint(len(m.states)))
	for _, t := range m.transitions {
		sources.Set(uint(t.Source))
	}
	return sources.Count() == uint(len(m.states))
}
