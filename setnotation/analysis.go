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

import "github.com/diset/verifier/intset"

// SafetyResult is the outcome of ViolateSafetyOrClash.
type SafetyResult int

const (
	// Ok means every auto-fired path is safe and clash free.
	Ok SafetyResult = iota

	// UnsafeOrStuck means the pending inputs cannot all be accepted, either
	// from the start state or somewhere along an auto-fired path.
	UnsafeOrStuck

	// Clash means some auto-fired path drives an output line twice.
	Clash
)

func (r SafetyResult) String() string {
	switch r {
	case Ok:
		return "ok"
	case UnsafeOrStuck:
		return "unsafe-or-stuck"
	case Clash:
		return "clash"
	default:
		return "unknown"
	}
}

// enabled reports whether t can fire on the pending inputs alone.
// Transitions with no inputs never auto-fire: they would not consume
// anything from the budget.
func enabled(t Transition, pending *intset.IntSet) bool {
	return !t.Inputs.IsEmpty() && t.Inputs.Subset(pending)
}

// AutoFiredPaths returns every maximal chain of transitions the module can
// take from state using only the inputs in pending. Each step consumes its
// input set from the budget, so the recursion ends once no transition from
// the current state fits in what remains. pathSoFar is prepended to every
// result and is not modified.
//
// If nothing can fire from state the single result is pathSoFar itself.
// The search visits every enabled branch and is exponential in the branching
// factor of the module.
func (m *Module) AutoFiredPaths(state int, pending *intset.IntSet, pathSoFar Path) []Path {
	var out []Path
	for _, t := range m.TransitionsFrom(state) {
		if !enabled(t, pending) {
			continue
		}
		out = append(out, m.AutoFiredPaths(t.Target, pending.Difference(t.Inputs), pathSoFar.extend(t))...)
	}
	if out == nil {
		return []Path{append(Path(nil), pathSoFar...)}
	}
	return out
}

// PathHasClash reports whether an output index is produced while it is
// already travelling, either because it was in travelling or because an
// earlier transition of path produced it.
func (m *Module) PathHasClash(path Path, travelling *intset.IntSet) bool {
	seen := intset.New()
	if travelling != nil {
		seen = travelling.Copy()
	}
	for _, t := range path {
		for _, o := range t.Outputs.Values() {
			if !seen.Add(o) {
				return true
			}
		}
	}
	return false
}

// SafelyDefined reports whether some transition from state accepts a
// superset of pending. Nothing pending is always safe.
func (m *Module) SafelyDefined(pending *intset.IntSet, state int) bool {
	if pending.IsEmpty() {
		return true
	}
	for _, t := range m.TransitionsFrom(state) {
		if pending.Subset(t.Inputs) {
			return true
		}
	}
	return false
}

// PathIsSafe walks path consuming inputs from starting and requires the
// remaining inputs to be safely defined after every step. The start state is
// not checked.
func (m *Module) PathIsSafe(path Path, starting *intset.IntSet) bool {
	pending := starting.Copy()
	for _, t := range path {
		pending = pending.Difference(t.Inputs)
		if !m.SafelyDefined(pending, t.Target) {
			return false
		}
	}
	return true
}

// ViolateSafetyOrClash combines the safety and clash checks for inputs
// arriving at state while travelling outputs are still in flight.
func (m *Module) ViolateSafetyOrClash(state int, inputs, travelling *intset.IntSet) SafetyResult {
	if !m.SafelyDefined(inputs, state) {
		return UnsafeOrStuck
	}
	paths := m.AutoFiredPaths(state, inputs, nil)
	for _, p := range paths {
		if !m.PathIsSafe(p, inputs) {
			return UnsafeOrStuck
		}
	}
	for _, p := range paths {
		if m.PathHasClash(p, travelling) {
			return Clash
		}
	}
	return Ok
}

// anyAutoFiredPath calls pred on each auto-fired path from every state and
// every non-empty set of inputs, stopping at the first match.
func (m *Module) anyAutoFiredPath(pred func(Path) bool) bool {
	budgets := m.AllInputs().PowerSet().Sets()
	for s := range m.states {
		for _, budget := range budgets {
			for _, p := range m.AutoFiredPaths(s, budget, nil) {
				if pred(p) {
					return true
				}
			}
		}
	}
	return false
}

// IsAutoFiring reports whether some state and input budget produce an
// auto-fired path of more than one transition.
func (m *Module) IsAutoFiring() bool {
	return m.anyAutoFiredPath(func(p Path) bool { return len(p) > 1 })
}

// IsAutoClashing reports whether some auto-fired path clashes with itself.
func (m *Module) IsAutoClashing() bool {
	return m.anyAutoFiredPath(func(p Path) bool { return m.PathHasClash(p, nil) })
}

// eachPair calls fn on every unordered pair of distinct transitions that
// share a state chosen by key. fn returns true to stop.
func (m *Module) eachPair(key func(Transition) int, fn func(a, b Transition) bool) bool {
	for i := 0; i < len(m.transitions); i++ {
		for j := i + 1; j < len(m.transitions); j++ {
			a, b := m.transitions[i], m.transitions[j]
			if key(a) != key(b) {
				continue
			}
			if fn(a, b) {
				return true
			}
		}
	}
	return false
}

func bySource(t Transition) int { return t.Source }
func byTarget(t Transition) int { return t.Target }

// IsArbitrating reports whether two transitions from one state have input
// sets related by inclusion.
func (m *Module) IsArbitrating() bool {
	return m.eachPair(bySource, func(a, b Transition) bool {
		return a.Inputs.Subset(b.Inputs) || b.Inputs.Subset(a.Inputs)
	})
}

// IsEqArbitrating reports whether the module arbitrates only between equal
// input sets.
func (m *Module) IsEqArbitrating() bool {
	if !m.IsArbitrating() {
		return false
	}
	proper := m.eachPair(bySource, func(a, b Transition) bool {
		return a.Inputs.ProperSubset(b.Inputs) || b.Inputs.ProperSubset(a.Inputs)
	})
	return !proper
}

// IsBArbitrating is IsArbitrating run backwards: two transitions into one
// state have output sets related by inclusion.
func (m *Module) IsBArbitrating() bool {
	return m.eachPair(byTarget, func(a, b Transition) bool {
		return a.Outputs.Subset(b.Outputs) || b.Outputs.Subset(a.Outputs)
	})
}

// IsOneStepConsistent reports whether no two transitions from one state have
// both their input sets and their output sets included in the same direction.
func (m *Module) IsOneStepConsistent() bool {
	violated := m.eachPair(bySource, func(a, b Transition) bool {
		return (a.Inputs.Subset(b.Inputs) && a.Outputs.Subset(b.Outputs)) ||
			(b.Inputs.Subset(a.Inputs) && b.Outputs.Subset(a.Outputs))
	})
	return !violated
}

// IsStable reports whether, whenever a transition a from some state accepts
// a subset of the inputs of another transition b from that state, the inputs
// b still needs are safely defined where a leads.
func (m *Module) IsStable() bool {
	for _, a := range m.transitions {
		for _, b := range m.transitions {
			if a.Equal(b) || a.Source != b.Source || !a.Inputs.Subset(b.Inputs) {
				continue
			}
			if !m.SafelyDefined(b.Inputs.Difference(a.Inputs), a.Target) {
				return false
			}
		}
	}
	return true
}

// HasDuplicateStates reports whether two distinct states have the same
// outgoing transitions, compared as sets of (inputs, target, outputs).
func (m *Module) HasDuplicateStates() bool {
	for i := range m.states {
		for j := i + 1; j < len(m.states); j++ {
			if sameEffects(m.TransitionsFrom(i), m.TransitionsFrom(j)) {
				return true
			}
		}
	}
	return false
}

func sameEffects(a, b []Transition) bool {
	return coveredBy(a, b) && coveredBy(b, a)
}

func coveredBy(a, b []Transition) bool {
	for _, t := range a {
		found := false
		for _, u := range b {
			if t.sameEffect(u) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// HasDuplicateTransitions reports whether two entries of the transition list
// are equal 4-tuples. AddTransition never creates one.
func (m *Module) HasDuplicateTransitions() bool {
	return m.eachPair(func(Transition) int { return 0 }, func(a, b Transition) bool {
		return a.Equal(b)
	})
}

// AvailablePermutations counts the orderings of inputs that no smaller
// transition from state claims. A transition from state whose input set is a
// proper subset S of inputs claims every ordering that starts with some
// arrangement of S, since the module fires on S before the rest arrives.
//
// Enumerates |inputs|! orderings.
func (m *Module) AvailablePermutations(inputs *intset.IntSet, state int) int {
	candidates := inputs.Permutations()

	claimed := intset.NewSetSet()
	for _, t := range m.TransitionsFrom(state) {
		if !t.Inputs.IsEmpty() && t.Inputs.ProperSubset(inputs) {
			claimed.Add(t.Inputs)
		}
	}

	for _, c := range claimed.Sets() {
		prefixes := c.Permutations()
		kept := candidates[:0]
		for _, cand := range candidates {
			hit := false
			for _, p := range prefixes {
				if cand.Seq().HasPrefix(p.Seq()) {
					hit = true
					break
				}
			}
			if !hit {
				kept = append(kept, cand)
			}
		}
		candidates = kept
	}
	return len(candidates)
}
