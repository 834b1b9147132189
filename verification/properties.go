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

package verification

import (
	"fmt"

	"github.com/diset/verifier/diset"
	"github.com/diset/verifier/lts"
)

// VerificationResult contains the outcome of verifying a single property.
// An unsatisfied result includes a witness path that demonstrates the violation.
type VerificationResult struct {
	// Property is the name of the property that was checked
	Property string

	// Satisfied is true if the property holds for all explored states
	Satisfied bool

	// Message provides a human-readable explanation of the result
	Message string

	// Witness is the sequence of transition labels from S0 to the violating
	// state (for unsatisfied properties) or the target state (for
	// reachability). Empty when the property holds or the state is S0.
	Witness []string

	// StatesChecked is the number of states that were examined
	StatesChecked int
}

// CheckSafety verifies that in every explored state each module can accept
// the signals pending for it.
func (e *Explorer) CheckSafety(def *lts.Definition) VerificationResult {
	for _, s := range def.States() {
		i, ok := s.Term().UnsafeModule()
		if ok {
			continue
		}
		nm := s.Term().Modules().All()[i]
		pending := s.Term().Bus().GetPortsWithLabel(nm.Label)
		return VerificationResult{
			Property:      "safety",
			Satisfied:     false,
			Message:       fmt.Sprintf("module %s cannot accept %v at %s: %s", nm, pending, s, s.Term()),
			Witness:       e.findPath(def, 0, s.Index()),
			StatesChecked: def.NoOfStates(),
		}
	}
	return VerificationResult{
		Property:      "safety",
		Satisfied:     true,
		Message:       fmt.Sprintf("every module accepts its pending signals in all %d states", def.NoOfStates()),
		StatesChecked: def.NoOfStates(),
	}
}

// CheckDeadlockFreedom verifies that no end state leaves signals on the
// bus. An end state with an empty bus is a normal completion; one with
// pending signals means some module is waiting for inputs that never come
// together.
func (e *Explorer) CheckDeadlockFreedom(def *lts.Definition) VerificationResult {
	for _, s := range def.EndStates() {
		if s.Term().Bus().Len() == 0 {
			continue
		}
		return VerificationResult{
			Property:      "deadlock_freedom",
			Satisfied:     false,
			Message:       fmt.Sprintf("deadlock at %s with %s pending", s, s.Term().Bus()),
			Witness:       e.findPath(def, 0, s.Index()),
			StatesChecked: def.NoOfStates(),
		}
	}
	return VerificationResult{
		Property:      "deadlock_freedom",
		Satisfied:     true,
		Message:       "no end state leaves signals pending",
		StatesChecked: def.NoOfStates(),
	}
}

// CheckBoundedness reports the largest bus seen in any explored state.
// buildErr is the error BuildLTS returned for def: the property holds only
// when exploration covered every reachable state. A partial LTS proves
// nothing about the bus, so any non-nil buildErr fails the check.
func (e *Explorer) CheckBoundedness(def *lts.Definition, buildErr error) VerificationResult {
	maxSignals, at := maxBus(def)
	if buildErr != nil {
		result := VerificationResult{
			Property:      "boundedness",
			Satisfied:     false,
			Message:       fmt.Sprintf("exploration stopped after %d states with %d signals pending: %v", def.NoOfStates(), maxSignals, buildErr),
			StatesChecked: def.NoOfStates(),
		}
		if at != nil {
			result.Witness = e.findPath(def, 0, at.Index())
		}
		return result
	}

	message := fmt.Sprintf("bus holds at most %d signals", maxSignals)
	if at != nil {
		message = fmt.Sprintf("bus holds at most %d signals (first at %s)", maxSignals, at)
	}
	return VerificationResult{
		Property:      "boundedness",
		Satisfied:     true,
		Message:       message,
		StatesChecked: def.NoOfStates(),
	}
}

// CheckReachability verifies that some explored state satisfies pred. When
// one does, the result includes the path to the first such state.
//
// Example, check that a reaches A1 with an empty bus:
//
//	result := e.CheckReachability(def, func(n *diset.Network) bool {
//	    return n.Bus().Len() == 0 && strings.HasPrefix(n.String(), "a:A1 ")
//	})
func (e *Explorer) CheckReachability(def *lts.Definition, pred func(*diset.Network) bool) VerificationResult {
	for _, s := range def.States() {
		if pred(s.Term()) {
			return VerificationResult{
				Property:      "reachability",
				Satisfied:     true,
				Message:       fmt.Sprintf("target reachable at %s", s),
				Witness:       e.findPath(def, 0, s.Index()),
				StatesChecked: def.NoOfStates(),
			}
		}
	}
	return VerificationResult{
		Property:      "reachability",
		Satisfied:     false,
		Message:       "target not reachable from the initial state",
		StatesChecked: def.NoOfStates(),
	}
}

// CheckIntegrity verifies that every module in every explored state is
// either intermediate or structurally identical to the constant it names.
func (e *Explorer) CheckIntegrity(def *lts.Definition) VerificationResult {
	for _, s := range def.States() {
		if err := s.Term().Validate(); err != nil {
			return VerificationResult{
				Property:      "integrity",
				Satisfied:     false,
				Message:       fmt.Sprintf("%s: %v", s, err),
				Witness:       e.findPath(def, 0, s.Index()),
				StatesChecked: def.NoOfStates(),
			}
		}
	}
	return VerificationResult{
		Property:      "integrity",
		Satisfied:     true,
		Message:       "every module matches its definition",
		StatesChecked: def.NoOfStates(),
	}
}

// maxBus returns the largest bus length and the first state that has it.
func maxBus(def *lts.Definition) (int, *lts.State) {
	maxSignals := 0
	var at *lts.State
	for _, s := range def.States() {
		if n := s.Term().Bus().Len(); n > maxSignals {
			maxSignals = n
			at = s
		}
	}
	return maxSignals, at
}

// findPath finds the transition labels from state 'from' to state 'to'
// using breadth-first search over the LTS.
// Returns nil if from == to or no path exists.
func (e *Explorer) findPath(def *lts.Definition, from, to int) []string {
	if from == to {
		return nil
	}

	type pathNode struct {
		state int
		path  []string
	}

	visited := make(map[int]bool)
	queue := []pathNode{{state: from}}
	visited[from] = true

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		s, err := def.GetState(current.state)
		if err != nil {
			return nil
		}
		results := s.Results()
		for i, t := range s.Transitions() {
			next := results[i].Index()
			if visited[next] {
				continue
			}

			newPath := make([]string, len(current.path)+1)
			copy(newPath, current.path)
			newPath[len(current.path)] = t.String()

			if next == to {
				return newPath
			}

			visited[next] = true
			queue = append(queue, pathNode{state: next, path: newPath})
		}
	}

	return nil
}
