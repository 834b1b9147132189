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

package lts

import (
	"fmt"

	"github.com/diset/verifier/diset"
)

// State is one explored network term and its outgoing edges. Transitions
// and results are parallel: the i-th transition leads to the i-th result.
type State struct {
	index       int
	term        *diset.Network
	transitions []Transition
	results     []*State
}

// Index returns the state's position in its definition.
func (s *State) Index() int { return s.index }

// Term returns the network the state represents.
func (s *State) Term() *diset.Network { return s.term }

// Name returns S followed by the index.
func (s *State) Name() string {
	return fmt.Sprintf("S%d", s.index)
}

// AddTransition records an edge labelled t to result.
func (s *State) AddTransition(t Transition, result *State) {
	s.transitions = append(s.transitions, t)
	s.results = append(s.results, result)
}

// Transitions returns the outgoing labels.
func (s *State) Transitions() []Transition {
	return append([]Transition(nil), s.transitions...)
}

// Results returns the states reached by each outgoing transition.
func (s *State) Results() []*State {
	return append([]*State(nil), s.results...)
}

// Transition returns the i-th outgoing edge.
func (s *State) Transition(i int) (Transition, *State, error) {
	if i < 0 || i >= len(s.transitions) {
		return Transition{}, nil, fmt.Errorf("%w: transition %d of %s (len %d)",
			ErrIndexOutOfRange, i, s.Name(), len(s.transitions))
	}
	return s.transitions[i], s.results[i], nil
}

// OutDegree returns the number of outgoing transitions.
func (s *State) OutDegree() int {
	return len(s.transitions)
}

func (s *State) String() string {
	return s.Name()
}
