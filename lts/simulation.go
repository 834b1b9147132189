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
	"strings"
)

// SimulationPair relates a state of the left LTS to a state of the right one.
type SimulationPair struct {
	Left  *State
	Right *State
}

func (p SimulationPair) String() string {
	return fmt.Sprintf("(%s,%s)", p.Left.Name(), p.Right.Name())
}

// Simulation stores a relation between the states of two definitions. The
// relation is computed elsewhere; this type only records it. Pairs are kept
// in a slice and duplicates are found by scanning, since relations are small.
type Simulation struct {
	left  *Definition
	right *Definition
	pairs []SimulationPair
}

// NewSimulation creates an empty relation from left to right.
func NewSimulation(left, right *Definition) *Simulation {
	return &Simulation{left: left, right: right}
}

// Left returns the simulated definition.
func (s *Simulation) Left() *Definition { return s.left }

// Right returns the simulating definition.
func (s *Simulation) Right() *Definition { return s.right }

// AddStatePair appends p. Duplicates are accepted and reported by
// CheckDuplicates.
func (s *Simulation) AddStatePair(p SimulationPair) {
	s.pairs = append(s.pairs, p)
}

// PairPresent reports whether a pair with the given state indices exists.
func (s *Simulation) PairPresent(left, right int) bool {
	for _, p := range s.pairs {
		if p.Left.Index() == left && p.Right.Index() == right {
			return true
		}
	}
	return false
}

// CheckDuplicates reports whether two pairs relate the same states.
func (s *Simulation) CheckDuplicates() bool {
	for i := range s.pairs {
		for j := i + 1; j < len(s.pairs); j++ {
			if s.pairs[i].Left.Index() == s.pairs[j].Left.Index() &&
				s.pairs[i].Right.Index() == s.pairs[j].Right.Index() {
				return true
			}
		}
	}
	return false
}

// Pairs returns the pairs in insertion order.
func (s *Simulation) Pairs() []SimulationPair {
	return append([]SimulationPair(nil), s.pairs...)
}

// Len returns the number of pairs.
func (s *Simulation) Len() int {
	return len(s.pairs)
}

// PrintDefinition renders the relation as "simulation L <= R" followed by
// one pair per line.
func (s *Simulation) PrintDefinition() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "simulation %s <= %s\n", s.left.Name, s.right.Name)
	for _, p := range s.pairs {
		sb.WriteString(p.String())
		sb.WriteString("\n")
	}
	return sb.String()
}
