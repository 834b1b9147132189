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

// Package lts stores the labelled transition systems produced by exploring
// DI-set networks, and simulation relations between two of them.
//
// A Definition is append-only. States are numbered in insertion order and
// deduplicated by the explorer through GetIndexIfExists, which compares
// terms with diset.Network.SameAs. Once built the definition is read-only.
package lts

import (
	"errors"
	"fmt"
	"strings"

	"github.com/diset/verifier/diset"
)

// ErrIndexOutOfRange is returned by positional accessors given an invalid index.
var ErrIndexOutOfRange = errors.New("index out of range")

// Definition is a labelled transition system over network terms.
type Definition struct {
	Name      string
	states    []*State
	endStates []*State
}

// New creates an empty definition.
func New(name string) *Definition {
	return &Definition{Name: name}
}

// AddState appends term as a new state and returns it.
func (d *Definition) AddState(term *diset.Network) *State {
	s := &State{index: len(d.states), term: term}
	d.states = append(d.states, s)
	return s
}

// AddEndState marks s as terminal. Marking twice has no effect.
func (d *Definition) AddEndState(s *State) {
	if d.IsEndState(s) {
		return
	}
	d.endStates = append(d.endStates, s)
}

// IsEndState reports whether s was marked terminal.
func (d *Definition) IsEndState(s *State) bool {
	for _, e := range d.endStates {
		if e == s {
			return true
		}
	}
	return false
}

// GetIndexIfExists returns the index of the first state whose term is the
// same as term.
func (d *Definition) GetIndexIfExists(term *diset.Network) (int, bool) {
	if s, ok := d.Find(term); ok {
		return s.index, true
	}
	return -1, false
}

// Find returns the first state whose term is the same as term.
func (d *Definition) Find(term *diset.Network) (*State, bool) {
	for _, s := range d.states {
		if s.term.SameAs(term) {
			return s, true
		}
	}
	return nil, false
}

// GetState returns the state at index i.
func (d *Definition) GetState(i int) (*State, error) {
	if i < 0 || i >= len(d.states) {
		return nil, fmt.Errorf("%w: state %d (len %d)", ErrIndexOutOfRange, i, len(d.states))
	}
	return d.states[i], nil
}

// NoOfStates returns the number of states.
func (d *Definition) NoOfStates() int {
	return len(d.states)
}

// States returns the states in index order.
func (d *Definition) States() []*State {
	return append([]*State(nil), d.states...)
}

// EndStates returns the terminal states in the order they were marked.
func (d *Definition) EndStates() []*State {
	return append([]*State(nil), d.endStates...)
}

// TransitionCount returns the number of edges.
func (d *Definition) TransitionCount() int {
	n := 0
	for _, s := range d.states {
		n += len(s.transitions)
	}
	return n
}

// PrintDefinition lists every state with its term, then every transition,
// then the end states.
//
//	lts ring
//	S0 = a:A0 || w({a.start}) - {}
//	S0 --->?{a.start} S1
//	end {S1}
func (d *Definition) PrintDefinition() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "lts %s\n", d.Name)
	for _, s := range d.states {
		fmt.Fprintf(&sb, "%s = %s\n", s.Name(), s.term)
	}
	for _, s := range d.states {
		for i, t := range s.transitions {
			fmt.Fprintf(&sb, "%s --->%s %s\n", s.Name(), t, s.results[i].Name())
		}
	}
	names := make([]string, len(d.endStates))
	for i, s := range d.endStates {
		names[i] = s.Name()
	}
	fmt.Fprintf(&sb, "end {%s}\n", strings.Join(names, ","))
	return sb.String()
}
