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

import (
	"errors"
	"strings"
	"testing"

	"github.com/diset/verifier/intset"
)

// newModule builds a module from name lists. Transitions are added by the caller.
func newModule(t *testing.T, name string, states, inputs, outputs []string) *Module {
	t.Helper()
	m := New(name)
	for _, s := range states {
		m.AddState(s)
	}
	for _, i := range inputs {
		m.AddInput(i)
	}
	for _, o := range outputs {
		m.AddOutput(o)
	}
	return m
}

func mustAdd(t *testing.T, m *Module, src string, in []string, tgt string, out []string) {
	t.Helper()
	added, err := m.AddTransitionByName(src, in, tgt, out)
	if err != nil {
		t.Fatalf("AddTransitionByName(%s,%v,%s,%v): %v", src, in, tgt, out, err)
	}
	if !added {
		t.Fatalf("AddTransitionByName(%s,%v,%s,%v): unexpectedly a duplicate", src, in, tgt, out)
	}
}

// makeToggle creates q0 -x-> q1 -y-> q0 with no outputs.
func makeToggle(t *testing.T) *Module {
	m := newModule(t, "toggle", []string{"q0", "q1"}, []string{"x", "y"}, nil)
	mustAdd(t, m, "q0", []string{"x"}, "q1", nil)
	mustAdd(t, m, "q1", []string{"y"}, "q0", nil)
	return m
}

// makeArbiter creates a single state choosing between {a} and {a,b}.
func makeArbiter(t *testing.T) *Module {
	m := newModule(t, "arbiter", []string{"q0"}, []string{"a", "b"}, nil)
	mustAdd(t, m, "q0", []string{"a"}, "q0", nil)
	mustAdd(t, m, "q0", []string{"a", "b"}, "q0", nil)
	return m
}

// makeDoubleDriver creates a module that emits o twice when a and b are both
// pending at q0.
func makeDoubleDriver(t *testing.T) *Module {
	m := newModule(t, "double", []string{"q0", "q1", "q2"}, []string{"a", "b"}, []string{"o"})
	mustAdd(t, m, "q0", []string{"a"}, "q1", []string{"o"})
	mustAdd(t, m, "q0", []string{"a", "b"}, "q1", nil)
	mustAdd(t, m, "q1", []string{"b"}, "q2", []string{"o"})
	return m
}

func TestAddTransitionRejectsDuplicates(t *testing.T) {
	m := makeToggle(t)
	added, err := m.AddTransition(0, intset.New(0), 1, intset.New())
	if err != nil {
		t.Fatalf("AddTransition: %v", err)
	}
	if added {
		t.Error("duplicate transition should not be added")
	}
	if m.NumTransitions() != 2 {
		t.Errorf("NumTransitions() = %d, want 2", m.NumTransitions())
	}
}

func TestAddTransitionValidatesIndices(t *testing.T) {
	m := makeToggle(t)
	cases := []struct {
		name string
		src  int
		in   *intset.IntSet
		tgt  int
		out  *intset.IntSet
	}{
		{"bad source", 5, intset.New(0), 0, intset.New()},
		{"bad target", 0, intset.New(0), -1, intset.New()},
		{"bad input", 0, intset.New(9), 0, intset.New()},
		{"bad output", 0, intset.New(0), 0, intset.New(0)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := m.AddTransition(tc.src, tc.in, tc.tgt, tc.out)
			if !errors.Is(err, ErrInvalidIndex) {
				t.Errorf("error = %v, want ErrInvalidIndex", err)
			}
		})
	}
}

func TestAddTransitionByNameUnknown(t *testing.T) {
	m := makeToggle(t)
	if _, err := m.AddTransitionByName("q9", nil, "q0", nil); !errors.Is(err, ErrUnknownName) {
		t.Errorf("unknown state error = %v", err)
	}
	if _, err := m.AddTransitionByName("q0", []string{"z"}, "q0", nil); !errors.Is(err, ErrUnknownName) {
		t.Errorf("unknown input error = %v", err)
	}
}

func TestAddTransitionCopiesSets(t *testing.T) {
	m := makeToggle(t)
	in := intset.New(1)
	if _, err := m.AddTransition(0, in, 0, intset.New()); err != nil {
		t.Fatal(err)
	}
	in.Add(0)
	tr, _ := m.Transition(2)
	if tr.Inputs.Contains(0) {
		t.Error("stored transition changed when caller mutated its input set")
	}
}

func TestTransitionAccessorsReturnCopies(t *testing.T) {
	m := makeToggle(t)
	before := m.NumTransitions()

	tr, err := m.Transition(0)
	if err != nil {
		t.Fatal(err)
	}
	tr.Inputs.Add(99)
	for _, c := range m.Transitions() {
		c.Outputs.Add(99)
	}
	for _, c := range m.TransitionsFrom(0) {
		c.Inputs.Add(98)
	}

	for i, stored := range m.Transitions() {
		if stored.Inputs.Contains(99) || stored.Inputs.Contains(98) || stored.Outputs.Contains(99) {
			t.Errorf("transition %d changed through an accessor: %s", i, stored)
		}
	}
	if err := m.Validate(); err != nil {
		t.Errorf("Validate after mutating copies: %v", err)
	}
	if m.NumTransitions() != before {
		t.Errorf("NumTransitions = %d, want %d", m.NumTransitions(), before)
	}
}

func TestLookups(t *testing.T) {
	m := makeArbiter(t)

	if got := len(m.TransitionsFrom(0)); got != 2 {
		t.Errorf("TransitionsFrom(0) = %d transitions, want 2", got)
	}
	if got := len(m.TransitionsTo(0)); got != 2 {
		t.Errorf("TransitionsTo(0) = %d transitions, want 2", got)
	}
	ab := intset.New(1, 0)
	if got := len(m.TransitionsFromWithInputs(0, ab)); got != 1 {
		t.Errorf("TransitionsFromWithInputs(0,{b,a}) = %d, want 1", got)
	}
	if got := m.Occurrences(intset.New(1), 0); got != 0 {
		t.Errorf("Occurrences({b}) = %d, want 0", got)
	}
	if got := m.Occurrences(intset.New(0), 0); got != 1 {
		t.Errorf("Occurrences({a}) = %d, want 1", got)
	}
	if _, err := m.Transition(7); !errors.Is(err, ErrInvalidIndex) {
		t.Errorf("Transition(7) error = %v", err)
	}
	if _, err := m.StateName(3); !errors.Is(err, ErrInvalidIndex) {
		t.Errorf("StateName(3) error = %v", err)
	}
}

func TestInvertRoundTrip(t *testing.T) {
	for _, m := range []*Module{makeToggle(t), makeArbiter(t), makeDoubleDriver(t)} {
		orig := m.Copy()
		m.Invert()
		if m.SameAs(orig) && m.NumTransitions() > 0 {
			t.Errorf("%s: single inversion should change the module", m.Name)
		}
		m.Invert()
		if !m.SameAs(orig) {
			t.Errorf("%s: Invert().Invert() differs from the original\n%s\nvs\n%s", m.Name, m, orig)
		}
	}
}

func TestInvertSwapsRoles(t *testing.T) {
	m := makeDoubleDriver(t)
	m.Invert()

	if got := strings.Join(m.Inputs(), ","); got != "o" {
		t.Errorf("inputs after Invert = %s, want o", got)
	}
	first, _ := m.Transition(0)
	if got := m.FormatTransition(first); got != "(q1,{o},q0,{a})" {
		t.Errorf("first inverted transition = %s", got)
	}
	if err := m.Validate(); err != nil {
		t.Errorf("inverted module invalid: %v", err)
	}
}

func TestCopyIsIndependent(t *testing.T) {
	m := makeToggle(t)
	c := m.Copy()
	c.AddState("q2")
	if _, err := c.AddTransitionByName("q2", []string{"x"}, "q0", nil); err != nil {
		t.Fatal(err)
	}
	if m.NumStates() != 2 || m.NumTransitions() != 2 {
		t.Error("mutating the copy changed the original")
	}
}

func TestString(t *testing.T) {
	m := makeToggle(t)
	want := "module toggle\nstates {q0,q1}\ninputs {x,y}\noutputs {}\n(q0,{x},q1,{})\n(q1,{y},q0,{})\n"
	if got := m.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}

func TestReachableStates(t *testing.T) {
	m := makeDoubleDriver(t)

	if got := m.ReachableStates(0).Count(); got != 3 {
		t.Errorf("ReachableStates(q0).Count() = %d, want 3", got)
	}
	if got := m.UnreachableStates(2); len(got) != 2 || got[0] != 0 || got[1] != 1 {
		t.Errorf("UnreachableStates(q2) = %v, want [0 1]", got)
	}
	if got := m.ReachableStates(99).Count(); got != 0 {
		t.Errorf("ReachableStates(invalid).Count() = %d, want 0", got)
	}
}
