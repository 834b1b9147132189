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

// Package setnotation models a single delay-insensitive module as a finite
// automaton in set notation and hosts the analyses used to classify it.
//
// A Module has indexed states, input ports and output ports. Each Transition
// is a 4-tuple (source, inputs, target, outputs): from the source state, once
// every port in the input set has received a signal, the module moves to the
// target state and emits a signal on every port of the output set.
//
// # Analyses
//
// The analyses answer questions about how the module behaves when several
// inputs are already pending:
//   - auto-firing: a pending input budget drives a chain of transitions
//   - safety: the module can still accept everything that is pending
//   - clash: the same output line is driven twice without being read
//   - arbitration: transitions from one state have related input sets
//   - stability and one-step consistency
//
// Several analyses enumerate paths, subsets or permutations and are
// exponential in the number of ports. They are meant for hand-sized modules.
package setnotation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/diset/verifier/intset"
)

var (
	// ErrInvalidIndex is returned when a transition refers to a state or port
	// index that the module does not define.
	ErrInvalidIndex = errors.New("invalid index")

	// ErrUnknownName is returned when a state or port name is not defined.
	ErrUnknownName = errors.New("unknown name")

	// ErrDuplicateName is returned by Validate when a name list repeats an entry.
	ErrDuplicateName = errors.New("duplicate name")
)

// Transition is one entry of a module's transition relation.
type Transition struct {
	Source  int
	Inputs  *intset.IntSet
	Target  int
	Outputs *intset.IntSet
}

// Equal reports whether t and o are the same 4-tuple. Port sets compare as sets.
func (t Transition) Equal(o Transition) bool {
	return t.Source == o.Source && t.Target == o.Target &&
		t.Inputs.Equal(o.Inputs) && t.Outputs.Equal(o.Outputs)
}

// sameEffect compares everything except the source state.
func (t Transition) sameEffect(o Transition) bool {
	return t.Target == o.Target && t.Inputs.Equal(o.Inputs) && t.Outputs.Equal(o.Outputs)
}

func (t Transition) copy() Transition {
	return Transition{
		Source:  t.Source,
		Inputs:  t.Inputs.Copy(),
		Target:  t.Target,
		Outputs: t.Outputs.Copy(),
	}
}

// String renders the transition with indices: (0,{1},2,{0}).
func (t Transition) String() string {
	return fmt.Sprintf("(%d,%s,%d,%s)", t.Source, t.Inputs, t.Target, t.Outputs)
}

// Path is a sequence of transitions taken one after another.
type Path []Transition

func (p Path) extend(t Transition) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, t)
}

// End returns the state the path finishes in, or start if the path is empty.
func (p Path) End(start int) int {
	if len(p) == 0 {
		return start
	}
	return p[len(p)-1].Target
}

// Module is a set-notation automaton.
type Module struct {
	// Name identifies the module in reports and renderings.
	Name string

	states      []string
	inputs      []string
	outputs     []string
	transitions []Transition
}

// New creates an empty module.
func New(name string) *Module {
	return &Module{Name: name}
}

func addName(names *[]string, name string) (int, bool) {
	for i, n := range *names {
		if n == name {
			return i, false
		}
	}
	*names = append(*names, name)
	return len(*names) - 1, true
}

func indexOf(names []string, name string) (int, bool) {
	for i, n := range names {
		if n == name {
			return i, true
		}
	}
	return -1, false
}

// AddState adds a state name and returns its index. If the name already
// exists its index is returned with false.
func (m *Module) AddState(name string) (int, bool) { return addName(&m.states, name) }

// AddInput adds an input port name and returns its index.
func (m *Module) AddInput(name string) (int, bool) { return addName(&m.inputs, name) }

// AddOutput adds an output port name and returns its index.
func (m *Module) AddOutput(name string) (int, bool) { return addName(&m.outputs, name) }

// StateIndex looks up a state by name.
func (m *Module) StateIndex(name string) (int, bool) { return indexOf(m.states, name) }

// InputIndex looks up an input port by name.
func (m *Module) InputIndex(name string) (int, bool) { return indexOf(m.inputs, name) }

// OutputIndex looks up an output port by name.
func (m *Module) OutputIndex(name string) (int, bool) { return indexOf(m.outputs, name) }

// NumStates returns the number of states.
func (m *Module) NumStates() int { return len(m.states) }

// States returns a copy of the state names.
func (m *Module) States() []string { return append([]string(nil), m.states...) }

// Inputs returns a copy of the input port names.
func (m *Module) Inputs() []string { return append([]string(nil), m.inputs...) }

// Outputs returns a copy of the output port names.
func (m *Module) Outputs() []string { return append([]string(nil), m.outputs...) }

// StateName returns the name of state i.
func (m *Module) StateName(i int) (string, error) {
	if i < 0 || i >= len(m.states) {
		return "", fmt.Errorf("%w: state %d", ErrInvalidIndex, i)
	}
	return m.states[i], nil
}

// AllInputs returns the set of every input index.
func (m *Module) AllInputs() *intset.IntSet {
	s := intset.New()
	for i := range m.inputs {
		s.Add(i)
	}
	return s
}

func validPorts(s *intset.IntSet, n int) bool {
	for _, v := range s.Values() {
		if v < 0 || v >= n {
			return false
		}
	}
	return true
}

// AddTransition adds (src, in, tgt, out). It returns false if an equal
// transition is already present and an error if any index is invalid.
// The port sets are copied.
func (m *Module) AddTransition(src int, in *intset.IntSet, tgt int, out *intset.IntSet) (bool, error) {
	if src < 0 || src >= len(m.states) {
		return false, fmt.Errorf("%w: source state %d", ErrInvalidIndex, src)
	}
	if tgt < 0 || tgt >= len(m.states) {
		return false, fmt.Errorf("%w: target state %d", ErrInvalidIndex, tgt)
	}
	if !validPorts(in, len(m.inputs)) {
		return false, fmt.Errorf("%w: input set %s", ErrInvalidIndex, in)
	}
	if !validPorts(out, len(m.outputs)) {
		return false, fmt.Errorf("%w: output set %s", ErrInvalidIndex, out)
	}
	t := Transition{Source: src, Inputs: in.Copy(), Target: tgt, Outputs: out.Copy()}
	for _, existing := range m.transitions {
		if existing.Equal(t) {
			return false, nil
		}
	}
	m.transitions = append(m.transitions, t)
	return true, nil
}

func lookupAll(names []string, want []string, kind string) (*intset.IntSet, error) {
	s := intset.New()
	for _, w := range want {
		i, ok := indexOf(names, w)
		if !ok {
			return nil, fmt.Errorf("%w: %s %q", ErrUnknownName, kind, w)
		}
		s.Add(i)
	}
	return s, nil
}

// AddTransitionByName is AddTransition with states and ports given by name.
// Every name must already be defined.
func (m *Module) AddTransitionByName(src string, in []string, tgt string, out []string) (bool, error) {
	s, ok := m.StateIndex(src)
	if !ok {
		return false, fmt.Errorf("%w: state %q", ErrUnknownName, src)
	}
	d, ok := m.StateIndex(tgt)
	if !ok {
		return false, fmt.Errorf("%w: state %q", ErrUnknownName, tgt)
	}
	ins, err := lookupAll(m.inputs, in, "input")
	if err != nil {
		return false, err
	}
	outs, err := lookupAll(m.outputs, out, "output")
	if err != nil {
		return false, err
	}
	return m.AddTransition(s, ins, d, outs)
}

// Transition returns transition i.
func (m *Module) Transition(i int) (Transition, error) {
	if i < 0 || i >= len(m.transitions) {
		return Transition{}, fmt.Errorf("%w: transition %d", ErrInvalidIndex, i)
	}
	return m.transitions[i].copy(), nil
}

// Transitions returns copies of the transitions in insertion order.
func (m *Module) Transitions() []Transition {
	out := make([]Transition, len(m.transitions))
	for i, t := range m.transitions {
		out[i] = t.copy()
	}
	return out
}

// NumTransitions returns the number of transitions.
func (m *Module) NumTransitions() int { return len(m.transitions) }

// TransitionsFrom returns the transitions whose source is state.
func (m *Module) TransitionsFrom(state int) []Transition {
	var out []Transition
	for _, t := range m.transitions {
		if t.Source == state {
			out = append(out, t.copy())
		}
	}
	return out
}

// TransitionsTo returns the transitions whose target is state.
func (m *Module) TransitionsTo(state int) []Transition {
	var out []Transition
	for _, t := range m.transitions {
		if t.Target == state {
			out = append(out, t.copy())
		}
	}
	return out
}

// TransitionsFromWithInputs returns the transitions from state whose input
// set equals inputs exactly.
func (m *Module) TransitionsFromWithInputs(state int, inputs *intset.IntSet) []Transition {
	var out []Transition
	for _, t := range m.transitions {
		if t.Source == state && t.Inputs.Equal(inputs) {
			out = append(out, t.copy())
		}
	}
	return out
}

// Occurrences counts what TransitionsFromWithInputs would return.
func (m *Module) Occurrences(inputs *intset.IntSet, state int) int {
	n := 0
	for _, t := range m.transitions {
		if t.Source == state && t.Inputs.Equal(inputs) {
			n++
		}
	}
	return n
}

// Copy returns a deep copy of m.
func (m *Module) Copy() *Module {
	c := &Module{
		Name:        m.Name,
		states:      m.States(),
		inputs:      m.Inputs(),
		outputs:     m.Outputs(),
		transitions: make([]Transition, len(m.transitions)),
	}
	for i, t := range m.transitions {
		c.transitions[i] = t.copy()
	}
	return c
}

func sameNames(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// SameAs reports structural identity: identical name lists and the same
// transitions, in any order.
func (m *Module) SameAs(o *Module) bool {
	if !sameNames(m.states, o.states) || !sameNames(m.inputs, o.inputs) || !sameNames(m.outputs, o.outputs) {
		return false
	}
	if len(m.transitions) != len(o.transitions) {
		return false
	}
	for _, t := range m.transitions {
		found := false
		for _, u := range o.transitions {
			if t.Equal(u) {
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

// Invert turns m into its mirror: inputs and outputs swap roles and every
// transition runs backwards with its port sets exchanged. The mirror of a
// module is a model of the environment it expects.
func (m *Module) Invert() {
	m.inputs, m.outputs = m.outputs, m.inputs
	for i, t := range m.transitions {
		m.transitions[i] = Transition{
			Source:  t.Target,
			Inputs:  t.Outputs,
			Target:  t.Source,
			Outputs: t.Inputs,
		}
	}
}

// Validate checks that names are unique and every transition refers to
// defined states and ports.
func (m *Module) Validate() error {
	for kind, names := range map[string][]string{"state": m.states, "input": m.inputs, "output": m.outputs} {
		seen := make(map[string]bool, len(names))
		for _, n := range names {
			if seen[n] {
				return fmt.Errorf("%w: %s %q", ErrDuplicateName, kind, n)
			}
			seen[n] = true
		}
	}
	for i, t := range m.transitions {
		if t.Source < 0 || t.Source >= len(m.states) || t.Target < 0 || t.Target >= len(m.states) ||
			!validPorts(t.Inputs, len(m.inputs)) || !validPorts(t.Outputs, len(m.outputs)) {
			return fmt.Errorf("%w: transition %d %s", ErrInvalidIndex, i, t)
		}
	}
	return nil
}

// FormatTransition renders t with the module's names: (q0,{a},q1,{c}).
func (m *Module) FormatTransition(t Transition) string {
	return fmt.Sprintf("(%s,%s,%s,%s)",
		nameOr(m.states, t.Source), t.Inputs.Format(m.inputs),
		nameOr(m.states, t.Target), t.Outputs.Format(m.outputs))
}

func nameOr(names []string, i int) string {
	if i >= 0 && i < len(names) {
		return names[i]
	}
	return fmt.Sprint(i)
}

// String lists the module definition, one transition per line.
func (m *Module) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "module %s\n", m.Name)
	fmt.Fprintf(&sb, "states {%s}\n", strings.Join(m.states, ","))
	fmt.Fprintf(&sb, "inputs {%s}\n", strings.Join(m.inputs, ","))
	fmt.Fprintf(&sb, "outputs {%s}\n", strings.Join(m.outputs, ","))
	for _, t := range m.transitions {
		sb.WriteString(m.FormatTransition(t))
		sb.WriteString("\n")
	}
	return sb.String()
}
