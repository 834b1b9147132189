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

package diset

import (
	"fmt"
	"strings"
)

// Bullet marks the consumed input set of an intermediate action.
const Bullet = "•"

// DefRef is a stable handle to a constant in a Definitions arena.
// Name is carried for display; ID alone identifies the constant.
type DefRef struct {
	ID   int
	Name string
}

// IOAction is one alternative of a module: accept Inputs, emit Outputs and
// continue as the constant Result. An Intermediate action has already
// accepted its inputs and only its outputs remain.
type IOAction struct {
	Inputs       *PortSet
	Outputs      *PortSet
	Result       DefRef
	Intermediate bool
}

// NewIOAction creates the action (inputs, outputs).result.
func NewIOAction(inputs, outputs []string, result DefRef) IOAction {
	return IOAction{
		Inputs:  NewPortSet(inputs...),
		Outputs: NewPortSet(outputs...),
		Result:  result,
	}
}

// CloneForMutation returns a copy whose port sets are independent of a.
// The result handle is shared: use ResolveResult to obtain a module that may
// be changed.
func (a IOAction) CloneForMutation() IOAction {
	return IOAction{
		Inputs:       a.Inputs.Copy(),
		Outputs:      a.Outputs.Copy(),
		Result:       a.Result,
		Intermediate: a.Intermediate,
	}
}

// ResolveResult returns a private deep copy of the constant a continues as.
func (a IOAction) ResolveResult(defs *Definitions) (*Module, error) {
	return defs.Resolve(a.Result)
}

// SameAs compares port sets as sets, the result handle by ID and the
// intermediate flag.
func (a IOAction) SameAs(o IOAction) bool {
	return a.Intermediate == o.Intermediate && a.Result.ID == o.Result.ID &&
		a.Inputs.Equal(o.Inputs) && a.Outputs.Equal(o.Outputs)
}

// String renders (A,B).X, or (•,B).X for an intermediate action.
func (a IOAction) String() string {
	in := a.Inputs.String()
	if a.Intermediate {
		in = Bullet
	}
	return fmt.Sprintf("(%s,%s).%s", in, a.Outputs, a.Result.Name)
}

// Module is a state of a component: a named constant, or an intermediate
// state with an empty StateName.
type Module struct {
	StateName string
	Actions   []IOAction
}

// IsIntermediate reports whether the module is between accepting inputs and
// emitting outputs.
func (m *Module) IsIntermediate() bool {
	return m.StateName == ""
}

// Copy returns a deep copy. Result handles are shared.
func (m *Module) Copy() *Module {
	c := &Module{StateName: m.StateName, Actions: make([]IOAction, len(m.Actions))}
	for i, a := range m.Actions {
		c.Actions[i] = a.CloneForMutation()
	}
	return c
}

// SameAs reports structural equivalence. Modules with the same non-empty
// state name are equivalent without looking further; Definitions keeps
// that shortcut sound by refusing two constants with one name.
func (m *Module) SameAs(o *Module) bool {
	if m.StateName != "" && m.StateName == o.StateName {
		return true
	}
	return sameActions(m.Actions, o.Actions)
}

func sameActions(a, b []IOAction) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].SameAs(b[i]) {
			return false
		}
	}
	return true
}

func joinActions(actions []IOAction) string {
	parts := make([]string, len(actions))
	for i, a := range actions {
		parts[i] = a.String()
	}
	return strings.Join(parts, " [] ")
}

// String renders the state name, or [a1 [] a2] for an unnamed module.
func (m *Module) String() string {
	if m.StateName != "" {
		return m.StateName
	}
	return "[" + joinActions(m.Actions) + "]"
}

// Definition renders Name = a1 [] a2.
func (m *Module) Definition() string {
	return fmt.Sprintf("%s = %s", m.StateName, joinActions(m.Actions))
}
