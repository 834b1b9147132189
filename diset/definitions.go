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
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownDefinition is returned for a handle or name the arena does not hold.
	ErrUnknownDefinition = errors.New("unknown definition")

	// ErrUndefined is returned when a declared constant has no actions yet.
	ErrUndefined = errors.New("constant declared but not defined")

	// ErrDuplicateDefinition is returned when a name is declared twice or a
	// constant is defined twice.
	ErrDuplicateDefinition = errors.New("duplicate definition")

	// ErrIntegrity is returned when a module carries a constant's name but
	// not its actions.
	ErrIntegrity = errors.New("module differs from the constant it names")
)

type definition struct {
	name    string
	actions []IOAction
	defined bool
}

// Definitions is the arena of constant module definitions shared by a
// network and every term derived from it. Constants are declared, defined
// once and never changed afterwards.
type Definitions struct {
	defs []*definition
}

// NewDefinitions creates an empty arena.
func NewDefinitions() *Definitions {
	return &Definitions{}
}

// Len returns the number of declared constants.
func (d *Definitions) Len() int {
	return len(d.defs)
}

// Declare reserves a handle for name so that definitions can refer to each
// other before they are given actions.
func (d *Definitions) Declare(name string) (DefRef, error) {
	if name == "" {
		return DefRef{}, fmt.Errorf("%w: empty name", ErrUnknownDefinition)
	}
	if _, ok := d.Lookup(name); ok {
		return DefRef{}, fmt.Errorf("%w: %s", ErrDuplicateDefinition, name)
	}
	d.defs = append(d.defs, &definition{name: name})
	return DefRef{ID: len(d.defs) - 1, Name: name}, nil
}

// Define gives a declared constant its actions. The actions are copied.
func (d *Definitions) Define(ref DefRef, actions ...IOAction) error {
	def, err := d.get(ref)
	if err != nil {
		return err
	}
	if def.defined {
		return fmt.Errorf("%w: %s", ErrDuplicateDefinition, def.name)
	}
	def.actions = make([]IOAction, len(actions))
	for i, a := range actions {
		def.actions[i] = a.CloneForMutation()
	}
	def.defined = true
	return nil
}

// Add declares and defines m in one step. m.StateName names the constant.
func (d *Definitions) Add(m *Module) (DefRef, error) {
	ref, err := d.Declare(m.StateName)
	if err != nil {
		return DefRef{}, err
	}
	return ref, d.Define(ref, m.Actions...)
}

// Lookup finds a constant by name.
func (d *Definitions) Lookup(name string) (DefRef, bool) {
	for i, def := range d.defs {
		if def.name == name {
			return DefRef{ID: i, Name: name}, true
		}
	}
	return DefRef{}, false
}

func (d *Definitions) get(ref DefRef) (*definition, error) {
	if ref.ID < 0 || ref.ID >= len(d.defs) {
		return nil, fmt.Errorf("%w: #%d", ErrUnknownDefinition, ref.ID)
	}
	return d.defs[ref.ID], nil
}

// Name returns the name of the constant behind ref.
func (d *Definitions) Name(ref DefRef) (string, error) {
	def, err := d.get(ref)
	if err != nil {
		return "", err
	}
	return def.name, nil
}

// Resolve returns a private deep copy of the constant behind ref.
func (d *Definitions) Resolve(ref DefRef) (*Module, error) {
	def, err := d.get(ref)
	if err != nil {
		return nil, err
	}
	if !def.defined {
		return nil, fmt.Errorf("%w: %s", ErrUndefined, def.name)
	}
	m := &Module{StateName: def.name, Actions: make([]IOAction, len(def.actions))}
	for i, a := range def.actions {
		m.Actions[i] = a.CloneForMutation()
	}
	return m, nil
}

// CheckIntegrity verifies that a named module has exactly the actions of the
// constant it names. Intermediate modules always pass.
func (d *Definitions) CheckIntegrity(m *Module) error {
	if m.IsIntermediate() {
		return nil
	}
	ref, ok := d.Lookup(m.StateName)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownDefinition, m.StateName)
	}
	def, err := d.Resolve(ref)
	if err != nil {
		return err
	}
	if !sameActions(def.Actions, m.Actions) {
		return fmt.Errorf("%w: %s", ErrIntegrity, m.StateName)
	}
	return nil
}

// Validate checks that every constant is defined and every action result
// refers to a constant of this arena.
func (d *Definitions) Validate() error {
	for _, def := range d.defs {
		if !def.defined {
			return fmt.Errorf("%w: %s", ErrUndefined, def.name)
		}
		for _, a := range def.actions {
			name, err := d.Name(a.Result)
			if err != nil {
				return fmt.Errorf("%s: %w", def.name, err)
			}
			if name != a.Result.Name {
				return fmt.Errorf("%w: %s refers to #%d as %s, arena has %s",
					ErrUnknownDefinition, def.name, a.Result.ID, a.Result.Name, name)
			}
		}
	}
	return nil
}

// String lists every definition, one per line.
func (d *Definitions) String() string {
	var sb strings.Builder
	for _, def := range d.defs {
		m := &Module{StateName: def.name, Actions: def.actions}
		sb.WriteString(m.Definition())
		sb.WriteString("\n")
	}
	return sb.String()
}
