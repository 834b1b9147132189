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
	// ErrIndexOutOfRange is returned by positional accessors given an invalid index.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrDuplicateLabel is returned when two named modules share a label.
	ErrDuplicateLabel = errors.New("duplicate module label")
)

// NamedModule is a module instance inside a network. It always owns its
// module outright, so the network can change it as it evolves.
type NamedModule struct {
	Label  string
	module *Module
}

// NewNamedModule tags a deep copy of m with label.
func NewNamedModule(label string, m *Module) *NamedModule {
	return &NamedModule{Label: label, module: m.Copy()}
}

// Module returns the module owned by n. Callers holding n exclusively may
// change it.
func (n *NamedModule) Module() *Module {
	return n.module
}

// SetModule replaces n's module with a deep copy of m.
func (n *NamedModule) SetModule(m *Module) {
	n.module = m.Copy()
}

// Copy returns a deep copy of n.
func (n *NamedModule) Copy() *NamedModule {
	return NewNamedModule(n.Label, n.module)
}

// SameAs compares labels and modules.
func (n *NamedModule) SameAs(o *NamedModule) bool {
	return n.Label == o.Label && n.module.SameAs(o.module)
}

// CheckSafety reports whether n can accept the signals pending for it.
// pending must already be filtered to n's label; ports are matched by bare
// name and repeated signals count once. An intermediate module, or one with
// nothing pending, is trivially safe. Otherwise some action with a
// non-empty input set must expect every pending port.
func (n *NamedModule) CheckSafety(pending []NamedPort) bool {
	if n.module.IsIntermediate() || len(pending) == 0 {
		return true
	}
	names := NewPortSet()
	for _, p := range pending {
		names.Add(p.Port)
	}
	for _, a := range n.module.Actions {
		if a.Inputs.IsEmpty() {
			continue
		}
		if names.Subset(a.Inputs) {
			return true
		}
	}
	return false
}

// String renders label:module.
func (n *NamedModule) String() string {
	return n.Label + ":" + n.module.String()
}

// NamedModuleSet is the ordered P component of a network.
type NamedModuleSet struct {
	modules []*NamedModule
}

// NewNamedModuleSet creates an empty set.
func NewNamedModuleSet() *NamedModuleSet {
	return &NamedModuleSet{}
}

// Add appends nm. Labels must be unique.
func (s *NamedModuleSet) Add(nm *NamedModule) error {
	if _, ok := s.IndexOf(nm.Label); ok {
		return fmt.Errorf("%w: %s", ErrDuplicateLabel, nm.Label)
	}
	s.modules = append(s.modules, nm)
	return nil
}

// Get returns the module at index i.
func (s *NamedModuleSet) Get(i int) (*NamedModule, error) {
	if i < 0 || i >= len(s.modules) {
		return nil, fmt.Errorf("%w: module %d (len %d)", ErrIndexOutOfRange, i, len(s.modules))
	}
	return s.modules[i], nil
}

// All returns the modules in index order. The slice is a copy; the
// modules are not.
func (s *NamedModuleSet) All() []*NamedModule {
	return append([]*NamedModule(nil), s.modules...)
}

// IndexOf finds a module by label.
func (s *NamedModuleSet) IndexOf(label string) (int, bool) {
	for i, m := range s.modules {
		if m.Label == label {
			return i, true
		}
	}
	return -1, false
}

// Len returns the number of modules.
func (s *NamedModuleSet) Len() int {
	return len(s.modules)
}

// Copy deep-copies every named module.
func (s *NamedModuleSet) Copy() *NamedModuleSet {
	c := &NamedModuleSet{modules: make([]*NamedModule, len(s.modules))}
	for i, m := range s.modules {
		c.modules[i] = m.Copy()
	}
	return c
}

// String renders the modules separated by " || ".
func (s *NamedModuleSet) String() string {
	parts := make([]string, len(s.modules))
	for i, m := range s.modules {
		parts[i] = m.String()
	}
	return strings.Join(parts, " || ")
}
