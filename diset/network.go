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

import "fmt"

// Network is the term P || w(Bus) - C.
//
// Definitions, the wire function and the hidden set are shared with every
// network derived through Copy and must not be changed once exploration
// starts. The named modules and the bus contents belong to this term.
type Network struct {
	modules *NamedModuleSet
	bus     *Bus
	hidden  *NamedPortSet
	defs    *Definitions
}

// NewNetwork creates a network with no modules. A nil bus is replaced by an
// empty bus with the identity wire function; a nil hidden set hides nothing.
func NewNetwork(defs *Definitions, bus *Bus, hidden *NamedPortSet) *Network {
	if bus == nil {
		bus = NewBus(nil)
	}
	if hidden == nil {
		hidden = NewNamedPortSet()
	}
	return &Network{
		modules: NewNamedModuleSet(),
		bus:     bus,
		hidden:  hidden,
		defs:    defs,
	}
}

// AddModule instantiates the constant ref under label.
func (n *Network) AddModule(label string, ref DefRef) error {
	m, err := n.defs.Resolve(ref)
	if err != nil {
		return fmt.Errorf("module %s: %w", label, err)
	}
	return n.modules.Add(NewNamedModule(label, m))
}

// Modules returns the P component.
func (n *Network) Modules() *NamedModuleSet { return n.modules }

// Bus returns the bus.
func (n *Network) Bus() *Bus { return n.bus }

// Hidden returns the shared hidden-port set C.
func (n *Network) Hidden() *NamedPortSet { return n.hidden }

// Definitions returns the shared constant arena.
func (n *Network) Definitions() *Definitions { return n.defs }

// Copy returns a term that can evolve independently of n. Named modules and
// bus contents are copied; definitions, wire function and hidden set are
// shared.
func (n *Network) Copy() *Network {
	return &Network{
		modules: n.modules.Copy(),
		bus:     n.bus.Copy(),
		hidden:  n.hidden,
		defs:    n.defs,
	}
}

// SameAs reports structural equivalence: modules pairwise by index and bus
// contents as multisets. Definitions, wire function and hidden set are
// assumed identical and not compared.
func (n *Network) SameAs(o *Network) bool {
	if n.modules.Len() != o.modules.Len() {
		return false
	}
	for i, m := range n.modules.modules {
		if !m.SameAs(o.modules.modules[i]) {
			return false
		}
	}
	return n.bus.SameContents(o.bus)
}

// IsSuperNetwork reports whether n has the same modules as o and at least
// o's pending signals. A successor that is a super network of an ancestor
// with strictly more signals indicates an unbounded bus.
func (n *Network) IsSuperNetwork(o *Network) bool {
	if n.modules.Len() != o.modules.Len() {
		return false
	}
	for i, m := range n.modules.modules {
		if !m.SameAs(o.modules.modules[i]) {
			return false
		}
	}
	return n.bus.SupersetOf(o.bus)
}

// IsSafe reports whether every module can accept the signals pending for it.
func (n *Network) IsSafe() bool {
	_, ok := n.UnsafeModule()
	return ok
}

// UnsafeModule returns the index of the first module that cannot accept its
// pending signals. The boolean is true when there is none.
func (n *Network) UnsafeModule() (int, bool) {
	for i, m := range n.modules.modules {
		if !m.CheckSafety(n.bus.GetPortsWithLabel(m.Label)) {
			return i, false
		}
	}
	return -1, true
}

// Validate checks the definitions and that every named module agrees with
// the constant it names.
func (n *Network) Validate() error {
	if err := n.defs.Validate(); err != nil {
		return err
	}
	for _, m := range n.modules.modules {
		if err := n.defs.CheckIntegrity(m.module); err != nil {
			return fmt.Errorf("module %s: %w", m.Label, err)
		}
	}
	return nil
}

// String renders P || w(Bus) - C.
func (n *Network) String() string {
	bus := "w(" + n.bus.String() + ") - " + n.hidden.String()
	if n.modules.Len() == 0 {
		return bus
	}
	return n.modules.String() + " || " + bus
}
