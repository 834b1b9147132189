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
)

// ErrNotEnabled is returned by Apply for a step the network cannot take.
var ErrNotEnabled = errors.New("step not enabled")

// StepKind distinguishes the two halves of an action.
type StepKind int

const (
	// InputStep consumes an action's inputs from the bus.
	InputStep StepKind = iota
	// OutputStep emits an intermediate action's outputs onto the bus.
	OutputStep
)

func (k StepKind) String() string {
	if k == OutputStep {
		return "output"
	}
	return "input"
}

// Step names one action of one module.
type Step struct {
	Module int
	Action int
	Kind   StepKind
}

// EnabledSteps lists the steps n can take, in module then action order.
//
// An intermediate module offers an output step for each of its actions.
// Any other module offers an input step for each action whose inputs are
// all pending on the bus under the module's label.
func EnabledSteps(n *Network) []Step {
	var steps []Step
	for i, nm := range n.modules.modules {
		m := nm.module
		for j, a := range m.Actions {
			if m.IsIntermediate() {
				steps = append(steps, Step{Module: i, Action: j, Kind: OutputStep})
				continue
			}
			if inputsPending(n.bus, nm.Label, a.Inputs) {
				steps = append(steps, Step{Module: i, Action: j, Kind: InputStep})
			}
		}
	}
	return steps
}

func inputsPending(b *Bus, label string, inputs *PortSet) bool {
	for _, p := range inputs.Ports() {
		if !b.Contains(NamedPort{Label: label, Port: p}) {
			return false
		}
	}
	return true
}

func (n *Network) action(s Step) (*NamedModule, IOAction, error) {
	nm, err := n.modules.Get(s.Module)
	if err != nil {
		return nil, IOAction{}, err
	}
	if s.Action < 0 || s.Action >= len(nm.module.Actions) {
		return nil, IOAction{}, fmt.Errorf("%w: action %d of %s", ErrIndexOutOfRange, s.Action, nm.Label)
	}
	return nm, nm.module.Actions[s.Action], nil
}

// Apply returns the network reached by taking s. n is not modified.
func Apply(n *Network, s Step) (*Network, error) {
	_, a, err := n.action(s)
	if err != nil {
		return nil, err
	}

	next := n.Copy()
	nm := next.modules.modules[s.Module]

	switch s.Kind {
	case InputStep:
		if nm.module.IsIntermediate() || !inputsPending(next.bus, nm.Label, a.Inputs) {
			return nil, fmt.Errorf("%w: input %s at %s", ErrNotEnabled, a, nm.Label)
		}
		consumed := make([]NamedPort, 0, a.Inputs.Len())
		for _, p := range a.Inputs.Ports() {
			consumed = append(consumed, NamedPort{Label: nm.Label, Port: p})
		}
		next.bus.RemoveMultipleSignals(consumed)

		pending := a.CloneForMutation()
		pending.Inputs = NewPortSet()
		pending.Intermediate = true
		nm.module = &Module{Actions: []IOAction{pending}}

	case OutputStep:
		if !nm.module.IsIntermediate() {
			return nil, fmt.Errorf("%w: output %s at %s", ErrNotEnabled, a, nm.Label)
		}
		for _, p := range a.Outputs.Ports() {
			next.bus.AddSignal(next.bus.wire.GetTarget(NamedPort{Label: nm.Label, Port: p}))
		}
		result, err := a.ResolveResult(next.defs)
		if err != nil {
			return nil, err
		}
		nm.module = result

	default:
		return nil, fmt.Errorf("%w: kind %d", ErrNotEnabled, s.Kind)
	}
	return next, nil
}

// VisiblePorts returns the ports of s an observer of n can see. Input ports
// are visible unless hidden; an output port is visible unless it or the
// port it is wired to is hidden. A step with no visible ports is internal.
func VisiblePorts(n *Network, s Step) ([]NamedPort, error) {
	nm, a, err := n.action(s)
	if err != nil {
		return nil, err
	}
	ports := a.Inputs
	if s.Kind == OutputStep {
		ports = a.Outputs
	}
	var out []NamedPort
	for _, p := range ports.Ports() {
		np := NamedPort{Label: nm.Label, Port: p}
		if n.hidden.Contains(np) {
			continue
		}
		if s.Kind == OutputStep && n.hidden.Contains(n.bus.wire.GetTarget(np)) {
			continue
		}
		out = append(out, np)
	}
	return out, nil
}
