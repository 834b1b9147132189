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

import "testing"

// makeRing builds a requester a and a responder b:
//
//	A0 = ({start},{req}).A1    A1 = ({ack},{}).A0    B0 = ({req},{ack}).B0
//
// with a.req wired to b.req and b.ack wired to a.ack. The handshake ports are
// hidden and one start signal is pending for a.
func makeRing(t *testing.T) *Network {
	t.Helper()
	defs := NewDefinitions()
	a0, _ := defs.Declare("A0")
	a1, _ := defs.Declare("A1")
	b0, _ := defs.Declare("B0")
	mustDefine(t, defs, a0, NewIOAction([]string{"start"}, []string{"req"}, a1))
	mustDefine(t, defs, a1, NewIOAction([]string{"ack"}, nil, a0))
	mustDefine(t, defs, b0, NewIOAction([]string{"req"}, []string{"ack"}, b0))

	wire, err := NewWireFunction(
		WireConnection{Source: NamedPort{"a", "req"}, Target: NamedPort{"b", "req"}},
		WireConnection{Source: NamedPort{"b", "ack"}, Target: NamedPort{"a", "ack"}},
	)
	if err != nil {
		t.Fatalf("NewWireFunction: %v", err)
	}
	bus := NewBus(wire)
	bus.AddSignal(NamedPort{"a", "start"})
	hidden := NewNamedPortSet(
		NamedPort{"a", "req"}, NamedPort{"b", "req"},
		NamedPort{"b", "ack"}, NamedPort{"a", "ack"},
	)

	n := NewNetwork(defs, bus, hidden)
	if err := n.AddModule("a", a0); err != nil {
		t.Fatalf("AddModule(a): %v", err)
	}
	if err := n.AddModule("b", b0); err != nil {
		t.Fatalf("AddModule(b): %v", err)
	}
	return n
}

func mustDefine(t *testing.T, defs *Definitions, ref DefRef, actions ...IOAction) {
	t.Helper()
	if err := defs.Define(ref, actions...); err != nil {
		t.Fatalf("Define(%s): %v", ref.Name, err)
	}
}

// step applies the only enabled step of n.
func step(t *testing.T, n *Network) *Network {
	t.Helper()
	steps := EnabledSteps(n)
	if len(steps) != 1 {
		t.Fatalf("%s: %d enabled steps, want 1", n, len(steps))
	}
	next, err := Apply(n, steps[0])
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	return next
}
