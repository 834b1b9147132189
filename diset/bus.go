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

// Bus holds the pending signals of a network, with repetition, and the
// network's wire function.
type Bus struct {
	signals []NamedPort
	wire    *WireFunction
}

// NewBus creates an empty bus routed by wire. A nil wire is the identity.
func NewBus(wire *WireFunction) *Bus {
	return &Bus{wire: wire}
}

// Wire returns the shared wire function.
func (b *Bus) Wire() *WireFunction {
	return b.wire
}

// Signals returns a copy of the pending signals in arrival order.
func (b *Bus) Signals() []NamedPort {
	return append([]NamedPort(nil), b.signals...)
}

// Len returns the number of pending signals.
func (b *Bus) Len() int {
	return len(b.signals)
}

// GetPortsWithLabel returns the pending signals addressed to label.
func (b *Bus) GetPortsWithLabel(label string) []NamedPort {
	var out []NamedPort
	for _, s := range b.signals {
		if s.Label == label {
			out = append(out, s)
		}
	}
	return out
}

// Count returns how many copies of p are pending.
func (b *Bus) Count(p NamedPort) int {
	n := 0
	for _, s := range b.signals {
		if s == p {
			n++
		}
	}
	return n
}

// Contains reports whether p is pending.
func (b *Bus) Contains(p NamedPort) bool {
	return b.Count(p) > 0
}

// AddSignal appends p.
func (b *Bus) AddSignal(p NamedPort) {
	b.signals = append(b.signals, p)
}

// AddMultipleSignals appends every port of ps.
func (b *Bus) AddMultipleSignals(ps []NamedPort) {
	b.signals = append(b.signals, ps...)
}

// RemoveMultipleSignals removes, for each requested port, the first pending
// copy of it. Requests with no pending copy are skipped. It returns the
// number of signals removed.
func (b *Bus) RemoveMultipleSignals(ps []NamedPort) int {
	removed := 0
	for _, p := range ps {
		for i, s := range b.signals {
			if s == p {
				b.signals = append(b.signals[:i], b.signals[i+1:]...)
				removed++
				break
			}
		}
	}
	return removed
}

func (b *Bus) counts() map[NamedPort]int {
	c := make(map[NamedPort]int, len(b.signals))
	for _, s := range b.signals {
		c[s]++
	}
	return c
}

// SameContents reports multiset equality of the pending signals.
func (b *Bus) SameContents(o *Bus) bool {
	if len(b.signals) != len(o.signals) {
		return false
	}
	oc := o.counts()
	for p, n := range b.counts() {
		if oc[p] != n {
			return false
		}
	}
	return true
}

// SupersetOf reports whether every signal pending on o is pending on b at
// least as many times.
func (b *Bus) SupersetOf(o *Bus) bool {
	bc := b.counts()
	for p, n := range o.counts() {
		if bc[p] < n {
			return false
		}
	}
	return true
}

// Copy copies the pending signals and shares the wire function.
func (b *Bus) Copy() *Bus {
	return &Bus{signals: b.Signals(), wire: b.wire}
}

// String renders the pending signals as {l.a,m.b}.
func (b *Bus) String() string {
	return formatNamedPorts(b.signals)
}
