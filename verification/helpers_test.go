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

package verification

import (
	"testing"

	"github.com/diset/verifier/diset"
)

func np(label, port string) diset.NamedPort {
	return diset.NamedPort{Label: label, Port: port}
}

// makeRing creates a requester a and a responder b with the handshake
// hidden:
//
//	A0 = ({start},{req}).A1   A1 = ({ack},{}).A0   B0 = ({req},{ack}).B0
//
// One start signal is pending. The LTS is a chain of 7 states whose first
// transition is ?{a.start} and whose remaining 5 are internal.
func makeRing(t *testing.T) *diset.Network {
	t.Helper()
	defs := diset.NewDefinitions()
	a0, _ := defs.Declare("A0")
	a1, _ := defs.Declare("A1")
	b0, _ := defs.Declare("B0")
	mustDefine(t, defs, a0, diset.NewIOAction([]string{"start"}, []string{"req"}, a1))
	mustDefine(t, defs, a1, diset.NewIOAction([]string{"ack"}, nil, a0))
	mustDefine(t, defs, b0, diset.NewIOAction([]string{"req"}, []string{"ack"}, b0))

	wire, err := diset.NewWireFunction(
		diset.WireConnection{Source: np("a", "req"), Target: np("b", "req")},
		diset.WireConnection{Source: np("b", "ack"), Target: np("a", "ack")},
	)
	if err != nil {
		t.Fatal(err)
	}
	bus := diset.NewBus(wire)
	bus.AddSignal(np("a", "start"))
	hidden := diset.NewNamedPortSet(np("a", "req"), np("b", "req"), np("b", "ack"), np("a", "ack"))

	n := diset.NewNetwork(defs, bus, hidden)
	mustAddModule(t, n, "a", a0)
	mustAddModule(t, n, "b", b0)
	return n
}

// makeProducer creates a module p = ({},{o}).p that emits o forever with
// nobody reading it.
func makeProducer(t *testing.T) *diset.Network {
	t.Helper()
	defs := diset.NewDefinitions()
	x, _ := defs.Declare("X")
	mustDefine(t, defs, x, diset.NewIOAction(nil, []string{"o"}, x))
	n := diset.NewNetwork(defs, nil, nil)
	mustAddModule(t, n, "p", x)
	return n
}

// makeWiredAwayProducer creates the producer of makeProducer with its
// output wired to env.o, a label no module listens on.
func makeWiredAwayProducer(t *testing.T) *diset.Network {
	t.Helper()
	defs := diset.NewDefinitions()
	x, _ := defs.Declare("X")
	mustDefine(t, defs, x, diset.NewIOAction(nil, []string{"o"}, x))

	wire, err := diset.NewWireFunction(diset.WireConnection{Source: np("p", "o"), Target: np("env", "o")})
	if err != nil {
		t.Fatal(err)
	}
	n := diset.NewNetwork(defs, diset.NewBus(wire), nil)
	mustAddModule(t, n, "p", x)
	return n
}

// makeStuck creates a sender a that forwards go as req to b, which waits
// for req and other together. After ?{a.go} !{a.req} the network stops
// with b.req pending.
func makeStuck(t *testing.T) *diset.Network {
	t.Helper()
	defs := diset.NewDefinitions()
	p, _ := defs.Declare("P")
	q, _ := defs.Declare("Q")
	mustDefine(t, defs, p, diset.NewIOAction([]string{"go"}, []string{"req"}, p))
	mustDefine(t, defs, q, diset.NewIOAction([]string{"req", "other"}, nil, q))

	wire, err := diset.NewWireFunction(diset.WireConnection{Source: np("a", "req"), Target: np("b", "req")})
	if err != nil {
		t.Fatal(err)
	}
	bus := diset.NewBus(wire)
	bus.AddSignal(np("a", "go"))
	n := diset.NewNetwork(defs, bus, nil)
	mustAddModule(t, n, "a", p)
	mustAddModule(t, n, "b", q)
	return n
}

func mustDefine(t *testing.T, defs *diset.Definitions, ref diset.DefRef, actions ...diset.IOAction) {
	t.Helper()
	if err := defs.Define(ref, actions...); err != nil {
		t.Fatalf("Define(%s): %v", ref.Name, err)
	}
}

func mustAddModule(t *testing.T, n *diset.Network, label string, ref diset.DefRef) {
	t.Helper()
	if err := n.AddModule(label, ref); err != nil {
		t.Fatalf("AddModule(%s): %v", label, err)
	}
}

type logEntry struct {
	level  string
	msg    string
	fields map[string]interface{}
}

// recordingLogger captures log calls for verification.
type recordingLogger struct {
	entries []logEntry
}

func (l *recordingLogger) Debug(msg string, fields map[string]interface{}) {
	l.entries = append(l.entries, logEntry{"DEBUG", msg, fields})
}

func (l *recordingLogger) Info(msg string, fields map[string]interface{}) {
	l.entries = append(l.entries, logEntry{"INFO", msg, fields})
}

func (l *recordingLogger) Warn(msg string, fields map[string]interface{}) {
	l.entries = append(l.entries, logEntry{"WARN", msg, fields})
}

func (l *recordingLogger) Error(msg string, fields map[string]interface{}) {
	l.entries = append(l.entries, logEntry{"ERROR", msg, fields})
}

func (l *recordingLogger) find(level, msg string) (logEntry, bool) {
	for _, e := range l.entries {
		if e.level == level && e.msg == msg {
			return e, true
		}
	}
	return logEntry{}, false
}

type recordingRecorder struct {
	errs []error
}

func (r *recordingRecorder) RecordError(err error, metadata map[string]interface{}) {
	r.errs = append(r.errs, err)
}
