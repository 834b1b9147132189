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
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/diset/verifier/clock"
	"github.com/diset/verifier/context"
	"github.com/diset/verifier/diset"
	"github.com/diset/verifier/lts"
)

func buildLTS(t *testing.T, e *Explorer) *lts.Definition {
	t.Helper()
	def, err := e.BuildLTS()
	if err != nil {
		t.Fatalf("BuildLTS: %v", err)
	}
	return def
}

func equalPath(a, b []string) bool {
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

func TestCheckSafety_Ring(t *testing.T) {
	e := NewExplorer(nil, makeRing(t), 100)
	result := e.CheckSafety(buildLTS(t, e))
	if !result.Satisfied {
		t.Errorf("ring should be safe: %s", result.Message)
	}
	if result.StatesChecked != 7 {
		t.Errorf("StatesChecked = %d", result.StatesChecked)
	}
}

func TestCheckSafety_Violation(t *testing.T) {
	n := makeRing(t)
	n.Bus().AddSignal(np("b", "bogus"))
	e := NewExplorer(nil, n, 100)

	result := e.CheckSafety(buildLTS(t, e))
	if result.Satisfied {
		t.Fatal("b cannot accept bogus")
	}
	if !strings.Contains(result.Message, "module b:B0") {
		t.Errorf("message should name the module: %s", result.Message)
	}
	if len(result.Witness) != 0 {
		t.Errorf("violation is at S0, witness = %v", result.Witness)
	}
}

func TestCheckDeadlockFreedom_NoDeadlock(t *testing.T) {
	e := NewExplorer(nil, makeRing(t), 100)
	if result := e.CheckDeadlockFreedom(buildLTS(t, e)); !result.Satisfied {
		t.Errorf("ring ends with an empty bus: %s", result.Message)
	}
}

func TestCheckDeadlockFreedom_WithDeadlock(t *testing.T) {
	e := NewExplorer(nil, makeStuck(t), 100)
	result := e.CheckDeadlockFreedom(buildLTS(t, e))
	if result.Satisfied {
		t.Fatal("b.req is left pending")
	}
	want := []string{"?{a.go}", "!{a.req}"}
	if !equalPath(result.Witness, want) {
		t.Errorf("Witness = %v, want %v", result.Witness, want)
	}
}

func TestCheckReachability(t *testing.T) {
	e := NewExplorer(nil, makeRing(t), 100)
	def := buildLTS(t, e)

	waiting := func(n *diset.Network) bool {
		return strings.HasPrefix(n.String(), "a:A1 || b:B0 || w({a.ack})")
	}
	result := e.CheckReachability(def, waiting)
	if !result.Satisfied {
		t.Fatal("a should wait for its acknowledgement")
	}
	want := []string{"?{a.start}", "t", "t", "t"}
	if !equalPath(result.Witness, want) {
		t.Errorf("Witness = %v, want %v", result.Witness, want)
	}

	never := func(n *diset.Network) bool { return n.Bus().Len() > 1 }
	if result := e.CheckReachability(def, never); result.Satisfied || result.Witness != nil {
		t.Errorf("two signals are never pending: %+v", result)
	}
}

func TestCheckBoundedness(t *testing.T) {
	e := NewExplorer(nil, makeRing(t), 100)
	result := e.CheckBoundedness(buildLTS(t, e), nil)
	if !result.Satisfied {
		t.Error("boundedness is satisfied on a complete LTS")
	}
	if result.Message != "bus holds at most 1 signals (first at S0)" {
		t.Errorf("Message = %s", result.Message)
	}
}

func TestCheckBoundedness_PartialLTS(t *testing.T) {
	e := NewExplorer(nil, makeWiredAwayProducer(t), 10)
	def, err := e.BuildLTS()
	if !errors.Is(err, ErrStateLimit) {
		t.Fatalf("Expected ErrStateLimit, got %v", err)
	}

	result := e.CheckBoundedness(def, err)
	if result.Satisfied {
		t.Fatal("boundedness cannot hold on a partial LTS")
	}
	if len(result.Witness) == 0 {
		t.Error("Expected a witness path to the largest bus")
	}
}

func TestCheckIntegrity(t *testing.T) {
	e := NewExplorer(nil, makeRing(t), 100)
	if result := e.CheckIntegrity(buildLTS(t, e)); !result.Satisfied {
		t.Errorf("integrity: %s", result.Message)
	}
}

func TestFindPath(t *testing.T) {
	e := NewExplorer(nil, makeRing(t), 100)
	def := buildLTS(t, e)

	if path := e.findPath(def, 0, 0); path != nil {
		t.Errorf("path to self = %v", path)
	}
	if path := e.findPath(def, 6, 0); path != nil {
		t.Errorf("S6 is terminal, path = %v", path)
	}
	if path := e.findPath(def, 0, 2); !equalPath(path, []string{"?{a.start}", "t"}) {
		t.Errorf("path to S2 = %v", path)
	}
}

func TestGenerateCertificate_Ring(t *testing.T) {
	ring := makeRing(t)
	cert, err := NewExplorer(nil, ring, 100).WithName("ring").GenerateCertificate()
	if err != nil {
		t.Fatalf("GenerateCertificate: %v", err)
	}

	if !cert.AllSatisfied() {
		t.Errorf("ring should satisfy everything, failed: %v", cert.Failed())
	}
	if _, err := uuid.Parse(cert.ID); err != nil {
		t.Errorf("certificate ID %q: %v", cert.ID, err)
	}
	if cert.Network != "ring" || cert.Initial != ring.String() {
		t.Errorf("certificate names %s / %s", cert.Network, cert.Initial)
	}
	if cert.StateCount != 7 || cert.TransitionCount != 6 || cert.EndStateCount != 1 {
		t.Errorf("counts = %d/%d/%d", cert.StateCount, cert.TransitionCount, cert.EndStateCount)
	}
	if !cert.Bounded || !cert.Safe || !cert.DeadlockFree || cert.MaxSignals != 1 {
		t.Errorf("summary = %+v", cert)
	}
	if len(cert.Properties) != 4 {
		t.Errorf("Expected 4 standard properties, got %d", len(cert.Properties))
	}
}

func TestGenerateCertificate_Timing(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	metrics := context.NewMemoryMetrics()
	actx := context.NewAnalysisContextBuilder().
		WithClock(clock.NewVirtualClock(start).WithTick(time.Second)).
		WithMetrics(metrics).
		Build()

	cert, err := NewExplorer(actx, makeRing(t), 100).GenerateCertificate()
	if err != nil {
		t.Fatal(err)
	}
	if !cert.GeneratedAt.After(start) {
		t.Errorf("GeneratedAt = %v should come after exploration started", cert.GeneratedAt)
	}
	obs := metrics.Observations(MetricExploreDuration)
	if len(obs) != 1 || obs[0] != 1 {
		t.Errorf("duration observations = %v, want [1]", obs)
	}
}

func TestGenerateCertificate_Unbounded(t *testing.T) {
	cert, err := NewExplorer(nil, makeProducer(t), 100).WithGrowthDetection().GenerateCertificate()
	if !errors.Is(err, ErrUnboundedBus) {
		t.Fatalf("Expected ErrUnboundedBus, got %v", err)
	}
	if cert.Bounded {
		t.Error("partial exploration is not bounded")
	}
	if cert.StateCount != 2 {
		t.Errorf("StateCount = %d", cert.StateCount)
	}
	if cert.Properties[2].Property != "boundedness" || cert.Properties[2].Satisfied {
		t.Errorf("boundedness result = %+v", cert.Properties[2])
	}
}

// A producer whose output leaves the network is safe, never deadlocks and
// keeps every module intact, yet its bus grows forever. Only boundedness
// catches it.
func TestGenerateCertificate_OutputWiredAway(t *testing.T) {
	cert, err := NewExplorer(nil, makeWiredAwayProducer(t), 100).GenerateCertificate()
	if !errors.Is(err, ErrStateLimit) {
		t.Fatalf("Expected ErrStateLimit, got %v", err)
	}
	if cert.AllSatisfied() {
		t.Fatal("certificate of a network with an unbounded bus must not be satisfied")
	}
	if cert.Bounded {
		t.Error("Bounded should be false")
	}
	if !cert.Safe || !cert.DeadlockFree {
		t.Errorf("Safe = %v, DeadlockFree = %v, want both true", cert.Safe, cert.DeadlockFree)
	}

	failed := cert.Failed()
	if len(failed) != 1 || failed[0].Property != "boundedness" {
		t.Errorf("Expected only boundedness to fail, got %v", failed)
	}
}

func TestGenerateCertificates_Unique(t *testing.T) {
	a, _ := NewExplorer(nil, makeRing(t), 100).GenerateCertificate()
	b, _ := NewExplorer(nil, makeRing(t), 100).GenerateCertificate()
	if a.ID == b.ID {
		t.Error("certificate IDs should differ")
	}
}

func TestVerifyProperties_CustomProperties(t *testing.T) {
	e := NewExplorer(nil, makeRing(t), 100)
	cert, err := e.VerifyProperties([]SafetyProperty{
		NewBusBoundProperty("one_in_flight", 1),
		NewNetworkSafetyProperty("safe"),
		NewReachabilityProperty("quiescent", "bus drains", func(n *diset.Network) bool {
			return n.Bus().Len() == 0
		}),
	})
	if err != nil {
		t.Fatalf("VerifyProperties: %v", err)
	}
	if !cert.AllSatisfied() {
		t.Errorf("failed: %v", cert.Failed())
	}
	if cert.Properties[2].Property != "quiescent" {
		t.Errorf("property name not carried: %s", cert.Properties[2].Property)
	}
}

func TestVerifyProperties_WithViolations(t *testing.T) {
	e := NewExplorer(nil, makeStuck(t), 100)
	cert, err := e.VerifyProperties([]SafetyProperty{
		NewBusBoundProperty("empty_bus", 0),
		NewDeadlockFreedomProperty("no_deadlocks"),
	})
	if err != nil {
		t.Fatalf("VerifyProperties: %v", err)
	}
	if cert.AllSatisfied() {
		t.Fatal("Expected violations")
	}
	if len(cert.Failed()) != 2 {
		t.Errorf("Expected both properties to fail, got %v", cert.Failed())
	}
	if cert.DeadlockFree {
		t.Error("DeadlockFree should be false")
	}
	if !cert.Safe {
		t.Error("b can accept req, so the network is safe")
	}
}

func TestProofCertificate_Empty(t *testing.T) {
	cert := &ProofCertificate{}
	if !cert.AllSatisfied() {
		t.Error("Empty certificate should be vacuously satisfied")
	}
}
