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
	"time"

	"github.com/google/uuid"

	"github.com/diset/verifier/context"
	"github.com/diset/verifier/lts"
)

// ProofCertificate aggregates the results of several property checks with
// summary statistics about the exploration.
//
// A certificate with AllSatisfied() == true and Bounded == true shows that
// the network satisfies every checked property in every reachable state.
type ProofCertificate struct {
	// ID uniquely identifies this certificate
	ID string

	// GeneratedAt is when the certificate was issued
	GeneratedAt time.Time

	// Network is the name of the explored LTS
	Network string

	// Initial is the text form of the initial network
	Initial string

	// Properties contains the results of each individual property check
	Properties []VerificationResult

	// StateCount is the number of states discovered
	StateCount int

	// TransitionCount is the number of LTS transitions
	TransitionCount int

	// EndStateCount is the number of states with no enabled steps
	EndStateCount int

	// Bounded is true if exploration completed without an error
	Bounded bool

	// MaxSignals is the largest number of pending signals in any state
	MaxSignals int

	// DeadlockFree is true if no end state leaves signals pending
	DeadlockFree bool

	// Safe is true if every module accepts its pending signals in every state
	Safe bool
}

// AllSatisfied returns true if all properties in the certificate are satisfied.
// A certificate with no properties returns true (vacuously true).
func (pc *ProofCertificate) AllSatisfied() bool {
	for _, r := range pc.Properties {
		if !r.Satisfied {
			return false
		}
	}
	return true
}

// Failed returns the unsatisfied results.
func (pc *ProofCertificate) Failed() []VerificationResult {
	var out []VerificationResult
	for _, r := range pc.Properties {
		if !r.Satisfied {
			out = append(out, r)
		}
	}
	return out
}

func (e *Explorer) newCertificate(def *lts.Definition, err error) *ProofCertificate {
	maxSignals, _ := maxBus(def)
	return &ProofCertificate{
		ID:              uuid.NewString(),
		GeneratedAt:     e.actx.GetClock().Now(),
		Network:         def.Name,
		Initial:         e.network.String(),
		StateCount:      def.NoOfStates(),
		TransitionCount: def.TransitionCount(),
		EndStateCount:   len(def.EndStates()),
		Bounded:         err == nil,
		MaxSignals:      maxSignals,
	}
}

// GenerateCertificate builds the LTS and runs the standard checks:
// safety, deadlock freedom, boundedness and integrity.
//
// Returns the certificate and any error from exploration. If exploration
// stopped early the certificate covers the explored portion only, Bounded
// is false and the boundedness result fails.
func (e *Explorer) GenerateCertificate() (*ProofCertificate, error) {
	def, err := e.BuildLTS()
	cert := e.newCertificate(def, err)

	safety := e.CheckSafety(def)
	deadlock := e.CheckDeadlockFreedom(def)
	cert.Properties = append(cert.Properties,
		safety,
		deadlock,
		e.CheckBoundedness(def, err),
		e.CheckIntegrity(def),
	)
	cert.Safe = safety.Satisfied
	cert.DeadlockFree = deadlock.Satisfied

	e.report(cert)
	return cert, err
}

// VerifyProperties builds the LTS once and evaluates every property on it.
//
// The Safe and DeadlockFree summary fields are computed directly from the
// LTS regardless of which properties were passed.
func (e *Explorer) VerifyProperties(properties []SafetyProperty) (*ProofCertificate, error) {
	def, err := e.BuildLTS()
	cert := e.newCertificate(def, err)

	for _, prop := range properties {
		cert.Properties = append(cert.Properties, prop.Check(e, def))
	}
	cert.Safe = e.CheckSafety(def).Satisfied
	cert.DeadlockFree = e.CheckDeadlockFreedom(def).Satisfied

	e.report(cert)
	return cert, err
}

func (e *Explorer) report(cert *ProofCertificate) {
	fields := context.Fields{
		"certificate": cert.ID,
		"lts":         cert.Network,
		"states":      cert.StateCount,
		"satisfied":   cert.AllSatisfied(),
	}
	if cert.AllSatisfied() {
		e.actx.GetLogger().Info("properties verified", fields)
		return
	}
	e.actx.GetLogger().Warn("properties violated", fields)
}
