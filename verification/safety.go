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
	"fmt"

	"github.com/diset/verifier/diset"
	"github.com/diset/verifier/lts"
)

// SafetyProperty is a named check over an explored LTS. Properties are
// composable and can be combined into suites with VerifyProperties.
type SafetyProperty struct {
	// Name is the unique identifier for this property
	Name string

	// Description is a human-readable explanation of what the property checks
	Description string

	// Check performs the verification
	Check func(e *Explorer, def *lts.Definition) VerificationResult
}

// NewBusBoundProperty creates a property satisfied when no explored state
// has more than maxSignals pending signals.
//
// Example:
//
//	prop := NewBusBoundProperty("one_in_flight", 1)
func NewBusBoundProperty(name string, maxSignals int) SafetyProperty {
	return SafetyProperty{
		Name:        name,
		Description: fmt.Sprintf("bus never holds more than %d signals", maxSignals),
		Check: func(e *Explorer, def *lts.Definition) VerificationResult {
			for _, s := range def.States() {
				if n := s.Term().Bus().Len(); n > maxSignals {
					return VerificationResult{
						Property:      name,
						Satisfied:     false,
						Message:       fmt.Sprintf("bus holds %d signals (max allowed: %d) at %s", n, maxSignals, s),
						Witness:       e.findPath(def, 0, s.Index()),
						StatesChecked: def.NoOfStates(),
					}
				}
			}
			return VerificationResult{
				Property:      name,
				Satisfied:     true,
				Message:       fmt.Sprintf("bus stays within %d signals across all states", maxSignals),
				StatesChecked: def.NoOfStates(),
			}
		},
	}
}

// NewReachabilityProperty creates a property satisfied when some explored
// state satisfies pred.
func NewReachabilityProperty(name, description string, pred func(*diset.Network) bool) SafetyProperty {
	return SafetyProperty{
		Name:        name,
		Description: description,
		Check: func(e *Explorer, def *lts.Definition) VerificationResult {
			result := e.CheckReachability(def, pred)
			result.Property = name
			return result
		},
	}
}

// NewDeadlockFreedomProperty creates a property that no end state leaves
// signals pending.
func NewDeadlockFreedomProperty(name string) SafetyProperty {
	return SafetyProperty{
		Name:        name,
		Description: "no end state leaves signals pending",
		Check: func(e *Explorer, def *lts.Definition) VerificationResult {
			result := e.CheckDeadlockFreedom(def)
			result.Property = name
			return result
		},
	}
}

// NewNetworkSafetyProperty creates a property that every module can accept
// its pending signals in every state.
func NewNetworkSafetyProperty(name string) SafetyProperty {
	return SafetyProperty{
		Name:        name,
		Description: "every module accepts its pending signals",
		Check: func(e *Explorer, def *lts.Definition) VerificationResult {
			result := e.CheckSafety(def)
			result.Property = name
			return result
		},
	}
}
