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
	"strings"

	"github.com/diset/verifier/setnotation"
)

// ModuleReport classifies one set-notation module. The boolean fields are
// the raw predicates; Results restates the ones that indicate a defect as
// pass/fail checks.
type ModuleReport struct {
	Module string

	AutoFiring           bool
	AutoClashing         bool
	Arbitrating          bool
	EqArbitrating        bool
	BArbitrating         bool
	OneStepConsistent    bool
	Stable               bool
	AllStatesHaveExit    bool
	DuplicateStates      bool
	DuplicateTransitions bool

	// Unreachable names the states not reachable from the first state.
	Unreachable []string

	Results []VerificationResult
}

// AllSatisfied reports whether every check in Results passed.
func (r *ModuleReport) AllSatisfied() bool {
	for _, res := range r.Results {
		if !res.Satisfied {
			return false
		}
	}
	return true
}

// ClassifyModule runs every automaton-level analysis on m.
func ClassifyModule(m *setnotation.Module) *ModuleReport {
	r := &ModuleReport{
		Module:               m.Name,
		AutoFiring:           m.IsAutoFiring(),
		AutoClashing:         m.IsAutoClashing(),
		Arbitrating:          m.IsArbitrating(),
		EqArbitrating:        m.IsEqArbitrating(),
		BArbitrating:         m.IsBArbitrating(),
		OneStepConsistent:    m.IsOneStepConsistent(),
		Stable:               m.IsStable(),
		AllStatesHaveExit:    m.AllStatesReachableBySomeTransition(),
		DuplicateStates:      m.HasDuplicateStates(),
		DuplicateTransitions: m.HasDuplicateTransitions(),
	}
	if m.NumStates() > 0 {
		names := m.States()
		for _, s := range m.UnreachableStates(0) {
			r.Unreachable = append(r.Unreachable, names[s])
		}
	}

	n := m.NumStates()
	r.Results = []VerificationResult{
		check("no_auto_clash", !r.AutoClashing, n,
			"no auto-fired path drives an output twice",
			"some auto-fired path drives an output twice"),
		check("one_step_consistent", r.OneStepConsistent, n,
			"no transition is dominated by another from the same state",
			"a transition from some state is dominated in both inputs and outputs"),
		check("stable", r.Stable, n,
			"leftover inputs are always safely defined",
			"a smaller transition strands inputs its target cannot accept"),
		check("all_states_have_exit", r.AllStatesHaveExit, n,
			"every state has an outgoing transition",
			"some state has no outgoing transition"),
		check("states_reachable", len(r.Unreachable) == 0, n,
			"every state is reachable from the first",
			"unreachable: "+strings.Join(r.Unreachable, ",")),
		check("no_duplicate_states", !r.DuplicateStates, n,
			"all states behave differently",
			"two states have identical outgoing transitions"),
		check("no_duplicate_transitions", !r.DuplicateTransitions, n,
			"no transition is listed twice",
			"a transition is listed twice"),
	}
	return r
}

func check(name string, ok bool, states int, pass, fail string) VerificationResult {
	msg := fail
	if ok {
		msg = pass
	}
	return VerificationResult{Property: name, Satisfied: ok, Message: msg, StatesChecked: states}
}

// String renders the classification as one line per predicate.
func (r *ModuleReport) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "module %s\n", r.Module)
	flags := []struct {
		name string
		v    bool
	}{
		{"auto-firing", r.AutoFiring},
		{"auto-clashing", r.AutoClashing},
		{"arbitrating", r.Arbitrating},
		{"eq-arbitrating", r.EqArbitrating},
		{"b-arbitrating", r.BArbitrating},
		{"one-step-consistent", r.OneStepConsistent},
		{"stable", r.Stable},
	}
	for _, f := range flags {
		fmt.Fprintf(&sb, "  %-20s %v\n", f.name, f.v)
	}
	for _, res := range r.Results {
		if !res.Satisfied {
			fmt.Fprintf(&sb, "  FAIL %s: %s\n", res.Property, res.Message)
		}
	}
	return sb.String()
}
