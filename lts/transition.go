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

package lts

import (
	"strings"

	"github.com/diset/verifier/diset"
)

// Kind classifies a transition label.
type Kind int

const (
	// Input is a visible input step, rendered ?{...}.
	Input Kind = iota
	// Output is a visible output step, rendered !{...}.
	Output
	// Tau is an internal step, rendered t.
	Tau
)

func (k Kind) String() string {
	switch k {
	case Input:
		return "input"
	case Output:
		return "output"
	case Tau:
		return "tau"
	default:
		return "unknown"
	}
}

// Transition is the label of an LTS edge.
type Transition struct {
	Kind  Kind
	Ports []diset.NamedPort
}

// NewTransition creates a label for the given visible ports. A step with
// no visible ports is internal regardless of kind.
func NewTransition(kind Kind, ports []diset.NamedPort) Transition {
	if len(ports) == 0 {
		return Transition{Kind: Tau}
	}
	return Transition{Kind: kind, Ports: append([]diset.NamedPort(nil), ports...)}
}

// IsTau reports whether the transition is internal.
func (t Transition) IsTau() bool {
	return t.Kind == Tau
}

// Equal compares kind and ports in order.
func (t Transition) Equal(o Transition) bool {
	if t.Kind != o.Kind || len(t.Ports) != len(o.Ports) {
		return false
	}
	for i := range t.Ports {
		if t.Ports[i] != o.Ports[i] {
			return false
		}
	}
	return true
}

// String renders ?{n.a}, !{n.b} or t.
func (t Transition) String() string {
	if t.Kind == Tau {
		return "t"
	}
	parts := make([]string, len(t.Ports))
	for i, p := range t.Ports {
		parts[i] = p.String()
	}
	prefix := "?"
	if t.Kind == Output {
		prefix = "!"
	}
	return prefix + "{" + strings.Join(parts, ",") + "}"
}
