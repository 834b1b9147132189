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
	"strings"
)

// ErrDuplicateSource is returned when a wire function connects one port twice.
var ErrDuplicateSource = errors.New("port already connected")

// WireConnection routes signals from Source to Target.
type WireConnection struct {
	Source NamedPort
	Target NamedPort
}

// String renders source->target.
func (c WireConnection) String() string {
	return c.Source.String() + "->" + c.Target.String()
}

// WireFunction renames ports: a connected source maps to its target, every
// other port maps to itself. It has no mutators, so networks share it freely.
type WireFunction struct {
	conns []WireConnection
}

// NewWireFunction builds a wire function. Each source may appear once.
func NewWireFunction(conns ...WireConnection) (*WireFunction, error) {
	w := &WireFunction{conns: make([]WireConnection, 0, len(conns))}
	for _, c := range conns {
		for _, existing := range w.conns {
			if existing.Source == c.Source {
				return nil, fmt.Errorf("%w: %s", ErrDuplicateSource, c.Source)
			}
		}
		w.conns = append(w.conns, c)
	}
	return w, nil
}

// GetTarget returns where a signal sent on p arrives.
func (w *WireFunction) GetTarget(p NamedPort) NamedPort {
	if w == nil {
		return p
	}
	for _, c := range w.conns {
		if c.Source == p {
			return c.Target
		}
	}
	return p
}

// Connections returns a copy of the connections.
func (w *WireFunction) Connections() []WireConnection {
	if w == nil {
		return nil
	}
	return append([]WireConnection(nil), w.conns...)
}

// String renders {a.x->b.y,...}.
func (w *WireFunction) String() string {
	conns := w.Connections()
	parts := make([]string, len(conns))
	for i, c := range conns {
		parts[i] = c.String()
	}
	return "{" + strings.Join(parts, ",") + "}"
}
