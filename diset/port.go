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

import "strings"

// PortSet is an ordered set of bare port names.
type PortSet struct {
	ports []string
}

// NewPortSet creates a set holding ports in order. Repeats are dropped.
func NewPortSet(ports ...string) *PortSet {
	s := &PortSet{ports: make([]string, 0, len(ports))}
	for _, p := range ports {
		s.Add(p)
	}
	return s
}

// Len returns the number of ports.
func (s *PortSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.ports)
}

// IsEmpty reports whether the set has no ports.
func (s *PortSet) IsEmpty() bool { return s.Len() == 0 }

// Ports returns a copy of the port names.
func (s *PortSet) Ports() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.ports...)
}

// Contains reports whether p is a member.
func (s *PortSet) Contains(p string) bool {
	if s == nil {
		return false
	}
	for _, q := range s.ports {
		if q == p {
			return true
		}
	}
	return false
}

// Add inserts p and reports whether it was new.
func (s *PortSet) Add(p string) bool {
	if s.Contains(p) {
		return false
	}
	s.ports = append(s.ports, p)
	return true
}

// Remove deletes p and reports whether it was present.
func (s *PortSet) Remove(p string) bool {
	for i, q := range s.ports {
		if q == p {
			s.ports = append(s.ports[:i], s.ports[i+1:]...)
			return true
		}
	}
	return false
}

// Subset reports whether every port of s is in o.
func (s *PortSet) Subset(o *PortSet) bool {
	for _, p := range s.Ports() {
		if !o.Contains(p) {
			return false
		}
	}
	return true
}

// Equal reports set equality, ignoring order.
func (s *PortSet) Equal(o *PortSet) bool {
	return s.Len() == o.Len() && s.Subset(o)
}

// Copy returns an independent copy.
func (s *PortSet) Copy() *PortSet {
	return &PortSet{ports: s.Ports()}
}

// String renders {a,b}.
func (s *PortSet) String() string {
	return "{" + strings.Join(s.Ports(), ",") + "}"
}

// NamedPort is a port qualified by the label of the module that owns it.
type NamedPort struct {
	Label string
	Port  string
}

// String renders label.port.
func (p NamedPort) String() string {
	return p.Label + "." + p.Port
}

// NamedPortSet is an ordered set of named ports.
type NamedPortSet struct {
	ports []NamedPort
}

// NewNamedPortSet creates a set holding ports in order.
func NewNamedPortSet(ports ...NamedPort) *NamedPortSet {
	s := &NamedPortSet{}
	for _, p := range ports {
		s.Add(p)
	}
	return s
}

// Len returns the number of ports.
func (s *NamedPortSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.ports)
}

// Ports returns a copy of the members.
func (s *NamedPortSet) Ports() []NamedPort {
	if s == nil {
		return nil
	}
	return append([]NamedPort(nil), s.ports...)
}

// Contains reports whether p is a member.
func (s *NamedPortSet) Contains(p NamedPort) bool {
	if s == nil {
		return false
	}
	for _, q := range s.ports {
		if q == p {
			return true
		}
	}
	return false
}

// Add inserts p and reports whether it was new.
func (s *NamedPortSet) Add(p NamedPort) bool {
	if s.Contains(p) {
		return false
	}
	s.ports = append(s.ports, p)
	return true
}

// String renders {l.a,m.b}.
func (s *NamedPortSet) String() string {
	return formatNamedPorts(s.Ports())
}

func formatNamedPorts(ports []NamedPort) string {
	parts := make([]string, len(ports))
	for i, p := range ports {
		parts[i] = p.String()
	}
	return "{" + strings.Join(parts, ",") + "}"
}
