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

package intset

import (
	"fmt"
	"strings"
)

// SetSet is an ordered collection of IntSets, unique by set equality.
type SetSet struct {
	sets []*IntSet
}

// NewSetSet creates a SetSet holding copies of sets. Sets equal to an earlier
// one are dropped.
func NewSetSet(sets ...*IntSet) *SetSet {
	ss := &SetSet{}
	for _, s := range sets {
		ss.Add(s)
	}
	return ss
}

// Len returns the number of member sets.
func (ss *SetSet) Len() int {
	return len(ss.sets)
}

// Add inserts a copy of s unless an equal set is already present and reports
// whether it was inserted.
func (ss *SetSet) Add(s *IntSet) bool {
	if ss.Contains(s) {
		return false
	}
	ss.sets = append(ss.sets, s.Copy())
	return true
}

// Contains reports whether a set equal to s is a member.
func (ss *SetSet) Contains(s *IntSet) bool {
	for _, m := range ss.sets {
		if m.Equal(s) {
			return true
		}
	}
	return false
}

// Remove deletes the member equal to s and reports whether one was found.
func (ss *SetSet) Remove(s *IntSet) bool {
	for i, m := range ss.sets {
		if m.Equal(s) {
			ss.sets = append(ss.sets[:i], ss.sets[i+1:]...)
			return true
		}
	}
	return false
}

// Get returns the member at position i.
func (ss *SetSet) Get(i int) (*IntSet, error) {
	if i < 0 || i >= len(ss.sets) {
		return nil, fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, len(ss.sets))
	}
	return ss.sets[i], nil
}

// Sets returns the members in insertion order. The slice is a copy; the
// member sets are shared.
func (ss *SetSet) Sets() []*IntSet {
	out := make([]*IntSet, len(ss.sets))
	copy(out, ss.sets)
	return out
}

// String renders the collection as {{a,b},{c}}.
func (ss *SetSet) String() string {
	parts := make([]string, len(ss.sets))
	for i, s := range ss.sets {
		parts[i] = s.String()
	}
	return "{" + strings.Join(parts, ",") + "}"
}
