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

// Package intset provides small finite sets of non-negative integers.
//
// The indices of states and ports in the automaton and term layers are small
// integers, so every higher layer uses IntSet to describe sets of them.
//
// An IntSet stores its elements in insertion order. Most operations treat it
// as an unordered set: equality, subset and the other set algebra ignore the
// order. The Seq view exposes the operations for which the order matters
// (prefix tests, sub-ranges). Calling Seq operations on a set whose order was
// never meant to be significant is a caller error and is not detected.
//
// PowerSet and Permutations are exponential in the size of the set and are
// meant for the small sets found in module descriptions (fewer than ten
// elements).
package intset

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrIndexOutOfRange is returned by positional accessors given an invalid index.
var ErrIndexOutOfRange = errors.New("index out of range")

// IntSet is a duplicate-free sequence of integers.
// The zero value is an empty set ready for use.
type IntSet struct {
	elems []int
}

// New creates a set holding vals in order. Repeated values are dropped.
func New(vals ...int) *IntSet {
	s := &IntSet{elems: make([]int, 0, len(vals))}
	for _, v := range vals {
		s.Add(v)
	}
	return s
}

// Len returns the number of elements.
func (s *IntSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.elems)
}

// IsEmpty reports whether the set has no elements.
func (s *IntSet) IsEmpty() bool {
	return s.Len() == 0
}

// Values returns a copy of the elements in stored order.
func (s *IntSet) Values() []int {
	out := make([]int, s.Len())
	if s != nil {
		copy(out, s.elems)
	}
	return out
}

// Get returns the element at position i of the stored order.
func (s *IntSet) Get(i int) (int, error) {
	if i < 0 || i >= s.Len() {
		return 0, fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, s.Len())
	}
	return s.elems[i], nil
}

// Contains reports whether v is an element.
func (s *IntSet) Contains(v int) bool {
	if s == nil {
		return false
	}
	for _, e := range s.elems {
		if e == v {
			return true
		}
	}
	return false
}

// Add appends v if it is not already present and reports whether it was inserted.
func (s *IntSet) Add(v int) bool {
	if s.Contains(v) {
		return false
	}
	s.elems = append(s.elems, v)
	return true
}

// Remove deletes v and reports whether it was present.
// The relative order of the remaining elements is kept.
func (s *IntSet) Remove(v int) bool {
	for i, e := range s.elems {
		if e == v {
			s.elems = append(s.elems[:i], s.elems[i+1:]...)
			return true
		}
	}
	return false
}

// Copy returns an independent copy of s.
func (s *IntSet) Copy() *IntSet {
	return &IntSet{elems: s.Values()}
}

// Union returns s ∪ o. Elements of s come first, in order, followed by the
// new elements of o.
func (s *IntSet) Union(o *IntSet) *IntSet {
	out := s.Copy()
	if o != nil {
		for _, e := range o.elems {
			out.Add(e)
		}
	}
	return out
}

// Difference returns s \ o, keeping the order of s.
func (s *IntSet) Difference(o *IntSet) *IntSet {
	out := &IntSet{elems: make([]int, 0, s.Len())}
	if s == nil {
		return out
	}
	for _, e := range s.elems {
		if !o.Contains(e) {
			out.elems = append(out.elems, e)
		}
	}
	return out
}

// Intersection returns s ∩ o, keeping the order of s.
func (s *IntSet) Intersection(o *IntSet) *IntSet {
	out := &IntSet{}
	if s == nil {
		return out
	}
	for _, e := range s.elems {
		if o.Contains(e) {
			out.elems = append(out.elems, e)
		}
	}
	return out
}

// Subset reports whether every element of s is in o.
func (s *IntSet) Subset(o *IntSet) bool {
	if s == nil {
		return true
	}
	for _, e := range s.elems {
		if !o.Contains(e) {
			return false
		}
	}
	return true
}

// ProperSubset reports whether s ⊂ o and s != o.
func (s *IntSet) ProperSubset(o *IntSet) bool {
	return s.Len() < o.Len() && s.Subset(o)
}

// Equal reports set equality; the stored order is ignored.
func (s *IntSet) Equal(o *IntSet) bool {
	return s.Len() == o.Len() && s.Subset(o)
}

// Key returns a canonical string for the set, independent of stored order.
// Equal sets have equal keys.
func (s *IntSet) Key() string {
	sorted := s.Values()
	sort.Ints(sorted)
	parts := make([]string, len(sorted))
	for i, v := range sorted {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

// String renders the set as {a,b,c} in stored order.
func (s *IntSet) String() string {
	parts := make([]string, s.Len())
	for i, v := range s.Values() {
		parts[i] = strconv.Itoa(v)
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// Format renders the set with each element replaced by names[element].
// Elements without a name are rendered as numbers.
func (s *IntSet) Format(names []string) string {
	parts := make([]string, s.Len())
	for i, v := range s.Values() {
		if v >= 0 && v < len(names) {
			parts[i] = names[v]
		} else {
			parts[i] = strconv.Itoa(v)
		}
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// Permutations returns every ordering of the elements, n! sets in total.
// Each result is a fresh IntSet whose stored order is the permutation.
//
// The orderings are produced by taking each element in turn, permuting the
// rest and prepending the element, so the result is in lexicographic order
// of positions. Cost is O(n·n!).
func (s *IntSet) Permutations() []*IntSet {
	if s.Len() == 0 {
		return []*IntSet{New()}
	}
	var out []*IntSet
	for i, head := range s.elems {
		rest := &IntSet{elems: make([]int, 0, len(s.elems)-1)}
		rest.elems = append(rest.elems, s.elems[:i]...)
		rest.elems = append(rest.elems, s.elems[i+1:]...)
		for _, tail := range rest.Permutations() {
			p := &IntSet{elems: make([]int, 0, len(s.elems))}
			p.elems = append(p.elems, head)
			p.elems = append(p.elems, tail.elems...)
			out = append(out, p)
		}
	}
	return out
}

// PowerSet returns every non-empty subset of s, 2^n-1 sets in total.
//
// The result is built iteratively: each element is added as a singleton and
// also joined into every subset produced so far, doubling the result at each
// step.
func (s *IntSet) PowerSet() *SetSet {
	out := NewSetSet()
	for _, e := range s.Values() {
		prev := out.Sets()
		out.Add(New(e))
		for _, sub := range prev {
			out.Add(sub.Union(New(e)))
		}
	}
	return out
}

// Seq returns the order-sensitive view of s.
func (s *IntSet) Seq() Seq {
	return Seq{s: s}
}

// Seq is the ordered view of an IntSet. Its operations compare and slice the
// stored order and assume the caller built the set as a meaningful sequence.
type Seq struct {
	s *IntSet
}

// ContainsAt returns the position of v in the stored order.
func (q Seq) ContainsAt(v int) (int, bool) {
	for i, e := range q.s.Values() {
		if e == v {
			return i, true
		}
	}
	return -1, false
}

// HasPrefix reports whether p's sequence is a prefix of q's sequence.
func (q Seq) HasPrefix(p Seq) bool {
	if p.s.Len() > q.s.Len() {
		return false
	}
	for i := 0; i < p.s.Len(); i++ {
		if q.s.elems[i] != p.s.elems[i] {
			return false
		}
	}
	return true
}

// Subrange returns the elements at positions [start, end) as a new set.
func (q Seq) Subrange(start, end int) (*IntSet, error) {
	if start < 0 || end > q.s.Len() || start > end {
		return nil, fmt.Errorf("%w: [%d,%d) of %d", ErrIndexOutOfRange, start, end, q.s.Len())
	}
	return New(q.s.elems[start:end]...), nil
}

// Equal reports whether both sequences have the same elements in the same order.
func (q Seq) Equal(o Seq) bool {
	return q.s.Len() == o.s.Len() && q.HasPrefix(o)
}

// Set returns the underlying set.
func (q Seq) Set() *IntSet {
	return q.s
}
