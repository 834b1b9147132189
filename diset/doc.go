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

// Package diset is the term model of the delay-insensitive set algebra.
//
// A running system is a Network, written P || w(Bus) - C:
//   - P is a NamedModuleSet, one NamedModule per component, each tagged with
//     the label its ports carry on the bus
//   - the Bus holds the signals that have been sent but not yet consumed,
//     and the WireFunction w that routes an output port to the input port it
//     is connected to
//   - C is the set of hidden ports, whose traffic is internal
//
// Each Module is a state given as a choice between IOActions (A,B).X: accept
// the inputs A, emit the outputs B and continue as the constant X. Between
// accepting and emitting, a module is intermediate: it holds the single
// action (•,B).X and has no state name.
//
// # Sharing
//
// Constant definitions live in a Definitions arena owned by the network and
// are referenced by DefRef handles. The arena, the wire function and the
// hidden set never change while a network evolves, so Network.Copy shares
// them by reference. Only the named modules and the bus contents are copied.
// A component that needs to change a constant's actions resolves it into a
// private copy first; the arena has no in-place mutator.
//
// # Steps
//
// EnabledSteps and Apply give the successor relation used to explore a
// network: an input step consumes the signals an action waits for and makes
// its module intermediate, an output step puts the action's outputs on the
// bus through the wire function and moves the module to its next constant.
package diset
