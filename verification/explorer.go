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

// Package verification explores DI-set networks into labelled transition
// systems and checks safety properties over the result.
//
// The explorer starts from a network term and repeatedly applies every
// enabled step, recording each distinct term as an LTS state. Two terms are
// the same state when diset.Network.SameAs says so.
//
// # Usage
//
//	e := verification.NewExplorer(actx, network, 10000)
//	cert, err := e.GenerateCertificate()
//	if !cert.AllSatisfied() {
//	    // the composition can get stuck or misbehave
//	}
//
// # State Space Exploration
//
// Exploration is breadth-first. It stops when:
//   - All reachable terms have been found
//   - The state count limit is reached (ErrStateLimit)
//   - Growth detection is on and a successor carries strictly more pending
//     signals than one of its ancestors with the same modules (ErrUnboundedBus)
//   - The Go context is cancelled
//
// In every case the partial LTS is returned with the error.
//
// # Properties
//
// The explorer can check:
//   - Safety: every module can accept the signals pending for it
//   - Deadlock freedom: no end state has signals left on the bus
//   - Boundedness: exploration completed, with the largest bus seen
//   - Reachability: some state satisfies a predicate
//   - Integrity: every module still matches the constant it names
package verification

import (
	stdcontext "context"
	"errors"
	"fmt"

	"github.com/diset/verifier/clock"
	"github.com/diset/verifier/context"
	"github.com/diset/verifier/diset"
	"github.com/diset/verifier/lts"
)

var (
	// ErrStateLimit is returned when exploration reaches the state limit.
	ErrStateLimit = errors.New("state space limit reached")

	// ErrUnboundedBus is returned by growth detection.
	ErrUnboundedBus = errors.New("bus grows without bound")
)

// DefaultMaxStates is used when NewExplorer is given a non-positive limit.
const DefaultMaxStates = 10000

// Metric and span names.
const (
	MetricStatesDiscovered = "lts_states_discovered"
	MetricTransitionsAdded = "lts_transitions_added"
	MetricEndStates        = "lts_end_states"
	MetricExploreDuration  = "lts_explore_duration_seconds"
	MetricFrontierSize     = "lts_frontier_size"
	MetricOutDegree        = "lts_state_out_degree"
	SpanExplore            = "lts-explore"
)

// Explorer builds the LTS of a network and checks properties over it.
//
// The explorer works on a copy of the network taken when BuildLTS is
// called. Later changes to the network do not affect the result.
type Explorer struct {
	actx      *context.AnalysisContext
	network   *diset.Network
	name      string
	maxStates int
	growth    bool

	// parents[i] is the index of the state S_i was discovered from, -1 for S0.
	parents []int
}

// NewExplorer creates an explorer for network.
//
// Parameters:
//   - actx: analysis context for cancellation and observability (nil = NoOp)
//   - network: the initial term
//   - maxStates: maximum number of states to explore (0 = DefaultMaxStates)
func NewExplorer(actx *context.AnalysisContext, network *diset.Network, maxStates int) *Explorer {
	if actx == nil {
		actx = context.NewAnalysisContext(stdcontext.Background())
	}
	if maxStates <= 0 {
		maxStates = DefaultMaxStates
	}
	return &Explorer{
		actx:      actx,
		network:   network,
		name:      "lts",
		maxStates: maxStates,
	}
}

// WithName sets the name of the LTS the explorer builds.
func (e *Explorer) WithName(name string) *Explorer {
	e.name = name
	return e
}

// WithGrowthDetection makes BuildLTS stop with ErrUnboundedBus instead of
// running into the state limit when the bus provably grows.
func (e *Explorer) WithGrowthDetection() *Explorer {
	e.growth = true
	return e
}

// Name returns the LTS name.
func (e *Explorer) Name() string { return e.name }

// MaxStates returns the configured state limit.
func (e *Explorer) MaxStates() int { return e.maxStates }

// BuildLTS explores every term reachable from the initial network.
//
// The returned definition is never nil. When err is non-nil it holds the
// states and transitions found before exploration stopped; properties can
// still be checked on it but only cover that portion.
func (e *Explorer) BuildLTS() (*lts.Definition, error) {
	span := e.actx.GetTracer().StartSpan(SpanExplore)
	defer span.End()
	span.SetAttribute("lts", e.name)

	logger := e.actx.GetLogger()
	metrics := e.actx.GetMetrics()
	clk := e.actx.GetClock()
	started := clk.Now()
	defer func() {
		metrics.Observe(MetricExploreDuration, clock.Since(clk, started).Seconds())
	}()

	def := lts.New(e.name)
	root := def.AddState(e.network.Copy())
	e.parents = []int{-1}
	metrics.Inc(MetricStatesDiscovered)

	queue := []*lts.State{root}
	for len(queue) > 0 {
		if err := e.actx.Err(); err != nil {
			return def, e.stop(span, def, err)
		}

		current := queue[0]
		queue = queue[1:]
		metrics.Set(MetricFrontierSize, float64(len(queue)))

		steps := diset.EnabledSteps(current.Term())
		metrics.Observe(MetricOutDegree, float64(len(steps)))
		if len(steps) == 0 {
			def.AddEndState(current)
			metrics.Inc(MetricEndStates)
			continue
		}

		for _, step := range steps {
			next, err := diset.Apply(current.Term(), step)
			if err != nil {
				return def, e.stop(span, def, err)
			}
			label, err := transitionFor(current.Term(), step)
			if err != nil {
				return def, e.stop(span, def, err)
			}

			if target, ok := def.Find(next); ok {
				current.AddTransition(label, target)
				metrics.Inc(MetricTransitionsAdded)
				continue
			}

			if e.growth {
				if anc, ok := e.grownFrom(def, current, next); ok {
					return def, e.stop(span, def, fmt.Errorf("%w: successor of %s covers %s with %d more signals",
						ErrUnboundedBus, current, anc, next.Bus().Len()-anc.Term().Bus().Len()))
				}
			}

			if def.NoOfStates() >= e.maxStates {
				return def, e.stop(span, def, fmt.Errorf("%w (%d states); bus may be unbounded",
					ErrStateLimit, e.maxStates))
			}

			target := def.AddState(next)
			e.parents = append(e.parents, current.Index())
			current.AddTransition(label, target)
			metrics.Inc(MetricStatesDiscovered)
			metrics.Inc(MetricTransitionsAdded)
			logger.Debug("state discovered", context.Fields{
				"lts":   e.name,
				"state": target.Index(),
				"from":  current.Index(),
				"label": label.String(),
			})
			queue = append(queue, target)
		}
	}

	span.SetAttribute("states", def.NoOfStates())
	logger.Info("exploration complete", context.Fields{
		"lts":         e.name,
		"states":      def.NoOfStates(),
		"transitions": def.TransitionCount(),
		"end_states":  len(def.EndStates()),
	})
	return def, nil
}

// stop logs and records err, which ended exploration early.
func (e *Explorer) stop(span context.Span, def *lts.Definition, err error) error {
	fields := context.Fields{
		"lts":         e.name,
		"states":      def.NoOfStates(),
		"transitions": def.TransitionCount(),
		"error":       err.Error(),
	}
	e.actx.GetLogger().Warn("exploration stopped", fields)
	e.actx.GetErrorRecorder().RecordError(err, fields)
	span.RecordError(err)
	return err
}

// grownFrom walks the BFS ancestry of current, current included, looking
// for a state that next strictly covers: same modules, and a bus that next
// contains with signals to spare. Replaying the steps between the two
// pumps the bus forever.
func (e *Explorer) grownFrom(def *lts.Definition, current *lts.State, next *diset.Network) (*lts.State, bool) {
	for i := current.Index(); i >= 0; i = e.parents[i] {
		anc, err := def.GetState(i)
		if err != nil {
			return nil, false
		}
		if next.Bus().Len() > anc.Term().Bus().Len() && next.IsSuperNetwork(anc.Term()) {
			return anc, true
		}
	}
	return nil, false
}

// transitionFor labels step by the ports an observer of n can see.
func transitionFor(n *diset.Network, step diset.Step) (lts.Transition, error) {
	ports, err := diset.VisiblePorts(n, step)
	if err != nil {
		return lts.Transition{}, err
	}
	kind := lts.Input
	if step.Kind == diset.OutputStep {
		kind = lts.Output
	}
	return lts.NewTransition(kind, ports), nil
}
