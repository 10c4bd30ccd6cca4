// Package valueiter defines the model contract, configuration options,
// and sentinel errors for value iteration on grid MDPs.
//
// Value iteration computes, for every state of a Markov Decision Process,
// the expected discounted sum of future rewards under optimal behavior (its
// "utility"), by iterating the Bellman optimality update to a fixed point.
// A greedy policy is then read off the converged utilities.
//
// Complexity:
//
//	– Time:  O(K × S × A)   where S = |states|, A = |actions|, K = sweeps to
//	   converge (for Gamma < 1 the update is a contraction, so K is finite
//	   for any Epsilon > 0 on bounded-reward grids).
//	– Space: O(S)   two utility snapshots (previous and next sweep).
//
// Options:
//
//	– Gamma:     discount factor applied to future utility. Conceptually in
//	             [0,1); Gamma = 1 is accepted at the caller's risk (the loop
//	             may then never converge on reward-accumulating grids).
//	– Epsilon:   convergence threshold — iteration stops once no state's
//	             utility changes by more than Epsilon in a sweep. Must be > 0.
//	– MaxSweeps: optional cap on sweeps; 0 means unbounded.
//
// Errors (sentinel):
//
//	– ErrNilModel       if the provided model is nil.
//	– ErrBadGamma       if Gamma < 0 or Gamma > 1.
//	– ErrBadEpsilon     if Epsilon ≤ 0.
//	– ErrNoConvergence  if MaxSweeps > 0 sweeps elapse before convergence.
//	– ErrMissingUtility if Derive meets a successor state absent from the
//	                    supplied utility map (inconsistent model/utility pair).
package valueiter

import (
	"errors"

	"github.com/katalvlaran/gridmdp/mdp"
)

// Sentinel errors returned by Solve, Derive and Plan.
var (
	// ErrNilModel indicates that a nil Model was passed in.
	ErrNilModel = errors.New("valueiter: model is nil")

	// ErrBadGamma indicates a discount factor outside [0,1].
	ErrBadGamma = errors.New("valueiter: Gamma must lie in [0,1]")

	// ErrBadEpsilon indicates a non-positive convergence threshold,
	// which would make the stopping condition unsatisfiable or trivial.
	ErrBadEpsilon = errors.New("valueiter: Epsilon must be positive")

	// ErrNoConvergence indicates that MaxSweeps sweeps elapsed before the
	// largest per-sweep utility change dropped to Epsilon or below.
	ErrNoConvergence = errors.New("valueiter: no convergence within MaxSweeps sweeps")

	// ErrMissingUtility indicates that the utility map handed to Derive has
	// no entry for a required successor state. This is a contract violation
	// by the caller — the model and utility map do not belong together — and
	// is reported loudly rather than masked with a default.
	ErrMissingUtility = errors.New("valueiter: utility map missing required state")
)

// Model is the read-only environment contract consumed by Solve and Derive.
// *mdp.Grid satisfies it; any implementation will do as long as Successors
// returns an empty map for terminal states and probability distributions
// summing to 1 everywhere else.
type Model interface {
	// States returns every state, in a fixed order, identically on each call.
	States() []mdp.State
	// Actions returns the candidate actions from s, in a fixed order.
	Actions(s mdp.State) []mdp.Action
	// Successors returns the transition distribution for (s, a):
	// resulting state → probability. Empty for terminal states.
	Successors(s mdp.State, a mdp.Action) map[mdp.State]float64
	// Reward returns the immediate reward earned at s.
	Reward(s mdp.State) float64
	// IsTerminal reports whether s is absorbing.
	IsTerminal(s mdp.State) bool
}

// Options configures the behavior of value iteration.
//
// Gamma     – discount factor; see package doc for range semantics.
// Epsilon   – per-sweep change threshold that ends iteration. Must be > 0.
// MaxSweeps – sweep cap; 0 (the default) means iterate until convergence,
//
//	however long that takes — choosing Gamma and Epsilon that
//	guarantee convergence is then the caller's responsibility.
type Options struct {
	Gamma     float64 // Discount applied to future utility
	Epsilon   float64 // Convergence threshold on per-sweep utility change
	MaxSweeps int     // Maximum sweeps before ErrNoConvergence; 0 = unbounded
}

// DefaultOptions returns an Options struct initialized with sensible
// defaults. Use this as a starting point and override fields as needed.
//
// Defaults:
//   - Gamma:     0.9  (strong contraction, converges quickly).
//   - Epsilon:   1e-4 (tight enough for display-precision utilities).
//   - MaxSweeps: 0    (unbounded; rely on Gamma < 1 for termination).
func DefaultOptions() Options {
	return Options{
		Gamma:     0.9,
		Epsilon:   1e-4,
		MaxSweeps: 0,
	}
}
