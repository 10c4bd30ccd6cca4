package valueiter

import (
	"math"
	"sort"

	"github.com/katalvlaran/gridmdp/mdp"
)

// Solve — synchronous value iteration to a Bellman fixed point.
//
// Description:
//
//	Solve computes the utility of every state of m: the expected discounted
//	sum of future rewards under optimal behavior. Utilities are iterated
//	with the Bellman optimality update until no state changes by more than
//	Epsilon in a full sweep.
//
// Algorithm Outline:
//  1. Seed every state's utility with its immediate reward, and record
//     minReward, the smallest reward across all states.
//  2. Sweep over all states. Each sweep reads only the previous sweep's
//     snapshot — updates made during a sweep are never visible to it.
//     For a non-terminal state s:
//     maxVal = max over actions a of Σ P(s'|s,a)·U_prev(s'),
//     floored at minReward,
//     U_next(s) = Reward(s) + Gamma·maxVal.
//     For a terminal state s the utility stays pinned at Reward(s) —
//     it is never re-derived through the (empty-successor) Bellman max.
//  3. After the sweep, swap the two snapshots atomically and stop once the
//     largest absolute per-state change is ≤ Epsilon.
//
// Complexity:
//
//	Time   = O(K × S × A) for K sweeps to convergence
//	Memory = O(S) — two snapshots, reused across sweeps
//
// Errors:
//   - ErrNilModel      — m is nil.
//   - ErrBadGamma      — Gamma outside [0,1].
//   - ErrBadEpsilon    — Epsilon ≤ 0.
//   - ErrNoConvergence — MaxSweeps > 0 and the cap was reached first.
//
// A nil opts selects DefaultOptions. On success the returned UtilityMap has
// an entry for every state of m and is owned by the caller. Solve is fully
// deterministic: identical inputs reproduce bit-identical outputs.
func Solve(m Model, opts *Options) (mdp.UtilityMap, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Gamma < 0 || o.Gamma > 1 {
		return nil, ErrBadGamma
	}
	if o.Epsilon <= 0 {
		return nil, ErrBadEpsilon
	}

	states := m.States()

	// Seed utilities with immediate rewards and find the reward floor used
	// as the baseline of the per-state action maximum.
	prev := make(mdp.UtilityMap, len(states))
	minReward := math.Inf(1)
	for _, s := range states {
		r := m.Reward(s)
		prev[s] = r
		if r < minReward {
			minReward = r
		}
	}

	next := make(mdp.UtilityMap, len(states))
	for sweep := 0; ; sweep++ {
		if o.MaxSweeps > 0 && sweep >= o.MaxSweeps {
			return nil, ErrNoConvergence
		}

		var delta float64
		for _, s := range states {
			if m.IsTerminal(s) {
				// Terminal utility is fixed to the reward for all sweeps.
				next[s] = m.Reward(s)
			} else {
				maxVal := minReward
				for _, a := range m.Actions(s) {
					ev := 0.0
					succ := m.Successors(s, a)
					for _, sp := range sortedSuccessors(succ) {
						ev += succ[sp] * prev[sp]
					}
					if ev > maxVal {
						maxVal = ev
					}
				}
				next[s] = m.Reward(s) + o.Gamma*maxVal
			}
			if d := math.Abs(prev[s] - next[s]); d > delta {
				delta = d
			}
		}

		// Swap snapshots: the just-completed sweep becomes visible at once.
		prev, next = next, prev

		if delta <= o.Epsilon {
			return prev, nil
		}
	}
}

// sortedSuccessors returns the keys of succ in coordinate order
// (Col first, then Row). Folding expectations in this fixed order keeps
// floating-point sums — and therefore sweep counts and final utilities —
// identical across calls, which map iteration order would not.
func sortedSuccessors(succ map[mdp.State]float64) []mdp.State {
	keys := make([]mdp.State, 0, len(succ))
	for s := range succ {
		keys = append(keys, s)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Col != keys[j].Col {
			return keys[i].Col < keys[j].Col
		}

		return keys[i].Row < keys[j].Row
	})

	return keys
}
