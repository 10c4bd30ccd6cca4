package valueiter

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gridmdp/mdp"
)

// Derive reads the greedy policy off a utility map: for every non-terminal
// state it selects the action whose expected successor utility under utility
// is greatest; terminal states map to mdp.NoAction.
//
// Ties break deterministically: the comparison is strict (>) against a
// baseline of −Inf, so the first action in the model's fixed Actions order
// ({Up, Right, Down, Left} for *mdp.Grid) to reach the maximum wins and is
// never displaced by a later action with an equal score.
//
// utility must cover every successor reachable from a non-terminal state —
// normally the map returned by Solve for the same model. A missing entry is
// an inconsistent model/utility pairing and returns an error wrapping
// ErrMissingUtility instead of silently producing a wrong policy.
//
// Complexity: O(S × A) time, O(S) memory.
func Derive(m Model, utility mdp.UtilityMap) (mdp.PolicyMap, error) {
	if m == nil {
		return nil, ErrNilModel
	}

	states := m.States()
	policy := make(mdp.PolicyMap, len(states))
	for _, s := range states {
		if m.IsTerminal(s) {
			policy[s] = mdp.NoAction

			continue
		}

		best := mdp.NoAction
		bestVal := math.Inf(-1) // first action always becomes the current best
		for _, a := range m.Actions(s) {
			ev, err := expectedUtility(m.Successors(s, a), utility)
			if err != nil {
				return nil, err
			}
			if ev > bestVal {
				bestVal = ev
				best = a
			}
		}
		policy[s] = best
	}

	return policy, nil
}

// expectedUtility returns the probability-weighted sum of utility over the
// successor distribution, folding in the fixed coordinate order. It fails
// when a successor has no utility entry rather than substituting a default.
func expectedUtility(succ map[mdp.State]float64, utility mdp.UtilityMap) (float64, error) {
	var sum float64
	for _, sp := range sortedSuccessors(succ) {
		u, ok := utility[sp]
		if !ok {
			return 0, fmt.Errorf("state (%d,%d): %w", sp.Col, sp.Row, ErrMissingUtility)
		}
		sum += succ[sp] * u
	}

	return sum, nil
}
