package valueiter

import (
	"github.com/katalvlaran/gridmdp/mdp"
)

// Plan runs Solve and then Derive in one call, returning the converged
// utilities together with the greedy policy read off them. Both maps cover
// every state of m. On any error (from either stage) no partial result is
// returned.
//
// Complexity: that of Solve plus one O(S × A) derivation pass.
func Plan(m Model, opts *Options) (mdp.UtilityMap, mdp.PolicyMap, error) {
	utility, err := Solve(m, opts)
	if err != nil {
		return nil, nil, err
	}
	policy, err := Derive(m, utility)
	if err != nil {
		return nil, nil, err
	}

	return utility, policy, nil
}
