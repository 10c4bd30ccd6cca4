// Package valueiter solves grid MDPs: value iteration to converged state
// utilities, and greedy policy derivation from any utility map.
//
// What:
//
//   - Solve: synchronous Bellman sweeps over a Model until no state's
//     utility moves by more than Epsilon; terminal states stay pinned to
//     their reward throughout.
//   - Derive: the argmax action per non-terminal state under a given
//     utility map, with strict-comparison tie-breaking in the model's fixed
//     action order; mdp.NoAction for terminals.
//   - Plan: Solve followed by Derive in one call.
//
// Why:
//
//   - Optimal control on small discrete worlds: compute where an agent
//     should head from every cell, accounting for stochastic drift.
//   - Reproducible results: fixed iteration orders everywhere make every
//     run bit-identical to the last.
//
// Complexity:
//
//   - Solve:  O(K × S × A) time for K sweeps, O(S) memory (two snapshots).
//   - Derive: O(S × A) time, O(S) memory.
//
// Options:
//
//   - Options.Gamma: discount factor (conceptually [0,1); 1 accepted).
//   - Options.Epsilon: per-sweep convergence threshold, > 0.
//   - Options.MaxSweeps: optional sweep cap, 0 = unbounded.
//
// Errors:
//
//   - ErrNilModel: nil model.
//   - ErrBadGamma, ErrBadEpsilon: malformed options.
//   - ErrNoConvergence: MaxSweeps reached before convergence.
//   - ErrMissingUtility: Derive given a utility map that does not cover a
//     required successor state.
package valueiter
