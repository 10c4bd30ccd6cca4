// Package mdp models a rectangular grid world as a Markov Decision Process,
// ready to be handed to a solver such as gridmdp/valueiter.
//
// What:
//
//   - Grid wraps a rows×cols board of 1-indexed (Col, Row) states.
//   - Sparse reward overrides with a default fallback (Reward).
//   - Absorbing terminal states: Successors is empty there (IsTerminal).
//   - Stochastic moves: intended direction with probability ProbForward,
//     each orthogonal side with (1−ProbForward)/2, never the reverse.
//   - Wall collisions are no-ops: moves clamp to the board, outcomes that
//     clamp onto the same cell merge their probabilities.
//   - FormatUtilities / FormatPolicy render result maps as ascii-art boxes
//     for grids of any size.
//
// Why:
//
//   - Planning demos: the classic "gridworld" teaching environment.
//   - Solver input: a pure, immutable transition/reward model that a value
//     iterator can query repeatedly with no aliasing concerns.
//   - Scenario authoring: rewards and terminals are plain literals.
//
// Complexity:
//
//   - New:        O(rows×cols) time and memory.
//   - States:     O(rows×cols) per call (fresh copy).
//   - Successors: O(1) — at most three outcomes per (state, action).
//   - Reward, IsTerminal, Actions: O(1).
//
// Options:
//
//   - Options.Rewards: per-state reward overrides.
//   - Options.Terminals: absorbing states.
//   - Options.ProbForward: chance the intended move succeeds, in [0,1].
//   - Options.DefaultReward: reward for states without an override.
//
// Errors:
//
//   - ErrBadDimensions: rows or cols not positive.
//   - ErrBadProbability: ProbForward outside [0,1].
package mdp
