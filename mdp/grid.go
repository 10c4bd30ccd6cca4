// Package mdp models a stochastic rectangular grid world as a Markov
// Decision Process. It supports:
//
//   - Sparse reward configuration with a default fallback
//   - Absorbing terminal states with empty transition maps
//   - A drift transition law: the intended move succeeds with probability
//     ProbForward, and veers to either orthogonal side with probability
//     (1−ProbForward)/2 each
//
// Moving into a wall leaves the agent in place; the grid never wraps.
package mdp

// Grid is a rectangular 4-connected MDP environment. It is immutable once
// built: all constructor inputs are deep-copied and every query method is
// read-only, so a single Grid may be shared freely between a solver and a
// policy deriver.
type Grid struct {
	rows, cols    int
	states        []State
	rewards       map[State]float64
	terminals     map[State]struct{}
	probForward   float64
	probSide      float64
	defaultReward float64
}

// New constructs a Grid with the given dimensions and options.
// It deep-copies Rewards and Terminals to ensure immutability.
// Returns ErrBadDimensions if rows or cols is not positive,
// ErrBadProbability if opts.ProbForward lies outside [0,1].
// Algorithmic complexity: O(rows×cols) time and memory.
func New(rows, cols int, opts Options) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadDimensions
	}
	if opts.ProbForward < 0 || opts.ProbForward > 1 {
		return nil, ErrBadProbability
	}
	// Enumerate all states column-major: (1,1), (1,2), …, (cols,rows).
	states := make([]State, 0, rows*cols)
	for c := 1; c <= cols; c++ {
		for r := 1; r <= rows; r++ {
			states = append(states, State{Col: c, Row: r})
		}
	}
	// Deep copy to prevent external mutation
	rewards := make(map[State]float64, len(opts.Rewards))
	for s, r := range opts.Rewards {
		rewards[s] = r
	}
	terminals := make(map[State]struct{}, len(opts.Terminals))
	for _, s := range opts.Terminals {
		terminals[s] = struct{}{}
	}
	g := &Grid{
		rows:          rows,
		cols:          cols,
		states:        states,
		rewards:       rewards,
		terminals:     terminals,
		probForward:   opts.ProbForward,
		probSide:      (1.0 - opts.ProbForward) / 2,
		defaultReward: opts.DefaultReward,
	}

	return g, nil
}

// Rows returns the number of grid rows.
// Complexity: O(1).
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of grid columns.
// Complexity: O(1).
func (g *Grid) Cols() int { return g.cols }

// States returns all states in a fixed column-major order. The result is a
// fresh slice on every call, identical in content and order each time, so
// callers may range over it repeatedly or mutate their copy freely.
// Complexity: O(rows×cols).
func (g *Grid) States() []State {
	out := make([]State, len(g.states))
	copy(out, g.states)

	return out
}

// Actions returns the candidate actions from state, always the fixed order
// {Up, Right, Down, Left} regardless of state. Terminal states are not
// special-cased here; check IsTerminal separately to skip them.
// Complexity: O(1).
func (g *Grid) Actions(_ State) []Action {
	return []Action{Up, Right, Down, Left}
}

// Successors returns the transition distribution for taking action from
// state: a map from each possible next state to its probability.
//
// For a terminal state the map is empty — no transition leaves it.
// Otherwise the intended direction is taken with probability ProbForward and
// each of the two orthogonal directions with probability (1−ProbForward)/2.
// Every attempted move is clamped to the grid, and outcomes that clamp onto
// the same cell have their probabilities summed, so the returned
// probabilities always sum to 1 for a non-terminal state.
// Complexity: O(1).
func (g *Grid) Successors(state State, action Action) map[State]float64 {
	if g.IsTerminal(state) {
		return map[State]float64{} // no moves out of a terminal state
	}

	c, r := state.Col, state.Row
	succUp := State{Col: c, Row: min(g.rows, r+1)}
	succRight := State{Col: min(g.cols, c+1), Row: r}
	succDown := State{Col: c, Row: max(1, r-1)}
	succLeft := State{Col: max(1, c-1), Row: r}

	probs := make(map[State]float64, 3)
	switch action {
	case Up:
		probs[succUp] += g.probForward
		probs[succRight] += g.probSide
		probs[succLeft] += g.probSide
	case Right:
		probs[succRight] += g.probForward
		probs[succUp] += g.probSide
		probs[succDown] += g.probSide
	case Down:
		probs[succDown] += g.probForward
		probs[succRight] += g.probSide
		probs[succLeft] += g.probSide
	case Left:
		probs[succLeft] += g.probForward
		probs[succUp] += g.probSide
		probs[succDown] += g.probSide
	}

	return probs
}

// Reward returns the reward for state: the configured override if present,
// otherwise the default. Pure lookup, no side effects.
// Complexity: O(1).
func (g *Grid) Reward(state State) float64 {
	if r, ok := g.rewards[state]; ok {
		return r
	}

	return g.defaultReward
}

// IsTerminal reports whether state belongs to the terminal set.
// Complexity: O(1).
func (g *Grid) IsTerminal(state State) bool {
	_, ok := g.terminals[state]

	return ok
}
