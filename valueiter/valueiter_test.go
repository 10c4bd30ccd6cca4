package valueiter_test

import (
	"math"
	"sort"
	"testing"

	"github.com/katalvlaran/gridmdp/mdp"
	"github.com/katalvlaran/gridmdp/valueiter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// Shared fixtures
//----------------------------------------------------------------------------//

// newRoomGrid builds the 2×3 teaching grid: every cell costs −1 except a
// configurable penalty at (2,2) and a +20 terminal at (3,2).
func newRoomGrid(t *testing.T, penalty float64) *mdp.Grid {
	t.Helper()
	g, err := mdp.New(2, 3, mdp.Options{
		Rewards: map[mdp.State]float64{
			{Col: 1, Row: 1}: -1,
			{Col: 2, Row: 1}: -1,
			{Col: 3, Row: 1}: -1,
			{Col: 1, Row: 2}: -1,
			{Col: 2, Row: 2}: penalty,
			{Col: 3, Row: 2}: 20,
		},
		Terminals:   []mdp.State{{Col: 3, Row: 2}},
		ProbForward: 0.8,
	})
	require.NoError(t, err)

	return g
}

// roomOptions returns the solver settings used throughout the room tests.
func roomOptions() valueiter.Options {
	opts := valueiter.DefaultOptions()
	opts.Gamma = 0.8
	opts.Epsilon = 0.01

	return opts
}

// expectedValue recomputes the probability-weighted successor utility the
// same way the solver does: folding in coordinate order.
func expectedValue(succ map[mdp.State]float64, u mdp.UtilityMap) float64 {
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
	var sum float64
	for _, s := range keys {
		sum += succ[s] * u[s]
	}

	return sum
}

//----------------------------------------------------------------------------//
// Validation Tests
//----------------------------------------------------------------------------//

// TestSolve_Validation verifies the fail-fast checks on model and options.
func TestSolve_Validation(t *testing.T) {
	g := newRoomGrid(t, -10)

	_, err := valueiter.Solve(nil, nil)
	assert.ErrorIs(t, err, valueiter.ErrNilModel, "nil model must error")

	opts := roomOptions()
	opts.Gamma = -0.1
	_, err = valueiter.Solve(g, &opts)
	assert.ErrorIs(t, err, valueiter.ErrBadGamma, "negative Gamma must error")

	opts = roomOptions()
	opts.Gamma = 1.5
	_, err = valueiter.Solve(g, &opts)
	assert.ErrorIs(t, err, valueiter.ErrBadGamma, "Gamma above 1 must error")

	opts = roomOptions()
	opts.Epsilon = 0
	_, err = valueiter.Solve(g, &opts)
	assert.ErrorIs(t, err, valueiter.ErrBadEpsilon, "zero Epsilon must error")
}

// TestSolve_MaxSweeps verifies the optional sweep cap.
func TestSolve_MaxSweeps(t *testing.T) {
	g := newRoomGrid(t, -10)
	opts := roomOptions()
	opts.Epsilon = 1e-9
	opts.MaxSweeps = 1

	_, err := valueiter.Solve(g, &opts)
	assert.ErrorIs(t, err, valueiter.ErrNoConvergence, "one sweep cannot reach a 1e-9 fixed point")
}

//----------------------------------------------------------------------------//
// Convergence Tests
//----------------------------------------------------------------------------//

// TestSolve_CoversAllStates checks that the returned map has exactly one
// entry per state of the model.
func TestSolve_CoversAllStates(t *testing.T) {
	g := newRoomGrid(t, -10)
	opts := roomOptions()

	u, err := valueiter.Solve(g, &opts)
	require.NoError(t, err)
	require.Len(t, u, len(g.States()))
	for _, s := range g.States() {
		_, ok := u[s]
		assert.True(t, ok, "utility missing for state %v", s)
	}
}

// TestSolve_TerminalUtilityFixed asserts the terminal's utility equals its
// reward exactly, for any discount and threshold.
func TestSolve_TerminalUtilityFixed(t *testing.T) {
	g := newRoomGrid(t, -10)
	terminal := mdp.State{Col: 3, Row: 2}

	for _, opts := range []valueiter.Options{
		{Gamma: 0.8, Epsilon: 0.01},
		{Gamma: 0.5, Epsilon: 1e-6},
		{Gamma: 0.99, Epsilon: 0.1},
	} {
		u, err := valueiter.Solve(g, &opts)
		require.NoError(t, err)
		assert.Equal(t, 20.0, u[terminal],
			"terminal utility must stay pinned to its reward (Gamma=%v, Epsilon=%v)",
			opts.Gamma, opts.Epsilon)
	}
}

// TestSolve_ConvergenceBound re-runs one synchronous Bellman sweep over the
// returned snapshot and checks no state moves by more than Epsilon.
func TestSolve_ConvergenceBound(t *testing.T) {
	g := newRoomGrid(t, -10)
	opts := roomOptions()

	u, err := valueiter.Solve(g, &opts)
	require.NoError(t, err)

	minReward := math.Inf(1)
	for _, s := range g.States() {
		if r := g.Reward(s); r < minReward {
			minReward = r
		}
	}
	for _, s := range g.States() {
		var next float64
		if g.IsTerminal(s) {
			next = g.Reward(s)
		} else {
			maxVal := minReward
			for _, a := range g.Actions(s) {
				if ev := expectedValue(g.Successors(s, a), u); ev > maxVal {
					maxVal = ev
				}
			}
			next = g.Reward(s) + opts.Gamma*maxVal
		}
		assert.LessOrEqual(t, math.Abs(next-u[s]), opts.Epsilon,
			"state %v moved past Epsilon on an extra sweep", s)
	}
}

// TestSolve_Idempotent asserts two identical runs are bit-for-bit equal.
func TestSolve_Idempotent(t *testing.T) {
	g := newRoomGrid(t, -10)
	opts := roomOptions()

	u1, err := valueiter.Solve(g, &opts)
	require.NoError(t, err)
	u2, err := valueiter.Solve(g, &opts)
	require.NoError(t, err)

	require.Equal(t, u1, u2, "identical inputs must reproduce identical utilities")
}

//----------------------------------------------------------------------------//
// Scenario Tests
//----------------------------------------------------------------------------//

// TestSolve_RoomScenario pins the expected optimal behavior on the teaching
// grid: the bottom row routes right toward the +20 terminal, steering clear
// of the −10 cell at (2,2).
func TestSolve_RoomScenario(t *testing.T) {
	g := newRoomGrid(t, -10)
	opts := roomOptions()

	u, p, err := valueiter.Plan(g, &opts)
	require.NoError(t, err)

	assert.Equal(t, 20.0, u[mdp.State{Col: 3, Row: 2}])
	assert.Equal(t, mdp.Right, p[mdp.State{Col: 1, Row: 1}], "bottom-left must head right")
	assert.Equal(t, mdp.Right, p[mdp.State{Col: 2, Row: 1}], "bottom-middle must head right")
	assert.Equal(t, mdp.NoAction, p[mdp.State{Col: 3, Row: 2}], "terminal gets the sentinel")
}

// TestSolve_AvoidsDeepPenalty sharpens the penalty to −100 and asserts the
// cell left of it never walks straight in.
func TestSolve_AvoidsDeepPenalty(t *testing.T) {
	g := newRoomGrid(t, -100)
	opts := roomOptions()

	_, p, err := valueiter.Plan(g, &opts)
	require.NoError(t, err)

	beside := mdp.State{Col: 1, Row: 2}
	assert.NotEqual(t, mdp.Right, p[beside], "(1,2) must never step right into the -100 cell")
	assert.NotEqual(t, mdp.NoAction, p[beside], "(1,2) is not terminal")
}
