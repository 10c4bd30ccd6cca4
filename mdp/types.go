// Package mdp defines core types, options, and sentinel errors
// for the mdp subpackage of github.com/katalvlaran/gridmdp.
package mdp

import (
	"errors"
)

// Sentinel errors for mdp operations.
var (
	// ErrBadDimensions indicates a grid with no rows or no columns.
	ErrBadDimensions = errors.New("mdp: grid must have at least one row and one column")
	// ErrBadProbability indicates a forward probability outside [0,1].
	ErrBadProbability = errors.New("mdp: forward probability must lie in [0,1]")
)

// State identifies a grid cell by its (Col, Row) coordinates, both 1-indexed:
// Col ∈ [1, cols], Row ∈ [1, rows]. States are immutable values, compared by
// equality, and used directly as map keys.
type State struct {
	Col, Row int
}

// Action is one of the four cardinal movement intents, or NoAction for
// terminal states. NoAction is the zero value so an unset PolicyMap entry
// never aliases a real direction.
type Action int

const (
	// NoAction is the explicit "no action" sentinel assigned to terminal states.
	NoAction Action = iota
	// Up moves toward higher Row values.
	Up
	// Right moves toward higher Col values.
	Right
	// Down moves toward lower Row values.
	Down
	// Left moves toward lower Col values.
	Left
)

// String returns the lowercase name of the action ("none" for NoAction).
func (a Action) String() string {
	switch a {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "none"
	}
}

// UtilityMap assigns a utility value to every state of a grid.
// A solver-produced UtilityMap contains an entry for every state in States().
type UtilityMap map[State]float64

// PolicyMap assigns an action to every state of a grid: one of the four
// directions for non-terminal states, NoAction for terminal states.
type PolicyMap map[State]Action

// Options contains the environment parameters supplied at construction.
//
// Rewards and Terminals entries whose coordinates fall outside the grid are
// accepted and inert: they can never be reached through States(), so they are
// simply never looked up.
type Options struct {
	// Rewards overrides the reward for specific states; states absent from
	// the map earn DefaultReward.
	Rewards map[State]float64
	// Terminals lists the absorbing states. No transition leaves a terminal
	// state, and its utility is fixed to its reward.
	Terminals []State
	// ProbForward is the probability p that an intended move succeeds.
	// With probability (1−p)/2 each, the agent drifts to one of the two
	// directions orthogonal to the intended one (never the reverse).
	// Must lie in [0,1].
	ProbForward float64
	// DefaultReward is earned by every state not present in Rewards.
	DefaultReward float64
}

// DefaultOptions returns an Options with default settings:
// no reward overrides, no terminals, ProbForward=1 (deterministic moves),
// DefaultReward=0.
func DefaultOptions() Options {
	return Options{
		ProbForward: 1.0,
	}
}
