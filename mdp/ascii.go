package mdp

import (
	"fmt"
	"strings"
)

// Glyphs used by FormatPolicy, one per action.
var policyGlyphs = map[Action]string{
	Up:       "^^^",
	Right:    ">>>",
	Down:     "vvv",
	Left:     "<<<",
	NoAction: " x ",
}

// FormatUtilities renders utility as an ascii-art grid for g, one boxed cell
// per state, rows printed top (highest Row) to bottom. Values are formatted
// with four decimal places and right-aligned to a uniform column width.
// States missing from utility render as 0.0000.
// Complexity: O(rows×cols).
func FormatUtilities(g *Grid, utility UtilityMap) string {
	width := 8
	for _, s := range g.States() {
		if n := len(fmt.Sprintf("%.4f", utility[s])); n > width {
			width = n
		}
	}

	return formatGrid(g, width, func(s State) string {
		return fmt.Sprintf("%*.4f", width, utility[s])
	})
}

// FormatPolicy renders policy as an ascii-art grid for g, using directional
// glyphs (^^^, >>>, vvv, <<<) and " x " for terminal states.
// Complexity: O(rows×cols).
func FormatPolicy(g *Grid, policy PolicyMap) string {
	return formatGrid(g, 8, func(s State) string {
		return "   " + policyGlyphs[policy[s]] + "  "
	})
}

// formatGrid draws the boxed grid, asking cell for the exact width-character
// content of each state. Rows are emitted from Row=rows down to Row=1 so the
// printed orientation matches the coordinate system (Row grows upward).
func formatGrid(g *Grid, width int, cell func(State) string) string {
	interior := width + 2 // one space of padding on each side

	var b strings.Builder
	b.WriteString(" " + strings.Repeat("_", g.cols*(interior+1)-1) + "\n")
	for r := g.rows; r >= 1; r-- {
		b.WriteString("|")
		for c := 1; c <= g.cols; c++ {
			b.WriteString(strings.Repeat(" ", interior) + "|")
		}
		b.WriteString("\n|")
		for c := 1; c <= g.cols; c++ {
			b.WriteString(" " + cell(State{Col: c, Row: r}) + " |")
		}
		b.WriteString("\n|")
		for c := 1; c <= g.cols; c++ {
			b.WriteString(strings.Repeat("_", interior) + "|")
		}
		b.WriteString("\n")
	}

	return b.String()
}
