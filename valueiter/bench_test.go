package valueiter_test

import (
	"testing"

	"github.com/katalvlaran/gridmdp/mdp"
	"github.com/katalvlaran/gridmdp/valueiter"
)

// benchmarkSolve runs value iteration on a rows×cols grid with a small step
// cost everywhere and a +10 terminal in the far corner.
func benchmarkSolve(b *testing.B, rows, cols int) {
	goal := mdp.State{Col: cols, Row: rows}
	g, err := mdp.New(rows, cols, mdp.Options{
		Rewards:       map[mdp.State]float64{goal: 10},
		Terminals:     []mdp.State{goal},
		ProbForward:   0.8,
		DefaultReward: -0.04,
	})
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	opts := valueiter.DefaultOptions()

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err = valueiter.Solve(g, &opts); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

// BenchmarkSolve_Small benchmarks a 5×5 grid.
func BenchmarkSolve_Small(b *testing.B) {
	benchmarkSolve(b, 5, 5)
}

// BenchmarkSolve_Medium benchmarks a 20×20 grid.
func BenchmarkSolve_Medium(b *testing.B) {
	benchmarkSolve(b, 20, 20)
}

// BenchmarkSolve_Large benchmarks a 50×50 grid.
func BenchmarkSolve_Large(b *testing.B) {
	benchmarkSolve(b, 50, 50)
}

// BenchmarkDerive_Medium benchmarks policy derivation alone on a 20×20 grid.
func BenchmarkDerive_Medium(b *testing.B) {
	goal := mdp.State{Col: 20, Row: 20}
	g, err := mdp.New(20, 20, mdp.Options{
		Rewards:       map[mdp.State]float64{goal: 10},
		Terminals:     []mdp.State{goal},
		ProbForward:   0.8,
		DefaultReward: -0.04,
	})
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	opts := valueiter.DefaultOptions()
	u, err := valueiter.Solve(g, &opts)
	if err != nil {
		b.Fatalf("Solve failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = valueiter.Derive(g, u); err != nil {
			b.Fatalf("Derive failed: %v", err)
		}
	}
}
