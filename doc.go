// Package gridmdp is an in-memory toolkit for planning on stochastic
// grid worlds — modeling a Markov Decision Process and solving it to an
// optimal policy.
//
// 🚀 What is gridmdp?
//
//	A small, pure-Go library that brings together:
//		• Environment modeling: rectangular grids, sparse rewards, terminal
//		  states, and a drift-to-the-side stochastic transition law
//		• Value iteration: synchronous Bellman sweeps to a converged utility
//		  for every cell
//		• Policy derivation: the greedy-optimal action from every cell, with
//		  deterministic tie-breaking
//		• ASCII rendering of utility and policy maps for grids of any size
//
// ✨ Why choose gridmdp?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – identical inputs always reproduce identical outputs
//   - Pure Go – no cgo, no hidden deps
//   - Honest errors – sentinel errors for every misuse, no silent defaults
//
// Under the hood, everything is organized under two subpackages:
//
//	mdp/       — the environment model: State, Action, Grid, and rendering
//	valueiter/ — the solver (Solve), the policy deriver (Derive), and Plan
//
// Quick ASCII example:
//
//	 ________________________________
//	|          |          |          |
//	|   >>>    |   >>>    |    x     |
//	|__________|__________|__________|
//	|          |          |          |
//	|   >>>    |   >>>    |   ^^^    |
//	|__________|__________|__________|
//
//	a 2×3 grid whose policy routes every cell toward the terminal at (3,2).
//
// Dive into the per-package doc.go files for contracts, complexity notes,
// and worked examples.
//
//	go get github.com/katalvlaran/gridmdp
package gridmdp
