// Package pipedreams computes reduced pipe dreams and Schubert polynomials
// — combinatorial models of permutations from Schubert calculus.
//
// 🚀 What is pipedreams?
//
//	A small, deterministic, zero-I/O library that brings together:
//		• sqmat    — generic square-matrix container over a flat slice
//		• perm     — validated zero-indexed permutations: Lehmer code,
//		             composition, Rothe diagrams
//		• dream    — pipe dreams, the mitosis operator, and reduced
//		             pipe-dream enumeration (Bergeron–Billey /
//		             Knutson–Miller)
//		• schubert — monomial extraction and Schubert-polynomial assembly
//
// ✨ Why choose pipedreams?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – pure value semantics, no global state
//   - Pure Go – no cgo, no hidden deps
//
// Quick ASCII example — the two reduced pipe dreams of [0, 2, 1]:
//
//	. + .      . . .
//	. . .      + . .
//	. . .      . . .
//
//	S_[0, 2, 1] = x_0 + x_1
//
// Dive into each package's doc.go for the full model, complexity notes and
// worked examples.
//
//	go get github.com/katalvlaran/pipedreams
package pipedreams
