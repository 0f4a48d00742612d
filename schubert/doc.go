// Package schubert assembles Schubert polynomials from reduced pipe dreams.
//
// What:
//
//   - Monomial — a sparse, ascending exponent vector over row-indexed
//     variables, extracted from one dream's per-row crossing counts.
//   - Schubert — a permutation paired with the generation-ordered list of
//     monomials of its reduced pipe dreams, rendered as a formal sum.
//
// Why:
//
//   - The Schubert polynomial of a permutation is the generating function
//     of its reduced pipe dreams; the assembly is a thin consumer of the
//     dream generator's output.
//
// Complexity:
//
//   - FromDream: O(n²) per dream.
//   - FromDreams: O(k·n²) for k dreams.
//
// Equal monomials arising from distinct dreams are deliberately kept
// uncombined, in generation order; there is no coefficient tracking.
// Dreams with zero crosses (only the identity's degenerate dream)
// contribute no term, and the empty sum renders as the literal "1".
package schubert
