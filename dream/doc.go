// Package dream enumerates reduced pipe dreams via the mitosis recursion
// of Bergeron–Billey and Knutson–Miller.
//
// 🚀 What is a pipe dream?
//
//	An n×n grid of two-state tiles — Elbow or Cross — modeling wire
//	crossings. A pipe dream is reduced when its crossing pattern realizes
//	a minimal-length factorization of a permutation into adjacent
//	transpositions. Reduced pipe dreams are the combinatorial backbone of
//	Schubert polynomials (see package schubert).
//
// ✨ Key features:
//   - Dream — an immutable tile-grid value; children of Mitosis never
//     share storage with their parent
//   - Long — the fully-crossed seed dream, the unique reduced pipe dream
//     of the longest permutation
//   - Start / Mitosis — the combinatorial operators driving the recursion
//   - ReducedWord — the lexicographically-first reduced word of a
//     permutation, derived from its Lehmer code
//   - ReducedDreamsFor — the full, generation-ordered set of reduced pipe
//     dreams of a permutation
//
// Algorithm outline (ReducedDreamsFor):
//  1. Compose the target p with the longest permutation w0: q = p∘w0.
//  2. Derive the lexicographically-first reduced word of q and reverse it.
//  3. Seed with Long(n) and fold Mitosis over the word letters, replacing
//     the working set at each letter with the union of every dream's
//     children.
//
// Every dream produced for p carries exactly CoxeterLength(p) crosses.
//
// Complexity:
//
//	Each mitosis step is O(n²) per child, but the working set is bounded
//	only by the number of reduced words of the permutation, which grows
//	super-exponentially with n. Enumeration is a genuinely combinatorial
//	cost; nothing here bounds it internally. Each expansion step is
//	independent per parent dream and could be parallelized with a barrier
//	between letters, but enumeration stays single-threaded here.
//
// Known boundary case:
//
//	For p = Long(n) itself, q = p∘w0 is the identity, its reduced word is
//	empty, and ReducedDreamsFor returns an empty set — even though Long(n)
//	has exactly one reduced pipe dream (the seed grid). This asymmetry in
//	the early-exit rule is preserved deliberately; changing it is a
//	behavioral change, not a bug fix.
//
// Errors:
//
//	All operations are total over validated inputs and never fail at
//	runtime. Mitosis on the last row (i+1 ≥ Dim) violates the operator's
//	precondition and panics.
package dream
