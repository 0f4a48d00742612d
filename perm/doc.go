// Package perm provides a validated, immutable, zero-indexed permutation
// value type.
//
// What:
//
//   - Perm wraps a bijection on {0,…,n-1}; every construction path
//     (New, Parse, Long, Identity, Compose) yields a validated value and
//     no path hands out an unvalidated one.
//   - Lehmer code, Coxeter length, composition, the longest permutation.
//   - Permutation matrix and Rothe diagram as sqmat grids.
//   - Text parsing (delimiter-separated non-negative integers) and the
//     canonical "[a, b, c]" rendering.
//
// Why:
//
//   - Reduced pipe-dream enumeration (package dream) and Schubert
//     assembly (package schubert) both hinge on the bijection invariant
//     holding unconditionally; validating once at the boundary keeps the
//     combinatorial core total and failure-free.
//
// Complexity:
//
//   - New/Parse/Compose/Long/Identity: O(n) (New sorts: O(n log n)).
//   - Lehmer/CoxeterLength: O(n²).
//   - Matrix: O(n²); Rothe: O(n²).
//
// Errors:
//
//   - ErrInvalidPerm: input values are not a bijection on {0,…,n-1}.
//   - ErrParse: text is not a well-formed delimiter-separated list of
//     non-negative integers, or parses to an invalid permutation.
//
// Compose panics on a length mismatch; mismatched operands are a caller
// defect, not a runtime condition.
package perm
