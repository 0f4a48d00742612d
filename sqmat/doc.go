// SPDX-License-Identifier: MIT

// Package sqmat provides a generic square matrix backed by a single flat,
// row-major slice.
//
// What:
//
//   - SqMat[T] wraps a dim×dim block of cells with O(1) indexing.
//   - Construction from a default-valued grid (New) or a flat cell slice
//     (FromSlice).
//   - Row views, deep Clone, elementwise Map to a different cell type.
//
// Why:
//
//   - Pipe dreams, permutation matrices and Rothe diagrams are all small
//     square grids; one container serves them all.
//
// Complexity:
//
//   - At/Set/Dim/Row: O(1).
//   - New/FromSlice/Clone/Map: O(dim²) time and memory.
//
// Errors:
//
//	sqmat has no error returns. Out-of-range indices and mismatched
//	flat-slice lengths are caller defects and panic; panics are reserved
//	for programmer error throughout this module.
package sqmat
