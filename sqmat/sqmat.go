// SPDX-License-Identifier: MIT

package sqmat

import (
	"fmt"
	"strings"
)

// SqMat is a square matrix of dimension dim stored row-major in one flat
// slice. The dimension is fixed at construction and never changes.
type SqMat[T any] struct {
	cells []T
	dim   int
}

// New returns a dim×dim matrix with every cell set to the zero value of T.
// Panics if dim is negative.
// Complexity: O(dim²).
func New[T any](dim int) *SqMat[T] {
	if dim < 0 {
		panic(fmt.Sprintf("sqmat: negative dimension %d", dim))
	}

	return &SqMat[T]{cells: make([]T, dim*dim), dim: dim}
}

// FromSlice returns a dim×dim matrix populated row-major from cells.
// The input is copied; the matrix never aliases caller storage.
// Panics unless len(cells) == dim*dim — a mismatched call site is a
// programmer error, not a recoverable condition.
// Complexity: O(dim²).
func FromSlice[T any](dim int, cells []T) *SqMat[T] {
	if dim < 0 {
		panic(fmt.Sprintf("sqmat: negative dimension %d", dim))
	}
	if len(cells) != dim*dim {
		panic(fmt.Sprintf("sqmat: %d cells cannot fill a %d×%d matrix", len(cells), dim, dim))
	}
	m := &SqMat[T]{cells: make([]T, len(cells)), dim: dim}
	copy(m.cells, cells)

	return m
}

// Dim returns the matrix dimension.
// Complexity: O(1).
func (m *SqMat[T]) Dim() int { return m.dim }

// At returns the cell at (i, j). Panics if either index is out of range.
// Complexity: O(1).
func (m *SqMat[T]) At(i, j int) T {
	m.bounds(i, j)

	return m.cells[i*m.dim+j]
}

// Set assigns v to the cell at (i, j). Panics if either index is out of range.
// Complexity: O(1).
func (m *SqMat[T]) Set(i, j int, v T) {
	m.bounds(i, j)
	m.cells[i*m.dim+j] = v
}

// Row returns row i as a view into the matrix storage. Mutating the
// returned slice mutates the matrix; callers that need an independent
// copy should Clone first. Panics if i is out of range.
// Complexity: O(1).
func (m *SqMat[T]) Row(i int) []T {
	if i < 0 || i >= m.dim {
		panic(fmt.Sprintf("sqmat: row %d out of range for dimension %d", i, m.dim))
	}

	return m.cells[i*m.dim : (i+1)*m.dim]
}

// Clone returns a deep copy of the matrix. The copy shares no storage
// with the original.
// Complexity: O(dim²).
func (m *SqMat[T]) Clone() *SqMat[T] {
	c := &SqMat[T]{cells: make([]T, len(m.cells)), dim: m.dim}
	copy(c.cells, m.cells)

	return c
}

// Equal reports whether m and other have the same dimension and eq holds
// cellwise. eq lets callers compare non-comparable cell types.
// Complexity: O(dim²).
func (m *SqMat[T]) Equal(other *SqMat[T], eq func(a, b T) bool) bool {
	if m.dim != other.dim {
		return false
	}
	for i := range m.cells {
		if !eq(m.cells[i], other.cells[i]) {
			return false
		}
	}

	return true
}

func (m *SqMat[T]) bounds(i, j int) {
	if i < 0 || i >= m.dim || j < 0 || j >= m.dim {
		panic(fmt.Sprintf("sqmat: index (%d,%d) out of range for dimension %d", i, j, m.dim))
	}
}

// Map applies f to every cell of m and collects the results into a new
// matrix of the same dimension. A free function because Go methods cannot
// introduce the target cell type S.
// Complexity: O(dim²).
func Map[T, S any](m *SqMat[T], f func(T) S) *SqMat[S] {
	res := New[S](m.dim)
	for i := range m.cells {
		res.cells[i] = f(m.cells[i])
	}

	return res
}

// Format renders the matrix one row per line, cells stringified by cell
// and separated by single spaces. No trailing newline.
func Format[T any](m *SqMat[T], cell func(T) string) string {
	var sb strings.Builder
	for i := 0; i < m.dim; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for j := 0; j < m.dim; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(cell(m.At(i, j)))
		}
	}

	return sb.String()
}
