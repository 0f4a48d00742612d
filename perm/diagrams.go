package perm

import "github.com/katalvlaran/pipedreams/sqmat"

// Matrix returns the permutation matrix of p: cell (i, p(i)) is 1,
// every other cell 0.
// Complexity: O(n²).
func (p Perm) Matrix() *sqmat.SqMat[uint8] {
	m := sqmat.New[uint8](p.Len())
	for i := 0; i < p.Len(); i++ {
		m.Set(i, p.At(i), 1)
	}

	return m
}

// Rothe returns the Rothe diagram of p: cell (i, p(j)) is 1 for every
// inversion i < j with p(i) > p(j). The number of marked cells equals
// CoxeterLength.
// Complexity: O(n²).
func (p Perm) Rothe() *sqmat.SqMat[uint8] {
	m := sqmat.New[uint8](p.Len())
	for i := 0; i < p.Len(); i++ {
		for j := i + 1; j < p.Len(); j++ {
			if p.At(i) > p.At(j) {
				m.Set(i, p.At(j), 1)
			}
		}
	}

	return m
}
