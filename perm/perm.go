package perm

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Perm is an immutable zero-indexed permutation.
// Invariant: sorting inner yields exactly 0,1,…,len-1. The invariant is
// established once per construction path and never re-checked.
type Perm struct {
	inner []int
}

// New validates and copies v into a Perm.
// Returns ErrInvalidPerm unless v is a bijection on {0,…,len(v)-1}.
// Complexity: O(n log n).
func New(v []int) (Perm, error) {
	sorted := make([]int, len(v))
	copy(sorted, v)
	sort.Ints(sorted)
	for i, s := range sorted {
		if s != i {
			return Perm{}, fmt.Errorf("%w: got %v", ErrInvalidPerm, v)
		}
	}

	inner := make([]int, len(v))
	copy(inner, v)

	return Perm{inner: inner}, nil
}

// Identity returns the identity permutation of length n.
func Identity(n int) Perm {
	inner := make([]int, n)
	for i := range inner {
		inner[i] = i
	}

	return Perm{inner: inner}
}

// Long returns the longest permutation of length n: n-1, n-2, …, 0.
// It is the unique permutation of maximal Coxeter length n(n-1)/2.
func Long(n int) Perm {
	inner := make([]int, n)
	for i := range inner {
		inner[i] = n - 1 - i
	}

	return Perm{inner: inner}
}

// Len returns the length of the permutation.
func (p Perm) Len() int { return len(p.inner) }

// At returns p(i). Panics if i is out of range.
func (p Perm) At(i int) int { return p.inner[i] }

// Values returns a copy of the underlying array.
func (p Perm) Values() []int {
	v := make([]int, len(p.inner))
	copy(v, p.inner)

	return v
}

// Compose returns the permutation i ↦ p(other(i)).
// Composing two bijections of equal length is itself a bijection, so the
// result needs no re-validation. Panics on a length mismatch.
// Complexity: O(n).
func (p Perm) Compose(other Perm) Perm {
	if p.Len() != other.Len() {
		panic(fmt.Sprintf("perm: cannot compose permutations of lengths %d and %d", p.Len(), other.Len()))
	}
	inner := make([]int, p.Len())
	for i := range inner {
		inner[i] = p.inner[other.inner[i]]
	}

	return Perm{inner: inner}
}

// Lehmer returns the Lehmer code of p: entry i counts indices j>i with
// p(j) < p(i). See https://en.wikipedia.org/wiki/Lehmer_code.
// Complexity: O(n²).
func (p Perm) Lehmer() []int {
	code := make([]int, p.Len())
	for i := 0; i < p.Len(); i++ {
		for j := i + 1; j < p.Len(); j++ {
			if p.inner[j] < p.inner[i] {
				code[i]++
			}
		}
	}

	return code
}

// CoxeterLength returns the minimal number of adjacent transpositions
// whose product is p — the sum of the Lehmer code.
func (p Perm) CoxeterLength() int {
	length := 0
	for _, c := range p.Lehmer() {
		length += c
	}

	return length
}

// String renders the permutation as "[a, b, c]", zero-indexed, in array order.
func (p Perm) String() string {
	parts := make([]string, len(p.inner))
	for i, v := range p.inner {
		parts[i] = strconv.Itoa(v)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
