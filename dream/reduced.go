package dream

import "github.com/katalvlaran/pipedreams/perm"

// ReducedWord returns the lexicographically-first reduced word of p under
// the left-to-right adjacent-transposition convention. The word is derived
// from the Lehmer code processed in reverse index order: reversed position
// i with code value ci contributes the descending run i-1, i-2, …, i-ci.
// The identity yields the empty word.
// Complexity: O(n² + L) where L = p.CoxeterLength().
func ReducedWord(p perm.Perm) []int {
	code := p.Lehmer()
	n := len(code)
	var word []int
	for i := 0; i < n; i++ {
		ci := code[n-1-i]
		for j := i - 1; j >= i-ci; j-- {
			word = append(word, j)
		}
	}

	return word
}

// ReducedDreams is the ordered set of reduced pipe dreams of a permutation.
type ReducedDreams struct {
	perm   perm.Perm
	dreams []Dream
}

// ReducedDreamsFor enumerates every reduced pipe dream of p, in generation
// order. The recursion folds Mitosis over the reversed reduced word of
// p∘w0, seeded by the fully-crossed Long dream; each letter replaces the
// working set with the union of all children of all current dreams, and
// no deduplication is performed.
//
// When p is the longest permutation, p∘w0 is the identity, the word is
// empty, and the result is the empty set (see the package doc for why
// this boundary case stays as is).
func ReducedDreamsFor(p perm.Perm) *ReducedDreams {
	return &ReducedDreams{perm: p, dreams: reducedDreams(p)}
}

// Perm returns the permutation the dreams belong to.
func (r *ReducedDreams) Perm() perm.Perm { return r.perm }

// Len returns the number of dreams in the set.
func (r *ReducedDreams) Len() int { return len(r.dreams) }

// Dreams returns the dream set in generation order. The slice is a copy;
// the dreams themselves are immutable values.
func (r *ReducedDreams) Dreams() []Dream {
	out := make([]Dream, len(r.dreams))
	copy(out, r.dreams)

	return out
}

func reducedDreams(p perm.Perm) []Dream {
	q := p.Compose(perm.Long(p.Len()))
	word := ReducedWord(q)
	if len(word) == 0 {
		return nil
	}

	// Reverse in place: mitosis consumes the word back to front.
	for l, r := 0, len(word)-1; l < r; l, r = l+1, r-1 {
		word[l], word[r] = word[r], word[l]
	}

	dreams := Long(p.Len()).Mitosis(word[0])
	for _, letter := range word[1:] {
		dreams = expand(dreams, letter)
	}

	return dreams
}

// expand replaces a working set with the union of every dream's children
// under the letter-th mitosis operator, preserving parent order.
func expand(dreams []Dream, letter int) []Dream {
	var next []Dream
	for _, d := range dreams {
		next = append(next, d.Mitosis(letter)...)
	}

	return next
}
