package dream_test

import (
	"testing"

	"github.com/katalvlaran/pipedreams/dream"
	"github.com/katalvlaran/pipedreams/perm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// Reduced-word derivation
//----------------------------------------------------------------------------//

// TestReducedWord checks the lexicographically-first word on known cases.
func TestReducedWord(t *testing.T) {
	cases := []struct {
		name string
		vals []int
		word []int
	}{
		{"Identity", []int{0, 1, 2}, nil},
		{"Adjacent", []int{1, 0}, []int{0}},
		{"Longest3", []int{2, 1, 0}, []int{0, 1, 0}},
		{"Longest4", []int{3, 2, 1, 0}, []int{0, 1, 0, 2, 1, 0}},
		{"Cycle", []int{1, 2, 0}, []int{0, 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := perm.New(tc.vals)
			require.NoError(t, err)

			word := dream.ReducedWord(p)
			assert.Equal(t, tc.word, word)
			assert.Len(t, word, p.CoxeterLength(), "a reduced word has Coxeter-length letters")
		})
	}
}

//----------------------------------------------------------------------------//
// Generator
//----------------------------------------------------------------------------//

// TestReducedDreamsFor_Known enumerates the two dreams of [0, 2, 1].
func TestReducedDreamsFor_Known(t *testing.T) {
	p, err := perm.New([]int{0, 2, 1})
	require.NoError(t, err)

	rd := dream.ReducedDreamsFor(p)
	require.Equal(t, 2, rd.Len())
	assert.Equal(t, p.String(), rd.Perm().String())

	dreams := rd.Dreams()
	assert.Equal(t, ". + .\n. . .\n. . .", dreams[0].String())
	assert.Equal(t, ". . .\n+ . .\n. . .", dreams[1].String())
}

// TestReducedDreamsFor_Count1432: [0, 3, 2, 1] has exactly five reduced
// pipe dreams.
func TestReducedDreamsFor_Count1432(t *testing.T) {
	p, err := perm.New([]int{0, 3, 2, 1})
	require.NoError(t, err)

	rd := dream.ReducedDreamsFor(p)
	assert.Equal(t, 5, rd.Len())
}

// TestReducedDreamsFor_CrossingInvariant: every generated dream carries
// exactly CoxeterLength(p) crosses and the parent's dimension.
func TestReducedDreamsFor_CrossingInvariant(t *testing.T) {
	for _, vals := range [][]int{
		{0, 2, 1},
		{0, 3, 2, 1},
		{2, 0, 3, 1},
		{1, 3, 0, 2},
		{0, 2, 4, 1, 3},
	} {
		p, err := perm.New(vals)
		require.NoError(t, err)

		rd := dream.ReducedDreamsFor(p)
		require.NotZero(t, rd.Len(), "perm %v", vals)
		for _, d := range rd.Dreams() {
			assert.Equal(t, p.CoxeterLength(), d.Crosses(), "perm %v", vals)
			assert.Equal(t, p.Len(), d.Dim(), "perm %v", vals)
		}
	}
}

// TestReducedDreamsFor_Identity: the identity's unique dream is the
// all-elbow grid (zero crosses).
func TestReducedDreamsFor_Identity(t *testing.T) {
	rd := dream.ReducedDreamsFor(perm.Identity(3))
	require.Equal(t, 1, rd.Len())

	d := rd.Dreams()[0]
	assert.Zero(t, d.Crosses())
	assert.Equal(t, 3, d.Dim())
}

// TestReducedDreamsFor_LongestIsEmpty documents the preserved boundary
// case: for p = w0 the composed permutation is the identity, the word is
// empty, and the generator early-exits with an empty set.
func TestReducedDreamsFor_LongestIsEmpty(t *testing.T) {
	for _, n := range []int{2, 3, 4} {
		rd := dream.ReducedDreamsFor(perm.Long(n))
		assert.Zero(t, rd.Len(), "Long(%d) must yield the documented empty set", n)
	}
}

// TestDreams_SliceCopy: mutating the returned slice must not affect the set.
func TestDreams_SliceCopy(t *testing.T) {
	p, err := perm.New([]int{0, 2, 1})
	require.NoError(t, err)

	rd := dream.ReducedDreamsFor(p)
	dreams := rd.Dreams()
	dreams[0] = dream.Long(3)
	assert.Equal(t, ". + .\n. . .\n. . .", rd.Dreams()[0].String())
}
