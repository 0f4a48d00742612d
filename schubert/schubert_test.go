package schubert_test

import (
	"testing"

	"github.com/katalvlaran/pipedreams/dream"
	"github.com/katalvlaran/pipedreams/perm"
	"github.com/katalvlaran/pipedreams/schubert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// Monomial extraction
//----------------------------------------------------------------------------//

// TestFromDream_RowCounts extracts per-row crossing counts in ascending
// row order, omitting zero rows.
func TestFromDream_RowCounts(t *testing.T) {
	const (
		E = dream.Elbow
		X = dream.Cross
	)
	d := dream.FromTiles(3, []dream.Tile{
		X, X, E,
		E, E, E,
		X, E, E,
	})

	mono := schubert.FromDream(d)
	assert.Equal(t, []schubert.Power{{Var: 0, Pow: 2}, {Var: 2, Pow: 1}}, mono.Powers())
	assert.Equal(t, "x_0^2*x_2", mono.String())
}

// TestFromDream_DegreeEqualsCrosses: the exponent sum always matches the
// dream's cross count, across a generated dream set.
func TestFromDream_DegreeEqualsCrosses(t *testing.T) {
	p, err := perm.New([]int{2, 0, 3, 1})
	require.NoError(t, err)

	rd := dream.ReducedDreamsFor(p)
	require.NotZero(t, rd.Len())
	for _, d := range rd.Dreams() {
		assert.Equal(t, d.Crosses(), schubert.FromDream(d).Degree())
	}
}

// TestMonomial_String covers exponent-1 factors and the empty monomial.
func TestMonomial_String(t *testing.T) {
	assert.Equal(t, "1", schubert.Monomial{}.String())
	assert.Zero(t, schubert.Monomial{}.Degree())
	assert.True(t, schubert.Monomial{}.IsConstant())

	d := dream.ReducedDreamsFor(perm.Identity(2)).Dreams()[0]
	assert.Equal(t, "1", schubert.FromDream(d).String(), "degenerate dream is the constant monomial")
}

// TestMonomial_Equal compares factor lists exactly.
func TestMonomial_Equal(t *testing.T) {
	p, err := perm.New([]int{0, 2, 1})
	require.NoError(t, err)
	dreams := dream.ReducedDreamsFor(p).Dreams()

	a, b := schubert.FromDream(dreams[0]), schubert.FromDream(dreams[1])
	assert.True(t, a.Equal(schubert.FromDream(dreams[0])))
	assert.False(t, a.Equal(b), "x_0 and x_1 differ")
}

//----------------------------------------------------------------------------//
// Polynomial assembly
//----------------------------------------------------------------------------//

// TestFromDreams_Known1432 assembles the five-term polynomial of
// [0, 3, 2, 1] in generation order.
func TestFromDreams_Known1432(t *testing.T) {
	p, err := perm.New([]int{0, 3, 2, 1})
	require.NoError(t, err)

	s := schubert.FromDreams(dream.ReducedDreamsFor(p))
	assert.Equal(t,
		"S_[0, 3, 2, 1] = x_0^2*x_1 + x_0*x_1^2 + x_0^2*x_2 + x_0*x_1*x_2 + x_1^2*x_2",
		s.String())
}

// TestFromDreams_IdentityRendersOne: the identity's zero-cross dream
// contributes no term and the polynomial collapses to the literal 1.
func TestFromDreams_IdentityRendersOne(t *testing.T) {
	s := schubert.FromDreams(dream.ReducedDreamsFor(perm.Identity(3)))
	assert.Empty(t, s.Parts())
	assert.Equal(t, "S_[0, 1, 2] = 1", s.String())
}

// TestFromDreams_LongestBoundary: the documented empty dream set of w0
// also renders as the literal 1.
func TestFromDreams_LongestBoundary(t *testing.T) {
	s := schubert.FromDreams(dream.ReducedDreamsFor(perm.Long(2)))
	assert.Empty(t, s.Parts())
	assert.Equal(t, "S_[1, 0] = 1", s.String())
}

// TestParts_SliceCopy: mutating the returned slice must not leak back.
func TestParts_SliceCopy(t *testing.T) {
	p, err := perm.New([]int{0, 2, 1})
	require.NoError(t, err)

	s := schubert.FromDreams(dream.ReducedDreamsFor(p))
	parts := s.Parts()
	require.Len(t, parts, 2)
	parts[0] = schubert.Monomial{}
	assert.Equal(t, "x_0", s.Parts()[0].String())
}
