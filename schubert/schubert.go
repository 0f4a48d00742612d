package schubert

import (
	"strings"

	"github.com/katalvlaran/pipedreams/dream"
	"github.com/katalvlaran/pipedreams/perm"
)

// Schubert is a Schubert polynomial: a permutation with the ordered list
// of monomials of its reduced pipe dreams.
type Schubert struct {
	perm  perm.Perm
	parts []Monomial
}

// FromDreams maps a generated dream set to its Schubert polynomial.
// Each dream contributes its monomial in generation order; dreams with no
// crosses contribute nothing. Equal monomials from distinct dreams are
// kept as separate terms.
func FromDreams(rd *dream.ReducedDreams) Schubert {
	var parts []Monomial
	for _, d := range rd.Dreams() {
		mono := FromDream(d)
		if !mono.IsConstant() {
			parts = append(parts, mono)
		}
	}

	return Schubert{perm: rd.Perm(), parts: parts}
}

// Perm returns the polynomial's permutation label.
func (s Schubert) Perm() perm.Perm { return s.perm }

// Parts returns the monomial terms in generation order.
func (s Schubert) Parts() []Monomial {
	out := make([]Monomial, len(s.parts))
	copy(out, s.parts)

	return out
}

// String renders "S_[…] = m_1 + m_2 + …", or "S_[…] = 1" when there are
// no terms.
func (s Schubert) String() string {
	var sb strings.Builder
	sb.WriteString("S_")
	sb.WriteString(s.perm.String())
	sb.WriteString(" = ")
	if len(s.parts) == 0 {
		sb.WriteString("1")

		return sb.String()
	}
	for i, part := range s.parts {
		if i > 0 {
			sb.WriteString(" + ")
		}
		sb.WriteString(part.String())
	}

	return sb.String()
}
