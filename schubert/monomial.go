package schubert

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/pipedreams/dream"
)

// Power is one x_Var^Pow factor of a monomial. Pow is strictly positive;
// a variable with exponent zero is simply absent.
type Power struct {
	Var int
	Pow int
}

// Monomial is a product of Power factors, ascending by variable index.
// The zero value is the empty monomial (the constant 1).
type Monomial struct {
	powers []Power
}

// FromDream extracts the monomial of a pipe dream: one factor per row
// with at least one Cross, the exponent being that row's crossing count.
// Complexity: O(n²).
func FromDream(d dream.Dream) Monomial {
	var powers []Power
	for i := 0; i < d.Dim(); i++ {
		count := 0
		for j := 0; j < d.Dim(); j++ {
			if d.At(i, j) == dream.Cross {
				count++
			}
		}
		if count > 0 {
			powers = append(powers, Power{Var: i, Pow: count})
		}
	}

	return Monomial{powers: powers}
}

// Powers returns the factors in ascending variable order.
func (m Monomial) Powers() []Power {
	out := make([]Power, len(m.powers))
	copy(out, m.powers)

	return out
}

// Degree returns the total degree — the sum of all exponents. For a
// monomial extracted from a dream this equals the dream's cross count.
func (m Monomial) Degree() int {
	deg := 0
	for _, p := range m.powers {
		deg += p.Pow
	}

	return deg
}

// IsConstant reports whether the monomial has no factors.
func (m Monomial) IsConstant() bool { return len(m.powers) == 0 }

// Equal reports whether two monomials have identical factor lists.
func (m Monomial) Equal(other Monomial) bool {
	if len(m.powers) != len(other.powers) {
		return false
	}
	for i, p := range m.powers {
		if p != other.powers[i] {
			return false
		}
	}

	return true
}

// String renders the monomial as "*"-joined factors: "x_0^2*x_1", a bare
// "x_i" when the exponent is 1, or "1" for the empty monomial.
func (m Monomial) String() string {
	if len(m.powers) == 0 {
		return "1"
	}
	parts := make([]string, len(m.powers))
	for i, p := range m.powers {
		if p.Pow == 1 {
			parts[i] = fmt.Sprintf("x_%d", p.Var)
		} else {
			parts[i] = fmt.Sprintf("x_%d^%d", p.Var, p.Pow)
		}
	}

	return strings.Join(parts, "*")
}
