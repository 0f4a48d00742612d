package perm

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DefaultDelim is the reference delimiter for permutation text.
const DefaultDelim = ","

// Parse reads a permutation from a delim-separated list of non-negative
// integers. Surrounding whitespace on the input and on each token is
// ignored: " 0, 3, 2, 1 " parses under delim ",".
// Returns ErrParse if a token is not a non-negative integer or if the
// values are not a valid permutation; both sub-causes collapse into the
// one sentinel.
func Parse(s, delim string) (Perm, error) {
	tokens := strings.Split(strings.TrimSpace(s), delim)
	vals := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		v, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil || v < 0 {
			return Perm{}, fmt.Errorf("%w: bad token %q", ErrParse, tok)
		}
		vals = append(vals, v)
	}

	p, err := New(vals)
	if err != nil {
		if errors.Is(err, ErrInvalidPerm) {
			return Perm{}, fmt.Errorf("%w: %v", ErrParse, vals)
		}

		return Perm{}, err
	}

	return p, nil
}

// ParseComma parses with the reference delimiter DefaultDelim.
func ParseComma(s string) (Perm, error) {
	return Parse(s, DefaultDelim)
}
