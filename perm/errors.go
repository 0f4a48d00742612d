package perm

import "errors"

// Sentinel errors for permutation construction and parsing.
var (
	// ErrInvalidPerm indicates the input values are not a bijection on {0,…,n-1}.
	ErrInvalidPerm = errors.New("perm: values are not a permutation of 0..n-1")
	// ErrParse indicates malformed permutation text: a token is not a
	// non-negative integer, or the parsed values are not a valid permutation.
	ErrParse = errors.New("perm: cannot parse permutation")
)
