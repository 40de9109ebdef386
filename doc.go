// Package rawpoly computes raw polynomial expansions: given an input point
// and a matrix of per-variable exponents describing a set of monomials, it
// evaluates each monomial at that point.
//
// The expansion of x under a term matrix E with m rows is a vector of m+1
// values; the leading entry is the constant term 1, and entry i+1 is the
// product over all variables j of x[j]^E[i][j].
//
// rawpoly does not build term matrices, fit coefficients, or manipulate
// polynomials symbolically; it only evaluates an already-built matrix.
package rawpoly

import "github.com/blang/semver/v4"

var Version = semver.MustParse("0.1.0")
