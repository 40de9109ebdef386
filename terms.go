package rawpoly

import (
	"errors"
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// ErrShapeMismatch is returned when an input vector is not the same length
// as the number of columns in the term matrix.
var ErrShapeMismatch = errors.New("x must be the same length as the number of columns in the term matrix")

// Terms is a term matrix: one row per monomial, one column per variable.
// Entry (i, j) is the exponent of variable j in monomial i. Exponents are
// expected to be non-negative; see Validate.
type Terms [][]int

// NbMonomials returns the number of monomials (rows) in the matrix.
func (t Terms) NbMonomials() int {
	return len(t)
}

// NbVariables returns the number of variables (columns) in the matrix,
// or 0 if the matrix has no rows.
func (t Terms) NbVariables() int {
	if len(t) == 0 {
		return 0
	}
	return len(t[0])
}

// Validate checks that the matrix is rectangular and that every exponent is
// non-negative. Expand does not call it; entries outside the contract are
// the caller's responsibility unless it opts in to this check.
func (t Terms) Validate() error {
	v := t.NbVariables()
	for i, row := range t {
		if len(row) != v {
			return fmt.Errorf("row %d has %d columns, expected %d", i, len(row), v)
		}
		for j, e := range row {
			if e < 0 {
				return fmt.Errorf("negative exponent %d at row %d, column %d", e, i, j)
			}
		}
	}
	return nil
}

// TotalDegree returns the total degree of monomial i, the sum of its
// exponents.
func (t Terms) TotalDegree(i int) int {
	d := 0
	for _, e := range t[i] {
		d += e
	}
	return d
}

// UsedVariables returns the set of columns that carry a positive exponent in
// at least one row. Variables outside the set contribute to no monomial.
func (t Terms) UsedVariables() *bitset.BitSet {
	used := bitset.New(uint(t.NbVariables()))
	for _, row := range t {
		for j, e := range row {
			if e > 0 {
				used.Set(uint(j))
			}
		}
	}
	return used
}
