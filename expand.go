package rawpoly

import "fmt"

// Expand evaluates each monomial of terms at the point x and returns the
// expansion vector. The result has length terms.NbMonomials()+1; the first
// entry is the constant term 1, and entry i+1 is the value of monomial i.
//
// Expand fails with ErrShapeMismatch before producing any output if len(x)
// differs from the number of columns of terms. It does not mutate its
// inputs and is safe for concurrent use.
func Expand(x []float64, terms Terms) ([]float64, error) {
	if len(x) != terms.NbVariables() {
		return nil, fmt.Errorf("%w: got %d values for %d variables", ErrShapeMismatch, len(x), terms.NbVariables())
	}

	ans := make([]float64, terms.NbMonomials()+1)
	expand(ans, x, terms)
	return ans, nil
}

// ExpandInto is Expand writing into a caller-provided slice of length
// terms.NbMonomials()+1, for reuse across calls in hot loops.
func ExpandInto(ans, x []float64, terms Terms) error {
	if len(x) != terms.NbVariables() {
		return fmt.Errorf("%w: got %d values for %d variables", ErrShapeMismatch, len(x), terms.NbVariables())
	}
	if len(ans) != terms.NbMonomials()+1 {
		return fmt.Errorf("%w: ans has length %d, expected %d", ErrShapeMismatch, len(ans), terms.NbMonomials()+1)
	}

	expand(ans, x, terms)
	return nil
}

// expand assumes shapes were checked by the caller.
func expand(ans, x []float64, terms Terms) {
	// every slot starts at 1 since we only ever multiply into it
	for i := range ans {
		ans[i] = 1
	}

	for i, row := range terms {
		for j, e := range row {
			// zero exponents are identity factors; skipping them also
			// keeps 0^0 from ever being evaluated
			if e > 0 {
				ans[i+1] *= pow(x[j], e)
			}
		}
	}
}

// pow raises base to a positive integer power by square-and-multiply.
func pow(base float64, exp int) float64 {
	res := 1.0
	for exp > 0 {
		if exp&1 == 1 {
			res *= base
		}
		base *= base
		exp >>= 1
	}
	return res
}
