package poly

import (
	"math"
	"strconv"
	"strings"
)

/*
Poly is a dense univariate polynomial over the reals.

Coefficients are ordered from lowest to highest degree
(e.g. [1, 2, 3] is 1 + 2x + 3x^2). The zero polynomial is the empty
slice; a normalized polynomial carries no trailing negligible
coefficients (see Ring.Trim).
*/
type Poly []float64

// New builds a polynomial from coefficients in ascending degree order.
// The input slice is copied.
func New(coeffs ...float64) Poly {
	p := make(Poly, len(coeffs))
	copy(p, coeffs)

	return p
}

// FromRoots returns the monic product (x - r_1)(x - r_2)...(x - r_n).
// FromRoots() is the constant polynomial 1.
func FromRoots(roots ...float64) Poly {
	p := Poly{1}

	for _, root := range roots {
		next := make(Poly, len(p)+1)
		for i, c := range p {
			// (c * x^i) * (x - root)
			next[i+1] += c
			next[i] -= c * root
		}

		p = next
	}

	return p
}

func (p Poly) Clone() Poly {
	q := make(Poly, len(p))
	copy(q, p)

	return q
}

// IsZero reports whether p is structurally the zero polynomial.
// Use Ring.IsZero to test against the ring tolerance.
func (p Poly) IsZero() bool {
	return len(p) == 0
}

// Degree returns the index of the highest stored coefficient. The zero
// polynomial has no degree and yields math.MinInt, so that any degree
// comparison against it behaves as minus infinity.
func (p Poly) Degree() int {
	if len(p) == 0 {
		return math.MinInt
	}

	return len(p) - 1
}

// Lead returns the highest stored coefficient, or 0 for the zero polynomial.
func (p Poly) Lead() float64 {
	if len(p) == 0 {
		return 0
	}

	return p[len(p)-1]
}

// String renders the polynomial as a sum of coefficient*x^degree terms in
// ascending degree order, omitting terms below the default tolerance. The
// degree-0 term is printed as a bare coefficient, and the zero polynomial
// as "0".
func (p Poly) String() string {
	terms := make([]string, 0, len(p))

	for i, c := range p {
		if math.Abs(c) < DefaultTolerance {
			continue
		}

		term := strconv.FormatFloat(c, 'g', -1, 64)
		if i > 0 {
			term += "*x^" + strconv.Itoa(i)
		}

		terms = append(terms, term)
	}

	if len(terms) == 0 {
		return "0"
	}

	return strings.Join(terms, " + ")
}
