package poly

import (
	"errors"
	"math"
)

// DefaultTolerance is the magnitude below which a floating-point
// coefficient is treated as exactly zero. It absorbs the rounding error
// accumulated by the elimination steps of long division.
const DefaultTolerance = 1e-12

// Ring is the ring of dense univariate polynomials over the reals,
// evaluated at a fixed zero tolerance. The zero value uses
// DefaultTolerance; every trimming and zero test in the ring applies the
// same threshold.
//
// All operations treat their operands as immutable and return freshly
// owned results.
type Ring struct {
	tol float64
}

// NewRing returns a Ring with the given zero tolerance. Tolerances that
// are not strictly positive fall back to DefaultTolerance.
func NewRing(tol float64) Ring {
	if !(tol > 0) {
		tol = DefaultTolerance
	}

	return Ring{tol: tol}
}

// Tolerance returns the zero threshold the ring applies.
func (r Ring) Tolerance() float64 {
	if r.tol > 0 {
		return r.tol
	}

	return DefaultTolerance
}

func (r Ring) negligible(c float64) bool {
	return math.Abs(c) < r.Tolerance()
}

// Trim drops trailing negligible coefficients so that the leading
// coefficient is above tolerance, or the polynomial is empty. The result
// shares p's backing array.
func (r Ring) Trim(p Poly) Poly {
	n := len(p)
	for n > 0 && r.negligible(p[n-1]) {
		n--
	}

	return p[:n]
}

// IsZero reports whether every coefficient of p is below tolerance.
func (r Ring) IsZero(p Poly) bool {
	for _, c := range p {
		if !r.negligible(c) {
			return false
		}
	}

	return true
}

// Equal reports whether a and b differ by less than the tolerance in
// every coefficient.
func (r Ring) Equal(a, b Poly) bool {
	return r.IsZero(r.Sub(a, b))
}

func (r Ring) Add(a, b Poly) Poly {
	c := make(Poly, max(len(a), len(b)))
	copy(c, a)
	for i, bc := range b {
		c[i] += bc
	}

	return r.Trim(c)
}

func (r Ring) Sub(a, b Poly) Poly {
	c := make(Poly, max(len(a), len(b)))
	copy(c, a)
	for i, bc := range b {
		c[i] -= bc
	}

	return r.Trim(c)
}

// Mul computes the product by schoolbook convolution: c[i+j] += a[i]*b[j].
func (r Ring) Mul(a, b Poly) Poly {
	if a.IsZero() || b.IsZero() {
		return Poly{}
	}

	c := make(Poly, len(a)+len(b)-1)
	for i, ac := range a {
		if ac == 0 {
			continue
		}

		for j, bc := range b {
			c[i+j] += ac * bc
		}
	}

	return r.Trim(c)
}

func (r Ring) MulScalar(a Poly, s float64) Poly {
	c := make(Poly, len(a))
	for i, ac := range a {
		c[i] = ac * s
	}

	return r.Trim(c)
}

// Eval evaluates a at x by Horner's rule.
func (r Ring) Eval(a Poly, x float64) float64 {
	result := 0.0
	for i := len(a) - 1; i >= 0; i-- {
		result = a[i] + x*result
	}

	return result
}

var (
	ErrDivisionByZero = errors.New("division by the zero polynomial")
	ErrDivergence     = errors.New("long division failed to reduce the dividend degree")
)

// Div computes q, rem such that a = q*b + rem with rem either zero or of
// degree strictly below b's, following the schoolbook division with
// remainder (Algorithm 2.5 in `Modern Computer Algebra` by von zur Gathen
// and Gerhard), adapted to tolerance-based coefficient arithmetic.
//
// Each elimination cancels the leading term of the dividend exactly and
// trims whatever rounding residue remains below tolerance, so the degree
// strictly decreases every step. The iteration bound of deg(a)+1 turns a
// violation of that invariant into ErrDivergence instead of a hang.
func (r Ring) Div(a, b Poly) (q, rem Poly, err error) {
	g := r.Trim(b)
	if g.IsZero() {
		return nil, nil, ErrDivisionByZero
	}

	rem = r.Trim(a).Clone()
	if rem.Degree() < g.Degree() {
		return Poly{}, rem, nil
	}

	qc := make(Poly, rem.Degree()-g.Degree()+1)

	for steps := rem.Degree() + 1; !rem.IsZero() && rem.Degree() >= g.Degree(); steps-- {
		if steps <= 0 {
			return nil, nil, ErrDivergence
		}

		shift := rem.Degree() - g.Degree()
		c := rem.Lead() / g.Lead()
		qc[shift] += c

		for i := 0; i < len(g)-1; i++ {
			rem[i+shift] -= c * g[i]
		}

		// The leading term cancels exactly by construction of c.
		rem = r.Trim(rem[:len(rem)-1])
	}

	return r.Trim(qc), rem, nil
}

// Monic scales p so its leading coefficient is 1. The zero polynomial is
// returned unchanged.
func (r Ring) Monic(p Poly) Poly {
	t := r.Trim(p)
	if t.IsZero() {
		return Poly{}
	}

	lead := t.Lead()
	c := make(Poly, len(t))
	for i, tc := range t {
		c[i] = tc / lead
	}

	return c
}

// GCD computes the monic greatest common divisor of a and b by the
// Euclidean algorithm: gcd(a, b) = gcd(b, a mod b) until one side is
// zero. gcd(0, 0) is the zero polynomial.
func (r Ring) GCD(a, b Poly) (Poly, error) {
	f := r.Trim(a).Clone()
	g := r.Trim(b).Clone()

	for !g.IsZero() {
		_, rem, err := r.Div(f, g)
		if err != nil {
			return nil, err
		}

		f, g = g, rem
	}

	return r.Monic(f), nil
}

// ExtendedGCD returns the monic gcd g of a and b together with Bézout
// coefficients u, v such that u*a + v*b = g.
func (r Ring) ExtendedGCD(a, b Poly) (g, u, v Poly, err error) {
	A := r.Trim(a).Clone()
	B := r.Trim(b).Clone()

	// Invariants:
	//   A = u0*a + v0*b
	//   B = u1*a + v1*b
	u0, u1 := Poly{1}, Poly{}
	v0, v1 := Poly{}, Poly{1}

	for !B.IsZero() {
		q, rem, err := r.Div(A, B)
		if err != nil {
			return nil, nil, nil, err
		}

		A, B = B, rem

		// Bézout update: (u0, u1) = (u1, u0 - q*u1), same for v.
		u0, u1 = u1, r.Sub(u0, r.Mul(q, u1))
		v0, v1 = v1, r.Sub(v0, r.Mul(q, v1))
	}

	if A.IsZero() {
		return Poly{}, u0, v0, nil
	}

	scale := 1 / A.Lead()

	return r.MulScalar(A, scale), r.MulScalar(u0, scale), r.MulScalar(v0, scale), nil
}
