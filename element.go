package ideal

import (
	"math/big"

	"github.com/go-algebra/ideal/poly"
)

// Kind tags the ring an Element belongs to.
type Kind uint8

const (
	// Integer marks an element of the ring of integers.
	Integer Kind = iota
	// Polynomial marks an element of the ring of univariate polynomials
	// over the reals.
	Polynomial
)

func (k Kind) String() string {
	if k == Polynomial {
		return "polynomial"
	}

	return "integer"
}

/*
Element is a member of one of the two supported rings: an
arbitrary-precision integer, or a univariate polynomial with real
coefficients ordered from lowest to highest degree.

Elements are immutable values. Constructors and accessors copy their
data, so no algorithm working state ever aliases a caller's element.
*/
type Element struct {
	kind Kind
	n    *big.Int
	p    poly.Poly
}

// NewInt returns the integer element with the given value. A nil value
// is treated as zero.
func NewInt(v *big.Int) Element {
	n := new(big.Int)
	if v != nil {
		n.Set(v)
	}

	return Element{kind: Integer, n: n}
}

// NewInt64 returns the integer element with the given value.
func NewInt64(v int64) Element {
	return Element{kind: Integer, n: big.NewInt(v)}
}

// NewPoly returns the polynomial element with the given coefficients in
// ascending degree order. No coefficients yields the zero polynomial.
func NewPoly(coeffs ...float64) Element {
	return Element{kind: Polynomial, p: poly.New(coeffs...)}
}

func (e Element) Kind() Kind {
	return e.kind
}

// Int returns a copy of the integer value, or nil for a polynomial
// element.
func (e Element) Int() *big.Int {
	if e.kind != Integer {
		return nil
	}

	return new(big.Int).Set(e.bigint())
}

// Poly returns a copy of the coefficient sequence, or nil for an integer
// element.
func (e Element) Poly() poly.Poly {
	if e.kind != Polynomial {
		return nil
	}

	return e.p.Clone()
}

// bigint reads the integer value without copying; the zero Element counts
// as integer zero.
func (e Element) bigint() *big.Int {
	if e.n == nil {
		return new(big.Int)
	}

	return e.n
}

// String renders integers as their decimal value and polynomials as a sum
// of coefficient*x^degree terms, omitting terms below the default
// tolerance. The zero polynomial renders as "0".
func (e Element) String() string {
	if e.kind == Polynomial {
		return e.p.String()
	}

	return e.bigint().String()
}
