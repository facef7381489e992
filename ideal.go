// Package ideal computes generators of principal ideals over two
// Euclidean domains, the integers and univariate polynomials over the
// reals, and decides membership in the ideal spanned by a finite set of
// generators.
//
// Both operations reduce to the Euclidean algorithm: the generator of
// the ideal (g_1, ..., g_n) is gcd(g_1, ..., g_n), and f belongs to the
// ideal exactly when the generator divides f.
package ideal

import (
	"errors"
	"math/big"

	"github.com/go-algebra/ideal/poly"
)

var (
	ErrEmptyInput = errors.New("element list is empty")
	ErrMixedRings = errors.New("elements from different rings cannot be combined")
)

// Ring evaluates ideal computations at a fixed zero tolerance on the
// polynomial path. The zero value uses poly.DefaultTolerance.
type Ring struct {
	pr poly.Ring
}

// NewRing returns a Ring whose polynomial arithmetic treats coefficients
// below tol as zero. Tolerances that are not strictly positive fall back
// to poly.DefaultTolerance.
func NewRing(tol float64) Ring {
	return Ring{pr: poly.NewRing(tol)}
}

// PolyRing returns the polynomial ring the ideal computations run in.
func (r Ring) PolyRing() poly.Ring {
	return r.pr
}

// commonKind checks that elements form a non-empty, single-ring list and
// returns that ring's kind.
func commonKind(elements []Element) (Kind, error) {
	if len(elements) == 0 {
		return 0, ErrEmptyInput
	}

	kind := elements[0].kind
	for _, e := range elements[1:] {
		if e.kind != kind {
			return 0, ErrMixedRings
		}
	}

	return kind, nil
}

// Generator returns the canonical generator of the ideal spanned by the
// given elements: the non-negative gcd for integers, the monic gcd for
// polynomials. All elements must belong to the same ring.
func (r Ring) Generator(elements []Element) (Element, error) {
	kind, err := commonKind(elements)
	if err != nil {
		return Element{}, err
	}

	if kind == Integer {
		d := new(big.Int).Abs(elements[0].bigint())
		for _, e := range elements[1:] {
			d = GCD(d, e.bigint())
		}

		return Element{kind: Integer, n: d}, nil
	}

	d := r.pr.Trim(elements[0].p)
	for _, e := range elements[1:] {
		d, err = r.pr.GCD(d, e.p)
		if err != nil {
			return Element{}, err
		}
	}

	// A singleton list skips the fold, so normalize unconditionally.
	return Element{kind: Polynomial, p: r.pr.Monic(d)}, nil
}

// Contains reports whether candidate lies in the ideal spanned by
// generators: the generator gcd must divide it. A zero generator means
// the ideal is {0}, so only (near-)zero candidates belong.
func (r Ring) Contains(candidate Element, generators []Element) (bool, error) {
	kind, err := commonKind(generators)
	if err != nil {
		return false, err
	}

	if candidate.kind != kind {
		return false, ErrMixedRings
	}

	d, err := r.Generator(generators)
	if err != nil {
		return false, err
	}

	if kind == Integer {
		if d.n.Sign() == 0 {
			return candidate.bigint().Sign() == 0, nil
		}

		rem := new(big.Int).Mod(candidate.bigint(), d.n)

		return rem.Sign() == 0, nil
	}

	if d.p.IsZero() {
		return r.pr.IsZero(candidate.p), nil
	}

	_, rem, err := r.pr.Div(candidate.p, d.p)
	if err != nil {
		return false, err
	}

	return r.pr.IsZero(rem), nil
}

// Generator computes the canonical ideal generator at the default
// tolerance.
func Generator(elements []Element) (Element, error) {
	return Ring{}.Generator(elements)
}

// Contains decides ideal membership at the default tolerance.
func Contains(candidate Element, generators []Element) (bool, error) {
	return Ring{}.Contains(candidate, generators)
}
