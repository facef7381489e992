package ideal

import "math/big"

// GCD returns the non-negative greatest common divisor of a and b by the
// Euclidean algorithm, with gcd(0, 0) = 0. The arguments are not
// modified.
func GCD(a, b *big.Int) *big.Int {
	x := new(big.Int).Abs(a)
	y := new(big.Int).Abs(b)

	for y.Sign() != 0 {
		x, y = y, x.Mod(x, y)
	}

	return x
}

// LCM returns the non-negative least common multiple of a and b, with
// lcm(a, 0) = 0.
func LCM(a, b *big.Int) *big.Int {
	if a.Sign() == 0 || b.Sign() == 0 {
		return new(big.Int)
	}

	q := new(big.Int).Div(new(big.Int).Abs(a), GCD(a, b))

	return q.Mul(q, new(big.Int).Abs(b))
}
