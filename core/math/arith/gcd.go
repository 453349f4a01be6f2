package arith

import (
	"errors"
	"math/big"
)

var (
	ErrNoInverse = errors.New("arith: no modular inverse")
)

// GCD returns the greatest common divisor of a and b using Euclid's algorithm.
// The larger operand is reduced first. Operands are expected to be positive;
// a zero divisor panics.
func GCD(a, b *big.Int) *big.Int {
	x := new(big.Int).Set(a)
	y := new(big.Int).Set(b)
	if x.Cmp(y) < 0 {
		x, y = y, x
	}
	r := new(big.Int)
	for {
		r.Mod(x, y)
		if r.Sign() == 0 {
			return y
		}
		x, y, r = y, r, x
	}
}

// Coprime reports whether gcd(a, b) = 1.
func Coprime(a, b *big.Int) bool {
	return GCD(a, b).Cmp(one) == 0
}

// ModInverse returns x such that a⋅x ≡ 1 (mod m), computed with the extended
// Euclidean algorithm. The result lies in [0, m).
func ModInverse(a, m *big.Int) (*big.Int, error) {
	// invariant: oldR = oldS⋅a (mod m), r = s⋅a (mod m)
	oldR, r := new(big.Int).Mod(a, m), new(big.Int).Set(m)
	oldS, s := big.NewInt(1), big.NewInt(0)
	q, tmp := new(big.Int), new(big.Int)
	for r.Sign() != 0 {
		q.Quo(oldR, r)

		tmp.Mul(q, r)
		oldR, r = r, tmp.Sub(oldR, tmp)
		tmp = new(big.Int)

		tmp.Mul(q, s)
		oldS, s = s, tmp.Sub(oldS, tmp)
		tmp = new(big.Int)
	}
	if oldR.Cmp(one) != 0 {
		return nil, ErrNoInverse
	}
	return oldS.Mod(oldS, m), nil
}
