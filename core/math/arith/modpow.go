package arith

import "math/big"

var (
	one = big.NewInt(1)
)

// PrimalityRounds is the number of Miller-Rabin rounds used by IsPrime.
const PrimalityRounds = 20

// ModPow returns baseᵉˣᵖ (mod modulus) by binary square-and-multiply.
// The result always lies in [0, modulus).
func ModPow(base, exponent, modulus *big.Int) *big.Int {
	x := big.NewInt(1)
	y := new(big.Int).Set(base)
	e := new(big.Int).Set(exponent)

	for e.Sign() > 0 {
		if e.Bit(0) == 1 {
			x.Mul(x, y)
			x.Mod(x, modulus)
		}
		y.Mul(y, y)
		y.Mod(y, modulus)
		e.Rsh(e, 1)
	}

	return x.Mod(x, modulus)
}

// IsPrime reports whether n is prime. It runs PrimalityRounds Miller-Rabin
// rounds plus a Baillie-PSW test, so composites are accepted with negligible
// probability and primes are never rejected.
func IsPrime(n *big.Int) bool {
	if n.Sign() <= 0 {
		return false
	}
	return n.ProbablyPrime(PrimalityRounds)
}
