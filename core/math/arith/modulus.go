package arith

import (
	"math/big"

	"github.com/cronokirby/saferith"
)

// Modulus wraps a saferith.Modulus together with its factorization.
// When n = p⋅q, xᵉ (mod n) can be computed with only two exponentiations
// with p and q respectively.
type Modulus struct {
	// represents modulus n
	*saferith.Modulus
	// n = p⋅q
	p, q *saferith.Modulus
	// pInv = p⁻¹ (mod q)
	pNat, pInv *saferith.Nat
}

// ModulusFromFactors creates the necessary cached values to accelerate
// exponentiation mod n = p⋅q. p and q must be distinct odd primes.
func ModulusFromFactors(p, q *big.Int) *Modulus {
	pNat, qNat := natFromBig(p), natFromBig(q)
	nNat := new(saferith.Nat).Mul(pNat, qNat, -1)
	qMod := saferith.ModulusFromNat(qNat)
	return &Modulus{
		Modulus: saferith.ModulusFromNat(nNat),
		p:       saferith.ModulusFromNat(pNat),
		q:       qMod,
		pNat:    pNat,
		pInv:    new(saferith.Nat).ModInverse(pNat, qMod),
	}
}

// Exp returns xᵉ (mod n) for non-negative x and e.
func (n *Modulus) Exp(x, e *big.Int) *big.Int {
	xNat := natFromBig(x)
	eNat := natFromBig(e)
	var xp, xq saferith.Nat
	xp.Exp(new(saferith.Nat).Mod(xNat, n.p), eNat, n.p) // x₁ = xᵉ (mod p)
	xq.Exp(new(saferith.Nat).Mod(xNat, n.q), eNat, n.q) // x₂ = xᵉ (mod q)
	// r = x₁ + p⋅[p⁻¹ (mod q)]⋅[x₂ - x₁] (mod n)
	r := new(saferith.Nat).ModSub(&xq, &xp, n.Modulus)
	r.ModMul(r, n.pInv, n.Modulus)
	r.ModMul(r, n.pNat, n.Modulus)
	r.ModAdd(r, &xp, n.Modulus)
	return r.Big()
}

func natFromBig(x *big.Int) *saferith.Nat {
	return new(saferith.Nat).SetBig(x, x.BitLen())
}
