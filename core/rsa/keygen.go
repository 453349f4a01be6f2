package rsa

import (
	"io"
	"math/big"

	"github.com/mr-shifu/textbook-pke/core/math/arith"
	"github.com/mr-shifu/textbook-pke/core/math/sample"
)

// DefaultBits is the bit length of each prime factor.
const DefaultBits = 2048

var one = big.NewInt(1)

type PublicKey struct {
	E, N *big.Int
}

type PrivateKey struct {
	D, N *big.Int

	// Precomputed holds the factorization of N when it is known, to speed up
	// decryption. It is never persisted.
	Precomputed *arith.Modulus
}

type KeyPair struct {
	Public  PublicKey
	Private PrivateKey
}

// GenerateKey draws two independent primes of at most bits bits, a random public
// exponent e coprime to φ(n) and its inverse d.
// Equal primes are not rejected.
func GenerateKey(random io.Reader, bits int) (*KeyPair, error) {
	kp, _, _, err := generateKey(random, bits)
	return kp, err
}

// generateKey is GenerateKey that also returns the factors of n.
func generateKey(random io.Reader, bits int) (*KeyPair, *big.Int, *big.Int, error) {
	p, err := sample.Prime(random, bits)
	if err != nil {
		return nil, nil, nil, err
	}
	q, err := sample.Prime(random, bits)
	if err != nil {
		return nil, nil, nil, err
	}

	e, err := sample.Coprime(random, Totient(p, q))
	if err != nil {
		return nil, nil, nil, err
	}
	kp, err := NewKeyPair(p, q, e)
	if err != nil {
		return nil, nil, nil, err
	}
	return kp, p, q, nil
}

// NewKeyPair derives the keypair for primes p, q and public exponent e.
func NewKeyPair(p, q, e *big.Int) (*KeyPair, error) {
	n := new(big.Int).Mul(p, q)
	d, err := arith.ModInverse(e, Totient(p, q))
	if err != nil {
		return nil, err
	}

	kp := &KeyPair{
		Public:  PublicKey{E: e, N: n},
		Private: PrivateKey{D: d, N: n},
	}
	if p.Cmp(q) != 0 && p.Bit(0) == 1 && q.Bit(0) == 1 {
		kp.Private.Precomputed = arith.ModulusFromFactors(p, q)
	}
	return kp, nil
}

// Totient returns φ(n) = (p-1)⋅(q-1).
func Totient(p, q *big.Int) *big.Int {
	p1 := new(big.Int).Sub(p, one)
	q1 := new(big.Int).Sub(q, one)
	return p1.Mul(p1, q1)
}
