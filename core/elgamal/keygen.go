package elgamal

import (
	"io"
	"math/big"

	"github.com/mr-shifu/textbook-pke/core/math/arith"
	"github.com/mr-shifu/textbook-pke/core/math/sample"
)

var (
	// modulusMin and modulusMax bound the prime modulus q to [2²⁴, 2²⁵).
	modulusMin = new(big.Int).Lsh(big.NewInt(1), 24)
	modulusMax = new(big.Int).Lsh(big.NewInt(1), 25)
)

// Params are the group parameters shared by a keypair.
// G is not checked to be a primitive root of Q.
type Params struct {
	Q, G *big.Int
}

type PublicKey struct {
	Params
	// H = Gᴬ mod Q
	H *big.Int
}

type PrivateKey struct {
	PublicKey
	// A is coprime to Q, 2 <= A < Q.
	A *big.Int
}

// GenerateParams picks a random prime q in [2²⁴, 2²⁵) and a generator g in [2, q].
func GenerateParams(random io.Reader) (*Params, error) {
	q, err := sample.PrimeRange(random, modulusMin, modulusMax)
	if err != nil {
		return nil, err
	}
	g, err := sample.IntRange(random, big.NewInt(2), q)
	if err != nil {
		return nil, err
	}
	return &Params{Q: q, G: g}, nil
}

// GenerateKey draws a private exponent a coprime to q and computes h = gᵃ mod q.
func GenerateKey(random io.Reader, params *Params) (*PrivateKey, error) {
	a, err := sample.Coprime(random, params.Q)
	if err != nil {
		return nil, err
	}
	return NewPrivateKey(params, a), nil
}

// NewPrivateKey builds the keypair for a known private exponent a.
func NewPrivateKey(params *Params, a *big.Int) *PrivateKey {
	return &PrivateKey{
		PublicKey: PublicKey{
			Params: *params,
			H:      arith.ModPow(params.G, a, params.Q),
		},
		A: a,
	}
}
