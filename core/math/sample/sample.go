package sample

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/mr-shifu/textbook-pke/core/math/arith"
	"github.com/pkg/errors"
)

// MaxAttempts bounds every rejection-sampling loop in this package.
const MaxAttempts = 1 << 20

var (
	ErrKeyGenerationExhausted = errors.New("sample: key generation exhausted")
	ErrEmptyRange             = errors.New("sample: empty range")

	two = big.NewInt(2)
)

// IntRange returns a uniformly random integer in [lo, hi], bounds included.
func IntRange(random io.Reader, lo, hi *big.Int) (*big.Int, error) {
	if hi.Cmp(lo) < 0 {
		return nil, ErrEmptyRange
	}
	width := new(big.Int).Sub(hi, lo)
	width.Add(width, big.NewInt(1))
	r, err := rand.Int(random, width)
	if err != nil {
		return nil, errors.WithMessage(err, "sample: failed to read randomness")
	}
	return r.Add(r, lo), nil
}

// Bits returns a uniformly random integer in [0, 2ᵇⁱᵗˢ).
// The top bit is not forced, so the result may be shorter than bits.
func Bits(random io.Reader, bits int) (*big.Int, error) {
	if bits <= 0 {
		return nil, ErrEmptyRange
	}
	limit := new(big.Int).Lsh(big.NewInt(1), uint(bits))
	r, err := rand.Int(random, limit)
	if err != nil {
		return nil, errors.WithMessage(err, "sample: failed to read randomness")
	}
	return r, nil
}

// Coprime returns a random integer in [2, bound-1] with gcd(x, bound) = 1.
func Coprime(random io.Reader, bound *big.Int) (*big.Int, error) {
	hi := new(big.Int).Sub(bound, big.NewInt(1))
	for i := 0; i < MaxAttempts; i++ {
		x, err := IntRange(random, two, hi)
		if err != nil {
			return nil, err
		}
		if arith.Coprime(bound, x) {
			return x, nil
		}
	}
	return nil, ErrKeyGenerationExhausted
}

// Prime draws Bits(bits) until the result is prime.
func Prime(random io.Reader, bits int) (*big.Int, error) {
	for i := 0; i < MaxAttempts; i++ {
		x, err := Bits(random, bits)
		if err != nil {
			return nil, err
		}
		if arith.IsPrime(x) {
			return x, nil
		}
	}
	return nil, ErrKeyGenerationExhausted
}

// PrimeRange draws from [lo, hi) until the result is prime.
func PrimeRange(random io.Reader, lo, hi *big.Int) (*big.Int, error) {
	top := new(big.Int).Sub(hi, big.NewInt(1))
	for i := 0; i < MaxAttempts; i++ {
		x, err := IntRange(random, lo, top)
		if err != nil {
			return nil, err
		}
		if arith.IsPrime(x) {
			return x, nil
		}
	}
	return nil, ErrKeyGenerationExhausted
}
