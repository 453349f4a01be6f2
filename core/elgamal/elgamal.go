package elgamal

import (
	"errors"
	"io"
	"math/big"
	"strings"
	"unicode/utf8"

	"github.com/mr-shifu/textbook-pke/core/math/arith"
	"github.com/mr-shifu/textbook-pke/core/math/sample"
)

var (
	ErrZeroSharedSecret = errors.New("elgamal: zero shared secret")
	ErrInvalidCodePoint = errors.New("elgamal: invalid code point")
)

// Nonce is the ephemeral exponent k drawn for one message.
type Nonce = *big.Int

// Encrypt draws an ephemeral k coprime to q and encrypts message with it.
// The nonce is returned so callers can report the derived values.
func Encrypt(random io.Reader, public *PublicKey, message string) (*Ciphertext, Nonce, error) {
	k, err := sample.Coprime(random, public.Q)
	if err != nil {
		return nil, nil, err
	}
	return EncryptWithNonce(public, message, k), k, nil
}

// EncryptWithNonce returns the ciphertext of message under the ephemeral k.
// Each element is s⋅codepoint where s = hᵏ mod q; the product is not reduced mod q.
func EncryptWithNonce(public *PublicKey, message string, k Nonce) *Ciphertext {
	s := SharedSecret(public, k)
	ct := &Ciphertext{
		Elements: make([]*big.Int, 0, utf8.RuneCountInString(message)),
		Shared:   arith.ModPow(public.G, k, public.Q), // p = gᵏ mod q
	}
	for _, r := range message {
		ct.Elements = append(ct.Elements, new(big.Int).Mul(s, big.NewInt(int64(r))))
	}
	return ct
}

// SharedSecret returns s = hᵏ mod q = gᵃᵏ mod q.
func SharedSecret(public *PublicKey, k Nonce) *big.Int {
	return arith.ModPow(public.H, k, public.Q)
}

// Decrypt recovers the plaintext by recomputing s = pᵃ mod q and dividing every
// element by it. Division truncates.
func Decrypt(private *PrivateKey, ct *Ciphertext) (string, error) {
	if ct == nil || ct.Shared == nil {
		return "", ErrMalformedCiphertext
	}
	s := arith.ModPow(ct.Shared, private.A, private.Q)
	if s.Sign() == 0 {
		return "", ErrZeroSharedSecret
	}

	var sb strings.Builder
	c := new(big.Int)
	for _, e := range ct.Elements {
		if e == nil {
			return "", ErrMalformedCiphertext
		}
		c.Quo(e, s)
		if !c.IsInt64() || c.Int64() < 0 || c.Int64() > utf8.MaxRune || !utf8.ValidRune(rune(c.Int64())) {
			return "", ErrInvalidCodePoint
		}
		sb.WriteRune(rune(c.Int64()))
	}
	return sb.String(), nil
}
