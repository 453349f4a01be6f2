package rsa

import (
	"errors"
	"math/big"
	"strings"
	"unicode/utf8"

	"github.com/mr-shifu/textbook-pke/core/math/arith"
)

var (
	ErrInvalidCodePoint    = errors.New("rsa: invalid code point")
	ErrMalformedCiphertext = errors.New("rsa: malformed ciphertext")
)

// Encrypt maps every character of message to codepointᵉ mod n.
func Encrypt(public *PublicKey, message string) Ciphertext {
	ct := make(Ciphertext, 0, utf8.RuneCountInString(message))
	for _, r := range message {
		ct = append(ct, arith.ModPow(big.NewInt(int64(r)), public.E, public.N))
	}
	return ct
}

// Decrypt maps every element back to the character elementᵈ mod n.
func Decrypt(private *PrivateKey, ct Ciphertext) (string, error) {
	var sb strings.Builder
	for _, c := range ct {
		if c == nil {
			return "", ErrMalformedCiphertext
		}
		var m *big.Int
		if private.Precomputed != nil && c.Sign() >= 0 {
			m = private.Precomputed.Exp(c, private.D)
		} else {
			m = arith.ModPow(c, private.D, private.N)
		}
		if !m.IsInt64() || m.Int64() > utf8.MaxRune || !utf8.ValidRune(rune(m.Int64())) {
			return "", ErrInvalidCodePoint
		}
		sb.WriteRune(rune(m.Int64()))
	}
	return sb.String(), nil
}
