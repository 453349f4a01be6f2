package elgamal

import (
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/mr-shifu/textbook-pke/core/elgamal"
	"github.com/mr-shifu/textbook-pke/core/hash"
	cs_elgamal "github.com/mr-shifu/textbook-pke/pkg/common/cryptosuite/elgamal"
)

var (
	ErrInvalidKey   = errors.New("elgamal: invalid key")
	ErrMalformedKey = errors.New("elgamal: malformed key")
	ErrNotPrivate   = errors.New("elgamal: private key required")
)

type ElgamalKey struct {
	secretKey *elgamal.PrivateKey
	publicKey *elgamal.PublicKey
}

// Bytes returns h as a decimal string.
func (key ElgamalKey) Bytes() ([]byte, error) {
	if key.publicKey == nil {
		return nil, ErrInvalidKey
	}
	return []byte(key.publicKey.H.String()), nil
}

// PrivateBytes returns the private exponent as a decimal string.
func (key ElgamalKey) PrivateBytes() ([]byte, error) {
	if !key.Private() {
		return nil, ErrNotPrivate
	}
	return []byte(key.secretKey.A.String()), nil
}

// ParamsBytes returns q and g as decimal strings on separate lines.
func (key ElgamalKey) ParamsBytes() ([]byte, error) {
	if key.publicKey == nil {
		return nil, ErrInvalidKey
	}
	return []byte(fmt.Sprintf("%s\n%s\n", key.publicKey.Q, key.publicKey.G)), nil
}

// SKI returns the BLAKE3 digest of the public parameters (q, g, h).
func (key ElgamalKey) SKI() []byte {
	if key.publicKey == nil {
		return nil
	}
	return hash.Fingerprint("elgamal", key.publicKey.Q, key.publicKey.G, key.publicKey.H)
}

func (key ElgamalKey) Private() bool {
	return key.secretKey != nil
}

func (key ElgamalKey) PublicKey() cs_elgamal.ElgamalKey {
	return ElgamalKey{nil, key.publicKey}
}

func (key ElgamalKey) PublicKeyRaw() *elgamal.PublicKey {
	return key.publicKey
}

func (key ElgamalKey) Encrypt(random io.Reader, message string) (*elgamal.Ciphertext, elgamal.Nonce, error) {
	if key.publicKey == nil {
		return nil, nil, ErrInvalidKey
	}
	return elgamal.Encrypt(random, key.publicKey, message)
}

func (key ElgamalKey) Decrypt(ct *elgamal.Ciphertext) (string, error) {
	if !key.Private() {
		return "", ErrNotPrivate
	}
	return elgamal.Decrypt(key.secretKey, ct)
}

func fromPrivateKey(priv *elgamal.PrivateKey) ElgamalKey {
	return ElgamalKey{secretKey: priv, publicKey: &priv.PublicKey}
}

// fromBytes decodes a key from its stored parts. secret may be nil for a
// public-only key.
func fromBytes(params, public, secret []byte) (ElgamalKey, error) {
	fields := strings.Fields(string(params))
	if len(fields) != 2 {
		return ElgamalKey{}, fmt.Errorf("%w: expected q and g, got %d values", ErrMalformedKey, len(fields))
	}
	q, err := parseInt(fields[0])
	if err != nil {
		return ElgamalKey{}, err
	}
	g, err := parseInt(fields[1])
	if err != nil {
		return ElgamalKey{}, err
	}
	h, err := parseInt(string(public))
	if err != nil {
		return ElgamalKey{}, err
	}

	pub := &elgamal.PublicKey{Params: elgamal.Params{Q: q, G: g}, H: h}
	if secret == nil {
		return ElgamalKey{publicKey: pub}, nil
	}

	a, err := parseInt(string(secret))
	if err != nil {
		return ElgamalKey{}, err
	}
	return fromPrivateKey(&elgamal.PrivateKey{PublicKey: *pub, A: a}), nil
}

func parseInt(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	x, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not an integer", ErrMalformedKey, s)
	}
	return x, nil
}
