package rsa

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"

	"github.com/mr-shifu/textbook-pke/core/hash"
	"github.com/mr-shifu/textbook-pke/core/rsa"
	cs_rsa "github.com/mr-shifu/textbook-pke/pkg/common/cryptosuite/rsa"
)

var (
	ErrInvalidKey   = errors.New("rsa: invalid key")
	ErrMalformedKey = errors.New("rsa: malformed key")
	ErrNotPrivate   = errors.New("rsa: private key required")
	ErrNotPublic    = errors.New("rsa: public key required")
)

type publicKeyJSON struct {
	E *big.Int `json:"e"`
	N *big.Int `json:"n"`
}

type privateKeyJSON struct {
	D *big.Int `json:"d"`
	N *big.Int `json:"n"`
}

// RSAKey holds either half of an RSA key pair, or both.
type RSAKey struct {
	secretKey *rsa.PrivateKey
	publicKey *rsa.PublicKey
}

// Bytes returns the public key as {"e": <int>, "n": <int>}.
func (key RSAKey) Bytes() ([]byte, error) {
	if !key.Public() {
		return nil, ErrNotPublic
	}
	return json.Marshal(publicKeyJSON{E: key.publicKey.E, N: key.publicKey.N})
}

// PrivateBytes returns the private key as {"d": <int>, "n": <int>}.
func (key RSAKey) PrivateBytes() ([]byte, error) {
	if !key.Private() {
		return nil, ErrNotPrivate
	}
	return json.Marshal(privateKeyJSON{D: key.secretKey.D, N: key.secretKey.N})
}

// SKI returns the BLAKE3 digest of the modulus, followed by e when known.
func (key RSAKey) SKI() []byte {
	switch {
	case key.publicKey != nil:
		return hash.Fingerprint("rsa", key.publicKey.N, key.publicKey.E)
	case key.secretKey != nil:
		return hash.Fingerprint("rsa", key.secretKey.N)
	default:
		return nil
	}
}

func (key RSAKey) Private() bool {
	return key.secretKey != nil
}

func (key RSAKey) Public() bool {
	return key.publicKey != nil
}

func (key RSAKey) PublicKey() cs_rsa.RSAKey {
	return RSAKey{publicKey: key.publicKey}
}

func (key RSAKey) PublicKeyRaw() *rsa.PublicKey {
	return key.publicKey
}

func (key RSAKey) Encrypt(message string) (rsa.Ciphertext, error) {
	if !key.Public() {
		return nil, ErrNotPublic
	}
	return rsa.Encrypt(key.publicKey, message), nil
}

func (key RSAKey) Decrypt(ct rsa.Ciphertext) (string, error) {
	if !key.Private() {
		return "", ErrNotPrivate
	}
	return rsa.Decrypt(key.secretKey, ct)
}

func fromKeyPair(kp *rsa.KeyPair) RSAKey {
	pub := kp.Public
	priv := kp.Private
	return RSAKey{secretKey: &priv, publicKey: &pub}
}

func publicFromBytes(data []byte) (RSAKey, error) {
	var raw publicKeyJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return RSAKey{}, fmt.Errorf("%w: %v", ErrMalformedKey, err)
	}
	if raw.E == nil || raw.N == nil {
		return RSAKey{}, fmt.Errorf("%w: public key needs e and n", ErrMalformedKey)
	}
	return RSAKey{publicKey: &rsa.PublicKey{E: raw.E, N: raw.N}}, nil
}

func privateFromBytes(data []byte) (RSAKey, error) {
	var raw privateKeyJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return RSAKey{}, fmt.Errorf("%w: %v", ErrMalformedKey, err)
	}
	if raw.D == nil || raw.N == nil {
		return RSAKey{}, fmt.Errorf("%w: private key needs d and n", ErrMalformedKey)
	}
	return RSAKey{secretKey: &rsa.PrivateKey{D: raw.D, N: raw.N}}, nil
}
