package rsa

import "github.com/mr-shifu/textbook-pke/core/rsa"

type RSAKey interface {
	// Bytes returns the encoded public key.
	Bytes() ([]byte, error)

	// PrivateBytes returns the encoded private key, or an error for a public key.
	PrivateBytes() ([]byte, error)

	// SKI returns the serialized key identifier.
	SKI() []byte

	// Private returns true if the key holds the private exponent.
	Private() bool

	// Public returns true if the key holds the public exponent.
	Public() bool

	// PublicKey returns the public key part of the RSA key.
	PublicKey() RSAKey

	PublicKeyRaw() *rsa.PublicKey

	// Encrypt returns the per-character encryption of `message`.
	Encrypt(message string) (rsa.Ciphertext, error)

	// Decrypt returns the plaintext of `ct`. It requires a private key.
	Decrypt(ct rsa.Ciphertext) (string, error)
}

type RSAKeyManager interface {
	// GenerateKey generates a new RSA key pair and stores both halves.
	GenerateKey() (RSAKey, error)

	// ImportKey stores an existing RSA key pair.
	ImportKey(kp *rsa.KeyPair) (RSAKey, error)

	// GetPublicKey loads the stored public key.
	GetPublicKey() (RSAKey, error)

	// GetPrivateKey loads the stored private key.
	GetPrivateKey() (RSAKey, error)

	// Encrypt encrypts `message` with the stored public key.
	Encrypt(message string) (rsa.Ciphertext, error)

	// Decrypt decrypts `ct` with the stored private key.
	Decrypt(ct rsa.Ciphertext) (string, error)

	// StoreCiphertext persists `ct` as newline-delimited decimals.
	StoreCiphertext(ct rsa.Ciphertext) error

	// LoadCiphertext reads the persisted ciphertext back.
	LoadCiphertext() (rsa.Ciphertext, error)
}
