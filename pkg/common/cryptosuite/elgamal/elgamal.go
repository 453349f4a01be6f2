package elgamal

import (
	"io"

	"github.com/mr-shifu/textbook-pke/core/elgamal"
)

type ElgamalKey interface {
	// Bytes returns the encoded public component h.
	Bytes() ([]byte, error)

	// PrivateBytes returns the encoded private exponent, or an error for a public key.
	PrivateBytes() ([]byte, error)

	// ParamsBytes returns the encoded group parameters (q, g).
	ParamsBytes() ([]byte, error)

	// SKI returns the serialized key identifier.
	SKI() []byte

	// Private returns true if the key is private.
	Private() bool

	// PublicKey returns the corresponding public key part of Elgamal Key.
	PublicKey() ElgamalKey

	PublicKeyRaw() *elgamal.PublicKey

	// Encrypt returns the encryption of `message` as ciphertext and nonce.
	Encrypt(random io.Reader, message string) (*elgamal.Ciphertext, elgamal.Nonce, error)

	// Decrypt returns the plaintext of `ct`. It requires a private key.
	Decrypt(ct *elgamal.Ciphertext) (string, error)
}

type ElgamalKeyManager interface {
	// GenerateKey generates a new Elgamal key pair and stores it.
	GenerateKey() (ElgamalKey, error)

	// ImportKey stores an existing Elgamal private key.
	ImportKey(key *elgamal.PrivateKey) (ElgamalKey, error)

	// GetKey loads the stored Elgamal key, private if available.
	GetKey() (ElgamalKey, error)

	// Encrypt encrypts `message` with the stored public key.
	Encrypt(message string) (*elgamal.Ciphertext, error)

	// Decrypt decrypts `ct` with the stored private key.
	Decrypt(ct *elgamal.Ciphertext) (string, error)

	// StoreCiphertext persists `ct` together with its shared value.
	StoreCiphertext(ct *elgamal.Ciphertext) error

	// LoadCiphertext returns the persisted ciphertext.
	LoadCiphertext() (*elgamal.Ciphertext, error)
}
