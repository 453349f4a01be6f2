package vault

// Vault stores opaque key material addressed by a key ID.
type Vault interface {
	// Import stores key under keyID, replacing any previous value.
	Import(keyID string, key []byte) error

	// Get returns the key stored under keyID.
	Get(keyID string) ([]byte, error)

	// Delete removes keyID. Deleting a missing key is not an error.
	Delete(keyID string) error
}
