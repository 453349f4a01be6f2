package keystore

import (
	"github.com/mr-shifu/textbook-pke/pkg/common/keystore"
	"github.com/mr-shifu/textbook-pke/pkg/common/vault"
)

var _ keystore.Keystore = (*Keystore)(nil)

// Keystore persists encoded keys into a vault.
type Keystore struct {
	v vault.Vault
}

func NewKeystore(v vault.Vault) *Keystore {
	return &Keystore{v: v}
}

func (ks *Keystore) Import(keyID string, key []byte) error {
	return ks.v.Import(keyID, key)
}

func (ks *Keystore) Get(keyID string) ([]byte, error) {
	return ks.v.Get(keyID)
}

func (ks *Keystore) Delete(keyID string) error {
	return ks.v.Delete(keyID)
}

func (ks *Keystore) WithKeyID(keyID string) keystore.KeyLinkedStore {
	return NewKeyLinkedStore(keyID, ks)
}
