package keystore

type KeyLinkedStore struct {
	keyID string
	store *Keystore
}

func NewKeyLinkedStore(keyID string, store *Keystore) *KeyLinkedStore {
	return &KeyLinkedStore{keyID: keyID, store: store}
}

func (kls *KeyLinkedStore) Import(key []byte) error {
	return kls.store.Import(kls.keyID, key)
}

func (kls *KeyLinkedStore) Get() ([]byte, error) {
	return kls.store.Get(kls.keyID)
}

func (kls *KeyLinkedStore) Delete() error {
	return kls.store.Delete(kls.keyID)
}
