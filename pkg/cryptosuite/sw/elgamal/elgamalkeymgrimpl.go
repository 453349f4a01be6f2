package elgamal

import (
	"crypto/rand"
	"encoding/hex"
	"io"

	"github.com/mr-shifu/textbook-pke/core/elgamal"
	"github.com/mr-shifu/textbook-pke/log"
	cs_elgamal "github.com/mr-shifu/textbook-pke/pkg/common/cryptosuite/elgamal"
	"github.com/mr-shifu/textbook-pke/pkg/common/keystore"
	"github.com/mr-shifu/textbook-pke/pkg/vault"
	"github.com/pkg/errors"
)

// Config names the keystore entries used by the manager.
type Config struct {
	ParamsKeyID  string
	PublicKeyID  string
	PrivateKeyID string
	CiphertextID string

	// Random is the randomness source; crypto/rand.Reader when nil.
	Random io.Reader
}

// DefaultConfig returns the file names used by the console program.
func DefaultConfig() *Config {
	return &Config{
		ParamsKeyID:  "elgamal_params.txt",
		PublicKeyID:  "public_key.txt",
		PrivateKeyID: "private_key.txt",
		CiphertextID: "encrypted_message.cbor",
	}
}

var _ cs_elgamal.ElgamalKeyManager = (*ElgamalKeyManager)(nil)

type ElgamalKeyManager struct {
	keystore keystore.Keystore
	cfg      *Config
}

func NewElgamalKeyManager(store keystore.Keystore, cfg *Config) *ElgamalKeyManager {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &ElgamalKeyManager{
		keystore: store,
		cfg:      cfg,
	}
}

func (mgr *ElgamalKeyManager) random() io.Reader {
	if mgr.cfg.Random == nil {
		return rand.Reader
	}
	return mgr.cfg.Random
}

func (mgr *ElgamalKeyManager) GenerateKey() (cs_elgamal.ElgamalKey, error) {
	// Generate the group parameters and a new ElGamal key pair
	params, err := elgamal.GenerateParams(mgr.random())
	if err != nil {
		return nil, errors.WithMessage(err, "elgamal: failed to generate params")
	}
	sk, err := elgamal.GenerateKey(mgr.random(), params)
	if err != nil {
		return nil, errors.WithMessage(err, "elgamal: failed to generate key")
	}
	log.Debugw("generated elgamal params", "q", params.Q.String(), "g", params.G.String())

	return mgr.ImportKey(sk)
}

func (mgr *ElgamalKeyManager) ImportKey(sk *elgamal.PrivateKey) (cs_elgamal.ElgamalKey, error) {
	key := fromPrivateKey(sk)
	if err := mgr.store(key); err != nil {
		return nil, err
	}
	log.Infow("stored elgamal key", "ski", hex.EncodeToString(key.SKI()))
	return key, nil
}

func (mgr *ElgamalKeyManager) store(key ElgamalKey) error {
	params, err := key.ParamsBytes()
	if err != nil {
		return err
	}
	pub, err := key.Bytes()
	if err != nil {
		return err
	}
	priv, err := key.PrivateBytes()
	if err != nil {
		return err
	}

	entries := []struct {
		id   string
		data []byte
	}{
		{mgr.cfg.ParamsKeyID, params},
		{mgr.cfg.PublicKeyID, pub},
		{mgr.cfg.PrivateKeyID, priv},
	}
	for _, e := range entries {
		if err := mgr.keystore.WithKeyID(e.id).Import(e.data); err != nil {
			return errors.WithMessagef(err, "elgamal: failed to store %s", e.id)
		}
	}
	return nil
}

// GetKey loads the stored key. The private exponent is optional; without it a
// public key is returned.
func (mgr *ElgamalKeyManager) GetKey() (cs_elgamal.ElgamalKey, error) {
	params, err := mgr.keystore.Get(mgr.cfg.ParamsKeyID)
	if err != nil {
		return nil, errors.WithMessagef(err, "elgamal: failed to load %s", mgr.cfg.ParamsKeyID)
	}
	pub, err := mgr.keystore.Get(mgr.cfg.PublicKeyID)
	if err != nil {
		return nil, errors.WithMessagef(err, "elgamal: failed to load %s", mgr.cfg.PublicKeyID)
	}
	priv, err := mgr.keystore.Get(mgr.cfg.PrivateKeyID)
	if err != nil && !errors.Is(err, vault.ErrKeyNotFound) {
		return nil, errors.WithMessagef(err, "elgamal: failed to load %s", mgr.cfg.PrivateKeyID)
	}

	k, err := fromBytes(params, pub, priv)
	if err != nil {
		return nil, err
	}
	return k, nil
}

func (mgr *ElgamalKeyManager) Encrypt(message string) (*elgamal.Ciphertext, error) {
	k, err := mgr.GetKey()
	if err != nil {
		return nil, err
	}
	ct, nonce, err := k.Encrypt(mgr.random(), message)
	if err != nil {
		return nil, err
	}
	log.Debugw("elgamal encryption",
		"g^k", ct.Shared.String(),
		"g^ak", elgamal.SharedSecret(k.PublicKeyRaw(), nonce).String(),
	)
	return ct, nil
}

func (mgr *ElgamalKeyManager) Decrypt(ct *elgamal.Ciphertext) (string, error) {
	k, err := mgr.GetKey()
	if err != nil {
		return "", err
	}
	if !k.Private() {
		return "", ErrNotPrivate
	}
	return k.Decrypt(ct)
}

func (mgr *ElgamalKeyManager) StoreCiphertext(ct *elgamal.Ciphertext) error {
	data, err := ct.MarshalBinary()
	if err != nil {
		return err
	}
	return mgr.keystore.Import(mgr.cfg.CiphertextID, data)
}

func (mgr *ElgamalKeyManager) LoadCiphertext() (*elgamal.Ciphertext, error) {
	data, err := mgr.keystore.Get(mgr.cfg.CiphertextID)
	if err != nil {
		return nil, errors.WithMessagef(err, "elgamal: failed to load %s", mgr.cfg.CiphertextID)
	}
	ct := &elgamal.Ciphertext{}
	if err := ct.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return ct, nil
}
