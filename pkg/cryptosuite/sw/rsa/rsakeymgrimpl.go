package rsa

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"io"

	"github.com/mr-shifu/textbook-pke/core/rsa"
	"github.com/mr-shifu/textbook-pke/log"
	cs_rsa "github.com/mr-shifu/textbook-pke/pkg/common/cryptosuite/rsa"
	"github.com/mr-shifu/textbook-pke/pkg/common/keystore"
	"github.com/pkg/errors"
)

// Config names the keystore entries used by the manager.
type Config struct {
	PublicKeyID  string
	PrivateKeyID string
	CiphertextID string

	// Bits is the bit length of each prime; rsa.DefaultBits when zero.
	Bits int

	// Random is the randomness source; crypto/rand.Reader when nil.
	Random io.Reader
}

// DefaultConfig returns the file names used by the console program.
func DefaultConfig() *Config {
	return &Config{
		PublicKeyID:  "Public_key.json",
		PrivateKeyID: "Private_key.json",
		CiphertextID: "encrypted_text",
		Bits:         rsa.DefaultBits,
	}
}

var _ cs_rsa.RSAKeyManager = (*RSAKeyManager)(nil)

type RSAKeyManager struct {
	keystore keystore.Keystore
	cfg      *Config
}

func NewRSAKeyManager(store keystore.Keystore, cfg *Config) *RSAKeyManager {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &RSAKeyManager{
		keystore: store,
		cfg:      cfg,
	}
}

func (mgr *RSAKeyManager) random() io.Reader {
	if mgr.cfg.Random == nil {
		return rand.Reader
	}
	return mgr.cfg.Random
}

func (mgr *RSAKeyManager) bits() int {
	if mgr.cfg.Bits <= 0 {
		return rsa.DefaultBits
	}
	return mgr.cfg.Bits
}

func (mgr *RSAKeyManager) GenerateKey() (cs_rsa.RSAKey, error) {
	kp, err := rsa.GenerateKey(mgr.random(), mgr.bits())
	if err != nil {
		return nil, errors.WithMessage(err, "rsa: failed to generate key")
	}
	log.Debugw("generated rsa key", "bits", mgr.bits(), "modulusBits", kp.Public.N.BitLen())

	return mgr.ImportKey(kp)
}

func (mgr *RSAKeyManager) ImportKey(kp *rsa.KeyPair) (cs_rsa.RSAKey, error) {
	if kp == nil || kp.Public.N == nil || kp.Public.E == nil || kp.Private.D == nil {
		return nil, ErrInvalidKey
	}
	key := fromKeyPair(kp)

	pub, err := key.Bytes()
	if err != nil {
		return nil, err
	}
	priv, err := key.PrivateBytes()
	if err != nil {
		return nil, err
	}
	if err := mgr.keystore.WithKeyID(mgr.cfg.PublicKeyID).Import(pub); err != nil {
		return nil, errors.WithMessagef(err, "rsa: failed to store %s", mgr.cfg.PublicKeyID)
	}
	if err := mgr.keystore.WithKeyID(mgr.cfg.PrivateKeyID).Import(priv); err != nil {
		return nil, errors.WithMessagef(err, "rsa: failed to store %s", mgr.cfg.PrivateKeyID)
	}

	log.Infow("stored rsa key", "ski", hex.EncodeToString(key.SKI()))
	return key, nil
}

func (mgr *RSAKeyManager) GetPublicKey() (cs_rsa.RSAKey, error) {
	data, err := mgr.keystore.Get(mgr.cfg.PublicKeyID)
	if err != nil {
		return nil, errors.WithMessagef(err, "rsa: failed to load %s", mgr.cfg.PublicKeyID)
	}
	return publicFromBytes(data)
}

// GetPrivateKey loads the private half. The stored form carries no
// factorization, so decryption uses plain exponentiation mod n.
func (mgr *RSAKeyManager) GetPrivateKey() (cs_rsa.RSAKey, error) {
	data, err := mgr.keystore.Get(mgr.cfg.PrivateKeyID)
	if err != nil {
		return nil, errors.WithMessagef(err, "rsa: failed to load %s", mgr.cfg.PrivateKeyID)
	}
	return privateFromBytes(data)
}

func (mgr *RSAKeyManager) Encrypt(message string) (rsa.Ciphertext, error) {
	k, err := mgr.GetPublicKey()
	if err != nil {
		return nil, err
	}
	return k.Encrypt(message)
}

func (mgr *RSAKeyManager) Decrypt(ct rsa.Ciphertext) (string, error) {
	k, err := mgr.GetPrivateKey()
	if err != nil {
		return "", err
	}
	return k.Decrypt(ct)
}

func (mgr *RSAKeyManager) StoreCiphertext(ct rsa.Ciphertext) error {
	var buf bytes.Buffer
	if _, err := ct.WriteTo(&buf); err != nil {
		return err
	}
	return mgr.keystore.Import(mgr.cfg.CiphertextID, buf.Bytes())
}

func (mgr *RSAKeyManager) LoadCiphertext() (rsa.Ciphertext, error) {
	data, err := mgr.keystore.Get(mgr.cfg.CiphertextID)
	if err != nil {
		return nil, errors.WithMessagef(err, "rsa: failed to load %s", mgr.cfg.CiphertextID)
	}
	return rsa.ReadCiphertext(bytes.NewReader(data))
}
