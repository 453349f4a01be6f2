// Package test holds fixtures shared by the key manager and console tests.
package test

import (
	"math/big"

	"github.com/mr-shifu/textbook-pke/core/elgamal"
	"github.com/mr-shifu/textbook-pke/core/rsa"
	"github.com/mr-shifu/textbook-pke/pkg/keystore"
	"github.com/mr-shifu/textbook-pke/pkg/vault"
)

// Keystore returns an empty keystore kept in memory.
func Keystore() *keystore.Keystore {
	return keystore.NewKeystore(vault.NewInMemoryVault())
}

// ElGamalKey returns the key q = 23, g = 5, a = 6, for which h = 8.
// Encrypting 'A' with k = 3 gives p = 10, s = 12 and the element 780.
func ElGamalKey() *elgamal.PrivateKey {
	return elgamal.NewPrivateKey(&elgamal.Params{Q: big.NewInt(23), G: big.NewInt(5)}, big.NewInt(6))
}

// RSAKeyPair returns the key p = 61, q = 53, e = 17, for which n = 3233 and
// d = 2753. 'A' encrypts to 2790.
func RSAKeyPair() *rsa.KeyPair {
	kp, err := rsa.NewKeyPair(big.NewInt(61), big.NewInt(53), big.NewInt(17))
	if err != nil {
		panic(err)
	}
	return kp
}
