package hash

import (
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash_WriteAny(t *testing.T) {
	testFunc := func(vs ...interface{}) error {
		h := New("test")
		for _, v := range vs {
			if err := h.WriteAny(v); err != nil {
				return err
			}
		}
		return nil
	}

	assert.NoError(t, testFunc(big.NewInt(35), []byte{1, 4, 6}))
	assert.Error(t, testFunc((*big.Int)(nil)))
	assert.Error(t, testFunc([]byte(nil)))
	assert.Error(t, testFunc("string"))
}

func TestHash_WriteAny_Collision(t *testing.T) {
	testFunc := func(vs ...interface{}) []byte {
		h := New("test")
		require.NoError(t, h.WriteAny(vs...))
		return h.Sum()
	}
	b1 := []byte("1)(big.Int\x02*data_added*")
	b2 := []byte("3")
	n2, _ := new(big.Int).SetString(hex.EncodeToString(b2), 16)
	h1 := testFunc(b1, n2)

	b1 = []byte("1")
	b2 = []byte("*data_added*)(big.Int\x023")
	n2, _ = new(big.Int).SetString(hex.EncodeToString(b2), 16)
	h2 := testFunc(b1, n2)

	assert.NotEqual(t, h1, h2)
}

func TestHash_Sum(t *testing.T) {
	h1 := New("test")
	h2 := New("test")
	require.NoError(t, h1.WriteAny([]byte("123")))
	require.NoError(t, h2.WriteAny([]byte("123")))
	assert.Equal(t, h1.Sum(), h2.Sum())

	// Sum does not consume the state
	assert.Equal(t, h1.Sum(), h1.Sum())

	require.NoError(t, h2.WriteAny([]byte("456")))
	assert.NotEqual(t, h1.Sum(), h2.Sum())
}

func TestFingerprint(t *testing.T) {
	a := Fingerprint("rsa", big.NewInt(3233), big.NewInt(17))
	assert.Len(t, a, DigestLengthBytes)
	assert.Equal(t, a, Fingerprint("rsa", big.NewInt(3233), big.NewInt(17)))
	assert.NotEqual(t, a, Fingerprint("elgamal", big.NewInt(3233), big.NewInt(17)))
	assert.NotEqual(t, a, Fingerprint("rsa", big.NewInt(17), big.NewInt(3233)))
	assert.Nil(t, Fingerprint("rsa", nil))
}
