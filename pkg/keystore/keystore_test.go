package keystore

import (
	"testing"

	"github.com/mr-shifu/textbook-pke/pkg/vault"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyLinkedStore(t *testing.T) {
	ks := NewKeystore(vault.NewFileVault(t.TempDir()))

	pub := ks.WithKeyID("public_key.txt")
	priv := ks.WithKeyID("private_key.txt")

	require.NoError(t, pub.Import([]byte("8")))
	require.NoError(t, priv.Import([]byte("6")))

	got, err := ks.Get("public_key.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("8"), got)

	got, err = priv.Get()
	require.NoError(t, err)
	assert.Equal(t, []byte("6"), got)

	require.NoError(t, priv.Delete())
	_, err = priv.Get()
	assert.ErrorIs(t, err, vault.ErrKeyNotFound)

	// the other key is untouched
	_, err = pub.Get()
	assert.NoError(t, err)
	assert.Equal(t, "public_key.txt", pub.(*KeyLinkedStore).keyID)
}
