package vault

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mr-shifu/textbook-pke/pkg/common/vault"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testVault(t *testing.T, v vault.Vault) {
	_, err := v.Get("public_key.txt")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, v.Import("public_key.txt", []byte("8")))
	got, err := v.Get("public_key.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("8"), got)

	// overwrite
	require.NoError(t, v.Import("public_key.txt", []byte("12")))
	got, err = v.Get("public_key.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("12"), got)

	require.NoError(t, v.Delete("public_key.txt"))
	_, err = v.Get("public_key.txt")
	assert.ErrorIs(t, err, ErrKeyNotFound)
	assert.NoError(t, v.Delete("public_key.txt"))

	assert.ErrorIs(t, v.Import("", []byte("1")), ErrInvalidID)
}

func TestInMemoryVault(t *testing.T) {
	v := NewInMemoryVault()
	testVault(t, v)

	// stored bytes must not alias the caller's slice
	key := []byte("6")
	require.NoError(t, v.Import("private_key.txt", key))
	key[0] = '7'
	got, err := v.Get("private_key.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("6"), got)
}

func TestFileVault(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "keys")
	v := NewFileVault(dir)
	assert.Equal(t, dir, v.Dir())
	testVault(t, v)

	require.NoError(t, v.Import("Public_key.json", []byte(`{"e": 17, "n": 3233}`)))
	raw, err := os.ReadFile(filepath.Join(dir, "Public_key.json"))
	require.NoError(t, err)
	assert.Equal(t, `{"e": 17, "n": 3233}`, string(raw))

	info, err := os.Stat(filepath.Join(dir, "Public_key.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(filePerm), info.Mode().Perm())

	// no temporary files are left behind
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFileVaultRejectsPaths(t *testing.T) {
	v := NewFileVault(t.TempDir())
	for _, id := range []string{"..", "../escape", "a/b", `a\b`, "."} {
		assert.ErrorIs(t, v.Import(id, []byte("x")), ErrInvalidID, id)
		_, err := v.Get(id)
		assert.ErrorIs(t, err, ErrInvalidID, id)
	}
}
