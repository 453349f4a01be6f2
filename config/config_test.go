package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(Flags("test"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFlags(t *testing.T) {
	dir := t.TempDir()
	fs := Flags("test")
	require.NoError(t, fs.Parse([]string{"--dataDir", dir, "--bits", "512", "--logLevel", "debug"}))

	cfg, err := Load(fs)
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.DataDir)
	assert.Equal(t, 512, cfg.RSABits)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "stderr", cfg.LogOutput)
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("TEXTBOOKPKE_LOGOUTPUT", "stdout")
	t.Setenv("TEXTBOOKPKE_ELGAMAL_PARAMSFILE", "params.txt")
	t.Setenv("TEXTBOOKPKE_LOGLEVEL", "info")

	fs := Flags("test")
	require.NoError(t, fs.Parse([]string{"--logLevel", "warn"}))

	cfg, err := Load(fs)
	require.NoError(t, err)
	assert.Equal(t, "stdout", cfg.LogOutput)
	assert.Equal(t, "params.txt", cfg.ElGamal.ParamsFile)
	// an explicit flag wins over the environment
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	data := []byte("bits: 1024\nrsa:\n  ciphertextFile: ciphertext.txt\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigName+".yml"), data, 0o600))

	fs := Flags("test")
	require.NoError(t, fs.Parse([]string{"--dataDir", dir}))

	cfg, err := Load(fs)
	require.NoError(t, err)
	assert.Equal(t, 1024, cfg.RSABits)
	assert.Equal(t, "ciphertext.txt", cfg.RSA.CiphertextFile)
	assert.Equal(t, "Public_key.json", cfg.RSA.PublicKeyFile)
}

func TestLoadInvalidBits(t *testing.T) {
	fs := Flags("test")
	require.NoError(t, fs.Parse([]string{"--bits", "1"}))
	_, err := Load(fs)
	assert.Error(t, err)
}
