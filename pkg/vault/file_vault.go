package vault

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	dirPerm  = 0o700
	filePerm = 0o600
)

// FileVault stores every key as a whole file named after its key ID inside dir.
// Writes go to a temporary file first and are renamed into place.
type FileVault struct {
	dir string
}

func NewFileVault(dir string) *FileVault {
	return &FileVault{dir: dir}
}

// Dir returns the directory the vault writes to.
func (store *FileVault) Dir() string {
	return store.dir
}

func (store *FileVault) Import(keyID string, key []byte) error {
	path, err := store.path(keyID)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(store.dir, dirPerm); err != nil {
		return errors.WithMessage(err, "vault: failed to create directory")
	}

	tmp := filepath.Join(store.dir, "."+keyID+"."+uuid.New().String()+".tmp")
	if err := os.WriteFile(tmp, key, filePerm); err != nil {
		return errors.WithMessagef(err, "vault: failed to write %s", keyID)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return errors.WithMessagef(err, "vault: failed to store %s", keyID)
	}
	return nil
}

func (store *FileVault) Get(keyID string) ([]byte, error) {
	path, err := store.path(keyID)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, errors.WithMessagef(err, "vault: failed to read %s", keyID)
	}
	return data, nil
}

func (store *FileVault) Delete(keyID string) error {
	path, err := store.path(keyID)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return errors.WithMessagef(err, "vault: failed to delete %s", keyID)
	}
	return nil
}

// path maps keyID to a file directly inside the vault directory.
func (store *FileVault) path(keyID string) (string, error) {
	if keyID == "" || keyID == "." || keyID == ".." || strings.ContainsAny(keyID, `/\`) {
		return "", ErrInvalidID
	}
	return filepath.Join(store.dir, keyID), nil
}
