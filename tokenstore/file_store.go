package tokenstore

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// FileStore persists a single value as a file named after its storage key
// inside a data folder. It is the process-local analogue of per-origin
// browser storage: one fixed key, raw string value, survives restarts.
type FileStore struct {
	path string
}

var _ Store = (*FileStore)(nil)

// NewFileStore creates a file-backed store for the given key. The data folder
// is created on first save, not here, so construction cannot fail.
func NewFileStore(folder, key string) *FileStore {
	return &FileStore{path: filepath.Join(folder, sanitizeKey(key))}
}

func (fs *FileStore) Save(value string) error {
	if err := os.MkdirAll(filepath.Dir(fs.path), 0o700); err != nil {
		return errors.Wrap(err, "[FileStore.Save] MkdirAll")
	}
	if err := os.WriteFile(fs.path, []byte(value), 0o600); err != nil {
		return errors.Wrap(err, "[FileStore.Save] WriteFile")
	}
	return nil
}

func (fs *FileStore) Load() (string, error) {
	data, err := os.ReadFile(fs.path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrap(err, "[FileStore.Load] ReadFile")
	}
	return string(data), nil
}

func (fs *FileStore) Clear() error {
	err := os.Remove(fs.path)
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "[FileStore.Clear] Remove")
	}
	return nil
}

// sanitizeKey keeps storage keys usable as file names.
func sanitizeKey(key string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, key)
}
