// Package filestore persists the session triple as a single JSON document on
// disk, the console's stand-in for the browser's origin-scoped storage.
// Writes go through a temp file and rename so a crash mid-write never leaves
// a half-written store behind.
package filestore

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	apperrors "github.com/smart-condominium/condo-console/internal/errors"
	"github.com/smart-condominium/condo-console/session"
)

const storeFileName = "session.json"

type FileStore struct {
	mu   sync.Mutex
	path string
}

var _ session.Store = (*FileStore)(nil)

// New creates a file store under dataFolder. The folder is created on first
// write; a missing folder at read time means an empty store.
func New(dataFolder string) *FileStore {
	return &FileStore{path: filepath.Join(dataFolder, storeFileName)}
}

func (f *FileStore) Write(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := f.load()
	if err != nil {
		return err
	}
	entries[key] = value
	return f.save(entries)
}

func (f *FileStore) Read(key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := f.load()
	if err != nil {
		return "", err
	}
	value, ok := entries[key]
	if !ok {
		return "", apperrors.ErrKeyNotFound
	}
	return value, nil
}

func (f *FileStore) Remove(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := f.load()
	if err != nil {
		return err
	}
	if _, ok := entries[key]; !ok {
		return nil
	}
	delete(entries, key)
	return f.save(entries)
}

func (f *FileStore) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return apperrors.Wrapf(apperrors.ErrStoreUnavailable, "filestore.Clear %s: %v", f.path, err)
	}
	return nil
}

func (f *FileStore) load() (map[string]string, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, apperrors.Wrapf(apperrors.ErrStoreUnavailable, "filestore.load %s: %v", f.path, err)
	}

	entries := map[string]string{}
	if err := json.Unmarshal(data, &entries); err != nil {
		// A corrupt store file reads as empty; hydration then clears it.
		return map[string]string{}, nil
	}
	return entries, nil
}

func (f *FileStore) save(entries map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return apperrors.Wrapf(apperrors.ErrStoreUnavailable, "filestore.save mkdir: %v", err)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return apperrors.Wrapf(apperrors.ErrStoreUnavailable, "filestore.save marshal: %v", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return apperrors.Wrapf(apperrors.ErrStoreUnavailable, "filestore.save write: %v", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return apperrors.Wrapf(apperrors.ErrStoreUnavailable, "filestore.save rename: %v", err)
	}
	return nil
}
