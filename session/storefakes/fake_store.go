// Package storefakes provides an in-memory session.Store for tests.
package storefakes

import (
	"sync"

	apperrors "github.com/smart-condominium/condo-console/internal/errors"
	"github.com/smart-condominium/condo-console/session"
)

type FakeStore struct {
	mu      sync.Mutex
	entries map[string]string

	// FailWrites and FailReads simulate disabled storage.
	FailWrites bool
	FailReads  bool
}

var _ session.Store = (*FakeStore)(nil)

func NewFakeStore() *FakeStore {
	return &FakeStore{entries: make(map[string]string)}
}

func (f *FakeStore) Write(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FailWrites {
		return apperrors.ErrStoreUnavailable
	}
	f.entries[key] = value
	return nil
}

func (f *FakeStore) Read(key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FailReads {
		return "", apperrors.ErrStoreUnavailable
	}
	value, ok := f.entries[key]
	if !ok {
		return "", apperrors.ErrKeyNotFound
	}
	return value, nil
}

func (f *FakeStore) Remove(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.entries, key)
	return nil
}

func (f *FakeStore) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = make(map[string]string)
	return nil
}

// Len reports how many keys are stored.
func (f *FakeStore) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.entries)
}

// Get reads a key without the error contract, for assertions.
func (f *FakeStore) Get(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	value, ok := f.entries[key]
	return value, ok
}
