package session

// Store is durable, synchronous key-value persistence for the session
// triple. Implementations must survive process restarts; the in-memory fake
// under storefakes is for tests only.
//
// Storage being unavailable (disk full, permissions) is a fatal environment
// condition surfaced to the caller, not recovered here.
type Store interface {
	// Write stores a string value under a key.
	Write(key, value string) error

	// Read returns the value for a key, or errors.ErrKeyNotFound when the
	// key is absent.
	Read(key string) (string, error)

	// Remove deletes one key. Removing an absent key is a no-op.
	Remove(key string) error

	// Clear deletes all keys.
	Clear() error
}
