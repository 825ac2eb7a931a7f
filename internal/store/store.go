package store

import "encoding/json"

// Record keys. Each is an independent JSON payload in the profile store.
const (
	KeyUsers     = "users"
	KeySession   = "session"
	KeyFavorites = "favorites"
)

// Store defines raw access to profile records.
//
// Read returns (nil, nil) for a missing key. Write replaces the payload for
// a key. Implementations must be safe for concurrent use.
type Store interface {
	Read(key string) ([]byte, error)
	Write(key string, value []byte) error
}

// ReadJSON reads and decodes the record at key, returning def when the key
// is missing, unreadable, or holds malformed JSON.
//
// Swallowing decode failures is intentional: a corrupted record behaves as
// if it were absent, matching the store's recovery policy.
func ReadJSON[T any](s Store, key string, def T) T {
	raw, err := s.Read(key)
	if err != nil || len(raw) == 0 {
		return def
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		return def
	}
	return value
}

// WriteJSON encodes value and writes it to the record at key.
func WriteJSON[T any](s Store, key string, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.Write(key, raw)
}
