package storage

import "golang.org/x/oauth2"

// Store is the persisted metrics store: a per-user key-value layer with
// JSON-serializable values. Reads never fail — a missing or malformed value
// reports false and the caller keeps its fallback. Writes never fail either;
// a storage problem is logged and the write is dropped.
type Store interface {
	// Get decodes the value stored under key into out and reports whether
	// out was populated. On a miss out is left untouched.
	Get(userID, key string, out any) bool
	Set(userID, key string, v any)
	Remove(userID, key string)

	// Keys lists the metric keys currently stored for a user.
	Keys(userID string) []string

	PutAPIKey(keyHash, userID string) error
	GetAPIKey(keyHash string) (userID string, found bool, err error)

	PutRefreshToken(userID string, tok *oauth2.Token) error
	GetRefreshToken(userID string) (*oauth2.Token, bool, error)
	DeleteRefreshToken(userID string) error

	Close() error
}
