// Package memory holds an in-memory Store used by tests and by ephemeral
// demo sessions where nothing should touch disk.
package memory

import (
	"encoding/json"
	"sync"

	"github.com/mfeehan/vitals/internal/storage"
	"golang.org/x/oauth2"
)

type Store struct {
	mu      sync.RWMutex
	data    map[string]map[string][]byte
	apiKeys map[string]string
	tokens  map[string]*oauth2.Token

	// FailWrites makes Set/Remove drop everything, simulating a full or
	// unavailable backing store.
	FailWrites bool
}

func New() *Store {
	return &Store{
		data:    map[string]map[string][]byte{},
		apiKeys: map[string]string{},
		tokens:  map[string]*oauth2.Token{},
	}
}

// Corrupt replaces the raw bytes under key, simulating a value that no
// longer parses.
func (m *Store) Corrupt(userID, key string, raw []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user(userID)[key] = raw
}

func (m *Store) user(userID string) map[string][]byte {
	u, ok := m.data[userID]
	if !ok {
		u = map[string][]byte{}
		m.data[userID] = u
	}
	return u
}

func (m *Store) Get(userID, key string, out any) bool {
	m.mu.RLock()
	raw, ok := m.data[userID][key]
	m.mu.RUnlock()
	if !ok {
		return false
	}
	return json.Unmarshal(raw, out) == nil
}

func (m *Store) Set(userID, key string, v any) {
	if m.FailWrites {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	m.mu.Lock()
	m.user(userID)[key] = raw
	m.mu.Unlock()
}

func (m *Store) Remove(userID, key string) {
	if m.FailWrites {
		return
	}
	m.mu.Lock()
	delete(m.user(userID), key)
	m.mu.Unlock()
}

func (m *Store) Keys(userID string) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, 0, len(m.data[userID]))
	for k := range m.data[userID] {
		out = append(out, k)
	}
	return out
}

func (m *Store) PutAPIKey(keyHash, userID string) error {
	m.mu.Lock()
	m.apiKeys[keyHash] = userID
	m.mu.Unlock()
	return nil
}

func (m *Store) GetAPIKey(keyHash string) (string, bool, error) {
	m.mu.RLock()
	userID, found := m.apiKeys[keyHash]
	m.mu.RUnlock()
	return userID, found, nil
}

func (m *Store) PutRefreshToken(userID string, tok *oauth2.Token) error {
	m.mu.Lock()
	m.tokens[userID] = tok
	m.mu.Unlock()
	return nil
}

func (m *Store) GetRefreshToken(userID string) (*oauth2.Token, bool, error) {
	m.mu.RLock()
	tok, found := m.tokens[userID]
	m.mu.RUnlock()
	return tok, found, nil
}

func (m *Store) DeleteRefreshToken(userID string) error {
	m.mu.Lock()
	delete(m.tokens, userID)
	m.mu.Unlock()
	return nil
}

func (m *Store) Close() error {
	return nil
}

var _ storage.Store = (*Store)(nil)
