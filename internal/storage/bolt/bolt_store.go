package bolt

import (
	"encoding/json"

	"github.com/mfeehan/vitals/internal/logger"
	"github.com/mfeehan/vitals/internal/storage"
	"go.etcd.io/bbolt"
	"golang.org/x/oauth2"
)

const (
	usersBucket   = "users"
	metricsBucket = "metrics"
	apiKeysBucket = "apikeys"
	tokensBucket  = "tokens"
)

const defaultUserID = "anonymous"

type Store struct {
	db *bbolt.DB
}

func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, err
	}

	s := &Store{db: db}

	if err := db.Update(func(tx *bbolt.Tx) error {
		for _, b := range []string{usersBucket, apiKeysBucket, tokensBucket} {
			if _, err := tx.CreateBucketIfNotExists([]byte(b)); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) getUserMetricsBucket(tx *bbolt.Tx, userID string) (*bbolt.Bucket, error) {
	if userID == "" {
		userID = defaultUserID
	}

	users := tx.Bucket([]byte(usersBucket))
	user, err := users.CreateBucketIfNotExists([]byte(userID))
	if err != nil {
		return nil, err
	}
	return user.CreateBucketIfNotExists([]byte(metricsBucket))
}

// Get reads and decodes the value under key. A missing key, a read error, or
// a value that no longer parses all report false so the caller falls back to
// its default.
func (s *Store) Get(userID, key string, out any) bool {
	var raw []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		users := tx.Bucket([]byte(usersBucket))
		user := users.Bucket([]byte(orDefault(userID)))
		if user == nil {
			return nil
		}
		metrics := user.Bucket([]byte(metricsBucket))
		if metrics == nil {
			return nil
		}
		if v := metrics.Get([]byte(key)); v != nil {
			raw = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		logger.Warn("metric read failed", "user_id", userID, "key", key, "error", err)
		return false
	}
	if raw == nil {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		logger.Warn("stored metric is malformed, using fallback", "user_id", userID, "key", key, "error", err)
		return false
	}
	return true
}

// Set writes key. Failures are logged and dropped, never surfaced.
func (s *Store) Set(userID, key string, v any) {
	val, err := json.Marshal(v)
	if err != nil {
		logger.Warn("metric not serializable, dropping write", "user_id", userID, "key", key, "error", err)
		return
	}
	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := s.getUserMetricsBucket(tx, userID)
		if err != nil {
			return err
		}
		return bucket.Put([]byte(key), val)
	})
	if err != nil {
		logger.Warn("metric write failed, dropping", "user_id", userID, "key", key, "error", err)
	}
}

func (s *Store) Remove(userID, key string) {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := s.getUserMetricsBucket(tx, userID)
		if err != nil {
			return err
		}
		return bucket.Delete([]byte(key))
	})
	if err != nil {
		logger.Warn("metric delete failed", "user_id", userID, "key", key, "error", err)
	}
}

func (s *Store) Keys(userID string) []string {
	var out []string
	err := s.db.View(func(tx *bbolt.Tx) error {
		users := tx.Bucket([]byte(usersBucket))
		user := users.Bucket([]byte(orDefault(userID)))
		if user == nil {
			return nil
		}
		metrics := user.Bucket([]byte(metricsBucket))
		if metrics == nil {
			return nil
		}
		return metrics.ForEach(func(k, _ []byte) error {
			out = append(out, string(k))
			return nil
		})
	})
	if err != nil {
		logger.Warn("metric key scan failed", "user_id", userID, "error", err)
		return nil
	}
	return out
}

func (s *Store) PutAPIKey(keyHash, userID string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(apiKeysBucket)).Put([]byte(keyHash), []byte(userID))
	})
}

func (s *Store) GetAPIKey(keyHash string) (string, bool, error) {
	var userID string
	var found bool
	err := s.db.View(func(tx *bbolt.Tx) error {
		if v := tx.Bucket([]byte(apiKeysBucket)).Get([]byte(keyHash)); v != nil {
			userID = string(v)
			found = true
		}
		return nil
	})
	return userID, found, err
}

func (s *Store) PutRefreshToken(userID string, tok *oauth2.Token) error {
	val, err := json.Marshal(tok)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(tokensBucket)).Put([]byte(userID), val)
	})
}

func (s *Store) GetRefreshToken(userID string) (*oauth2.Token, bool, error) {
	var raw []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		if v := tx.Bucket([]byte(tokensBucket)).Get([]byte(userID)); v != nil {
			raw = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil || raw == nil {
		return nil, false, err
	}
	tok := &oauth2.Token{}
	if err := json.Unmarshal(raw, tok); err != nil {
		return nil, false, err
	}
	return tok, true, nil
}

func (s *Store) DeleteRefreshToken(userID string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(tokensBucket)).Delete([]byte(userID))
	})
}

func orDefault(userID string) string {
	if userID == "" {
		return defaultUserID
	}
	return userID
}

var _ storage.Store = (*Store)(nil)
