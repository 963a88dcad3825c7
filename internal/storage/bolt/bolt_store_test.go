package bolt

import (
	"path/filepath"
	"testing"

	"golang.org/x/oauth2"
)

func newTestStore(t *testing.T) (*Store, func()) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}

	cleanup := func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	}

	return store, cleanup
}

func TestOpen(t *testing.T) {
	store, cleanup := newTestStore(t)
	defer cleanup()

	if store == nil {
		t.Fatal("expected non-nil store")
	}
}

func TestGet_Missing(t *testing.T) {
	store, cleanup := newTestStore(t)
	defer cleanup()

	steps := 0
	if store.Get("testuser", "stepsToday", &steps) {
		t.Fatal("expected miss for absent key")
	}
	if steps != 0 {
		t.Fatalf("fallback mutated: got %d", steps)
	}
}

func TestSetGet_RoundTrip(t *testing.T) {
	store, cleanup := newTestStore(t)
	defer cleanup()

	store.Set("testuser", "stepsToday", 4200)

	steps := 0
	if !store.Get("testuser", "stepsToday", &steps) {
		t.Fatal("expected hit after Set")
	}
	if steps != 4200 {
		t.Fatalf("got %d, want 4200", steps)
	}
}

func TestGet_MalformedValueFallsBack(t *testing.T) {
	store, cleanup := newTestStore(t)
	defer cleanup()

	// A string is valid JSON but does not decode into an int, which is
	// exactly what a corrupted stored value looks like to a typed reader.
	store.Set("testuser", "stepsToday", "definitely-not-a-number")

	steps := 123
	if store.Get("testuser", "stepsToday", &steps) {
		t.Fatal("expected miss for malformed value")
	}
	if steps != 123 {
		t.Fatalf("fallback mutated: got %d, want 123", steps)
	}
}

func TestRemove(t *testing.T) {
	store, cleanup := newTestStore(t)
	defer cleanup()

	store.Set("testuser", "waterCount", 5)
	store.Remove("testuser", "waterCount")

	water := -1
	if store.Get("testuser", "waterCount", &water) {
		t.Fatal("expected miss after Remove")
	}

	// Removing again is a no-op.
	store.Remove("testuser", "waterCount")
}

func TestUserIsolation(t *testing.T) {
	store, cleanup := newTestStore(t)
	defer cleanup()

	store.Set("alice", "waterCount", 6)

	water := 0
	if !store.Get("alice", "waterCount", &water) || water != 6 {
		t.Fatalf("alice should read 6, got %d", water)
	}
	if store.Get("bob", "waterCount", &water) {
		t.Fatal("bob should not see alice's metrics")
	}
}

func TestKeys(t *testing.T) {
	store, cleanup := newTestStore(t)
	defer cleanup()

	store.Set("testuser", "stepsToday", 100)
	store.Set("testuser", "check_stretch", true)

	keys := store.Keys("testuser")
	if len(keys) != 2 {
		t.Fatalf("expected 2 keys, got %v", keys)
	}
}

func TestGetAPIKey_NonExistent(t *testing.T) {
	store, cleanup := newTestStore(t)
	defer cleanup()

	_, found, err := store.GetAPIKey("nonexistent-key")
	if err != nil {
		t.Fatalf("GetAPIKey failed: %v", err)
	}
	if found {
		t.Fatal("expected key not found, but found=true")
	}
}

func TestGetAPIKey_Valid(t *testing.T) {
	store, cleanup := newTestStore(t)
	defer cleanup()

	err := store.PutAPIKey("test-hash", "user-123")
	if err != nil {
		t.Fatalf("PutAPIKey failed: %v", err)
	}

	userID, found, err := store.GetAPIKey("test-hash")
	if err != nil {
		t.Fatalf("GetAPIKey failed: %v", err)
	}
	if !found {
		t.Fatal("expected key to be found")
	}
	if userID != "user-123" {
		t.Fatalf("expected userID 'user-123', got '%s'", userID)
	}
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	store, cleanup := newTestStore(t)
	defer cleanup()

	tok := &oauth2.Token{AccessToken: "at", RefreshToken: "rt"}
	if err := store.PutRefreshToken("user-123", tok); err != nil {
		t.Fatalf("PutRefreshToken failed: %v", err)
	}

	got, found, err := store.GetRefreshToken("user-123")
	if err != nil {
		t.Fatalf("GetRefreshToken failed: %v", err)
	}
	if !found || got.RefreshToken != "rt" {
		t.Fatalf("got %+v found=%v, want refresh token rt", got, found)
	}

	if err := store.DeleteRefreshToken("user-123"); err != nil {
		t.Fatalf("DeleteRefreshToken failed: %v", err)
	}
	_, found, err = store.GetRefreshToken("user-123")
	if err != nil {
		t.Fatalf("GetRefreshToken failed: %v", err)
	}
	if found {
		t.Fatal("expected token gone after delete")
	}
}
