package server

import (
	"strings"
	"testing"
)

func TestHashAPIKey_Deterministic(t *testing.T) {
	a := hashAPIKey("vit_live_abc123")
	b := hashAPIKey("vit_live_abc123")
	if a != b {
		t.Fatal("same key should hash identically")
	}
	if a == hashAPIKey("vit_live_other") {
		t.Fatal("different keys should hash differently")
	}
	if len(a) != 64 {
		t.Fatalf("hash length = %d, want 64 hex chars", len(a))
	}
}

func TestTruncateHash(t *testing.T) {
	long := strings.Repeat("a", 64)
	got := truncateHash(long)
	if got != strings.Repeat("a", 16)+"..." {
		t.Fatalf("got %q", got)
	}
	if truncateHash("short") != "short" {
		t.Fatal("short hashes pass through unchanged")
	}
}
