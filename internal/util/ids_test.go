package util

import "testing"

func TestNewArtifactKey(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		key, err := NewArtifactKey()
		if err != nil {
			t.Fatalf("NewArtifactKey: %v", err)
		}
		if len(key) != 16 {
			t.Fatalf("key %q has length %d, want 16", key, len(key))
		}
		for _, r := range key {
			if !(r >= '0' && r <= '9' || r >= 'a' && r <= 'z') {
				t.Fatalf("key %q contains invalid character %q", key, r)
			}
		}
		if seen[key] {
			t.Fatalf("duplicate key %q", key)
		}
		seen[key] = true
	}
}

func TestNewSessionName(t *testing.T) {
	got := NewSessionName("Exposed documents", "Acme Corp")
	if got != "Exposed documents - Acme Corp" {
		t.Errorf("NewSessionName = %q", got)
	}
}
