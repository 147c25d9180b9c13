package cache

import (
	"context"
	"testing"
)

func TestKeyDeterministic(t *testing.T) {
	a := Key("relationships", "abc", map[string]string{"layout": "circular", "type": "partner"})
	b := Key("relationships", "abc", map[string]string{"type": "partner", "layout": "circular"})
	if a != b {
		t.Fatalf("key order dependent: %q vs %q", a, b)
	}
	if a != "relationships:abc:layout=circular:type=partner" {
		t.Fatalf("key = %q", a)
	}
}

func TestKeyDropsEmptyFilters(t *testing.T) {
	got := Key("graph", "abc", map[string]string{"layout": "grid", "type": ""})
	if got != "graph:abc:layout=grid" {
		t.Fatalf("key = %q", got)
	}
}

func TestKeySeparatesIDs(t *testing.T) {
	if Key("graph", "a", nil) == Key("graph", "b", nil) {
		t.Fatal("keys for different ids collided")
	}
}

func TestNilCacheIsMiss(t *testing.T) {
	var c *Cache
	var out []string
	found, err := c.Get(context.Background(), "k", &out)
	if err != nil || found {
		t.Fatalf("nil cache Get = (%v, %v), want miss", found, err)
	}
	if err := c.Set(context.Background(), "k", []string{"v"}); err != nil {
		t.Fatalf("nil cache Set: %v", err)
	}
	c.Invalidate(context.Background(), "graph", "a")
}
