package repository

import (
	"testing"
	"time"
)

func TestMemoryCache_SetGet(t *testing.T) {

	cache := NewMemoryCache()

	if err := cache.Set("key", "value", 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	val, ok := cache.Get("key")
	if !ok || val != "value" {
		t.Errorf("expected cached value, got %q (ok=%v)", val, ok)
	}

	if _, ok := cache.Get("missing"); ok {
		t.Error("expected miss for unknown key")
	}
}

func TestMemoryCache_Expiry(t *testing.T) {

	cache := NewMemoryCache()

	if err := cache.Set("key", "value", 10*time.Millisecond); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	time.Sleep(20 * time.Millisecond)

	if _, ok := cache.Get("key"); ok {
		t.Error("expected entry to expire")
	}
}
