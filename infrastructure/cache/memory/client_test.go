package memory

import (
	"context"
	"testing"
	"time"
)

func newTestCache() *MemoryCache {
	return NewMemoryCache(0, time.Minute)
}

func TestMemoryCache_SetAndGet(t *testing.T) {
	cache := newTestCache()
	ctx := context.Background()

	if err := cache.Set(ctx, "key", []byte("value"), time.Minute); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	got, err := cache.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if string(got) != "value" {
		t.Errorf("Get = %q, want value", got)
	}
}

func TestMemoryCache_GetMissing(t *testing.T) {
	cache := newTestCache()

	_, err := cache.Get(context.Background(), "missing")

	if err != ErrKeyNotFound {
		t.Errorf("Get error = %v, want ErrKeyNotFound", err)
	}
}

func TestMemoryCache_ZeroTTLNeverExpires(t *testing.T) {
	// The default expiration is intentionally short; TTL 0 must ignore it
	cache := NewMemoryCache(10*time.Millisecond, time.Minute)
	ctx := context.Background()

	if err := cache.Set(ctx, "key", []byte("value"), 0); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	time.Sleep(30 * time.Millisecond)

	if _, err := cache.Get(ctx, "key"); err != nil {
		t.Errorf("entry with TTL 0 expired: %v", err)
	}
}

func TestMemoryCache_Expiration(t *testing.T) {
	cache := newTestCache()
	ctx := context.Background()

	if err := cache.Set(ctx, "key", []byte("value"), 10*time.Millisecond); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	time.Sleep(30 * time.Millisecond)

	if _, err := cache.Get(ctx, "key"); err != ErrKeyNotFound {
		t.Errorf("Get error = %v, want ErrKeyNotFound after expiry", err)
	}
}

func TestMemoryCache_Delete(t *testing.T) {
	cache := newTestCache()
	ctx := context.Background()

	cache.Set(ctx, "key", []byte("value"), time.Minute)
	if err := cache.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	if _, err := cache.Get(ctx, "key"); err != ErrKeyNotFound {
		t.Error("key should be gone after Delete")
	}
}

func TestMemoryCache_GetReturnsCopy(t *testing.T) {
	cache := newTestCache()
	ctx := context.Background()

	cache.Set(ctx, "key", []byte("value"), time.Minute)

	got, _ := cache.Get(ctx, "key")
	got[0] = 'X'

	again, _ := cache.Get(ctx, "key")
	if string(again) != "value" {
		t.Error("mutating a returned value changed the cached bytes")
	}
}

func TestMemoryCache_CancelledContext(t *testing.T) {
	cache := newTestCache()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := cache.Get(ctx, "key"); err == nil {
		t.Error("Get should fail with a cancelled context")
	}
	if err := cache.Set(ctx, "key", []byte("v"), 0); err == nil {
		t.Error("Set should fail with a cancelled context")
	}
}
