package cache

import (
	"testing"
	"time"

	"github.com/mkotturi/claimtriage/internal/model"
)

func TestExtractionKey_Deterministic(t *testing.T) {
	k1 := ExtractionKey("gemini", "gemini-2.5-flash", "document text")
	k2 := ExtractionKey("gemini", "gemini-2.5-flash", "document text")

	if k1 != k2 {
		t.Errorf("expected identical keys, got %s and %s", k1, k2)
	}
}

func TestExtractionKey_DiscriminatesInputs(t *testing.T) {
	base := ExtractionKey("gemini", "gemini-2.5-flash", "document text")

	variants := []string{
		ExtractionKey("openai", "gemini-2.5-flash", "document text"),
		ExtractionKey("gemini", "gemini-2.5-pro", "document text"),
		ExtractionKey("gemini", "gemini-2.5-flash", "other text"),
	}

	for i, v := range variants {
		if v == base {
			t.Errorf("variant %d produced the same key as base", i)
		}
	}
}

func TestMemoryCache_RoundTrip(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if err := c.Set("k", []byte("payload"), 0); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	val, found := c.Get("k")
	if !found || string(val) != "payload" {
		t.Errorf("expected payload, got %q (found=%v)", val, found)
	}

	if err := c.Delete("k"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Error("expected key gone after delete")
	}
}

func TestDiskCache_RoundTrip(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Minute)

	if err := c.Set("k", []byte("payload"), 0); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	val, found := c.Get("k")
	if !found || string(val) != "payload" {
		t.Errorf("expected payload, got %q (found=%v)", val, found)
	}
}

func TestDiskCache_Expiry(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Minute)

	if err := c.Set("k", []byte("payload"), time.Millisecond); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	time.Sleep(5 * time.Millisecond)

	if _, found := c.Get("k"); found {
		t.Error("expected expired entry to be gone")
	}
}

func TestLayeredCache_DiskHitPromotes(t *testing.T) {
	dir := t.TempDir()
	disk := NewDiskCache(dir, time.Minute)
	memory := NewMemoryCache(time.Minute, time.Minute)
	layered := &LayeredCache{memory: memory, disk: disk}

	// Entry exists only on disk (e.g. a previous run)
	if err := disk.Set("k", []byte("payload"), 0); err != nil {
		t.Fatalf("seed disk: %v", err)
	}

	val, found := layered.Get("k")
	if !found || string(val) != "payload" {
		t.Fatalf("expected disk hit, got %q (found=%v)", val, found)
	}

	// Promotion: now a memory hit too
	if _, found := memory.Get("k"); !found {
		t.Error("expected disk hit to be promoted to memory")
	}
}

func TestNew_FromConfig(t *testing.T) {
	if c := New(model.CacheConfig{Enabled: false}); c != nil {
		t.Error("expected nil cache when disabled")
	}

	if c := New(model.CacheConfig{Enabled: true, TTL: time.Minute}); c == nil {
		t.Error("expected memory cache when enabled without dir")
	} else if _, ok := c.(*MemoryCache); !ok {
		t.Errorf("expected *MemoryCache, got %T", c)
	}

	c := New(model.CacheConfig{Enabled: true, TTL: time.Minute, Dir: t.TempDir()})
	if _, ok := c.(*LayeredCache); !ok {
		t.Errorf("expected *LayeredCache, got %T", c)
	}
}
