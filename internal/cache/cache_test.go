package cache

import (
	"strings"
	"testing"
	"time"
)

func TestKeyStableAndPrefixed(t *testing.T) {
	k1 := Key("recommend: budget 10 lakh")
	k2 := Key("recommend: budget 10 lakh")
	if k1 != k2 {
		t.Errorf("same prompt produced different keys: %q vs %q", k1, k2)
	}
	if !strings.HasPrefix(k1, "carmitra:v1:") {
		t.Errorf("key missing version prefix: %q", k1)
	}
	if k1 == Key("recommend: budget 12 lakh") {
		t.Error("different prompts produced identical keys")
	}
}

func TestMemoryCacheRoundTrip(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if _, found := c.Get("missing"); found {
		t.Error("expected miss for unset key")
	}

	if err := c.Set("k", []byte("payload"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}

	val, found := c.Get("k")
	if !found || string(val) != "payload" {
		t.Errorf("Get = %q, %v; want payload, true", val, found)
	}

	if err := c.Delete("k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Error("key survived delete")
	}
}

func TestDiskCacheExpiry(t *testing.T) {
	dir := t.TempDir()
	c := NewDiskCache(dir, time.Hour)

	if err := c.Set("k", []byte("payload"), -time.Second); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Error("expired entry should miss")
	}

	if err := c.Set("k", []byte("payload"), time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}
	val, found := c.Get("k")
	if !found || string(val) != "payload" {
		t.Errorf("Get = %q, %v; want payload, true", val, found)
	}
}

func TestLayeredCachePromotion(t *testing.T) {
	dir := t.TempDir()
	c := NewLayeredCache(time.Minute, dir, time.Hour)

	if err := c.Set("k", []byte("payload"), time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}

	// Drop the memory layer; the next Get must fall through to disk.
	if err := c.memory.Clear(); err != nil {
		t.Fatalf("Clear memory: %v", err)
	}

	val, found := c.Get("k")
	if !found || string(val) != "payload" {
		t.Fatalf("disk fallthrough failed: %q, %v", val, found)
	}

	// Promotion means the memory layer now holds the entry.
	if _, found := c.memory.Get("k"); !found {
		t.Error("disk hit was not promoted to memory")
	}
}
