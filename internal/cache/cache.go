// Package cache stores upstream completion payloads keyed by prompt so a
// repeated questionnaire does not cost another provider round trip.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key generates a cache key from a prompt string.
func Key(prompt string) string {
	hash := sha256.Sum256([]byte(prompt))
	return "carmitra:v1:" + hex.EncodeToString(hash[:])
}
