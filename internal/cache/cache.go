package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for the extraction cache
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// ExtractionKey generates a cache key for one extraction call. The key
// covers provider, model and document text so a provider or model switch
// never serves stale fields for the same document.
func ExtractionKey(provider, model, documentText string) string {
	hash := sha256.Sum256([]byte(provider + "\x00" + model + "\x00" + documentText))
	return "claimtriage:v1:" + hex.EncodeToString(hash[:])
}
