// Package cache provides byte-level caching for fetched corpus documents so
// repeated runs do not re-download the source spreadsheet or page.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives a stable cache key from a corpus source location (URL or path)
func Key(location string) string {
	hash := sha256.Sum256([]byte(location))
	return "urithi:v1:" + hex.EncodeToString(hash[:])
}
