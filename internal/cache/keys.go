package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// GenerateKey generates a storage key from a logical cache key.
// The key is a SHA256 hash of the normalized form, so callers can
// use human-readable keys of any shape.
func GenerateKey(key string) string {
	normalized := normalizeForKey(key)
	hash := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(hash[:])
}

// normalizeForKey normalizes a logical key for consistent hashing.
// GitHub owner and repository names are case-insensitive.
func normalizeForKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// PrefixRef namespaces default-branch lookups.
const PrefixRef = "ref"

// RefKey generates the cache key for a repository's resolved
// default branch.
func RefKey(owner, repo string) string {
	return fmt.Sprintf("%s:%s/%s", PrefixRef, owner, repo)
}
