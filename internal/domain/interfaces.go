package domain

import (
	"context"
	"time"
)

// Cache defines the interface for small persisted lookups (resolved refs)
type Cache interface {
	// Get retrieves a value from cache
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores a value in cache with TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Has checks if a key exists in cache
	Has(ctx context.Context, key string) bool
	// Delete removes a key from cache
	Delete(ctx context.Context, key string) error
	// Close releases cache resources
	Close() error
}

// RefResolver resolves the default branch of a repository when the user
// did not pin a ref
type RefResolver interface {
	// ResolveDefaultBranch returns the repository's primary branch name
	ResolveDefaultBranch(ctx context.Context, owner, repo string) (string, error)
}
