package github

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/effect-native/examples/internal/cache"
	"github.com/effect-native/examples/internal/domain"
)

func newTestRetrier() *Retrier {
	return NewRetrier(RetrierOptions{
		MaxRetries:      2,
		InitialInterval: 1 * time.Millisecond,
		MaxInterval:     5 * time.Millisecond,
		Multiplier:      2.0,
	})
}

// repoHandler serves a minimal repos GET response.
func repoHandler(t *testing.T, owner, repo, branch string, hits *atomic.Int32) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			hits.Add(1)
		}
		assert.Equal(t, fmt.Sprintf("/repos/%s/%s", owner, repo), r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"name":%q,"full_name":"%s/%s","default_branch":%q}`, repo, owner, repo, branch)
	}
}

// TestResolver_ResolveDefaultBranch tests API-backed resolution
func TestResolver_ResolveDefaultBranch(t *testing.T) {
	t.Run("resolves branch from the API", func(t *testing.T) {
		srv := httptest.NewServer(repoHandler(t, "effect-native", "examples", "main", nil))
		defer srv.Close()

		resolver := NewResolver(ResolverOptions{
			BaseURL: srv.URL,
			Retrier: newTestRetrier(),
		})

		branch, err := resolver.ResolveDefaultBranch(context.Background(), "effect-native", "examples")
		require.NoError(t, err)
		assert.Equal(t, "main", branch)
	})

	t.Run("accepts a base URL with trailing slash", func(t *testing.T) {
		srv := httptest.NewServer(repoHandler(t, "effect-native", "examples", "main", nil))
		defer srv.Close()

		resolver := NewResolver(ResolverOptions{
			BaseURL: srv.URL + "/",
			Retrier: newTestRetrier(),
		})

		branch, err := resolver.ResolveDefaultBranch(context.Background(), "effect-native", "examples")
		require.NoError(t, err)
		assert.Equal(t, "main", branch)
	})

	t.Run("sends the configured token", func(t *testing.T) {
		var authHeader string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader = r.Header.Get("Authorization")
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"name":"examples","default_branch":"main"}`)
		}))
		defer srv.Close()

		resolver := NewResolver(ResolverOptions{
			Token:   "ghp_testtoken",
			BaseURL: srv.URL,
			Retrier: newTestRetrier(),
		})

		_, err := resolver.ResolveDefaultBranch(context.Background(), "effect-native", "examples")
		require.NoError(t, err)
		assert.Contains(t, authHeader, "ghp_testtoken")
	})

	t.Run("404 maps to ErrNotFound without retrying", func(t *testing.T) {
		var hits atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"message":"Not Found"}`)
		}))
		defer srv.Close()

		resolver := NewResolver(ResolverOptions{
			BaseURL: srv.URL,
			Retrier: newTestRetrier(),
		})

		_, err := resolver.ResolveDefaultBranch(context.Background(), "effect-native", "missing")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Contains(t, err.Error(), "effect-native/missing")
		assert.Equal(t, int32(1), hits.Load())
	})

	t.Run("retries transient gateway errors", func(t *testing.T) {
		var hits atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if hits.Add(1) == 1 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"name":"examples","default_branch":"main"}`)
		}))
		defer srv.Close()

		resolver := NewResolver(ResolverOptions{
			BaseURL: srv.URL,
			Retrier: newTestRetrier(),
		})

		branch, err := resolver.ResolveDefaultBranch(context.Background(), "effect-native", "examples")
		require.NoError(t, err)
		assert.Equal(t, "main", branch)
		assert.Equal(t, int32(2), hits.Load())
	})

	t.Run("rate limiting surfaces ErrRateLimited", func(t *testing.T) {
		reset := time.Now().Add(1 * time.Hour).Unix()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-RateLimit-Limit", "60")
			w.Header().Set("X-RateLimit-Remaining", "0")
			w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", reset))
			w.WriteHeader(http.StatusForbidden)
			fmt.Fprint(w, `{"message":"API rate limit exceeded"}`)
		}))
		defer srv.Close()

		resolver := NewResolver(ResolverOptions{
			BaseURL: srv.URL,
			Retrier: newTestRetrier(),
		})

		_, err := resolver.ResolveDefaultBranch(context.Background(), "effect-native", "examples")
		assert.ErrorIs(t, err, domain.ErrRateLimited)
	})

	t.Run("missing default branch is terminal", func(t *testing.T) {
		var hits atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"name":"examples"}`)
		}))
		defer srv.Close()

		resolver := NewResolver(ResolverOptions{
			BaseURL: srv.URL,
			Retrier: newTestRetrier(),
		})

		_, err := resolver.ResolveDefaultBranch(context.Background(), "effect-native", "examples")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "no default branch")
		assert.Equal(t, int32(1), hits.Load())
	})
}

// TestResolver_Cache tests the cache fast path
func TestResolver_Cache(t *testing.T) {
	t.Run("stores resolved branches", func(t *testing.T) {
		store, err := cache.NewBadgerCache(cache.Options{InMemory: true})
		require.NoError(t, err)
		defer store.Close()

		var hits atomic.Int32
		srv := httptest.NewServer(repoHandler(t, "effect-native", "examples", "main", &hits))
		defer srv.Close()

		resolver := NewResolver(ResolverOptions{
			BaseURL: srv.URL,
			Cache:   store,
			Retrier: newTestRetrier(),
		})

		ctx := context.Background()
		branch, err := resolver.ResolveDefaultBranch(ctx, "effect-native", "examples")
		require.NoError(t, err)
		assert.Equal(t, "main", branch)

		branch, err = resolver.ResolveDefaultBranch(ctx, "effect-native", "examples")
		require.NoError(t, err)
		assert.Equal(t, "main", branch)

		assert.Equal(t, int32(1), hits.Load(), "second lookup should be served from cache")
	})

	t.Run("cache hit skips the API entirely", func(t *testing.T) {
		store, err := cache.NewBadgerCache(cache.Options{InMemory: true})
		require.NoError(t, err)
		defer store.Close()

		ctx := context.Background()
		err = store.Set(ctx, cache.RefKey("effect-native", "examples"), []byte("develop"), time.Hour)
		require.NoError(t, err)

		var hits atomic.Int32
		srv := httptest.NewServer(repoHandler(t, "effect-native", "examples", "main", &hits))
		defer srv.Close()

		resolver := NewResolver(ResolverOptions{
			BaseURL: srv.URL,
			Cache:   store,
			Retrier: newTestRetrier(),
		})

		branch, err := resolver.ResolveDefaultBranch(ctx, "effect-native", "examples")
		require.NoError(t, err)
		assert.Equal(t, "develop", branch)
		assert.Equal(t, int32(0), hits.Load())
	})

	t.Run("failures are not cached", func(t *testing.T) {
		store, err := cache.NewBadgerCache(cache.Options{InMemory: true})
		require.NoError(t, err)
		defer store.Close()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"message":"Not Found"}`)
		}))
		defer srv.Close()

		resolver := NewResolver(ResolverOptions{
			BaseURL: srv.URL,
			Cache:   store,
			Retrier: newTestRetrier(),
		})

		ctx := context.Background()
		_, err = resolver.ResolveDefaultBranch(ctx, "effect-native", "missing")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.False(t, store.Has(ctx, cache.RefKey("effect-native", "missing")))
	})
}

// TestNewResolver tests constructor defaults
func TestNewResolver(t *testing.T) {
	resolver := NewResolver(ResolverOptions{})

	assert.NotNil(t, resolver.client)
	assert.NotNil(t, resolver.retrier)
	assert.NotNil(t, resolver.logger)
	assert.Nil(t, resolver.cache)
	assert.Equal(t, DefaultRefTTL, resolver.ttl)
}
