// Package github resolves repository default branches through the
// GitHub REST API. Lookups happen only when a repo spec carries no
// explicit ref; the result is cached so repeated scaffolds of popular
// templates stay off the network.
package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	gogithub "github.com/google/go-github/v75/github"

	"github.com/effect-native/examples/internal/cache"
	"github.com/effect-native/examples/internal/domain"
	"github.com/effect-native/examples/internal/utils"
)

// DefaultRefTTL is how long resolved default branches stay cached.
// Default branches change rarely; a stale hit costs one failed
// download and a clearer retry hint.
const DefaultRefTTL = 24 * time.Hour

// Ensure Resolver implements domain.RefResolver
var _ domain.RefResolver = (*Resolver)(nil)

// Resolver answers default-branch lookups against the GitHub API.
type Resolver struct {
	client  *gogithub.Client
	cache   domain.Cache
	retrier *Retrier
	logger  *utils.Logger
	ttl     time.Duration
}

// ResolverOptions contains options for creating a Resolver
type ResolverOptions struct {
	// Token authenticates API requests. Unauthenticated requests share
	// GitHub's 60 req/hour per-IP quota.
	Token string

	// BaseURL overrides the API endpoint.
	BaseURL string

	// Cache stores resolved branches under cache.RefKey keys. Optional;
	// without it every lookup hits the API.
	Cache domain.Cache

	// TTL bounds how long cached branches are trusted.
	// Defaults to DefaultRefTTL.
	TTL time.Duration

	Retrier *Retrier
	Logger  *utils.Logger
}

// NewResolver creates a new Resolver
func NewResolver(opts ResolverOptions) *Resolver {
	client := gogithub.NewClient(nil)
	if opts.Token != "" {
		client = client.WithAuthToken(opts.Token)
	}
	applyBaseURL(client, opts.BaseURL)

	if opts.TTL <= 0 {
		opts.TTL = DefaultRefTTL
	}
	if opts.Retrier == nil {
		opts.Retrier = NewRetrier(DefaultRetrierOptions())
	}
	if opts.Logger == nil {
		opts.Logger = utils.NewDefaultLogger()
	}

	return &Resolver{
		client:  client,
		cache:   opts.Cache,
		retrier: opts.Retrier,
		logger:  opts.Logger,
		ttl:     opts.TTL,
	}
}

// ResolveDefaultBranch returns the default branch of owner/repo,
// consulting the cache before the API.
func (r *Resolver) ResolveDefaultBranch(ctx context.Context, owner, repo string) (string, error) {
	key := cache.RefKey(owner, repo)

	if r.cache != nil {
		cached, err := r.cache.Get(ctx, key)
		switch {
		case err == nil && len(cached) > 0:
			r.logger.Debug().
				Str("repo", owner+"/"+repo).
				Str("branch", string(cached)).
				Msg("Default branch from cache")
			return string(cached), nil
		case err != nil && !errors.Is(err, domain.ErrCacheMiss):
			r.logger.Debug().Err(err).Msg("Ref cache read failed")
		}
	}

	branch, err := RetryWithValue(ctx, r.retrier, func() (string, error) {
		return r.fetchDefaultBranch(ctx, owner, repo)
	})
	if err != nil {
		return "", err
	}

	if r.cache != nil {
		if err := r.cache.Set(ctx, key, []byte(branch), r.ttl); err != nil {
			r.logger.Warn().Err(err).Msg("Ref cache write failed")
		}
	}

	r.logger.Debug().
		Str("repo", owner+"/"+repo).
		Str("branch", branch).
		Msg("Default branch resolved")
	return branch, nil
}

// fetchDefaultBranch performs a single API lookup.
func (r *Resolver) fetchDefaultBranch(ctx context.Context, owner, repo string) (string, error) {
	repository, resp, err := r.client.Repositories.Get(ctx, owner, repo)
	if err != nil {
		return "", mapAPIError(owner, repo, resp, err)
	}

	branch := repository.GetDefaultBranch()
	if branch == "" {
		return "", fmt.Errorf("repository %s/%s reports no default branch", owner, repo)
	}
	return branch, nil
}

// mapAPIError translates go-github errors into domain errors so the
// retrier can tell transient failures from terminal ones.
func mapAPIError(owner, repo string, resp *gogithub.Response, err error) error {
	var rateErr *gogithub.RateLimitError
	if errors.As(err, &rateErr) {
		return &domain.RetryableError{
			Err:        fmt.Errorf("%w: %s", domain.ErrRateLimited, rateErr.Message),
			RetryAfter: int(time.Until(rateErr.Rate.Reset.Time).Seconds()),
		}
	}

	var abuseErr *gogithub.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		retryAfter := 0
		if abuseErr.RetryAfter != nil {
			retryAfter = int(abuseErr.RetryAfter.Seconds())
		}
		return &domain.RetryableError{
			Err:        fmt.Errorf("%w: %s", domain.ErrRateLimited, abuseErr.Message),
			RetryAfter: retryAfter,
		}
	}

	if resp != nil {
		if resp.StatusCode == http.StatusNotFound {
			return fmt.Errorf("repository %s/%s: %w", owner, repo, domain.ErrNotFound)
		}
		if ShouldRetryStatus(resp.StatusCode) {
			return &domain.RetryableError{Err: err}
		}
	}

	return err
}

// applyBaseURL points the client at a custom endpoint. go-github
// requires a trailing slash on BaseURL.
func applyBaseURL(c *gogithub.Client, baseURL string) {
	if baseURL == "" {
		return
	}
	u, err := url.Parse(strings.TrimSuffix(baseURL, "/") + "/")
	if err != nil {
		return
	}
	c.BaseURL = u
}
