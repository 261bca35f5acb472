package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrNotFound indicates a resource was not found
	ErrNotFound = errors.New("not found")

	// ErrCacheMiss indicates a cache miss
	ErrCacheMiss = errors.New("cache miss")

	// ErrCacheExpired indicates the cached entry has expired
	ErrCacheExpired = errors.New("cache entry expired")

	// ErrRateLimited indicates GitHub API rate limiting was encountered
	ErrRateLimited = errors.New("rate limited")

	// ErrTimeout indicates a timeout occurred
	ErrTimeout = errors.New("timeout")

	// ErrUnknownTemplate indicates the requested template is not in the catalog
	ErrUnknownTemplate = errors.New("unknown template")

	// ErrUnknownExample indicates the requested example is not in the catalog
	ErrUnknownExample = errors.New("unknown example")

	// ErrDestinationNotEmpty indicates the target directory exists and has files
	ErrDestinationNotEmpty = errors.New("destination directory is not empty")

	// ErrAborted indicates the user cancelled an interactive prompt
	ErrAborted = errors.New("aborted by user")

	// ErrRefNotResolved indicates the default branch could not be determined
	ErrRefNotResolved = errors.New("could not resolve default branch")
)

// ParseError reports a repo spec string that matches none of the accepted forms.
// The original input is kept so the message can show exactly what was typed.
type ParseError struct {
	Spec   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid repo spec %q: %s", e.Spec, e.Reason)
}

// NewParseError creates a new ParseError
func NewParseError(spec, reason string) *ParseError {
	return &ParseError{
		Spec:   spec,
		Reason: reason,
	}
}

// FetchError represents a failed archive download or extraction. It names the
// owner, repo, ref and subdirectory that were attempted.
type FetchError struct {
	Owner      string
	Repo       string
	Ref        string
	Subdir     string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	target := e.Owner + "/" + e.Repo
	if e.Ref != "" {
		target += "@" + e.Ref
	}
	if e.Subdir != "" {
		target += " (subdir " + e.Subdir + ")"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("fetch failed for %s: status %d: %v", target, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch failed for %s: %v", target, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// NewFetchError creates a new FetchError
func NewFetchError(ref RepoReference, statusCode int, err error) *FetchError {
	return &FetchError{
		Owner:      ref.Owner,
		Repo:       ref.Repo,
		Ref:        ref.Ref,
		Subdir:     ref.Subdir,
		StatusCode: statusCode,
		Err:        err,
	}
}

// RetryableError indicates an error that can be retried
type RetryableError struct {
	Err        error
	RetryAfter int // Seconds to wait before retry, 0 if unknown
}

func (e *RetryableError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("retryable error (retry after %ds): %v", e.RetryAfter, e.Err)
	}
	return fmt.Sprintf("retryable error: %v", e.Err)
}

func (e *RetryableError) Unwrap() error {
	return e.Err
}

// IsRetryable checks if an error should be retried. Only the GitHub API
// resolver consults this; archive downloads are single-shot.
func IsRetryable(err error) bool {
	var retryable *RetryableError
	if errors.As(err, &retryable) {
		return true
	}

	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		switch fetchErr.StatusCode {
		case 429, 503, 502, 504:
			return true
		}
	}

	return errors.Is(err, ErrRateLimited) || errors.Is(err, ErrTimeout)
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for %s: %s", e.Field, e.Message)
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}
