// Package source materializes a repository subtree into a destination
// directory, either by copying from a local checkout or by streaming a
// GitHub tarball.
package source

import (
	"context"
	"fmt"

	"github.com/effect-native/examples/internal/domain"
	"github.com/effect-native/examples/internal/utils"
)

// Materializer coordinates the two acquisition strategies: a local checkout
// copy when the catalog subtree exists on disk, and a streamed archive
// download otherwise.
type Materializer struct {
	local    *LocalSource
	archive  *ArchiveFetcher
	resolver domain.RefResolver
	logger   *utils.Logger
}

// MaterializerOptions contains options for creating a Materializer
type MaterializerOptions struct {
	Local    *LocalSource
	Archive  *ArchiveFetcher
	Resolver domain.RefResolver
	Logger   *utils.Logger
}

// NewMaterializer creates a new Materializer
func NewMaterializer(opts MaterializerOptions) *Materializer {
	archive := opts.Archive
	if archive == nil {
		archive = NewArchiveFetcher(ArchiveFetcherOptions{Logger: opts.Logger})
	}
	local := opts.Local
	if local == nil {
		local = NewLocalSource(LocalSourceOptions{Logger: opts.Logger})
	}
	return &Materializer{
		local:    local,
		archive:  archive,
		resolver: opts.Resolver,
		logger:   opts.Logger,
	}
}

// Options contains per-call options for Materialize
type Options struct {
	// TryLocal enables the same-checkout shortcut used for catalog entries.
	// User-supplied GitHub specs always download.
	TryLocal bool
}

// Materialize populates destDir with the files under ref's subdirectory.
// When ref.Ref is empty the repository's default branch is resolved first;
// a resolution failure is terminal rather than guessed around.
func (m *Materializer) Materialize(ctx context.Context, ref domain.RepoReference, destDir string, opts Options) (*Result, error) {
	if opts.TryLocal {
		if dir, ok := m.local.Find(ref.Subdir); ok {
			if m.logger != nil {
				m.logger.Info().Str("dir", dir).Msg("Using local checkout")
			}
			return m.local.Copy(dir, destDir)
		}
	}

	resolved := ref
	if resolved.Ref == "" {
		if m.resolver == nil {
			return nil, fmt.Errorf("%w for %s/%s: no resolver configured, pin one explicitly with @ref",
				domain.ErrRefNotResolved, ref.Owner, ref.Repo)
		}
		branch, err := m.resolver.ResolveDefaultBranch(ctx, ref.Owner, ref.Repo)
		if err != nil {
			return nil, fmt.Errorf("%w for %s/%s: %v, pin one explicitly with @ref",
				domain.ErrRefNotResolved, ref.Owner, ref.Repo, err)
		}
		resolved.Ref = branch
		if m.logger != nil {
			m.logger.Debug().Str("ref", branch).Msg("Resolved default branch")
		}
	}

	return m.archive.Fetch(ctx, resolved, destDir)
}
