// Package app wires the scaffold flow together: pick an entry, check
// the destination, materialize the files, customize the result and
// initialize a repository.
package app

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/effect-native/examples/internal/cache"
	"github.com/effect-native/examples/internal/catalog"
	"github.com/effect-native/examples/internal/config"
	"github.com/effect-native/examples/internal/domain"
	"github.com/effect-native/examples/internal/git"
	"github.com/effect-native/examples/internal/github"
	"github.com/effect-native/examples/internal/source"
	"github.com/effect-native/examples/internal/utils"
)

// initialCommitMessage is used for the commit created by --git.
const initialCommitMessage = "Initial commit from create-effect-native-app"

// Request describes one scaffold run.
type Request struct {
	// Entry is the catalog entry being scaffolded. A zero Entry means a
	// raw --github subtree with no catalog customization.
	Entry catalog.Entry

	// Reference names the subtree to fetch.
	Reference domain.RepoReference

	// Directory is the destination, absolute or relative to the cwd.
	Directory string

	// TryLocal enables the same-checkout shortcut for catalog entries.
	TryLocal bool

	Tooling  domain.ToolingChoices
	Identity domain.AppIdentity
	Force    bool
	GitInit  bool
}

// Result reports what a scaffold run produced.
type Result struct {
	Directory string
	Source    *source.Result
}

// Scaffolder coordinates the scaffold process
type Scaffolder struct {
	config       *config.Config
	materializer *source.Materializer
	git          git.Client
	cache        domain.Cache
	logger       *utils.Logger
}

// ScaffolderOptions contains options for creating a scaffolder
type ScaffolderOptions struct {
	Config *config.Config

	// Resolver overrides the GitHub-backed default-branch resolver.
	Resolver domain.RefResolver

	// Git overrides the go-git client.
	Git git.Client

	Logger  *utils.Logger
	Verbose bool
}

// NewScaffolder creates a new scaffolder with the given configuration
func NewScaffolder(opts ScaffolderOptions) (*Scaffolder, error) {
	cfg := opts.Config
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	logger := opts.Logger
	if logger == nil {
		logLevel := cfg.Logging.Level
		if logLevel == "" {
			logLevel = "info"
		}
		if opts.Verbose {
			logLevel = "debug"
		}
		logFormat := cfg.Logging.Format
		if logFormat == "" {
			logFormat = "pretty"
		}
		logger = utils.NewLogger(utils.LoggerOptions{
			Level:   logLevel,
			Format:  logFormat,
			Verbose: opts.Verbose,
		})
	}

	var store domain.Cache
	if cfg.Cache.Enabled {
		c, err := cache.NewBadgerCache(cache.Options{
			Directory: utils.ExpandPath(cfg.Cache.Directory),
		})
		if err != nil {
			logger.Warn().Err(err).Msg("Ref cache unavailable, continuing without it")
		} else {
			store = c
		}
	}

	resolver := opts.Resolver
	if resolver == nil {
		resolver = github.NewResolver(github.ResolverOptions{
			Token:   cfg.GitHub.Token,
			BaseURL: cfg.GitHub.APIBaseURL,
			Cache:   store,
			TTL:     cfg.Cache.TTL,
			Logger:  logger,
		})
	}

	local := source.NewLocalSource(source.LocalSourceOptions{
		Start:  utils.ExpandPath(cfg.Catalog.LocalRoot),
		Logger: logger,
	})
	archive := source.NewArchiveFetcher(source.ArchiveFetcherOptions{
		BaseURL:  cfg.Codeload.BaseURL,
		Logger:   logger,
		Progress: true,
	})
	materializer := source.NewMaterializer(source.MaterializerOptions{
		Local:    local,
		Archive:  archive,
		Resolver: resolver,
		Logger:   logger,
	})

	gitClient := opts.Git
	if gitClient == nil {
		gitClient = git.NewClient()
	}

	return &Scaffolder{
		config:       cfg,
		materializer: materializer,
		git:          gitClient,
		cache:        store,
		logger:       logger,
	}, nil
}

// Scaffold materializes the requested subtree into the destination and
// runs the customization pipeline on it.
func (s *Scaffolder) Scaffold(ctx context.Context, req Request) (*Result, error) {
	startTime := time.Now()

	dest, err := filepath.Abs(req.Directory)
	if err != nil {
		return nil, fmt.Errorf("could not resolve destination: %w", err)
	}

	s.logger.Info().
		Str("source", req.Reference.String()).
		Str("directory", dest).
		Msg("Starting scaffold")

	if utils.DirExists(dest) {
		empty, err := utils.IsDirEmpty(dest)
		if err != nil {
			return nil, fmt.Errorf("could not inspect destination: %w", err)
		}
		if !empty && !req.Force {
			return nil, fmt.Errorf("%w: %s", domain.ErrDestinationNotEmpty, dest)
		}
	}

	srcResult, err := s.materializer.Materialize(ctx, req.Reference, dest, source.Options{
		TryLocal: req.TryLocal,
	})
	if err != nil {
		if ctx.Err() != nil {
			s.logger.Warn().Msg("Scaffold cancelled")
			return nil, ctx.Err()
		}
		return nil, err
	}

	s.logger.Info().
		Str("method", srcResult.Method).
		Int("files", srcResult.Files).
		Msg("Project files written")

	s.customize(dest, req)

	if req.GitInit {
		if git.IsInsideRepository(dest) {
			s.logger.Debug().Msg("Destination is already inside a git repository, skipping init")
		} else if err := s.git.InitWithCommit(dest, initialCommitMessage); err != nil {
			s.logger.Warn().Err(err).Msg("Could not initialize git repository")
		} else {
			s.logger.Debug().Msg("Initialized git repository")
		}
	}

	s.logger.Info().
		Dur("duration", time.Since(startTime)).
		Str("directory", dest).
		Msg("Scaffold completed")

	return &Result{Directory: dest, Source: srcResult}, nil
}

// customize applies the post-materialization pipeline. The project is
// already on disk, so every step is best-effort: a failure is logged
// and the remaining steps still run.
func (s *Scaffolder) customize(dest string, req Request) {
	if err := RenameGitignore(dest); err != nil {
		s.logger.Warn().Err(err).Msg("Could not rename gitignore")
	}

	// Examples scaffold verbatim; only templates get their manifests
	// rewritten.
	if req.Entry.Kind != catalog.KindTemplate {
		return
	}

	if err := SetPackageName(dest, filepath.Base(dest)); err != nil {
		s.logger.Warn().Err(err).Msg("Could not set package name")
	}

	if !req.Tooling.Changesets {
		if err := RemoveChangesets(dest); err != nil {
			s.logger.Warn().Err(err).Msg("Could not remove Changesets tooling")
		}
	}
	if !req.Tooling.ESLint {
		if err := RemoveESLint(dest); err != nil {
			s.logger.Warn().Err(err).Msg("Could not remove ESLint tooling")
		}
	}
	if !req.Tooling.Nix {
		if err := RemoveNix(dest); err != nil {
			s.logger.Warn().Err(err).Msg("Could not remove Nix files")
		}
	}
	if !req.Tooling.Workflows {
		if err := RemoveWorkflows(dest); err != nil {
			s.logger.Warn().Err(err).Msg("Could not remove workflows")
		}
	}

	if req.Entry.Family == catalog.FamilyExpo && req.Identity != (domain.AppIdentity{}) {
		if err := ApplyIdentity(dest, req.Identity); err != nil {
			s.logger.Warn().Err(err).Msg("Could not apply app identity")
		}
	}
}

// Close releases resources held by the scaffolder
func (s *Scaffolder) Close() error {
	if s.cache != nil {
		return s.cache.Close()
	}
	return nil
}
