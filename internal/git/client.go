package git

import (
	"fmt"
	"time"

	gogit "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// fallbackName and fallbackEmail sign the initial commit when the user
// has no git identity configured.
const (
	fallbackName  = "create-effect-native-app"
	fallbackEmail = "create-effect-native-app@users.noreply.github.com"
)

// RealClient implements Client using go-git
type RealClient struct{}

// NewClient creates a new RealClient
func NewClient() *RealClient {
	return &RealClient{}
}

// InitWithCommit initializes a repository at path and commits everything
// in it. The commit is authored from the user's git config when one
// exists, otherwise with the scaffolder's fallback identity.
func (c *RealClient) InitWithCommit(path, message string) error {
	repo, err := gogit.PlainInit(path, false)
	if err != nil {
		return fmt.Errorf("git init failed: %w", err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("git worktree failed: %w", err)
	}

	if err := worktree.AddWithOptions(&gogit.AddOptions{All: true}); err != nil {
		return fmt.Errorf("git add failed: %w", err)
	}

	opts := &gogit.CommitOptions{}
	if !hasIdentity(repo) {
		opts.Author = &object.Signature{
			Name:  fallbackName,
			Email: fallbackEmail,
			When:  time.Now(),
		}
	}
	if _, err := worktree.Commit(message, opts); err != nil {
		return fmt.Errorf("git commit failed: %w", err)
	}
	return nil
}

// IsInsideRepository reports whether path is already covered by a git
// repository, including one rooted in a parent directory. Scaffolding
// into a monorepo must not create a nested repository.
func IsInsideRepository(path string) bool {
	_, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{DetectDotGit: true})
	return err == nil
}

func hasIdentity(repo *gogit.Repository) bool {
	cfg, err := repo.ConfigScoped(gitconfig.SystemScope)
	if err != nil {
		return false
	}
	return cfg.User.Name != "" && cfg.User.Email != ""
}
