package git

import (
	"os"
	"path/filepath"
	"testing"

	gogit "github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewClient tests creating a new client
func TestNewClient(t *testing.T) {
	client := NewClient()
	assert.NotNil(t, client)
}

func TestRealClient_InitWithCommit(t *testing.T) {
	t.Run("initializes and commits a scaffolded directory", func(t *testing.T) {
		tmpDir := t.TempDir()
		writeFile(t, tmpDir, "package.json", `{"name":"my-app"}`)
		writeFile(t, tmpDir, "src/index.ts", "export {}\n")

		client := NewClient()
		err := client.InitWithCommit(tmpDir, "Initial commit")
		require.NoError(t, err)

		repo, err := gogit.PlainOpen(tmpDir)
		require.NoError(t, err)

		head, err := repo.Head()
		require.NoError(t, err)

		commit, err := repo.CommitObject(head.Hash())
		require.NoError(t, err)
		assert.Equal(t, "Initial commit", commit.Message)
		assert.NotEmpty(t, commit.Author.Name)

		// The commit covers the whole tree.
		tree, err := commit.Tree()
		require.NoError(t, err)
		_, err = tree.File("package.json")
		assert.NoError(t, err)
	})

	t.Run("fails on a directory that is already a repository", func(t *testing.T) {
		tmpDir := t.TempDir()
		writeFile(t, tmpDir, "README.md", "hello\n")

		client := NewClient()
		require.NoError(t, client.InitWithCommit(tmpDir, "Initial commit"))

		err := client.InitWithCommit(tmpDir, "again")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "git init failed")
	})
}

func TestIsInsideRepository(t *testing.T) {
	t.Run("false for a plain directory", func(t *testing.T) {
		assert.False(t, IsInsideRepository(t.TempDir()))
	})

	t.Run("true for an initialized directory", func(t *testing.T) {
		tmpDir := t.TempDir()
		_, err := gogit.PlainInit(tmpDir, false)
		require.NoError(t, err)

		assert.True(t, IsInsideRepository(tmpDir))
	})

	t.Run("true for a subdirectory of a repository", func(t *testing.T) {
		tmpDir := t.TempDir()
		_, err := gogit.PlainInit(tmpDir, false)
		require.NoError(t, err)

		sub := filepath.Join(tmpDir, "packages", "app")
		require.NoError(t, os.MkdirAll(sub, 0o755))

		assert.True(t, IsInsideRepository(sub))
	})
}

// TestClientInterface verifies RealClient implements Client interface
func TestClientInterface(t *testing.T) {
	var client Client = NewClient()
	assert.NotNil(t, client)
	_, ok := client.(*RealClient)
	assert.True(t, ok)
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
