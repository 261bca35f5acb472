package source

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/effect-native/examples/internal/utils"
)

// maxSearchLevels caps how far LocalSource climbs toward the filesystem root.
const maxSearchLevels = 5

// LocalSource locates catalog subdirectories in a surrounding source
// checkout. When the binary runs from inside the monorepo (development
// rather than an installed release), templates and examples are copied
// straight from disk instead of being downloaded.
type LocalSource struct {
	start  string
	levels int
	stat   func(string) (os.FileInfo, error)
	logger *utils.Logger
}

// LocalSourceOptions contains options for creating a LocalSource
type LocalSourceOptions struct {
	Start  string // directory to search from; defaults to the executable's directory
	Levels int    // how many parent directories to try; defaults to maxSearchLevels
	Stat   func(string) (os.FileInfo, error)
	Logger *utils.Logger
}

// NewLocalSource creates a new LocalSource
func NewLocalSource(opts LocalSourceOptions) *LocalSource {
	start := opts.Start
	if start == "" {
		if exe, err := os.Executable(); err == nil {
			start = filepath.Dir(exe)
		} else if wd, err := os.Getwd(); err == nil {
			start = wd
		} else {
			start = "."
		}
	}
	levels := opts.Levels
	if levels <= 0 {
		levels = maxSearchLevels
	}
	stat := opts.Stat
	if stat == nil {
		stat = os.Stat
	}
	return &LocalSource{
		start:  start,
		levels: levels,
		stat:   stat,
		logger: opts.Logger,
	}
}

// Find climbs from the start directory toward the root looking for subdir.
// It returns the absolute directory and true on a hit.
func (s *LocalSource) Find(subdir string) (string, bool) {
	if subdir == "" {
		return "", false
	}

	dir := s.start
	for i := 0; i < s.levels; i++ {
		candidate := filepath.Join(dir, filepath.FromSlash(subdir))
		if info, err := s.stat(candidate); err == nil && info.IsDir() {
			return candidate, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", false
}

// Copy recursively copies the located directory's contents into destDir.
func (s *LocalSource) Copy(srcDir, destDir string) (*Result, error) {
	if s.logger != nil {
		s.logger.Debug().Str("src", srcDir).Str("dest", destDir).Msg("Copying local directory")
	}

	if err := utils.CopyDir(srcDir, destDir); err != nil {
		return nil, fmt.Errorf("local copy failed: %w", err)
	}

	return &Result{
		LocalPath: destDir,
		Method:    MethodLocal,
	}, nil
}
