package source

import (
	"archive/tar"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"

	"github.com/effect-native/examples/internal/domain"
	"github.com/effect-native/examples/internal/utils"
)

// DefaultBaseURL is GitHub's tarball delivery host.
const DefaultBaseURL = "https://codeload.github.com"

// ArchiveFetcher downloads a repository tarball and extracts the requested
// subtree in a single streaming pass: the response body feeds the gzip and
// tar readers directly, so memory stays bounded regardless of archive size.
type ArchiveFetcher struct {
	httpClient *http.Client
	logger     *utils.Logger
	baseURL    string
	progress   bool
}

// ArchiveFetcherOptions contains options for creating an ArchiveFetcher
type ArchiveFetcherOptions struct {
	HTTPClient *http.Client
	Logger     *utils.Logger
	BaseURL    string // defaults to DefaultBaseURL
	Progress   bool   // render a byte progress bar during downloads
}

// NewArchiveFetcher creates a new ArchiveFetcher
func NewArchiveFetcher(opts ArchiveFetcherOptions) *ArchiveFetcher {
	client := opts.HTTPClient
	if client == nil {
		client = defaultHTTPClient()
	}
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &ArchiveFetcher{
		httpClient: client,
		logger:     opts.Logger,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		progress:   opts.Progress,
	}
}

// ArchiveURL returns the tarball endpoint for a reference:
// {base}/{owner}/{repo}/tar.gz/{ref}.
func (f *ArchiveFetcher) ArchiveURL(ref domain.RepoReference) string {
	return fmt.Sprintf("%s/%s/%s/tar.gz/%s", f.baseURL, ref.Owner, ref.Repo, ref.Ref)
}

// Fetch downloads the tarball for ref and extracts the entries under its
// subdirectory into destDir. The ref must already be resolved to a concrete
// commit-ish. There is no retry: any failure is terminal and files already
// written stay on disk.
func (f *ArchiveFetcher) Fetch(ctx context.Context, ref domain.RepoReference, destDir string) (*Result, error) {
	archiveURL := f.ArchiveURL(ref)
	if f.logger != nil {
		f.logger.Debug().Str("archive_url", archiveURL).Str("subdir", ref.Subdir).Msg("Downloading archive")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, archiveURL, nil)
	if err != nil {
		return nil, domain.NewFetchError(ref, 0, err)
	}

	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		req.Header.Set("Authorization", "token "+token)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, domain.NewFetchError(ref, 0, fmt.Errorf("download request failed: %w", err))
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, domain.NewFetchError(ref, resp.StatusCode, fmt.Errorf("archive not found"))
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, domain.NewFetchError(ref, resp.StatusCode, fmt.Errorf("authentication required"))
	case resp.StatusCode != http.StatusOK:
		return nil, domain.NewFetchError(ref, resp.StatusCode, fmt.Errorf("unexpected response status"))
	}

	body := io.Reader(resp.Body)
	if f.progress {
		bar := utils.NewBytesProgressBar(resp.ContentLength, utils.DescDownloading)
		body = io.TeeReader(resp.Body, bar)
		defer bar.Finish()
	}

	written, err := f.extractTarGz(body, destDir, ref.Subdir)
	if err != nil {
		return nil, domain.NewFetchError(ref, 0, err)
	}

	// An archive always contains at least the wrapper folder, so zero writes
	// with a subdirectory requested means the subdirectory does not exist at
	// this ref.
	if written == 0 && ref.Subdir != "" {
		return nil, domain.NewFetchError(ref, 0, fmt.Errorf("no files matched subdirectory %q", ref.Subdir))
	}

	if f.logger != nil {
		f.logger.Debug().Int("files", written).Msg("Archive extracted")
	}

	return &Result{
		LocalPath: destDir,
		Ref:       ref.Ref,
		Method:    MethodArchive,
		Files:     written,
	}, nil
}

// extractTarGz walks the tar stream once. Every entry carries a synthetic
// top-level wrapper folder ({repo}-{ref} by convention); that segment is
// removed first, the subdirectory filter is applied to the remainder, and
// matching entries land in destDir with the subdirectory prefix stripped.
// Entries that fail the filter, escape destDir, or are neither files nor
// directories are dropped without error.
func (f *ArchiveFetcher) extractTarGz(r io.Reader, destDir, subdir string) (int, error) {
	gzr, err := gzip.NewReader(r)
	if err != nil {
		return 0, fmt.Errorf("gzip reader failed: %w", err)
	}
	defer gzr.Close()

	if err := utils.EnsureDir(destDir); err != nil {
		return 0, fmt.Errorf("mkdir failed: %w", err)
	}

	tr := tar.NewReader(gzr)
	written := 0

	for {
		header, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return written, fmt.Errorf("tar read failed: %w", err)
		}

		parts := strings.SplitN(header.Name, "/", 2)
		if len(parts) < 2 || parts[1] == "" {
			// The wrapper folder itself.
			continue
		}
		stripped := parts[1]

		if !matchesSubdir(stripped, subdir) {
			continue
		}

		relative := strings.TrimPrefix(stripped, subdir)
		relative = strings.TrimPrefix(relative, "/")
		if relative == "" {
			// The subdirectory entry itself maps onto destDir.
			continue
		}

		targetPath := filepath.Join(destDir, relative)

		if !strings.HasPrefix(filepath.Clean(targetPath), filepath.Clean(destDir)) {
			continue
		}

		switch header.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(targetPath, 0755); err != nil {
				return written, fmt.Errorf("mkdir failed: %w", err)
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(targetPath), 0755); err != nil {
				return written, fmt.Errorf("mkdir failed: %w", err)
			}

			file, err := os.OpenFile(targetPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, os.FileMode(header.Mode))
			if err != nil {
				return written, fmt.Errorf("create file failed: %w", err)
			}

			if _, err := io.Copy(file, tr); err != nil {
				file.Close()
				return written, fmt.Errorf("copy failed: %w", err)
			}
			file.Close()
			written++
		}
	}

	return written, nil
}

// matchesSubdir reports whether a wrapper-stripped entry path belongs to the
// requested subdirectory. The boundary must be a "/": "packages/cli-extra"
// does not belong to "packages/cli". An empty subdir matches everything.
func matchesSubdir(path, subdir string) bool {
	if subdir == "" {
		return true
	}
	return path == subdir || strings.HasPrefix(path, subdir+"/")
}

func defaultHTTPClient() *http.Client {
	return &http.Client{
		Timeout: 10 * time.Minute,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= 10 {
				return fmt.Errorf("too many redirects")
			}
			return nil
		},
	}
}
