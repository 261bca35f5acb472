package source

// Materialization methods
const (
	MethodLocal   = "local"
	MethodArchive = "archive"
)

// Result contains the outcome of a materialization
type Result struct {
	LocalPath string // destination directory that was populated
	Ref       string // commit-ish the archive was fetched at (empty for local copies)
	Method    string // "local" or "archive"
	Files     int    // regular files written by the archive path
}
