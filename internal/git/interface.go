package git

// Client defines the interface for Git operations on scaffolded projects
type Client interface {
	InitWithCommit(path, message string) error
}
