package domain

// ScaffoldOptions contains the flag-driven choices for a single scaffold run.
type ScaffoldOptions struct {
	Template string
	Example  string
	GitHub   string
	Tooling  ToolingChoices
	Identity AppIdentity
	Git      bool
	Force    bool
	Yes      bool
	Verbose  bool
}

// DefaultScaffoldOptions returns ScaffoldOptions with default values.
func DefaultScaffoldOptions() ScaffoldOptions {
	return ScaffoldOptions{
		Tooling: KeepAll(),
		Git:     true,
	}
}
