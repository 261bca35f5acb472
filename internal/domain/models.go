package domain

import "strings"

// RepoReference identifies a GitHub subtree: owner and repo are always set,
// ref and subdir are optional ("" means absent).
type RepoReference struct {
	Owner  string
	Repo   string
	Ref    string
	Subdir string
}

// String renders the reference in shorthand form, e.g. "owner/repo/sub/dir@ref".
func (r RepoReference) String() string {
	var sb strings.Builder
	sb.WriteString(r.Owner)
	sb.WriteString("/")
	sb.WriteString(r.Repo)
	if r.Subdir != "" {
		sb.WriteString("/")
		sb.WriteString(r.Subdir)
	}
	if r.Ref != "" {
		sb.WriteString("@")
		sb.WriteString(r.Ref)
	}
	return sb.String()
}

// SubdirSegments returns the subdirectory split into path segments,
// or nil when no subdirectory was requested.
func (r RepoReference) SubdirSegments() []string {
	if r.Subdir == "" {
		return nil
	}
	return strings.Split(r.Subdir, "/")
}

// StripComponents returns how many leading path segments must be removed
// from each archive entry: one for the wrapper folder the archive service
// injects, plus one per subdirectory segment.
func (r RepoReference) StripComponents() int {
	return 1 + len(r.SubdirSegments())
}

// AppIdentity holds the Expo app manifest fields the create flow rewrites.
type AppIdentity struct {
	Name           string
	Slug           string
	Scheme         string
	IOSBundleID    string
	AndroidPackage string
}

// ToolingChoices records which optional tooling the generated project keeps.
// Everything defaults to kept; users opt out per tool.
type ToolingChoices struct {
	Changesets bool
	ESLint     bool
	Nix        bool
	Workflows  bool
}

// KeepAll returns ToolingChoices with every tool kept.
func KeepAll() ToolingChoices {
	return ToolingChoices{
		Changesets: true,
		ESLint:     true,
		Nix:        true,
		Workflows:  true,
	}
}
