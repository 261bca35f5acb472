// Package repospec parses user-supplied GitHub source specs into structured
// references. Three input shapes are accepted, tried in order: a gh:/github:
// prefixed shorthand, a full github.com URL, and the bare shorthand
// "owner/repo[/sub/dir][@ref]".
package repospec

import (
	"net/url"
	"strings"

	"github.com/effect-native/examples/internal/domain"
)

var specPrefixes = []string{"github:", "gh:"}

// Parse turns a spec string into a RepoReference. The ref and subdirectory
// stay empty when the input does not name them; resolution of the default
// branch is the caller's concern.
func Parse(spec string) (domain.RepoReference, error) {
	trimmed := spec
	for _, prefix := range specPrefixes {
		if strings.HasPrefix(trimmed, prefix) {
			trimmed = strings.TrimPrefix(trimmed, prefix)
			break
		}
	}

	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		return parseURLForm(spec, trimmed)
	}
	return parseShorthand(spec, trimmed)
}

// parseURLForm handles full URLs like
// https://github.com/owner/repo/tree/main/sub/dir. A ref is only recognized
// behind a literal "tree" segment; bare path segments after the repo name are
// all treated as subdirectory.
func parseURLForm(original, rawURL string) (domain.RepoReference, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return domain.RepoReference{}, domain.NewParseError(original, "not a well-formed URL")
	}

	if !strings.EqualFold(parsed.Host, "github.com") {
		return domain.RepoReference{}, domain.NewParseError(original, "host must be github.com")
	}

	segments := splitSegments(parsed.Path)
	if len(segments) < 2 {
		return domain.RepoReference{}, domain.NewParseError(original, "expected at least owner/repo in the URL path")
	}

	ref := domain.RepoReference{
		Owner: segments[0],
		Repo:  segments[1],
	}

	if len(segments) >= 4 && segments[2] == "tree" {
		ref.Ref = segments[3]
		ref.Subdir = strings.Join(segments[4:], "/")
		return ref, nil
	}

	ref.Subdir = strings.Join(segments[2:], "/")
	return ref, nil
}

// parseShorthand handles "owner/repo[/sub/dir][@ref]". The ref delimiter is
// the last "@" at position > 0, so a leading "@" never starts a ref.
func parseShorthand(original, spec string) (domain.RepoReference, error) {
	rest := spec
	var refName string
	if at := strings.LastIndex(rest, "@"); at > 0 {
		refName = rest[at+1:]
		rest = rest[:at]
	}

	segments := splitSegments(rest)
	if len(segments) < 2 {
		return domain.RepoReference{}, domain.NewParseError(original, "expected owner/repo")
	}

	return domain.RepoReference{
		Owner:  segments[0],
		Repo:   segments[1],
		Ref:    refName,
		Subdir: strings.Join(segments[2:], "/"),
	}, nil
}

// splitSegments splits a path on "/" and drops empty segments.
func splitSegments(path string) []string {
	var segments []string
	for _, segment := range strings.Split(path, "/") {
		if segment != "" {
			segments = append(segments, segment)
		}
	}
	return segments
}
