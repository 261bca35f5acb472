package repospec_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/effect-native/examples/internal/domain"
	"github.com/effect-native/examples/internal/repospec"
)

func TestParse_Shorthand(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want domain.RepoReference
	}{
		{
			name: "owner and repo",
			spec: "owner/repo",
			want: domain.RepoReference{Owner: "owner", Repo: "repo"},
		},
		{
			name: "with ref",
			spec: "owner/repo@main",
			want: domain.RepoReference{Owner: "owner", Repo: "repo", Ref: "main"},
		},
		{
			name: "with subdirectory",
			spec: "owner/repo/sub/dir",
			want: domain.RepoReference{Owner: "owner", Repo: "repo", Subdir: "sub/dir"},
		},
		{
			name: "with subdirectory and ref",
			spec: "owner/repo/a/b@ref",
			want: domain.RepoReference{Owner: "owner", Repo: "repo", Ref: "ref", Subdir: "a/b"},
		},
		{
			name: "ref is a tag",
			spec: "owner/repo@v2.1.0",
			want: domain.RepoReference{Owner: "owner", Repo: "repo", Ref: "v2.1.0"},
		},
		{
			name: "ref is a commit hash",
			spec: "owner/repo@0123abc",
			want: domain.RepoReference{Owner: "owner", Repo: "repo", Ref: "0123abc"},
		},
		{
			name: "last @ wins when the path contains one",
			spec: "owner/repo@a@b",
			want: domain.RepoReference{Owner: "owner", Repo: "repo@a", Ref: "b"},
		},
		{
			name: "leading @ is not a ref delimiter",
			spec: "@weird/owner/repo",
			want: domain.RepoReference{Owner: "@weird", Repo: "owner", Subdir: "repo"},
		},
		{
			name: "trailing @ yields an absent ref",
			spec: "owner/repo@",
			want: domain.RepoReference{Owner: "owner", Repo: "repo"},
		},
		{
			name: "empty segments are dropped",
			spec: "owner//repo",
			want: domain.RepoReference{Owner: "owner", Repo: "repo"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repospec.Parse(tt.spec)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Prefixed(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want domain.RepoReference
	}{
		{
			name: "gh prefix",
			spec: "gh:owner/repo",
			want: domain.RepoReference{Owner: "owner", Repo: "repo"},
		},
		{
			name: "github prefix",
			spec: "github:owner/repo",
			want: domain.RepoReference{Owner: "owner", Repo: "repo"},
		},
		{
			name: "gh prefix with subdir and ref",
			spec: "gh:owner/repo/sub/dir@main",
			want: domain.RepoReference{Owner: "owner", Repo: "repo", Ref: "main", Subdir: "sub/dir"},
		},
		{
			name: "prefix in front of a full URL",
			spec: "github:https://github.com/owner/repo",
			want: domain.RepoReference{Owner: "owner", Repo: "repo"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repospec.Parse(tt.spec)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestParse_PrefixedMatchesBare checks that the gh:/github: prefixes only
// remove the prefix and never change the grammar.
func TestParse_PrefixedMatchesBare(t *testing.T) {
	specs := []string{
		"owner/repo",
		"owner/repo@main",
		"owner/repo/sub/dir@v1",
		"@weird/owner/repo",
	}

	for _, spec := range specs {
		bare, err := repospec.Parse(spec)
		require.NoError(t, err)

		for _, prefix := range []string{"gh:", "github:"} {
			got, err := repospec.Parse(prefix + spec)

			require.NoError(t, err, "prefix %q", prefix)
			assert.Equal(t, bare, got, "prefix %q", prefix)
		}
	}
}

func TestParse_URLForm(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want domain.RepoReference
	}{
		{
			name: "bare repo URL",
			spec: "https://github.com/owner/repo",
			want: domain.RepoReference{Owner: "owner", Repo: "repo"},
		},
		{
			name: "http scheme",
			spec: "http://github.com/owner/repo",
			want: domain.RepoReference{Owner: "owner", Repo: "repo"},
		},
		{
			name: "host compares case-insensitively",
			spec: "https://GitHub.com/owner/repo",
			want: domain.RepoReference{Owner: "owner", Repo: "repo"},
		},
		{
			name: "tree URL with ref and subdir",
			spec: "https://github.com/owner/repo/tree/main/sub/dir",
			want: domain.RepoReference{Owner: "owner", Repo: "repo", Ref: "main", Subdir: "sub/dir"},
		},
		{
			name: "tree URL with ref only",
			spec: "https://github.com/owner/repo/tree/v1.2.3",
			want: domain.RepoReference{Owner: "owner", Repo: "repo", Ref: "v1.2.3"},
		},
		{
			name: "bare path segments become subdir without a ref",
			spec: "https://github.com/owner/repo/sub/dir",
			want: domain.RepoReference{Owner: "owner", Repo: "repo", Subdir: "sub/dir"},
		},
		{
			name: "trailing slash",
			spec: "https://github.com/owner/repo/",
			want: domain.RepoReference{Owner: "owner", Repo: "repo"},
		},
		{
			name: "tree as the final segment is plain subdir",
			spec: "https://github.com/owner/repo/tree",
			want: domain.RepoReference{Owner: "owner", Repo: "repo", Subdir: "tree"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repospec.Parse(tt.spec)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Failures(t *testing.T) {
	tests := []struct {
		name string
		spec string
	}{
		{name: "single segment shorthand", spec: "onlyonesegment"},
		{name: "single segment with ref", spec: "onlyonesegment@main"},
		{name: "empty string", spec: ""},
		{name: "host mismatch", spec: "https://gitlab.com/owner/repo"},
		{name: "host mismatch on subdomain", spec: "https://www.github.com/owner/repo"},
		{name: "URL with single path segment", spec: "https://github.com/owner"},
		{name: "URL with empty path", spec: "https://github.com"},
		{name: "malformed URL", spec: "https://github.com/%zz"},
		{name: "prefix alone", spec: "gh:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repospec.Parse(tt.spec)

			require.Error(t, err)

			var parseErr *domain.ParseError
			require.True(t, errors.As(err, &parseErr))
			assert.Equal(t, tt.spec, parseErr.Spec, "error should carry the original input")
		})
	}
}

// TestParse_StripComponentsRoundTrip ties parsed references to the component
// count the extractor strips: one wrapper segment plus one per subdirectory
// segment.
func TestParse_StripComponentsRoundTrip(t *testing.T) {
	tests := []struct {
		spec string
		want int
	}{
		{"owner/repo", 1},
		{"owner/repo@main", 1},
		{"owner/repo/sub", 2},
		{"owner/repo/sub/dir", 3},
		{"https://github.com/owner/repo/tree/main/a/b/c", 4},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			ref, err := repospec.Parse(tt.spec)

			require.NoError(t, err)
			assert.Equal(t, tt.want, ref.StripComponents())
		})
	}
}
