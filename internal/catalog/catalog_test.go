package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/effect-native/examples/internal/domain"
)

// TestTemplates tests the template listing
func TestTemplates(t *testing.T) {
	entries := Templates()
	require.Len(t, entries, 3)

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
		assert.Equal(t, KindTemplate, e.Kind)
		assert.Equal(t, "templates/"+e.Name, e.Subdir)
		assert.NotEmpty(t, e.Description)
	}
	assert.Equal(t, []string{"basic", "expo", "expo-router"}, names)
}

// TestExamples tests the example listing
func TestExamples(t *testing.T) {
	entries := Examples()
	require.Len(t, entries, 4)

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
		assert.Equal(t, KindExample, e.Kind)
		assert.Equal(t, "examples/"+e.Name, e.Subdir)
		assert.NotEmpty(t, e.Description)
	}
	assert.Equal(t, []string{"hello-world", "http-client", "local-database", "push-notifications"}, names)
}

// TestFamilies tests customization-flow grouping
func TestFamilies(t *testing.T) {
	basic, err := Lookup(KindTemplate, "basic")
	require.NoError(t, err)
	assert.Equal(t, FamilyBasic, basic.Family)

	for _, name := range []string{"expo", "expo-router"} {
		entry, err := Lookup(KindTemplate, name)
		require.NoError(t, err)
		assert.Equal(t, FamilyExpo, entry.Family)
	}

	for _, e := range Examples() {
		assert.Equal(t, FamilyBasic, e.Family, "examples scaffold verbatim")
	}
}

// TestLookup tests entry lookup
func TestLookup(t *testing.T) {
	t.Run("finds a template", func(t *testing.T) {
		entry, err := Lookup(KindTemplate, "expo-router")
		require.NoError(t, err)
		assert.Equal(t, "expo-router", entry.Name)
		assert.Equal(t, "templates/expo-router", entry.Subdir)
	})

	t.Run("finds an example", func(t *testing.T) {
		entry, err := Lookup(KindExample, "http-client")
		require.NoError(t, err)
		assert.Equal(t, "http-client", entry.Name)
		assert.Equal(t, "examples/http-client", entry.Subdir)
	})

	t.Run("unknown template", func(t *testing.T) {
		_, err := Lookup(KindTemplate, "nextjs")
		assert.ErrorIs(t, err, domain.ErrUnknownTemplate)
		assert.Contains(t, err.Error(), `"nextjs"`)
		assert.Contains(t, err.Error(), "basic")
	})

	t.Run("unknown example", func(t *testing.T) {
		_, err := Lookup(KindExample, "websockets")
		assert.ErrorIs(t, err, domain.ErrUnknownExample)
		assert.Contains(t, err.Error(), "hello-world")
	})

	t.Run("template name under example kind fails", func(t *testing.T) {
		_, err := Lookup(KindExample, "basic")
		assert.ErrorIs(t, err, domain.ErrUnknownExample)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := Lookup(Kind("plugin"), "basic")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "plugin")
	})
}

// TestNames tests name listing per kind
func TestNames(t *testing.T) {
	assert.Equal(t, []string{"basic", "expo", "expo-router"}, Names(KindTemplate))
	assert.Len(t, Names(KindExample), 4)
	assert.Empty(t, Names(Kind("plugin")))
}

// TestEntry_Reference tests pinning an entry to repo coordinates
func TestEntry_Reference(t *testing.T) {
	entry, err := Lookup(KindTemplate, "expo")
	require.NoError(t, err)

	ref := entry.Reference("effect-native", "examples", "main")
	assert.Equal(t, domain.RepoReference{
		Owner:  "effect-native",
		Repo:   "examples",
		Ref:    "main",
		Subdir: "templates/expo",
	}, ref)

	// Callers may pin any coordinates, including an empty ref that the
	// resolver fills in later.
	fork := entry.Reference("acme", "starter-kit", "")
	assert.Equal(t, "acme", fork.Owner)
	assert.Empty(t, fork.Ref)
}
