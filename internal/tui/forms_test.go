package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/effect-native/examples/internal/catalog"
	"github.com/effect-native/examples/internal/domain"
)

func TestSplitPickerChoice(t *testing.T) {
	kind, name := SplitPickerChoice("template/expo-router")
	assert.Equal(t, catalog.KindTemplate, kind)
	assert.Equal(t, "expo-router", name)

	kind, name = SplitPickerChoice("example/hello-world")
	assert.Equal(t, catalog.KindExample, kind)
	assert.Equal(t, "hello-world", name)
}

func TestPickerRoundTrip(t *testing.T) {
	// Every value the picker can produce must resolve back to its entry.
	var choice string
	form := CreatePickerForm(&choice)
	require.NotNil(t, form)

	for _, entry := range append(catalog.Templates(), catalog.Examples()...) {
		kind, name := SplitPickerChoice(string(entry.Kind) + "/" + entry.Name)
		found, err := catalog.Lookup(kind, name)
		require.NoError(t, err)
		assert.Equal(t, entry.Name, found.Name)
	}
}

func TestDefaultIdentity(t *testing.T) {
	template := domain.AppIdentity{
		Name:           "expo-template",
		Slug:           "expo-template",
		Scheme:         "expotemplate",
		IOSBundleID:    "com.example.expotemplate",
		AndroidPackage: "com.example.expotemplate",
	}

	t.Run("derives identity from directory name", func(t *testing.T) {
		identity := DefaultIdentity("My Cool App", template)

		assert.Equal(t, "My Cool App", identity.Name)
		assert.Equal(t, "my-cool-app", identity.Slug)
		assert.Equal(t, "mycoolapp", identity.Scheme)
		assert.Equal(t, "com.example.mycoolapp", identity.IOSBundleID)
		assert.Equal(t, "com.example.mycoolapp", identity.AndroidPackage)
	})

	t.Run("keeps template identity when name yields nothing", func(t *testing.T) {
		identity := DefaultIdentity("!!!", template)
		assert.Equal(t, template, identity)
	})

	t.Run("keeps undotted identifiers unchanged", func(t *testing.T) {
		sparse := domain.AppIdentity{IOSBundleID: "bundleid"}
		identity := DefaultIdentity("my-app", sparse)
		assert.Equal(t, "bundleid", identity.IOSBundleID)
		assert.Equal(t, "my-app", identity.Slug)
	})

	t.Run("derived fields pass their validators", func(t *testing.T) {
		identity := DefaultIdentity("Push Notifications (Demo)", template)
		assert.NoError(t, ValidateSlug(identity.Slug))
		assert.NoError(t, ValidateScheme(identity.Scheme))
		assert.NoError(t, ValidateBundleID(identity.IOSBundleID))
		assert.NoError(t, ValidateAndroidPackage(identity.AndroidPackage))
	})
}
