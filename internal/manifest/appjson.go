package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/effect-native/examples/internal/domain"
)

// app.json locations of the AppIdentity fields
const (
	pathName           = "expo.name"
	pathSlug           = "expo.slug"
	pathScheme         = "expo.scheme"
	pathIOSBundleID    = "expo.ios.bundleIdentifier"
	pathAndroidPackage = "expo.android.package"
)

// AppJSON wraps an Expo app.json document
type AppJSON struct {
	data []byte
}

// ParseAppJSON validates and wraps raw app.json bytes
func ParseAppJSON(data []byte) (*AppJSON, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: app.json is not valid JSON", ErrInvalidManifest)
	}
	return &AppJSON{data: data}, nil
}

// LoadAppJSON reads and parses <dir>/app.json
func LoadAppJSON(dir string) (*AppJSON, error) {
	path := filepath.Join(dir, "app.json")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrManifestNotFound, path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return ParseAppJSON(data)
}

// ReadIdentity returns the identity fields currently in the document.
// The values seed the interactive form's defaults.
func (a *AppJSON) ReadIdentity() domain.AppIdentity {
	return domain.AppIdentity{
		Name:           gjson.GetBytes(a.data, pathName).String(),
		Slug:           gjson.GetBytes(a.data, pathSlug).String(),
		Scheme:         gjson.GetBytes(a.data, pathScheme).String(),
		IOSBundleID:    gjson.GetBytes(a.data, pathIOSBundleID).String(),
		AndroidPackage: gjson.GetBytes(a.data, pathAndroidPackage).String(),
	}
}

// ApplyIdentity rewrites the identity fields. Empty fields keep the
// template's value. Missing intermediate objects (expo.ios,
// expo.android) are created as needed.
func (a *AppJSON) ApplyIdentity(identity domain.AppIdentity) error {
	fields := []struct {
		path  string
		value string
	}{
		{pathName, identity.Name},
		{pathSlug, identity.Slug},
		{pathScheme, identity.Scheme},
		{pathIOSBundleID, identity.IOSBundleID},
		{pathAndroidPackage, identity.AndroidPackage},
	}

	for _, f := range fields {
		if f.value == "" {
			continue
		}
		data, err := sjson.SetBytes(a.data, f.path, f.value)
		if err != nil {
			return fmt.Errorf("failed to set %s: %w", f.path, err)
		}
		a.data = data
	}
	return nil
}

// Bytes returns the document formatted with two-space indentation and
// a trailing newline
func (a *AppJSON) Bytes() []byte {
	return Format(a.data)
}
