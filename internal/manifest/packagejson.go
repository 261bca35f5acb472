package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// Format re-indents a JSON document with two spaces and guarantees a
// trailing newline. pretty's defaults (objects expanded, short arrays
// inline under 80 columns) match how the templates are formatted.
func Format(data []byte) []byte {
	out := pretty.Pretty(data)
	if len(out) == 0 || out[len(out)-1] != '\n' {
		out = append(out, '\n')
	}
	return out
}

// PackageJSON wraps a package.json document and performs field surgery
// that leaves the rest of the document untouched.
type PackageJSON struct {
	data []byte
}

// ParsePackageJSON validates and wraps raw package.json bytes
func ParsePackageJSON(data []byte) (*PackageJSON, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: package.json is not valid JSON", ErrInvalidManifest)
	}
	return &PackageJSON{data: data}, nil
}

// LoadPackageJSON reads and parses <dir>/package.json
func LoadPackageJSON(dir string) (*PackageJSON, error) {
	path := filepath.Join(dir, "package.json")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrManifestNotFound, path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return ParsePackageJSON(data)
}

// Name returns the package name
func (p *PackageJSON) Name() string {
	return gjson.GetBytes(p.data, "name").String()
}

// SetName rewrites the package name
func (p *PackageJSON) SetName(name string) error {
	data, err := sjson.SetBytes(p.data, "name", name)
	if err != nil {
		return fmt.Errorf("failed to set package name: %w", err)
	}
	p.data = data
	return nil
}

// RemoveScripts deletes the named entries from the scripts map.
// Missing entries are skipped.
func (p *PackageJSON) RemoveScripts(names ...string) error {
	for _, name := range names {
		if err := p.RemoveField("scripts." + escapeKey(name)); err != nil {
			return err
		}
	}
	return nil
}

// RemoveDependenciesMatching deletes every entry of the given section
// (dependencies, devDependencies, ...) whose name starts with one of
// the prefixes. It returns the removed names in document order.
func (p *PackageJSON) RemoveDependenciesMatching(section string, prefixes ...string) ([]string, error) {
	deps := gjson.GetBytes(p.data, section)
	if !deps.Exists() || !deps.IsObject() {
		return nil, nil
	}

	var matched []string
	deps.ForEach(func(key, _ gjson.Result) bool {
		for _, prefix := range prefixes {
			if strings.HasPrefix(key.String(), prefix) {
				matched = append(matched, key.String())
				break
			}
		}
		return true
	})

	for _, name := range matched {
		if err := p.RemoveField(section + "." + escapeKey(name)); err != nil {
			return nil, err
		}
	}
	return matched, nil
}

// RemoveField deletes the field at the given gjson path. Deleting a
// missing field is a no-op.
func (p *PackageJSON) RemoveField(path string) error {
	if !gjson.GetBytes(p.data, path).Exists() {
		return nil
	}
	data, err := sjson.DeleteBytes(p.data, path)
	if err != nil {
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}
	p.data = data
	return nil
}

// Bytes returns the document formatted with two-space indentation and
// a trailing newline
func (p *PackageJSON) Bytes() []byte {
	return Format(p.data)
}

// escapeKey escapes a literal object key for use in a gjson/sjson path
func escapeKey(key string) string {
	replacer := strings.NewReplacer(
		`\`, `\\`,
		`.`, `\.`,
		`*`, `\*`,
		`?`, `\?`,
		`|`, `\|`,
	)
	return replacer.Replace(key)
}
