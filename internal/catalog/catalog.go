// Package catalog holds the built-in templates and examples the CLI
// can scaffold. Entries are pinned to subdirectories of the
// effect-native/examples monorepo; the owner, repo and ref come from
// configuration so forks can point the CLI at their own checkout.
package catalog

import (
	"fmt"
	"strings"

	"github.com/effect-native/examples/internal/domain"
)

// Kind tells templates from examples
type Kind string

const (
	KindTemplate Kind = "template"
	KindExample  Kind = "example"
)

// Family groups entries that share a customization flow. Basic entries
// get the tooling opt-outs, expo entries get the app-identity rewrite.
type Family string

const (
	FamilyBasic Family = "basic"
	FamilyExpo  Family = "expo"
)

// Entry is one scaffoldable item in the catalog
type Entry struct {
	Name        string
	Kind        Kind
	Family      Family
	Subdir      string
	Description string
}

// Reference pins the entry inside the monorepo at the given coordinates
func (e *Entry) Reference(owner, repo, ref string) domain.RepoReference {
	return domain.RepoReference{
		Owner:  owner,
		Repo:   repo,
		Ref:    ref,
		Subdir: e.Subdir,
	}
}

var templates = []Entry{
	{
		Name:        "basic",
		Kind:        KindTemplate,
		Family:      FamilyBasic,
		Subdir:      "templates/basic",
		Description: "TypeScript starter with Changesets, ESLint, a Nix flake and CI workflows",
	},
	{
		Name:        "expo",
		Kind:        KindTemplate,
		Family:      FamilyExpo,
		Subdir:      "templates/expo",
		Description: "Expo app wired to the Effect runtime",
	},
	{
		Name:        "expo-router",
		Kind:        KindTemplate,
		Family:      FamilyExpo,
		Subdir:      "templates/expo-router",
		Description: "Expo Router app with file-based navigation and Effect",
	},
}

var examples = []Entry{
	{
		Name:        "hello-world",
		Kind:        KindExample,
		Family:      FamilyBasic,
		Subdir:      "examples/hello-world",
		Description: "Smallest possible Effect program",
	},
	{
		Name:        "http-client",
		Kind:        KindExample,
		Family:      FamilyBasic,
		Subdir:      "examples/http-client",
		Description: "Fetching and decoding data with the platform HttpClient",
	},
	{
		Name:        "local-database",
		Kind:        KindExample,
		Family:      FamilyBasic,
		Subdir:      "examples/local-database",
		Description: "Local persistence with SQLite",
	},
	{
		Name:        "push-notifications",
		Kind:        KindExample,
		Family:      FamilyBasic,
		Subdir:      "examples/push-notifications",
		Description: "Registering and handling Expo push notifications",
	},
}

// Templates returns catalog templates in display order
func Templates() []Entry {
	return append([]Entry(nil), templates...)
}

// Examples returns catalog examples in display order
func Examples() []Entry {
	return append([]Entry(nil), examples...)
}

// Names returns the entry names for a kind, in display order
func Names(kind Kind) []string {
	var entries []Entry
	switch kind {
	case KindTemplate:
		entries = templates
	case KindExample:
		entries = examples
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}
	return names
}

// Lookup finds an entry by kind and name
func Lookup(kind Kind, name string) (*Entry, error) {
	var entries []Entry
	var missing error

	switch kind {
	case KindTemplate:
		entries, missing = templates, domain.ErrUnknownTemplate
	case KindExample:
		entries, missing = examples, domain.ErrUnknownExample
	default:
		return nil, fmt.Errorf("unknown catalog kind %q", kind)
	}

	for i := range entries {
		if entries[i].Name == name {
			entry := entries[i]
			return &entry, nil
		}
	}

	return nil, fmt.Errorf("%w: %q (available: %s)",
		missing, name, strings.Join(Names(kind), ", "))
}
