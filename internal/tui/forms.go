// Package tui implements the interactive prompts and styled terminal
// output of the scaffolder. Forms are built with huh and rendered with
// the charm theme; RunForm maps user cancellation to domain.ErrAborted
// so callers can exit quietly.
package tui

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/effect-native/examples/internal/catalog"
	"github.com/effect-native/examples/internal/domain"
)

// CreatePickerForm builds the catalog picker shown when no template or
// example was named on the command line. The selection is stored as
// "<kind>/<name>" and split again with SplitPickerChoice.
func CreatePickerForm(choice *string) *huh.Form {
	templates := catalog.Templates()
	examples := catalog.Examples()

	options := make([]huh.Option[string], 0, len(templates)+len(examples))
	for _, entry := range templates {
		label := fmt.Sprintf("%s - %s", entry.Name, entry.Description)
		options = append(options, huh.NewOption(label, string(entry.Kind)+"/"+entry.Name))
	}
	for _, entry := range examples {
		label := fmt.Sprintf("%s - %s (example)", entry.Name, entry.Description)
		options = append(options, huh.NewOption(label, string(entry.Kind)+"/"+entry.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("entry").
				Title("What do you want to start from?").
				Description("Templates are blank starters, examples come with working code").
				Options(options...).
				Value(choice),
		),
	).WithTheme(GetTheme())
}

// SplitPickerChoice splits a picker selection back into its catalog
// kind and entry name.
func SplitPickerChoice(choice string) (catalog.Kind, string) {
	kind, name, _ := strings.Cut(choice, "/")
	return catalog.Kind(kind), name
}

// CreateDirectoryForm builds the project directory prompt.
func CreateDirectoryForm(dir *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("directory").
				Title("Project directory").
				Description("Where to create the project").
				Placeholder("my-app").
				Value(dir).
				Validate(ValidateRequired),
		),
	).WithTheme(GetTheme())
}

// CreateToolingForm builds the opt-out prompts for the tooling a
// template ships with. Each confirm defaults to the current value, so
// callers seed choices with domain.KeepAll().
func CreateToolingForm(choices *domain.ToolingChoices) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Key("changesets").
				Title("Keep Changesets?").
				Description("Versioning and changelog tooling for releases").
				Value(&choices.Changesets),
			huh.NewConfirm().
				Key("eslint").
				Title("Keep ESLint?").
				Description("Lint configuration and the lint scripts").
				Value(&choices.ESLint),
			huh.NewConfirm().
				Key("nix").
				Title("Keep the Nix flake?").
				Description("Reproducible development environment (flake.nix, .envrc)").
				Value(&choices.Nix),
			huh.NewConfirm().
				Key("workflows").
				Title("Keep GitHub workflows?").
				Description("CI configuration under .github/workflows").
				Value(&choices.Workflows),
		),
	).WithTheme(GetTheme())
}

// CreateIdentityForm builds the Expo identity prompts. Scheme, bundle
// identifier and package may be left empty to keep the template's
// values; name and slug are required.
func CreateIdentityForm(identity *domain.AppIdentity) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("App name").
				Description("Display name shown under the app icon").
				Value(&identity.Name).
				Validate(ValidateRequired),
			huh.NewInput().
				Key("slug").
				Title("Slug").
				Description("URL-friendly project identifier").
				Value(&identity.Slug).
				Validate(ValidateSlug),
			huh.NewInput().
				Key("scheme").
				Title("URL scheme").
				Description("Deep-link scheme, as in myapp://").
				Value(&identity.Scheme).
				Validate(ValidateScheme),
			huh.NewInput().
				Key("ios_bundle_id").
				Title("iOS bundle identifier").
				Placeholder("com.example.myapp").
				Value(&identity.IOSBundleID).
				Validate(ValidateBundleID),
			huh.NewInput().
				Key("android_package").
				Title("Android package").
				Placeholder("com.example.myapp").
				Value(&identity.AndroidPackage).
				Validate(ValidateAndroidPackage),
		),
	).WithTheme(GetTheme())
}

// CreateOverwriteForm builds the confirmation shown before scaffolding
// into a directory that already has files in it.
func CreateOverwriteForm(dir string, proceed *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Key("overwrite").
				Title(fmt.Sprintf("Directory %s is not empty. Scaffold anyway?", dir)).
				Description("Existing files with the same names will be overwritten").
				Value(proceed),
		),
	).WithTheme(GetTheme())
}

// RunForm runs a form and normalizes its errors. Cancelling with
// ctrl+c or esc becomes domain.ErrAborted. Setting ACCESSIBLE in the
// environment switches huh to its screen-reader friendly mode.
func RunForm(form *huh.Form) error {
	if os.Getenv("ACCESSIBLE") != "" {
		form = form.WithAccessible(true)
	}
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return domain.ErrAborted
		}
		return fmt.Errorf("prompt failed: %w", err)
	}
	return nil
}

// DefaultIdentity seeds the identity form from the project directory
// name. Fields a directory name cannot supply fall back to the
// template's own identity, with the final segment of reverse-DNS
// identifiers swapped for the derived slug.
func DefaultIdentity(dirName string, template domain.AppIdentity) domain.AppIdentity {
	slug := Slugify(dirName)
	if slug == "" {
		return template
	}
	compact := strings.ReplaceAll(slug, "-", "")

	identity := domain.AppIdentity{
		Name:           dirName,
		Slug:           slug,
		Scheme:         compact,
		IOSBundleID:    replaceLastSegment(template.IOSBundleID, compact),
		AndroidPackage: replaceLastSegment(template.AndroidPackage, compact),
	}
	return identity
}

// replaceLastSegment swaps the leaf of a reverse-DNS identifier, so
// com.example.template becomes com.example.myapp. Identifiers without
// dots are returned unchanged.
func replaceLastSegment(id, leaf string) string {
	idx := strings.LastIndex(id, ".")
	if idx < 0 {
		return id
	}
	return id[:idx+1] + leaf
}
