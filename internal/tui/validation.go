package tui

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	slugPattern           = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	schemePattern         = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*$`)
	bundleIDPattern       = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9-]*(?:\.[a-zA-Z][a-zA-Z0-9-]*)+$`)
	androidPackagePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*(?:\.[a-zA-Z][a-zA-Z0-9_]*)+$`)

	slugInvalidRunes = regexp.MustCompile(`[^a-z0-9-]+`)
	slugHyphenRuns   = regexp.MustCompile(`-{2,}`)
)

// ValidateRequired checks that the input is not empty or whitespace.
func ValidateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("value cannot be empty")
	}
	return nil
}

// ValidateSlug checks an Expo slug: lowercase letters, digits and
// single hyphens, starting and ending with a letter or digit.
func ValidateSlug(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("slug cannot be empty")
	}
	if !slugPattern.MatchString(s) {
		return fmt.Errorf("slug must contain only lowercase letters, digits and hyphens")
	}
	return nil
}

// ValidateScheme checks a deep-link URL scheme per RFC 3986: a letter
// followed by letters, digits, '+', '-' or '.'. Empty input is allowed
// and keeps the template's scheme.
func ValidateScheme(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if !schemePattern.MatchString(s) {
		return fmt.Errorf("scheme must start with a letter and contain only letters, digits, '+', '-' or '.'")
	}
	return nil
}

// ValidateBundleID checks an iOS bundle identifier: two or more
// dot-separated segments of letters, digits and hyphens, each starting
// with a letter. Empty input is allowed and keeps the template's value.
func ValidateBundleID(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if !bundleIDPattern.MatchString(s) {
		return fmt.Errorf("bundle identifier must look like com.example.myapp")
	}
	return nil
}

// ValidateAndroidPackage checks an Android application ID: two or more
// dot-separated segments of letters, digits and underscores, each
// starting with a letter. Empty input is allowed and keeps the
// template's value.
func ValidateAndroidPackage(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if !androidPackagePattern.MatchString(s) {
		return fmt.Errorf("package must look like com.example.myapp")
	}
	return nil
}

// Slugify derives a valid Expo slug from a free-form name: lowercased,
// spaces and underscores become hyphens, everything else non-alphanumeric
// is dropped. Returns "" when nothing usable remains.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "_", "-")
	s = slugInvalidRunes.ReplaceAllString(s, "")
	s = slugHyphenRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
