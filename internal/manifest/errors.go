package manifest

import "errors"

// Sentinel errors for the manifest package
var (
	// ErrManifestNotFound indicates the manifest file does not exist
	ErrManifestNotFound = errors.New("manifest file not found")

	// ErrInvalidManifest indicates the document is not valid JSON or YAML
	ErrInvalidManifest = errors.New("invalid manifest document")

	// ErrNoJobs indicates the workflow document has no jobs mapping
	ErrNoJobs = errors.New("workflow has no jobs mapping")
)
