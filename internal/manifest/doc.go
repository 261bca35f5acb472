// Package manifest performs field surgery on the files a scaffolded
// project ships with: package.json, Expo's app.json and GitHub Actions
// workflow definitions. Edits touch only the named fields, so generated
// projects keep the key order and content of the template they came
// from.
//
// # package.json
//
//	pkg, err := manifest.LoadPackageJSON(dir)
//	if err != nil {
//	    return err
//	}
//	pkg.RemoveScripts("changeset-version", "changeset-publish")
//	pkg.RemoveDependenciesMatching("devDependencies", "@changesets/")
//	os.WriteFile(filepath.Join(dir, "package.json"), pkg.Bytes(), 0644)
//
// # app.json
//
//	app, err := manifest.LoadAppJSON(dir)
//	if err != nil {
//	    return err
//	}
//	defaults := app.ReadIdentity()
//	app.ApplyIdentity(identity)
//
// # Workflows
//
//	out, remaining, err := manifest.PruneWorkflowJobs(data, "release")
//
// A remaining count of zero means every job was pruned; the caller
// should delete the workflow file instead of writing an empty one.
//
// # Error Handling
//
// The package defines sentinel errors for common failure cases:
//   - ErrManifestNotFound: the manifest file does not exist
//   - ErrInvalidManifest: the document is not valid JSON or YAML
//   - ErrNoJobs: the workflow document has no jobs mapping
package manifest
