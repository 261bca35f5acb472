package app

import (
	"errors"
	"os"
	"path/filepath"
	"slices"

	"github.com/effect-native/examples/internal/domain"
	"github.com/effect-native/examples/internal/manifest"
	"github.com/effect-native/examples/internal/utils"
)

// Tooling opt-out recipes. Each names the files, scripts, dependency
// prefixes and workflow jobs a template ships for that tool.
var (
	changesetScripts  = []string{"changeset-version", "changeset-publish"}
	changesetPrefixes = []string{"@changesets/"}

	eslintFiles    = []string{"eslint.config.mjs"}
	eslintScripts  = []string{"lint", "lint-fix"}
	eslintPrefixes = []string{"eslint", "@eslint/", "typescript-eslint"}

	nixFiles = []string{"flake.nix", "flake.lock", ".envrc"}
)

// RenameGitignore restores the dot-name of an ignore file shipped as
// "gitignore" or "_gitignore". Template sources store it undotted so
// the template's rules do not apply to the source repository itself.
func RenameGitignore(dir string) error {
	dst := filepath.Join(dir, ".gitignore")
	for _, name := range []string{"gitignore", "_gitignore"} {
		src := filepath.Join(dir, name)
		if _, err := os.Stat(src); err != nil {
			continue
		}
		if _, err := os.Stat(dst); err == nil {
			// The scaffold already carries a real .gitignore.
			return os.Remove(src)
		}
		return os.Rename(src, dst)
	}
	return nil
}

// SetPackageName points package.json's name at the project directory.
func SetPackageName(dir, name string) error {
	pkg, err := manifest.LoadPackageJSON(dir)
	if err != nil {
		if errors.Is(err, manifest.ErrManifestNotFound) {
			return nil
		}
		return err
	}
	if err := pkg.SetName(name); err != nil {
		return err
	}
	return writePackageJSON(dir, pkg)
}

// RemoveChangesets strips the release tooling: the .changeset
// directory, the changeset scripts and devDependencies, and the
// release workflow job.
func RemoveChangesets(dir string) error {
	if err := os.RemoveAll(filepath.Join(dir, ".changeset")); err != nil {
		return err
	}
	if err := cleanPackageJSON(dir, changesetScripts, changesetPrefixes); err != nil {
		return err
	}
	return PruneWorkflowJob(dir, "release")
}

// RemoveESLint strips the lint tooling: the flat config file, the lint
// scripts and devDependencies, and the lint workflow job.
func RemoveESLint(dir string) error {
	if err := removeFiles(dir, eslintFiles); err != nil {
		return err
	}
	if err := cleanPackageJSON(dir, eslintScripts, eslintPrefixes); err != nil {
		return err
	}
	return PruneWorkflowJob(dir, "lint")
}

// RemoveNix deletes the Nix development environment files.
func RemoveNix(dir string) error {
	return removeFiles(dir, nixFiles)
}

// RemoveWorkflows deletes .github/workflows, and .github itself when
// nothing else lives there.
func RemoveWorkflows(dir string) error {
	if err := os.RemoveAll(filepath.Join(dir, ".github", "workflows")); err != nil {
		return err
	}
	githubDir := filepath.Join(dir, ".github")
	if empty, err := utils.IsDirEmpty(githubDir); err == nil && empty {
		return os.Remove(githubDir)
	}
	return nil
}

// PruneWorkflowJob removes one job from every workflow file under
// .github/workflows. Files whose jobs mapping empties out are deleted;
// files that never mention the job stay byte-identical.
func PruneWorkflowJob(dir, job string) error {
	workflows, err := workflowFiles(dir)
	if err != nil {
		return err
	}

	for _, path := range workflows {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		names, err := manifest.JobNames(data)
		if err != nil || !slices.Contains(names, job) {
			continue
		}

		out, remaining, err := manifest.PruneWorkflowJobs(data, job)
		if err != nil {
			return err
		}
		if remaining == 0 {
			if err := os.Remove(path); err != nil {
				return err
			}
			continue
		}
		if err := os.WriteFile(path, out, 0644); err != nil {
			return err
		}
	}
	return nil
}

// ApplyIdentity rewrites app.json with the chosen Expo identity.
func ApplyIdentity(dir string, identity domain.AppIdentity) error {
	appJSON, err := manifest.LoadAppJSON(dir)
	if err != nil {
		if errors.Is(err, manifest.ErrManifestNotFound) {
			return nil
		}
		return err
	}
	if err := appJSON.ApplyIdentity(identity); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "app.json"), appJSON.Bytes(), 0644)
}

func cleanPackageJSON(dir string, scripts, prefixes []string) error {
	pkg, err := manifest.LoadPackageJSON(dir)
	if err != nil {
		if errors.Is(err, manifest.ErrManifestNotFound) {
			return nil
		}
		return err
	}
	if err := pkg.RemoveScripts(scripts...); err != nil {
		return err
	}
	if _, err := pkg.RemoveDependenciesMatching("devDependencies", prefixes...); err != nil {
		return err
	}
	return writePackageJSON(dir, pkg)
}

func writePackageJSON(dir string, pkg *manifest.PackageJSON) error {
	return os.WriteFile(filepath.Join(dir, "package.json"), pkg.Bytes(), 0644)
}

func removeFiles(dir string, names []string) error {
	for _, name := range names {
		if err := os.Remove(filepath.Join(dir, name)); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}

func workflowFiles(dir string) ([]string, error) {
	base := filepath.Join(dir, ".github", "workflows")
	matches, err := filepath.Glob(filepath.Join(base, "*.yml"))
	if err != nil {
		return nil, err
	}
	yaml, err := filepath.Glob(filepath.Join(base, "*.yaml"))
	if err != nil {
		return nil, err
	}
	return append(matches, yaml...), nil
}
