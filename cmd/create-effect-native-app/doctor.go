package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/effect-native/examples/internal/config"
)

// packageManagers in detection order; the first one on PATH wins.
var packageManagers = []string{"pnpm", "npm", "yarn", "bun"}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the development environment",
	Long:  "Verifies that the tools a scaffolded project needs are installed and configured.",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Checking development environment...")
		allPassed := true

		// Check 1: node
		fmt.Print("  node: ")
		if path, err := execLookPath("node"); err == nil {
			fmt.Printf("OK (%s)\n", path)
		} else {
			fmt.Println("FAILED")
			allPassed = false
		}

		// Check 2: a JS package manager
		fmt.Print("  package manager: ")
		if pm := findPackageManager(); pm != "" {
			fmt.Printf("OK (%s)\n", pm)
		} else {
			fmt.Println("FAILED (install pnpm, npm, yarn or bun)")
			allPassed = false
		}

		// Check 3: git
		fmt.Print("  git: ")
		if path, err := execLookPath("git"); err == nil {
			fmt.Printf("OK (%s)\n", path)
		} else {
			fmt.Println("NOT FOUND (--git will be skipped)")
		}

		// Check 4: watchman
		fmt.Print("  watchman: ")
		if _, err := execLookPath("watchman"); err == nil {
			fmt.Println("OK")
		} else {
			fmt.Println("NOT FOUND (recommended for React Native file watching)")
		}

		// Check 5: java
		fmt.Print("  java: ")
		if _, err := execLookPath("java"); err == nil {
			fmt.Println("OK")
		} else {
			fmt.Println("NOT FOUND (required for Android builds)")
		}

		// Check 6: Android SDK
		fmt.Print("  Android SDK: ")
		if sdk := checkAndroidSDK(); sdk != "" {
			fmt.Printf("OK (%s)\n", sdk)
		} else {
			fmt.Println("NOT FOUND (set ANDROID_HOME for Android builds)")
		}

		// Check 7: Config file
		fmt.Print("  Config file: ")
		if _, err := config.Load(); err != nil {
			fmt.Printf("WARN (%v)\n", err)
		} else {
			fmt.Println("OK")
		}

		// Check 8: Cache directory
		fmt.Print("  Cache directory: ")
		cacheDir := config.CacheDir()
		if checkCacheDir(cacheDir) {
			fmt.Printf("OK (%s)\n", cacheDir)
		} else {
			fmt.Println("WARN (will be created on first use)")
		}

		fmt.Println()
		if allPassed {
			fmt.Println("All critical checks passed!")
		} else {
			fmt.Println("Some checks failed. Please resolve the issues above.")
		}
		return nil
	},
}

// findPackageManager returns the first package manager found on PATH.
func findPackageManager() string {
	for _, pm := range packageManagers {
		if _, err := execLookPath(pm); err == nil {
			return pm
		}
	}
	return ""
}

// detectPackageManager picks the package manager the next-steps output
// names: the configured one, else the first found on PATH, else npm
// since it ships with node.
func detectPackageManager(cfg *config.Config) string {
	if cfg != nil && cfg.Scaffold.PackageManager != "" {
		return cfg.Scaffold.PackageManager
	}
	if pm := findPackageManager(); pm != "" {
		return pm
	}
	return "npm"
}

// checkAndroidSDK reports the SDK location when ANDROID_HOME (or the
// older ANDROID_SDK_ROOT) points at an existing directory and adb is
// reachable, either on PATH or under platform-tools.
func checkAndroidSDK() string {
	home := os.Getenv("ANDROID_HOME")
	if home == "" {
		home = os.Getenv("ANDROID_SDK_ROOT")
	}
	if home == "" {
		return ""
	}

	info, err := osStat(home)
	if err != nil || !info.IsDir() {
		return ""
	}

	if _, err := execLookPath("adb"); err != nil {
		if _, err := osStat(filepath.Join(home, "platform-tools", "adb")); err != nil {
			return ""
		}
	}
	return home
}

// checkCacheDir checks if the cache directory exists
func checkCacheDir(path string) bool {
	info, err := osStat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
