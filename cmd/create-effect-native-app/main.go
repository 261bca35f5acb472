package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"path"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/effect-native/examples/internal/app"
	"github.com/effect-native/examples/internal/catalog"
	"github.com/effect-native/examples/internal/config"
	"github.com/effect-native/examples/internal/domain"
	"github.com/effect-native/examples/internal/repospec"
	"github.com/effect-native/examples/internal/tui"
	"github.com/effect-native/examples/internal/utils"
	"github.com/effect-native/examples/pkg/version"
)

var (
	cfgFile string
	verbose bool
	yes     bool

	// Dependencies for testing
	osStat       = os.Stat
	execLookPath = exec.LookPath
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "create-effect-native-app [directory]",
	Short: "Scaffold an Effect Native project",
	Long: `create-effect-native-app scaffolds a new project from the templates
and examples in the effect-native/examples monorepo, or from any GitHub
repository subtree.

Templates are blank starters whose tooling (Changesets, ESLint, the Nix
flake, GitHub workflows) can be kept or dropped; examples are complete
working programs copied verbatim. Run it without flags for the
interactive flow.`,
	Version: version.Short(),
	Args:    cobra.MaximumNArgs(1),
	RunE:    run,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.create-effect-native-app/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	// Source selection
	rootCmd.Flags().StringP("template", "t", "", "Template to scaffold (basic, expo, expo-router)")
	rootCmd.Flags().StringP("example", "e", "", "Example to scaffold (hello-world, http-client, ...)")
	rootCmd.Flags().StringP("github", "g", "", "GitHub subtree to scaffold (owner/repo[/sub/dir][@ref])")
	rootCmd.MarkFlagsMutuallyExclusive("template", "example", "github")

	// Tooling opt-outs
	rootCmd.Flags().Bool("changesets", true, "Keep Changesets release tooling")
	rootCmd.Flags().Bool("eslint", true, "Keep ESLint configuration")
	rootCmd.Flags().Bool("nix", true, "Keep the Nix flake")
	rootCmd.Flags().Bool("workflows", true, "Keep GitHub workflows")

	// Expo identity
	rootCmd.Flags().String("app-name", "", "App display name (expo templates)")
	rootCmd.Flags().String("slug", "", "Project slug (expo templates)")
	rootCmd.Flags().String("scheme", "", "Deep-link URL scheme (expo templates)")
	rootCmd.Flags().String("ios-bundle-id", "", "iOS bundle identifier (expo templates)")
	rootCmd.Flags().String("android-package", "", "Android package name (expo templates)")

	// Behavior
	rootCmd.Flags().String("ref", "", "Catalog ref to scaffold from (branch, tag or commit)")
	rootCmd.Flags().Bool("git", true, "Initialize a git repository with an initial commit")
	rootCmd.Flags().Bool("force", false, "Scaffold into a non-empty directory")
	rootCmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip prompts and accept defaults")

	// Bind flags to viper
	_ = viper.BindPFlag("scaffold.git_init", rootCmd.Flags().Lookup("git"))
	_ = viper.BindPFlag("catalog.ref", rootCmd.Flags().Lookup("ref"))

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

// cliOptions carries the root command's flag values so the resolution
// helpers stay independent of cobra.
type cliOptions struct {
	template string
	example  string
	github   string

	changesets bool
	eslint     bool
	nix        bool
	workflows  bool
	toolingSet bool

	appName        string
	slug           string
	scheme         string
	iosBundleID    string
	androidPackage string
	identitySet    bool

	force bool
	yes   bool
}

func readCLIOptions(cmd *cobra.Command) cliOptions {
	flags := cmd.Flags()

	opts := cliOptions{yes: yes}
	opts.template, _ = flags.GetString("template")
	opts.example, _ = flags.GetString("example")
	opts.github, _ = flags.GetString("github")

	opts.changesets, _ = flags.GetBool("changesets")
	opts.eslint, _ = flags.GetBool("eslint")
	opts.nix, _ = flags.GetBool("nix")
	opts.workflows, _ = flags.GetBool("workflows")
	opts.toolingSet = flags.Changed("changesets") || flags.Changed("eslint") ||
		flags.Changed("nix") || flags.Changed("workflows")

	opts.appName, _ = flags.GetString("app-name")
	opts.slug, _ = flags.GetString("slug")
	opts.scheme, _ = flags.GetString("scheme")
	opts.iosBundleID, _ = flags.GetString("ios-bundle-id")
	opts.androidPackage, _ = flags.GetString("android-package")
	opts.identitySet = flags.Changed("app-name") || flags.Changed("slug") ||
		flags.Changed("scheme") || flags.Changed("ios-bundle-id") ||
		flags.Changed("android-package")

	opts.force, _ = flags.GetBool("force")
	return opts
}

func run(cmd *cobra.Command, args []string) error {
	// Initialize logger
	logLevel := "info"
	if verbose {
		logLevel = "debug"
	}
	logger := utils.NewLogger(utils.LoggerOptions{
		Level:   logLevel,
		Format:  "pretty",
		Verbose: verbose,
	})

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	opts := readCLIOptions(cmd)

	entry, reference, tryLocal, err := resolveSource(opts, cfg)
	if err != nil {
		return err
	}

	directory, err := resolveDirectory(args, entry, reference, opts)
	if err != nil {
		return err
	}

	tooling, err := resolveTooling(opts, entry)
	if err != nil {
		return err
	}

	identity, err := resolveIdentity(opts, entry, directory)
	if err != nil {
		return err
	}

	force, err := confirmOverwrite(directory, opts)
	if err != nil {
		return err
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		logger.Info().Msg("Shutting down gracefully...")
		cancel()
	}()

	scaffolder, err := app.NewScaffolder(app.ScaffolderOptions{
		Config:  cfg,
		Logger:  logger,
		Verbose: verbose,
	})
	if err != nil {
		return fmt.Errorf("failed to create scaffolder: %w", err)
	}
	defer scaffolder.Close()

	req := app.Request{
		Entry:     entry,
		Reference: reference,
		Directory: directory,
		TryLocal:  tryLocal,
		Tooling:   tooling,
		Identity:  identity,
		Force:     force,
		GitInit:   cfg.Scaffold.GitInit,
	}

	if _, err := scaffolder.Scaffold(ctx, req); err != nil {
		if errors.Is(err, domain.ErrDestinationNotEmpty) {
			return fmt.Errorf("%w (pass --force to scaffold anyway)", err)
		}
		return err
	}

	fmt.Println()
	fmt.Println(tui.RenderNextSteps(directory, detectPackageManager(cfg), entry.Family))
	return nil
}

// resolveSource turns the selection flags into a catalog entry and the
// repository reference to materialize. Catalog entries may use the
// local-checkout shortcut; raw --github subtrees always download.
func resolveSource(opts cliOptions, cfg *config.Config) (catalog.Entry, domain.RepoReference, bool, error) {
	if opts.github != "" {
		ref, err := repospec.Parse(opts.github)
		if err != nil {
			return catalog.Entry{}, domain.RepoReference{}, false, err
		}
		return catalog.Entry{}, ref, false, nil
	}

	kind, name := catalog.KindTemplate, opts.template
	if opts.example != "" {
		kind, name = catalog.KindExample, opts.example
	}

	if name == "" {
		if opts.yes {
			name = "basic"
		} else {
			var choice string
			if err := tui.RunForm(tui.CreatePickerForm(&choice)); err != nil {
				return catalog.Entry{}, domain.RepoReference{}, false, err
			}
			kind, name = tui.SplitPickerChoice(choice)
		}
	}

	entry, err := catalog.Lookup(kind, name)
	if err != nil {
		return catalog.Entry{}, domain.RepoReference{}, false, err
	}
	return *entry, entry.Reference(cfg.Catalog.Owner, cfg.Catalog.Repo, cfg.Catalog.Ref), true, nil
}

func resolveDirectory(args []string, entry catalog.Entry, ref domain.RepoReference, opts cliOptions) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	dir := defaultDirectory(entry, ref)
	if opts.yes {
		return dir, nil
	}

	if err := tui.RunForm(tui.CreateDirectoryForm(&dir)); err != nil {
		return "", err
	}
	return dir, nil
}

// defaultDirectory names the destination after what is being scaffolded.
func defaultDirectory(entry catalog.Entry, ref domain.RepoReference) string {
	if entry.Name != "" {
		return entry.Name
	}
	if ref.Subdir != "" {
		return path.Base(ref.Subdir)
	}
	return ref.Repo
}

// resolveTooling reads the opt-out flags and, for interactive basic
// template runs with no tooling flag given, asks instead.
func resolveTooling(opts cliOptions, entry catalog.Entry) (domain.ToolingChoices, error) {
	choices := domain.ToolingChoices{
		Changesets: opts.changesets,
		ESLint:     opts.eslint,
		Nix:        opts.nix,
		Workflows:  opts.workflows,
	}

	if entry.Kind != catalog.KindTemplate || entry.Family != catalog.FamilyBasic {
		return choices, nil
	}
	if opts.yes || opts.toolingSet {
		return choices, nil
	}

	if err := tui.RunForm(tui.CreateToolingForm(&choices)); err != nil {
		return choices, err
	}
	return choices, nil
}

// resolveIdentity validates the identity flags and, for expo templates,
// fills the gaps: defaults derived from the directory name, then the
// interactive form unless flags or --yes decided already.
func resolveIdentity(opts cliOptions, entry catalog.Entry, directory string) (domain.AppIdentity, error) {
	identity := domain.AppIdentity{
		Name:           opts.appName,
		Slug:           opts.slug,
		Scheme:         opts.scheme,
		IOSBundleID:    opts.iosBundleID,
		AndroidPackage: opts.androidPackage,
	}
	if err := validateIdentityFlags(identity); err != nil {
		return domain.AppIdentity{}, err
	}

	if entry.Family != catalog.FamilyExpo {
		return identity, nil
	}

	if identity == (domain.AppIdentity{}) {
		identity = tui.DefaultIdentity(filepath.Base(directory), domain.AppIdentity{})
	}
	if opts.yes || opts.identitySet {
		return identity, nil
	}

	if err := tui.RunForm(tui.CreateIdentityForm(&identity)); err != nil {
		return identity, err
	}
	return identity, nil
}

func validateIdentityFlags(identity domain.AppIdentity) error {
	if identity.Slug != "" {
		if err := tui.ValidateSlug(identity.Slug); err != nil {
			return fmt.Errorf("--slug: %w", err)
		}
	}
	if err := tui.ValidateScheme(identity.Scheme); err != nil {
		return fmt.Errorf("--scheme: %w", err)
	}
	if err := tui.ValidateBundleID(identity.IOSBundleID); err != nil {
		return fmt.Errorf("--ios-bundle-id: %w", err)
	}
	if err := tui.ValidateAndroidPackage(identity.AndroidPackage); err != nil {
		return fmt.Errorf("--android-package: %w", err)
	}
	return nil
}

// confirmOverwrite asks before scaffolding into a non-empty directory.
// Non-interactive runs skip the question; the scaffolder then refuses
// unless --force was given.
func confirmOverwrite(directory string, opts cliOptions) (bool, error) {
	if opts.force || opts.yes {
		return opts.force, nil
	}

	dest, err := filepath.Abs(directory)
	if err != nil {
		return opts.force, nil
	}
	if !utils.DirExists(dest) {
		return opts.force, nil
	}
	empty, err := utils.IsDirEmpty(dest)
	if err != nil || empty {
		return opts.force, nil
	}

	var proceed bool
	if err := tui.RunForm(tui.CreateOverwriteForm(directory, &proceed)); err != nil {
		return opts.force, err
	}
	if !proceed {
		return opts.force, domain.ErrAborted
	}
	return true, nil
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available templates and examples",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(tui.RenderCatalog(catalog.Templates(), catalog.Examples()))
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Full())
	},
}
