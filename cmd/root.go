package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sonicmigrate/internal/config"
	"sonicmigrate/internal/migration"
	"sonicmigrate/internal/network"
	"sonicmigrate/internal/ui"
	"sonicmigrate/pkg/logging"
)

var (
	dryRun      bool
	verbose     bool
	noColor     bool
	noSpinner   bool
	networkFlag string
)

// rootCmd represents the base command: running `sonic-migrate [path]`
// performs the migration itself.
var rootCmd = &cobra.Command{
	Use:   "sonic-migrate [path]",
	Short: "Migrate Solana Anchor projects to the Sonic network",
	Long: `sonic-migrate rewrites an Anchor project's Anchor.toml to target a Sonic
network: the provider cluster is pointed at the network's RPC endpoint and
the [programs.localnet] section is moved under the network's section name.

A backup of the original Anchor.toml is written to Anchor.toml.bak before
any change; 'sonic-migrate restore' puts it back.`,
	Args: cobra.MaximumNArgs(1),
	// SilenceUsage is set to true to prevent printing usage message on
	// errors handled by us (e.g. invalid project paths)
	SilenceUsage: true,
	// Runs before every subcommand, so --no-color takes effect even for
	// commands that do not load the settings file.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor {
			ui.DisableColors()
		}
	},
	RunE: runMigrate,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "sonic-migrate version %s\n" .Version}}`)

	if err := rootCmd.Execute(); err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newRestoreCmd())
	rootCmd.AddCommand(newNetworksCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())

	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show changes without applying them")
	rootCmd.Flags().StringVarP(&networkFlag, "network", "n", "", "Target Sonic network (testnet, mainnet-alpha)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable detailed logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&noSpinner, "no-spinner", false, "Disable the progress spinner")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	settings, err := config.Load()
	if err != nil {
		return err
	}
	setupLogging(settings)
	setupColors(settings)

	path := "."
	if len(args) == 1 {
		path = args[0]
	}

	net, err := resolveNetwork(settings)
	if err != nil {
		return err
	}

	logging.Debug("cli", "starting sonic-migrate, target network %s", net)

	var result *migration.Result
	task := func() error {
		r, runErr := migration.Run(migration.Options{
			Path:    path,
			DryRun:  dryRun,
			Network: net,
		})
		result = r
		return runErr
	}

	message := fmt.Sprintf("Migrating project to Sonic %s...", net)
	if err := runWithSpinner(settings, message, task); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if dryRun {
		fmt.Fprintln(out, ui.Warning("Dry run enabled. Changes not written."))
		fmt.Fprintln(out, ui.Info(result.Rendered))
		return nil
	}

	fmt.Fprintln(out, ui.Success("Migration successful!"))
	fmt.Fprintln(out, ui.Warning("Next steps:"))
	fmt.Fprintln(out, "1. Update your dependencies.")
	fmt.Fprintln(out, "2. Test your project.")
	fmt.Fprintf(out, "3. Deploy to Sonic %s.\n", result.Network.DisplayName())
	fmt.Fprintf(out, "\n%s\n", ui.Info("Network Information:"))
	fmt.Fprintf(out, "%s RPC URL: %s\n", result.Network.DisplayName(), ui.Styles.Endpoint.Render(result.Network.Endpoint()))
	fmt.Fprintf(out, "\n%s\n", ui.Warning("To learn more about additional networks, run:"))
	fmt.Fprintln(out, "  sonic-migrate networks")
	return nil
}

// resolveNetwork picks the target: flag first, then the settings file,
// otherwise the built-in default.
func resolveNetwork(settings config.Settings) (network.Network, error) {
	if networkFlag != "" {
		return network.Parse(networkFlag)
	}
	if settings.DefaultNetwork != "" {
		net, err := network.Parse(settings.DefaultNetwork)
		if err != nil {
			return "", fmt.Errorf("invalid defaultNetwork in config: %w", err)
		}
		return net, nil
	}
	return network.Default, nil
}

func setupLogging(settings config.Settings) {
	level := logging.LevelWarn
	if verbose || settings.Verbose {
		level = logging.LevelDebug
	}
	logging.Init(level, os.Stderr)
}

func setupColors(settings config.Settings) {
	if noColor || settings.NoColor {
		ui.DisableColors()
	}
}

func runWithSpinner(settings config.Settings, message string, task func() error) error {
	if noSpinner || settings.NoSpinner {
		return task()
	}
	return ui.WithSpinner(message, task)
}
