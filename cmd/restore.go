package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"sonicmigrate/internal/config"
	"sonicmigrate/internal/migration"
	"sonicmigrate/internal/ui"
)

func newRestoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore [path]",
		Short: "Restore Anchor.toml from the backup created by a migration",
		Long: `Copies Anchor.toml.bak back over Anchor.toml and removes the backup file.
Fails when no backup exists for the given project path.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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

			task := func() error { return migration.Restore(path) }
			if err := runWithSpinner(settings, "Restoring from backup...", task); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Success("Restore complete."))
			return nil
		},
	}
}
