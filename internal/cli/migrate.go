package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-petr/pet-savings/pkg/dbpkg"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply or roll back database migrations",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		config, err := loadConfig()
		if err != nil {
			return err
		}

		if err := dbpkg.MigrateUp(config.MigrationURL, config.DBSource); err != nil {
			return fmt.Errorf("migrate up: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")

		return nil
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back all migrations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		config, err := loadConfig()
		if err != nil {
			return err
		}

		if err := dbpkg.MigrateDown(config.MigrationURL, config.DBSource); err != nil {
			return fmt.Errorf("migrate down: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "migrations rolled back")

		return nil
	},
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
}
