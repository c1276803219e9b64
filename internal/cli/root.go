// Package cli implements the pet-savings command line.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/go-petr/pet-savings/pkg/configpkg"
)

var configDir string

var rootCmd = &cobra.Command{
	Use:           "pet-savings",
	Short:         "Goal-based automated savings service",
	Long:          "pet-savings keeps a savings ledger per identity and moves idle wallet funds into it on a schedule.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "./configs", "directory holding app.env")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(decideCmd)
	rootCmd.AddCommand(sweepCmd)
}

func loadConfig() (configpkg.Config, error) {
	return configpkg.Load(configDir)
}
