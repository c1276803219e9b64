package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/go-petr/pet-savings/internal/app"
	"github.com/go-petr/pet-savings/internal/middleware"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Run one automation sweep over all autonomous accounts and exit",
	RunE: func(cmd *cobra.Command, _ []string) error {
		config, err := loadConfig()
		if err != nil {
			return err
		}

		a, err := app.New(config)
		if err != nil {
			return err
		}
		defer a.Close()

		logger := middleware.CreateLogger(config)

		sum, err := a.Automation.RunOnce(logger.WithContext(cmd.Context()))
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")

		return enc.Encode(sum)
	},
}
