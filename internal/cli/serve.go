package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/go-petr/pet-savings/cmd/httpserver"
	"github.com/go-petr/pet-savings/internal/app"
	"github.com/go-petr/pet-savings/internal/middleware"
	"github.com/go-petr/pet-savings/pkg/dbpkg"
)

var (
	serveMigrate    bool
	serveAutomation bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server and the automation scheduler",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&serveMigrate, "migrate", true, "apply database migrations before serving")
	serveCmd.Flags().BoolVar(&serveAutomation, "automation", true, "run scheduled automation sweeps")
}

func runServe(cmd *cobra.Command, _ []string) error {
	config, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := middleware.CreateLogger(config)

	if serveMigrate && config.DBDriver != app.DriverMemory {
		if err := dbpkg.MigrateUp(config.MigrationURL, config.DBSource); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}

		logger.Info().Msg("database migrated")
	}

	a, err := app.New(config)
	if err != nil {
		return err
	}
	defer a.Close()

	server, err := httpserver.New(a, logger, config)
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx = logger.WithContext(ctx)

	if serveAutomation {
		if err := a.Automation.Start(ctx, config.AutomationCron); err != nil {
			return err
		}
		defer a.Automation.Stop()
	}

	httpServer := &http.Server{
		Addr:              config.ServerAddress,
		Handler:           server,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)

	go func() {
		logger.Info().
			Str("address", config.ServerAddress).
			Str("storage", config.DBDriver).
			Bool("pool", a.Pool != nil).
			Msg("savings api server has started")

		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}

		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return httpServer.Shutdown(shutdownCtx)
}
