package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"
	"wine-diary/cmd/config"
	migration "wine-diary/cmd/database/migrate"
	"wine-diary/internal/utils"
	"wine-diary/internal/utils/storage"

	"github.com/gofiber/fiber/v2/log"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var (
	configPath     string
	migrateOnServe bool
)

var rootCmd = &cobra.Command{
	Use:   "wine-diary",
	Short: "Wine tasting journal API",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		utils.LoadConfig(configPath)
	},
	SilenceUsage: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Serve connects to PostgreSQL and starts the HTTP API on APP_PORT.

Example:
  wine-diary serve
  wine-diary serve --migrate --config ./config.yaml`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	Args:  cobra.NoArgs,
	RunE:  runMigrate,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "path to the YAML config file")
	serveCmd.Flags().BoolVar(&migrateOnServe, "migrate", false, "run schema migration before serving")

	rootCmd.AddCommand(serveCmd, migrateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	if utils.GetConfig("JWT_SECRET") == "" {
		return errors.New("JWT_SECRET is not configured")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := config.ConnectDB()
	if err != nil {
		return err
	}
	defer func() {
		if err := config.CloseDB(db); err != nil {
			log.Errorw("closing database", "err", err)
		}
	}()
	log.Info("Connected to PostgreSQL")

	if migrateOnServe {
		if err := migration.Migrate(db); err != nil {
			return err
		}
	}

	s3, err := storage.NewAwsS3(ctx)
	if err != nil {
		return err
	}

	app, closeLog, err := config.NewApp(db, s3)
	if err != nil {
		return err
	}
	defer closeLog()

	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%s", utils.GetConfig("APP_PORT"))
		log.Infof("Server running on %s", addr)
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down")
	return app.ShutdownWithTimeout(shutdownTimeout)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	db, err := config.ConnectDB()
	if err != nil {
		return err
	}
	defer config.CloseDB(db)

	return migration.Migrate(db)
}
