package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"travelguide/internal/config"
	"travelguide/internal/infra"
	"travelguide/internal/logger"
	"travelguide/internal/repositories"
	"travelguide/internal/seed"
	"travelguide/internal/services"
	"travelguide/pkg/clock"
)

var seedForce bool

var rootCmd = &cobra.Command{
	Use:           "travelguide-seed",
	Short:         "Database maintenance for the travel guide API",
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, _, err := open()
		if err != nil {
			return err
		}
		defer infra.ClosePostgresql(db)

		if err := infra.Migrate(db); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "schema is up to date")
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Replace all data with the demo catalog",
	Long: `Wipe accounts, destinations, experiences and trips, then load the
embedded demo catalog.

Seeding is refused when APP_ENV is production unless --force is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, cfg, err := open()
		if err != nil {
			return err
		}
		defer infra.ClosePostgresql(db)

		if err := infra.Migrate(db); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}

		catalog, err := seed.Load()
		if err != nil {
			return err
		}
		svc := services.NewSeedService(repositories.NewSeedRepository(db), catalog, &clock.RealClock{}, cfg.IsProduction())

		summary, err := svc.Seed(context.Background(), seedForce)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "seeded %d destinations, %d experiences, %d accounts, %d trips\n",
			summary.Destinations, summary.Experiences, summary.Accounts, summary.Trips)
		return nil
	},
}

func init() {
	seedCmd.Flags().BoolVar(&seedForce, "force", false, "seed even when APP_ENV is production")
	rootCmd.AddCommand(migrateCmd, seedCmd)
}

func open() (*gorm.DB, *config.Config, error) {
	cfg := config.Load()
	log := logger.Setup(cfg)

	db, err := infra.InitPostgresql(cfg.PostgresURL, logger.GormLogger(log))
	if err != nil {
		return nil, nil, err
	}
	return db, cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Error("command failed")
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
