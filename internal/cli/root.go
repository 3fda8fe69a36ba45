// Package cli implements the nutrition command tree.
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"nutrition/internal/adapter/memory"
	"nutrition/internal/adapter/postgres"
	"nutrition/internal/app"
	"nutrition/internal/config"
	"nutrition/internal/domain"
	"nutrition/internal/logger"
)

// NewRootCmd builds the nutrition command and its subcommands.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "nutrition",
		Short: "Daily nutrition tracking: food log, macro goals and food search",
		Long: `nutrition tracks what was eaten today against calorie and macro goals
and searches a food catalog.

Configuration comes from the environment (optionally a .env file) and an
optional YAML goals file named by GOALS_FILE.`,
		SilenceUsage: true,
	}

	root.AddCommand(newServeCmd())
	root.AddCommand(newSearchCmd())
	root.AddCommand(newStatsCmd())
	root.AddCommand(newLogCmd())
	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// deps holds the services shared by every subcommand.
type deps struct {
	cfg       *config.Config
	log       *zap.Logger
	nutrition *app.NutritionService
	search    *app.SearchService
	history   *app.HistoryService
	close     func()
}

// setup loads configuration and wires the store and services. DATABASE_URL
// selects PostgreSQL; otherwise an in-memory store is used.
func setup(ctx context.Context) (*deps, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log, err := logger.New(cfg.LogLevel, cfg.LogDev)
	if err != nil {
		return nil, err
	}

	var (
		catalog domain.FoodCatalog
		entries domain.FoodLogRepository
		closeFn = func() { _ = log.Sync() }
	)

	if cfg.DatabaseURL != "" {
		db, err := postgres.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("db open: %w", err)
		}
		if cfg.Seed {
			seeded, err := db.SeedCatalog(ctx, memory.ReferenceCatalog())
			if err != nil {
				_ = db.Close()
				return nil, err
			}
			if seeded {
				log.Info("seeded food catalog")
			}
		}
		catalog, entries = db, db
		closeFn = func() {
			_ = db.Close()
			_ = log.Sync()
		}
	} else {
		var mem *memory.DB
		if cfg.Seed {
			mem = memory.NewSeeded(time.Now())
		} else {
			mem = memory.New(nil)
		}
		log.Info("using in-memory store", zap.Bool("seeded", cfg.Seed))
		catalog, entries = mem, mem
	}

	return &deps{
		cfg:       cfg,
		log:       log,
		nutrition: app.NewNutritionService(entries, catalog, cfg.Goals),
		search:    app.NewSearchService(catalog),
		history:   app.NewHistoryService(entries),
		close:     closeFn,
	}, nil
}

func today() string {
	return time.Now().In(time.Local).Format("2006-01-02")
}
