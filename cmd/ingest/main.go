// Command ingest loads an exported candidate profile CSV into the
// relational candidate database.
//
// Usage:
//
//	ingest profiles.csv
//	ingest profiles.csv --dry-run
//	ingest setup
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/JonMunkholm/CandidateDB/internal/config"
	"github.com/JonMunkholm/CandidateDB/internal/core"
	"github.com/JonMunkholm/CandidateDB/internal/database"
	"github.com/JonMunkholm/CandidateDB/internal/logging"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dryRun bool

	root := &cobra.Command{
		Use:   "ingest <csv file>",
		Short: "Convert an exported profile CSV into the candidate database",
		Long: `Loads a wide flattened profile export and normalizes it into the
relational candidate schema: one candidate row per input row, with
education, experience, skill, language and website child records.

Each input row commits in its own transaction, so a malformed row is
logged and skipped without aborting the batch.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIngest(cmd.Context(), args[0], dryRun)
		},
	}

	root.Flags().BoolVar(&dryRun, "dry-run", false, "load and preview the CSV without writing to the database")

	root.AddCommand(&cobra.Command{
		Use:           "setup",
		Short:         "Create the candidate schema tables",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetup(cmd.Context())
		},
	})

	return root
}

// loadConfig wires env file, configuration, logging and the core knobs.
func loadConfig() (*config.Config, error) {
	// Overload overwrites existing env vars with .env values
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	core.MaxFileSize = cfg.Ingest.MaxFileSize
	core.ProgressLogEvery = cfg.Ingest.ProgressLogEvery

	return cfg, nil
}

// connect builds the pgx pool and verifies the database is reachable.
func connect(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}
	poolConfig.MaxConns = int32(cfg.Database.MaxConns)
	poolConfig.MinConns = int32(cfg.Database.MinConns)

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrStoreUnavailable, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%w: %v", core.ErrStoreUnavailable, err)
	}

	if u, err := url.Parse(cfg.Database.URL); err == nil {
		slog.Info("connected to database", "name", strings.TrimPrefix(u.Path, "/"))
	}

	return pool, nil
}

func runIngest(ctx context.Context, path string, dryRun bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if !strings.EqualFold(filepath.Ext(path), ".csv") {
		return fmt.Errorf("%w: %s is not a .csv file", core.ErrSourceUnreadable, path)
	}

	table, err := core.LoadTable(path)
	if err != nil {
		return err
	}
	slog.Info("loaded CSV", "file", path, "rows", len(table.Rows))

	if dryRun {
		preview := core.BuildPreview(table)
		slog.Info("dry run: table preview", "rows", preview.RowCount, "columns", preview.Columns)
		for _, field := range []string{"full_name", "email", "current_company", "location_name"} {
			if v, ok := preview.Sample[field]; ok {
				slog.Info("dry run: sample field", "field", field, "value", v)
			}
		}
		slog.Info("dry run complete, nothing was written")
		return nil
	}

	pool, err := connect(ctx, cfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	service := core.NewService(core.NewPgStore(pool))

	summary, err := service.ProcessAll(ctx, table.Rows)
	if err != nil {
		return err
	}

	slog.Info("conversion results",
		"total", summary.Total,
		"success", summary.Success,
		"failed", summary.Failed,
		"success_rate", fmt.Sprintf("%.1f%%", summary.SuccessRate()),
	)

	if summary.Failed > 0 {
		return fmt.Errorf("%d of %d rows failed", summary.Failed, summary.Total)
	}
	return nil
}

func runSetup(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	pool, err := connect(ctx, cfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := database.CreateSchema(ctx, pool); err != nil {
		return err
	}

	slog.Info("schema created")
	return nil
}
