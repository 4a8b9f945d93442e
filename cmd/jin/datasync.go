package main

import (
	"context"
	"fmt"
	"time"

	"github.com/avast/retry-go"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/jin/internal/config"
	"github.com/at-ishikawa/jin/internal/database"
	"github.com/at-ishikawa/jin/internal/datasync"
	"github.com/at-ishikawa/jin/internal/vocabulary"
	"github.com/at-ishikawa/jin/schemas"
)

const databasePingAttempts = 5

func newMigrateSchemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Apply the database schema migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("loadConfig() > %w", err)
			}
			db, err := openDatabase(ctx, cfg.Database)
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			migrations, err := database.LoadMigrations(schemas.Migrations, schemas.MigrationsDir)
			if err != nil {
				return fmt.Errorf("database.LoadMigrations() > %w", err)
			}
			applied, err := database.ApplyMigrations(ctx, db, migrations)
			for _, version := range applied {
				_, _ = fmt.Fprintf(out, "  applied %s\n", version)
			}
			if err != nil {
				return fmt.Errorf("database.ApplyMigrations() > %w", err)
			}
			if len(applied) == 0 {
				_, _ = fmt.Fprintln(out, "Schema is up to date.")
			}
			return nil
		},
	}
}

func newMigrateImportDBCommand() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import-db",
		Short: "Import vocabulary sets into the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("loadConfig() > %w", err)
			}
			loader, err := newLoader(cfg)
			if err != nil {
				return err
			}
			db, err := openDatabase(ctx, cfg.Database)
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			importer := datasync.NewImporter(loader, vocabulary.NewDBCardRepository(db), out)
			opts := datasync.ImportOptions{
				DryRun: dryRun,
			}
			result, err := importer.ImportSets(ctx, opts)
			if err != nil {
				return fmt.Errorf("importer.ImportSets() > %w", err)
			}

			_, _ = fmt.Fprintln(out, "\nImport Summary:")
			if opts.DryRun {
				_, _ = fmt.Fprintln(out, "  (dry-run mode, no changes made)")
			}
			_, _ = fmt.Fprintf(out, "  Sets:  %d imported, %d unchanged, %d missing\n", result.SetsImported, result.SetsUnchanged, result.SetsMissing)
			_, _ = fmt.Fprintf(out, "  Cards: %d imported\n", result.CardsImported)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview changes without modifying the database")
	return cmd
}

// openDatabase waits for the database to accept connections, since it is
// often started together with the import in local environments.
func openDatabase(ctx context.Context, cfg config.DatabaseConfig) (*sqlx.DB, error) {
	db, err := database.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("database.Open() > %w", err)
	}

	if err := retry.Do(
		func() error {
			return db.PingContext(ctx)
		},
		retry.Context(ctx),
		retry.Attempts(databasePingAttempts),
		retry.Delay(500*time.Millisecond),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
	); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db.PingContext() > %w", err)
	}
	return db, nil
}
