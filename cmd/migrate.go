// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/canonical/org-access-service/migrations"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate [up|down|status|check] [version]",
	Short: "Run database migrations",
	Long:  `Apply, roll back or inspect the tenants, org units, grants and invites schema`,
	Args:  migrateArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		command := "up"
		if len(args) > 0 {
			command = args[0]
		}

		version := int64(-1)
		if len(args) > 1 {
			version, _ = strconv.ParseInt(args[1], 10, 64)
		}

		dsn, _ := cmd.Flags().GetString("dsn")
		if dsn == "" {
			dsn = os.Getenv("DSN")
		}
		if dsn == "" {
			return fmt.Errorf("no DSN given, use --dsn or the DSN environment variable")
		}

		return migrate(cmd.Context(), dsn, command, version, cmd.OutOrStdout())
	},
}

// migrateArgs accepts an optional command and, for down only, a non-negative target version.
func migrateArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.RangeArgs(0, 2)(cmd, args); err != nil {
		return err
	}
	if len(args) == 0 {
		return nil
	}

	switch args[0] {
	case "up", "down", "status", "check":
	default:
		return fmt.Errorf("invalid migrate command: %q", args[0])
	}

	if len(args) == 2 {
		if args[0] != "down" {
			return fmt.Errorf("a target version is only accepted by down")
		}
		if v, err := strconv.ParseInt(args[1], 10, 64); err != nil || v < 0 {
			return fmt.Errorf("invalid target version: %q", args[1])
		}
	}

	return nil
}

func init() {
	migrateCmd.Flags().String("dsn", "", "PostgreSQL DSN connection string, defaults to $DSN")

	rootCmd.AddCommand(migrateCmd)
}

func openMigrationDB(ctx context.Context, dsn string) (*sql.DB, error) {
	config, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("invalid DSN: %v", err)
	}

	db := stdlib.OpenDB(*config)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("database connection failed: %v", err)
	}

	return db, nil
}

func migrate(ctx context.Context, dsn, command string, version int64, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	db, err := openMigrationDB(ctx, dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	var opts []goose.ProviderOption
	if outputFormat == "json" {
		opts = append(opts, goose.WithLogger(goose.NopLogger()))
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.EmbedMigrations, opts...)
	if err != nil {
		return fmt.Errorf("failed to create goose provider: %w", err)
	}

	switch command {
	case "down":
		return migrateDown(ctx, provider, version, out)
	case "status":
		return migrateStatus(ctx, provider, out)
	case "check":
		return migrateCheck(ctx, provider, out)
	default:
		results, err := provider.Up(ctx)
		if err != nil {
			return err
		}
		return printResults(out, results)
	}
}

func migrateDown(ctx context.Context, provider *goose.Provider, version int64, out io.Writer) error {
	if version >= 0 {
		results, err := provider.DownTo(ctx, version)
		if err != nil {
			return err
		}
		return printResults(out, results)
	}

	result, err := provider.Down(ctx)
	if err != nil {
		return err
	}
	return printResults(out, []*goose.MigrationResult{result})
}

func printResults(out io.Writer, results []*goose.MigrationResult) error {
	if results == nil {
		results = []*goose.MigrationResult{}
	}

	return printTable(out, map[string]any{"applied": results}, "MIGRATION\tDIRECTION\tDURATION", func(w io.Writer) {
		for _, r := range results {
			fmt.Fprintf(w, "%s\t%s\t%s\n", r.Source.Path, r.Direction, r.Duration.Round(time.Millisecond))
		}
	})
}

func migrateStatus(ctx context.Context, provider *goose.Provider, out io.Writer) error {
	statuses, err := provider.Status(ctx)
	if err != nil {
		return err
	}

	return printTable(out, statuses, "APPLIED AT\tMIGRATION", func(w io.Writer) {
		for _, s := range statuses {
			appliedAt := "Pending"
			if s.State == goose.StateApplied {
				appliedAt = s.AppliedAt.Format(time.RFC3339)
			}
			fmt.Fprintf(w, "%s\t%s\n", appliedAt, s.Source.Path)
		}
	})
}

func migrateCheck(ctx context.Context, provider *goose.Provider, out io.Writer) error {
	pending, err := provider.HasPending(ctx)
	if err != nil {
		return fmt.Errorf("failed to check pending migrations: %w", err)
	}

	current, err := provider.GetDBVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current version: %w", err)
	}

	status := "ok"
	if pending {
		status = "pending"
	}

	if outputFormat == "json" {
		if err := printJSON(out, map[string]any{"status": status, "version": current}); err != nil {
			return err
		}
	} else if !pending {
		fmt.Fprintf(out, "Database is up to date (version %d)\n", current)
	}

	if pending {
		return fmt.Errorf("migrations are pending: current version %d", current)
	}
	return nil
}
