// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/canonical/org-access-service/internal/config"
	"github.com/canonical/org-access-service/internal/db"
	"github.com/canonical/org-access-service/internal/logging"
	"github.com/canonical/org-access-service/internal/monitoring"
	"github.com/canonical/org-access-service/internal/storage"
	"github.com/canonical/org-access-service/internal/tracing"
	"github.com/canonical/org-access-service/pkg/activity"
	"github.com/canonical/org-access-service/pkg/grants"
	"github.com/canonical/org-access-service/pkg/orgunit"
	"github.com/canonical/org-access-service/pkg/seed"
	"github.com/canonical/org-access-service/pkg/tenant"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load users, tenants, org units and grants from a YAML file",
	Long: `Load users, tenants, org units, memberships and grants declared in a YAML file.
Everything but the privileged admin assignments is written in a single transaction.
OpenFGA settings are read from the same environment variables as serve.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dsn, _ := cmd.Flags().GetString("dsn")
		file, _ := cmd.Flags().GetString("file")

		return runSeed(cmd, dsn, file)
	},
}

func init() {
	seedCmd.Flags().String("dsn", "", "PostgreSQL DSN connection string")
	seedCmd.Flags().String("file", "", "Path to the seed file, - reads stdin")
	_ = seedCmd.MarkFlagRequired("dsn")
	_ = seedCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, dsn, path string) error {
	specs := new(config.SeedSpec)
	if err := envconfig.Process("", specs); err != nil {
		return fmt.Errorf("issues with environment sourcing: %s", err)
	}

	var in io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	doc, err := seed.Parse(in)
	if err != nil {
		return err
	}

	logger := logging.NewLogger(specs.LogLevel)
	defer logger.Sync()

	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("org-access-service", logger)

	dbClient, err := db.NewDBClient(db.Config{
		DSN:             dsn,
		MaxConns:        2,
		MinConns:        1,
		MaxConnLifetime: time.Hour,
		MaxConnIdleTime: 5 * time.Minute,
	}, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()

	s := storage.NewStorage(dbClient, tracer, monitor, logger)
	authorizer := newAuthorizer(specs.AuthorizationSpec, specs.Debug, tracer, monitor, logger)
	activityService := activity.NewService(s, tracer, monitor, logger)

	seeder := seed.NewSeeder(
		s,
		// invitations and identity lookups are not used when seeding
		tenant.NewService(s, authorizer, nil, nil, dbClient, activityService, tracer, monitor, logger),
		orgunit.NewService(s, dbClient, activityService, tracer, monitor, logger),
		grants.NewService(s, dbClient, activityService, tracer, monitor, logger),
		authorizer,
		dbClient,
		tracer,
		monitor,
		logger,
	)

	report, err := seeder.Apply(cmd.Context(), doc)
	if err != nil {
		return err
	}

	return printTable(cmd.OutOrStdout(), report, "USERS\tTENANTS\tUNITS\tMEMBERS\tGRANTS", func(w io.Writer) {
		fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%d\n", report.Users, report.Tenants, report.Units, report.Members, report.Grants)
	})
}
