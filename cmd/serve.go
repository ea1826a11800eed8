// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/canonical/org-access-service/internal/authorization"
	"github.com/canonical/org-access-service/internal/config"
	"github.com/canonical/org-access-service/internal/db"
	"github.com/canonical/org-access-service/internal/identity"
	"github.com/canonical/org-access-service/internal/kratos"
	"github.com/canonical/org-access-service/internal/logging"
	"github.com/canonical/org-access-service/internal/monitoring"
	"github.com/canonical/org-access-service/internal/monitoring/prometheus"
	"github.com/canonical/org-access-service/internal/openfga"
	"github.com/canonical/org-access-service/internal/storage"
	"github.com/canonical/org-access-service/internal/tracing"
	"github.com/canonical/org-access-service/pkg/access"
	"github.com/canonical/org-access-service/pkg/activity"
	"github.com/canonical/org-access-service/pkg/authentication"
	"github.com/canonical/org-access-service/pkg/grants"
	"github.com/canonical/org-access-service/pkg/invites"
	"github.com/canonical/org-access-service/pkg/metrics"
	"github.com/canonical/org-access-service/pkg/orgunit"
	"github.com/canonical/org-access-service/pkg/status"
	"github.com/canonical/org-access-service/pkg/tenant"
	"github.com/canonical/org-access-service/pkg/web"
	"github.com/canonical/org-access-service/pkg/webhooks"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long: `Launch the web application, configured through environment variables.

With AUTHORIZATION_ENABLED=false OpenFGA is replaced by a noop client that denies
every check: nobody is a privileged admin and tenant admin rights come from the
membership role alone. NOOP_PRIVILEGED_USERS lists user ids that pass every check
in that mode.`,
	Run: func(cmd *cobra.Command, args []string) {
		main()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func loadSpecs() *config.EnvSpec {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}
	return specs
}

func newDBClient(specs *config.EnvSpec, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*db.DBClient, error) {
	return db.NewDBClient(
		db.Config{
			DSN:             specs.DSN,
			MaxConns:        specs.DBMaxConns,
			MinConns:        specs.DBMinConns,
			MaxConnLifetime: specs.DBMaxConnLifetime,
			MaxConnIdleTime: specs.DBMaxConnIdleTime,
			TracingEnabled:  specs.TracingEnabled,
		},
		tracer,
		monitor,
		logger,
	)
}

func newAuthorizer(specs config.AuthorizationSpec, debug bool, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *authorization.Authorizer {
	if !specs.AuthorizationEnabled {
		logger.Info("Using noop authorizer")
		privileged := make([]string, 0, len(specs.NoopPrivilegedUsers))
		for _, id := range specs.NoopPrivilegedUsers {
			privileged = append(privileged, authorization.UserTuple(id))
		}
		return authorization.NewAuthorizer(openfga.NewNoopClient(privileged, tracer, monitor, logger), tracer, monitor, logger)
	}

	ofga := openfga.NewClient(
		openfga.NewConfig(
			specs.OpenfgaApiScheme,
			specs.OpenfgaApiHost,
			specs.OpenfgaStoreId,
			specs.OpenfgaApiToken,
			specs.OpenfgaModelId,
			debug,
			tracer,
			monitor,
			logger,
		),
	)
	authorizer := authorization.NewAuthorizer(ofga, tracer, monitor, logger)
	logger.Info("Authorization is enabled")
	if authorizer.ValidateModel(context.Background()) != nil {
		panic("Invalid authorization model provided")
	}

	return authorizer
}

func serve() error {
	specs := loadSpecs()

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %+v", specs.Redacted())
	defer logger.Sync()

	monitor := prometheus.NewMonitor("org-access-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbClient, err := newDBClient(specs, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	authorizer := newAuthorizer(specs.AuthorizationSpec, specs.Debug, tracer, monitor, logger)

	activityService := activity.NewService(s, tracer, monitor, logger)
	unitService := orgunit.NewService(s, dbClient, activityService, tracer, monitor, logger)
	grantService := grants.NewService(s, dbClient, activityService, tracer, monitor, logger)
	accessService := access.NewService(unitService, grantService, tracer, monitor, logger)

	activator := invites.NewActivator(s, specs.PasswordHashCost, specs.MinPasswordLength, tracer, monitor, logger)
	inviteService := invites.NewService(
		s,
		activator,
		dbClient,
		activityService,
		invites.NewLogMailer(logger),
		specs.InviteBaseURL,
		tracer,
		monitor,
		logger,
	)

	var blockKey []byte
	if specs.SignedTokenBlockKey != "" {
		blockKey = []byte(specs.SignedTokenBlockKey)
	}
	signedService := invites.NewSignedService(
		s,
		activator,
		dbClient,
		[]byte(specs.SignedTokenHashKey),
		blockKey,
		specs.SignedTokenMaxAge,
		specs.InviteBaseURL,
		tracer,
		monitor,
		logger,
	)

	var identities tenant.IdentityInterface
	if specs.KratosAdminURL != "" {
		identities = kratos.NewClient(specs.KratosAdminURL, tracer, monitor, logger)
	}

	tenantService := tenant.NewService(
		s,
		authorizer,
		identities,
		inviteService,
		dbClient,
		activityService,
		tracer,
		monitor,
		logger,
	)

	authenticate := identity.NewMiddleware(tracer, monitor, logger).HTTPMiddleware
	if specs.AuthenticationEnabled {
		verifier, err := authentication.NewJWTAuthenticator(
			context.Background(),
			specs.OIDCIssuer,
			specs.OIDCJWKSURL,
			specs.OIDCAudience,
			specs.AllowedSubjects,
			specs.RequiredScope,
			tracer,
			monitor,
			logger,
		)
		if err != nil {
			return fmt.Errorf("failed to create authenticator: %w", err)
		}
		authenticate = authentication.NewMiddleware(verifier, tracer, monitor, logger).Authenticate()
	}

	enforcer, err := web.NewEnforcer(specs.CasbinModelPath, specs.CasbinPolicyPath)
	if err != nil {
		return fmt.Errorf("failed to load route policy: %w", err)
	}
	gate := web.NewGate(enforcer, tenantService, authorizer, tracer, monitor, logger)

	router := web.NewRouter(
		web.APIs{
			Tenants:  tenant.NewAPI(tenantService, logger),
			Units:    orgunit.NewAPI(unitService, logger),
			Grants:   grants.NewAPI(grantService, logger),
			Access:   access.NewAPI(accessService, tenantService, logger),
			Invites:  invites.NewAPI(inviteService, signedService, logger),
			Activity: activity.NewAPI(activityService, logger),
			Webhooks: webhooks.NewAPI(webhooks.NewService(s, authorizer, tracer, monitor, logger), logger),
			Status:   status.NewAPI(dbClient, tracer, monitor, logger),
			Metrics:  metrics.NewAPI(logger),
		},
		authenticate,
		gate,
		specs.CORSAllowedOrigins,
		dbClient,
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}

func main() {
	if err := serve(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}
