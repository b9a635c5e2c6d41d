package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	gqladapter "github.com/ogurasousui/codex-graphql-clean-arch/internal/adapters/graphql"
	"github.com/ogurasousui/codex-graphql-clean-arch/internal/adapters/repository/document"
	"github.com/ogurasousui/codex-graphql-clean-arch/internal/core/employee"
	"github.com/ogurasousui/codex-graphql-clean-arch/internal/core/location"
	"github.com/ogurasousui/codex-graphql-clean-arch/internal/core/owner"
	"github.com/ogurasousui/codex-graphql-clean-arch/internal/core/project"
	"github.com/ogurasousui/codex-graphql-clean-arch/internal/core/rank"
	"github.com/ogurasousui/codex-graphql-clean-arch/internal/core/reference"
	"github.com/ogurasousui/codex-graphql-clean-arch/internal/core/store"
	"github.com/ogurasousui/codex-graphql-clean-arch/internal/platform/config"
	"github.com/ogurasousui/codex-graphql-clean-arch/internal/platform/health"
	"github.com/ogurasousui/codex-graphql-clean-arch/internal/platform/logging"
	"github.com/ogurasousui/codex-graphql-clean-arch/internal/platform/metrics"
	"github.com/ogurasousui/codex-graphql-clean-arch/internal/platform/server"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const defaultConfigPath = "assets/local.yaml"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:          "opsgraph",
		Short:        "GraphQL API over the employee and project document store",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return run(ctx, v.GetString("config"))
		},
	}

	cmd.Flags().String("config", defaultConfigPath, "path to config file (env CONFIG_PATH)")
	_ = v.BindPFlag("config", cmd.Flags().Lookup("config"))
	_ = v.BindEnv("config", "CONFIG_PATH")

	return cmd
}

func run(ctx context.Context, cfgPath string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	backend, err := openBackend(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to open docstore", zap.String("driver", cfg.Docstore.Driver), zap.Error(err))
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), cfg.Docstore.Timeout)
		defer cancel()
		if err := backend.close(closeCtx); err != nil {
			logger.Warn("failed to close docstore", zap.Error(err))
		}
	}()

	m := metrics.New()

	employeeRepo := document.NewEmployeeRepository(backend.store)
	storeRepo := document.NewStoreRepository(backend.store)
	locationRepo := document.NewLocationRepository(backend.store)
	rankRepo := document.NewRankRepository(backend.store)

	validator := reference.NewValidator(rankRepo, storeRepo, locationRepo, logger.Named("reference"), m)

	resolver := gqladapter.NewResolver(gqladapter.Services{
		Employees: employee.NewService(employeeRepo, validator, backend.tx, logger.Named("employee")),
		Stores:    store.NewService(storeRepo, validator),
		Locations: location.NewService(locationRepo),
		Ranks:     rank.NewService(rankRepo),
		Owners:    owner.NewService(document.NewOwnerRepository(backend.store)),
		Projects:  project.NewService(document.NewProjectRepository(backend.store)),
	}, logger.Named("graphql"))

	schema, err := gqladapter.NewSchema(resolver)
	if err != nil {
		return err
	}

	healthSrv := health.New(cfg.Server.HealthAddr, backend.store, 0, cfg.Docstore.Timeout, logger.Named("health"))

	mux := http.NewServeMux()
	mux.Handle("POST /query", m.Instrument("query", gqladapter.QueryHandler(schema)))
	mux.Handle("GET /{$}", gqladapter.PlaygroundHandler("/query"))
	mux.Handle("GET /metrics", m.Handler())
	mux.Handle("GET /healthz", healthSrv.HTTPHandler())

	httpSrv := server.New(cfg.Server.ListenAddr, server.AccessLog(logger.Named("http"), mux), cfg.Server.ShutdownTimeout, logger)

	logger.Info("starting opsgraph",
		zap.String("listen_addr", cfg.Server.ListenAddr),
		zap.String("health_addr", cfg.Server.HealthAddr),
		zap.String("docstore", cfg.Docstore.Driver),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return httpSrv.Run(gctx) })
	g.Go(func() error { return healthSrv.Watch(gctx) })
	if cfg.Server.HealthAddr != "" {
		g.Go(func() error { return healthSrv.Run(gctx) })
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server stopped with error: %w", err)
	}
	return nil
}
