package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/ogurasousui/codex-graphql-clean-arch/internal/platform/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := newRootCmd(logger).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(logger *zap.Logger) *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:          "migrate",
		Short:        "Apply schema migrations for the postgres document store",
		SilenceUsage: true,
	}
	root.PersistentFlags().String("config", "assets/local.yaml", "path to config file (env CONFIG_PATH)")
	root.PersistentFlags().String("dir", "assets/migrations", "directory containing migration files")
	_ = v.BindPFlag("config", root.PersistentFlags().Lookup("config"))
	_ = v.BindPFlag("dir", root.PersistentFlags().Lookup("dir"))
	_ = v.BindEnv("config", "CONFIG_PATH")

	for _, action := range []string{"up", "down", "drop", "version"} {
		action := action
		root.AddCommand(&cobra.Command{
			Use:   action,
			Short: fmt.Sprintf("run migration %s", action),
			Args:  cobra.NoArgs,
			RunE: func(*cobra.Command, []string) error {
				cfg, err := config.Load(v.GetString("config"))
				if err != nil {
					return err
				}
				if cfg.Docstore.Driver != config.DriverPostgres {
					return fmt.Errorf("migrations apply to the postgres docstore, configured driver is %q", cfg.Docstore.Driver)
				}
				if err := runMigration(logger, action, v.GetString("dir"), cfg.Docstore.URI); err != nil {
					return fmt.Errorf("migration %s failed: %w", action, err)
				}
				logger.Info("migration completed", zap.String("action", action))
				return nil
			},
		})
	}

	return root
}

func runMigration(logger *zap.Logger, action, dir, dsn string) error {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolve path for %s: %w", dir, err)
	}
	absDir = filepath.ToSlash(absDir)

	m, err := migrate.New(fmt.Sprintf("file://%s", absDir), dsn)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}
	defer m.Close()

	switch action {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return err
		}
		return nil
	case "down":
		if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return err
		}
		return nil
	case "drop":
		return m.Drop()
	case "version":
		version, dirty, err := m.Version()
		if err != nil {
			if errors.Is(err, migrate.ErrNilVersion) {
				logger.Info("no migration applied")
				return nil
			}
			return err
		}
		logger.Info("migration version", zap.Uint("version", version), zap.Bool("dirty", dirty))
		return nil
	default:
		return fmt.Errorf("unsupported action %q", action)
	}
}
