package main

import (
	"context"
	"fmt"

	badgerstore "github.com/ogurasousui/codex-graphql-clean-arch/internal/adapters/docstore/badger"
	mongostore "github.com/ogurasousui/codex-graphql-clean-arch/internal/adapters/docstore/mongo"
	pgstore "github.com/ogurasousui/codex-graphql-clean-arch/internal/adapters/docstore/postgres"
	"github.com/ogurasousui/codex-graphql-clean-arch/internal/core/employee"
	"github.com/ogurasousui/codex-graphql-clean-arch/internal/platform/config"
	pg "github.com/ogurasousui/codex-graphql-clean-arch/internal/platform/db/postgres"
	"github.com/ogurasousui/codex-graphql-clean-arch/internal/platform/docstore"
	"go.uber.org/zap"
)

// backend は選択されたドキュメントストアと、その後始末をまとめます。
type backend struct {
	store docstore.Store
	tx    employee.TransactionManager
	close func(context.Context) error
}

func openBackend(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*backend, error) {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.Docstore.Timeout)
	defer cancel()

	switch cfg.Docstore.Driver {
	case config.DriverMongo:
		client, err := mongostore.Connect(connectCtx, cfg.Docstore.URI)
		if err != nil {
			return nil, err
		}
		return &backend{
			store: mongostore.New(client.Database(cfg.Docstore.Database)),
			close: client.Disconnect,
		}, nil

	case config.DriverPostgres:
		pool, err := pg.NewPool(connectCtx, cfg.Docstore.URI, cfg.Database)
		if err != nil {
			return nil, err
		}
		return &backend{
			store: pgstore.New(pool),
			tx:    pg.NewTransactionManager(pool),
			close: func(context.Context) error {
				pool.Close()
				return nil
			},
		}, nil

	case config.DriverBadger:
		ds, err := badgerstore.Open(cfg.Docstore.BadgerDir, logger.Named("badger"))
		if err != nil {
			return nil, err
		}
		return &backend{
			store: ds,
			close: func(context.Context) error { return ds.Close() },
		}, nil

	default:
		return nil, fmt.Errorf("unsupported docstore driver %q", cfg.Docstore.Driver)
	}
}
