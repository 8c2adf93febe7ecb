package main

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"initiation/internal/config"
	"initiation/internal/game"
	"initiation/internal/store"
	"initiation/internal/store/bolt"
	"initiation/internal/store/sqlite"
)

func newLogger() (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func openStore(ctx context.Context, cfg *config.ProjectConfig) (store.Store, error) {
	dsn := cfg.Storage.DSN
	switch {
	case strings.HasPrefix(dsn, "bolt://"):
		return bolt.Open(strings.TrimPrefix(dsn, "bolt://"))
	case strings.HasPrefix(dsn, "sqlite://"):
		return sqlite.New(ctx, dsn)
	default:
		return nil, fmt.Errorf("unsupported storage dsn scheme: %s", dsn)
	}
}

// openSession wires config, logger, store, and session for a command.
// The returned cleanup closes the store and flushes the logger.
func openSession(ctx context.Context, logger *zap.Logger) (*game.Session, func(), error) {
	cfg, err := config.LoadProjectConfig(config.DefaultPath)
	if err != nil {
		return nil, nil, err
	}

	db, err := openStore(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	session := game.NewSession(ctx, db, cfg.Host.PIN, logger)
	cleanup := func() {
		_ = db.Close(ctx)
		if logger != nil {
			_ = logger.Sync()
		}
	}
	return session, cleanup, nil
}
