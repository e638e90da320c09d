// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"context"
	"log/slog"

	"github.com/taibuivan/scriptwriter/internal/api"
	"github.com/taibuivan/scriptwriter/internal/docstore"
	"github.com/taibuivan/scriptwriter/internal/platform/config"
	"github.com/taibuivan/scriptwriter/internal/platform/constants"
	"github.com/taibuivan/scriptwriter/internal/platform/metrics"
	"github.com/taibuivan/scriptwriter/internal/platform/migration"
	"github.com/taibuivan/scriptwriter/internal/platform/natsconn"
	pgstore "github.com/taibuivan/scriptwriter/internal/platform/postgres"
	redisstore "github.com/taibuivan/scriptwriter/internal/platform/redis"
	"github.com/taibuivan/scriptwriter/internal/platform/surreal"
)

// connectedStore is the document store of the process with its health checks and
// teardown.
type connectedStore struct {
	backend *docstore.Backend
	checks  []api.HealthCheck
	closers []func()
}

func (s *connectedStore) close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

// connectStore dials the client selected by cfg.StoreDriver.
func connectStore(ctx context.Context, cfg *config.Config, registry *metrics.Registry, log *slog.Logger) (*connectedStore, error) {
	store := &connectedStore{
		backend: &docstore.Backend{
			Driver:       cfg.StoreDriver,
			BucketPrefix: cfg.NATSBucketPrefix,
			Metrics:      registry,
		},
	}

	switch cfg.StoreDriver {
	case constants.DriverSurrealDB:
		db, err := surreal.Connect(ctx, surreal.Options{
			URL:       cfg.SurrealURL,
			Namespace: cfg.SurrealNamespace,
			Database:  cfg.SurrealDatabase,
			Username:  cfg.SurrealUser,
			Password:  cfg.SurrealPassword,
		}, log)
		if err != nil {
			return nil, err
		}

		store.backend.Surreal = db
		store.checks = append(store.checks, api.HealthCheck{
			Name:  constants.DriverSurrealDB,
			Check: func(checkCtx context.Context) error { return surreal.Ping(checkCtx, db) },
		})
		store.closers = append(store.closers, func() {
			log.Info("closing surrealdb session")
			if err := db.Close(context.Background()); err != nil {
				log.Error("surrealdb close error", slog.Any("error", err))
			}
		})

	case constants.DriverPostgres:
		if cfg.MigrateOnStart {
			if err := migration.RunUp(cfg.DatabaseURL, log); err != nil {
				return nil, err
			}
		}

		pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, log)
		if err != nil {
			return nil, err
		}

		store.backend.Postgres = pool
		store.checks = append(store.checks, api.HealthCheck{
			Name:  constants.DriverPostgres,
			Check: func(checkCtx context.Context) error { return pgstore.Ping(checkCtx, pool) },
		})
		store.closers = append(store.closers, func() {
			log.Info("closing postgres pool")
			pool.Close()
		})

	case constants.DriverRedis:
		rdb, err := redisstore.NewClient(ctx, cfg.RedisURL, log)
		if err != nil {
			return nil, err
		}

		store.backend.Redis = rdb
		store.checks = append(store.checks, api.HealthCheck{
			Name:  constants.DriverRedis,
			Check: func(checkCtx context.Context) error { return redisstore.Ping(checkCtx, rdb) },
		})
		store.closers = append(store.closers, func() {
			log.Info("closing redis client")
			if err := rdb.Close(); err != nil {
				log.Error("redis close error", slog.Any("error", err))
			}
		})

	case constants.DriverNATS:
		client, err := natsconn.Connect(cfg.NATSURL, log)
		if err != nil {
			return nil, err
		}

		store.backend.JetStream = client.JetStream
		store.checks = append(store.checks, api.HealthCheck{
			Name:  constants.DriverNATS,
			Check: client.Ping,
		})
		store.closers = append(store.closers, func() {
			log.Info("draining nats connection")
			if err := client.Close(); err != nil {
				log.Error("nats drain error", slog.Any("error", err))
			}
		})

	case constants.DriverMemory:
		log.Warn("memory_store_selected", slog.String("note", "documents are lost on restart"))
	}

	return store, nil
}
