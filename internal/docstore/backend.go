// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package docstore

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/redis/go-redis/v9"
	surrealdb "github.com/surrealdb/surrealdb.go"

	"github.com/taibuivan/scriptwriter/internal/platform/constants"
	"github.com/taibuivan/scriptwriter/internal/platform/metrics"
)

// Backend holds the connected client of the selected driver. Only the client
// matching Driver needs to be set.
type Backend struct {
	Driver string

	Surreal   *surrealdb.DB
	Postgres  *pgxpool.Pool
	Redis     redis.UniversalClient
	JetStream jetstream.JetStream

	// BucketPrefix namespaces NATS KV buckets.
	BucketPrefix string

	// Metrics, when set, instruments every opened driver.
	Metrics *metrics.Registry
}

// Open returns the driver for the named collection.
func (b *Backend) Open(ctx context.Context, name string) (Driver, error) {
	var driver Driver

	switch b.Driver {
	case constants.DriverSurrealDB:
		if b.Surreal == nil {
			return nil, errMissingClient(b.Driver)
		}
		driver = NewSurreal(b.Surreal, name)

	case constants.DriverPostgres:
		if b.Postgres == nil {
			return nil, errMissingClient(b.Driver)
		}
		driver = NewPostgres(b.Postgres, name)

	case constants.DriverRedis:
		if b.Redis == nil {
			return nil, errMissingClient(b.Driver)
		}
		driver = NewRedis(b.Redis, name)

	case constants.DriverNATS:
		if b.JetStream == nil {
			return nil, errMissingClient(b.Driver)
		}
		kv, err := OpenNATSKV(ctx, b.JetStream, name, b.BucketPrefix+"_"+name)
		if err != nil {
			return nil, err
		}
		driver = kv

	case constants.DriverMemory:
		driver = NewMemory(name)

	default:
		return nil, fmt.Errorf("docstore: unknown driver %q", b.Driver)
	}

	if b.Metrics != nil {
		driver = Instrument(driver, b.Metrics)
	}

	return driver, nil
}

// Open is the typed shortcut of [Backend.Open].
func Open[T any, P Document[T]](ctx context.Context, backend *Backend, name string) (Collection[T], error) {
	driver, err := backend.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	return NewCollection[T, P](driver), nil
}

func errMissingClient(driver string) error {
	return fmt.Errorf("docstore: driver %q selected but no client was provided", driver)
}
