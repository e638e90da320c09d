// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package surreal provides a managed SurrealDB connection for the primary
document store backend.

The connection is a WebSocket RPC session (gorillaws) using the surrealcbor
codec, so record identifiers and missing records decode predictably: selecting
an absent record yields nil instead of a zero-valued document.
*/
package surreal

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	surrealdb "github.com/surrealdb/surrealdb.go"
	"github.com/surrealdb/surrealdb.go/pkg/connection"
	"github.com/surrealdb/surrealdb.go/pkg/connection/gorillaws"
	"github.com/surrealdb/surrealdb.go/surrealcbor"

	"github.com/taibuivan/scriptwriter/internal/platform/constants"
)

// Options carries the connection settings for [Connect].
type Options struct {
	URL       string
	Namespace string
	Database  string
	Username  string
	Password  string
}

// Connect opens the RPC session, signs in when credentials are set, and
// selects the namespace and database.
func Connect(ctx context.Context, options Options, logger *slog.Logger) (*surrealdb.DB, error) {
	endpoint, err := url.Parse(options.URL)
	if err != nil {
		return nil, fmt.Errorf("surreal: invalid URL: %w", err)
	}

	conf := connection.NewConfig(endpoint)

	codec := surrealcbor.New()
	conf.Marshaler = codec
	conf.Unmarshaler = codec

	db, err := surrealdb.FromConnection(ctx, gorillaws.New(conf))
	if err != nil {
		return nil, fmt.Errorf("surreal: failed to connect: %w", err)
	}

	if options.Username != "" && options.Password != "" {
		if _, err := db.SignIn(ctx, map[string]any{
			"user": options.Username,
			"pass": options.Password,
		}); err != nil {
			_ = db.Close(ctx)
			return nil, fmt.Errorf("surreal: failed to authenticate: %w", err)
		}
	}

	if err := db.Use(ctx, options.Namespace, options.Database); err != nil {
		_ = db.Close(ctx)
		return nil, fmt.Errorf("surreal: failed to use %s/%s: %w", options.Namespace, options.Database, err)
	}

	if err := Ping(ctx, db); err != nil {
		_ = db.Close(ctx)
		return nil, err
	}

	logger.Info("surrealdb connected",
		slog.String("url", endpoint.Redacted()),
		slog.String("namespace", options.Namespace),
		slog.String("database", options.Database),
	)

	return db, nil
}

// Ping runs a trivial query to verify the session is alive.
func Ping(ctx context.Context, db *surrealdb.DB) error {
	pingCtx, cancel := context.WithTimeout(ctx, constants.PingTimeout)
	defer cancel()

	if _, err := surrealdb.Query[bool](pingCtx, db, "RETURN true", nil); err != nil {
		return fmt.Errorf("surreal: ping failed: %w", err)
	}

	return nil
}
