// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package natsconn provides a managed NATS connection and JetStream context for
the key-value document store backend.

Each collection is one JetStream KV bucket; buckets are created on first use
by internal/docstore.
*/
package natsconn

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/taibuivan/scriptwriter/internal/platform/constants"
)

// Opinionated reconnect settings.
const (
	maxReconnects = -1
	reconnectWait = 2 * time.Second
	pingInterval  = 20 * time.Second
)

// Client bundles the core connection with its JetStream context.
type Client struct {
	Conn      *nats.Conn
	JetStream jetstream.JetStream
}

// Connect dials the server and opens a JetStream context.
func Connect(natsURL string, logger *slog.Logger) (*Client, error) {
	conn, err := nats.Connect(natsURL,
		nats.Name(constants.AppName),
		nats.MaxReconnects(maxReconnects),
		nats.ReconnectWait(reconnectWait),
		nats.PingInterval(pingInterval),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			logger.Warn("nats_disconnected", slog.Any("error", err))
		}),
		nats.ReconnectHandler(func(conn *nats.Conn) {
			logger.Info("nats_reconnected", slog.String("url", conn.ConnectedUrlRedacted()))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("nats: failed to connect: %w", err)
	}

	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("nats: failed to open jetstream: %w", err)
	}

	logger.Info("nats connected", slog.String("url", conn.ConnectedUrlRedacted()))

	return &Client{Conn: conn, JetStream: js}, nil
}

// Ping measures a round trip to the server.
func (c *Client) Ping(ctx context.Context) error {
	if !c.Conn.IsConnected() {
		return fmt.Errorf("nats: not connected (status %s)", c.Conn.Status())
	}

	pingCtx, cancel := context.WithTimeout(ctx, constants.PingTimeout)
	defer cancel()

	if _, err := c.JetStream.AccountInfo(pingCtx); err != nil {
		return fmt.Errorf("nats: ping failed: %w", err)
	}

	return nil
}

// Close drains pending messages and closes the connection.
func (c *Client) Close() error {
	return c.Conn.Drain()
}
