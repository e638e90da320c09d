// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package docstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/taibuivan/scriptwriter/internal/platform/dberr"
)

// NATSKV stores a collection in its own JetStream key-value bucket.
type NATSKV struct {
	bucket jetstream.KeyValue
	name   string
}

// OpenNATSKV binds the collection to bucketName, creating the bucket when
// missing.
func OpenNATSKV(ctx context.Context, js jetstream.JetStream, name, bucketName string) (*NATSKV, error) {
	bucket, err := js.KeyValue(ctx, bucketName)
	if err == nil {
		return &NATSKV{bucket: bucket, name: name}, nil
	}
	if !errors.Is(err, jetstream.ErrBucketNotFound) {
		return nil, natsError(fmt.Errorf("docstore: open bucket %s: %w", bucketName, err))
	}

	bucket, err = js.CreateKeyValue(ctx, jetstream.KeyValueConfig{
		Bucket:      bucketName,
		Description: "documents of collection " + name,
		History:     1,
	})
	if errors.Is(err, jetstream.ErrBucketExists) {
		// Created concurrently by another instance
		bucket, err = js.KeyValue(ctx, bucketName)
	}
	if err != nil {
		return nil, natsError(fmt.Errorf("docstore: create bucket %s: %w", bucketName, err))
	}

	return &NATSKV{bucket: bucket, name: name}, nil
}

func (n *NATSKV) Name() string { return n.name }

func (n *NATSKV) Get(ctx context.Context, id string) ([]byte, error) {
	entry, err := n.bucket.Get(ctx, id)
	if errors.Is(err, jetstream.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, natsError(err)
	}
	return entry.Value(), nil
}

func (n *NATSKV) List(ctx context.Context) ([][]byte, error) {
	keys, err := n.bucket.Keys(ctx)
	if errors.Is(err, jetstream.ErrNoKeysFound) {
		return [][]byte{}, nil
	}
	if err != nil {
		return nil, natsError(err)
	}

	bodies := make([][]byte, 0, len(keys))
	for _, key := range keys {
		body, err := n.Get(ctx, key)
		if err != nil {
			return nil, err
		}
		// Deleted between listing and reading
		if body == nil {
			continue
		}
		bodies = append(bodies, body)
	}
	return bodies, nil
}

func (n *NATSKV) ListBy(ctx context.Context, field, value string) ([][]byte, error) {
	bodies, err := n.List(ctx)
	if err != nil {
		return nil, err
	}
	return filterBodies(bodies, field, value)
}

func (n *NATSKV) Insert(ctx context.Context, id string, body []byte) error {
	if _, err := n.bucket.Create(ctx, id, body); err != nil {
		return natsError(err)
	}
	return nil
}

func (n *NATSKV) Replace(ctx context.Context, id string, body []byte) error {
	entry, err := n.bucket.Get(ctx, id)
	if errors.Is(err, jetstream.ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		return natsError(err)
	}

	if _, err := n.bucket.Update(ctx, id, body, entry.Revision()); err != nil {
		return natsError(err)
	}
	return nil
}

func (n *NATSKV) Delete(ctx context.Context, id string) error {
	if err := n.bucket.Delete(ctx, id); err != nil {
		return natsError(err)
	}
	return nil
}

// natsError marks connection-level failures as unavailable.
func natsError(err error) error {
	switch {
	case errors.Is(err, nats.ErrConnectionClosed),
		errors.Is(err, nats.ErrNoServers),
		errors.Is(err, nats.ErrTimeout),
		errors.Is(err, nats.ErrNoResponders):
		return fmt.Errorf("%w: %w", dberr.ErrUnavailable, err)
	default:
		return err
	}
}
