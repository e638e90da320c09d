// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package docstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/scriptwriter/internal/platform/constants"
	"github.com/taibuivan/scriptwriter/internal/platform/dberr"
)

// replaceScript sets the field only when it already exists.
var replaceScript = redis.NewScript(`
if redis.call("HEXISTS", KEYS[1], ARGV[1]) == 1 then
	redis.call("HSET", KEYS[1], ARGV[1], ARGV[2])
	return 1
end
return 0
`)

// Redis stores a collection as one hash: field is the id, value the JSON body.
type Redis struct {
	client redis.UniversalClient
	name   string
	key    string
}

// NewRedis binds the collection name to a client.
func NewRedis(client redis.UniversalClient, name string) *Redis {
	return &Redis{
		client: client,
		name:   name,
		key:    constants.AppName + ":doc:" + name,
	}
}

func (r *Redis) Name() string { return r.name }

func (r *Redis) Get(ctx context.Context, id string) ([]byte, error) {
	body, err := r.client.HGet(ctx, r.key, id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, redisError(err)
	}
	return body, nil
}

func (r *Redis) List(ctx context.Context) ([][]byte, error) {
	values, err := r.client.HVals(ctx, r.key).Result()
	if err != nil {
		return nil, redisError(err)
	}

	bodies := make([][]byte, len(values))
	for i, value := range values {
		bodies[i] = []byte(value)
	}
	return bodies, nil
}

func (r *Redis) ListBy(ctx context.Context, field, value string) ([][]byte, error) {
	bodies, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	return filterBodies(bodies, field, value)
}

func (r *Redis) Insert(ctx context.Context, id string, body []byte) error {
	created, err := r.client.HSetNX(ctx, r.key, id, body).Result()
	if err != nil {
		return redisError(err)
	}
	if !created {
		return fmt.Errorf("docstore: %s/%s already exists", r.name, id)
	}
	return nil
}

func (r *Redis) Replace(ctx context.Context, id string, body []byte) error {
	return redisError(replaceScript.Run(ctx, r.client, []string{r.key}, id, body).Err())
}

func (r *Redis) Delete(ctx context.Context, id string) error {
	return redisError(r.client.HDel(ctx, r.key, id).Err())
}

// redisError marks a closed client or an exhausted pool as unavailable.
func redisError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, redis.ErrClosed) || errors.Is(err, redis.ErrPoolTimeout) {
		return fmt.Errorf("%w: %w", dberr.ErrUnavailable, err)
	}
	return err
}
