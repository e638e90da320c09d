// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package docstore

import (
	"context"
	"time"

	"github.com/taibuivan/scriptwriter/internal/platform/metrics"
)

// instrumented records a counter and a latency observation per driver call.
type instrumented struct {
	next    Driver
	metrics *metrics.Registry
}

// Instrument wraps next so every call is measured in registry.
func Instrument(next Driver, registry *metrics.Registry) Driver {
	return &instrumented{next: next, metrics: registry}
}

// measure starts the clock for operation; call the returned func with the
// outcome.
func (i *instrumented) measure(operation string) func(error) {
	started := time.Now()

	return func(err error) {
		status := "ok"
		if err != nil {
			status = "error"
		}

		i.metrics.StoreOperations.WithLabelValues(i.next.Name(), operation, status).Inc()
		i.metrics.StoreDuration.WithLabelValues(i.next.Name(), operation).Observe(time.Since(started).Seconds())
	}
}

func (i *instrumented) Name() string { return i.next.Name() }

func (i *instrumented) Get(ctx context.Context, id string) ([]byte, error) {
	done := i.measure("get")
	body, err := i.next.Get(ctx, id)
	done(err)
	return body, err
}

func (i *instrumented) List(ctx context.Context) ([][]byte, error) {
	done := i.measure("list")
	bodies, err := i.next.List(ctx)
	done(err)
	return bodies, err
}

func (i *instrumented) ListBy(ctx context.Context, field, value string) ([][]byte, error) {
	done := i.measure("list_by")
	bodies, err := i.next.ListBy(ctx, field, value)
	done(err)
	return bodies, err
}

func (i *instrumented) Insert(ctx context.Context, id string, body []byte) error {
	done := i.measure("insert")
	err := i.next.Insert(ctx, id, body)
	done(err)
	return err
}

func (i *instrumented) Replace(ctx context.Context, id string, body []byte) error {
	done := i.measure("replace")
	err := i.next.Replace(ctx, id, body)
	done(err)
	return err
}

func (i *instrumented) Delete(ctx context.Context, id string) error {
	done := i.measure("delete")
	err := i.next.Delete(ctx, id)
	done(err)
	return err
}
