// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package middleware

import (
	"context"
	"time"

	"github.com/absmach/netflix/titles"
	"github.com/go-kit/kit/metrics"
)

var _ titles.Service = (*metricsMiddleware)(nil)

type metricsMiddleware struct {
	counter metrics.Counter
	latency metrics.Histogram
	svc     titles.Service
}

// MetricsMiddleware returns a new metrics middleware wrapper.
func MetricsMiddleware(svc titles.Service, counter metrics.Counter, latency metrics.Histogram) titles.Service {
	return &metricsMiddleware{
		counter: counter,
		latency: latency,
		svc:     svc,
	}
}

func (ms *metricsMiddleware) CreateKeyspace(ctx context.Context) error {
	defer func(begin time.Time) {
		ms.counter.With("method", "create_keyspace").Add(1)
		ms.latency.With("method", "create_keyspace").Observe(time.Since(begin).Seconds())
	}(time.Now())
	return ms.svc.CreateKeyspace(ctx)
}

func (ms *metricsMiddleware) CreateTables(ctx context.Context) error {
	defer func(begin time.Time) {
		ms.counter.With("method", "create_tables").Add(1)
		ms.latency.With("method", "create_tables").Observe(time.Since(begin).Seconds())
	}(time.Now())
	return ms.svc.CreateTables(ctx)
}

func (ms *metricsMiddleware) Import(ctx context.Context, ts ...titles.Title) error {
	defer func(begin time.Time) {
		ms.counter.With("method", "import_titles").Add(1)
		ms.latency.With("method", "import_titles").Observe(time.Since(begin).Seconds())
	}(time.Now())
	return ms.svc.Import(ctx, ts...)
}

func (ms *metricsMiddleware) ReadAll(ctx context.Context, table titles.Table) ([]titles.Row, error) {
	defer func(begin time.Time) {
		ms.counter.With("method", "read_all").Add(1)
		ms.latency.With("method", "read_all").Observe(time.Since(begin).Seconds())
	}(time.Now())
	return ms.svc.ReadAll(ctx, table)
}

func (ms *metricsMiddleware) ViewTitle(ctx context.Context, title string) ([]titles.Title, error) {
	defer func(begin time.Time) {
		ms.counter.With("method", "view_title").Add(1)
		ms.latency.With("method", "view_title").Observe(time.Since(begin).Seconds())
	}(time.Now())
	return ms.svc.ViewTitle(ctx, title)
}

func (ms *metricsMiddleware) ViewDirectors(ctx context.Context, title string) ([][]string, error) {
	defer func(begin time.Time) {
		ms.counter.With("method", "view_directors").Add(1)
		ms.latency.With("method", "view_directors").Observe(time.Since(begin).Seconds())
	}(time.Now())
	return ms.svc.ViewDirectors(ctx, title)
}

func (ms *metricsMiddleware) UpdateDirectors(ctx context.Context, showID int, title string, directors []string) error {
	defer func(begin time.Time) {
		ms.counter.With("method", "update_directors").Add(1)
		ms.latency.With("method", "update_directors").Observe(time.Since(begin).Seconds())
	}(time.Now())
	return ms.svc.UpdateDirectors(ctx, showID, title, directors)
}
