// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package middleware

import (
	"context"

	"github.com/absmach/netflix/pkg/tracing"
	"github.com/absmach/netflix/titles"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var _ titles.Service = (*tracingMiddleware)(nil)

type tracingMiddleware struct {
	tracer trace.Tracer
	svc    titles.Service
}

// TracingMiddleware adds a span to every service call.
func TracingMiddleware(svc titles.Service, tracer trace.Tracer) titles.Service {
	return &tracingMiddleware{
		tracer: tracer,
		svc:    svc,
	}
}

func (tm *tracingMiddleware) CreateKeyspace(ctx context.Context) (err error) {
	ctx, span := tracing.StartSpan(ctx, tm.tracer, "create_keyspace")
	defer func() { tracing.EndSpan(span, err) }()

	return tm.svc.CreateKeyspace(ctx)
}

func (tm *tracingMiddleware) CreateTables(ctx context.Context) (err error) {
	ctx, span := tracing.StartSpan(ctx, tm.tracer, "create_tables")
	defer func() { tracing.EndSpan(span, err) }()

	return tm.svc.CreateTables(ctx)
}

func (tm *tracingMiddleware) Import(ctx context.Context, ts ...titles.Title) (err error) {
	ctx, span := tracing.StartSpan(ctx, tm.tracer, "import_titles", trace.WithAttributes(
		attribute.Int("count", len(ts)),
	))
	defer func() { tracing.EndSpan(span, err) }()

	return tm.svc.Import(ctx, ts...)
}

func (tm *tracingMiddleware) ReadAll(ctx context.Context, table titles.Table) (rows []titles.Row, err error) {
	ctx, span := tracing.StartSpan(ctx, tm.tracer, "read_all", trace.WithAttributes(
		attribute.String("table", table.String()),
	))
	defer func() { tracing.EndSpan(span, err) }()

	return tm.svc.ReadAll(ctx, table)
}

func (tm *tracingMiddleware) ViewTitle(ctx context.Context, title string) (ts []titles.Title, err error) {
	ctx, span := tracing.StartSpan(ctx, tm.tracer, "view_title", trace.WithAttributes(
		attribute.String("title", title),
	))
	defer func() { tracing.EndSpan(span, err) }()

	return tm.svc.ViewTitle(ctx, title)
}

func (tm *tracingMiddleware) ViewDirectors(ctx context.Context, title string) (directors [][]string, err error) {
	ctx, span := tracing.StartSpan(ctx, tm.tracer, "view_directors", trace.WithAttributes(
		attribute.String("title", title),
	))
	defer func() { tracing.EndSpan(span, err) }()

	return tm.svc.ViewDirectors(ctx, title)
}

func (tm *tracingMiddleware) UpdateDirectors(ctx context.Context, showID int, title string, directors []string) (err error) {
	ctx, span := tracing.StartSpan(ctx, tm.tracer, "update_directors", trace.WithAttributes(
		attribute.Int("show_id", showID),
		attribute.String("title", title),
		attribute.StringSlice("directors", directors),
	))
	defer func() { tracing.EndSpan(span, err) }()

	return tm.svc.UpdateDirectors(ctx, showID, title, directors)
}
