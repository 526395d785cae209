// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package middleware provides logging, metrics and tracing decorators for the
// titles service.
package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/absmach/netflix/titles"
)

var _ titles.Service = (*loggingMiddleware)(nil)

type loggingMiddleware struct {
	logger *slog.Logger
	svc    titles.Service
}

// LoggingMiddleware adds logging facilities to the titles service.
func LoggingMiddleware(svc titles.Service, logger *slog.Logger) titles.Service {
	return &loggingMiddleware{
		logger: logger,
		svc:    svc,
	}
}

func (lm *loggingMiddleware) CreateKeyspace(ctx context.Context) (err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Create keyspace failed", args...)
			return
		}
		lm.logger.Info("Create keyspace completed successfully", args...)
	}(time.Now())

	return lm.svc.CreateKeyspace(ctx)
}

func (lm *loggingMiddleware) CreateTables(ctx context.Context) (err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Create tables failed", args...)
			return
		}
		lm.logger.Info("Create tables completed successfully", args...)
	}(time.Now())

	return lm.svc.CreateTables(ctx)
}

func (lm *loggingMiddleware) Import(ctx context.Context, ts ...titles.Title) (err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.Int("count", len(ts)),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Import titles failed", args...)
			return
		}
		lm.logger.Info("Import titles completed successfully", args...)
	}(time.Now())

	return lm.svc.Import(ctx, ts...)
}

func (lm *loggingMiddleware) ReadAll(ctx context.Context, table titles.Table) (rows []titles.Row, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("table", table.String()),
			slog.Int("rows", len(rows)),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Read all rows failed", args...)
			return
		}
		lm.logger.Info("Read all rows completed successfully", args...)
	}(time.Now())

	return lm.svc.ReadAll(ctx, table)
}

func (lm *loggingMiddleware) ViewTitle(ctx context.Context, title string) (ts []titles.Title, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("title", title),
			slog.Int("rows", len(ts)),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("View title failed", args...)
			return
		}
		lm.logger.Info("View title completed successfully", args...)
	}(time.Now())

	return lm.svc.ViewTitle(ctx, title)
}

func (lm *loggingMiddleware) ViewDirectors(ctx context.Context, title string) (directors [][]string, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("title", title),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("View directors failed", args...)
			return
		}
		lm.logger.Info("View directors completed successfully", args...)
	}(time.Now())

	return lm.svc.ViewDirectors(ctx, title)
}

func (lm *loggingMiddleware) UpdateDirectors(ctx context.Context, showID int, title string, directors []string) (err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.Group("title",
				slog.Int("show_id", showID),
				slog.String("title", title),
				slog.Any("directors", directors),
			),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Update directors failed", args...)
			return
		}
		lm.logger.Info("Update directors completed successfully", args...)
	}(time.Now())

	return lm.svc.UpdateDirectors(ctx, showID, title, directors)
}
