// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package server contains the lifecycle helpers shared by the commands.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/absmach/netflix/pkg/errors"
)

// ErrInterrupted indicates that a run was stopped by a signal.
var ErrInterrupted = errors.New("interrupted by signal")

// StopSignalHandler waits for SIGINT or SIGABRT and cancels the run, or
// returns nil once ctx is done.
func StopSignalHandler(ctx context.Context, cancel context.CancelFunc, logger *slog.Logger, svcName string) error {
	c := make(chan os.Signal, 2)
	signal.Notify(c, syscall.SIGINT, syscall.SIGABRT)
	defer signal.Stop(c)

	select {
	case sig := <-c:
		defer cancel()
		logger.Info(fmt.Sprintf("%s shutdown by signal: %s", svcName, sig))
		return errors.Wrap(ErrInterrupted, errors.New(sig.String()))
	case <-ctx.Done():
		return nil
	}
}
