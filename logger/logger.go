// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package logger builds the structured logger shared by the netflix commands.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"
)

// New returns a JSON slog.Logger writing to w at the given level.
// The level is one of debug, info, warn or error, case insensitive.
func New(w io.Writer, levelText string) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(levelText)); err != nil {
		return &slog.Logger{}, fmt.Errorf(`{"level":"error","message":"%s: %s","ts":"%s"}`, err, levelText, time.Now().Format(time.RFC3339Nano))
	}

	logHandler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})

	return slog.New(logHandler), nil
}

// ExitWithError terminates the process with the given code when it is
// non-zero. It is meant to be deferred first in main so that every other
// deferred cleanup runs before the process exits.
func ExitWithError(code *int) {
	if code != nil && *code != 0 {
		os.Exit(*code)
	}
}
