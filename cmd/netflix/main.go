// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package main contains the netflix command running the titles quickstart
// against a Cassandra cluster.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/url"
	"os"
	"time"

	"github.com/absmach/netflix"
	"github.com/absmach/netflix/cli"
	casclient "github.com/absmach/netflix/internal/clients/cassandra"
	"github.com/absmach/netflix/internal/server"
	mglog "github.com/absmach/netflix/logger"
	jaegerclient "github.com/absmach/netflix/pkg/jaeger"
	"github.com/absmach/netflix/pkg/prometheus"
	"github.com/absmach/netflix/pkg/uuid"
	"github.com/absmach/netflix/titles"
	"github.com/absmach/netflix/titles/cassandra"
	"github.com/absmach/netflix/titles/middleware"
	"github.com/caarlos0/env/v11"
	"github.com/gocql/gocql"
	"github.com/spf13/cobra"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

const (
	svcName     = "netflix"
	envPrefixDB = "MG_NETFLIX_DB_"
	envFile     = "MG_NETFLIX_ENV_FILE"
	pushTimeout = 5 * time.Second
)

type config struct {
	LogLevel       string  `env:"MG_NETFLIX_LOG_LEVEL"       envDefault:"info"`
	InstanceID     string  `env:"MG_NETFLIX_INSTANCE_ID"     envDefault:""`
	JaegerURL      url.URL `env:"MG_JAEGER_URL"              envDefault:""`
	TraceRatio     float64 `env:"MG_JAEGER_TRACE_RATIO"      envDefault:"1.0"`
	PushGatewayURL string  `env:"MG_NETFLIX_PUSHGATEWAY_URL" envDefault:""`
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	g, ctx := errgroup.WithContext(ctx)

	if err := netflix.LoadEnvFile(netflix.Env(envFile, "")); err != nil {
		log.Fatalf("failed to load %s environment file : %s", svcName, err)
	}

	cfg := config{}
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("failed to load %s configuration : %s", svcName, err)
	}

	logger, err := mglog.New(os.Stdout, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %s", err)
	}

	var exitCode int
	defer mglog.ExitWithError(&exitCode)

	if cfg.InstanceID == "" {
		if cfg.InstanceID, err = uuid.New().ID(); err != nil {
			logger.Error(fmt.Sprintf("failed to generate instanceID: %s", err))
			exitCode = 1
			return
		}
	}

	dbConfig, err := casclient.LoadConfig(envPrefixDB)
	if err != nil {
		logger.Error(err.Error())
		exitCode = 1
		return
	}

	tp, err := newTracerProvider(ctx, cfg)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to init Jaeger: %s", err))
		exitCode = 1
		return
	}
	defer func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			logger.Error(fmt.Sprintf("error shutting down tracer provider: %s", err))
		}
	}()
	tracer := tp.Tracer(svcName)

	var session *gocql.Session
	defer func() {
		if session != nil {
			session.Close()
		}
	}()

	rootCmd := &cobra.Command{
		Use:   "netflix",
		Short: "Netflix titles quickstart",
		Long:  `Creates, fills, queries and updates the Netflix titles tables`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !needsSession(cmd) {
				return nil
			}
			if session, err = casclient.Connect(dbConfig); err != nil {
				return err
			}
			logger.Info(fmt.Sprintf("%s connected to Cassandra cluster %v", svcName, dbConfig.Hosts))
			cli.SetService(newService(session, dbConfig, logger, tracer))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(cli.NewRunCmd())
	rootCmd.AddCommand(cli.NewSchemaCmd())
	rootCmd.AddCommand(cli.NewImportCmd())
	rootCmd.AddCommand(cli.NewReadCmd())
	rootCmd.AddCommand(cli.NewTitleCmd())
	rootCmd.AddCommand(cli.NewDirectorCmd())
	rootCmd.AddCommand(cli.NewUpdateDirectorCmd())
	rootCmd.AddCommand(cli.NewVersionCmd())

	// Root Flags
	rootCmd.PersistentFlags().BoolVarP(
		&cli.RawOutput,
		"raw",
		"r",
		false,
		"Enables raw output mode for easier parsing of output",
	)

	// Walkthrough Flags
	rootCmd.PersistentFlags().StringVarP(
		&cli.Dataset,
		"dataset",
		"d",
		"",
		"YAML dataset to import, bundled dataset if empty",
	)

	rootCmd.PersistentFlags().StringVarP(
		&cli.Title,
		"title",
		"t",
		titles.DefaultTitle,
		"Title read and updated by the walkthrough",
	)

	rootCmd.PersistentFlags().IntVarP(
		&cli.ShowID,
		"show-id",
		"s",
		titles.DefaultShowID,
		"Show id of the row updated by the walkthrough",
	)

	rootCmd.PersistentFlags().StringSliceVarP(
		&cli.Directors,
		"director",
		"D",
		titles.DefaultDirectors(),
		"Directors set by the walkthrough",
	)

	g.Go(func() error {
		defer cancel()
		if err := rootCmd.ExecuteContext(ctx); err != nil {
			return err
		}
		return cli.Err()
	})

	g.Go(func() error {
		return server.StopSignalHandler(ctx, cancel, logger, svcName)
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("%s run failed: %s", svcName, err))
		exitCode = 1
	}

	if cfg.PushGatewayURL != "" {
		pushCtx, pushCancel := context.WithTimeout(context.Background(), pushTimeout)
		defer pushCancel()
		if err := prometheus.Push(pushCtx, cfg.PushGatewayURL, svcName, cfg.InstanceID, nil); err != nil {
			logger.Warn(fmt.Sprintf("failed to push metrics: %s", err))
		}
	}
}

// needsSession reports whether cmd talks to the cluster.
func needsSession(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "version", "help", "completion":
		return false
	default:
		return cmd.HasParent()
	}
}

// newTracerProvider exports spans to Jaeger when a collector is configured
// and samples nothing otherwise.
func newTracerProvider(ctx context.Context, cfg config) (*tracesdk.TracerProvider, error) {
	if cfg.JaegerURL == (url.URL{}) {
		return tracesdk.NewTracerProvider(tracesdk.WithSampler(tracesdk.NeverSample())), nil
	}

	return jaegerclient.NewProvider(ctx, svcName, cfg.JaegerURL, cfg.InstanceID, cfg.TraceRatio)
}

func newService(session *gocql.Session, dbConfig casclient.Config, logger *slog.Logger, tracer trace.Tracer) titles.Service {
	repo := cassandra.New(session, dbConfig.Keyspace, dbConfig.ReplicationFactor)

	svc := titles.NewService(repo)
	svc = middleware.LoggingMiddleware(svc, logger)
	counter, latency := prometheus.MakeMetrics(svcName, "titles")
	svc = middleware.MetricsMiddleware(svc, counter, latency)
	svc = middleware.TracingMiddleware(svc, tracer)

	return svc
}
