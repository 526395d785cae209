// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package prometheus

import (
	"context"

	"github.com/absmach/netflix/pkg/errors"
	kitprometheus "github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

const instanceLabel = "instance"

// ErrPush indicates that metrics could not be delivered to the Pushgateway.
var ErrPush = errors.New("failed to push metrics")

// MakeMetrics returns an instance of Prometheus implementations for metrics.
// It returns a request counter and a request latency summary, both registered
// with the default registry.
//
//	counter, latency := metrics.MakeMetrics("netflix", "titles")
func MakeMetrics(namespace, subsystem string) (*kitprometheus.Counter, *kitprometheus.Summary) {
	counter := kitprometheus.NewCounterFrom(stdprometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request_count",
		Help:      "Number of requests received.",
	}, []string{"method"})
	latency := kitprometheus.NewSummaryFrom(stdprometheus.SummaryOpts{
		Namespace:  namespace,
		Subsystem:  subsystem,
		Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		Name:       "request_latency_microseconds",
		Help:       "Total duration of requests in microseconds.",
	}, []string{"method"})

	return counter, latency
}

// Push delivers everything gathered by g to the Pushgateway at url, grouped
// by job and instance. A quickstart run is too short lived to be scraped, so
// its metrics are pushed once the command completes.
func Push(ctx context.Context, url, job, instance string, g stdprometheus.Gatherer) error {
	if g == nil {
		g = stdprometheus.DefaultGatherer
	}
	if err := push.New(url, job).Gatherer(g).Grouping(instanceLabel, instance).PushContext(ctx); err != nil {
		return errors.Wrap(ErrPush, err)
	}

	return nil
}
