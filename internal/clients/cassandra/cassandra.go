// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cassandra

import (
	"regexp"
	"time"

	"github.com/absmach/netflix/pkg/errors"
	"github.com/caarlos0/env/v11"
	"github.com/gocql/gocql"
)

var (
	errConfig             = errors.New("failed to load Cassandra configuration")
	errConnect            = errors.New("failed to connect to Cassandra database")
	errInvalidKeyspace    = errors.New("invalid keyspace name")
	errInvalidRF          = errors.New("replication factor must be positive")
	errInvalidConsistency = errors.New("invalid consistency level")
	errNoHosts            = errors.New("at least one contact point is required")
)

// Keyspace names are interpolated into CQL, so they are restricted to the
// identifiers Cassandra accepts unquoted.
var keyspaceRegexp = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]{0,47}$`)

// Config contains Cassandra DB specific parameters.
type Config struct {
	Hosts             []string      `env:"CLUSTER"            envDefault:"127.0.0.1" envSeparator:","`
	Port              int           `env:"PORT"               envDefault:"9042"`
	Keyspace          string        `env:"KEYSPACE"           envDefault:"demo"`
	ReplicationFactor int           `env:"REPLICATION_FACTOR" envDefault:"1"`
	LocalDC           string        `env:"LOCAL_DC"           envDefault:"datastax-desktop"`
	Consistency       string        `env:"CONSISTENCY"        envDefault:"local_one"`
	User              string        `env:"USER"               envDefault:""`
	Pass              string        `env:"PASS"               envDefault:""`
	Timeout           time.Duration `env:"TIMEOUT"            envDefault:"10s"`
}

// LoadConfig reads the Cassandra configuration from the environment, every
// key being prefixed with envPrefix.
func LoadConfig(envPrefix string) (Config, error) {
	cfg := Config{}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: envPrefix}); err != nil {
		return Config{}, errors.Wrap(errConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrap(errConfig, err)
	}

	return cfg, nil
}

// Validate checks the parts of the configuration the driver cannot check
// for us.
func (cfg Config) Validate() error {
	if len(cfg.Hosts) == 0 {
		return errNoHosts
	}
	if !ValidKeyspace(cfg.Keyspace) {
		return errInvalidKeyspace
	}
	if cfg.ReplicationFactor < 1 {
		return errInvalidRF
	}
	if _, err := gocql.ParseConsistencyWrapper(cfg.Consistency); err != nil {
		return errors.Wrap(errInvalidConsistency, err)
	}

	return nil
}

// ValidKeyspace reports whether name can be used as an unquoted keyspace name.
func ValidKeyspace(name string) bool {
	return keyspaceRegexp.MatchString(name)
}

// Setup loads configuration from environment and creates new cassandra connection.
func Setup(envPrefix string) (*gocql.Session, Config, error) {
	cfg, err := LoadConfig(envPrefix)
	if err != nil {
		return nil, Config{}, err
	}
	cs, err := Connect(cfg)
	if err != nil {
		return nil, Config{}, err
	}

	return cs, cfg, nil
}

// NewCluster translates the configuration into a driver cluster definition.
// No keyspace is bound to the session since it may not exist yet; statements
// use fully qualified table names instead.
func NewCluster(cfg Config) (*gocql.ClusterConfig, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	consistency, err := gocql.ParseConsistencyWrapper(cfg.Consistency)
	if err != nil {
		return nil, errors.Wrap(errInvalidConsistency, err)
	}

	cluster := gocql.NewCluster(cfg.Hosts...)
	cluster.Port = cfg.Port
	cluster.Consistency = consistency
	if cfg.Timeout > 0 {
		cluster.Timeout = cfg.Timeout
		cluster.ConnectTimeout = cfg.Timeout
	}
	if cfg.LocalDC != "" {
		cluster.PoolConfig.HostSelectionPolicy = gocql.TokenAwareHostPolicy(gocql.DCAwareRoundRobinPolicy(cfg.LocalDC))
	}
	if cfg.User != "" {
		cluster.Authenticator = gocql.PasswordAuthenticator{
			Username: cfg.User,
			Password: cfg.Pass,
		}
	}

	return cluster, nil
}

// Connect establishes connection to the Cassandra cluster.
func Connect(cfg Config) (*gocql.Session, error) {
	cluster, err := NewCluster(cfg)
	if err != nil {
		return nil, errors.Wrap(errConnect, err)
	}

	cassSess, err := cluster.CreateSession()
	if err != nil {
		return nil, errors.Wrap(errConnect, err)
	}

	return cassSess, nil
}
