// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package cassandra contains the environment driven configuration and the
// session constructor for the Cassandra cluster the quickstart runs against.
package cassandra
