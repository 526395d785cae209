// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package netflix

import (
	"os"

	"github.com/subosito/gotenv"
)

// Env reads specified environment variable. If no value has been found,
// fallback is returned.
func Env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

// LoadEnvFile loads environment variables defined in an .env formatted file.
// Variables already present in the environment are left untouched. An empty
// path is a no-op.
func LoadEnvFile(envfilepath string) error {
	if envfilepath == "" {
		return nil
	}
	return gotenv.Load(envfilepath)
}
