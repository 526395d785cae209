// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package netflix

// Version is the current release of the netflix quickstart.
const Version = "0.1.0"

// VersionInfo contains the version command response.
type VersionInfo struct {
	// Service contains service name.
	Service string `json:"service"`

	// Version contains service current version value.
	Version string `json:"version"`
}

// NewVersionInfo returns the version information for the given service.
func NewVersionInfo(service string) VersionInfo {
	return VersionInfo{Service: service, Version: Version}
}
