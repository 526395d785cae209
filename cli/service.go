// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cli

import "github.com/absmach/netflix/titles"

// Keep service handle in global var
var svc titles.Service

// SetService sets the titles service the commands run against.
func SetService(s titles.Service) {
	svc = s
}
