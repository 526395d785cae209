// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"github.com/absmach/netflix"
	"github.com/spf13/cobra"
)

// NewVersionCmd returns version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Netflix quickstart version",
		Long:  `Netflix quickstart version`,
		Run: func(cmd *cobra.Command, args []string) {
			logJSONCmd(*cmd, netflix.NewVersionInfo("netflix"))
		},
	}
}
