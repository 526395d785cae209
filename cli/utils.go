// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/hokaccha/go-prettyjson"
	"github.com/spf13/cobra"
)

var (
	// RawOutput raw output mode.
	RawOutput bool = false
	// Dataset path of the YAML dataset to import, bundled dataset if empty.
	Dataset string = ""
	// Title walkthrough title parameter.
	Title string = ""
	// ShowID walkthrough show id parameter.
	ShowID int = 0
	// Directors walkthrough directors parameter.
	Directors []string
)

var cmdErr error

func init() {
	// Each execution reports only its own error.
	cobra.OnInitialize(func() { cmdErr = nil })
}

// Err returns the last error a command reported, if any.
func Err() error {
	return cmdErr
}

func logJSONCmd(cmd cobra.Command, iList ...interface{}) {
	for _, i := range iList {
		m, err := json.Marshal(i)
		if err != nil {
			logErrorCmd(cmd, err)
			return
		}

		if RawOutput {
			fmt.Fprintln(cmd.OutOrStdout(), string(m))
			continue
		}

		pj, err := prettyjson.Format(m)
		if err != nil {
			logErrorCmd(cmd, err)
			return
		}

		fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n\n", string(pj))
	}
}

func logUsageCmd(cmd cobra.Command, u string) {
	fmt.Fprintf(cmd.OutOrStdout(), color.YellowString("\nusage: %s\n\n"), u)
}

func logErrorCmd(cmd cobra.Command, err error) {
	cmdErr = err
	boldRed := color.New(color.FgRed, color.Bold)
	boldRed.Fprintf(cmd.ErrOrStderr(), "\nerror: ")

	fmt.Fprintf(cmd.ErrOrStderr(), "%s\n\n", color.RedString(err.Error()))
}

func logOKCmd(cmd cobra.Command) {
	if RawOutput {
		fmt.Fprintln(cmd.OutOrStdout(), "ok")
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n\n", color.BlueString("ok"))
}
