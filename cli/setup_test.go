// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cli_test

import (
	"bytes"
	"testing"

	"github.com/absmach/netflix/cli"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

type outputLog uint8

const (
	usageLog outputLog = iota
	errLog
	entityLog
	okLog
)

func executeCommand(t *testing.T, root *cobra.Command, args ...string) string {
	buffer := new(bytes.Buffer)
	root.SetOut(buffer)
	root.SetErr(buffer)
	root.SetArgs(args)
	err := root.Execute()
	assert.NoError(t, err, "Error executing command")
	return buffer.String()
}

func newRootCmd(cmds ...*cobra.Command) *cobra.Command {
	rootCmd := &cobra.Command{Use: "netflix"}
	rootCmd.AddCommand(cmds...)
	return setFlags(rootCmd)
}

func setFlags(rootCmd *cobra.Command) *cobra.Command {
	rootCmd.PersistentFlags().BoolVarP(
		&cli.RawOutput,
		"raw",
		"r",
		false,
		"Enables raw output mode for easier parsing of output",
	)

	rootCmd.PersistentFlags().StringVarP(
		&cli.Dataset,
		"dataset",
		"d",
		"",
		"YAML dataset path",
	)

	rootCmd.PersistentFlags().StringVarP(
		&cli.Title,
		"title",
		"t",
		"",
		"Walkthrough title",
	)

	rootCmd.PersistentFlags().IntVarP(
		&cli.ShowID,
		"show-id",
		"s",
		0,
		"Walkthrough show id",
	)

	rootCmd.PersistentFlags().StringSliceVarP(
		&cli.Directors,
		"director",
		"D",
		nil,
		"Walkthrough directors",
	)

	return rootCmd
}
