// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"strconv"

	"github.com/absmach/netflix/titles"
	"github.com/spf13/cobra"
)

// NewRunCmd returns the command running the whole walkthrough.
func NewRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the titles walkthrough",
		Long: "Creates the schema, imports the dataset, reads every table, reads a title\n" +
			"and its directors, updates the directors and reads them again\n" +
			"Usage:\n" +
			"\tnetflix run - runs the walkthrough with the bundled dataset\n" +
			"\tnetflix run --dataset <file> --title <title> --show-id <show_id> --director <director> - runs the walkthrough with custom values\n",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 0 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			plan, err := newPlan()
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			rep, err := titles.Walkthrough(cmd.Context(), svc, plan)
			if err != nil {
				if !rep.Empty() {
					logJSONCmd(*cmd, rep)
				}
				logErrorCmd(*cmd, err)
				return
			}

			logJSONCmd(*cmd, rep)
		},
	}
}

// NewSchemaCmd returns the command creating the keyspace and the tables.
func NewSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Create keyspace and tables",
		Long:  `Creates the keyspace and the master, by date and by rating tables if they do not exist`,
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 0 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			if err := svc.CreateKeyspace(cmd.Context()); err != nil {
				logErrorCmd(*cmd, err)
				return
			}
			if err := svc.CreateTables(cmd.Context()); err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logOKCmd(*cmd)
		},
	}
}

// NewImportCmd returns the command importing a dataset.
func NewImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import [dataset_file]",
		Short: "Import titles",
		Long: "Imports titles into every table\n" +
			"Usage:\n" +
			"\tnetflix import - imports the bundled dataset\n" +
			"\tnetflix import <dataset_file> - imports titles from a YAML file\n",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) > 1 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			path := Dataset
			if len(args) == 1 {
				path = args[0]
			}
			ts, err := titles.LoadDataset(path)
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			if err := svc.Import(cmd.Context(), ts...); err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logOKCmd(*cmd)
		},
	}
}

// NewReadCmd returns the command listing every row of a table.
func NewReadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read <table>",
		Short: "Read all rows of a table",
		Long: "Reads all rows of a table\n" +
			"Usage:\n" +
			"\tnetflix read master - reads netflix_master\n" +
			"\tnetflix read date - reads netflix_titles_by_date\n" +
			"\tnetflix read rating - reads netflix_titles_by_rating\n",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 1 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			table, err := titles.ParseTable(args[0])
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			rows, err := svc.ReadAll(cmd.Context(), table)
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logJSONCmd(*cmd, rows)
		},
	}
}

// NewTitleCmd returns the command reading the master rows of a title.
func NewTitleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "title <title>",
		Short: "View title",
		Long:  `Reads the master rows of a title`,
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 1 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			ts, err := svc.ViewTitle(cmd.Context(), args[0])
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logJSONCmd(*cmd, ts)
		},
	}
}

// NewDirectorCmd returns the command reading the directors of a title.
func NewDirectorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "director <title>",
		Short: "View directors",
		Long:  `Reads the director column of the master rows of a title`,
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 1 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			directors, err := svc.ViewDirectors(cmd.Context(), args[0])
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logJSONCmd(*cmd, directors)
		},
	}
}

// NewUpdateDirectorCmd returns the command replacing the directors of a title.
func NewUpdateDirectorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update-director <show_id> <title> <director>...",
		Short: "Update directors",
		Long: "Replaces the directors of an existing title\n" +
			"Usage:\n" +
			"\tnetflix update-director 100000001 'Pulp Fiction' 'Quentin Jerome Tarantino'\n",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) < 3 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			showID, err := strconv.Atoi(args[0])
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			if err := svc.UpdateDirectors(cmd.Context(), showID, args[1], args[2:]); err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logOKCmd(*cmd)
		},
	}
}

// newPlan builds the walkthrough plan from the default plan and the flags.
func newPlan() (titles.Plan, error) {
	plan, err := titles.DefaultPlan()
	if err != nil {
		return titles.Plan{}, err
	}
	if Dataset != "" {
		if plan.Titles, err = titles.LoadDataset(Dataset); err != nil {
			return titles.Plan{}, err
		}
	}
	if Title != "" {
		plan.Title = Title
	}
	if ShowID != 0 {
		plan.ShowID = ShowID
	}
	if len(Directors) > 0 {
		plan.Directors = Directors
	}

	return plan, nil
}
