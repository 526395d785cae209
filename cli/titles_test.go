// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cli_test

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/absmach/netflix"
	"github.com/absmach/netflix/cli"
	"github.com/absmach/netflix/pkg/errors"
	svcerr "github.com/absmach/netflix/pkg/errors/service"
	"github.com/absmach/netflix/titles"
	"github.com/absmach/netflix/titles/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	pulpFiction = titles.Title{
		Title:       "Pulp Fiction",
		ShowID:      100000001,
		Country:     []string{"United States"},
		DateAdded:   time.Date(2019, time.January, 19, 0, 0, 0, 0, time.UTC),
		Director:    []string{"Quentin Tarantino"},
		Duration:    "154 min",
		Rating:      "R",
		ReleaseYear: 1994,
		Type:        "Movie",
	}
	errDriver = errors.New("gocql: no hosts available in the pool")
	extraArg  = "extra-arg"
)

func TestSchemaCmd(t *testing.T) {
	svcMock := new(mocks.Service)
	cli.SetService(svcMock)
	rootCmd := newRootCmd(cli.NewSchemaCmd())

	schemaErr := errors.Wrap(svcerr.ErrSchema, errDriver)

	cases := []struct {
		desc        string
		args        []string
		keyspaceErr error
		tablesErr   error
		logType     outputLog
		errLog      string
	}{
		{
			desc:    "create schema successfully",
			args:    []string{"schema"},
			logType: okLog,
		},
		{
			desc:        "create schema with keyspace error",
			args:        []string{"schema"},
			keyspaceErr: schemaErr,
			logType:     errLog,
			errLog:      fmt.Sprintf("\nerror: %s\n\n", schemaErr),
		},
		{
			desc:      "create schema with tables error",
			args:      []string{"schema"},
			tablesErr: schemaErr,
			logType:   errLog,
			errLog:    fmt.Sprintf("\nerror: %s\n\n", schemaErr),
		},
		{
			desc:    "create schema with extra args",
			args:    []string{"schema", extraArg},
			logType: usageLog,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			keyspaceCall := svcMock.On("CreateKeyspace", mock.Anything).Return(tc.keyspaceErr)
			tablesCall := svcMock.On("CreateTables", mock.Anything).Return(tc.tablesErr)
			out := executeCommand(t, rootCmd, tc.args...)

			switch tc.logType {
			case okLog:
				assert.True(t, strings.Contains(out, "ok"), fmt.Sprintf("%s invalid output: %s", tc.desc, out))
			case errLog:
				assert.Equal(t, tc.errLog, out, fmt.Sprintf("%s unexpected error response: expected %s got %s", tc.desc, tc.errLog, out))
			case usageLog:
				assert.True(t, strings.Contains(out, "usage: schema"), fmt.Sprintf("%s invalid usage: %s", tc.desc, out))
			}
			keyspaceCall.Unset()
			tablesCall.Unset()
		})
	}
}

func TestImportCmd(t *testing.T) {
	svcMock := new(mocks.Service)
	cli.SetService(svcMock)
	rootCmd := newRootCmd(cli.NewImportCmd())

	bundled, err := titles.LoadDataset("")
	require.Nil(t, err, fmt.Sprintf("unexpected error %s", err))
	importErr := errors.Wrap(svcerr.ErrCreateEntity, errDriver)

	cases := []struct {
		desc    string
		args    []string
		titles  []titles.Title
		svcErr  error
		logType outputLog
		errLog  string
	}{
		{
			desc:    "import bundled dataset",
			args:    []string{"import"},
			titles:  bundled,
			logType: okLog,
		},
		{
			desc:    "import with service error",
			args:    []string{"import"},
			titles:  bundled,
			svcErr:  importErr,
			logType: errLog,
			errLog:  fmt.Sprintf("\nerror: %s\n\n", importErr),
		},
		{
			desc:    "import missing dataset file",
			args:    []string{"import", "/nonexistent/titles.yaml"},
			logType: errLog,
		},
		{
			desc:    "import with extra args",
			args:    []string{"import", "titles.yaml", extraArg},
			logType: usageLog,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			svcCall := svcMock.On("Import", mock.Anything, tc.titles).Return(tc.svcErr)
			out := executeCommand(t, rootCmd, tc.args...)

			switch tc.logType {
			case okLog:
				assert.True(t, strings.Contains(out, "ok"), fmt.Sprintf("%s invalid output: %s", tc.desc, out))
				svcMock.AssertCalled(t, "Import", mock.Anything, tc.titles)
			case errLog:
				if tc.errLog != "" {
					assert.Equal(t, tc.errLog, out, fmt.Sprintf("%s unexpected error response: expected %s got %s", tc.desc, tc.errLog, out))
				}
				assert.True(t, strings.Contains(out, "error: "), fmt.Sprintf("%s invalid output: %s", tc.desc, out))
			case usageLog:
				assert.True(t, strings.Contains(out, "usage: import"), fmt.Sprintf("%s invalid usage: %s", tc.desc, out))
			}
			svcCall.Unset()
		})
	}
}

func TestReadCmd(t *testing.T) {
	svcMock := new(mocks.Service)
	cli.SetService(svcMock)
	rootCmd := newRootCmd(cli.NewReadCmd())

	rows := []titles.Row{
		{"rating": "R", "title": "Pulp Fiction"},
		{"rating": "TV-18", "title": "Life of Jimmy"},
	}

	cases := []struct {
		desc    string
		args    []string
		table   titles.Table
		rows    []titles.Row
		svcErr  error
		logType outputLog
		errLog  string
	}{
		{
			desc:    "read table by alias",
			args:    []string{"read", "rating"},
			table:   titles.ByRating,
			rows:    rows,
			logType: entityLog,
		},
		{
			desc:    "read table by name",
			args:    []string{"read", "netflix_titles_by_rating"},
			table:   titles.ByRating,
			rows:    rows,
			logType: entityLog,
		},
		{
			desc:    "read unknown table",
			args:    []string{"read", "netflix_titles"},
			logType: errLog,
			errLog:  fmt.Sprintf("\nerror: %s\n\n", errors.Wrap(titles.ErrUnknownTable, errors.New("netflix_titles"))),
		},
		{
			desc:    "read with service error",
			args:    []string{"read", "master"},
			table:   titles.Master,
			svcErr:  errors.Wrap(svcerr.ErrViewEntity, errDriver),
			logType: errLog,
			errLog:  fmt.Sprintf("\nerror: %s\n\n", errors.Wrap(svcerr.ErrViewEntity, errDriver)),
		},
		{
			desc:    "read without table",
			args:    []string{"read"},
			logType: usageLog,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			svcCall := svcMock.On("ReadAll", mock.Anything, tc.table).Return(tc.rows, tc.svcErr)
			out := executeCommand(t, rootCmd, tc.args...)

			switch tc.logType {
			case entityLog:
				var res []titles.Row
				err := json.Unmarshal([]byte(out), &res)
				assert.Nil(t, err, fmt.Sprintf("%s unexpected error decoding output: %s", tc.desc, err))
				assert.Equal(t, tc.rows, res, fmt.Sprintf("%s unexpected response: expected %v got %v", tc.desc, tc.rows, res))
			case errLog:
				assert.Equal(t, tc.errLog, out, fmt.Sprintf("%s unexpected error response: expected %s got %s", tc.desc, tc.errLog, out))
			case usageLog:
				assert.True(t, strings.Contains(out, "usage: read <table>"), fmt.Sprintf("%s invalid usage: %s", tc.desc, out))
			}
			svcCall.Unset()
		})
	}
}

func TestTitleCmd(t *testing.T) {
	svcMock := new(mocks.Service)
	cli.SetService(svcMock)
	rootCmd := newRootCmd(cli.NewTitleCmd())

	cases := []struct {
		desc    string
		args    []string
		title   string
		res     []titles.Title
		svcErr  error
		logType outputLog
		errLog  string
	}{
		{
			desc:    "view title successfully",
			args:    []string{"title", pulpFiction.Title},
			title:   pulpFiction.Title,
			res:     []titles.Title{pulpFiction},
			logType: entityLog,
		},
		{
			desc:    "view missing title",
			args:    []string{"title", "Jackie Brown"},
			title:   "Jackie Brown",
			svcErr:  svcerr.ErrNotFound,
			logType: errLog,
			errLog:  fmt.Sprintf("\nerror: %s\n\n", svcerr.ErrNotFound),
		},
		{
			desc:    "view title with extra args",
			args:    []string{"title", pulpFiction.Title, extraArg},
			logType: usageLog,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			svcCall := svcMock.On("ViewTitle", mock.Anything, tc.title).Return(tc.res, tc.svcErr)
			out := executeCommand(t, rootCmd, tc.args...)

			switch tc.logType {
			case entityLog:
				var res []titles.Title
				err := json.Unmarshal([]byte(out), &res)
				assert.Nil(t, err, fmt.Sprintf("%s unexpected error decoding output: %s", tc.desc, err))
				assert.Equal(t, tc.res, res, fmt.Sprintf("%s unexpected response: expected %v got %v", tc.desc, tc.res, res))
			case errLog:
				assert.Equal(t, tc.errLog, out, fmt.Sprintf("%s unexpected error response: expected %s got %s", tc.desc, tc.errLog, out))
			case usageLog:
				assert.True(t, strings.Contains(out, "usage: title <title>"), fmt.Sprintf("%s invalid usage: %s", tc.desc, out))
			}
			svcCall.Unset()
		})
	}
}

func TestDirectorCmd(t *testing.T) {
	svcMock := new(mocks.Service)
	cli.SetService(svcMock)
	rootCmd := newRootCmd(cli.NewDirectorCmd())

	cases := []struct {
		desc    string
		args    []string
		title   string
		res     [][]string
		svcErr  error
		logType outputLog
		errLog  string
	}{
		{
			desc:    "view directors successfully",
			args:    []string{"director", pulpFiction.Title},
			title:   pulpFiction.Title,
			res:     [][]string{{"Quentin Tarantino"}},
			logType: entityLog,
		},
		{
			desc:    "view directors of missing title",
			args:    []string{"director", "Jackie Brown"},
			title:   "Jackie Brown",
			svcErr:  svcerr.ErrNotFound,
			logType: errLog,
			errLog:  fmt.Sprintf("\nerror: %s\n\n", svcerr.ErrNotFound),
		},
		{
			desc:    "view directors without title",
			args:    []string{"director"},
			logType: usageLog,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			svcCall := svcMock.On("ViewDirectors", mock.Anything, tc.title).Return(tc.res, tc.svcErr)
			out := executeCommand(t, rootCmd, tc.args...)

			switch tc.logType {
			case entityLog:
				var res [][]string
				err := json.Unmarshal([]byte(out), &res)
				assert.Nil(t, err, fmt.Sprintf("%s unexpected error decoding output: %s", tc.desc, err))
				assert.Equal(t, tc.res, res, fmt.Sprintf("%s unexpected response: expected %v got %v", tc.desc, tc.res, res))
			case errLog:
				assert.Equal(t, tc.errLog, out, fmt.Sprintf("%s unexpected error response: expected %s got %s", tc.desc, tc.errLog, out))
			case usageLog:
				assert.True(t, strings.Contains(out, "usage: director <title>"), fmt.Sprintf("%s invalid usage: %s", tc.desc, out))
			}
			svcCall.Unset()
		})
	}
}

func TestUpdateDirectorCmd(t *testing.T) {
	svcMock := new(mocks.Service)
	cli.SetService(svcMock)
	rootCmd := newRootCmd(cli.NewUpdateDirectorCmd())

	cases := []struct {
		desc      string
		args      []string
		showID    int
		title     string
		directors []string
		svcErr    error
		logType   outputLog
		errLog    string
	}{
		{
			desc:      "update single director",
			args:      []string{"update-director", "100000001", pulpFiction.Title, "Quentin Jerome Tarantino"},
			showID:    100000001,
			title:     pulpFiction.Title,
			directors: []string{"Quentin Jerome Tarantino"},
			logType:   okLog,
		},
		{
			desc:      "update multiple directors",
			args:      []string{"update-director", "100000001", pulpFiction.Title, "Quentin Tarantino", "Roger Avary"},
			showID:    100000001,
			title:     pulpFiction.Title,
			directors: []string{"Quentin Tarantino", "Roger Avary"},
			logType:   okLog,
		},
		{
			desc:      "update directors of missing title",
			args:      []string{"update-director", "7", "Jackie Brown", "Quentin Tarantino"},
			showID:    7,
			title:     "Jackie Brown",
			directors: []string{"Quentin Tarantino"},
			svcErr:    svcerr.ErrNotFound,
			logType:   errLog,
			errLog:    fmt.Sprintf("\nerror: %s\n\n", svcerr.ErrNotFound),
		},
		{
			desc:    "update directors with invalid show id",
			args:    []string{"update-director", "abc", pulpFiction.Title, "Quentin Tarantino"},
			logType: errLog,
		},
		{
			desc:    "update directors without directors",
			args:    []string{"update-director", "100000001", pulpFiction.Title},
			logType: usageLog,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			svcCall := svcMock.On("UpdateDirectors", mock.Anything, tc.showID, tc.title, tc.directors).Return(tc.svcErr)
			out := executeCommand(t, rootCmd, tc.args...)

			switch tc.logType {
			case okLog:
				assert.True(t, strings.Contains(out, "ok"), fmt.Sprintf("%s invalid output: %s", tc.desc, out))
				svcMock.AssertCalled(t, "UpdateDirectors", mock.Anything, tc.showID, tc.title, tc.directors)
			case errLog:
				if tc.errLog != "" {
					assert.Equal(t, tc.errLog, out, fmt.Sprintf("%s unexpected error response: expected %s got %s", tc.desc, tc.errLog, out))
				}
				assert.True(t, strings.Contains(out, "error: "), fmt.Sprintf("%s invalid output: %s", tc.desc, out))
			case usageLog:
				assert.True(t, strings.Contains(out, "usage: update-director"), fmt.Sprintf("%s invalid usage: %s", tc.desc, out))
			}
			svcCall.Unset()
		})
	}
}

func TestRunCmd(t *testing.T) {
	svcMock := new(mocks.Service)
	cli.SetService(svcMock)
	rootCmd := newRootCmd(cli.NewRunCmd())

	bundled, err := titles.LoadDataset("")
	require.Nil(t, err, fmt.Sprintf("unexpected error %s", err))
	rows := []titles.Row{{"title": "Pulp Fiction"}}
	updated := []string{"Quentin Jerome Tarantino"}

	svcMock.On("CreateKeyspace", mock.Anything).Return(nil)
	svcMock.On("CreateTables", mock.Anything).Return(nil)
	svcMock.On("Import", mock.Anything, bundled).Return(nil)
	svcMock.On("ReadAll", mock.Anything, mock.Anything).Return(rows, nil)
	svcMock.On("ViewTitle", mock.Anything, titles.DefaultTitle).Return([]titles.Title{pulpFiction}, nil)
	svcMock.On("ViewDirectors", mock.Anything, titles.DefaultTitle).Return([][]string{pulpFiction.Director}, nil).Once()
	svcMock.On("UpdateDirectors", mock.Anything, titles.DefaultShowID, titles.DefaultTitle, updated).Return(nil)
	svcMock.On("ViewDirectors", mock.Anything, titles.DefaultTitle).Return([][]string{updated}, nil).Once()

	out := executeCommand(t, rootCmd, "run")

	var rep titles.Report
	err = json.Unmarshal([]byte(out), &rep)
	require.Nil(t, err, fmt.Sprintf("unexpected error decoding output: %s", err))
	assert.Len(t, rep.Tables, 3)
	assert.Equal(t, []titles.Title{pulpFiction}, rep.Title)
	assert.Equal(t, [][]string{pulpFiction.Director}, rep.Directors)
	assert.Equal(t, [][]string{updated}, rep.UpdatedDirectors)
	svcMock.AssertExpectations(t)

	out = executeCommand(t, rootCmd, "run", extraArg)
	assert.True(t, strings.Contains(out, "usage: run"), fmt.Sprintf("invalid usage: %s", out))
}

func TestRunCmdFailure(t *testing.T) {
	svcMock := new(mocks.Service)
	cli.SetService(svcMock)
	rootCmd := newRootCmd(cli.NewRunCmd())

	schemaErr := errors.Wrap(svcerr.ErrSchema, errDriver)
	svcMock.On("CreateKeyspace", mock.Anything).Return(schemaErr)

	out := executeCommand(t, rootCmd, "run", "--raw")
	assert.Equal(t, fmt.Sprintf("\nerror: %s\n\n", schemaErr), out)
	assert.True(t, errors.Contains(cli.Err(), svcerr.ErrSchema), fmt.Sprintf("expected %s got %s", svcerr.ErrSchema, cli.Err()))
	svcMock.AssertNotCalled(t, "CreateTables", mock.Anything)
	cli.RawOutput = false
}

func TestRunCmdPartialOutput(t *testing.T) {
	svcMock := new(mocks.Service)
	cli.SetService(svcMock)
	rootCmd := newRootCmd(cli.NewRunCmd())

	rows := []titles.Row{{"title": "Pulp Fiction"}}
	updateErr := errors.Wrap(svcerr.ErrUpdateEntity, errDriver)

	svcMock.On("CreateKeyspace", mock.Anything).Return(nil)
	svcMock.On("CreateTables", mock.Anything).Return(nil)
	svcMock.On("Import", mock.Anything, mock.Anything).Return(nil)
	svcMock.On("ReadAll", mock.Anything, mock.Anything).Return(rows, nil)
	svcMock.On("ViewTitle", mock.Anything, titles.DefaultTitle).Return([]titles.Title{pulpFiction}, nil)
	svcMock.On("ViewDirectors", mock.Anything, titles.DefaultTitle).Return([][]string{pulpFiction.Director}, nil).Once()
	svcMock.On("UpdateDirectors", mock.Anything, titles.DefaultShowID, titles.DefaultTitle, mock.Anything).Return(updateErr)

	out := executeCommand(t, rootCmd, "run", "--raw")
	cli.RawOutput = false

	lines := strings.SplitN(out, "\n", 2)
	require.Len(t, lines, 2)

	var rep titles.Report
	err := json.Unmarshal([]byte(lines[0]), &rep)
	require.Nil(t, err, fmt.Sprintf("unexpected error decoding output: %s", err))
	assert.Len(t, rep.Tables, 3)
	for i, table := range titles.Tables() {
		assert.Equal(t, table.String(), rep.Tables[i].Table)
		assert.Equal(t, rows, rep.Tables[i].Rows)
	}
	assert.Equal(t, []titles.Title{pulpFiction}, rep.Title)
	assert.Equal(t, [][]string{pulpFiction.Director}, rep.Directors)
	assert.Empty(t, rep.UpdatedDirectors)

	assert.Equal(t, fmt.Sprintf("\nerror: %s\n\n", updateErr), lines[1])
	assert.True(t, errors.Contains(cli.Err(), svcerr.ErrUpdateEntity), fmt.Sprintf("expected %s got %s", svcerr.ErrUpdateEntity, cli.Err()))
	svcMock.AssertExpectations(t)
}

func TestErrClearedBetweenCommands(t *testing.T) {
	svcMock := new(mocks.Service)
	cli.SetService(svcMock)
	rootCmd := newRootCmd(cli.NewTitleCmd())

	viewErr := errors.Wrap(svcerr.ErrViewEntity, errDriver)
	svcMock.On("ViewTitle", mock.Anything, "Jackie Brown").Return(nil, viewErr)
	svcMock.On("ViewTitle", mock.Anything, titles.DefaultTitle).Return([]titles.Title{pulpFiction}, nil)

	executeCommand(t, rootCmd, "title", "Jackie Brown")
	assert.True(t, errors.Contains(cli.Err(), svcerr.ErrViewEntity), fmt.Sprintf("expected %s got %s", svcerr.ErrViewEntity, cli.Err()))

	executeCommand(t, rootCmd, "title", titles.DefaultTitle)
	assert.Nil(t, cli.Err(), fmt.Sprintf("unexpected error %s", cli.Err()))
}

func TestVersionCmd(t *testing.T) {
	rootCmd := newRootCmd(cli.NewVersionCmd())

	out := executeCommand(t, rootCmd, "version", "--raw")
	cli.RawOutput = false

	var info netflix.VersionInfo
	err := json.Unmarshal([]byte(out), &info)
	require.Nil(t, err, fmt.Sprintf("unexpected error decoding output: %s", err))
	assert.Equal(t, netflix.NewVersionInfo("netflix"), info)
	assert.Equal(t, fmt.Sprintf("{\"service\":\"netflix\",\"version\":\"%s\"}\n", netflix.Version), out)
}
