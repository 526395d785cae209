// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package titles

import "context"

// Defaults of the walkthrough: the title looked up and updated, and the
// directors it is updated with.
const (
	DefaultTitle  = "Pulp Fiction"
	DefaultShowID = 100000001
)

// DefaultDirectors returns the directors the default title is updated to.
func DefaultDirectors() []string {
	return []string{"Quentin Jerome Tarantino"}
}

// Plan describes a walkthrough run.
type Plan struct {
	// Titles are imported into every table.
	Titles []Title

	// Title is read back and then updated.
	Title string

	// ShowID identifies the row of Title whose directors are updated.
	ShowID int

	// Directors replace the directors of the updated row.
	Directors []string
}

// DefaultPlan returns the plan built from the bundled dataset.
func DefaultPlan() (Plan, error) {
	ts, err := LoadDataset("")
	if err != nil {
		return Plan{}, err
	}

	return Plan{
		Titles:    ts,
		Title:     DefaultTitle,
		ShowID:    DefaultShowID,
		Directors: DefaultDirectors(),
	}, nil
}

// TableRows holds the content of a single table.
type TableRows struct {
	Table string `json:"table"`
	Rows  []Row  `json:"rows"`
}

// Report collects every result read during a walkthrough, in reading order.
type Report struct {
	Tables           []TableRows `json:"tables"`
	Title            []Title     `json:"title"`
	Directors        [][]string  `json:"directors"`
	UpdatedDirectors [][]string  `json:"updated_directors"`
}

// Empty reports whether nothing was read yet.
func (r Report) Empty() bool {
	return len(r.Tables) == 0
}

// Walkthrough provisions the schema, imports the plan titles, reads every
// table, reads the plan title and its directors, updates the directors and
// reads them again. It stops at the first failing step.
func Walkthrough(ctx context.Context, svc Service, plan Plan) (Report, error) {
	var rep Report

	if err := svc.CreateKeyspace(ctx); err != nil {
		return rep, err
	}
	if err := svc.CreateTables(ctx); err != nil {
		return rep, err
	}
	if err := svc.Import(ctx, plan.Titles...); err != nil {
		return rep, err
	}

	for _, table := range Tables() {
		rows, err := svc.ReadAll(ctx, table)
		if err != nil {
			return rep, err
		}
		rep.Tables = append(rep.Tables, TableRows{Table: table.String(), Rows: rows})
	}

	ts, err := svc.ViewTitle(ctx, plan.Title)
	if err != nil {
		return rep, err
	}
	rep.Title = ts

	if rep.Directors, err = svc.ViewDirectors(ctx, plan.Title); err != nil {
		return rep, err
	}

	if err := svc.UpdateDirectors(ctx, plan.ShowID, plan.Title, plan.Directors); err != nil {
		return rep, err
	}

	if rep.UpdatedDirectors, err = svc.ViewDirectors(ctx, plan.Title); err != nil {
		return rep, err
	}

	return rep, nil
}
