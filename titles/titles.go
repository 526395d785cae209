// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package titles

import (
	"context"
	"strings"
	"time"

	"github.com/absmach/netflix/pkg/errors"
)

// ErrUnknownTable indicates a table name that is not part of the schema.
var ErrUnknownTable = errors.New("unknown table")

// Table identifies one of the tables the titles are stored in.
type Table uint8

const (
	// Master holds full title records partitioned by title.
	Master Table = iota + 1
	// ByDate holds title references partitioned by release year, newest
	// additions first.
	ByDate
	// ByRating holds title references partitioned by rating.
	ByRating
)

// String representation of the possible table values.
const (
	masterTable   = "netflix_master"
	byDateTable   = "netflix_titles_by_date"
	byRatingTable = "netflix_titles_by_rating"
)

// String returns the table name as it appears in the keyspace.
func (t Table) String() string {
	switch t {
	case Master:
		return masterTable
	case ByDate:
		return byDateTable
	case ByRating:
		return byRatingTable
	default:
		return ""
	}
}

// Valid reports whether t is one of the known tables.
func (t Table) Valid() bool {
	return t >= Master && t <= ByRating
}

// Tables returns every table in creation order.
func Tables() []Table {
	return []Table{Master, ByDate, ByRating}
}

// ParseTable accepts a full table name or one of the short aliases
// master, date and rating.
func ParseTable(name string) (Table, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case masterTable, "master":
		return Master, nil
	case byDateTable, "date", "by_date":
		return ByDate, nil
	case byRatingTable, "rating", "by_rating":
		return ByRating, nil
	default:
		return 0, errors.Wrap(ErrUnknownTable, errors.New(name))
	}
}

// Title is a single show or movie as stored in the master table.
type Title struct {
	Title       string    `json:"title"                 yaml:"title"`
	ShowID      int       `json:"show_id"               yaml:"show_id"`
	Cast        []string  `json:"cast,omitempty"        yaml:"cast"`
	Country     []string  `json:"country,omitempty"     yaml:"country"`
	DateAdded   time.Time `json:"date_added"            yaml:"date_added"`
	Description string    `json:"description,omitempty" yaml:"description"`
	Director    []string  `json:"director,omitempty"    yaml:"director"`
	Duration    string    `json:"duration,omitempty"    yaml:"duration"`
	ListedIn    []string  `json:"listed_in,omitempty"   yaml:"listed_in"`
	Rating      string    `json:"rating,omitempty"      yaml:"rating"`
	ReleaseYear int       `json:"release_year"          yaml:"release_year"`
	Type        string    `json:"type,omitempty"        yaml:"type"`
	DateRow     *DateRow  `json:"date_row,omitempty"    yaml:"date_row"`
}

// DateRow carries by date keys that differ from the master record.
type DateRow struct {
	ReleaseYear int       `json:"release_year" yaml:"release_year"`
	DateAdded   time.Time `json:"date_added"   yaml:"date_added"`
}

// DateKeys returns the release year and date added the title is filed
// under in the by date table.
func (t Title) DateKeys() (int, time.Time) {
	if t.DateRow != nil {
		return t.DateRow.ReleaseYear, t.DateRow.DateAdded
	}
	return t.ReleaseYear, t.DateAdded
}

// Validate checks the fields every table keys on.
func (t Title) Validate() error {
	if strings.TrimSpace(t.Title) == "" || t.ShowID <= 0 {
		return ErrMalformedTitle
	}
	return nil
}

// Row is a single result row keyed by column name.
type Row map[string]interface{}

// Repository specifies the titles persistence API.
type Repository interface {
	// CreateKeyspace creates the keyspace the tables live in, if missing.
	CreateKeyspace(ctx context.Context) error

	// CreateTable creates the given table, if missing.
	CreateTable(ctx context.Context, table Table) error

	// Save writes the projection of the title the given table stores.
	Save(ctx context.Context, table Table, title Title) error

	// RetrieveAll returns every row of the given table.
	RetrieveAll(ctx context.Context, table Table) ([]Row, error)

	// RetrieveByTitle returns the master rows of the partition with the
	// given title.
	RetrieveByTitle(ctx context.Context, title string) ([]Title, error)

	// RetrieveDirectors returns the director column of the master rows of
	// the partition with the given title.
	RetrieveDirectors(ctx context.Context, title string) ([][]string, error)

	// UpdateDirectors replaces the directors of a single master row.
	UpdateDirectors(ctx context.Context, showID int, title string, directors []string) error
}

// Service specifies the titles quickstart API.
type Service interface {
	// CreateKeyspace creates the keyspace.
	CreateKeyspace(ctx context.Context) error

	// CreateTables creates the master, by date and by rating tables.
	CreateTables(ctx context.Context) error

	// Import writes every title to all three tables.
	Import(ctx context.Context, titles ...Title) error

	// ReadAll returns every row of a table.
	ReadAll(ctx context.Context, table Table) ([]Row, error)

	// ViewTitle returns the master rows for a title.
	ViewTitle(ctx context.Context, title string) ([]Title, error)

	// ViewDirectors returns the directors recorded for a title.
	ViewDirectors(ctx context.Context, title string) ([][]string, error)

	// UpdateDirectors replaces the directors of an existing title.
	UpdateDirectors(ctx context.Context, showID int, title string, directors []string) error
}
