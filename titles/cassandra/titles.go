// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cassandra

import (
	"context"
	"fmt"

	"github.com/absmach/netflix/pkg/errors"
	repoerr "github.com/absmach/netflix/pkg/errors/repository"
	"github.com/absmach/netflix/titles"
	"github.com/gocql/gocql"
)

var _ titles.Repository = (*titlesRepository)(nil)

type titlesRepository struct {
	session           *gocql.Session
	keyspace          string
	replicationFactor int
}

// New instantiates a Cassandra titles repository storing its tables in the
// given keyspace. The keyspace name must already be validated since it is
// interpolated into statements.
func New(session *gocql.Session, keyspace string, replicationFactor int) titles.Repository {
	return &titlesRepository{
		session:           session,
		keyspace:          keyspace,
		replicationFactor: replicationFactor,
	}
}

func (tr *titlesRepository) CreateKeyspace(ctx context.Context) error {
	cql := fmt.Sprintf(keyspaceCQL, tr.keyspace, tr.replicationFactor)
	if err := tr.session.Query(cql).WithContext(ctx).Exec(); err != nil {
		return errors.Wrap(repoerr.ErrCreateSchema, err)
	}

	return nil
}

func (tr *titlesRepository) CreateTable(ctx context.Context, table titles.Table) error {
	cql, ok := tableCQL(tr.keyspace, table)
	if !ok {
		return errors.Wrap(repoerr.ErrMalformedEntity, titles.ErrUnknownTable)
	}
	if err := tr.session.Query(cql).WithContext(ctx).Exec(); err != nil {
		return errors.Wrap(repoerr.ErrCreateSchema, err)
	}

	return nil
}

func (tr *titlesRepository) Save(ctx context.Context, table titles.Table, t titles.Title) error {
	var q *gocql.Query
	switch table {
	case titles.Master:
		cql := `INSERT INTO %s.netflix_master (title, show_id, cast, country,
			date_added, description, director, duration, listed_in, rating,
			release_year, type)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
		q = tr.session.Query(fmt.Sprintf(cql, tr.keyspace), t.Title, t.ShowID,
			t.Cast, t.Country, t.DateAdded, t.Description, t.Director, t.Duration,
			t.ListedIn, t.Rating, t.ReleaseYear, t.Type)
	case titles.ByDate:
		year, added := t.DateKeys()
		cql := `INSERT INTO %s.netflix_titles_by_date (release_year, date_added,
			show_id, title) VALUES (?, ?, ?, ?)`
		q = tr.session.Query(fmt.Sprintf(cql, tr.keyspace), year,
			added, t.ShowID, t.Title)
	case titles.ByRating:
		cql := `INSERT INTO %s.netflix_titles_by_rating (rating, show_id, title)
			VALUES (?, ?, ?)`
		q = tr.session.Query(fmt.Sprintf(cql, tr.keyspace), t.Rating, t.ShowID, t.Title)
	default:
		return errors.Wrap(repoerr.ErrMalformedEntity, titles.ErrUnknownTable)
	}

	if err := q.WithContext(ctx).Exec(); err != nil {
		return errors.Wrap(repoerr.ErrCreateEntity, err)
	}

	return nil
}

func (tr *titlesRepository) RetrieveAll(ctx context.Context, table titles.Table) ([]titles.Row, error) {
	if !table.Valid() {
		return nil, errors.Wrap(repoerr.ErrMalformedEntity, titles.ErrUnknownTable)
	}

	cql := fmt.Sprintf(`SELECT * FROM %s.%s`, tr.keyspace, table)
	maps, err := tr.session.Query(cql).WithContext(ctx).Iter().SliceMap()
	if err != nil {
		return nil, errors.Wrap(repoerr.ErrViewEntity, err)
	}

	rows := make([]titles.Row, 0, len(maps))
	for _, m := range maps {
		rows = append(rows, titles.Row(m))
	}

	return rows, nil
}

func (tr *titlesRepository) RetrieveByTitle(ctx context.Context, title string) ([]titles.Title, error) {
	cql := `SELECT title, show_id, cast, country, date_added, description,
		director, duration, listed_in, rating, release_year, type
		FROM %s.netflix_master WHERE title = ?`

	iter := tr.session.Query(fmt.Sprintf(cql, tr.keyspace), title).WithContext(ctx).Iter()
	scanner := iter.Scanner()

	page := []titles.Title{}
	for scanner.Next() {
		var t titles.Title
		if err := scanner.Scan(&t.Title, &t.ShowID, &t.Cast, &t.Country,
			&t.DateAdded, &t.Description, &t.Director, &t.Duration,
			&t.ListedIn, &t.Rating, &t.ReleaseYear, &t.Type); err != nil {
			_ = iter.Close()
			return nil, errors.Wrap(repoerr.ErrViewEntity, err)
		}
		page = append(page, t)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(repoerr.ErrViewEntity, err)
	}

	return page, nil
}

func (tr *titlesRepository) RetrieveDirectors(ctx context.Context, title string) ([][]string, error) {
	cql := fmt.Sprintf(`SELECT director FROM %s.netflix_master WHERE title = ?`, tr.keyspace)

	iter := tr.session.Query(cql, title).WithContext(ctx).Iter()

	directors := [][]string{}
	var d []string
	for iter.Scan(&d) {
		directors = append(directors, d)
	}
	if err := iter.Close(); err != nil {
		return nil, errors.Wrap(repoerr.ErrViewEntity, err)
	}

	return directors, nil
}

func (tr *titlesRepository) UpdateDirectors(ctx context.Context, showID int, title string, directors []string) error {
	cql := fmt.Sprintf(`UPDATE %s.netflix_master SET director = ?
		WHERE show_id = ? AND title = ?`, tr.keyspace)

	if err := tr.session.Query(cql, directors, showID, title).WithContext(ctx).Exec(); err != nil {
		return errors.Wrap(repoerr.ErrUpdateEntity, err)
	}

	return nil
}
