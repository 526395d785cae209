// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package titles

import (
	"context"
	"strings"

	"github.com/absmach/netflix/pkg/errors"
	svcerr "github.com/absmach/netflix/pkg/errors/service"
)

var (
	// ErrMalformedTitle indicates a title without a name or a positive show id.
	ErrMalformedTitle = errors.New("title requires a name and a positive show id")

	// ErrNoTitles indicates an import without titles.
	ErrNoTitles = errors.New("no titles to import")

	// ErrNoDirectors indicates an update with an empty director list.
	ErrNoDirectors = errors.New("at least one director is required")
)

type service struct {
	repo Repository
}

// NewService returns a new titles service.
func NewService(repo Repository) Service {
	return &service{
		repo: repo,
	}
}

func (svc *service) CreateKeyspace(ctx context.Context) error {
	if err := svc.repo.CreateKeyspace(ctx); err != nil {
		return errors.Wrap(svcerr.ErrSchema, err)
	}

	return nil
}

func (svc *service) CreateTables(ctx context.Context) error {
	for _, table := range Tables() {
		if err := svc.repo.CreateTable(ctx, table); err != nil {
			return errors.Wrap(svcerr.ErrSchema, err)
		}
	}

	return nil
}

func (svc *service) Import(ctx context.Context, titles ...Title) error {
	if len(titles) == 0 {
		return errors.Wrap(svcerr.ErrMalformedEntity, ErrNoTitles)
	}
	for _, t := range titles {
		if err := t.Validate(); err != nil {
			return errors.Wrap(svcerr.ErrMalformedEntity, err)
		}
	}

	for _, t := range titles {
		for _, table := range Tables() {
			if err := svc.repo.Save(ctx, table, t); err != nil {
				return errors.Wrap(svcerr.ErrCreateEntity, err)
			}
		}
	}

	return nil
}

func (svc *service) ReadAll(ctx context.Context, table Table) ([]Row, error) {
	if !table.Valid() {
		return nil, errors.Wrap(svcerr.ErrMalformedEntity, ErrUnknownTable)
	}

	rows, err := svc.repo.RetrieveAll(ctx, table)
	if err != nil {
		return nil, errors.Wrap(svcerr.ErrViewEntity, err)
	}

	return rows, nil
}

func (svc *service) ViewTitle(ctx context.Context, title string) ([]Title, error) {
	if strings.TrimSpace(title) == "" {
		return nil, errors.Wrap(svcerr.ErrMalformedEntity, ErrMalformedTitle)
	}

	ts, err := svc.repo.RetrieveByTitle(ctx, title)
	if err != nil {
		return nil, errors.Wrap(svcerr.ErrViewEntity, err)
	}
	if len(ts) == 0 {
		return nil, svcerr.ErrNotFound
	}

	return ts, nil
}

func (svc *service) ViewDirectors(ctx context.Context, title string) ([][]string, error) {
	if strings.TrimSpace(title) == "" {
		return nil, errors.Wrap(svcerr.ErrMalformedEntity, ErrMalformedTitle)
	}

	directors, err := svc.repo.RetrieveDirectors(ctx, title)
	if err != nil {
		return nil, errors.Wrap(svcerr.ErrViewEntity, err)
	}
	if len(directors) == 0 {
		return nil, svcerr.ErrNotFound
	}

	return directors, nil
}

// UpdateDirectors checks that the row exists before writing, since a CQL
// UPDATE on a missing primary key silently creates a partial row.
func (svc *service) UpdateDirectors(ctx context.Context, showID int, title string, directors []string) error {
	if err := (Title{Title: title, ShowID: showID}).Validate(); err != nil {
		return errors.Wrap(svcerr.ErrMalformedEntity, err)
	}
	if len(directors) == 0 {
		return errors.Wrap(svcerr.ErrMalformedEntity, ErrNoDirectors)
	}

	ts, err := svc.repo.RetrieveByTitle(ctx, title)
	if err != nil {
		return errors.Wrap(svcerr.ErrViewEntity, err)
	}
	if !containsShow(ts, showID) {
		return svcerr.ErrNotFound
	}

	if err := svc.repo.UpdateDirectors(ctx, showID, title, directors); err != nil {
		return errors.Wrap(svcerr.ErrUpdateEntity, err)
	}

	return nil
}

func containsShow(ts []Title, showID int) bool {
	for _, t := range ts {
		if t.ShowID == showID {
			return true
		}
	}
	return false
}
