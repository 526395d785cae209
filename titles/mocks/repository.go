// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package mocks

import (
	"context"

	"github.com/absmach/netflix/titles"
	"github.com/stretchr/testify/mock"
)

var _ titles.Repository = (*Repository)(nil)

type Repository struct {
	mock.Mock
}

func (m *Repository) CreateKeyspace(ctx context.Context) error {
	ret := m.Called(ctx)

	return ret.Error(0)
}

func (m *Repository) CreateTable(ctx context.Context, table titles.Table) error {
	ret := m.Called(ctx, table)

	return ret.Error(0)
}

func (m *Repository) Save(ctx context.Context, table titles.Table, title titles.Title) error {
	ret := m.Called(ctx, table, title)

	return ret.Error(0)
}

func (m *Repository) RetrieveAll(ctx context.Context, table titles.Table) ([]titles.Row, error) {
	ret := m.Called(ctx, table)

	rows, _ := ret.Get(0).([]titles.Row)
	return rows, ret.Error(1)
}

func (m *Repository) RetrieveByTitle(ctx context.Context, title string) ([]titles.Title, error) {
	ret := m.Called(ctx, title)

	ts, _ := ret.Get(0).([]titles.Title)
	return ts, ret.Error(1)
}

func (m *Repository) RetrieveDirectors(ctx context.Context, title string) ([][]string, error) {
	ret := m.Called(ctx, title)

	directors, _ := ret.Get(0).([][]string)
	return directors, ret.Error(1)
}

func (m *Repository) UpdateDirectors(ctx context.Context, showID int, title string, directors []string) error {
	ret := m.Called(ctx, showID, title, directors)

	return ret.Error(0)
}
