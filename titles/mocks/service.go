// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package mocks

import (
	"context"

	"github.com/absmach/netflix/titles"
	"github.com/stretchr/testify/mock"
)

var _ titles.Service = (*Service)(nil)

type Service struct {
	mock.Mock
}

func (m *Service) CreateKeyspace(ctx context.Context) error {
	ret := m.Called(ctx)

	return ret.Error(0)
}

func (m *Service) CreateTables(ctx context.Context) error {
	ret := m.Called(ctx)

	return ret.Error(0)
}

func (m *Service) Import(ctx context.Context, ts ...titles.Title) error {
	ret := m.Called(ctx, ts)

	return ret.Error(0)
}

func (m *Service) ReadAll(ctx context.Context, table titles.Table) ([]titles.Row, error) {
	ret := m.Called(ctx, table)

	rows, _ := ret.Get(0).([]titles.Row)
	return rows, ret.Error(1)
}

func (m *Service) ViewTitle(ctx context.Context, title string) ([]titles.Title, error) {
	ret := m.Called(ctx, title)

	ts, _ := ret.Get(0).([]titles.Title)
	return ts, ret.Error(1)
}

func (m *Service) ViewDirectors(ctx context.Context, title string) ([][]string, error) {
	ret := m.Called(ctx, title)

	directors, _ := ret.Get(0).([][]string)
	return directors, ret.Error(1)
}

func (m *Service) UpdateDirectors(ctx context.Context, showID int, title string, directors []string) error {
	ret := m.Called(ctx, showID, title, directors)

	return ret.Error(0)
}
