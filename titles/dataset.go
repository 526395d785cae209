// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package titles

import (
	_ "embed"
	"os"

	"github.com/absmach/netflix/pkg/errors"
	"gopkg.in/yaml.v3"
)

var (
	// ErrDataset indicates that a dataset could not be read or decoded.
	ErrDataset = errors.New("failed to load dataset")

	// ErrEmptyDataset indicates a dataset without titles.
	ErrEmptyDataset = errors.New("dataset contains no titles")
)

//go:embed dataset.yaml
var defaultDataset []byte

type dataset struct {
	Titles []Title `yaml:"titles"`
}

// LoadDataset returns the titles of the YAML dataset at path, or the bundled
// dataset when path is empty.
func LoadDataset(path string) ([]Title, error) {
	if path == "" {
		return ParseDataset(defaultDataset)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(ErrDataset, err)
	}

	return ParseDataset(data)
}

// ParseDataset decodes a YAML document with a top level titles list.
func ParseDataset(data []byte) ([]Title, error) {
	var ds dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, errors.Wrap(ErrDataset, err)
	}
	if len(ds.Titles) == 0 {
		return nil, ErrEmptyDataset
	}
	for _, t := range ds.Titles {
		if err := t.Validate(); err != nil {
			return nil, errors.Wrap(ErrDataset, err)
		}
	}

	return ds.Titles, nil
}
