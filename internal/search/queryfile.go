// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// QueryFile is the on-disk representation of a reusable search. It lets the
// same criteria be run again against different seed catalogs.
type QueryFile struct {
	Query QueryParams `yaml:"query"`
}

// QueryParams stores the raw criteria in a serializable form.
type QueryParams struct {
	ID       string   `yaml:"id,omitempty"`
	Keywords []string `yaml:"keywords,omitempty"`
	Years    string   `yaml:"years,omitempty"`
}

// ReadQueryFile loads a query file from disk.
func ReadQueryFile(path string) (*QueryFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading query file: %w", err)
	}
	var qf QueryFile
	if err := yaml.Unmarshal(data, &qf); err != nil {
		return nil, fmt.Errorf("parsing query file: %w", err)
	}
	return &qf, nil
}

// ToQuery converts stored QueryParams into a Query. The year range is
// checked here so a bad file is reported before any catalog is loaded.
func (p QueryParams) ToQuery() (Query, error) {
	if _, err := ParseYearRange(p.Years); err != nil {
		return Query{}, fmt.Errorf("query file years %q: %w", p.Years, err)
	}
	return Query{
		ID:       p.ID,
		Keywords: p.Keywords,
		Years:    p.Years,
	}, nil
}

// Merge fills the empty fields of q from other.
func (q Query) Merge(other Query) Query {
	if q.ID == "" {
		q.ID = other.ID
	}
	if len(q.Keywords) == 0 {
		q.Keywords = other.Keywords
	}
	if q.Years == "" {
		q.Years = other.Years
	}
	return q
}
