// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search finds catalog products by ID, name keywords, and
// publication year, and renders the results.
//
// Each criterion is evaluated independently over the whole catalog and the
// three outcomes are merged by precedence (ID, then keywords, then years).
// A criterion left blank does not constrain the search; a search with no
// criteria at all returns nothing.
package search

import (
	"log/slog"

	"github.com/pdiddy/estore-search/pkg/types"
)

// Catalog is the read-only product source a search scans. Products must be
// returned books first, then electronics, each in insertion order.
type Catalog interface {
	Products() []types.Product
}

// Options tunes matching and combination.
type Options struct {
	// Distinct requires each keyword to be matched on its own and keeps an ID
	// match from being listed twice.
	Distinct bool
}

// OptionsFromConfig converts the search section of the configuration.
func OptionsFromConfig(cfg types.SearchConfig) Options {
	return Options{Distinct: cfg.Distinct}
}

// Search validates q and runs it against cat. A validation error aborts the
// search before any product is examined.
func Search(cat Catalog, q Query, opts Options) ([]types.Product, error) {
	c, err := q.validate()
	if err != nil {
		return nil, err
	}
	if q.IsEmpty() {
		slog.Debug("search skipped, no criteria")
		return nil, nil
	}

	products := cat.Products()

	id := matchID(products, c.id)
	keywords := matchKeywords(products, c.keywords, opts.Distinct)
	years := matchYears(products, c.years)

	results := combine(id, keywords, years, opts.Distinct)

	slog.Debug("search complete",
		"catalog", len(products),
		"years", yearsLabel(c.years),
		"id_evaluated", id.evaluated,
		"id_matched", id.match != nil,
		"keyword_hits", len(keywords.products),
		"year_hits", len(years.products),
		"results", len(results),
	)
	return results, nil
}

func yearsLabel(r *YearRange) string {
	if r == nil {
		return "any"
	}
	return r.String()
}
