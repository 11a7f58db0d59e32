// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/pdiddy/estore-search/pkg/types"
)

// idResult is the outcome of the ID filter. An unevaluated filter is
// different from one that ran and found nothing.
type idResult struct {
	evaluated bool
	match     types.Product
}

// filterResult is the outcome of the keyword or year filter.
type filterResult struct {
	active   bool
	products []types.Product
}

// hits reports whether the filter ran and matched at least one product.
func (f filterResult) hits() bool {
	return f.active && len(f.products) > 0
}

// matchID returns the product whose ID equals id exactly. IDs are unique, so
// the scan stops at the first match.
func matchID(products []types.Product, id string) idResult {
	if id == "" {
		return idResult{}
	}
	for _, p := range products {
		if p.ID() == id {
			return idResult{evaluated: true, match: p}
		}
	}
	return idResult{evaluated: true}
}

// matchKeywords returns the products whose name contains every token, compared
// with Unicode case folding.
//
// By default matching counts every equal (query token, name token) pair and
// accepts a product once the count reaches the number of query tokens, so one
// name word can satisfy several query tokens and a query token can be
// satisfied twice by a repeated name word. With distinct set, each query token
// must be found among the name words on its own.
func matchKeywords(products []types.Product, tokens []string, distinct bool) filterResult {
	if len(tokens) == 0 {
		return filterResult{}
	}

	fold := cases.Fold()
	query := make([]string, len(tokens))
	for i, t := range tokens {
		query[i] = fold.String(t)
	}

	res := filterResult{active: true}
	for _, p := range products {
		words := strings.Fields(fold.String(p.Name()))
		var ok bool
		if distinct {
			ok = containsAll(words, query)
		} else {
			ok = countPairs(words, query) >= len(query)
		}
		if ok {
			res.products = append(res.products, p)
		}
	}
	return res
}

func countPairs(words, query []string) int {
	n := 0
	for _, q := range query {
		for _, w := range words {
			if q == w {
				n++
			}
		}
	}
	return n
}

func containsAll(words, query []string) bool {
	for _, q := range query {
		found := false
		for _, w := range words {
			if q == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// matchYears returns the products whose year falls within r.
func matchYears(products []types.Product, r *YearRange) filterResult {
	if r == nil {
		return filterResult{}
	}
	res := filterResult{active: true}
	for _, p := range products {
		if r.Contains(p.Year()) {
			res.products = append(res.products, p)
		}
	}
	return res
}
