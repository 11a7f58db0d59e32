// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import "github.com/pdiddy/estore-search/pkg/types"

// combine merges the three filter outcomes by strict precedence:
// ID, then keywords, then years.
//
// An ID match is checked against the keyword hits and, separately, against
// the year hits, and is appended once for each check it passes. Unless
// distinct is set, a product present in both lists therefore appears twice.
// An ID that was entered but matched nothing does not constrain the result.
func combine(id idResult, keywords, years filterResult, distinct bool) []types.Product {
	if id.evaluated && id.match != nil {
		if !keywords.hits() && !years.hits() {
			return []types.Product{id.match}
		}
		var out []types.Product
		if keywords.hits() && contains(keywords.products, id.match) {
			out = append(out, id.match)
		}
		if years.hits() && contains(years.products, id.match) {
			if !distinct || len(out) == 0 {
				out = append(out, id.match)
			}
		}
		return out
	}

	if keywords.hits() {
		if !years.hits() {
			return keywords.products
		}
		var out []types.Product
		for _, p := range keywords.products {
			if contains(years.products, p) {
				out = append(out, p)
			}
		}
		return out
	}

	return years.products
}

func contains(products []types.Product, target types.Product) bool {
	for _, p := range products {
		if types.SameProduct(p, target) {
			return true
		}
	}
	return false
}
