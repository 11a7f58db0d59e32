// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pdiddy/estore-search/pkg/types"
)

// ErrInvalidYearRangeFormat is returned for a year range that is not one of
// "Y", "-Y", "Y-", or "Y1-Y2".
var ErrInvalidYearRangeFormat = errors.New("invalid year range")

// Query holds the raw search criteria for one search. An empty field leaves
// the search unconstrained by that criterion.
type Query struct {
	// ID must equal a product ID exactly.
	ID string

	// Keywords must all appear among the words of a product name.
	Keywords []string

	// Years is a raw range expression: "Y", "-Y", "Y-", or "Y1-Y2".
	Years string
}

// IsEmpty reports whether no criterion was entered.
func (q Query) IsEmpty() bool {
	return strings.TrimSpace(q.ID) == "" && len(keywordTokens(q.Keywords)) == 0 && strings.TrimSpace(q.Years) == ""
}

// YearRange is an inclusive range of years. Open ends are clamped to
// types.MinYear and types.MaxYear.
type YearRange struct {
	Min int
	Max int
}

// Contains reports whether year falls within the range.
func (r YearRange) Contains(year int) bool {
	return year >= r.Min && year <= r.Max
}

// String renders the range in the shortest input form that parses back to it.
func (r YearRange) String() string {
	switch {
	case r.Min == r.Max:
		return fmt.Sprintf("%d", r.Min)
	case r.Min == types.MinYear:
		return fmt.Sprintf("-%d", r.Max)
	case r.Max == types.MaxYear:
		return fmt.Sprintf("%d-", r.Min)
	default:
		return fmt.Sprintf("%d-%d", r.Min, r.Max)
	}
}

// ParseYearRange parses a raw range expression. It returns nil for a blank
// expression. Structural problems yield ErrInvalidYearRangeFormat; a bound
// that is not a year within limits yields types.ErrInvalidYearValue.
func ParseYearRange(s string) (*YearRange, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if strings.ContainsAny(s, " \t") {
		return nil, fmt.Errorf("%w: %q must not contain spaces", ErrInvalidYearRangeFormat, s)
	}

	parts := strings.Split(s, "-")
	switch len(parts) {
	case 1:
		year, err := parseBound(parts[0], s)
		if err != nil {
			return nil, err
		}
		return &YearRange{Min: year, Max: year}, nil
	case 2:
	default:
		return nil, fmt.Errorf("%w: %q has more than one dash", ErrInvalidYearRangeFormat, s)
	}

	from, to := parts[0], parts[1]
	if from == "" && to == "" {
		return nil, fmt.Errorf("%w: %q has no years", ErrInvalidYearRangeFormat, s)
	}

	r := YearRange{Min: types.MinYear, Max: types.MaxYear}
	if from != "" {
		year, err := parseBound(from, s)
		if err != nil {
			return nil, err
		}
		r.Min = year
	}
	if to != "" {
		year, err := parseBound(to, s)
		if err != nil {
			return nil, err
		}
		r.Max = year
	}
	if r.Min > r.Max {
		return nil, fmt.Errorf("%w: %d is after %d", ErrInvalidYearRangeFormat, r.Min, r.Max)
	}
	return &r, nil
}

// parseBound parses one side of a range. A sign or a leading zero is a
// structural problem in the expression rather than a bad year.
func parseBound(bound, expr string) (int, error) {
	if strings.HasPrefix(bound, "+") || (len(bound) > 1 && bound[0] == '0') {
		return 0, fmt.Errorf("%w: %q is not a plain year", ErrInvalidYearRangeFormat, expr)
	}
	return types.ParseYear(bound)
}

// criteria is a validated Query.
type criteria struct {
	id       string
	keywords []string
	years    *YearRange
}

// validate checks every criterion before any product is scanned.
func (q Query) validate() (criteria, error) {
	var c criteria

	if strings.TrimSpace(q.ID) != "" {
		id, err := types.ValidateID(q.ID)
		if err != nil {
			return criteria{}, err
		}
		c.id = id
	}

	c.keywords = keywordTokens(q.Keywords)

	years, err := ParseYearRange(q.Years)
	if err != nil {
		return criteria{}, err
	}
	c.years = years

	return c, nil
}

// keywordTokens splits each entry on whitespace, so both ["harry potter"]
// and ["harry", "potter"] yield two tokens.
func keywordTokens(keywords []string) []string {
	var tokens []string
	for _, k := range keywords {
		tokens = append(tokens, strings.Fields(k)...)
	}
	return tokens
}
