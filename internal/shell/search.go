// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package shell

import (
	"fmt"
	"strings"

	"github.com/pdiddy/estore-search/internal/search"
	"github.com/pdiddy/estore-search/pkg/types"
)

// search prompts for the three criteria, runs the query, and prints the
// results. Malformed criteria are retried field by field; running out of
// attempts abandons the search.
func (s *Shell) search() error {
	q, err := s.readQuery()
	if err != nil {
		return s.abandon(err)
	}

	results, err := search.Search(s.cat, q, s.opts)
	if err != nil {
		fmt.Fprintln(s.out, err)
		return nil
	}
	search.FormatText(s.out, results)
	return nil
}

func (s *Shell) readQuery() (search.Query, error) {
	var q search.Query

	err := s.prompt.Field("Enter product ID (leave blank for any):", func(line string) error {
		if strings.TrimSpace(line) == "" {
			return nil
		}
		id, err := types.ValidateID(line)
		q.ID = id
		return err
	})
	if err != nil {
		return search.Query{}, err
	}

	line, err := s.prompt.Line("Enter name keywords (leave blank for any):")
	if err != nil {
		return search.Query{}, err
	}
	q.Keywords = strings.Fields(line)

	err = s.prompt.Field("Enter year or range such as 1999, -1999, 2001- or 1999-2001 (leave blank for any):", func(line string) error {
		if _, err := search.ParseYearRange(line); err != nil {
			return err
		}
		q.Years = line
		return nil
	})
	if err != nil {
		return search.Query{}, err
	}

	return q, nil
}
