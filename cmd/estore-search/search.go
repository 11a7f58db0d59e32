package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/estore-search/internal/search"
	"github.com/pdiddy/estore-search/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search [keywords...]",
	Short: "Search a seed catalog by ID, keywords, and year range",
	Long: `Search loads the catalog given by --seed and prints the products that
match the criteria. Positional arguments are added to --keywords, and
--query-file fills in any criterion not given on the command line.

Year ranges take the forms 1999 (exact), -1999 (up to), 2001- (from), and
1999-2001 (inclusive). A search with no criteria matches nothing.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if err := viper.BindPFlag("search.format", cmd.Flags().Lookup("format")); err != nil {
			return err
		}
		return viper.BindPFlag("search.distinct", cmd.Flags().Lookup("distinct"))
	},
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().String("id", "", "exact product ID")
	searchCmd.Flags().String("keywords", "", "words that must all appear in the product name")
	searchCmd.Flags().String("years", "", "publication year or range")
	searchCmd.Flags().String("query-file", "", "YAML file with saved criteria; flags take precedence")
	searchCmd.Flags().String("format", string(types.OutputText), "output format: text, json, or yaml")
	searchCmd.Flags().Bool("distinct", false, "match each keyword on its own and never repeat a result")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	if cfg.SeedFile == "" {
		return fmt.Errorf("no catalog to search: provide --seed or set seed in the config file")
	}

	q := queryFromFlags(cmd, args)
	if path, _ := cmd.Flags().GetString("query-file"); path != "" {
		qf, err := search.ReadQueryFile(path)
		if err != nil {
			return err
		}
		saved, err := qf.Query.ToQuery()
		if err != nil {
			return err
		}
		q = q.Merge(saved)
	}

	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	return runQuery(cat, q, cfg.Search, cmd.OutOrStdout())
}

func queryFromFlags(cmd *cobra.Command, args []string) search.Query {
	id, _ := cmd.Flags().GetString("id")
	keywords, _ := cmd.Flags().GetString("keywords")
	years, _ := cmd.Flags().GetString("years")

	q := search.Query{
		ID:       id,
		Keywords: strings.Fields(keywords),
		Years:    years,
	}
	q.Keywords = append(q.Keywords, args...)
	return q
}

func runQuery(cat search.Catalog, q search.Query, cfg types.SearchConfig, w io.Writer) error {
	results, err := search.Search(cat, q, search.OptionsFromConfig(cfg))
	if err != nil {
		return err
	}
	return search.Write(w, results, cfg.Format)
}
