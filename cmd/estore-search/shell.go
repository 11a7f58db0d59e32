package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/estore-search/internal/shell"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Run the interactive add and search menu",
	Long: `Shell opens the interactive menu. Products can be added one field at a
time and searched by ID, name keywords, and year range. Each field allows a
limited number of invalid entries before the current operation is abandoned.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if err := viper.BindPFlag("shell.max_attempts", cmd.Flags().Lookup("max-attempts")); err != nil {
			return err
		}
		return viper.BindPFlag("search.distinct", cmd.Flags().Lookup("distinct"))
	},
	RunE: runShell,
}

func init() {
	shellCmd.Flags().Int("max-attempts", defaultMaxAttempts, "invalid entries allowed per field")
	shellCmd.Flags().Bool("distinct", false, "match each keyword on its own and never repeat a result")

	rootCmd.AddCommand(shellCmd)
}

func runShell(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	return shell.New(cat, cmd.InOrStdin(), cmd.OutOrStdout(), cfg).Run()
}
