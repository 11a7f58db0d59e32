// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the estore-search CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/estore-search/internal/catalog"
	"github.com/pdiddy/estore-search/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

const (
	defaultLogLevel    = "warn"
	defaultMaxAttempts = 3
)

// rootCmd is the base command for the estore-search CLI.
var rootCmd = &cobra.Command{
	Use:   "estore-search",
	Short: "Add books and electronics to a catalog and search them",
	Long: `estore-search keeps an in-memory catalog of books and electronics and
finds products by exact ID, name keywords, and publication year range.

Run "estore-search shell" for the interactive menu, or "estore-search search"
to query a seed catalog from the command line. Nothing is saved between runs.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogger(viper.GetString("log_level"))
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./estore-search.yaml or ~/.config/estore-search/estore-search.yaml)")
	rootCmd.PersistentFlags().String("log-level", defaultLogLevel, "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("seed", "", "YAML catalog to load at startup")

	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("seed", rootCmd.PersistentFlags().Lookup("seed"))

	viper.SetDefault("log_level", defaultLogLevel)
	viper.SetDefault("shell.max_attempts", defaultMaxAttempts)
	viper.SetDefault("search.format", string(types.OutputText))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("estore-search")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "estore-search"))
		}
	}

	viper.SetEnvPrefix("ESTORE_SEARCH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig collects the settings resolved by viper from flags,
// environment, and config file.
func loadConfig() types.Config {
	return configFrom(viper.GetViper())
}

// configFrom maps viper keys onto types.Config. Keys follow the struct's
// yaml tags so a config file mirrors the struct layout.
func configFrom(v *viper.Viper) types.Config {
	return types.Config{
		SeedFile: v.GetString("seed"),
		LogLevel: v.GetString("log_level"),
		Search: types.SearchConfig{
			Distinct: v.GetBool("search.distinct"),
			Format:   types.OutputFormat(v.GetString("search.format")),
		},
		Shell: types.ShellConfig{
			MaxAttempts: v.GetInt("shell.max_attempts"),
		},
	}
}

// loadCatalog returns the seeded catalog, or an empty one when no seed file
// is configured.
func loadCatalog(cfg types.Config) (*catalog.Catalog, error) {
	if cfg.SeedFile == "" {
		return catalog.New(), nil
	}
	cat, summary, err := catalog.LoadFile(cfg.SeedFile)
	if err != nil {
		return nil, err
	}
	slog.Info("catalog loaded",
		"file", cfg.SeedFile,
		"products", summary.Total(),
		"books", summary.Books,
		"electronics", summary.Electronics,
	)
	return cat, nil
}

func setupLogger(levelStr string) error {
	var level slog.Level
	switch strings.ToLower(levelStr) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
