// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the painpoint-engine CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/painpoint-engine/internal/classify"
	"github.com/pdiddy/painpoint-engine/internal/secrets"
	"github.com/pdiddy/painpoint-engine/internal/source"
	"github.com/pdiddy/painpoint-engine/internal/store"
	"github.com/pdiddy/painpoint-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the painpoint-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "painpoint-engine",
	Short: "Collect and browse business pain points from community posts",
	Long: `painpoint-engine scans community channels for posts where people complain
about business problems, scores them with a keyword sentiment heuristic, and
stores the ones that qualify as pain points.

Collection runs through the scrape subcommand or on a schedule inside serve,
which also exposes the browse/like API over HTTP. Stored records can be
inspected and exported with the records subcommand.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./painpoint-engine.yaml or ~/.config/painpoint-engine/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("painpoint-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "painpoint-engine"))
		}
	}

	viper.SetEnvPrefix("PAINPOINT_ENGINE")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func setDefaults() {
	viper.SetDefault("source.backend", string(types.SourceFixture))
	viper.SetDefault("source.channels", []string{
		"entrepreneur", "smallbusiness", "startups", "SaaS",
		"webdev", "marketing", "ecommerce",
	})
	viper.SetDefault("source.timeout", 30*time.Second)
	viper.SetDefault("source.user_agent", "painpoint-engine/0.1")
	viper.SetDefault("source.max_retries", 5)

	viper.SetDefault("store.backend", string(types.StoreFile))
	viper.SetDefault("store.data_file", filepath.Join("data", "pain_points.json"))
	viper.SetDefault("store.db_file", filepath.Join("data", "pain_points.db"))

	viper.SetDefault("server.addr", ":8080")
	viper.SetDefault("server.log_mode", "dev")
}

// loadConfig assembles the stage configurations from viper.
func loadConfig() types.AppConfig {
	return types.AppConfig{
		Source: types.SourceConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("source.timeout"),
				UserAgent: viper.GetString("source.user_agent"),
			},
			Backend:    types.SourceBackend(viper.GetString("source.backend")),
			Channels:   viper.GetStringSlice("source.channels"),
			MaxRetries: viper.GetInt("source.max_retries"),
			Seed:       viper.GetInt64("source.seed"),
		},
		Store: types.StoreConfig{
			Backend:  types.StoreBackend(viper.GetString("store.backend")),
			DataFile: viper.GetString("store.data_file"),
			DBFile:   viper.GetString("store.db_file"),
		},
		Server: types.ServerConfig{
			Addr:           viper.GetString("server.addr"),
			AllowedOrigins: viper.GetStringSlice("server.allowed_origins"),
			ScrapeCron:     viper.GetString("server.scrape_cron"),
			LogMode:        viper.GetString("server.log_mode"),
		},
	}
}

// openStore builds the configured record store service. The caller owns Close.
func openStore(cfg types.StoreConfig, categories []string) (*store.Service, error) {
	switch cfg.Backend {
	case types.StoreSQLite:
		backend, err := store.NewSQLiteStore(cfg.DBFile)
		if err != nil {
			return nil, fmt.Errorf("opening sqlite store: %w", err)
		}
		return store.NewService(backend, categories), nil
	case types.StoreFile, "":
		return store.NewService(store.NewFileStore(cfg.DataFile), categories), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}

// buildSource builds the configured candidate source.
func buildSource(cfg types.SourceConfig) (source.Backend, error) {
	switch cfg.Backend {
	case types.SourceReddit:
		return source.NewReddit(cfg, loadedSecrets), nil
	case types.SourceFixture, "":
		return source.NewFixture(cfg.Seed), nil
	default:
		return nil, fmt.Errorf("unknown source backend %q", cfg.Backend)
	}
}

// newClassifier builds the default classifier and its category labels.
func newClassifier() (*classify.Classifier, []string) {
	lex := classify.DefaultLexicon()
	return classify.New(lex), lex.CategoryLabels()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
