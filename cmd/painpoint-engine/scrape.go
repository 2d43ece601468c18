package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/painpoint-engine/internal/ingest"
	"github.com/pdiddy/painpoint-engine/internal/logging"
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape [channels...]",
	Short: "Collect pain points from community channels",
	Long: `Scrape fetches recent posts from the given channels, scores each one,
and stores those that qualify as pain points. Channels default to the
configured list when none are given. Already-stored URLs are skipped.`,
	RunE: runScrape,
}

func init() {
	scrapeCmd.Flags().Int("since-year", 0, "only keep posts from this year onward")

	rootCmd.AddCommand(scrapeCmd)
}

func runScrape(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	log, err := logging.New(cfg.Server.LogMode)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	channels := args
	if len(channels) == 0 {
		channels = cfg.Source.Channels
	}
	if len(channels) == 0 {
		return fmt.Errorf("provide one or more channels to scan")
	}

	sinceYear, _ := cmd.Flags().GetInt("since-year")
	var since time.Time
	if sinceYear > 0 {
		since = time.Date(sinceYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	}

	src, err := buildSource(cfg.Source)
	if err != nil {
		return err
	}

	classifier, categories := newClassifier()
	svc, err := openStore(cfg.Store, categories)
	if err != nil {
		return err
	}
	defer svc.Close() //nolint:errcheck

	res, err := ingest.New(src, classifier, svc, log).Run(cmd.Context(), channels, since)
	if err != nil {
		return err
	}

	fmt.Printf("Found %d new pain point(s), %d total\n", res.Found, res.Total)
	return nil
}
