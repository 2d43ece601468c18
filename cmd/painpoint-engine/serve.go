package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/painpoint-engine/internal/httpapi"
	"github.com/pdiddy/painpoint-engine/internal/ingest"
	"github.com/pdiddy/painpoint-engine/internal/logging"
	"github.com/pdiddy/painpoint-engine/internal/schedule"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Long: `Serve exposes the pain-point store over HTTP: browsing with filtering,
sorting, and pagination, like/unlike actions, category listing, and on-demand
collection. When server.scrape_cron is configured, collection also runs on
that schedule for the configured channels.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default :8080)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Server.Addr = addr
	}

	log, err := logging.New(cfg.Server.LogMode)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

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

	pipeline := ingest.New(src, classifier, svc, log)

	if cfg.Server.ScrapeCron != "" {
		sched, err := schedule.New(cfg.Server.ScrapeCron, func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, 5*time.Minute)
			defer cancel()
			_, err := pipeline.Run(ctx, cfg.Source.Channels, time.Time{})
			return err
		}, log)
		if err != nil {
			return err
		}
		sched.Start()
		defer sched.Stop()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	router := httpapi.NewRouter(httpapi.NewHandlers(svc, pipeline, log), cfg.Server.AllowedOrigins)
	return httpapi.NewServer(cfg.Server.Addr, router, log).Run(ctx)
}
