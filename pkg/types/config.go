// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by sources that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "painpoint-engine/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SourceBackend identifies the candidate source implementation.
type SourceBackend string

const (
	// SourceFixture serves a shuffled subset of a built-in sample pool.
	SourceFixture SourceBackend = "fixture"

	// SourceReddit fetches recent posts from Reddit's public JSON listings.
	SourceReddit SourceBackend = "reddit"
)

// SourceConfig holds settings for the candidate source.
type SourceConfig struct {
	HTTPConfig `yaml:",inline"`

	// Backend selects the source implementation: fixture or reddit.
	Backend SourceBackend `json:"backend" yaml:"backend"`

	// Channels are the channels scanned when none are given explicitly.
	Channels []string `json:"channels" yaml:"channels"`

	// MaxRetries bounds retries on rate-limited requests (default 5).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`

	// Seed fixes the fixture shuffle order. Zero seeds from the clock.
	Seed int64 `json:"seed,omitempty" yaml:"seed,omitempty"`
}

// StoreBackend identifies the record store implementation.
type StoreBackend string

const (
	// StoreFile persists records as one pretty-printed JSON array file.
	StoreFile StoreBackend = "file"

	// StoreSQLite persists records in a SQLite database.
	StoreSQLite StoreBackend = "sqlite"
)

// StoreConfig holds settings for the record store.
type StoreConfig struct {
	// Backend selects the store implementation: file or sqlite.
	Backend StoreBackend `json:"backend" yaml:"backend"`

	// DataFile is the JSON array file used by the file backend
	// (default "data/pain_points.json").
	DataFile string `json:"data_file" yaml:"data_file"`

	// DBFile is the database file used by the sqlite backend
	// (default "data/pain_points.db").
	DBFile string `json:"db_file" yaml:"db_file"`
}

// ServerConfig holds settings for the HTTP API server.
type ServerConfig struct {
	// Addr is the listen address (default ":8080").
	Addr string `json:"addr" yaml:"addr"`

	// AllowedOrigins lists CORS origins. Empty disables CORS handling.
	AllowedOrigins []string `json:"allowed_origins" yaml:"allowed_origins"`

	// ScrapeCron is an optional cron spec for periodic ingestion while
	// serving (e.g. "0 * * * *"). Empty disables the scheduler.
	ScrapeCron string `json:"scrape_cron" yaml:"scrape_cron"`

	// LogMode selects logger construction: "dev" or "prod".
	LogMode string `json:"log_mode" yaml:"log_mode"`
}

// AppConfig groups all stage configurations.
type AppConfig struct {
	Source SourceConfig `json:"source" yaml:"source"`
	Store  StoreConfig  `json:"store" yaml:"store"`
	Server ServerConfig `json:"server" yaml:"server"`
}
