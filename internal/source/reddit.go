// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/pdiddy/painpoint-engine/internal/httputil"
	"github.com/pdiddy/painpoint-engine/pkg/types"
)

// listingLimit is how many posts each channel listing requests.
const listingLimit = 25

// Reddit fetches recent posts from Reddit's public JSON listings
// (/r/<channel>/new.json). No OAuth flow is performed; client credentials,
// when present, are sent as basic auth for the higher rate limit tier.
type Reddit struct {
	client       *http.Client
	cfg          types.SourceConfig
	baseURL      string
	clientID     string
	clientSecret string
}

// NewReddit builds a Reddit source. creds may carry "reddit-client-id" and
// "reddit-client-secret" from the secrets directory.
func NewReddit(cfg types.SourceConfig, creds map[string]string) *Reddit {
	return &Reddit{
		client:       &http.Client{Timeout: cfg.Timeout},
		cfg:          cfg,
		baseURL:      "https://www.reddit.com",
		clientID:     creds["reddit-client-id"],
		clientSecret: creds["reddit-client-secret"],
	}
}

// Name returns the backend name.
func (r *Reddit) Name() string { return "reddit" }

// listing mirrors the subset of Reddit's listing JSON we consume.
type listing struct {
	Data struct {
		Children []struct {
			Data struct {
				Title      string  `json:"title"`
				SelfText   string  `json:"selftext"`
				Permalink  string  `json:"permalink"`
				Subreddit  string  `json:"subreddit"`
				Score      int     `json:"score"`
				CreatedUTC float64 `json:"created_utc"`
			} `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

// Fetch pulls the newest posts from each requested channel and keeps those
// dated at or after since.
func (r *Reddit) Fetch(ctx context.Context, channels []string, since time.Time) ([]types.RawPost, error) {
	var out []types.RawPost
	for _, channel := range channels {
		posts, err := r.fetchChannel(ctx, channel, since)
		if err != nil {
			return nil, fmt.Errorf("fetching r/%s: %w", channel, err)
		}
		out = append(out, posts...)
	}
	return out, nil
}

func (r *Reddit) fetchChannel(ctx context.Context, channel string, since time.Time) ([]types.RawPost, error) {
	endpoint := fmt.Sprintf("%s/r/%s/new.json?limit=%d", r.baseURL, url.PathEscape(channel), listingLimit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	if r.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", r.cfg.UserAgent)
	}
	if r.clientID != "" && r.clientSecret != "" {
		req.SetBasicAuth(r.clientID, r.clientSecret)
	}

	resp, err := httputil.DoWithRetry(ctx, r.client, req, r.cfg.MaxRetries)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	var l listing
	if err := json.NewDecoder(resp.Body).Decode(&l); err != nil {
		return nil, fmt.Errorf("decoding listing: %w", err)
	}

	var posts []types.RawPost
	for _, child := range l.Data.Children {
		d := child.Data
		date := time.Unix(int64(d.CreatedUTC), 0).UTC()
		if !since.IsZero() && date.Before(since) {
			continue
		}
		posts = append(posts, types.RawPost{
			Title:   d.Title,
			Body:    d.SelfText,
			URL:     r.baseURL + d.Permalink,
			Channel: d.Subreddit,
			Score:   d.Score,
			Date:    date,
		})
	}
	return posts, nil
}
