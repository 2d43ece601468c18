// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package source supplies candidate posts for ingestion. Each backend
// (fixture, Reddit) implements the Backend interface per the Strategy
// pattern; the pipeline is indifferent to where candidates come from.
package source

import (
	"context"
	"strings"
	"time"

	"github.com/pdiddy/painpoint-engine/pkg/types"
)

// Backend fetches candidate posts from one source.
type Backend interface {
	Name() string

	// Fetch returns candidate posts for the requested channels, limited
	// to posts dated at or after since. A zero since means no cutoff.
	Fetch(ctx context.Context, channels []string, since time.Time) ([]types.RawPost, error)
}

// matchesChannel reports whether a post's channel tag matches any of the
// requested channels. Matching is case-insensitive substring containment
// of the requested name within the tag, so "saas" matches "SaaS".
func matchesChannel(tag string, channels []string) bool {
	lowerTag := strings.ToLower(tag)
	for _, ch := range channels {
		if ch == "" {
			continue
		}
		if strings.Contains(lowerTag, strings.ToLower(ch)) {
			return true
		}
	}
	return false
}
