// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package query filters, sorts, and paginates pain-point records held in
// memory. It never touches storage; callers load the record set first.
package query

import (
	"fmt"
	"sort"

	"github.com/pdiddy/painpoint-engine/pkg/types"
)

// Sort keys and directions. Unrecognized values fall back to the default,
// matching the lenient request parsing of the original API.
const (
	SortByDate      = "date"
	SortBySentiment = "sentiment"
	SortByScore     = "score"

	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Liked filter sentinels. "false" selects explicitly-unliked records, not
// "not liked" ones; the UI depends on that asymmetry.
const (
	LikedTrue  = "true"
	LikedFalse = "false"
)

// CategoryAll is the category filter sentinel meaning no filtering.
const CategoryAll = "all"

// Options holds the query parameters.
type Options struct {
	// Category keeps only records with this exact category. Empty or
	// "all" disables the filter.
	Category string

	// Liked is "", "true", or "false" (see the sentinels above).
	Liked string

	// SortBy is date, sentiment, or score; SortOrder is asc or desc.
	SortBy    string
	SortOrder string

	// Page is 1-based; Limit is the page size and must be positive.
	Page  int
	Limit int
}

// Pagination describes the page window relative to the filtered total.
type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	TotalItems int  `json:"totalItems"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

// Result is one page of records plus pagination metadata.
type Result struct {
	Data       []types.PainPoint `json:"data"`
	Pagination Pagination        `json:"pagination"`
}

// Apply runs the filter → sort → paginate pipeline over records. The
// input slice is not reordered. A page past the end yields an empty data
// slice with HasNext false.
func Apply(records []types.PainPoint, opts Options) (Result, error) {
	if opts.Limit <= 0 {
		return Result{}, fmt.Errorf("limit must be positive, got %d", opts.Limit)
	}
	if opts.Page < 1 {
		return Result{}, fmt.Errorf("page must be at least 1, got %d", opts.Page)
	}

	filtered := make([]types.PainPoint, 0, len(records))
	for _, r := range records {
		if opts.Category != "" && opts.Category != CategoryAll && r.Category != opts.Category {
			continue
		}
		switch opts.Liked {
		case LikedTrue:
			if !r.Liked() {
				continue
			}
		case LikedFalse:
			if !r.Unliked() {
				continue
			}
		}
		filtered = append(filtered, r)
	}

	less := lessFunc(opts.SortBy)
	asc := opts.SortOrder == OrderAsc
	sort.Slice(filtered, func(i, j int) bool {
		if asc {
			return less(filtered[i], filtered[j])
		}
		return less(filtered[j], filtered[i])
	})

	totalItems := len(filtered)
	totalPages := (totalItems + opts.Limit - 1) / opts.Limit

	start := (opts.Page - 1) * opts.Limit
	end := start + opts.Limit
	if start > totalItems {
		start = totalItems
	}
	if end > totalItems {
		end = totalItems
	}

	page := make([]types.PainPoint, end-start)
	copy(page, filtered[start:end])

	return Result{
		Data: page,
		Pagination: Pagination{
			Page:       opts.Page,
			Limit:      opts.Limit,
			TotalItems: totalItems,
			TotalPages: totalPages,
			HasNext:    opts.Page < totalPages,
			HasPrev:    opts.Page > 1,
		},
	}, nil
}

// lessFunc returns the ascending comparator for the sort key.
func lessFunc(sortBy string) func(a, b types.PainPoint) bool {
	switch sortBy {
	case SortBySentiment:
		return func(a, b types.PainPoint) bool { return a.SentimentScore < b.SentimentScore }
	case SortByScore:
		return func(a, b types.PainPoint) bool { return a.Score < b.Score }
	default:
		return func(a, b types.PainPoint) bool { return a.Date.Before(b.Date) }
	}
}
