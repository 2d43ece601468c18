// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ingest runs the collection pipeline: fetch candidate posts,
// classify them, and merge the survivors into the record store.
package ingest

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pdiddy/painpoint-engine/internal/classify"
	"github.com/pdiddy/painpoint-engine/internal/source"
	"github.com/pdiddy/painpoint-engine/internal/store"
	"github.com/pdiddy/painpoint-engine/pkg/types"
)

// Result holds the outcome of one ingestion run.
type Result struct {
	// Found is the number of records newly added to the store.
	Found int `json:"found"`

	// Total is the store size after the merge.
	Total int `json:"total"`
}

// Pipeline wires a candidate source, the classifier, and the record store.
type Pipeline struct {
	src        source.Backend
	classifier *classify.Classifier
	store      *store.Service
	log        *zap.SugaredLogger
}

// New builds a pipeline.
func New(src source.Backend, classifier *classify.Classifier, st *store.Service, log *zap.SugaredLogger) *Pipeline {
	return &Pipeline{src: src, classifier: classifier, store: st, log: log}
}

// Run fetches candidates for the given channels, keeps those that qualify
// as pain points, and merges them into the store with URL deduplication.
// A persistence failure aborts the whole run; nothing is retried.
func (p *Pipeline) Run(ctx context.Context, channels []string, since time.Time) (Result, error) {
	posts, err := p.src.Fetch(ctx, channels, since)
	if err != nil {
		return Result{}, fmt.Errorf("fetching candidates from %s: %w", p.src.Name(), err)
	}

	var fresh []types.PainPoint
	for _, post := range posts {
		text := strings.TrimSpace(post.Title + " " + post.Body)
		score := p.classifier.Score(text)
		if !p.classifier.IsPainPoint(text, score) {
			continue
		}
		fresh = append(fresh, types.PainPoint{
			ID:               recordID(post.Channel),
			Text:             text,
			Title:            post.Title,
			SentimentScore:   score,
			BusinessKeywords: p.classifier.Keywords(text),
			Category:         p.classifier.Categorize(text),
			URL:              post.URL,
			Date:             post.Date,
			Source:           "r/" + post.Channel,
			Score:            post.Score,
		})
	}

	added, total, err := p.store.Merge(ctx, fresh)
	if err != nil {
		return Result{}, err
	}

	p.log.Infow("ingestion complete",
		"source", p.src.Name(),
		"channels", channels,
		"candidates", len(posts),
		"qualified", len(fresh),
		"found", added,
		"total", total,
	)
	return Result{Found: added, Total: total}, nil
}

// recordID builds an opaque unique id carrying the originating channel.
func recordID(channel string) string {
	return fmt.Sprintf("%s_%s", strings.ToLower(channel), uuid.NewString())
}
