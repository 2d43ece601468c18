// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists pain-point records. Backends implement the
// whole-set RecordStore contract (load everything, save everything);
// Service layers dedup merging, like/unlike mutation, and category
// listing on top, serializing every load-mutate-save sequence behind a
// process-wide lock.
package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/pdiddy/painpoint-engine/pkg/types"
)

var (
	// ErrNotFound signals an unknown record id.
	ErrNotFound = errors.New("pain point not found")

	// ErrInvalidAction signals an unrecognized mutation action.
	ErrInvalidAction = errors.New("invalid action")
)

// Action is a like/unlike mutation verb.
type Action string

const (
	ActionLike   Action = "like"
	ActionUnlike Action = "unlike"
	ActionClear  Action = "clear"
)

// RecordStore loads and saves the full record set. Read failures are
// backend policy: the file backend treats them as an empty store.
type RecordStore interface {
	Load(ctx context.Context) ([]types.PainPoint, error)
	Save(ctx context.Context, records []types.PainPoint) error
	Close() error
}

// Service wraps a RecordStore with the mutations the API exposes. The
// mutex removes the load-mutate-save race between concurrent requests
// without changing single-request behavior.
type Service struct {
	mu                sync.Mutex
	backend           RecordStore
	defaultCategories []string
}

// NewService wires a backend with the category vocabulary used as the
// fallback when the store yields no records.
func NewService(backend RecordStore, defaultCategories []string) *Service {
	return &Service{backend: backend, defaultCategories: defaultCategories}
}

// Load returns the full record set.
func (s *Service) Load(ctx context.Context) ([]types.PainPoint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.backend.Load(ctx)
}

// Merge appends incoming records whose URL is not yet present, persists
// the merged set, and returns how many were added plus the new total.
// Duplicates within the incoming batch are dropped too.
func (s *Service) Merge(ctx context.Context, incoming []types.PainPoint) (added, total int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.backend.Load(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("loading store: %w", err)
	}

	seen := make(map[string]struct{}, len(records))
	for _, r := range records {
		seen[r.URL] = struct{}{}
	}

	for _, r := range incoming {
		if _, dup := seen[r.URL]; dup {
			continue
		}
		seen[r.URL] = struct{}{}
		records = append(records, r)
		added++
	}

	if err := s.backend.Save(ctx, records); err != nil {
		return 0, 0, fmt.Errorf("saving store: %w", err)
	}
	return added, len(records), nil
}

// Apply performs a like/unlike/clear mutation on one record and persists
// the store. Like and unlike are mutually exclusive; clear resets both
// flags to unset. The store is untouched when the id is unknown or the
// action is invalid.
func (s *Service) Apply(ctx context.Context, id string, action Action) (types.PainPoint, error) {
	switch action {
	case ActionLike, ActionUnlike, ActionClear:
	default:
		return types.PainPoint{}, fmt.Errorf("%w: %q", ErrInvalidAction, action)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.backend.Load(ctx)
	if err != nil {
		return types.PainPoint{}, fmt.Errorf("loading store: %w", err)
	}

	idx := -1
	for i := range records {
		if records[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return types.PainPoint{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	switch action {
	case ActionLike:
		records[idx].IsLiked = boolPtr(true)
		records[idx].IsUnliked = boolPtr(false)
	case ActionUnlike:
		records[idx].IsLiked = boolPtr(false)
		records[idx].IsUnliked = boolPtr(true)
	case ActionClear:
		records[idx].IsLiked = nil
		records[idx].IsUnliked = nil
	}

	if err := s.backend.Save(ctx, records); err != nil {
		return types.PainPoint{}, fmt.Errorf("saving store: %w", err)
	}
	return records[idx], nil
}

// Categories returns the sorted unique category labels present in the
// store, or the default vocabulary when the store yields no records.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.backend.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading store: %w", err)
	}
	if len(records) == 0 {
		out := make([]string, len(s.defaultCategories))
		copy(out, s.defaultCategories)
		return out, nil
	}

	set := make(map[string]struct{})
	for _, r := range records {
		if r.Category != "" {
			set[r.Category] = struct{}{}
		}
	}
	categories := make([]string, 0, len(set))
	for c := range set {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	return categories, nil
}

// Close releases the backend.
func (s *Service) Close() error {
	return s.backend.Close()
}

func boolPtr(v bool) *bool { return &v }
