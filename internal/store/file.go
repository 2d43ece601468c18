// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdiddy/painpoint-engine/pkg/types"
)

// FileStore persists records as one pretty-printed JSON array file. A
// missing or unparseable file reads as an empty store; only writes fail
// loudly.
type FileStore struct {
	path string
}

// NewFileStore builds a file store rooted at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the full record set. Any read or parse failure yields an
// empty set, never an error.
func (f *FileStore) Load(_ context.Context) ([]types.PainPoint, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return []types.PainPoint{}, nil
	}

	var records []types.PainPoint
	if err := json.Unmarshal(data, &records); err != nil {
		return []types.PainPoint{}, nil
	}
	return records, nil
}

// Save rewrites the whole file with the given record set, creating the
// parent directory if needed.
func (f *FileStore) Save(_ context.Context, records []types.PainPoint) error {
	if records == nil {
		records = []types.PainPoint{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling records: %w", err)
	}

	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating data directory: %w", err)
		}
	}
	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", f.path, err)
	}
	return nil
}

// Close is a no-op for the file backend.
func (f *FileStore) Close() error { return nil }
