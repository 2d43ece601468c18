// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/painpoint-engine/pkg/types"
)

// Export writes the record set to path as YAML or indented JSON, chosen
// by file extension (.yaml/.yml or .json).
func Export(records []types.PainPoint, path string) error {
	if records == nil {
		records = []types.PainPoint{}
	}

	var (
		data []byte
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(records)
		if err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
	case ".json":
		data, err = json.MarshalIndent(records, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
	default:
		return fmt.Errorf("unsupported export format %q (use .yaml, .yml, or .json)", ext)
	}

	return os.WriteFile(path, data, 0o644)
}
