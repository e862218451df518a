// Package importer loads snapshot files into validated month and week records.
package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/rhythm/internal/domain"
	"gopkg.in/yaml.v3"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"

	// CurrentVersion is the newest snapshot layout this package reads.
	// Version 0 (field omitted) is treated as 1.
	CurrentVersion = 1
)

// Snapshot is the top-level structure of an import file.
type Snapshot struct {
	Version int                  `json:"version,omitempty" yaml:"version,omitempty"`
	Months  []domain.MonthRecord `json:"months" yaml:"months"`
	Weeks   []domain.WeekRecord  `json:"weeks" yaml:"weeks"`
}

// FormatOf picks the decoder from the file extension.
func FormatOf(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported snapshot extension %q (expected .json, .yaml or .yml)", filepath.Ext(path))
	}
}

// LoadSnapshot reads and parses a snapshot file, returning it with the
// format it was decoded as.
func LoadSnapshot(path string) (*Snapshot, string, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}
	snap, err := DecodeSnapshot(data, format)
	if err != nil {
		return nil, "", err
	}
	return snap, format, nil
}

// DecodeSnapshot parses raw snapshot bytes in the given format.
func DecodeSnapshot(data []byte, format string) (*Snapshot, error) {
	var snap Snapshot
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &snap); err != nil {
			return nil, fmt.Errorf("parsing snapshot json: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &snap); err != nil {
			return nil, fmt.Errorf("parsing snapshot yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown snapshot format %q", format)
	}
	return &snap, nil
}
