// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cite

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/apacite/pkg/types"
)

// ResultFile is the on-disk representation of one batch-parse invocation:
// the parsed records plus a summary. It is a serialization of a single
// run's output, not a store; nothing reads it back across runs except the
// user.
type ResultFile struct {
	Records []types.CitationRecord `yaml:"records"`
	Summary ResultSummary          `yaml:"summary"`
}

// ResultSummary stores batch statistics and a timestamp.
type ResultSummary struct {
	Total     int       `yaml:"total"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteResultFile saves parsed records to a YAML file.
func WriteResultFile(path string, records []types.CitationRecord) error {
	rf := ResultFile{
		Records: records,
		Summary: ResultSummary{
			Total:     len(records),
			Timestamp: time.Now(),
		},
	}

	data, err := yaml.Marshal(&rf)
	if err != nil {
		return fmt.Errorf("marshaling result file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadResultFile loads a previously saved result file from disk.
func ReadResultFile(path string) (*ResultFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading result file: %w", err)
	}
	var rf ResultFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing result file: %w", err)
	}
	return &rf, nil
}
