// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package digest

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paperwatch/internal/openalex"
	"github.com/pdiddy/paperwatch/pkg/types"
)

// Snapshot is the on-disk YAML record of one run: the query that was issued,
// the filtered papers, and a summary. It exists for inspection and debugging;
// nothing reads it back at runtime.
type Snapshot struct {
	Query   SnapshotQuery   `yaml:"query"`
	Papers  []types.Paper   `yaml:"papers"`
	Summary SnapshotSummary `yaml:"summary"`
}

// SnapshotQuery stores the query parameters in a serializable form.
type SnapshotQuery struct {
	Keyword  string   `yaml:"keyword"`
	From     string   `yaml:"from"`
	Journals []string `yaml:"journals"`
}

// SnapshotSummary stores result statistics and a timestamp.
type SnapshotSummary struct {
	Total         int       `yaml:"total"`
	FetchDegraded bool      `yaml:"fetch_degraded"`
	Timestamp     time.Time `yaml:"timestamp"`
}

// WriteSnapshot saves the run record to a YAML file. degraded marks runs
// whose fetch failed and fell back to the empty list.
func WriteSnapshot(path string, cfg types.WatchConfig, papers []types.Paper, degraded bool) error {
	snap := Snapshot{
		Query: SnapshotQuery{
			Keyword:  cfg.Keyword,
			From:     openalex.WindowStart(cfg),
			Journals: cfg.Journals,
		},
		Papers: papers,
		Summary: SnapshotSummary{
			Total:         len(papers),
			FetchDegraded: degraded,
			Timestamp:     time.Now(),
		},
	}

	data, err := yaml.Marshal(&snap)
	if err != nil {
		return fmt.Errorf("marshaling snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing snapshot %s: %w", path, err)
	}
	return nil
}

// ReadSnapshot loads a previously saved run record from disk.
func ReadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot %s: %w", path, err)
	}
	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parsing snapshot %s: %w", path, err)
	}
	return &snap, nil
}
