// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package digest

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/paperwatch/pkg/types"
)

func swapFetch(t *testing.T, papers []types.Paper, err error) {
	t.Helper()
	old := fetchPapers
	fetchPapers = func(_ context.Context, _ *http.Client, _ types.WatchConfig) ([]types.Paper, error) {
		return papers, err
	}
	t.Cleanup(func() { fetchPapers = old })
}

func samplePapers() []types.Paper {
	return []types.Paper{
		{Title: "Chip Flow Study", Journal: "Nature Communications", Date: "2024-05-01", Link: "https://doi.org/10.1000/x"},
		{Title: "Droplet Barcoding", Journal: "Science", Date: "2024-04-30", Link: "https://doi.org/10.1000/y"},
	}
}

func TestRunSuccess(t *testing.T) {
	swapFetch(t, samplePapers(), nil)

	outPath := filepath.Join(t.TempDir(), "index.html")
	var log bytes.Buffer

	err := Run(context.Background(), &http.Client{}, types.WatchConfig{OutputPath: outPath}, &log)
	require.NoError(t, err)

	// Three diagnostic lines: start, count, completion.
	assert.Contains(t, log.String(), "Fetching papers...")
	assert.Contains(t, log.String(), "Found 2 matching papers.")
	assert.Contains(t, log.String(), fmt.Sprintf("Wrote %s.", outPath))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Chip Flow Study")
	assert.Contains(t, string(data), "Droplet Barcoding")
}

func TestRunFetchFailureDegradesToEmptyPage(t *testing.T) {
	swapFetch(t, nil, fmt.Errorf("connection refused"))

	outPath := filepath.Join(t.TempDir(), "index.html")
	var log bytes.Buffer

	// A fetch failure must not fail the run.
	err := Run(context.Background(), &http.Client{}, types.WatchConfig{OutputPath: outPath}, &log)
	require.NoError(t, err)

	assert.Contains(t, log.String(), "Error fetching data: connection refused")
	assert.Contains(t, log.String(), "Found 0 matching papers.")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "No new papers from these journals today.")
}

func TestRunWriteFailureIsFatal(t *testing.T) {
	swapFetch(t, samplePapers(), nil)

	outPath := filepath.Join(t.TempDir(), "missing", "index.html")
	var log bytes.Buffer

	err := Run(context.Background(), &http.Client{}, types.WatchConfig{OutputPath: outPath}, &log)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "writing")
}

func TestRunWritesSnapshot(t *testing.T) {
	swapFetch(t, samplePapers(), nil)

	dir := t.TempDir()
	cfg := types.WatchConfig{
		OutputPath:   filepath.Join(dir, "index.html"),
		SnapshotPath: filepath.Join(dir, "run.yaml"),
	}

	var log bytes.Buffer
	require.NoError(t, Run(context.Background(), &http.Client{}, cfg, &log))

	snap, err := ReadSnapshot(cfg.SnapshotPath)
	require.NoError(t, err)
	assert.Equal(t, "microfluidic", snap.Query.Keyword)
	assert.Equal(t, types.DefaultJournals, snap.Query.Journals)
	assert.Len(t, snap.Papers, 2)
	assert.Equal(t, 2, snap.Summary.Total)
	assert.False(t, snap.Summary.FetchDegraded)
	assert.False(t, snap.Summary.Timestamp.IsZero())
}

func TestRunSnapshotMarksDegradedFetch(t *testing.T) {
	swapFetch(t, nil, fmt.Errorf("boom"))

	dir := t.TempDir()
	cfg := types.WatchConfig{
		OutputPath:   filepath.Join(dir, "index.html"),
		SnapshotPath: filepath.Join(dir, "run.yaml"),
	}

	var log bytes.Buffer
	require.NoError(t, Run(context.Background(), &http.Client{}, cfg, &log))

	snap, err := ReadSnapshot(cfg.SnapshotPath)
	require.NoError(t, err)
	assert.True(t, snap.Summary.FetchDegraded)
	assert.Empty(t, snap.Papers)
}

func TestRunRerunOverwritesOutput(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "index.html")
	var log bytes.Buffer

	swapFetch(t, samplePapers(), nil)
	require.NoError(t, Run(context.Background(), &http.Client{}, types.WatchConfig{OutputPath: outPath}, &log))

	swapFetch(t, []types.Paper{{Title: "Second Run Paper", Journal: "Nature", Date: "2024-05-02"}}, nil)
	require.NoError(t, Run(context.Background(), &http.Client{}, types.WatchConfig{OutputPath: outPath}, &log))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Second Run Paper")
	assert.NotContains(t, string(data), "Chip Flow Study", "rerun must leave no residual content")
}

func TestSnapshotRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	cfg := types.Defaults(types.WatchConfig{})

	require.NoError(t, WriteSnapshot(path, cfg, samplePapers(), false))

	snap, err := ReadSnapshot(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Keyword, snap.Query.Keyword)
	require.Len(t, snap.Papers, 2)
	assert.Equal(t, "Chip Flow Study", snap.Papers[0].Title)
	assert.Equal(t, "https://doi.org/10.1000/y", snap.Papers[1].Link)
	// Window start is an ISO date.
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, snap.Query.From)
}

func TestReadSnapshotErrors(t *testing.T) {
	_, err := ReadSnapshot(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading snapshot")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("papers: ["), 0o644))
	_, err = ReadSnapshot(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing snapshot")
}

func TestRunDiagnosticLineOrder(t *testing.T) {
	swapFetch(t, nil, nil)

	outPath := filepath.Join(t.TempDir(), "index.html")
	var log bytes.Buffer
	require.NoError(t, Run(context.Background(), &http.Client{}, types.WatchConfig{OutputPath: outPath}, &log))

	s := log.String()
	start := strings.Index(s, "Fetching papers...")
	count := strings.Index(s, "Found 0 matching papers.")
	done := strings.Index(s, "Wrote ")
	require.True(t, start >= 0 && count >= 0 && done >= 0)
	assert.True(t, start < count && count < done, "diagnostics must be start, count, completion")
}
