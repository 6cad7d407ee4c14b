// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package digest runs the fetch-filter-render pipeline: one OpenAlex query,
// the journal allow-list filter, and the static HTML page.
package digest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pdiddy/paperwatch/internal/openalex"
	"github.com/pdiddy/paperwatch/internal/render"
	"github.com/pdiddy/paperwatch/pkg/types"
)

// fetchPapers is swapped out by tests that simulate fetch outcomes.
var fetchPapers = openalex.FetchRecent

// Run executes one digest run: fetch, filter, render, sequentially. Progress
// lines go to out.
//
// A fetch failure is recoverable: it is reported on out and the run
// continues with an empty list, so the page still regenerates and the exit
// stays clean. A render or file-write failure is fatal and is returned to
// the caller.
func Run(ctx context.Context, client *http.Client, cfg types.WatchConfig, out io.Writer) error {
	cfg = types.Defaults(cfg)

	fmt.Fprintln(out, "Fetching papers...")

	papers, err := fetchPapers(ctx, client, cfg)
	degraded := err != nil
	if degraded {
		fmt.Fprintf(out, "Error fetching data: %v\n", err)
		papers = nil
	}

	fmt.Fprintf(out, "Found %d matching papers.\n", len(papers))

	if cfg.SnapshotPath != "" {
		if err := WriteSnapshot(cfg.SnapshotPath, cfg, papers, degraded); err != nil {
			return err
		}
	}

	if err := render.WriteFile(cfg.OutputPath, papers, time.Now()); err != nil {
		return err
	}

	fmt.Fprintf(out, "Wrote %s.\n", cfg.OutputPath)
	return nil
}
