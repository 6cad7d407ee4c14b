// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package openalex fetches recent works from the OpenAlex API and filters
// them against a journal allow-list.
package openalex

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/pdiddy/paperwatch/pkg/types"
)

// worksBase is the OpenAlex Works endpoint. Declared as a var so tests can
// substitute an httptest server.
var worksBase = "https://api.openalex.org/works"

// timeNow is swapped out by tests that need a fixed query window.
var timeNow = time.Now

const dateFmt = "2006-01-02"

// WindowStart returns the lower bound of the publication-date window as an
// ISO date string: today minus cfg.WindowDays.
func WindowStart(cfg types.WatchConfig) string {
	return timeNow().AddDate(0, 0, -cfg.WindowDays).Format(dateFmt)
}

// FetchRecent issues a single GET to the Works endpoint for publications
// matching cfg.Keyword inside the date window, newest first, and returns the
// subset whose journal passes the allow-list. Exactly one request is made;
// there is no retry and no pagination past the first page.
//
// Works without a primary_location.source are skipped. Network failures,
// non-200 responses, and malformed JSON are returned as errors with no
// partial results.
func FetchRecent(ctx context.Context, client *http.Client, cfg types.WatchConfig) ([]types.Paper, error) {
	if cfg.Keyword == "" {
		return nil, fmt.Errorf("empty search keyword")
	}

	params := url.Values{
		"filter":   {"default.search:" + cfg.Keyword + ",from_publication_date:" + WindowStart(cfg)},
		"per-page": {fmt.Sprintf("%d", cfg.PerPage)},
		"sort":     {"publication_date:desc"},
	}
	if cfg.Mailto != "" {
		params.Set("mailto", cfg.Mailto)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, worksBase+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("OpenAlex API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("OpenAlex API returned HTTP %d", resp.StatusCode)
	}

	var wr worksResponse
	if err := json.NewDecoder(resp.Body).Decode(&wr); err != nil {
		return nil, fmt.Errorf("parsing OpenAlex response: %w", err)
	}

	var papers []types.Paper
	for _, w := range wr.Results {
		// A work without a primary location source has no journal to
		// test against; skip it entirely.
		if w.PrimaryLocation == nil || w.PrimaryLocation.Source == nil {
			continue
		}
		journal := w.PrimaryLocation.Source.DisplayName
		if !matchesJournal(journal, cfg.Journals) {
			continue
		}
		papers = append(papers, types.Paper{
			Title:    w.Title,
			Journal:  journal,
			Date:     w.PublicationDate,
			Link:     w.DOI,
			Abstract: w.AbstractInvertedIndex,
		})
	}
	return papers, nil
}

// OpenAlex API JSON structures. primary_location and source are pointers so
// that an absent descriptor is distinguishable from an empty one.
type worksResponse struct {
	Meta    worksMeta `json:"meta"`
	Results []work    `json:"results"`
}

type worksMeta struct {
	Count   int `json:"count"`
	PerPage int `json:"per_page"`
	Page    int `json:"page"`
}

type work struct {
	ID                    string           `json:"id"`
	Title                 string           `json:"title"`
	DOI                   string           `json:"doi"`
	PublicationDate       string           `json:"publication_date"`
	PrimaryLocation       *primaryLocation `json:"primary_location"`
	AbstractInvertedIndex map[string][]int `json:"abstract_inverted_index"`
}

type primaryLocation struct {
	Source *workSource `json:"source"`
}

type workSource struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}
