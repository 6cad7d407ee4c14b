// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the paperwatch pipeline.
package types

// Paper is the reduced projection of an OpenAlex work kept for rendering.
// Papers are immutable after construction: the fetcher builds them, the
// renderer reads them, nothing mutates them in between.
type Paper struct {
	// Title is the work title as returned by OpenAlex. May be empty when
	// the source record carries no title.
	Title string `json:"title" yaml:"title"`

	// Journal is the display name of the venue the work appeared in.
	Journal string `json:"journal" yaml:"journal"`

	// Date is the publication date as an ISO date string (YYYY-MM-DD),
	// passed through verbatim from the API.
	Date string `json:"date" yaml:"date"`

	// Link is the DOI URL (e.g. "https://doi.org/10.1000/x"). May be empty
	// when the work has no DOI; the rendered anchor is then non-functional.
	Link string `json:"link" yaml:"link"`

	// Abstract is the raw inverted-index representation OpenAlex returns:
	// a map from word to the positions where that word appears. It is
	// carried verbatim and never reconstructed into prose.
	Abstract map[string][]int `json:"abstract,omitempty" yaml:"abstract,omitempty"`
}
