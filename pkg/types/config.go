// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// WatchConfig holds the settings for one paperwatch run. Zero values are
// filled in by Defaults; a config file or flags may override any field.
type WatchConfig struct {
	// Keyword is the free-text search term sent to OpenAlex.
	Keyword string `json:"keyword" yaml:"keyword"`

	// Journals is the allow-list of venue names. A work is kept iff its
	// journal display name case-insensitively contains at least one entry
	// as a substring. The match is deliberately loose so sub-journal
	// variants ("Nature Communications") pass an entry like "Nature".
	Journals []string `json:"journals" yaml:"journals"`

	// WindowDays is how far back the publication-date window reaches
	// (default 7).
	WindowDays int `json:"window_days" yaml:"window_days"`

	// PerPage is the result page size requested from the API (default 50).
	// Only the first page is ever fetched.
	PerPage int `json:"per_page" yaml:"per_page"`

	// OutputPath is the HTML file overwritten on every run (default "index.html").
	OutputPath string `json:"output_path" yaml:"output_path"`

	// SnapshotPath, when non-empty, is where a YAML record of the run
	// (query, results, summary) is written alongside the HTML.
	SnapshotPath string `json:"snapshot_path,omitempty" yaml:"snapshot_path,omitempty"`

	// Mailto is an optional contact email sent as the mailto query
	// parameter for OpenAlex polite pool access. Empty by default.
	Mailto string `json:"mailto,omitempty" yaml:"mailto,omitempty"`
}

// Default configuration values. These reproduce the original daily digest:
// microfluidics papers from five top journals over the past week.
const (
	DefaultKeyword    = "microfluidic"
	DefaultWindowDays = 7
	DefaultPerPage    = 50
	DefaultOutputPath = "index.html"
)

// DefaultJournals is the built-in journal allow-list.
var DefaultJournals = []string{
	"Nature",
	"Science",
	"Proceedings of the National Academy of Sciences",
	"Nature Communications",
	"Science Advances",
}

// Defaults fills zero-valued fields of cfg with the built-in defaults and
// returns the result.
func Defaults(cfg WatchConfig) WatchConfig {
	if cfg.Keyword == "" {
		cfg.Keyword = DefaultKeyword
	}
	if len(cfg.Journals) == 0 {
		cfg.Journals = append([]string(nil), DefaultJournals...)
	}
	if cfg.WindowDays <= 0 {
		cfg.WindowDays = DefaultWindowDays
	}
	if cfg.PerPage <= 0 {
		cfg.PerPage = DefaultPerPage
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = DefaultOutputPath
	}
	return cfg
}
