package types

import "time"

// HTTPConfig holds shared HTTP settings used by components that make
// network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "tabfetch/0.1"). The service rejects some default client strings.
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SearchConfig holds settings for search queries.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxResults is the maximum number of search results to return (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// DownloadConfig holds settings for the download stage.
type DownloadConfig struct {
	HTTPConfig `yaml:",inline"`

	// OutputDir is the directory downloaded tabs are written to (default "./output").
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// DownloadDelay is the delay between consecutive downloads (default 0).
	DownloadDelay time.Duration `json:"download_delay" yaml:"download_delay"`

	// WriteMetadata controls whether a YAML metadata record is written
	// under OutputDir/metadata/ for each download.
	WriteMetadata bool `json:"write_metadata" yaml:"write_metadata"`
}

// PipelineConfig groups all stage configurations for one run.
type PipelineConfig struct {
	Search   SearchConfig   `json:"search" yaml:"search"`
	Download DownloadConfig `json:"download" yaml:"download"`
}
