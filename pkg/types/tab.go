// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the tabfetch pipeline.
package types

import "time"

// SearchResult represents one candidate tab returned by a search query.
// Results keep the order the service returned them in.
type SearchResult struct {
	// SongID is the canonical song identifier used for revision lookups.
	SongID int `json:"songId" yaml:"song_id"`

	// Artist is the performing artist as returned by the service.
	Artist string `json:"artist" yaml:"artist"`

	// Title is the song title as returned by the service.
	Title string `json:"title" yaml:"title"`
}

// Revision is one version of a tab. A song usually has a single revision,
// but community edits produce several; the highest RevisionID is the latest.
type Revision struct {
	RevisionID int            `json:"revisionId" yaml:"revision_id"`
	CreatedAt  string         `json:"createdAt" yaml:"created_at"`
	Author     RevisionAuthor `json:"author" yaml:"author"`
	Artist     string         `json:"artist,omitempty" yaml:"artist,omitempty"`
	Title      string         `json:"title,omitempty" yaml:"title,omitempty"`
}

// RevisionAuthor identifies who submitted a revision.
type RevisionAuthor struct {
	ProfileName string `json:"profileName" yaml:"profile_name"`
}

// Asset is a resolved, directly downloadable resource: the source URL of a
// revision plus the metadata the filename is derived from. An Asset must
// have a non-empty URL before a download is attempted.
type Asset struct {
	URL        string `json:"url" yaml:"url"`
	Artist     string `json:"artist" yaml:"artist"`
	Title      string `json:"title" yaml:"title"`
	SongID     int    `json:"song_id" yaml:"song_id"`
	RevisionID int    `json:"revision_id" yaml:"revision_id"`
}

// TabRecord is the on-disk metadata record written next to a download when
// metadata output is enabled.
type TabRecord struct {
	SongID     int       `yaml:"song_id"`
	RevisionID int       `yaml:"revision_id"`
	Artist     string    `yaml:"artist"`
	Title      string    `yaml:"title"`
	SourceURL  string    `yaml:"source_url"`
	Path       string    `yaml:"path"`
	Downloaded time.Time `yaml:"downloaded"`
}
