// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package songsterr talks to the Songsterr web API: searching songs,
// listing tab revisions, and resolving a revision to its downloadable
// asset. All service-specific parsing lives here so a format change on
// the service side touches only this package.
package songsterr

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/pdiddy/tabfetch/internal/errdefs"
	"github.com/pdiddy/tabfetch/internal/httputil"
	"github.com/pdiddy/tabfetch/pkg/types"
)

// DefaultBaseURL is the production Songsterr endpoint. Tests substitute
// an httptest server via the Client.BaseURL field.
const DefaultBaseURL = "https://www.songsterr.com"

// Client issues requests against the Songsterr API.
type Client struct {
	HTTP      *http.Client
	UserAgent string
	BaseURL   string
}

// New returns a Client configured with the given HTTP settings.
func New(cfg types.HTTPConfig) *Client {
	return &Client{
		HTTP:      &http.Client{Timeout: cfg.Timeout},
		UserAgent: cfg.UserAgent,
		BaseURL:   DefaultBaseURL,
	}
}

// Revisions fetches the revision list for a song. The service returns
// revisions newest-first; an empty list means the song has no tab.
func (c *Client) Revisions(ctx context.Context, songID int) ([]types.Revision, error) {
	url := fmt.Sprintf("%s/api/meta/%d/revisions", c.BaseURL, songID)

	var revs []types.Revision
	if err := httputil.GetJSON(ctx, c.HTTP, url, c.UserAgent, &revs); err != nil {
		return nil, err
	}
	if len(revs) == 0 {
		return nil, &errdefs.ResolutionError{
			Target: strconv.Itoa(songID),
			Reason: "no revisions returned",
		}
	}
	return revs, nil
}

// LatestRevision returns the revision with the highest revision ID.
func LatestRevision(revs []types.Revision) types.Revision {
	latest := revs[0]
	for _, rev := range revs[1:] {
		if rev.RevisionID > latest.RevisionID {
			latest = rev
		}
	}
	return latest
}

// revisionDetail captures the fields we need from a revision record.
type revisionDetail struct {
	Source string `json:"source"`
	Artist string `json:"artist"`
	Title  string `json:"title"`
}

// RevisionAsset fetches a revision's metadata and returns the resolved
// downloadable Asset. Revisions without a source URL cannot be downloaded.
func (c *Client) RevisionAsset(ctx context.Context, revisionID int) (types.Asset, error) {
	url := fmt.Sprintf("%s/api/revision/%d", c.BaseURL, revisionID)

	var detail revisionDetail
	if err := httputil.GetJSON(ctx, c.HTTP, url, c.UserAgent, &detail); err != nil {
		return types.Asset{}, err
	}
	if detail.Source == "" {
		return types.Asset{}, &errdefs.ResolutionError{
			Target: strconv.Itoa(revisionID),
			Reason: "no downloadable source URL in revision data",
		}
	}

	asset := types.Asset{
		URL:        detail.Source,
		Artist:     detail.Artist,
		Title:      detail.Title,
		RevisionID: revisionID,
	}
	if asset.Artist == "" {
		asset.Artist = "Unknown Artist"
	}
	if asset.Title == "" {
		asset.Title = "Unknown Title"
	}
	return asset, nil
}
