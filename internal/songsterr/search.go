// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package songsterr

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/pdiddy/tabfetch/internal/httputil"
	"github.com/pdiddy/tabfetch/pkg/types"
)

// Search queries the songs endpoint for tabs matching pattern. It returns
// at most maxResults entries, preserving the service's ranking order. An
// empty result slice means no songs matched.
func (c *Client) Search(ctx context.Context, pattern string, maxResults int) ([]types.SearchResult, error) {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return nil, fmt.Errorf("search pattern is empty")
	}
	if maxResults <= 0 {
		maxResults = 20
	}

	params := url.Values{
		"size":    {fmt.Sprintf("%d", maxResults)},
		"pattern": {pattern},
	}
	reqURL := c.BaseURL + "/api/songs?" + params.Encode()

	var songs []types.SearchResult
	if err := httputil.GetJSON(ctx, c.HTTP, reqURL, c.UserAgent, &songs); err != nil {
		return nil, err
	}

	// The service honors size, but cap anyway in case it over-returns.
	if len(songs) > maxResults {
		songs = songs[:maxResults]
	}
	return songs, nil
}
