// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across the pipeline.
package httputil

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/pdiddy/tabfetch/internal/errdefs"
)

// Get issues a GET request with the given User-Agent and returns the
// response. Transport failures and non-2xx statuses are reported as
// *errdefs.FetchError; on success the caller owns the response body.
func Get(ctx context.Context, client *http.Client, url, userAgent string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &errdefs.FetchError{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, &errdefs.FetchError{URL: url, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		return nil, &errdefs.FetchError{URL: url, Status: resp.StatusCode}
	}
	return resp, nil
}

// GetJSON fetches url and decodes the JSON response body into v. A body
// that is not valid JSON is a response-shape failure and is reported as
// *errdefs.ResolutionError.
func GetJSON(ctx context.Context, client *http.Client, url, userAgent string, v any) error {
	resp, err := Get(ctx, client, url, userAgent)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return &errdefs.ResolutionError{
			Target: url,
			Reason: fmt.Sprintf("response is not valid JSON: %v", err),
		}
	}
	return nil
}
