// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package errdefs defines the error variants reported by the pipeline.
// Each failure mode gets its own type so callers can match with errors.As
// instead of inspecting message text.
package errdefs

import "fmt"

// FetchError reports a network or HTTP failure while talking to the service.
// Status is the HTTP status code, or 0 when the request never completed.
type FetchError struct {
	URL    string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetching %s: HTTP %d", e.URL, e.Status)
	}
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ResolutionError reports that a target or a service response was not in
// the expected shape: an unparseable tab URL, an empty revision list, or
// revision data without a downloadable source.
type ResolutionError struct {
	Target string
	Reason string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolving %q: %s", e.Target, e.Reason)
}

// DownloadError reports a local filesystem failure while writing a download.
type DownloadError struct {
	Path string
	Err  error
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *DownloadError) Unwrap() error { return e.Err }
