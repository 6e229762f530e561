// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch runs the per-target pipeline: resolve a target to a song,
// pick a revision, resolve its asset, and download it. Targets are
// processed sequentially; a failure for one target never stops the rest.
package fetch

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/pdiddy/tabfetch/internal/download"
	"github.com/pdiddy/tabfetch/internal/errdefs"
	"github.com/pdiddy/tabfetch/internal/prompt"
	"github.com/pdiddy/tabfetch/internal/songsterr"
	"github.com/pdiddy/tabfetch/pkg/types"
)

// Options controls a batch run.
type Options struct {
	// Interactive enables search for non-URL targets and selection
	// prompts for search results and revisions.
	Interactive bool

	// MaxResults caps the number of search results presented.
	MaxResults int

	// Download holds the output settings for the download stage.
	Download types.DownloadConfig

	// Prompter drives interactive selection; required when Interactive.
	Prompter *prompt.Prompter
}

// BatchResult holds the outcome of a batch run.
type BatchResult struct {
	Downloaded int
	Failed     int
	Paths      []string
}

// Total returns the number of targets processed.
func (r BatchResult) Total() int { return r.Downloaded + r.Failed }

// HasFailures reports whether any target failed.
func (r BatchResult) HasFailures() bool { return r.Failed > 0 }

// FetchTarget resolves one target and downloads its tab, returning the
// download result. Progress lines go to w.
func FetchTarget(ctx context.Context, client *songsterr.Client, target string, opts Options, w io.Writer) (download.Result, error) {
	songID, err := resolveSongID(ctx, client, target, opts)
	if err != nil {
		return download.Result{}, err
	}

	revs, err := client.Revisions(ctx, songID)
	if err != nil {
		return download.Result{}, err
	}

	var rev types.Revision
	if opts.Interactive && opts.Prompter != nil {
		rev, err = opts.Prompter.ChooseRevision(revs)
		if err != nil {
			return download.Result{}, err
		}
	} else {
		rev = songsterr.LatestRevision(revs)
	}

	asset, err := client.RevisionAsset(ctx, rev.RevisionID)
	if err != nil {
		return download.Result{}, err
	}
	asset.SongID = songID

	fmt.Fprintf(w, "downloading: %s\n", asset.URL)
	return download.Download(ctx, client.HTTP, asset, opts.Download)
}

// resolveSongID turns a target into a song ID. Direct tab URLs are parsed;
// search phrases require interactive mode so the user can pick a match.
func resolveSongID(ctx context.Context, client *songsterr.Client, target string, opts Options) (int, error) {
	switch songsterr.ClassifyTarget(target) {
	case songsterr.TargetURL:
		return songsterr.ExtractSongID(target)

	case songsterr.TargetSearch:
		if !opts.Interactive || opts.Prompter == nil {
			return 0, &errdefs.ResolutionError{
				Target: target,
				Reason: "not a tab URL (use --interactive to search)",
			}
		}
		results, err := client.Search(ctx, target, opts.MaxResults)
		if err != nil {
			return 0, err
		}
		if len(results) == 0 {
			return 0, &errdefs.ResolutionError{Target: target, Reason: "no songs matched"}
		}
		chosen, err := opts.Prompter.ChooseSong(results)
		if err != nil {
			return 0, err
		}
		return chosen.SongID, nil

	default:
		return 0, &errdefs.ResolutionError{Target: target, Reason: "empty target"}
	}
}

// FetchBatch processes targets in order, printing a status line per target
// and a summary at the end. It continues after individual failures and
// applies the configured delay between consecutive downloads.
func FetchBatch(ctx context.Context, client *songsterr.Client, targetList []string, opts Options, w io.Writer) BatchResult {
	var result BatchResult
	for i, target := range targetList {
		if i > 0 && opts.Download.DownloadDelay > 0 {
			time.Sleep(opts.Download.DownloadDelay)
		}

		res, err := FetchTarget(ctx, client, target, opts, w)
		if err != nil {
			fmt.Fprintf(w, "FAILED: %s: %v\n", target, err)
			result.Failed++
			continue
		}

		fmt.Fprintf(w, "OK: %s (%s)\n", filepath.Base(res.Path), humanize.Bytes(uint64(res.Size)))
		result.Downloaded++
		result.Paths = append(result.Paths, res.Path)
	}

	fmt.Fprintf(w, "\nBatch summary: %d downloaded, %d failed (total: %d)\n",
		result.Downloaded, result.Failed, result.Total())
	return result
}
