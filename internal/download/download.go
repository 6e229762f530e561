// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package download streams resolved assets to disk and derives safe
// filenames from their metadata.
package download

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/h2non/filetype"
	"github.com/vfaronov/httpheader"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/tabfetch/internal/errdefs"
	"github.com/pdiddy/tabfetch/internal/httputil"
	"github.com/pdiddy/tabfetch/pkg/types"
)

const (
	metadataDir = "metadata"

	// fallbackExt is used when neither the URL, the response headers,
	// nor the content give away the file type. Songsterr exports are
	// Guitar Pro files.
	fallbackExt = ".gp"

	// sniffLen is the number of leading bytes filetype needs for matching.
	sniffLen = 262
)

// illegalChars matches characters that are unsafe in file names on at
// least one supported platform.
var illegalChars = regexp.MustCompile(`[\\/:*?"<>|]`)

// SanitizeFilename replaces filesystem-illegal characters with underscores.
func SanitizeFilename(s string) string {
	return illegalChars.ReplaceAllString(s, "_")
}

// Result describes a completed download.
type Result struct {
	Path string
	Size int64
}

// Download streams the asset to the output directory, creating it if
// missing. The filename is "Artist - Title.ext", sanitized; an existing
// file with the same name is overwritten. The body is written to a temp
// file in the destination directory and renamed into place on success, so
// a failed download never leaves a truncated tab behind.
func Download(ctx context.Context, client *http.Client, asset types.Asset, cfg types.DownloadConfig) (Result, error) {
	if asset.URL == "" {
		return Result{}, &errdefs.ResolutionError{Target: asset.Title, Reason: "asset has no URL"}
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return Result{}, &errdefs.DownloadError{Path: cfg.OutputDir, Err: err}
	}

	resp, err := httputil.Get(ctx, client, asset.URL, cfg.UserAgent)
	if err != nil {
		return Result{}, err
	}
	defer resp.Body.Close()

	body, ext := determineExt(asset.URL, resp)
	destPath := filepath.Join(cfg.OutputDir, Filename(asset, ext))

	size, err := writeFile(destPath, body)
	if err != nil {
		return Result{}, err
	}

	if cfg.WriteMetadata {
		if err := writeRecord(asset, destPath, cfg.OutputDir); err != nil {
			return Result{}, err
		}
	}
	return Result{Path: destPath, Size: size}, nil
}

// Filename derives the output filename for an asset: sanitized
// "Artist - Title" plus the extension.
func Filename(asset types.Asset, ext string) string {
	artist := asset.Artist
	if artist == "" {
		artist = "Unknown Artist"
	}
	title := asset.Title
	if title == "" {
		title = "Unknown Title"
	}
	return SanitizeFilename(artist) + " - " + SanitizeFilename(title) + ext
}

// determineExt picks the file extension: URL path extension first, then
// the Content-Disposition filename, then a content sniff of the leading
// bytes, then the Guitar Pro fallback. It returns a reader equivalent to
// resp.Body, with any sniffed bytes stitched back on.
func determineExt(rawURL string, resp *http.Response) (io.Reader, string) {
	if u, err := url.Parse(rawURL); err == nil {
		if ext := path.Ext(u.Path); ext != "" {
			return resp.Body, ext
		}
	}

	if _, name, _ := httpheader.ContentDisposition(resp.Header); name != "" {
		if ext := path.Ext(name); ext != "" {
			return resp.Body, ext
		}
	}

	head := make([]byte, sniffLen)
	n, _ := io.ReadFull(resp.Body, head)
	body := io.MultiReader(bytes.NewReader(head[:n]), resp.Body)

	if kind, err := filetype.Match(head[:n]); err == nil && kind != filetype.Unknown {
		return body, "." + kind.Extension
	}
	return body, fallbackExt
}

// writeFile streams r to destPath via a temp file in the same directory.
func writeFile(destPath string, r io.Reader) (int64, error) {
	tmp, err := os.CreateTemp(filepath.Dir(destPath), ".tabfetch-*.tmp")
	if err != nil {
		return 0, &errdefs.DownloadError{Path: destPath, Err: err}
	}
	tmpPath := tmp.Name()

	size, copyErr := io.Copy(tmp, r)
	closeErr := tmp.Close()
	if copyErr != nil {
		os.Remove(tmpPath)
		return 0, &errdefs.DownloadError{Path: destPath, Err: copyErr}
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return 0, &errdefs.DownloadError{Path: destPath, Err: closeErr}
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		os.Remove(tmpPath)
		return 0, &errdefs.DownloadError{Path: destPath, Err: err}
	}
	return size, nil
}

// writeRecord writes the YAML metadata sidecar for a download under
// outputDir/metadata/, named after the downloaded file.
func writeRecord(asset types.Asset, destPath, outputDir string) error {
	dir := filepath.Join(outputDir, metadataDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &errdefs.DownloadError{Path: dir, Err: err}
	}

	rec := types.TabRecord{
		SongID:     asset.SongID,
		RevisionID: asset.RevisionID,
		Artist:     asset.Artist,
		Title:      asset.Title,
		SourceURL:  asset.URL,
		Path:       destPath,
		Downloaded: time.Now().UTC(),
	}

	data, err := yaml.Marshal(&rec)
	if err != nil {
		return &errdefs.DownloadError{Path: dir, Err: err}
	}

	base := filepath.Base(destPath)
	name := strings.TrimSuffix(base, filepath.Ext(base)) + ".yaml"
	recPath := filepath.Join(dir, name)
	if err := os.WriteFile(recPath, data, 0o644); err != nil {
		return &errdefs.DownloadError{Path: recPath, Err: err}
	}
	return nil
}
