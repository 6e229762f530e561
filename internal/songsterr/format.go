// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package songsterr

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/tabfetch/pkg/types"
)

// FormatTable writes search results as a numbered human-readable table.
func FormatTable(results []types.SearchResult, w io.Writer) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-25s  %-45s  %s\n", "#", "Artist", "Title", "Song ID")
	fmt.Fprintln(w, strings.Repeat("-", 90))

	for i, r := range results {
		fmt.Fprintf(w, "%-4d  %-25s  %-45s  %d\n",
			i+1, truncate(r.Artist, 25), truncate(r.Title, 45), r.SongID)
	}

	fmt.Fprintf(w, "\n%d results\n", len(results))
}

// FormatJSON writes search results as indented JSON.
func FormatJSON(results []types.SearchResult, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

// truncate shortens s to at most max runes, never splitting one.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
