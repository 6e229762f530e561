// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package songsterr

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/pdiddy/tabfetch/pkg/types"
)

func TestFormatTable(t *testing.T) {
	results := []types.SearchResult{
		{SongID: 505453, Artist: "Pissgrave", Title: "Rusted Wind"},
		{SongID: 68807, Artist: "Amebix", Title: "Chain Reaction"},
	}

	var buf bytes.Buffer
	FormatTable(results, &buf)
	out := buf.String()

	for _, want := range []string{"Pissgrave", "Chain Reaction", "505453", "2 results"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	FormatTable(nil, &buf)
	if !strings.Contains(buf.String(), "No results found.") {
		t.Errorf("empty table output = %q", buf.String())
	}
}

func TestFormatTableMultibyteTitle(t *testing.T) {
	results := []types.SearchResult{
		{SongID: 1, Artist: strings.Repeat("é", 30), Title: strings.Repeat("日本語", 20)},
	}

	var buf bytes.Buffer
	FormatTable(results, &buf)
	out := buf.String()

	if !utf8.ValidString(out) {
		t.Errorf("table output contains invalid UTF-8: %q", out)
	}
	if !strings.Contains(out, "...") {
		t.Errorf("long fields were not truncated:\n%s", out)
	}
}

func TestTruncateRuneSafe(t *testing.T) {
	got := truncate(strings.Repeat("é", 30), 25)
	if !utf8.ValidString(got) {
		t.Errorf("truncate produced invalid UTF-8: %q", got)
	}
	if want := strings.Repeat("é", 22) + "..."; got != want {
		t.Errorf("truncate = %q, want %q", got, want)
	}

	if got := truncate("short", 25); got != "short" {
		t.Errorf("truncate(short) = %q", got)
	}
}

func TestFormatJSON(t *testing.T) {
	results := []types.SearchResult{{SongID: 7, Artist: "A", Title: "T"}}

	var buf bytes.Buffer
	if err := FormatJSON(results, &buf); err != nil {
		t.Fatalf("FormatJSON error: %v", err)
	}

	var decoded []types.SearchResult
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != 1 || decoded[0].SongID != 7 {
		t.Errorf("decoded = %+v", decoded)
	}
}
