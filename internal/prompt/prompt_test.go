// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package prompt

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/pdiddy/tabfetch/pkg/types"
)

var songs = []types.SearchResult{
	{SongID: 505453, Artist: "Pissgrave", Title: "Rusted Wind"},
	{SongID: 68807, Artist: "Amebix", Title: "Chain Reaction"},
	{SongID: 12345, Artist: "Viagra Boys", Title: "Sports"},
}

func TestChooseSongSingleResult(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader(""), &out)

	got, err := p.ChooseSong(songs[:1])
	if err != nil {
		t.Fatalf("ChooseSong error: %v", err)
	}
	if got.SongID != 505453 {
		t.Errorf("SongID = %d, want 505453", got.SongID)
	}
	if out.Len() != 0 {
		t.Errorf("single result should not print a menu, got %q", out.String())
	}
}

func TestChooseSongByNumber(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("2\n"), &out)

	got, err := p.ChooseSong(songs)
	if err != nil {
		t.Fatalf("ChooseSong error: %v", err)
	}
	if got.SongID != 68807 {
		t.Errorf("SongID = %d, want 68807", got.SongID)
	}
	if !strings.Contains(out.String(), "artist=Amebix") {
		t.Errorf("menu missing entry: %q", out.String())
	}
}

func TestChooseSongRepromptsOnInvalidInput(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("abc\n9\n3\n"), &out)

	got, err := p.ChooseSong(songs)
	if err != nil {
		t.Fatalf("ChooseSong error: %v", err)
	}
	if got.SongID != 12345 {
		t.Errorf("SongID = %d, want 12345", got.SongID)
	}
	if !strings.Contains(out.String(), "Please enter a number from the list.") {
		t.Errorf("missing non-numeric reprompt: %q", out.String())
	}
	if !strings.Contains(out.String(), "Please enter a valid number from the list.") {
		t.Errorf("missing out-of-range reprompt: %q", out.String())
	}
}

func TestChooseSongInputClosed(t *testing.T) {
	p := New(strings.NewReader(""), io.Discard)

	_, err := p.ChooseSong(songs)
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ChooseSong error = %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestChooseRevisionEnterPicksLatest(t *testing.T) {
	revs := []types.Revision{
		{RevisionID: 301, Author: types.RevisionAuthor{ProfileName: "alice"}},
		{RevisionID: 512, Author: types.RevisionAuthor{ProfileName: "bob"}},
		{RevisionID: 498, Author: types.RevisionAuthor{ProfileName: "carol"}},
	}

	var out bytes.Buffer
	p := New(strings.NewReader("\n"), &out)

	got, err := p.ChooseRevision(revs)
	if err != nil {
		t.Fatalf("ChooseRevision error: %v", err)
	}
	if got.RevisionID != 512 {
		t.Errorf("RevisionID = %d, want latest 512", got.RevisionID)
	}
}

func TestChooseRevisionByNumber(t *testing.T) {
	revs := []types.Revision{
		{RevisionID: 301},
		{RevisionID: 512},
	}

	p := New(strings.NewReader("1\n"), io.Discard)
	got, err := p.ChooseRevision(revs)
	if err != nil {
		t.Fatalf("ChooseRevision error: %v", err)
	}
	if got.RevisionID != 301 {
		t.Errorf("RevisionID = %d, want 301", got.RevisionID)
	}
}

func TestChooseRevisionSingle(t *testing.T) {
	p := New(strings.NewReader(""), io.Discard)
	got, err := p.ChooseRevision([]types.Revision{{RevisionID: 7}})
	if err != nil {
		t.Fatalf("ChooseRevision error: %v", err)
	}
	if got.RevisionID != 7 {
		t.Errorf("RevisionID = %d, want 7", got.RevisionID)
	}
}

func TestSearchText(t *testing.T) {
	p := New(strings.NewReader("  viagra boys sports \n"), io.Discard)
	got, err := p.SearchText()
	if err != nil {
		t.Fatalf("SearchText error: %v", err)
	}
	if got != "viagra boys sports" {
		t.Errorf("SearchText = %q", got)
	}
}

func TestSearchTextEmpty(t *testing.T) {
	p := New(strings.NewReader("\n"), io.Discard)
	if _, err := p.SearchText(); err == nil {
		t.Fatal("SearchText with empty input should fail")
	}
}
