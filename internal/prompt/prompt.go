// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package prompt implements the interactive selection of search results
// and tab revisions. Input and output are injected so tests can drive the
// prompts with canned lines.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pdiddy/tabfetch/internal/songsterr"
	"github.com/pdiddy/tabfetch/pkg/types"
)

// Prompter reads selections from an input stream and writes menus to an
// output stream.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// New returns a Prompter reading from in and writing to out.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// ChooseSong presents search results and returns the selected one. A
// single result is chosen automatically. Invalid input re-prompts.
func (p *Prompter) ChooseSong(results []types.SearchResult) (types.SearchResult, error) {
	if len(results) == 1 {
		return results[0], nil
	}

	fmt.Fprintln(p.out, "Search results:")
	for i, r := range results {
		fmt.Fprintf(p.out, "%d) id=%d artist=%s title=%s\n", i+1, r.SongID, r.Artist, r.Title)
	}

	for {
		fmt.Fprint(p.out, "Choose a song number: ")
		line, err := p.readLine()
		if err != nil {
			return types.SearchResult{}, err
		}
		n, convErr := strconv.Atoi(line)
		if convErr != nil {
			fmt.Fprintln(p.out, "Please enter a number from the list.")
			continue
		}
		if n >= 1 && n <= len(results) {
			return results[n-1], nil
		}
		fmt.Fprintln(p.out, "Please enter a valid number from the list.")
	}
}

// ChooseRevision presents a tab's revisions and returns the selected one.
// Pressing Enter picks the latest revision; a single revision is chosen
// automatically.
func (p *Prompter) ChooseRevision(revs []types.Revision) (types.Revision, error) {
	if len(revs) == 1 {
		return revs[0], nil
	}

	fmt.Fprintln(p.out, "Available revisions:")
	for i, rev := range revs {
		fmt.Fprintf(p.out, "%d) revisionId=%d createdAt=%s author=%s\n",
			i+1, rev.RevisionID, rev.CreatedAt, rev.Author.ProfileName)
	}

	for {
		fmt.Fprint(p.out, "Choose a revision number (Enter for latest): ")
		line, err := p.readLine()
		if err != nil {
			return types.Revision{}, err
		}
		if line == "" {
			return songsterr.LatestRevision(revs), nil
		}
		n, convErr := strconv.Atoi(line)
		if convErr != nil {
			fmt.Fprintln(p.out, "Please enter a number from the list.")
			continue
		}
		if n >= 1 && n <= len(revs) {
			return revs[n-1], nil
		}
		fmt.Fprintln(p.out, "Please enter a valid number from the list.")
	}
}

// SearchText asks for a search phrase when none was given on the command line.
func (p *Prompter) SearchText() (string, error) {
	fmt.Fprint(p.out, "Search text: ")
	line, err := p.readLine()
	if err != nil {
		return "", err
	}
	if line == "" {
		return "", fmt.Errorf("search text cannot be empty")
	}
	return line, nil
}

func (p *Prompter) readLine() (string, error) {
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}
