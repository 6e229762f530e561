// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package targets loads and normalizes user-supplied download targets.
package targets

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Load reads newline-delimited targets from path, or from stdin when path
// is "-". Blank lines and lines starting with "#" are skipped.
func Load(path string, stdin io.Reader) ([]string, error) {
	if path == "-" {
		return Parse(stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening targets file: %w", err)
	}
	defer f.Close()

	list, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return list, nil
}

// Parse reads targets from r, one per line.
func Parse(r io.Reader) ([]string, error) {
	var list []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		list = append(list, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

// Dedupe removes duplicate targets, preserving first-seen order.
func Dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	var result []string
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		result = append(result, item)
	}
	return result
}
