// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package songsterr

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/pdiddy/tabfetch/internal/errdefs"
)

// TargetKind classifies a user-supplied target.
type TargetKind int

const (
	TargetUnknown TargetKind = iota
	TargetURL
	TargetSearch
)

func (k TargetKind) String() string {
	switch k {
	case TargetURL:
		return "url"
	case TargetSearch:
		return "search"
	default:
		return "unknown"
	}
}

// songIDPattern matches the numeric song ID suffix in tab URLs,
// e.g. ".../pissgrave-rusted-wind-tab-s505453".
var songIDPattern = regexp.MustCompile(`-s(\d+)`)

// ClassifyTarget determines whether a target is a direct tab URL or a
// free-text search phrase.
func ClassifyTarget(target string) TargetKind {
	target = strings.TrimSpace(target)
	if target == "" {
		return TargetUnknown
	}
	if u, err := url.Parse(target); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		return TargetURL
	}
	return TargetSearch
}

// ExtractSongID pulls the numeric song ID out of a tab URL. URLs on the
// wrong host or without the "-s<digits>" path suffix fail with a
// *errdefs.ResolutionError.
func ExtractSongID(tabURL string) (int, error) {
	u, err := url.Parse(tabURL)
	if err != nil {
		return 0, &errdefs.ResolutionError{Target: tabURL, Reason: "unparseable URL"}
	}
	if host := strings.ToLower(u.Hostname()); host != "songsterr.com" && !strings.HasSuffix(host, ".songsterr.com") {
		return 0, &errdefs.ResolutionError{Target: tabURL, Reason: "not a songsterr.com URL"}
	}

	m := songIDPattern.FindStringSubmatch(u.Path)
	if m == nil {
		return 0, &errdefs.ResolutionError{Target: tabURL, Reason: "no song ID in URL path"}
	}
	id, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, &errdefs.ResolutionError{Target: tabURL, Reason: "song ID is not a number"}
	}
	return id, nil
}
