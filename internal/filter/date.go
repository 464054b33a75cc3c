package filter

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	millisRegex  = regexp.MustCompile(`^\d{13}$`)
	secondsRegex = regexp.MustCompile(`^\d{10}$`)
)

// isoLayouts covers the ISO-8601 shapes the boards actually emit:
// with/without offset, with/without time, T or space separator.
// time.Parse tolerates fractional seconds even when the layout omits them.
var isoLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02Z07:00",
	"2006-01-02",
}

// rfc2822Layouts covers feed-style timestamps ("Thu, 19 Feb 2026 06:32:03 GMT").
var rfc2822Layouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	"2 Jan 2006 15:04:05 -0700",
}

// ParsePosted normalizes a board's raw posted value into a UTC instant.
// Formats are tried in a fixed order: epoch millis, epoch seconds, ISO-8601
// variants, RFC 2822. Returns ok=false when nothing matches; callers treat
// that as "unknown", never as an error.
func ParsePosted(raw string) (time.Time, bool) {
	posted := strings.TrimSpace(raw)
	if posted == "" || posted == "None" || posted == "0" {
		return time.Time{}, false
	}

	//Lever: Unix timestamp in milliseconds (13 digits)
	if millisRegex.MatchString(posted) {
		if n, err := strconv.ParseInt(posted, 10, 64); err == nil {
			if t := time.UnixMilli(n).UTC(); inRange(t) {
				return t, true
			}
		}
	}

	//Unix timestamp in seconds (10 digits)
	if secondsRegex.MatchString(posted) {
		if n, err := strconv.ParseInt(posted, 10, 64); err == nil {
			if t := time.Unix(n, 0).UTC(); inRange(t) {
				return t, true
			}
		}
	}

	//ISO 8601 variants; layouts without an offset parse as UTC
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, posted); err == nil {
			return t.UTC(), true
		}
	}

	//RFC 2822 (RSS/Atom feeds)
	for _, layout := range rfc2822Layouts {
		if t, err := time.Parse(layout, posted); err == nil {
			return t.UTC(), true
		}
	}

	return time.Time{}, false
}

// inRange rejects epoch values that decode to absurd instants so a
// numeric-looking string can still fall through to the other formats.
func inRange(t time.Time) bool {
	return t.Year() >= 1970 && t.Year() <= 3000
}
