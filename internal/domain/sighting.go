package domain

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// FeedEntry is one syndication-feed item, reduced to the fields the skill
// reads.
type FeedEntry struct {
	Title       string
	Link        string
	Description string
}

// FeedFetcher retrieves remote syndication feeds.
type FeedFetcher interface {
	// Sightings fetches the sighting feed for one location feed ID.
	Sightings(ctx context.Context, feedID string) ([]FeedEntry, error)

	// Crew fetches the current-crew feed.
	Crew(ctx context.Context) ([]FeedEntry, error)
}

// SightingEvent is one predicted visible pass, extracted from a feed entry
// description. The string fields keep the feed's raw text so values that fail
// deeper parsing can still be rendered verbatim.
type SightingEvent struct {
	Date         string
	Time         string
	Duration     string
	MaxElevation string
	Approach     string
	Departure    string
	At           time.Time // parsed Date + Time
}

// lineBreak is the literal marker between labeled fields in a description.
const lineBreak = "<br/>"

// sightingLayouts covers both meridiem spellings seen in the wild:
// "6:32 PM" in live feeds, "06:32 pm" in archived ones.
var sightingLayouts = []string{
	"Monday Jan 2, 2006 3:04 PM",
	"Monday Jan 2, 2006 3:04 pm",
}

// ParseSighting extracts the labeled fields from one sighting entry
// description. Fields arrive as "Label: value" segments separated by <br/>
// markers; "Maximum Elevation" is accepted for the "Maximum" label. An error
// is returned only when the date/time pair cannot be parsed — other missing
// fields simply stay empty.
func ParseSighting(description string) (SightingEvent, error) {
	var ev SightingEvent
	for _, seg := range strings.Split(description, lineBreak) {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		label, value, ok := strings.Cut(seg, ":")
		if !ok {
			continue
		}
		label = strings.TrimSpace(label)
		value = strings.TrimSpace(value)
		switch {
		case strings.EqualFold(label, "Date"):
			ev.Date = value
		case strings.EqualFold(label, "Time"):
			ev.Time = value
		case strings.EqualFold(label, "Duration"):
			ev.Duration = value
		case strings.HasPrefix(label, "Maximum"):
			ev.MaxElevation = value
		case strings.EqualFold(label, "Approach"):
			ev.Approach = value
		case strings.EqualFold(label, "Departure"):
			ev.Departure = value
		}
	}

	at, err := parseSightingTime(ev.Date + " " + ev.Time)
	if err != nil {
		return ev, err
	}
	ev.At = at
	return ev, nil
}

// parseSightingTime parses the joined date and time of a sighting. Times are
// kept in the process-local zone; the feed encodes the sighted location's
// local time and no conversion is applied.
func parseSightingTime(s string) (time.Time, error) {
	s = strings.Join(strings.Fields(s), " ")
	var firstErr error
	for _, layout := range sightingLayouts {
		t, err := time.ParseInLocation(layout, s, time.Local)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, fmt.Errorf("parse sighting time %q: %w", s, firstErr)
}

// NextSighting returns the earliest strictly-future sighting among the feed
// entries. Entries whose description fails to parse are skipped without
// aborting the scan. The feed is usually chronological but that is not relied
// upon: every entry is examined. ok is false when no entry qualifies.
func NextSighting(entries []FeedEntry) (SightingEvent, bool) {
	now := clock.Now()
	var best SightingEvent
	found := false
	for _, entry := range entries {
		ev, err := ParseSighting(entry.Description)
		if err != nil {
			continue
		}
		if !ev.At.After(now) {
			continue
		}
		if !found || ev.At.Before(best.At) {
			best = ev
			found = true
		}
	}
	return best, found
}
