package domain

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDescription = "Date: Monday Jan 5, 2026 <br/> Time: 6:32 PM <br/> " +
	"Duration: less than 1 minute <br/> Maximum Elevation: 10° <br/> " +
	"Approach: 10° above NNW <br/> Departure: 13° above N <br/>"

// description builds a minimal parseable entry for a given local timestamp.
func description(at time.Time) string {
	return "Date: " + at.Format("Monday Jan 2, 2006") + " <br/> " +
		"Time: " + at.Format("3:04 PM") + " <br/> " +
		"Duration: 4 minutes <br/> Maximum Elevation: 25° <br/> " +
		"Approach: 10° above SW <br/> Departure: 11° above ESE <br/>"
}

func freezeAt(t *testing.T, at time.Time) {
	t.Helper()
	SetClock(clockwork.NewFakeClockAt(at))
	t.Cleanup(func() { SetClock(nil) })
}

func TestParseSighting_AllFields(t *testing.T) {
	ev, err := ParseSighting(sampleDescription)
	require.NoError(t, err)

	assert.Equal(t, "Monday Jan 5, 2026", ev.Date)
	assert.Equal(t, "6:32 PM", ev.Time)
	assert.Equal(t, "less than 1 minute", ev.Duration)
	assert.Equal(t, "10°", ev.MaxElevation)
	assert.Equal(t, "10° above NNW", ev.Approach)
	assert.Equal(t, "13° above N", ev.Departure)
	assert.Equal(t, time.Date(2026, time.January, 5, 18, 32, 0, 0, time.Local), ev.At)
}

func TestParseSighting_LowercaseMeridiem(t *testing.T) {
	ev, err := ParseSighting("Date: Monday Jan 05, 2026 <br/> Time: 06:32 pm <br/> Duration: 2 minutes <br/>")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.January, 5, 18, 32, 0, 0, time.Local), ev.At)
}

func TestParseSighting_PlainMaximumLabel(t *testing.T) {
	ev, err := ParseSighting("Date: Friday Feb 6, 2026 <br/> Time: 5:45 AM <br/> Maximum: 30° <br/>")
	require.NoError(t, err)
	assert.Equal(t, "30°", ev.MaxElevation)
}

func TestParseSighting_MalformedDate(t *testing.T) {
	ev, err := ParseSighting("Date: sometime soon <br/> Time: 6:32 PM <br/> Duration: 1 minute <br/>")
	require.Error(t, err)

	// Raw fields survive even when the date is unparseable.
	assert.Equal(t, "sometime soon", ev.Date)
	assert.Equal(t, "1 minute", ev.Duration)
	assert.True(t, ev.At.IsZero())
}

func TestParseSighting_EmptyDescription(t *testing.T) {
	_, err := ParseSighting("")
	require.Error(t, err)
}

func TestNextSighting_PastEntryNeverSelected(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.Local)
	freezeAt(t, now)

	entries := []FeedEntry{
		{Description: description(now.Add(-24 * time.Hour))}, // yesterday
		{Description: description(now.Add(24 * time.Hour))},  // tomorrow
	}

	ev, ok := NextSighting(entries)
	require.True(t, ok)
	assert.Equal(t, now.Add(24*time.Hour), ev.At)
}

func TestNextSighting_EarliestFutureWinsRegardlessOfOrder(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.Local)
	freezeAt(t, now)

	// Deliberately out of chronological order.
	entries := []FeedEntry{
		{Description: description(now.Add(72 * time.Hour))},
		{Description: description(now.Add(24 * time.Hour))},
		{Description: description(now.Add(48 * time.Hour))},
	}

	ev, ok := NextSighting(entries)
	require.True(t, ok)
	assert.Equal(t, now.Add(24*time.Hour), ev.At)
}

func TestNextSighting_SkipsMalformedEntries(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.Local)
	freezeAt(t, now)

	entries := []FeedEntry{
		{Description: "not a sighting at all"},
		{Description: description(now.Add(6 * time.Hour))},
	}

	ev, ok := NextSighting(entries)
	require.True(t, ok)
	assert.Equal(t, now.Add(6*time.Hour), ev.At)
}

func TestNextSighting_NoFutureEntries(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.Local)
	freezeAt(t, now)

	entries := []FeedEntry{
		{Description: description(now.Add(-48 * time.Hour))},
		{Description: description(now.Add(-24 * time.Hour))},
	}

	_, ok := NextSighting(entries)
	assert.False(t, ok)
}

func TestNextSighting_ExactlyNowIsNotFuture(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.Local)
	freezeAt(t, now)

	_, ok := NextSighting([]FeedEntry{{Description: description(now)}})
	assert.False(t, ok)
}

func TestNextSighting_EmptyFeed(t *testing.T) {
	_, ok := NextSighting(nil)
	assert.False(t, ok)
}
