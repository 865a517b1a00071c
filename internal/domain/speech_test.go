package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandMonth(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Jan", "January"},
		{"Feb", "February"},
		{"Jun", "June"},
		{"Sep", "September"},
		{"Dec", "December"},
		{"xyz", "xyz"}, // unknown input passes through
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExpandMonth(tt.in), "ExpandMonth(%q)", tt.in)
	}
}

func TestExpandCompassPoint(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"N", "North"},
		{"NE", "North East"},
		{"ENE", "East North East"},
		{"SSW", "South South West"},
		{"WNW", "West North West"},
		{"NNW", "North North West"},
		{"Q", "Q"}, // unknown input passes through
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExpandCompassPoint(tt.in), "ExpandCompassPoint(%q)", tt.in)
	}
}

func TestNarrative_ExpandsFields(t *testing.T) {
	ev, err := ParseSighting("Date: Monday Jan 05, 2026 <br/> Time: 06:32 pm <br/> " +
		"Duration: 4 minutes <br/> Maximum Elevation: 66° <br/> " +
		"Approach: 10° above NW <br/> Departure: 12° above ESE <br/>")
	require.NoError(t, err)

	got := Narrative(ev)

	assert.Contains(t, got, "January 05, 2026")
	assert.Contains(t, got, "6:32 pm")
	assert.Contains(t, got, "4 minutes")
	assert.Contains(t, got, "66°")
	assert.Contains(t, got, "10° above North West")
	assert.Contains(t, got, "12° above East South East")
	// One paragraph per field, in feed order.
	assert.Regexp(t, `(?s)<p>Date:.*<p>Time:.*<p>Duration:.*<p>Maximum elevation:.*<p>Approach:.*<p>Departure:`, got)
}

func TestNarrative_RawFallbackForUnparsedDate(t *testing.T) {
	// An event that never made it through date parsing keeps raw field text.
	ev := SightingEvent{
		Date:      "Someday Jan 1",
		Time:      "around dusk",
		Approach:  "low in the sky",
		Departure: "13° above XQ",
	}

	got := Narrative(ev)

	assert.Contains(t, got, "Someday January 1") // month still expanded
	assert.Contains(t, got, "around dusk")
	assert.Contains(t, got, "low in the sky")
	assert.Contains(t, got, "13° above XQ") // unknown compass passes through
}

func TestSummary_PlainTextLines(t *testing.T) {
	ev := SightingEvent{
		At:           time.Date(2026, time.January, 5, 18, 32, 0, 0, time.Local),
		Duration:     "less than 1 minute",
		MaxElevation: "10°",
		Approach:     "10° above NNW",
		Departure:    "13° above N",
	}

	got := Summary(ev)

	assert.Contains(t, got, "Date: Monday January 05, 2026")
	assert.Contains(t, got, "Time: 6:32 pm")
	assert.Contains(t, got, "Approach: 10° above North North West")
	assert.Contains(t, got, "Departure: 13° above North")
	assert.NotContains(t, got, "<p>")
}
