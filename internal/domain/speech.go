package domain

import "strings"

// months maps feed month abbreviations to full names.
var months = map[string]string{
	"Jan": "January",
	"Feb": "February",
	"Mar": "March",
	"Apr": "April",
	"May": "May",
	"Jun": "June",
	"Jul": "July",
	"Aug": "August",
	"Sep": "September",
	"Oct": "October",
	"Nov": "November",
	"Dec": "December",
}

// compassPoints maps the 16-wind abbreviations used in Approach and Departure
// fields to spoken words.
var compassPoints = map[string]string{
	"N":   "North",
	"NNE": "North North East",
	"NE":  "North East",
	"ENE": "East North East",
	"E":   "East",
	"ESE": "East South East",
	"SE":  "South East",
	"SSE": "South South East",
	"S":   "South",
	"SSW": "South South West",
	"SW":  "South West",
	"WSW": "West South West",
	"W":   "West",
	"WNW": "West North West",
	"NW":  "North West",
	"NNW": "North North West",
}

// ExpandMonth returns the full name for a feed month abbreviation, or the
// input unchanged when it is not a known abbreviation.
func ExpandMonth(abbrev string) string {
	if full, ok := months[abbrev]; ok {
		return full
	}
	return abbrev
}

// ExpandCompassPoint returns the spoken form of a 16-wind compass
// abbreviation, or the input unchanged when it is not a known abbreviation.
func ExpandCompassPoint(abbrev string) string {
	if full, ok := compassPoints[abbrev]; ok {
		return full
	}
	return abbrev
}

// expandCompassIn expands a trailing compass abbreviation inside a field like
// "10° above NW". Only the final token is considered; anything else is left
// as-is.
func expandCompassIn(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return text
	}
	full, ok := compassPoints[fields[len(fields)-1]]
	if !ok {
		return text
	}
	fields[len(fields)-1] = full
	return strings.Join(fields, " ")
}

// Narrative renders a sighting as SSML paragraphs, one per field in feed
// order, with months and compass points expanded to full words. Fields whose
// sub-content did not parse fall back to their raw feed text.
func Narrative(ev SightingEvent) string {
	var b strings.Builder
	b.WriteString("<p>Date: " + narrativeDate(ev) + "</p>")
	b.WriteString("<p>Time: " + narrativeTime(ev) + "</p>")
	b.WriteString("<p>Duration: " + ev.Duration + "</p>")
	b.WriteString("<p>Maximum elevation: " + ev.MaxElevation + "</p>")
	b.WriteString("<p>Approach: " + expandCompassIn(ev.Approach) + "</p>")
	b.WriteString("<p>Departure: " + expandCompassIn(ev.Departure) + "</p>")
	return b.String()
}

// Summary renders a sighting as plain text for the visual card, same field
// order as Narrative.
func Summary(ev SightingEvent) string {
	lines := []string{
		"Date: " + narrativeDate(ev),
		"Time: " + narrativeTime(ev),
		"Duration: " + ev.Duration,
		"Maximum elevation: " + ev.MaxElevation,
		"Approach: " + expandCompassIn(ev.Approach),
		"Departure: " + expandCompassIn(ev.Departure),
	}
	return strings.Join(lines, "\n")
}

func narrativeDate(ev SightingEvent) string {
	if !ev.At.IsZero() {
		return ev.At.Format("Monday January 02, 2006")
	}
	fields := strings.Fields(ev.Date)
	for i, f := range fields {
		fields[i] = ExpandMonth(f)
	}
	return strings.Join(fields, " ")
}

func narrativeTime(ev SightingEvent) string {
	if !ev.At.IsZero() {
		return ev.At.Format("3:04 pm")
	}
	return ev.Time
}
