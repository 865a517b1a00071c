// Package domain models NASA "Spot The Station" sighting data and the
// skill's intent/response vocabulary.
//
// # Data Source
//
// Sighting predictions come from the NASA Spot The Station RSS feeds at
// https://spotthestation.nasa.gov/sightings/xml_files/. Each location has its
// own feed, named by a feed ID such as "United_States_Maryland_Gaithersburg".
// One feed entry describes one predicted visible pass of the International
// Space Station.
//
// # Description Format
//
// An entry's description carries labeled fields separated by literal "<br/>"
// markers, in a fixed order:
//
//	Date: Monday Jan 5, 2015 <br/>
//	Time: 6:32 PM <br/>
//	Duration: less than 1 minute <br/>
//	Maximum Elevation: 10° <br/>
//	Approach: 10° above NNW <br/>
//	Departure: 13° above N <br/>
//
// Date and time are joined and parsed with the pattern
// "<full weekday> <abbreviated month> <day>, <year> <hour>:<minute> <AM/PM>".
// Times are in the sighted location's local zone; no conversion is applied.
// The meridiem appears uppercase in live feeds and lowercase in archived
// ones, so both spellings are accepted. The label "Maximum Elevation:" is
// also accepted as plain "Maximum:".
//
// Approach and Departure end in a 16-wind compass abbreviation
// (N, NNE, NE, ENE, E, ESE, SE, SSE, S, SSW, SW, WSW, W, WNW, NW, NNW),
// expanded to full words for spoken output. Month abbreviations are expanded
// the same way. Unrecognized abbreviations pass through unchanged.
//
// # Sighting Selection
//
// The answer to "when is the station next visible" is the earliest entry
// whose parsed date/time is strictly after the current time. Feeds are
// usually chronological, but that is not relied upon: every entry is
// examined, and entries with unparseable dates are skipped rather than
// aborting the scan. When no entry qualifies the result is an explicit
// not-found, never a stale pass.
//
// # Crew Feed
//
// The current-crew feed is a separate RSS source whose first entry's
// description is spoken verbatim; its link is surfaced on the visual card.
package domain
