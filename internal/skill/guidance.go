package skill

import (
	"strings"

	"github.com/cjbdev/iss-sightings/internal/domain"
	"github.com/cjbdev/iss-sightings/internal/refdata"
)

// Guidance responses list valid options instead of fulfilling the request.
// They are non-terminal so the user can answer with a corrected choice.

func kindNoun(kind refdata.RegionKind) string {
	if kind == refdata.KindCountry {
		return "country"
	}
	return "state"
}

func kindPlural(kind refdata.RegionKind) string {
	if kind == refdata.KindCountry {
		return "Countries"
	}
	return "States"
}

// regionNames lists the display names of a region table.
func (r *Router) regionNames(kind refdata.RegionKind) []string {
	regions := r.store.Regions(kind)
	names := make([]string, len(regions))
	for i, region := range regions {
		names[i] = region.Name
	}
	return names
}

// regionRequiredGuidance answers a location request that named no region.
func (r *Router) regionRequiredGuidance(kind refdata.RegionKind) domain.Response {
	intro := "I need a " + kindNoun(kind) + " to list locations for. " +
		kindPlural(kind) + " that have sighting location information are:"
	speech, body := listSpeech(intro, r.regionNames(kind))
	reprompt := domain.Speech{Plain: "Which " + kindNoun(kind) + " would you like visibility information for?"}
	return domain.NewAskResponse(speech, reprompt, &domain.Card{Title: "ISS - " + kindPlural(kind) + " List", Body: body})
}

// unknownRegionGuidance answers a request naming a region outside the tables.
func (r *Router) unknownRegionGuidance(kind refdata.RegionKind, name string) domain.Response {
	intro := "I don't have visibility information for " + name + ". " +
		kindPlural(kind) + " that have sighting location information are:"
	speech, body := listSpeech(intro, r.regionNames(kind))
	reprompt := domain.Speech{Plain: "Which " + kindNoun(kind) + " would you like visibility information for?"}
	return domain.NewAskResponse(speech, reprompt, &domain.Card{Title: "ISS - " + kindPlural(kind) + " List", Body: body})
}

// unknownCityGuidance answers a request naming a city outside the region's
// location table.
func (r *Router) unknownCityGuidance(region refdata.Region, locations []refdata.Location, city string) domain.Response {
	var intro string
	if city == "" {
		intro = "I need a location in " + region.Name + ". "
	} else {
		intro = "I don't have visibility information for " + city + ". "
	}
	intro += "Locations in " + region.Name + " I can give visibility information for are:"

	names := make([]string, len(locations))
	for i, loc := range locations {
		names[i] = loc.Name
	}
	speech, body := listSpeech(intro, names)
	reprompt := domain.Speech{Plain: "Which location in " + region.Name + " would you like visibility information for?"}
	return domain.NewAskResponse(speech, reprompt, &domain.Card{Title: "ISS - " + region.Name + " Location List", Body: body})
}

// noRegionMatchesGuidance answers a first-letter filter that matched nothing.
func (r *Router) noRegionMatchesGuidance(kind refdata.RegionKind, letter string) domain.Response {
	var text string
	if letter == "" {
		text = "I don't have any " + strings.ToLower(kindPlural(kind)) + " with sighting information right now."
	} else {
		text = "No " + strings.ToLower(kindPlural(kind)) + " with sighting information start with the letter " + letter + "."
	}
	reprompt := domain.Speech{Plain: "You can ask for the full " + kindNoun(kind) + " list, or try another letter."}
	return domain.NewAskResponse(domain.Speech{Plain: text}, reprompt, nil)
}

func (r *Router) noLocationMatchesGuidance(region refdata.Region, letter string) domain.Response {
	text := "No locations in " + region.Name + " start with the letter " + letter + "."
	reprompt := domain.Speech{Plain: "You can ask for the full location list for " + region.Name + ", or try another letter."}
	return domain.NewAskResponse(domain.Speech{Plain: text}, reprompt, nil)
}

// listSpeech renders an enumeration as SSML (one sentence per item) and as
// the plain text used for both Speech.Plain and card bodies.
func listSpeech(intro string, items []string) (domain.Speech, string) {
	var ssml strings.Builder
	ssml.WriteString("<speak><p>")
	ssml.WriteString(intro)
	ssml.WriteString("</p>")
	for _, item := range items {
		ssml.WriteString("<s>")
		ssml.WriteString(item)
		ssml.WriteString("</s>")
	}
	ssml.WriteString("</speak>")

	plain := intro + "\n" + strings.Join(items, "\n")
	return domain.Speech{Plain: plain, SSML: ssml.String()}, plain
}
