package skill

import (
	"context"
	"strings"

	"github.com/cjbdev/iss-sightings/internal/domain"
	"github.com/cjbdev/iss-sightings/internal/refdata"
)

// Fallback location for the single-shot visibility intents.
const (
	defaultCity  = "Gaithersburg"
	defaultState = "Maryland"
)

// The parks pseudo-region groups national parks; its name is not spoken
// alongside a location ("visible from Yosemite on" rather than "visible from
// Yosemite, National Parks on").
const parksRegion = "National Parks"

const crewLeadIn = "The current crew of the International Space Station is:\n"

const helpText = "Welcome to the Space Station.\n" +
	"I can provide visibility information for the International Space Station from locations in supported states and countries.\n" +
	"I can also provide a list of current crew members aboard the International Space Station.\n" +
	"For a list of states ask to list states.\n" +
	"For a list of visibility locations in a state ask to list its cities.\n" +
	"For visibility information for a location ask when it is next visible from the location.\n" +
	"For a list of crew members ask who is the current crew.\n"

// Welcome builds the launch-turn response. It mirrors the help response with
// its own card title.
func (r *Router) Welcome() domain.Response {
	speech := domain.Speech{Plain: helpText}
	return domain.NewAskResponse(speech, speech, &domain.Card{Title: "ISS - Welcome", Body: helpText})
}

func (r *Router) handleHelp(_ context.Context, _ domain.IntentRequest) handled {
	speech := domain.Speech{Plain: helpText}
	return handled{
		resp:    domain.NewAskResponse(speech, speech, &domain.Card{Title: "ISS - Help", Body: helpText}),
		outcome: outcomeAnswered,
	}
}

func (r *Router) handleGoodbye(_ context.Context, _ domain.IntentRequest) handled {
	return handled{
		resp:    domain.NewTellResponse(domain.Speech{Plain: "Goodbye"}, nil),
		outcome: outcomeAnswered,
	}
}

// handleCrew speaks the first crew-feed entry. A fetch failure degrades to
// the lead-in alone so the caller still gets a well-formed response.
func (r *Router) handleCrew(ctx context.Context, _ domain.IntentRequest) handled {
	entries, err := r.feeds.Crew(ctx)
	if err != nil || len(entries) == 0 {
		if err != nil {
			r.logger.Warn("crew feed fetch failed", "error", err)
		}
		return handled{
			resp:    domain.NewTellResponse(domain.Speech{Plain: crewLeadIn}, &domain.Card{Title: "ISS - Current Crew", Body: crewLeadIn}),
			outcome: outcomeError,
		}
	}

	speechText := crewLeadIn + entries[0].Description
	cardBody := speechText + "\n\nFor more information:\n" + entries[0].Link
	return handled{
		resp:    domain.NewTellResponse(domain.Speech{Plain: speechText}, &domain.Card{Title: "ISS - Current Crew", Body: cardBody}),
		outcome: outcomeAnswered,
	}
}

func (r *Router) handleStateList(_ context.Context, req domain.IntentRequest) handled {
	return r.regionList(refdata.KindState, req)
}

func (r *Router) handleCountryList(_ context.Context, req domain.IntentRequest) handled {
	return r.regionList(refdata.KindCountry, req)
}

// regionList enumerates a region table, optionally filtered by first letter.
func (r *Router) regionList(kind refdata.RegionKind, req domain.IntentRequest) handled {
	letter := req.Slot(domain.SlotFirstLetter)
	filtered := refdata.FilterRegionsByFirstLetter(r.store.Regions(kind), letter)
	if len(filtered) == 0 {
		return handled{resp: r.noRegionMatchesGuidance(kind, letter), outcome: outcomeGuidance}
	}

	names := make([]string, len(filtered))
	for i, region := range filtered {
		names[i] = region.Name
	}

	var intro, title string
	if kind == refdata.KindCountry {
		intro = "Countries that have sighting location information are:"
		title = "ISS - Country List"
	} else {
		intro = "States that have sighting location information are:"
		title = "ISS - State List"
	}
	speech, body := listSpeech(intro, names)
	return handled{
		resp:    domain.NewTellResponse(speech, &domain.Card{Title: title, Body: body}),
		outcome: outcomeAnswered,
	}
}

func (r *Router) handleCityList(ctx context.Context, req domain.IntentRequest) handled {
	return r.locationList(ctx, refdata.KindState, domain.SlotState, req)
}

func (r *Router) handleCountryLocationList(ctx context.Context, req domain.IntentRequest) handled {
	return r.locationList(ctx, refdata.KindCountry, domain.SlotCountry, req)
}

// locationList enumerates one region's locations. A City slot short-circuits
// into the sighting lookup for that city.
func (r *Router) locationList(ctx context.Context, kind refdata.RegionKind, regionSlot string, req domain.IntentRequest) handled {
	name := req.Slot(regionSlot)
	if name == "" {
		return handled{resp: r.regionRequiredGuidance(kind), outcome: outcomeGuidance}
	}

	region, ok := refdata.FindRegion(r.store.Regions(kind), name)
	if !ok {
		return handled{resp: r.unknownRegionGuidance(kind, name), outcome: outcomeGuidance, region: name}
	}

	if city := req.Slot(domain.SlotCity); city != "" {
		return r.citySighting(ctx, kind, region, city)
	}

	locations := r.store.Locations(region)
	if len(locations) == 0 {
		// Unresolvable location table; the region degrades to not-found.
		return handled{resp: r.unknownRegionGuidance(kind, name), outcome: outcomeGuidance, region: name}
	}

	letter := req.Slot(domain.SlotFirstLetter)
	filtered := refdata.FilterLocationsByFirstLetter(locations, letter)
	if len(filtered) == 0 {
		return handled{resp: r.noLocationMatchesGuidance(region, letter), outcome: outcomeGuidance, region: region.Name}
	}

	names := make([]string, len(filtered))
	for i, loc := range filtered {
		names[i] = loc.Name
	}
	speech, body := listSpeech("Locations in "+region.Name+" I can give visibility information for are:", names)
	return handled{
		resp:    domain.NewTellResponse(speech, &domain.Card{Title: "ISS - " + region.Name + " Location List", Body: body}),
		outcome: outcomeAnswered,
		region:  region.Name,
	}
}

// handleCityState resolves a city within a state or country and reports its
// next sighting. Missing or unresolved input escalates to the next coarser
// guidance response, region before city.
func (r *Router) handleCityState(ctx context.Context, req domain.IntentRequest) handled {
	kind := refdata.KindState
	regionSlot := domain.SlotState
	if req.Slot(domain.SlotState) == "" && req.Slot(domain.SlotCountry) != "" {
		kind = refdata.KindCountry
		regionSlot = domain.SlotCountry
	}

	name := req.Slot(regionSlot)
	if name == "" {
		return handled{resp: r.regionRequiredGuidance(kind), outcome: outcomeGuidance}
	}

	region, ok := refdata.FindRegion(r.store.Regions(kind), name)
	if !ok {
		return handled{resp: r.unknownRegionGuidance(kind, name), outcome: outcomeGuidance, region: name}
	}

	return r.citySighting(ctx, kind, region, req.Slot(domain.SlotCity))
}

func (r *Router) handleVisibility(ctx context.Context, _ domain.IntentRequest) handled {
	return r.defaultRegionSighting(ctx, defaultCity)
}

func (r *Router) handleOneshotCity(ctx context.Context, req domain.IntentRequest) handled {
	city := req.Slot(domain.SlotCity)
	if city == "" {
		city = defaultCity
	}
	return r.defaultRegionSighting(ctx, city)
}

// defaultRegionSighting looks a city up in the default state.
func (r *Router) defaultRegionSighting(ctx context.Context, city string) handled {
	region, ok := refdata.FindRegion(r.store.Regions(refdata.KindState), defaultState)
	if !ok {
		return handled{resp: r.unknownRegionGuidance(refdata.KindState, defaultState), outcome: outcomeGuidance, region: defaultState}
	}
	return r.citySighting(ctx, refdata.KindState, region, city)
}

// citySighting fetches a resolved city's feed and renders its next sighting.
// An empty or unresolved city escalates to location-list guidance; a fetch
// failure degrades to the spoken lead-in alone.
func (r *Router) citySighting(ctx context.Context, kind refdata.RegionKind, region refdata.Region, city string) handled {
	locations := r.store.Locations(region)
	if len(locations) == 0 {
		return handled{resp: r.unknownRegionGuidance(kind, region.Name), outcome: outcomeGuidance, region: region.Name}
	}

	loc, ok := refdata.FindLocation(locations, city)
	if !ok {
		return handled{resp: r.unknownCityGuidance(region, locations, city), outcome: outcomeGuidance, region: region.Name, city: city}
	}

	parks := strings.EqualFold(region.Name, parksRegion)
	spokenPlace := loc.Name
	if !parks {
		spokenPlace += ", " + region.Name
	}
	leadIn := "The International Space Station will next be visible from " + spokenPlace + " on: "
	title := "ISS - Visibility from " + spokenPlace

	entries, err := r.feeds.Sightings(ctx, loc.FeedID)
	if err != nil {
		r.logger.Warn("sighting feed fetch failed", "feed", loc.FeedID, "error", err)
		return handled{
			resp:    domain.NewTellResponse(domain.Speech{Plain: leadIn}, &domain.Card{Title: title, Body: leadIn}),
			outcome: outcomeError,
			region:  region.Name,
			city:    loc.Name,
		}
	}

	ev, ok := domain.NextSighting(entries)
	if !ok {
		text := "I don't have an upcoming sighting for " + loc.Name + "."
		return handled{
			resp:    domain.NewTellResponse(domain.Speech{Plain: text}, &domain.Card{Title: title, Body: text}),
			outcome: outcomeAnswered,
			region:  region.Name,
			city:    loc.Name,
		}
	}

	speech := domain.Speech{
		Plain: leadIn + "\n" + domain.Summary(ev),
		SSML:  "<speak><p>" + leadIn + "</p>" + domain.Narrative(ev) + "</speak>",
	}
	return handled{
		resp:    domain.NewTellResponse(speech, &domain.Card{Title: title, Body: leadIn + "\n" + domain.Summary(ev)}),
		outcome: outcomeAnswered,
		region:  region.Name,
		city:    loc.Name,
	}
}
