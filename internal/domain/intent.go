package domain

import (
	"strings"
	"time"
)

// Intent names in the skill's interaction model. AMAZON.* names are reserved
// built-ins of the voice platform.
const (
	IntentCrew                = "CrewIntent"
	IntentVisibility          = "VisibilityIntent"
	IntentOneshotCity         = "OneshotCityIntent"
	IntentCityState           = "CityStateIntent"
	IntentCityList            = "CityListIntent"
	IntentStateList           = "StateListIntent"
	IntentCountryList         = "CountryListIntent"
	IntentCountryLocationList = "CountryLocationListIntent"
	IntentHelp                = "AMAZON.HelpIntent"
	IntentStop                = "AMAZON.StopIntent"
	IntentCancel              = "AMAZON.CancelIntent"
)

// Slot names attached to intents.
const (
	SlotCity        = "City"
	SlotState       = "State"
	SlotCountry     = "Country"
	SlotFirstLetter = "FirstLetter"
)

// IntentRequest is one inbound intent with its slot values, as delivered by
// the voice-platform adapter.
type IntentRequest struct {
	Name  string
	Slots map[string]string
}

// Slot returns the trimmed value of a named slot, or "" when the slot is
// absent. Slots can be missing entirely or present with a blank value;
// callers treat both the same.
func (r IntentRequest) Slot(name string) string {
	return strings.TrimSpace(r.Slots[name])
}

// IntentEvent is the analytics record emitted after a request is handled.
type IntentEvent struct {
	Intent    string    `json:"intent"`
	Outcome   string    `json:"outcome"` // answered, guidance, or error
	Region    string    `json:"region,omitempty"`
	City      string    `json:"city,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
