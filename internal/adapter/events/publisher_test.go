package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cjbdev/iss-sightings/internal/domain"
)

func TestSerializeToMessage(t *testing.T) {
	now := time.Date(2026, 1, 5, 18, 30, 0, 0, time.UTC)
	event := domain.IntentEvent{
		Intent:    domain.IntentCityState,
		Outcome:   "answered",
		Region:    "Maryland",
		City:      "Gaithersburg",
		Timestamp: now,
	}

	msg, err := serializeToMessage(event)
	require.NoError(t, err)

	assert.Equal(t, []byte(domain.IntentCityState), msg.Key)
	assert.Contains(t, string(msg.Value), `"intent":"CityStateIntent"`)
	assert.Contains(t, string(msg.Value), `"city":"Gaithersburg"`)
	assert.Len(t, msg.Headers, 2)
	assert.Equal(t, "outcome", msg.Headers[0].Key)
	assert.Equal(t, []byte("answered"), msg.Headers[0].Value)
	assert.Equal(t, "handled_at", msg.Headers[1].Key)
	assert.Equal(t, []byte(now.Format(time.RFC3339)), msg.Headers[1].Value)
}

func TestSerializeToMessage_EmptyOptionalFields(t *testing.T) {
	event := domain.IntentEvent{
		Intent:    domain.IntentCrew,
		Outcome:   "answered",
		Timestamp: time.Date(2026, 1, 5, 18, 30, 0, 0, time.UTC),
	}

	msg, err := serializeToMessage(event)
	require.NoError(t, err)

	assert.NotContains(t, string(msg.Value), `"region"`)
	assert.NotContains(t, string(msg.Value), `"city"`)
}
