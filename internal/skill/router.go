// Package skill routes inbound intents to handlers and assembles the spoken,
// card, and reprompt content of each response.
package skill

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cjbdev/iss-sightings/internal/domain"
	"github.com/cjbdev/iss-sightings/internal/observability"
	"github.com/cjbdev/iss-sightings/internal/refdata"
)

// ErrUnknownIntent reports an intent name outside the interaction model. This
// is the only fatal condition in the router: every data problem degrades to a
// guidance response instead.
var ErrUnknownIntent = errors.New("unknown intent")

// Request outcomes as recorded in metrics and analytics events.
const (
	outcomeAnswered = "answered"
	outcomeGuidance = "guidance"
	outcomeError    = "error"
)

// EventPublisher emits one analytics record per handled request.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.IntentEvent) error
}

// handled is one handler's result: the response plus the outcome and the
// resolved region/city for analytics.
type handled struct {
	resp    domain.Response
	outcome string
	region  string
	city    string
}

type handlerFunc func(ctx context.Context, req domain.IntentRequest) handled

// Router dispatches intents by name. It is stateless per request and safe for
// concurrent use.
type Router struct {
	store    *refdata.Store
	feeds    domain.FeedFetcher
	events   EventPublisher // nil when analytics publishing is disabled
	metrics  *observability.Metrics
	logger   *slog.Logger
	handlers map[string]handlerFunc
}

// New creates a router over the given reference data and feed fetcher. events
// may be nil to disable analytics publishing.
func New(store *refdata.Store, feeds domain.FeedFetcher, events EventPublisher, metrics *observability.Metrics, logger *slog.Logger) *Router {
	r := &Router{
		store:   store,
		feeds:   feeds,
		events:  events,
		metrics: metrics,
		logger:  logger,
	}
	r.handlers = map[string]handlerFunc{
		domain.IntentCrew:                r.handleCrew,
		domain.IntentVisibility:          r.handleVisibility,
		domain.IntentOneshotCity:         r.handleOneshotCity,
		domain.IntentCityState:           r.handleCityState,
		domain.IntentCityList:            r.handleCityList,
		domain.IntentStateList:           r.handleStateList,
		domain.IntentCountryList:         r.handleCountryList,
		domain.IntentCountryLocationList: r.handleCountryLocationList,
		domain.IntentHelp:                r.handleHelp,
		domain.IntentStop:                r.handleGoodbye,
		domain.IntentCancel:              r.handleGoodbye,
	}
	return r
}

// Handle dispatches one intent request. It returns an error only for intent
// names outside the interaction model; every other condition produces a
// well-formed response.
func (r *Router) Handle(ctx context.Context, req domain.IntentRequest) (domain.Response, error) {
	h, ok := r.handlers[req.Name]
	if !ok {
		r.metrics.IntentRequests.WithLabelValues(req.Name, outcomeError).Inc()
		return domain.Response{}, fmt.Errorf("%w: %s", ErrUnknownIntent, req.Name)
	}

	res := h(ctx, req)
	r.metrics.IntentRequests.WithLabelValues(req.Name, res.outcome).Inc()
	r.logger.Info("intent handled", "intent", req.Name, "outcome", res.outcome)
	r.publish(ctx, domain.IntentEvent{
		Intent:    req.Name,
		Outcome:   res.outcome,
		Region:    res.region,
		City:      res.city,
		Timestamp: domain.Now(),
	})
	return res.resp, nil
}

// publish emits an analytics event, fire-and-forget. Publish failures are
// logged and counted but never affect the response.
func (r *Router) publish(ctx context.Context, event domain.IntentEvent) {
	if r.events == nil {
		return
	}
	if err := r.events.Publish(ctx, event); err != nil {
		r.metrics.EventPublishErrors.Inc()
		r.logger.Warn("intent event publish failed", "intent", event.Intent, "error", err)
		return
	}
	r.metrics.EventsPublished.Inc()
}

// CheckReadiness reports whether the skill can serve requests. It requires at
// least one region table to have loaded.
func (r *Router) CheckReadiness(_ context.Context) error {
	if len(r.store.Regions(refdata.KindState)) == 0 && len(r.store.Regions(refdata.KindCountry)) == 0 {
		return errors.New("no region tables loaded")
	}
	return nil
}
