// Package httpadapter exposes the skill over HTTP: the intent endpoint the
// voice platform posts to, plus health, readiness, and metrics routes.
package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cjbdev/iss-sightings/internal/domain"
	"github.com/cjbdev/iss-sightings/internal/skill"
)

// SkillHandler routes inbound requests to intent handlers.
type SkillHandler interface {
	Handle(ctx context.Context, req domain.IntentRequest) (domain.Response, error)
	Welcome() domain.Response
}

// ReadinessChecker reports whether the service is ready to serve traffic.
type ReadinessChecker interface {
	CheckReadiness(ctx context.Context) error
}

// Server exposes the skill endpoint plus health, readiness, and metrics routes.
type Server struct {
	httpServer *http.Server
	handler    SkillHandler
	logger     *slog.Logger
}

// NewServer creates an HTTP server with /skill, /healthz, /readyz, and
// /metrics routes.
func NewServer(addr string, handler SkillHandler, ready ReadinessChecker, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		handler: handler,
		logger:  logger,
	}

	mux.HandleFunc("POST /skill", s.handleSkill)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", handleReady(ready))
	mux.Handle("GET /metrics", promhttp.Handler())

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

// requestEnvelope is the wire shape posted by the voice platform.
type requestEnvelope struct {
	Type   string          `json:"type"` // LaunchRequest or IntentRequest
	Intent *intentEnvelope `json:"intent,omitempty"`
}

type intentEnvelope struct {
	Name  string            `json:"name"`
	Slots map[string]string `json:"slots,omitempty"`
}

type responseEnvelope struct {
	Speech     speechEnvelope  `json:"speech"`
	Reprompt   *speechEnvelope `json:"reprompt,omitempty"`
	Card       *cardEnvelope   `json:"card,omitempty"`
	EndSession bool            `json:"endSession"`
}

type speechEnvelope struct {
	Plain string `json:"plain"`
	SSML  string `json:"ssml,omitempty"`
}

type cardEnvelope struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

func (s *Server) handleSkill(w http.ResponseWriter, r *http.Request) {
	var env requestEnvelope
	if err := json.NewDecoder(r.Body).Decode(&env); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "malformed request body"})
		return
	}

	if env.Type == "LaunchRequest" {
		writeJSON(w, http.StatusOK, mapResponse(s.handler.Welcome()))
		return
	}

	if env.Intent == nil || env.Intent.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing intent"})
		return
	}

	resp, err := s.handler.Handle(r.Context(), domain.IntentRequest{
		Name:  env.Intent.Name,
		Slots: env.Intent.Slots,
	})
	if err != nil {
		if errors.Is(err, skill.ErrUnknownIntent) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown intent " + env.Intent.Name})
			return
		}
		s.logger.Error("intent handling failed", "intent", env.Intent.Name, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}

	writeJSON(w, http.StatusOK, mapResponse(resp))
}

// mapResponse converts a domain response to its wire shape.
func mapResponse(resp domain.Response) responseEnvelope {
	env := responseEnvelope{
		Speech:     speechEnvelope{Plain: resp.Speech.Plain, SSML: resp.Speech.SSML},
		EndSession: resp.Terminal,
	}
	if resp.Reprompt != nil {
		env.Reprompt = &speechEnvelope{Plain: resp.Reprompt.Speech.Plain, SSML: resp.Reprompt.Speech.SSML}
	}
	if resp.Card != nil {
		env.Card = &cardEnvelope{Title: resp.Card.Title, Body: resp.Card.Body}
	}
	return env
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func handleReady(checker ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := checker.CheckReadiness(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "not ready",
				"error":  err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}
