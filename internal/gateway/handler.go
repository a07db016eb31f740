// Package gateway exposes the display engine over HTTP: a small JSON API for
// search and actions, and a websocket stream of frame updates per session.
package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/coder/websocket"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/linernotes/liner/internal/domain"
	"github.com/linernotes/liner/internal/engine"
	"github.com/linernotes/liner/internal/session"
)

// Handler routes API traffic to the engine and the session registry.
type Handler struct {
	logger   *zap.Logger
	engine   *engine.Engine
	registry *session.Registry
	sink     *MemorySink
}

// NewHandler creates the API handler.
func NewHandler(logger *zap.Logger, eng *engine.Engine, registry *session.Registry, sink *MemorySink) *Handler {
	return &Handler{
		logger:   logger,
		engine:   eng,
		registry: registry,
		sink:     sink,
	}
}

// Router builds the chi router with the identity middleware applied.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(Identity)

	r.Post("/api/lyrics/search", h.handleSearch)
	r.Get("/api/sessions/{id}", h.handleGetSession)
	r.Post("/api/sessions/{id}/actions", h.handleAction)
	r.Get("/api/sessions/{id}/stream", h.handleStream)
	return r
}

type searchRequest struct {
	Query string `json:"query"`
}

type sessionResponse struct {
	SessionID string       `json:"session_id"`
	Frame     domain.Frame `json:"frame"`
}

type actionRequest struct {
	Action      string `json:"action"`
	CandidateID string `json:"candidate_id,omitempty"`
}

type actionResponse struct {
	Frame     *domain.Frame `json:"frame,omitempty"`
	SpawnedID string        `json:"spawned_id,omitempty"`
	Closed    bool          `json:"closed,omitempty"`
}

func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Query == "" {
		h.writeError(w, http.StatusBadRequest, "a non-empty query is required")
		return
	}

	actor := ActorFromContext(r.Context())
	view, err := h.engine.SearchLyrics(r.Context(), actor, req.Query)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, sessionResponse{SessionID: view.ID(), Frame: view.Frame()})
}

func (h *Handler) handleGetSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	frame, ok := h.sink.Latest(id)
	if !ok {
		h.writeError(w, http.StatusNotFound, "this surface is no longer displayed")
		return
	}
	h.writeJSON(w, http.StatusOK, sessionResponse{SessionID: id, Frame: frame})
}

func (h *Handler) handleAction(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	view, ok := h.registry.Get(id)
	if !ok {
		h.writeError(w, http.StatusNotFound, "this surface is no longer displayed")
		return
	}

	var req actionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Action == "" {
		h.writeError(w, http.StatusBadRequest, "an action is required")
		return
	}

	actor := ActorFromContext(r.Context())
	res, err := view.Apply(r.Context(), domain.Action(req.Action), req.CandidateID, actor)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	resp := actionResponse{Closed: res.Closed}
	if !res.Closed {
		resp.Frame = &res.Frame
	}
	if res.Spawned != nil {
		resp.SpawnedID = res.Spawned.ID()
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// handleStream upgrades to a websocket and forwards frame and retract events
// until the session ends or the client goes away.
func (h *Handler) handleStream(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := h.sink.Latest(id); !ok {
		h.writeError(w, http.StatusNotFound, "this surface is no longer displayed")
		return
	}

	ws, err := websocket.Accept(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket accept failed", zap.Error(err))
		return
	}
	defer ws.Close(websocket.StatusNormalClosure, "stream ended")

	events, cancel := h.sink.Subscribe(id)
	defer cancel()

	// Seed the stream with the current frame so late subscribers are not
	// blank until the next action.
	if frame, ok := h.sink.Latest(id); ok {
		if err := writeEvent(r.Context(), ws, Event{Type: "frame", Frame: &frame}); err != nil {
			return
		}
	}

	for ev := range events {
		if err := writeEvent(r.Context(), ws, ev); err != nil {
			h.logger.Debug("stream write failed, dropping subscriber",
				zap.String("session_id", id), zap.Error(err))
			return
		}
		if ev.Type == "retract" {
			return
		}
	}
}

func writeEvent(ctx context.Context, ws *websocket.Conn, ev Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return ws.Write(ctx, websocket.MessageText, data)
}

// writeDomainError maps the engine's error taxonomy onto HTTP notices.
func (h *Handler) writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		h.writeError(w, http.StatusNotFound, "no lyrics were found for this track")
	case errors.Is(err, domain.ErrTransient):
		h.writeError(w, http.StatusBadGateway, "the lyrics service is unavailable, try again later")
	case errors.Is(err, domain.ErrLocked):
		h.writeError(w, http.StatusForbidden, "this surface is locked by its owner")
	case errors.Is(err, domain.ErrPermissionDenied):
		h.writeError(w, http.StatusForbidden, "only the owner may do that")
	case errors.Is(err, domain.ErrRetracted):
		// Actions racing against teardown are silently dropped
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, domain.ErrUnknownAction):
		h.writeError(w, http.StatusBadRequest, "unknown action")
	default:
		h.logger.Error("unhandled engine error", zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn("response encoding failed", zap.Error(err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, notice string) {
	h.writeJSON(w, status, map[string]string{"error": notice})
}
