package kioskapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/linnemanlabs/guardian/internal/kiosk"
)

type sessionResponse struct {
	ID      string     `json:"id"`
	Applied *bool      `json:"applied,omitempty"`
	View    kiosk.View `json:"view"`
}

type actionRequest struct {
	Action  string `json:"action"`
	Symptom string `json:"symptom"`
}

func (a *API) handleStartSession(w http.ResponseWriter, r *http.Request) {
	rec, err := a.svc.Start(r.Context())
	if err != nil {
		a.logger.Error(r.Context(), err, "failed to start session")
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	trace.SpanFromContext(r.Context()).SetAttributes(attribute.String("guardian.session.id", rec.ID))

	writeJSON(w, http.StatusCreated, sessionResponse{ID: rec.ID, View: a.svc.View(rec)})
}

func (a *API) handleGetSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	span := trace.SpanFromContext(r.Context())
	span.SetAttributes(attribute.String("guardian.session.id", id))

	rec, ok, err := a.svc.Get(r.Context(), id)
	if err != nil {
		a.logger.Error(r.Context(), err, "failed to get session", "id", id)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	span.SetAttributes(attribute.String("guardian.state", string(rec.State)))

	writeJSON(w, http.StatusOK, sessionResponse{ID: rec.ID, View: a.svc.View(rec)})
}

func (a *API) handleEndSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	trace.SpanFromContext(r.Context()).SetAttributes(attribute.String("guardian.session.id", id))

	if err := a.svc.End(r.Context(), id); err != nil {
		a.writeServiceError(w, r, err, id)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) handleAction(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	trace.SpanFromContext(r.Context()).SetAttributes(attribute.String("guardian.session.id", id))

	var req actionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	kind, err := kiosk.ParseActionKind(req.Action)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := a.svc.Act(r.Context(), id, kiosk.Action{Kind: kind, Symptom: req.Symptom})
	if err != nil {
		a.writeServiceError(w, r, err, id)
		return
	}

	applied := res.Applied
	writeJSON(w, http.StatusOK, sessionResponse{ID: res.Record.ID, Applied: &applied, View: res.View})
}

func (a *API) handleCheckIn(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	trace.SpanFromContext(r.Context()).SetAttributes(attribute.String("guardian.session.id", id))

	outcome, err := a.svc.CheckIn(r.Context(), id)
	if err != nil {
		a.writeServiceError(w, r, err, id)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]any{"checked_in": true, "outcome": outcome})
}

func (a *API) writeServiceError(w http.ResponseWriter, r *http.Request, err error, id string) {
	switch {
	case errors.Is(err, kiosk.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, kiosk.ErrCheckInNotHome):
		writeError(w, http.StatusConflict, err.Error())
	default:
		a.logger.Error(r.Context(), err, "kiosk operation failed", "id", id)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
