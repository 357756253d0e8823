package kioskapi

import (
	"context"
	"encoding/json"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/go-chi/chi/v5"
	"github.com/linnemanlabs/go-core/log"
	"github.com/linnemanlabs/go-core/xerrors"

	"github.com/linnemanlabs/guardian/internal/kiosk"
	"github.com/linnemanlabs/guardian/internal/triage"
)

// KioskService defines the session operations kioskapi needs.
type KioskService interface {
	Start(ctx context.Context) (*kiosk.Record, error)
	Get(ctx context.Context, id string) (*kiosk.Record, bool, error)
	View(r *kiosk.Record) kiosk.View
	Act(ctx context.Context, id string, a kiosk.Action) (*kiosk.ActResult, error)
	CheckIn(ctx context.Context, id string) (string, error)
	End(ctx context.Context, id string) error
}

// API holds dependencies for HTTP handlers.
type API struct {
	logger log.Logger
	svc    KioskService
}

// New creates a new API handler.
func New(logger log.Logger, svc KioskService) *API {
	if logger == nil {
		logger = log.Nop()
	}
	if svc == nil {
		panic(xerrors.New("kiosk service is required"))
	}
	return &API{
		logger: logger,
		svc:    svc,
	}
}

// RegisterRoutes attaches API endpoints to the router.
func (a *API) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/facilities", a.handleFacilities)
		r.Get("/symptoms", a.handleSymptoms)
		r.Get("/resolve", a.handleResolve)

		r.Post("/sessions", a.handleStartSession)
		r.Route("/sessions/{id}", func(r chi.Router) {
			r.Get("/", a.handleGetSession)
			r.Delete("/", a.handleEndSession)
			r.Post("/actions", a.handleAction)
			r.Post("/checkin", a.handleCheckIn)
		})
	})
}

type symptomCategory struct {
	Key      string                `json:"key"`
	Title    string                `json:"title"`
	Symptoms []triage.SymptomEntry `json:"symptoms"`
}

type resolveResponse struct {
	Classification triage.Classification `json:"classification"`
	Policy         triage.DisplayPolicy  `json:"policy"`
}

func (a *API) handleFacilities(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"facilities": triage.Facilities()})
}

func (a *API) handleSymptoms(w http.ResponseWriter, _ *http.Request) {
	cats := triage.Catalog()
	out := make([]symptomCategory, 0, len(cats))
	for _, c := range cats {
		sc := symptomCategory{Key: c.Key, Title: c.Title, Symptoms: make([]triage.SymptomEntry, 0, len(c.Labels))}
		for _, l := range c.Labels {
			if e, ok := triage.Lookup(l); ok {
				sc.Symptoms = append(sc.Symptoms, e)
			}
		}
		out = append(out, sc)
	}
	writeJSON(w, http.StatusOK, map[string]any{"categories": out})
}

// handleResolve never fails: an unknown or missing symptom gets the routine fallback.
func (a *API) handleResolve(w http.ResponseWriter, r *http.Request) {
	symptom := r.URL.Query().Get("symptom")
	cl := triage.Resolve(symptom)

	span := trace.SpanFromContext(r.Context())
	span.SetAttributes(
		attribute.String("guardian.symptom.tier", string(cl.Tier)),
		attribute.Bool("guardian.symptom.known", triage.Known(symptom)),
	)

	writeJSON(w, http.StatusOK, resolveResponse{Classification: cl, Policy: triage.PolicyFor(cl.Tier)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// nothing to do with errors here
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
