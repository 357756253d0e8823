package kiosk

import (
	"context"
	"errors"
	"time"

	"github.com/oklog/ulid/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/linnemanlabs/go-core/log"

	"github.com/linnemanlabs/guardian/internal/triage"
)

var tracer = otel.Tracer("github.com/linnemanlabs/guardian/internal/kiosk")

// Check-in outcomes reported to OnCheckIn.
const (
	CheckInRecorded     = "recorded"
	CheckInSent         = "sent"
	CheckInNotifyFailed = "notify_failed"
)

var (
	// ErrNotFound means no session has the given id.
	ErrNotFound = errors.New("session not found")

	// ErrCheckInNotHome means a check-in was attempted away from the home screen.
	ErrCheckInNotHome = errors.New("check-in is only available on the home screen")
)

// Notifier delivers check-in signals to family contacts.
type Notifier interface {
	NotifyCheckIn(ctx context.Context, c *CheckIn) error
}

// Hooks are optional callbacks for instrumentation. Nil fields are skipped.
type Hooks struct {
	OnResolve    func(tier triage.Tier, known bool)
	OnTransition func(from, to State, action ActionKind, applied bool)
	OnCheckIn    func(outcome string)
	OnPrune      func(n int)
}

// Service owns session lifecycle on top of the pure transition function.
type Service struct {
	store    Store
	logger   log.Logger
	hooks    Hooks
	notifier Notifier
	content  Content
	now      func() time.Time
}

// NewService creates a kiosk service. notifier may be nil.
func NewService(store Store, logger log.Logger, hooks Hooks, notifier Notifier, content Content) *Service {
	if logger == nil {
		logger = log.Nop()
	}
	return &Service{
		store:    store,
		logger:   logger,
		hooks:    hooks,
		notifier: notifier,
		content:  content,
		now:      time.Now,
	}
}

// Start creates a new session on the home screen.
func (s *Service) Start(ctx context.Context) (*Record, error) {
	now := s.now()
	r := &Record{
		ID:        ulid.Make().String(),
		Session:   Start(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Put(ctx, r); err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "session started", "session_id", r.ID)
	return r, nil
}

// Get retrieves a session by id.
func (s *Service) Get(ctx context.Context, id string) (*Record, bool, error) {
	return s.store.Get(ctx, id)
}

// View renders the screen for a stored session.
func (s *Service) View(r *Record) View {
	return Render(r.Session, s.content)
}

// Act applies one user action to session id. An action that is not valid on
// the current screen is not an error; the result reports Applied=false and
// the unchanged view.
func (s *Service) Act(ctx context.Context, id string, a Action) (*ActResult, error) {
	ctx, span := tracer.Start(ctx, "kiosk.Act", trace.WithAttributes(
		attribute.String("guardian.session.id", id),
		attribute.String("guardian.action", string(a.Kind)),
	))
	defer span.End()

	var (
		from    State
		applied bool
	)
	r, err := s.store.Update(ctx, id, func(r *Record) error {
		from = r.State
		r.Session, applied = Apply(r.Session, a)
		r.UpdatedAt = s.now()
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	next := r.Session
	s.transitioned(from, next.State, a.Kind, applied)

	view := s.View(r)
	span.SetAttributes(
		attribute.String("guardian.state", string(next.State)),
		attribute.Bool("guardian.applied", applied),
	)
	if applied && a.Kind == ActionSelectSymptom {
		tier := view.Result.Classification.Tier
		known := triage.Known(a.Symptom)
		span.SetAttributes(
			attribute.String("guardian.symptom.tier", string(tier)),
			attribute.Bool("guardian.symptom.known", known),
		)
		if s.hooks.OnResolve != nil {
			s.hooks.OnResolve(tier, known)
		}
		s.logger.Info(ctx, "symptom resolved",
			"session_id", id,
			"symptom", a.Symptom,
			"tier", tier,
			"facility", view.Result.Classification.Facility.Key,
			"known", known,
		)
	}

	if applied {
		s.logger.Info(ctx, "kiosk transition", "session_id", id, "from", from, "to", next.State, "action", a.Kind)
	} else {
		s.logger.Warn(ctx, "ignored action", "session_id", id, "state", from, "action", a.Kind)
	}

	return &ActResult{Record: r, Applied: applied, View: view}, nil
}

// CheckIn records a safety check-in from the home screen and forwards it to
// the notifier if one is configured. It returns the outcome: CheckInRecorded
// without a notifier, otherwise CheckInSent or CheckInNotifyFailed. Notifier
// failures are logged, not returned.
func (s *Service) CheckIn(ctx context.Context, id string) (string, error) {
	ctx, span := tracer.Start(ctx, "kiosk.CheckIn", trace.WithAttributes(
		attribute.String("guardian.session.id", id),
	))
	defer span.End()

	var now time.Time
	r, err := s.store.Update(ctx, id, func(r *Record) error {
		if r.State != StateHome {
			return ErrCheckInNotHome
		}
		now = s.now()
		r.CheckIns++
		r.UpdatedAt = now
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrCheckInNotHome) {
			return "", err
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}

	outcome := CheckInRecorded
	if s.notifier != nil {
		ev := &CheckIn{SessionID: id, Site: s.content.Site, At: now}
		if err := s.notifier.NotifyCheckIn(ctx, ev); err != nil {
			outcome = CheckInNotifyFailed
			span.RecordError(err)
			s.logger.Error(ctx, err, "check-in notification failed", "session_id", id)
		} else {
			outcome = CheckInSent
		}
	}
	span.SetAttributes(attribute.String("guardian.checkin.outcome", outcome))
	if s.hooks.OnCheckIn != nil {
		s.hooks.OnCheckIn(outcome)
	}
	s.logger.Info(ctx, "check-in", "session_id", id, "outcome", outcome, "count", r.CheckIns)
	return outcome, nil
}

// End discards a session, equivalent to restarting the kiosk. Actions that
// arrive afterwards get ErrNotFound.
func (s *Service) End(ctx context.Context, id string) error {
	if _, ok, err := s.store.Get(ctx, id); err != nil {
		return err
	} else if !ok {
		return ErrNotFound
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info(ctx, "session ended", "session_id", id)
	return nil
}

// Sweep removes sessions idle for longer than idle.
func (s *Service) Sweep(ctx context.Context, idle time.Duration) (int, error) {
	n, err := s.store.Prune(ctx, s.now().Add(-idle))
	if err != nil {
		return 0, err
	}
	if n > 0 {
		if s.hooks.OnPrune != nil {
			s.hooks.OnPrune(n)
		}
		s.logger.Info(ctx, "pruned idle sessions", "count", n, "idle", idle.String())
	}
	return n, nil
}

func (s *Service) transitioned(from, to State, action ActionKind, applied bool) {
	if s.hooks.OnTransition != nil {
		s.hooks.OnTransition(from, to, action, applied)
	}
}
