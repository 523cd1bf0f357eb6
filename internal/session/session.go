// Package session ties the festival components together for one participant:
// the point ledger, the action log, the bonus game, roster forms, and
// redemption.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/youthopia/engine/internal/bonus"
	"github.com/youthopia/engine/internal/catalog"
	"github.com/youthopia/engine/internal/domain"
	"github.com/youthopia/engine/internal/eligibility"
	"github.com/youthopia/engine/internal/event"
	"github.com/youthopia/engine/internal/ledger"
	"github.com/youthopia/engine/internal/logger"
	"github.com/youthopia/engine/internal/metrics"
	"github.com/youthopia/engine/internal/redeem"
	"github.com/youthopia/engine/internal/registry"
	"github.com/youthopia/engine/internal/roster"
	"github.com/youthopia/engine/internal/wheel"
)

// MsgRegisterSuccessFormat confirms a completed event registration.
const MsgRegisterSuccessFormat = "Successfully registered for %s!"

// Config carries the session-scoped tunables.
type Config struct {
	// SignupBonus seeds the ledger of every new session.
	SignupBonus int
	// SpinDuration is how long a bonus spin takes to settle.
	SpinDuration time.Duration
	// ConfirmDelay simulates the registration and redemption round-trip.
	// Zero skips the wait.
	ConfirmDelay time.Duration
}

// RegistrationResult reports a completed event registration.
type RegistrationResult struct {
	Event         catalog.Event
	PointsAwarded int
	NewBalance    int
	Message       string
}

// Session is the per-participant state object. Its sub-components synchronize
// themselves; the session only guards its own form map.
type Session struct {
	id        string
	userName  string
	createdAt time.Time
	cfg       Config

	ledger   *ledger.Ledger
	actions  *eligibility.ActionLog
	game     bonus.Game
	redeemer redeem.Service
	registry registry.Lookup
	eventBus event.Bus

	sleep func(ctx context.Context, d time.Duration) error

	mu    sync.Mutex
	forms map[string]*roster.Form
}

// New creates a session for userName with a fresh ledger seeded with the
// signup bonus.
func New(userName string, reg registry.Lookup, bus event.Bus, cfg Config) *Session {
	return restored(logger.GenerateSessionID(), userName, time.Now(), cfg.SignupBonus, nil, reg, bus, cfg)
}

// restored builds a session from explicit state; New and the manager's
// restore path both funnel through here.
func restored(id, userName string, createdAt time.Time, balance int, actionIDs []string, reg registry.Lookup, bus event.Bus, cfg Config) *Session {
	s := &Session{
		id:        id,
		userName:  userName,
		createdAt: createdAt,
		cfg:       cfg,
		ledger:    ledger.New(balance),
		actions:   eligibility.NewActionLog(),
		registry:  reg,
		eventBus:  bus,
		sleep:     sleepContext,
		forms:     make(map[string]*roster.Form),
	}
	for _, actionID := range actionIDs {
		s.actions.Add(actionID)
	}
	s.game = bonus.NewGame(id, s.ledger, s.actions, wheel.NewSelector(), bus, cfg.SpinDuration)
	s.redeemer = redeem.NewService(id, s.ledger, bus, cfg.ConfirmDelay)
	return s
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ID returns the session id.
func (s *Session) ID() string { return s.id }

// UserName returns the participant's display name.
func (s *Session) UserName() string { return s.userName }

// Balance returns the current point balance.
func (s *Session) Balance() int { return s.ledger.Balance() }

// Game returns the session's bonus game.
func (s *Session) Game() bonus.Game { return s.game }

// RegisterEvent registers the session for a solo event. Each event counts at
// most once; team events must go through ConfirmTeamRegistration.
func (s *Session) RegisterEvent(ctx context.Context, eventID string) (*RegistrationResult, error) {
	evt, ok := catalog.EventByID(eventID)
	if !ok {
		return nil, fmt.Errorf("register event %q: %w", eventID, domain.ErrEventNotFound)
	}
	if evt.TeamEvent {
		return nil, fmt.Errorf("register event %s: %w", evt.Title, domain.ErrTeamRosterRequired)
	}
	return s.register(ctx, evt, 0)
}

// register completes a registration once its event-specific guards passed.
// The confirmation wait happens before the action is recorded, so a cancelled
// registration changes nothing.
func (s *Session) register(ctx context.Context, evt catalog.Event, teamSize int) (*RegistrationResult, error) {
	log := logger.FromContext(ctx)

	if s.actions.Has(evt.ID) {
		return nil, fmt.Errorf("register event %s: %w", evt.Title, domain.ErrAlreadyRegistered)
	}

	if err := s.sleep(ctx, s.cfg.ConfirmDelay); err != nil {
		return nil, fmt.Errorf("register event %s: %w", evt.Title, err)
	}

	if !s.actions.Add(evt.ID) {
		return nil, fmt.Errorf("register event %s: %w", evt.Title, domain.ErrAlreadyRegistered)
	}

	newBalance := s.ledger.Balance()
	if evt.Points > 0 {
		var err error
		newBalance, err = s.ledger.Credit(evt.Points)
		if err != nil {
			return nil, fmt.Errorf("credit registration bonus for %s: %w", evt.Title, err)
		}
	}

	metrics.Registrations.WithLabelValues(evt.Category).Inc()
	log.Info("Event registration completed",
		"event_id", evt.ID,
		"event_title", evt.Title,
		"points_awarded", evt.Points,
		"new_balance", newBalance)

	if s.eventBus != nil {
		published := event.NewEventRegisteredEvent(s.id, evt.ID, evt.Category, teamSize, evt.Points)
		if err := s.eventBus.Publish(ctx, published); err != nil {
			log.Warn("Failed to publish registration event", "error", err)
		}
	}

	return &RegistrationResult{
		Event:         evt,
		PointsAwarded: evt.Points,
		NewBalance:    newBalance,
		Message:       fmt.Sprintf(MsgRegisterSuccessFormat, evt.Title),
	}, nil
}

// OpenTeamRegistration opens (or returns the already open) roster form for a
// team event, sized to the event's minimum.
func (s *Session) OpenTeamRegistration(eventID string) (*roster.Form, error) {
	evt, ok := catalog.EventByID(eventID)
	if !ok {
		return nil, fmt.Errorf("open team registration %q: %w", eventID, domain.ErrEventNotFound)
	}
	if !evt.TeamEvent {
		return nil, fmt.Errorf("open team registration %s: %w", evt.Title, domain.ErrInvalidInput)
	}
	if s.actions.Has(evt.ID) {
		return nil, fmt.Errorf("open team registration %s: %w", evt.Title, domain.ErrAlreadyRegistered)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if form, open := s.forms[evt.ID]; open {
		return form, nil
	}
	form := roster.NewForm(evt.MinMembers, evt.MaxMembers, s.registry)
	s.forms[evt.ID] = form
	return form, nil
}

// TeamForm returns the open roster form for a team event, if any.
func (s *Session) TeamForm(eventID string) (*roster.Form, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	form, ok := s.forms[eventID]
	return form, ok
}

// ConfirmTeamRegistration validates the open roster and completes the
// registration. Validation failures surface the first blocking error and
// leave the form open for correction.
func (s *Session) ConfirmTeamRegistration(ctx context.Context, eventID string) (*RegistrationResult, error) {
	evt, ok := catalog.EventByID(eventID)
	if !ok {
		return nil, fmt.Errorf("confirm team registration %q: %w", eventID, domain.ErrEventNotFound)
	}

	s.mu.Lock()
	form, open := s.forms[evt.ID]
	s.mu.Unlock()
	if !open {
		return nil, fmt.Errorf("confirm team registration %s: %w", evt.Title, domain.ErrTeamRosterRequired)
	}

	if errs := form.ValidateForSubmit(ctx); len(errs) > 0 {
		first := errs[0]
		return nil, &first
	}

	result, err := s.register(ctx, evt, form.Size())
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	delete(s.forms, evt.ID)
	s.mu.Unlock()

	return result, nil
}

// Redeem exchanges points for a store item.
func (s *Session) Redeem(ctx context.Context, itemName string) (*redeem.Result, error) {
	return s.redeemer.Redeem(ctx, itemName)
}
