// Command simulate drives one full participant journey through the reward
// engine: registration, bonus spin, quiz gate, claim, team roster, redemption
// and a session snapshot.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"

	"github.com/youthopia/engine/internal/chat"
	"github.com/youthopia/engine/internal/config"
	"github.com/youthopia/engine/internal/domain"
	"github.com/youthopia/engine/internal/event"
	"github.com/youthopia/engine/internal/logger"
	"github.com/youthopia/engine/internal/metrics"
	"github.com/youthopia/engine/internal/registry"
	"github.com/youthopia/engine/internal/roster"
	"github.com/youthopia/engine/internal/session"
	"github.com/youthopia/engine/internal/store"
)

const deadLetterFileName = "events_deadletter.jsonl"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	initLogger(cfg)

	if err := run(cfg); err != nil {
		logger.Error("Simulation failed", "error", err)
	}
}

func run(cfg *config.Config) error {
	ctx := context.Background()

	// Participant IDs that already registered elsewhere; the roster validator
	// must reject them.
	directory := registry.NewDirectory("YT-500", "YT-501")
	lookup := registry.NewCached(directory, cfg.RegistryCacheSize, cfg.RegistryCacheTTL)

	deadLetter, err := event.NewDeadLetterWriter(filepath.Join(filepath.Dir(cfg.StorePath), deadLetterFileName))
	if err != nil {
		return fmt.Errorf("open dead letter file: %w", err)
	}
	defer deadLetter.Close()

	bus := event.NewResilientPublisher(event.NewMemoryBus(), event.ResilientConfig{
		DeadLetter: deadLetter,
	})
	if err := metrics.NewEventMetricsCollector().Register(bus); err != nil {
		return fmt.Errorf("register event metrics: %w", err)
	}
	subscribeAuditLog(bus)

	st, err := store.Open(cfg.StorePath)
	if err != nil {
		return fmt.Errorf("open snapshot store: %w", err)
	}
	defer st.Close()

	manager := session.NewManager(st, lookup, bus, session.Config{
		SignupBonus:  cfg.SignupBonus,
		SpinDuration: cfg.SpinDuration,
		ConfirmDelay: cfg.ConfirmLatency,
	})

	s := manager.Create("Asha")
	ctx = logger.WithSessionID(ctx, s.ID())
	log := logger.FromContext(ctx)
	log.Info("Session created", "user", s.UserName(), "balance", s.Balance())

	// Four engagement registrations earn the first bonus draw.
	for _, eventID := range []string{"34", "31", "32", "24"} {
		result, err := s.RegisterEvent(ctx, eventID)
		if err != nil {
			return fmt.Errorf("register event %s: %w", eventID, err)
		}
		log.Info(result.Message, "points", result.PointsAwarded, "balance", result.NewBalance)
	}

	if err := playBonusRound(ctx, s); err != nil {
		return err
	}

	if err := registerTeam(ctx, s); err != nil {
		return err
	}

	redeemed, err := s.Redeem(ctx, "Badge")
	if err != nil {
		return fmt.Errorf("redeem badge: %w", err)
	}
	log.Info(redeemed.Message, "cost", redeemed.Item.Cost, "balance", redeemed.NewBalance)

	askTheGuide(ctx, cfg)

	if err := manager.Save(ctx, s); err != nil {
		return err
	}

	snap := s.Snapshot()
	log.Info("Journey complete",
		"balance", snap.Balance,
		"registered_events", len(snap.RegisteredEvents),
		"available_draws", snap.AvailableDraws,
		"actions_until_next_draw", snap.ActionsUntilNextDraw)
	return nil
}

// playBonusRound spins the wheel, deliberately trips the incomplete-quiz
// guard once, then completes the challenge and claims.
func playBonusRound(ctx context.Context, s *session.Session) error {
	log := logger.FromContext(ctx)
	game := s.Game()

	spin, err := game.Spin(ctx)
	if err != nil {
		return fmt.Errorf("spin: %w", err)
	}
	log.Info("Spin landed", "prize", spin.Prize)

	if _, err := game.Claim(ctx); err != nil {
		var vErr *domain.ValidationError
		if !errors.As(err, &vErr) {
			return fmt.Errorf("claim: %w", err)
		}
		log.Info("Claim blocked by the quiz gate", "message", vErr.Message)
	}

	for _, q := range spin.Challenge.Questions() {
		if err := game.Choose(ctx, q.ID, q.Options[0]); err != nil {
			return fmt.Errorf("answer question %d: %w", q.ID, err)
		}
	}

	claim, err := game.Claim(ctx)
	if err != nil {
		return fmt.Errorf("claim: %w", err)
	}
	log.Info(claim.Message, "balance", claim.NewBalance)
	return nil
}

// registerTeam fills a debate roster, shows a rejected member, then confirms.
func registerTeam(ctx context.Context, s *session.Session) error {
	log := logger.FromContext(ctx)
	const debate = "1"

	form, err := s.OpenTeamRegistration(debate)
	if err != nil {
		return fmt.Errorf("open team registration: %w", err)
	}

	if err := form.UpdateMember(ctx, 0, roster.FieldName, "Asha"); err != nil {
		return err
	}
	if err := form.UpdateMember(ctx, 0, roster.FieldID, "YT-500"); err != nil {
		return err
	}
	if rowErr := form.Rows()[0].IDError; rowErr != "" {
		log.Info("Roster rejected a member", "message", rowErr)
	}

	if err := form.UpdateMember(ctx, 0, roster.FieldID, "YT-101"); err != nil {
		return err
	}
	if err := form.UpdateMember(ctx, 1, roster.FieldName, "Ravi"); err != nil {
		return err
	}
	if err := form.UpdateMember(ctx, 1, roster.FieldID, "YT-102"); err != nil {
		return err
	}

	result, err := s.ConfirmTeamRegistration(ctx, debate)
	if err != nil {
		return fmt.Errorf("confirm team registration: %w", err)
	}
	log.Info(result.Message, "team_size", form.Size())
	return nil
}

// askTheGuide sends one message to the festival assistant. Without an API key
// the assistant answers with its fallback line, which is fine for a dry run.
func askTheGuide(ctx context.Context, cfg *config.Config) {
	log := logger.FromContext(ctx)

	guide := chat.NewClient(cfg.ChatAPIKey, cfg.ChatModel, cfg.ChatBaseURL)
	reply, err := guide.SendMessage(ctx, "Where can I redeem my bonus points?", nil)
	if err != nil {
		log.Warn("Festival guide unavailable", "error", err)
	}
	log.Info("Festival guide replied", "reply", reply)
}

// subscribeAuditLog logs every event the engine publishes.
func subscribeAuditLog(bus event.Bus) {
	logPayload := func(ctx context.Context, evt event.Event) error {
		logger.FromContext(ctx).Info("Event published", "type", evt.Type)
		return nil
	}

	bus.Subscribe(event.SpinLanded, func(ctx context.Context, evt event.Event) error {
		payload, err := event.DecodePayload[event.SpinLandedPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		logger.FromContext(ctx).Info("Event published",
			"type", evt.Type,
			"prize", payload.Prize,
			"questions", payload.QuestionIDs)
		return nil
	})
	bus.Subscribe(event.RewardCredited, func(ctx context.Context, evt event.Event) error {
		payload, err := event.DecodePayload[event.RewardCreditedPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		logger.FromContext(ctx).Info("Event published",
			"type", evt.Type,
			"prize", payload.Prize,
			"new_balance", payload.NewBalance)
		return nil
	})
	bus.Subscribe(event.RewardForfeited, logPayload)
	bus.Subscribe(event.EventRegistered, logPayload)
	bus.Subscribe(event.ItemRedeemed, logPayload)
}
