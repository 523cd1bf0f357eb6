// Package bonus runs the spin-and-quiz bonus game: a timed prize wheel spin
// whose winnings stay pending until a short survey challenge is completed.
package bonus

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/youthopia/engine/internal/domain"
	"github.com/youthopia/engine/internal/eligibility"
	"github.com/youthopia/engine/internal/event"
	"github.com/youthopia/engine/internal/logger"
	"github.com/youthopia/engine/internal/metrics"
	"github.com/youthopia/engine/internal/quiz"
	"github.com/youthopia/engine/internal/utils"
)

// DefaultSpinDuration is how long a spin takes to settle.
const DefaultSpinDuration = 4 * time.Second

// User-facing messages.
const (
	MsgQuizIncomplete     = "Please answer all 3 questions to claim your bonus!"
	MsgClaimSuccessFormat = "Hooray! You won %d Bonus Points!"
)

// LedgerService is the balance collaborator used by the game.
type LedgerService interface {
	Credit(amount int) (int, error)
	Balance() int
}

// ActionCounter reports how many qualifying actions the session completed.
type ActionCounter interface {
	Count() int
}

// PrizeSelector draws a prize value for a settled spin.
type PrizeSelector interface {
	Draw() int
}

// SpinResult reports where a settled spin landed.
type SpinResult struct {
	Prize     int
	Challenge *quiz.Challenge
}

// ClaimResult reports a successful reward claim.
type ClaimResult struct {
	Prize      int
	NewBalance int
	Message    string
}

// Game drives one session's bonus flow through
// IDLE -> SPINNING -> AWAITING_GATE -> IDLE.
type Game interface {
	// StartSpin consumes nothing yet; it locks the wheel and returns the
	// settle deadline. Fails if no draws are available or a spin or pending
	// reward is in flight.
	StartSpin(ctx context.Context) (time.Time, error)
	// SettleSpin resolves a started spin once its deadline has passed: the
	// prize is drawn, the draw is consumed, and a fresh challenge gates the
	// winnings.
	SettleSpin(ctx context.Context) (*SpinResult, error)
	// Spin runs StartSpin, waits out the spin duration, then settles. If ctx
	// is cancelled during the wait the spin stays in flight and can still be
	// settled later.
	Spin(ctx context.Context) (*SpinResult, error)
	// Choose records a challenge answer while a reward is pending.
	Choose(ctx context.Context, questionID int, option string) error
	// Claim credits the pending prize if the challenge is complete. An
	// incomplete challenge returns a validation error and changes nothing.
	Claim(ctx context.Context) (*ClaimResult, error)
	// Forfeit discards the pending reward. The consumed draw is not refunded.
	Forfeit(ctx context.Context) error

	State() domain.RewardState
	AvailableDraws() int
	ConsumedDraws() int
	PendingPrize() int
	Challenge() *quiz.Challenge
	SettleAt() time.Time

	// Restore rebuilds gate state from a persisted snapshot. A positive
	// pendingPrize reopens the gate over the same questions with answers
	// cleared; an in-flight spin is never restored.
	Restore(consumedDraws, pendingPrize int, questionIDs []int) error
}

type game struct {
	sessionID    string
	ledger       LedgerService
	actions      ActionCounter
	selector     PrizeSelector
	eventBus     event.Bus
	spinDuration time.Duration

	rng func(int) int
	now func() time.Time

	state        domain.RewardState
	consumed     int
	settleAt     time.Time
	pendingPrize int
	challenge    *quiz.Challenge
}

// NewGame creates a bonus game for one session. A nil bus disables event
// publication.
func NewGame(sessionID string, ledger LedgerService, actions ActionCounter, selector PrizeSelector, bus event.Bus, spinDuration time.Duration) Game {
	if spinDuration <= 0 {
		spinDuration = DefaultSpinDuration
	}
	return &game{
		sessionID:    sessionID,
		ledger:       ledger,
		actions:      actions,
		selector:     selector,
		eventBus:     bus,
		spinDuration: spinDuration,
		rng:          utils.SecureRandomIntn,
		now:          time.Now,
		state:        domain.RewardStateIdle,
	}
}

func (g *game) availableDraws() int {
	return eligibility.AvailableDraws(g.actions.Count(), g.consumed)
}

func (g *game) StartSpin(ctx context.Context) (time.Time, error) {
	log := logger.FromContext(ctx)

	switch g.state {
	case domain.RewardStateSpinning:
		return time.Time{}, fmt.Errorf("start spin: %w", domain.ErrSpinInProgress)
	case domain.RewardStateAwaitingGate:
		return time.Time{}, fmt.Errorf("start spin: %w", domain.ErrRewardPending)
	}

	if g.availableDraws() <= 0 {
		return time.Time{}, fmt.Errorf("start spin: %w", domain.ErrNoSpinsAvailable)
	}

	g.state = domain.RewardStateSpinning
	g.settleAt = g.now().Add(g.spinDuration)
	metrics.SpinsStarted.Inc()

	log.Info("Spin started",
		"settle_at", g.settleAt,
		"available_draws", g.availableDraws())

	return g.settleAt, nil
}

func (g *game) SettleSpin(ctx context.Context) (*SpinResult, error) {
	log := logger.FromContext(ctx)

	if g.state != domain.RewardStateSpinning {
		return nil, fmt.Errorf("settle spin: %w", domain.ErrNoActiveSpin)
	}
	if g.now().Before(g.settleAt) {
		return nil, fmt.Errorf("settle spin: %w", domain.ErrSpinNotFinished)
	}

	prize := g.selector.Draw()
	g.consumed++
	g.pendingPrize = prize
	g.challenge = quiz.NewChallenge(g.rng, quiz.DefaultSize)
	g.state = domain.RewardStateAwaitingGate

	metrics.SpinsSettled.WithLabelValues(strconv.Itoa(prize)).Inc()

	log.Info("Spin landed",
		"prize", prize,
		"consumed_draws", g.consumed,
		"challenge_questions", g.challenge.QuestionIDs())

	g.publish(ctx, event.NewSpinLandedEvent(g.sessionID, prize, g.challenge.QuestionIDs()))

	return &SpinResult{Prize: prize, Challenge: g.challenge}, nil
}

func (g *game) Spin(ctx context.Context) (*SpinResult, error) {
	settleAt, err := g.StartSpin(ctx)
	if err != nil {
		return nil, err
	}

	timer := time.NewTimer(time.Until(settleAt))
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
		return nil, fmt.Errorf("spin interrupted: %w", ctx.Err())
	}

	return g.SettleSpin(ctx)
}

func (g *game) Choose(ctx context.Context, questionID int, option string) error {
	if g.state != domain.RewardStateAwaitingGate {
		return fmt.Errorf("answer challenge: %w", domain.ErrNoPendingReward)
	}
	return g.challenge.Choose(questionID, option)
}

func (g *game) Claim(ctx context.Context) (*ClaimResult, error) {
	log := logger.FromContext(ctx)

	if g.state != domain.RewardStateAwaitingGate {
		return nil, fmt.Errorf("claim reward: %w", domain.ErrNoPendingReward)
	}

	if !g.challenge.Complete() {
		metrics.ValidationFailures.WithLabelValues("bonus").Inc()
		log.Info("Claim rejected, challenge incomplete",
			"unanswered", g.challenge.Unanswered())
		return nil, domain.NewValidationError("quiz", MsgQuizIncomplete)
	}

	newBalance, err := g.ledger.Credit(g.pendingPrize)
	if err != nil {
		return nil, fmt.Errorf("claim reward: %w", err)
	}

	prize := g.pendingPrize
	g.reset()
	metrics.RewardsClaimed.Inc()

	log.Info("Reward claimed", "prize", prize, "new_balance", newBalance)
	g.publish(ctx, event.NewRewardCreditedEvent(g.sessionID, prize, newBalance))

	return &ClaimResult{
		Prize:      prize,
		NewBalance: newBalance,
		Message:    fmt.Sprintf(MsgClaimSuccessFormat, prize),
	}, nil
}

func (g *game) Forfeit(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if g.state != domain.RewardStateAwaitingGate {
		return fmt.Errorf("forfeit reward: %w", domain.ErrNoPendingReward)
	}

	prize := g.pendingPrize
	g.reset()
	metrics.RewardsForfeited.Inc()

	log.Info("Reward forfeited", "prize", prize)
	g.publish(ctx, event.NewRewardForfeitedEvent(g.sessionID, prize))

	return nil
}

func (g *game) reset() {
	g.state = domain.RewardStateIdle
	g.pendingPrize = 0
	g.challenge = nil
	g.settleAt = time.Time{}
}

func (g *game) publish(ctx context.Context, evt event.Event) {
	if g.eventBus == nil {
		return
	}
	if err := g.eventBus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn("Failed to publish bonus event",
			"event_type", evt.Type,
			"error", err)
	}
}

func (g *game) State() domain.RewardState { return g.state }

func (g *game) AvailableDraws() int { return g.availableDraws() }

func (g *game) ConsumedDraws() int { return g.consumed }

func (g *game) PendingPrize() int { return g.pendingPrize }

func (g *game) Challenge() *quiz.Challenge { return g.challenge }

func (g *game) SettleAt() time.Time { return g.settleAt }

func (g *game) Restore(consumedDraws, pendingPrize int, questionIDs []int) error {
	if consumedDraws < 0 || pendingPrize < 0 {
		return fmt.Errorf("restore game: %w", domain.ErrInvalidInput)
	}

	g.reset()
	g.consumed = consumedDraws

	if pendingPrize > 0 {
		challenge, err := quiz.ChallengeFromIDs(questionIDs)
		if err != nil {
			return fmt.Errorf("restore game: %w", err)
		}
		g.pendingPrize = pendingPrize
		g.challenge = challenge
		g.state = domain.RewardStateAwaitingGate
	}

	return nil
}
