// Package redeem exchanges bonus points for festival store items.
package redeem

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/youthopia/engine/internal/catalog"
	"github.com/youthopia/engine/internal/domain"
	"github.com/youthopia/engine/internal/event"
	"github.com/youthopia/engine/internal/logger"
	"github.com/youthopia/engine/internal/metrics"
)

// User-facing messages.
const (
	MsgRedeemSuccessFormat = "Successfully redeemed %s!"
	MsgInsufficientBalance = "You don't have enough bonus points to redeem this item."
)

// LedgerService is the balance collaborator used for redemption debits.
type LedgerService interface {
	Debit(amount int) (int, error)
	Balance() int
}

// Result reports a completed redemption.
type Result struct {
	Item       catalog.Reward
	NewBalance int
	Message    string
}

// Service redeems store items against one session's ledger.
type Service interface {
	// Redeem debits the item's cost and confirms. An unknown item or an
	// insufficient balance fails without touching the ledger.
	Redeem(ctx context.Context, itemName string) (*Result, error)
}

type service struct {
	sessionID    string
	ledger       LedgerService
	eventBus     event.Bus
	confirmDelay time.Duration

	sleep func(ctx context.Context, d time.Duration) error
}

// NewService creates a redemption service. confirmDelay simulates the store
// confirmation round-trip; pass zero in tests. A nil bus disables event
// publication.
func NewService(sessionID string, ledger LedgerService, bus event.Bus, confirmDelay time.Duration) Service {
	return &service{
		sessionID:    sessionID,
		ledger:       ledger,
		eventBus:     bus,
		confirmDelay: confirmDelay,
		sleep:        sleepContext,
	}
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

func (s *service) Redeem(ctx context.Context, itemName string) (*Result, error) {
	log := logger.FromContext(ctx)

	item, ok := catalog.RewardByName(itemName)
	if !ok {
		return nil, fmt.Errorf("redeem %q: %w", itemName, domain.ErrItemNotFound)
	}

	if err := s.sleep(ctx, s.confirmDelay); err != nil {
		return nil, fmt.Errorf("redeem %s: %w", item.Name, err)
	}

	newBalance, err := s.ledger.Debit(item.Cost)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientBalance) {
			metrics.ValidationFailures.WithLabelValues("redeem").Inc()
			log.Info("Redemption rejected, insufficient balance",
				"item", item.Name,
				"cost", item.Cost,
				"balance", s.ledger.Balance())
			return nil, domain.NewValidationError("balance", MsgInsufficientBalance)
		}
		return nil, fmt.Errorf("redeem %s: %w", item.Name, err)
	}

	metrics.ItemsRedeemed.WithLabelValues(item.Name).Inc()
	log.Info("Item redeemed",
		"item", item.Name,
		"cost", item.Cost,
		"new_balance", newBalance)

	if s.eventBus != nil {
		evt := event.NewItemRedeemedEvent(s.sessionID, item.Name, item.Cost, newBalance)
		if err := s.eventBus.Publish(ctx, evt); err != nil {
			log.Warn("Failed to publish redemption event", "error", err)
		}
	}

	return &Result{
		Item:       item,
		NewBalance: newBalance,
		Message:    fmt.Sprintf(MsgRedeemSuccessFormat, item.Name),
	}, nil
}
