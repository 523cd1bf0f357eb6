// Package ledger holds a session's bonus point balance.
package ledger

import (
	"fmt"
	"sync"

	"github.com/youthopia/engine/internal/domain"
	"github.com/youthopia/engine/internal/metrics"
)

// Ledger is the single source of truth for one session's balance. All
// mutations go through Credit and Debit; the balance never goes negative.
type Ledger struct {
	mu      sync.Mutex
	balance int
}

// New creates a ledger with an initial balance. Negative seeds clamp to zero.
func New(initial int) *Ledger {
	if initial < 0 {
		initial = 0
	}
	return &Ledger{balance: initial}
}

// Credit adds amount to the balance and returns the new balance.
func (l *Ledger) Credit(amount int) (int, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("%w: credit of %d", domain.ErrInvalidAmount, amount)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.balance += amount
	metrics.PointsCredited.Add(float64(amount))
	return l.balance, nil
}

// Debit subtracts amount from the balance and returns the new balance.
// An insufficient balance fails without mutating anything.
func (l *Ledger) Debit(amount int) (int, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("%w: debit of %d", domain.ErrInvalidAmount, amount)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.balance < amount {
		return 0, fmt.Errorf("%w: have %d, need %d", domain.ErrInsufficientBalance, l.balance, amount)
	}
	l.balance -= amount
	metrics.PointsDebited.Add(float64(amount))
	return l.balance, nil
}

// Balance returns the current balance.
func (l *Ledger) Balance() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.balance
}
