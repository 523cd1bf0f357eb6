// Package eligibility converts festival activity into earned bonus draws.
package eligibility

import "sync"

// ActionsPerDraw is how many qualifying actions earn one bonus draw.
const ActionsPerDraw = 4

// EarnedDraws returns the lifetime number of draws earned for the given
// number of completed qualifying actions.
func EarnedDraws(completed int) int {
	if completed < 0 {
		return 0
	}
	return completed / ActionsPerDraw
}

// AvailableDraws returns draws earned but not yet consumed. Never negative,
// even if consumption records outrun the earn count.
func AvailableDraws(completed, consumed int) int {
	available := EarnedDraws(completed) - consumed
	if available < 0 {
		return 0
	}
	return available
}

// CycleProgress returns how far the user is into the current earn cycle,
// in [0, ActionsPerDraw).
func CycleProgress(completed int) int {
	if completed < 0 {
		return 0
	}
	return completed % ActionsPerDraw
}

// ActionsUntilNextDraw returns how many more qualifying actions earn the
// next draw.
func ActionsUntilNextDraw(completed int) int {
	return ActionsPerDraw - CycleProgress(completed)
}

// ActionLog records the distinct qualifying actions a session has completed.
// Repeat completions of the same action are ignored, so an action counts at
// most once toward draw eligibility.
type ActionLog struct {
	mu   sync.RWMutex
	seen map[string]struct{}
	ids  []string
}

// NewActionLog creates an empty ActionLog.
func NewActionLog() *ActionLog {
	return &ActionLog{seen: make(map[string]struct{})}
}

// Add records an action. Returns false if the action was already recorded.
func (l *ActionLog) Add(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, dup := l.seen[id]; dup {
		return false
	}
	l.seen[id] = struct{}{}
	l.ids = append(l.ids, id)
	return true
}

// Has reports whether the action has been recorded.
func (l *ActionLog) Has(id string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	_, ok := l.seen[id]
	return ok
}

// Count returns the number of distinct recorded actions.
func (l *ActionLog) Count() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.seen)
}

// IDs returns the recorded action ids in insertion order.
func (l *ActionLog) IDs() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]string, len(l.ids))
	copy(out, l.ids)
	return out
}
