package session

import (
	"time"

	"github.com/youthopia/engine/internal/domain"
	"github.com/youthopia/engine/internal/eligibility"
)

// Snapshot is the read-only view of a session, also used as the persisted
// form. An in-flight spin is never part of a snapshot; restoring one lands in
// IDLE or AWAITING_GATE.
type Snapshot struct {
	SessionID string    `json:"session_id"`
	User      string    `json:"user"`
	CreatedAt time.Time `json:"created_at"`

	Balance          int      `json:"balance"`
	RegisteredEvents []string `json:"registered_events"`

	ConsumedDraws        int `json:"consumed_draws"`
	AvailableDraws       int `json:"available_draws"`
	CycleProgress        int `json:"cycle_progress"`
	ActionsUntilNextDraw int `json:"actions_until_next_draw"`

	GateState            domain.RewardState `json:"gate_state"`
	PendingPrize         int                `json:"pending_prize,omitempty"`
	ChallengeQuestionIDs []int              `json:"challenge_question_ids,omitempty"`
	UnansweredQuestions  []int              `json:"unanswered_questions,omitempty"`
}

// Snapshot captures the session's current state.
func (s *Session) Snapshot() Snapshot {
	completed := s.actions.Count()

	snap := Snapshot{
		SessionID:            s.id,
		User:                 s.userName,
		CreatedAt:            s.createdAt,
		Balance:              s.ledger.Balance(),
		RegisteredEvents:     s.actions.IDs(),
		ConsumedDraws:        s.game.ConsumedDraws(),
		AvailableDraws:       s.game.AvailableDraws(),
		CycleProgress:        eligibility.CycleProgress(completed),
		ActionsUntilNextDraw: eligibility.ActionsUntilNextDraw(completed),
		GateState:            s.game.State(),
	}

	// A spin that has not settled is snapshotted as idle.
	if snap.GateState == domain.RewardStateSpinning {
		snap.GateState = domain.RewardStateIdle
	}

	if challenge := s.game.Challenge(); challenge != nil {
		snap.PendingPrize = s.game.PendingPrize()
		snap.ChallengeQuestionIDs = challenge.QuestionIDs()
		snap.UnansweredQuestions = challenge.Unanswered()
	}

	return snap
}
