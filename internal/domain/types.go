package domain

// RewardState tracks where a session's bonus draw sits in its lifecycle.
type RewardState string

const (
	RewardStateIdle         RewardState = "IDLE"
	RewardStateSpinning     RewardState = "SPINNING"
	RewardStateAwaitingGate RewardState = "AWAITING_GATE"
)

// TeamMember is one row of a team registration roster.
type TeamMember struct {
	Name string `json:"name" validate:"required"`
	ID   string `json:"id" validate:"required"`
}

// Chat message roles, matching the upstream generative-language API.
const (
	ChatRoleUser  = "user"
	ChatRoleModel = "model"
)

// ChatMessage is one turn of festival-assistant conversation history.
type ChatMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
}
