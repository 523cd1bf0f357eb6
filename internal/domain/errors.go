package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Spin/draw errors
	ErrMsgNoSpinsAvailable = "no spins available"
	ErrMsgSpinInProgress   = "a spin is already in progress"
	ErrMsgNoActiveSpin     = "no spin in progress"
	ErrMsgSpinNotFinished  = "spin has not finished"

	// Reward gate errors
	ErrMsgNoPendingReward = "no pending reward"
	ErrMsgRewardPending   = "a reward is pending claim"
	ErrMsgQuizIncomplete  = "answer all questions before claiming"

	// Quiz errors
	ErrMsgUnknownQuestion = "question is not part of this challenge"
	ErrMsgInvalidOption   = "option is not offered by this question"

	// Ledger errors
	ErrMsgInsufficientBalance = "insufficient balance"
	ErrMsgInvalidAmount       = "amount must be positive"

	// Catalog errors
	ErrMsgEventNotFound = "event not found"
	ErrMsgItemNotFound  = "item not found"

	// Registration errors
	ErrMsgAlreadyRegistered  = "already registered for this event"
	ErrMsgTeamRosterRequired = "team event requires a confirmed roster"

	// Session errors
	ErrMsgSessionNotFound = "session not found"

	// Chat errors
	ErrMsgChatUnavailable = "chat assistant unavailable"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Spin/draw errors
	ErrNoSpinsAvailable = errors.New(ErrMsgNoSpinsAvailable)
	ErrSpinInProgress   = errors.New(ErrMsgSpinInProgress)
	ErrNoActiveSpin     = errors.New(ErrMsgNoActiveSpin)
	ErrSpinNotFinished  = errors.New(ErrMsgSpinNotFinished)

	// Reward gate errors
	ErrNoPendingReward = errors.New(ErrMsgNoPendingReward)
	ErrRewardPending   = errors.New(ErrMsgRewardPending)

	// Quiz errors
	ErrUnknownQuestion = errors.New(ErrMsgUnknownQuestion)
	ErrInvalidOption   = errors.New(ErrMsgInvalidOption)

	// Ledger errors
	ErrInsufficientBalance = errors.New(ErrMsgInsufficientBalance)
	ErrInvalidAmount       = errors.New(ErrMsgInvalidAmount)

	// Catalog errors
	ErrEventNotFound = errors.New(ErrMsgEventNotFound)
	ErrItemNotFound  = errors.New(ErrMsgItemNotFound)

	// Registration errors
	ErrAlreadyRegistered  = errors.New(ErrMsgAlreadyRegistered)
	ErrTeamRosterRequired = errors.New(ErrMsgTeamRosterRequired)

	// Session errors
	ErrSessionNotFound = errors.New(ErrMsgSessionNotFound)

	// Chat errors
	ErrChatUnavailable = errors.New(ErrMsgChatUnavailable)

	// Input errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
