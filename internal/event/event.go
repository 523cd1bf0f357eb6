package event

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Common event types
const (
	SpinLanded      Type = "bonus.spin.landed"
	RewardCredited  Type = "bonus.reward.credited"
	RewardForfeited Type = "bonus.reward.forfeited"
	EventRegistered Type = "registration.completed"
	ItemRedeemed    Type = "redeem.completed"
)

// Typed event payloads for type safety

// SpinLandedPayloadV1 is the typed payload for spin landing events
type SpinLandedPayloadV1 struct {
	SessionID   string `json:"session_id"`
	Prize       int    `json:"prize"`
	QuestionIDs []int  `json:"question_ids"`
	Timestamp   int64  `json:"timestamp"`
}

// RewardCreditedPayloadV1 is the typed payload for reward credit events
type RewardCreditedPayloadV1 struct {
	SessionID  string `json:"session_id"`
	Prize      int    `json:"prize"`
	NewBalance int    `json:"new_balance"`
	Timestamp  int64  `json:"timestamp"`
}

// RewardForfeitedPayloadV1 is the typed payload for reward forfeit events
type RewardForfeitedPayloadV1 struct {
	SessionID string `json:"session_id"`
	Prize     int    `json:"prize"`
	Timestamp int64  `json:"timestamp"`
}

// EventRegisteredPayloadV1 is the typed payload for registration events
type EventRegisteredPayloadV1 struct {
	SessionID     string `json:"session_id"`
	EventID       string `json:"event_id"`
	Category      string `json:"category"`
	TeamSize      int    `json:"team_size,omitempty"`
	PointsAwarded int    `json:"points_awarded"`
	Timestamp     int64  `json:"timestamp"`
}

// ItemRedeemedPayloadV1 is the typed payload for redemption events
type ItemRedeemedPayloadV1 struct {
	SessionID  string `json:"session_id"`
	Item       string `json:"item"`
	Cost       int    `json:"cost"`
	NewBalance int    `json:"new_balance"`
	Timestamp  int64  `json:"timestamp"`
}

// Type-safe event constructors

// NewSpinLandedEvent creates a new spin landed event with type-safe payload
func NewSpinLandedEvent(sessionID string, prize int, questionIDs []int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    SpinLanded,
		Payload: SpinLandedPayloadV1{
			SessionID:   sessionID,
			Prize:       prize,
			QuestionIDs: questionIDs,
			Timestamp:   time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewRewardCreditedEvent creates a new reward credited event
func NewRewardCreditedEvent(sessionID string, prize, newBalance int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    RewardCredited,
		Payload: RewardCreditedPayloadV1{
			SessionID:  sessionID,
			Prize:      prize,
			NewBalance: newBalance,
			Timestamp:  time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewRewardForfeitedEvent creates a new reward forfeited event
func NewRewardForfeitedEvent(sessionID string, prize int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    RewardForfeited,
		Payload: RewardForfeitedPayloadV1{
			SessionID: sessionID,
			Prize:     prize,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewEventRegisteredEvent creates a new registration completed event
func NewEventRegisteredEvent(sessionID, eventID, category string, teamSize, pointsAwarded int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    EventRegistered,
		Payload: EventRegisteredPayloadV1{
			SessionID:     sessionID,
			EventID:       eventID,
			Category:      category,
			TeamSize:      teamSize,
			PointsAwarded: pointsAwarded,
			Timestamp:     time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewItemRedeemedEvent creates a new redemption completed event
func NewItemRedeemedEvent(sessionID, item string, cost, newBalance int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemRedeemed,
		Payload: ItemRedeemedPayloadV1{
			SessionID:  sessionID,
			Item:       item,
			Cost:       cost,
			NewBalance: newBalance,
			Timestamp:  time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	// Handlers run synchronously. With configuration this could dispatch to a
	// worker pool instead.
	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
