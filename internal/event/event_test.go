package event

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	handled := false

	bus.Subscribe(SpinLanded, func(ctx context.Context, event Event) error {
		if event.Type != SpinLanded {
			t.Errorf("Expected event type %s, got %s", SpinLanded, event.Type)
		}
		payload, err := DecodePayload[SpinLandedPayloadV1](event.Payload)
		if err != nil {
			t.Fatalf("DecodePayload returned error: %v", err)
		}
		if payload.Prize != 30 {
			t.Errorf("Expected prize 30, got %d", payload.Prize)
		}
		if payload.SessionID != "sess-1" {
			t.Errorf("Expected session sess-1, got %s", payload.SessionID)
		}
		handled = true
		return nil
	})

	err := bus.Publish(context.Background(), NewSpinLandedEvent("sess-1", 30, []int{1, 4, 9}))
	if err != nil {
		t.Errorf("Publish returned error: %v", err)
	}

	if !handled {
		t.Error("Handler was not called")
	}
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	count := 0

	handler := func(ctx context.Context, event Event) error {
		count++
		return nil
	}

	bus.Subscribe(RewardCredited, handler)
	bus.Subscribe(RewardCredited, handler)

	err := bus.Publish(context.Background(), NewRewardCreditedEvent("sess-1", 20, 25))
	if err != nil {
		t.Errorf("Publish returned error: %v", err)
	}

	if count != 2 {
		t.Errorf("Expected 2 handlers to be called, got %d", count)
	}
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		return errors.New("handler error")
	})

	err := bus.Publish(context.Background(), Event{Version: EventSchemaVersion, Type: eventType})
	if err == nil {
		t.Error("Expected error from Publish, got nil")
	}
}

func TestMemoryBus_PublishNoSubscribers(t *testing.T) {
	bus := NewMemoryBus()

	err := bus.Publish(context.Background(), NewItemRedeemedEvent("sess-1", "Badge", 150, 50))
	if err != nil {
		t.Errorf("Publish without subscribers returned error: %v", err)
	}
}

func TestDecodePayload_JSONFallback(t *testing.T) {
	// Payloads arriving from serialized sources come back as generic maps.
	raw := map[string]interface{}{
		"session_id":     "sess-2",
		"event_id":       "evt-dance-therapy",
		"category":       "Engagement",
		"points_awarded": 70,
	}

	payload, err := DecodePayload[EventRegisteredPayloadV1](raw)
	if err != nil {
		t.Fatalf("DecodePayload returned error: %v", err)
	}
	if payload.EventID != "evt-dance-therapy" {
		t.Errorf("Expected event id evt-dance-therapy, got %s", payload.EventID)
	}
	if payload.PointsAwarded != 70 {
		t.Errorf("Expected 70 points, got %d", payload.PointsAwarded)
	}
}
