package event

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockBus is a test double for event.Bus
type mockBus struct {
	mu         sync.Mutex
	calls      []Event
	shouldFail func(attempt int) bool
}

func (m *mockBus) Publish(ctx context.Context, event Event) error {
	m.mu.Lock()
	m.calls = append(m.calls, event)
	callCount := len(m.calls)
	m.mu.Unlock()

	if m.shouldFail != nil && m.shouldFail(callCount) {
		return errors.New("mock publish error")
	}
	return nil
}

func (m *mockBus) Subscribe(eventType Type, handler Handler) {
	// Not used in these tests
}

func (m *mockBus) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func TestResilientPublisher_SuccessfulPublish(t *testing.T) {
	bus := &mockBus{}

	rp := NewResilientPublisher(bus, ResilientConfig{
		MaxRetries: 3,
		RetryDelay: 10 * time.Millisecond,
	})

	err := rp.Publish(context.Background(), NewSpinLandedEvent("sess-1", 10, []int{2, 5, 8}))

	require.NoError(t, err)
	assert.Equal(t, 1, bus.CallCount(), "Event should be published once")
}

func TestResilientPublisher_RetrySuccess(t *testing.T) {
	// Bus fails on first attempt, succeeds on second
	bus := &mockBus{
		shouldFail: func(attempt int) bool {
			return attempt == 1
		},
	}

	rp := NewResilientPublisher(bus, ResilientConfig{
		MaxRetries: 3,
		RetryDelay: 10 * time.Millisecond,
	})

	err := rp.Publish(context.Background(), NewRewardCreditedEvent("sess-1", 40, 45))
	require.NoError(t, err, "Caller should not see the failure")

	// Wait for retry (first attempt + delay + second attempt)
	time.Sleep(100 * time.Millisecond)

	assert.Equal(t, 2, bus.CallCount(), "Should attempt twice: initial + retry")
}

func TestResilientPublisher_RetryExhaustionWritesDeadLetter(t *testing.T) {
	tmpFile := t.TempDir() + "/deadletter.jsonl"

	// Bus always fails
	bus := &mockBus{
		shouldFail: func(attempt int) bool {
			return true
		},
	}

	dl, err := NewDeadLetterWriter(tmpFile)
	require.NoError(t, err)
	defer dl.Close()

	rp := NewResilientPublisher(bus, ResilientConfig{
		MaxRetries: 2,
		RetryDelay: 5 * time.Millisecond,
		DeadLetter: dl,
	})

	err = rp.Publish(context.Background(), NewItemRedeemedEvent("sess-1", "Keychain", 350, 400))
	require.NoError(t, err)

	// Wait for retries to exhaust (5ms + 10ms + processing)
	time.Sleep(300 * time.Millisecond)

	assert.Equal(t, 3, bus.CallCount(), "Initial attempt plus two retries")

	content, err := os.ReadFile(tmpFile)
	require.NoError(t, err)
	require.NotEmpty(t, content, "Dead-letter file should have entry")

	var entry DeadLetterEntry
	require.NoError(t, json.Unmarshal(content, &entry), "Dead-letter should be valid JSON")

	assert.Equal(t, DeadLetterSchemaVersion, entry.SchemaVersion)
	assert.Equal(t, ItemRedeemed, entry.Event.Type)
	assert.Equal(t, 2, entry.Attempts)
	assert.NotEmpty(t, entry.LastError)
}

func TestResilientPublisher_SubscribeDelegates(t *testing.T) {
	inner := NewMemoryBus()
	rp := NewResilientPublisher(inner, ResilientConfig{RetryDelay: time.Millisecond})

	handled := false
	rp.Subscribe(RewardForfeited, func(ctx context.Context, event Event) error {
		handled = true
		return nil
	})

	require.NoError(t, rp.Publish(context.Background(), NewRewardForfeitedEvent("sess-1", 20)))
	assert.True(t, handled, "Handler registered through the publisher should fire")
}
