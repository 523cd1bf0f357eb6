package session

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/youthopia/engine/internal/domain"
	"github.com/youthopia/engine/internal/event"
	"github.com/youthopia/engine/internal/registry"
	"github.com/youthopia/engine/internal/store"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "sessions.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	return NewManager(st, registry.NewDirectory(), event.NewMemoryBus(), testConfig())
}

func TestManagerLifecycle(t *testing.T) {
	m := newTestManager(t)

	s := m.Create("Asha")

	got, ok := m.Get(s.ID())
	require.True(t, ok)
	assert.Same(t, s, got)

	m.Close(s.ID())
	_, ok = m.Get(s.ID())
	assert.False(t, ok)
}

func TestSaveAndRestore(t *testing.T) {
	ctx := context.Background()

	t.Run("round-trips balance, registrations and draw progress", func(t *testing.T) {
		m := newTestManager(t)
		s := m.Create("Asha")
		registerFour(t, s)
		require.NoError(t, m.Save(ctx, s))
		m.Close(s.ID())

		loaded, err := m.Restore(ctx, s.ID())

		require.NoError(t, err)
		assert.Equal(t, s.ID(), loaded.ID())
		assert.Equal(t, "Asha", loaded.UserName())
		assert.Equal(t, 165, loaded.Balance())
		assert.Equal(t, 1, loaded.Game().AvailableDraws())
		assert.Equal(t, domain.RewardStateIdle, loaded.Game().State())

		// The restored action log still dedupes.
		_, err = loaded.RegisterEvent(ctx, danceTherapy)
		assert.ErrorIs(t, err, domain.ErrAlreadyRegistered)
	})

	t.Run("reopens a pending reward with answers cleared", func(t *testing.T) {
		m := newTestManager(t)
		s := m.Create("Asha")
		registerFour(t, s)

		spin, err := s.Game().Spin(ctx)
		require.NoError(t, err)
		first := spin.Challenge.Questions()[0]
		require.NoError(t, s.Game().Choose(ctx, first.ID, first.Options[0]))

		require.NoError(t, m.Save(ctx, s))

		loaded, err := m.Restore(ctx, s.ID())
		require.NoError(t, err)
		assert.Equal(t, domain.RewardStateAwaitingGate, loaded.Game().State())
		assert.Equal(t, spin.Prize, loaded.Game().PendingPrize())
		require.NotNil(t, loaded.Game().Challenge())
		assert.Equal(t, spin.Challenge.QuestionIDs(), loaded.Game().Challenge().QuestionIDs())
		assert.False(t, loaded.Game().Challenge().Complete(), "Answers do not survive a restore")
	})

	t.Run("an in-flight spin is not persisted", func(t *testing.T) {
		m := newTestManager(t)
		s := m.Create("Asha")
		registerFour(t, s)
		_, err := s.Game().StartSpin(ctx)
		require.NoError(t, err)

		require.NoError(t, m.Save(ctx, s))

		loaded, err := m.Restore(ctx, s.ID())
		require.NoError(t, err)
		assert.Equal(t, domain.RewardStateIdle, loaded.Game().State())
		assert.Equal(t, 1, loaded.Game().AvailableDraws(), "Unsettled spin does not consume the draw")
	})

	t.Run("restoring an unknown session fails", func(t *testing.T) {
		m := newTestManager(t)

		_, err := m.Restore(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})
}

func TestSnapshot(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t)
	s := m.Create("Asha")

	_, err := s.RegisterEvent(ctx, danceTherapy)
	require.NoError(t, err)
	_, err = s.RegisterEvent(ctx, kyc)
	require.NoError(t, err)

	snap := s.Snapshot()

	assert.Equal(t, s.ID(), snap.SessionID)
	assert.Equal(t, 125, snap.Balance)
	assert.Equal(t, []string{danceTherapy, kyc}, snap.RegisteredEvents)
	assert.Equal(t, 0, snap.AvailableDraws)
	assert.Equal(t, 2, snap.CycleProgress)
	assert.Equal(t, 2, snap.ActionsUntilNextDraw)
	assert.Equal(t, domain.RewardStateIdle, snap.GateState)
	assert.Zero(t, snap.PendingPrize)
}
