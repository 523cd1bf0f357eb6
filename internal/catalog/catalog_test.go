package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventByID(t *testing.T) {
	t.Run("finds known events", func(t *testing.T) {
		e, ok := EventByID("34")

		require.True(t, ok)
		assert.Equal(t, "Dance Therapy", e.Title)
		assert.Equal(t, CategoryEngagement, e.Category)
		assert.Equal(t, 70, e.Points)
		assert.False(t, e.TeamEvent)
	})

	t.Run("unknown id misses", func(t *testing.T) {
		_, ok := EventByID("999")
		assert.False(t, ok)
	})
}

func TestCatalogConsistency(t *testing.T) {
	seen := make(map[string]bool)
	for _, e := range Events() {
		assert.False(t, seen[e.ID], "Duplicate event id %s", e.ID)
		seen[e.ID] = true

		if e.TeamEvent {
			assert.GreaterOrEqual(t, e.MinMembers, 2, "Team event %s needs at least two members", e.Title)
			assert.GreaterOrEqual(t, e.MaxMembers, e.MinMembers, "Event %s has inverted member bounds", e.Title)
		} else {
			assert.Zero(t, e.MinMembers, "Solo event %s must not carry member bounds", e.Title)
		}

		if e.Category == CategoryEngagement {
			assert.False(t, e.TeamEvent, "Engagement event %s cannot be a team event", e.Title)
		} else {
			assert.Zero(t, e.Points, "Intercollegiate event %s must not award points", e.Title)
		}
	}
}

func TestRewards(t *testing.T) {
	t.Run("store is ordered most expensive first", func(t *testing.T) {
		items := Rewards()

		require.Len(t, items, 4)
		for i := 1; i < len(items); i++ {
			assert.Greater(t, items[i-1].Cost, items[i].Cost)
		}
	})

	t.Run("lookup is case-insensitive", func(t *testing.T) {
		r, ok := RewardByName("badge")

		require.True(t, ok)
		assert.Equal(t, "Badge", r.Name)
		assert.Equal(t, 150, r.Cost)
	})

	t.Run("unknown item misses", func(t *testing.T) {
		_, ok := RewardByName("Hoodie")
		assert.False(t, ok)
	})
}
