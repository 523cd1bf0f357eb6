package eligibility

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDrawArithmetic(t *testing.T) {
	tests := []struct {
		completed int
		consumed  int
		earned    int
		available int
		progress  int
		untilNext int
	}{
		{completed: 0, consumed: 0, earned: 0, available: 0, progress: 0, untilNext: 4},
		{completed: 3, consumed: 0, earned: 0, available: 0, progress: 3, untilNext: 1},
		{completed: 4, consumed: 0, earned: 1, available: 1, progress: 0, untilNext: 4},
		{completed: 5, consumed: 1, earned: 1, available: 0, progress: 1, untilNext: 3},
		{completed: 8, consumed: 1, earned: 2, available: 1, progress: 0, untilNext: 4},
		{completed: 11, consumed: 2, earned: 2, available: 0, progress: 3, untilNext: 1},
		{completed: 12, consumed: 0, earned: 3, available: 3, progress: 0, untilNext: 4},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("completed=%d consumed=%d", tt.completed, tt.consumed), func(t *testing.T) {
			assert.Equal(t, tt.earned, EarnedDraws(tt.completed))
			assert.Equal(t, tt.available, AvailableDraws(tt.completed, tt.consumed))
			assert.Equal(t, tt.progress, CycleProgress(tt.completed))
			assert.Equal(t, tt.untilNext, ActionsUntilNextDraw(tt.completed))
		})
	}
}

func TestDrawArithmetic_DefensiveBounds(t *testing.T) {
	t.Run("negative completions clamp to zero", func(t *testing.T) {
		assert.Equal(t, 0, EarnedDraws(-4))
		assert.Equal(t, 0, CycleProgress(-1))
	})

	t.Run("overconsumption never goes negative", func(t *testing.T) {
		assert.Equal(t, 0, AvailableDraws(4, 99))
	})
}

func TestActionLog(t *testing.T) {
	t.Run("deduplicates repeat actions", func(t *testing.T) {
		log := NewActionLog()

		assert.True(t, log.Add("evt-fashion"))
		assert.True(t, log.Add("evt-singing"))
		assert.False(t, log.Add("evt-fashion"), "Repeat action should not count again")

		assert.Equal(t, 2, log.Count())
		assert.True(t, log.Has("evt-singing"))
		assert.False(t, log.Has("evt-dance"))
	})

	t.Run("preserves insertion order", func(t *testing.T) {
		log := NewActionLog()
		log.Add("a")
		log.Add("b")
		log.Add("c")
		log.Add("b")

		assert.Equal(t, []string{"a", "b", "c"}, log.IDs())
	})

	t.Run("empty log", func(t *testing.T) {
		log := NewActionLog()
		assert.Equal(t, 0, log.Count())
		assert.Empty(t, log.IDs())
	})
}
