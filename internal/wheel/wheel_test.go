package wheel

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraw_ValueAlwaysOnWheel(t *testing.T) {
	s := NewSelector()
	valid := map[int]bool{10: true, 20: true, 30: true, 40: true}

	for i := 0; i < 1000; i++ {
		prize := s.Draw()
		assert.True(t, valid[prize], "Draw returned %d, not a wheel value", prize)
	}
}

func TestDraw_DeterministicWithInjectedRNG(t *testing.T) {
	tests := []struct {
		name     string
		index    int
		expected int
	}{
		{"first segment", 0, 10},
		{"second segment", 1, 20},
		{"fourth segment", 3, 40},
		{"fifth segment wraps values", 4, 10},
		{"last segment", 7, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSelectorWithRNG(func(n int) int {
				require.Equal(t, len(Segments), n)
				return tt.index
			})
			assert.Equal(t, tt.expected, s.Draw())
		})
	}
}

func TestDraw_DistributionRoughlyUniform(t *testing.T) {
	// Seeded source keeps this deterministic while still exercising the
	// cumulative distribution over many draws.
	rng := rand.New(rand.NewSource(42))
	s := NewSelectorWithRNG(rng.Intn)

	const draws = 10000
	counts := make(map[int]int)
	for i := 0; i < draws; i++ {
		counts[s.Draw()]++
	}

	require.Len(t, counts, 4, "All four prize values should appear")

	// Each distinct value covers a quarter of the wheel. Allow 3% absolute
	// deviation, generous for 10k samples.
	for _, prize := range []int{10, 20, 30, 40} {
		freq := float64(counts[prize]) / draws
		assert.InDelta(t, 0.25, freq, 0.03, "Prize %d frequency %f too far from 25%%", prize, freq)
	}
}
