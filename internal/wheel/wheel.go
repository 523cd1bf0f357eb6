// Package wheel draws bonus prizes from a fixed wheel layout.
package wheel

import (
	"github.com/youthopia/engine/internal/utils"
)

// Segments is the wheel layout: eight equal slices, so each distinct prize
// value lands 25% of the time.
var Segments = []int{10, 20, 30, 40, 10, 20, 30, 40}

// Selector draws a prize by picking a uniformly random wheel segment.
type Selector struct {
	rng func(int) int // returns [0, n), injectable for tests
}

// NewSelector creates a Selector backed by the crypto RNG.
func NewSelector() *Selector {
	return &Selector{rng: utils.SecureRandomIntn}
}

// NewSelectorWithRNG creates a Selector with a custom random source.
func NewSelectorWithRNG(rng func(int) int) *Selector {
	return &Selector{rng: rng}
}

// Draw returns the prize value of a randomly selected segment.
func (s *Selector) Draw() int {
	return Segments[s.rng(len(Segments))]
}
