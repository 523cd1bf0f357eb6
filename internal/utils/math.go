package utils

import (
	crand "crypto/rand"
	"math/big"
	"math/rand"
)

// RandomFloat returns a random float64 between 0.0 and 1.0
func RandomFloat() float64 {
	return rand.Float64() //nolint:gosec // Game logic randomness, not security critical
}

// RandomInt returns a random integer between min and max (inclusive)
func RandomInt(min, max int) int {
	if min > max {
		return min
	}
	return rand.Intn(max-min+1) + min //nolint:gosec // Game logic randomness, not security critical
}

// SecureRandomIntn returns a random integer in [0, n) using crypto/rand.
// Falls back to math/rand if the system entropy source fails, since draws
// here drive game outcomes rather than key material.
func SecureRandomIntn(n int) int {
	if n <= 0 {
		return 0
	}
	v, err := crand.Int(crand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return rand.Intn(n) //nolint:gosec // entropy fallback
	}
	return int(v.Int64())
}
