// Package rng centralizes the one seeded random source every
// oscillatory network in this module draws from (kuramoto's initial
// phase/frequency spread, legion's noise term), so a given seed
// reproduces a given run regardless of which package asked for it.
package rng

import "math/rand"

// New returns a *rand.Rand seeded deterministically from seed.
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
