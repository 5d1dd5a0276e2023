package core

import "math/rand"

// Rand is the game's seedable pseudo-random source. It wraps math/rand
// with the handful of draw shapes the simulation needs. The same seed
// produces the same sequence of draws in the same call order, which keeps
// seeded runs fully reproducible.
type Rand struct {
	src *rand.Rand
}

// NewRand creates a seeded random source.
func NewRand(seed int64) *Rand {
	return &Rand{src: rand.New(rand.NewSource(seed))}
}

// Intn returns a random int in [0, n). Returns 0 for n <= 0.
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.src.Intn(n)
}

// IntBetween returns a random int in [lo, hi] inclusive.
// Returns lo when hi <= lo.
func (r *Rand) IntBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.src.Intn(hi-lo+1)
}

// Float64 returns a random float64 in [0, 1).
func (r *Rand) Float64() float64 {
	return r.src.Float64()
}

// Bool returns true or false with equal probability.
func (r *Rand) Bool() bool {
	return r.src.Intn(2) == 0
}

// Pick returns a uniformly chosen element of items and true,
// or the zero value and false if items is empty.
func Pick[T any](r *Rand, items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[r.src.Intn(len(items))], true
}

// Weighted pairs a value with its relative weight for WeightedPick.
// A slice keeps the draw order deterministic; a map would not.
type Weighted[T any] struct {
	Value  T
	Weight int
}

// WeightedPick returns an element chosen with probability proportional to
// its weight. Entries with weight <= 0 are never selected. Returns false
// if the total weight is zero.
func WeightedPick[T any](r *Rand, entries []Weighted[T]) (T, bool) {
	var zero T
	total := 0
	for _, e := range entries {
		if e.Weight > 0 {
			total += e.Weight
		}
	}
	if total <= 0 {
		return zero, false
	}

	roll := r.src.Intn(total)
	cumulative := 0
	for _, e := range entries {
		if e.Weight <= 0 {
			continue
		}
		cumulative += e.Weight
		if roll < cumulative {
			return e.Value, true
		}
	}
	return zero, false
}
