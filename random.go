package sketch

import (
	"math/rand"
	"time"
)

// Rand generates the random parameters that drive a sketch: positions,
// angles, scales, and colors. Every sketch run owns one Rand, so a fixed
// seed reproduces the image exactly.
//
// Rand is not safe for concurrent use; sketches are single-threaded.
type Rand struct {
	r *rand.Rand
}

// NewRand creates a deterministic generator for the given seed.
// A zero seed means "surprise me": the stream is seeded from the clock.
func NewRand(seed int64) *Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Rand{r: rand.New(rand.NewSource(seed))}
}

// Uniform returns a float64 in [lo, hi). Inverted bounds are swapped;
// equal bounds return the bound.
func (r *Rand) Uniform(lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo == hi {
		return lo
	}
	return lo + r.r.Float64()*(hi-lo)
}

// Between returns an int in [lo, hi], inclusive on both ends.
// Inverted bounds are swapped.
func (r *Rand) Between(lo, hi int) int {
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo == hi {
		return lo
	}
	return lo + r.r.Intn(hi-lo+1)
}

// Chance returns true with probability p (clamped to [0, 1]).
func (r *Rand) Chance(p float64) bool {
	return r.r.Float64() < clamp01(p)
}

// Color returns a random opaque color.
func (r *Rand) Color() Color {
	return RGB(r.r.Float64(), r.r.Float64(), r.r.Float64())
}

// ColorAlpha returns a random color with alpha drawn from [lo, hi).
func (r *Rand) ColorAlpha(lo, hi float64) Color {
	return RGBA(r.r.Float64(), r.r.Float64(), r.r.Float64(), r.Uniform(lo, hi))
}

// From returns a random entry from the palette. An empty palette yields
// opaque black rather than panicking, so sketches can run unconfigured.
func (r *Rand) From(palette []Color) Color {
	if len(palette) == 0 {
		return RGB(0, 0, 0)
	}
	return palette[r.r.Intn(len(palette))]
}

// Choice returns a random element of items. It panics on an empty slice,
// like indexing would.
func Choice[T any](r *Rand, items []T) T {
	return items[r.r.Intn(len(items))]
}
