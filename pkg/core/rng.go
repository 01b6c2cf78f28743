package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Table draws a random truth table over vars inputs. Each minterm is a
// don't-care with probability dc and otherwise true with probability p.
// Both slices come back in ascending order.
func (r *RNG) Table(vars int, p, dc float64) (ones, dontCares []int) {
	if vars < 0 {
		return nil, nil
	}
	for m := 0; m < 1<<vars; m++ {
		switch x := r.r.Float64(); {
		case x < dc:
			dontCares = append(dontCares, m)
		case r.r.Float64() < p:
			ones = append(ones, m)
		}
	}
	return ones, dontCares
}
