// Package permutation generates uniformly random candidate sequences.
package permutation

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// ErrInvalidSize is returned when a sequence of fewer than one candidate is requested.
var ErrInvalidSize = errors.New("permutation size must be at least 1")

// Source produces random permutations of the ranks 1..n.
// A Source is not safe for concurrent use.
type Source struct {
	rng *rand.Rand
}

// NewSource creates a Source drawing from rng.
func NewSource(rng *rand.Rand) *Source {
	return &Source{rng: rng}
}

// NewSeededSource creates a reproducible Source from a PCG seed pair.
func NewSeededSource(seed1, seed2 uint64) *Source {
	return NewSource(rand.New(rand.NewPCG(seed1, seed2)))
}

// NewRandomSource creates a Source seeded from the runtime's random generator.
func NewRandomSource() *Source {
	return NewSeededSource(rand.Uint64(), rand.Uint64())
}

// Generate returns the ranks 1..n in uniformly random order.
// Position in the slice is arrival order; value is true rank (1 = best).
func (s *Source) Generate(n int) ([]int, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, n)
	}

	ranks := make([]int, n)
	for i := range ranks {
		ranks[i] = i + 1
	}

	// Fisher-Yates
	s.rng.Shuffle(n, func(i, j int) {
		ranks[i], ranks[j] = ranks[j], ranks[i]
	})

	return ranks, nil
}
