// Package theory computes closed-form success probabilities for stopping rules.
package theory

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidSize is returned for fewer than one candidate.
var ErrInvalidSize = errors.New("candidate count must be at least 1")

// ClassicWinProbability returns the probability that rejecting the first r-1 of n
// candidates, r = ceil(n/e), and then taking the first candidate better than all seen
// selects the best one:
//
//	P = (r-1)/n * sum_{i=r}^{n} 1/(i-1)
//
// For r == 1 nothing is rejected and the first candidate is taken, so P = 1/n.
func ClassicWinProbability(n int) (float64, error) {
	if n < 1 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidSize, n)
	}

	r := int(math.Ceil(float64(n) / math.E))
	if r == 1 {
		return 1 / float64(n), nil
	}

	sum := 0.0
	for i := r; i <= n; i++ {
		sum += 1 / float64(i-1)
	}

	return float64(r-1) / float64(n) * sum, nil
}

// AsymptoticWinProbability is the limit of ClassicWinProbability as n grows: 1/e.
const AsymptoticWinProbability = 1 / math.E
