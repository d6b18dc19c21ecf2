// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
)

// QuestionsPerElement is how many questions a client answers per element
const QuestionsPerElement = 5

var ErrPoolTooSmall = errors.New("question pool too small")

// SampleQuestions draws n distinct questions from pool uniformly at random
// without replacement. It runs a partial Fisher-Yates shuffle on a copy, so
// pool is left untouched and the loop always terminates after n swaps.
// A nil rng uses the goroutine-safe top-level generator.
func SampleQuestions(pool []string, n int, rng *rand.Rand) ([]string, error) {
	if n <= 0 {
		return []string{}, nil
	}
	if len(pool) < n {
		return nil, fmt.Errorf("have %d questions, need %d: %w", len(pool), n, ErrPoolTooSmall)
	}

	shuffled := slices.Clone(pool)
	for i := 0; i < n; i++ {
		j := i + intN(rng, len(shuffled)-i)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	return shuffled[:n:n], nil
}

func intN(rng *rand.Rand, n int) int {
	if rng == nil {
		return rand.IntN(n)
	}
	return rng.IntN(n)
}
