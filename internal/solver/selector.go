package solver

import (
	"math/rand/v2"

	"github.com/robalobadob/termo-solver/internal/game"
	"github.com/robalobadob/termo-solver/internal/words"
)

// NewRand returns a PCG-backed generator. Seed 0 draws a random seed.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// Selector chooses the next guess.
type Selector struct {
	rng     *rand.Rand
	opening string
}

// NewSelector uses rng for picks and opening for fresh runs.
// A nil rng is seeded randomly; an empty opening means game.OpeningWord.
// The opening is folded; New rejects it if it is not a 5-letter word.
func NewSelector(rng *rand.Rand, opening string) *Selector {
	if rng == nil {
		rng = NewRand(0)
	}
	opening = words.Fold(opening)
	if opening == "" {
		opening = game.OpeningWord
	}
	return &Selector{rng: rng, opening: opening}
}

// Opening is the word played first on a cold start.
func (s *Selector) Opening() string { return s.opening }

// Select returns the opening word when opening is set, otherwise a
// uniformly random candidate.
func (s *Selector) Select(candidates []string, opening bool) (string, error) {
	if opening {
		return s.opening, nil
	}
	return s.Pick(candidates)
}

// Pick returns a uniformly random candidate.
func (s *Selector) Pick(candidates []string) (string, error) {
	if len(candidates) == 0 {
		return "", ErrEmptyCandidateSet
	}
	return candidates[s.rng.IntN(len(candidates))], nil
}
