// Package solver narrows a word dictionary from per-letter feedback and
// plays term.ooo-style games through a Collaborator until every board is
// solved.
//
// Control flow: Solve (retry policy) runs Play (one game session), which
// runs a board loop per board. Each loop selects a guess, submits it,
// interprets the observed row and filters the board's candidates.
package solver

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/termo-solver/internal/words"
)

// DefaultMaxRetries bounds Solve when Options.MaxRetries is negative.
const DefaultMaxRetries = 5

// Options configure a Solver.
type Options struct {
	Dictionary *words.Dictionary // required
	Selector   *Selector         // nil: random seed, default opening word
	MaxRetries int               // retries after the first run; 0 disables them, < 0 means DefaultMaxRetries
	Logger     *zerolog.Logger   // nil: global logger
}

// Solver plays one game through its collaborator. It is not safe for
// concurrent use: exactly one guess is in flight at a time.
type Solver struct {
	c          Collaborator
	dict       *words.Dictionary
	sel        *Selector
	maxRetries int
	log        zerolog.Logger
}

// New returns a Solver playing through c.
func New(c Collaborator, opts Options) (*Solver, error) {
	if c == nil {
		return nil, errors.New("solver: nil collaborator")
	}
	if opts.Dictionary == nil {
		return nil, errors.New("solver: nil dictionary")
	}
	s := &Solver{
		c:          c,
		dict:       opts.Dictionary,
		sel:        opts.Selector,
		maxRetries: opts.MaxRetries,
		log:        log.Logger,
	}
	if s.sel == nil {
		s.sel = NewSelector(nil, "")
	}
	if s.maxRetries < 0 {
		s.maxRetries = DefaultMaxRetries
	}
	if !words.IsWord(s.sel.Opening()) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidOpening, s.sel.Opening())
	}
	if opts.Logger != nil {
		s.log = *opts.Logger
	}
	return s, nil
}

// Start is where a run begins: the first word to play and the candidates
// it was chosen from.
type Start struct {
	Opening    string   // "" means select from Candidates
	Candidates []string
}

// ColdStart begins from the full dictionary and the opening word.
func (s *Solver) ColdStart() Start {
	w, _ := s.sel.Select(nil, true)
	return Start{Opening: w, Candidates: s.dict.Words()}
}

// WarmStart keeps candidates and opens with a random one of them.
func (s *Solver) WarmStart(candidates []string) (Start, error) {
	w, err := s.sel.Pick(candidates)
	if err != nil {
		return Start{}, err
	}
	return Start{Opening: w, Candidates: candidates}, nil
}
