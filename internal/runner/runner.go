// Package runner ties a solver run to the run history: it builds the
// collaborator (simulated puzzle or a caller-supplied one), solves, and
// records the outcome.
package runner

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/termo-solver/internal/game"
	"github.com/robalobadob/termo-solver/internal/solver"
	"github.com/robalobadob/termo-solver/internal/store"
	"github.com/robalobadob/termo-solver/internal/words"
)

// Run sources.
const (
	SourceBrowser   = "browser"
	SourceSimulated = "simulated"
	SourceDaily     = "daily"
)

// Options configure a Runner.
type Options struct {
	Dictionary  *words.Dictionary // required
	Store       store.Store       // nil: runs are not recorded
	OpeningWord string // "" means game.OpeningWord
	MaxRetries  int    // see solver.Options.MaxRetries
	Logger      *zerolog.Logger
}

// Runner serializes solves: one game session is active at a time.
type Runner struct {
	opts Options
	mu   sync.Mutex
	log  zerolog.Logger
}

// New returns a Runner.
func New(opts Options) (*Runner, error) {
	if opts.Dictionary == nil {
		return nil, fmt.Errorf("runner: nil dictionary")
	}
	if w := words.Fold(opts.OpeningWord); w != "" && !words.IsWord(w) {
		return nil, fmt.Errorf("runner: %w: %q", solver.ErrInvalidOpening, opts.OpeningWord)
	}
	r := &Runner{opts: opts, log: log.Logger}
	if opts.Logger != nil {
		r.log = *opts.Logger
	}
	return r, nil
}

// Dictionary is the word list every solve starts from.
func (r *Runner) Dictionary() *words.Dictionary { return r.opts.Dictionary }

// Solve plays v through c and records the result under source.
// The Run is returned even when solving fails; its Status says how it ended.
func (r *Runner) Solve(ctx context.Context, c solver.Collaborator, v game.Variant, seed uint64, source string) (*store.Run, *solver.Outcome, error) {
	return r.solve(ctx, c, v, solver.NewRand(seed), source)
}

// Simulate solves an in-memory puzzle. With no answers, distinct words are
// drawn from the dictionary using the same seeded generator as the guesses.
func (r *Runner) Simulate(ctx context.Context, v game.Variant, answers []string, seed uint64, source string) (*store.Run, *solver.Outcome, error) {
	rng := solver.NewRand(seed)
	if len(answers) == 0 {
		answers = RandomAnswers(rng, r.opts.Dictionary, v.Boards())
	}
	p, err := game.NewPuzzle(v, answers...)
	if err != nil {
		return nil, nil, err
	}
	r.log.Debug().Str("puzzle", p.ID).Str("variant", v.String()).Msg("simulated puzzle ready")
	return r.solve(ctx, p, v, rng, source)
}

func (r *Runner) solve(ctx context.Context, c solver.Collaborator, v game.Variant, rng *rand.Rand, source string) (*store.Run, *solver.Outcome, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, err := solver.New(c, solver.Options{
		Dictionary: r.opts.Dictionary,
		Selector:   solver.NewSelector(rng, r.opts.OpeningWord),
		MaxRetries: r.opts.MaxRetries,
		Logger:     &r.log,
	})
	if err != nil {
		return nil, nil, err
	}

	started := time.Now()
	out, solveErr := s.Solve(ctx, v)
	run := store.NewRun(v, source, started, out, solveErr)
	if r.opts.Store != nil {
		// The history is best effort; a failed write never hides the result.
		if err := r.opts.Store.Save(context.WithoutCancel(ctx), run); err != nil {
			r.log.Error().Err(err).Str("run", run.ID).Msg("save run")
		}
	}
	return run, out, solveErr
}

// RandomAnswers draws n distinct words from d.
func RandomAnswers(rng *rand.Rand, d *words.Dictionary, n int) []string {
	list := d.Words()
	if n > len(list) {
		n = len(list)
	}
	out := make([]string, 0, n)
	for _, i := range rng.Perm(len(list))[:n] {
		out = append(out, list[i])
	}
	return out
}
