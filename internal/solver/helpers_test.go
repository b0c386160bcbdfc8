package solver

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/termo-solver/internal/game"
	"github.com/robalobadob/termo-solver/internal/words"
)

// recorder wraps a simulated puzzle and records what the solver did to it.
type recorder struct {
	*game.Puzzle
	submitted []string
	restarts  int
}

func (r *recorder) Submit(ctx context.Context, w string) error {
	r.submitted = append(r.submitted, w)
	return r.Puzzle.Submit(ctx, w)
}

func (r *recorder) NewGame(ctx context.Context) error {
	r.restarts++
	return r.Puzzle.NewGame(ctx)
}

func newRecorder(t *testing.T, v game.Variant, answers ...string) *recorder {
	t.Helper()
	p, err := game.NewPuzzle(v, answers...)
	require.NoError(t, err)
	return &recorder{Puzzle: p}
}

func mustDict(t *testing.T, list ...string) *words.Dictionary {
	t.Helper()
	d, err := words.New(list)
	require.NoError(t, err)
	return d
}

func newSolver(t *testing.T, c Collaborator, d *words.Dictionary, seed uint64, maxRetries int) *Solver {
	t.Helper()
	nop := zerolog.Nop()
	s, err := New(c, Options{
		Dictionary: d,
		Selector:   NewSelector(NewRand(seed), ""),
		MaxRetries: maxRetries,
		Logger:     &nop,
	})
	require.NoError(t, err)
	return s
}
