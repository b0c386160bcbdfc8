package solver

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/termo-solver/internal/game"
)

// orteDict narrows to the "?orte" words after the opening, then loses one
// word per guess; "zorte" is never among them.
var orteDict = []string{"areio", "borte", "corte", "dorte", "forte", "gorte", "morte", "norte", "porte"}

func TestSolve_Succeeds(t *testing.T) {
	d := mustDict(t, distinctDict...)
	rec := newRecorder(t, game.Termo, "vinho")
	s := newSolver(t, rec, d, 11, 0)

	out, err := s.Solve(context.Background(), game.Termo)
	require.NoError(t, err)
	assert.Equal(t, []string{"vinho"}, out.Result)
	assert.Equal(t, 1, out.Runs)
	assert.Equal(t, 0, rec.restarts)
	assert.Equal(t, len(rec.submitted), out.Rows())
}

func TestSolve_SingleBoardRetriesWarm(t *testing.T) {
	d := mustDict(t, orteDict...)
	rec := newRecorder(t, game.Termo, "zorte")
	s := newSolver(t, rec, d, 8, -1)

	out, err := s.Solve(context.Background(), game.Termo)

	// The warm run works through the 3 leftovers and then runs dry.
	require.ErrorIs(t, err, ErrEmptyCandidateSet)
	assert.Equal(t, "empty_candidate_set", Kind(err))
	require.Equal(t, 2, out.Runs)
	assert.Equal(t, 1, rec.restarts)

	first := out.Reports[0]
	require.Equal(t, Exhausted, first.Boards[0].State)
	narrowed := first.Boards[0].Candidates
	require.Len(t, narrowed, 3)

	budget := game.Termo.MaxAttempts()
	require.Len(t, rec.submitted, budget+3)
	assert.Contains(t, narrowed, rec.submitted[budget], "warm run opens from the narrowed set")
	assert.NotEqual(t, game.OpeningWord, rec.submitted[budget])
	assert.ElementsMatch(t, narrowed, rec.submitted[budget:])
}

func TestSolve_MultiBoardRetriesCold(t *testing.T) {
	d := mustDict(t, orteDict...)
	rec := newRecorder(t, game.Dueto, "zorte", "zorte")
	s := newSolver(t, rec, d, 8, 1)

	out, err := s.Solve(context.Background(), game.Dueto)

	require.ErrorIs(t, err, ErrRetriesExhausted)
	assert.Equal(t, 2, out.Runs)
	assert.Equal(t, 1, rec.restarts)
	assert.Empty(t, out.Result)

	budget := game.Dueto.MaxAttempts()
	require.Len(t, rec.submitted, 2*budget)
	assert.Equal(t, game.OpeningWord, rec.submitted[0])
	assert.Equal(t, game.OpeningWord, rec.submitted[budget], "cold run opens with the opening word")

	for _, rep := range out.Reports {
		assert.Equal(t, Exhausted, rep.Boards[0].State)
		assert.Equal(t, Exhausted, rep.Boards[1].State)
		assert.Len(t, rep.Boards[1].Rows, budget, "board 1 replays every row of board 0")
	}
}

type brokenSubmitter struct{ *game.Puzzle }

func (brokenSubmitter) Submit(context.Context, string) error { return errors.New("browser gone") }

type shortObserver struct{ *game.Puzzle }

func (o shortObserver) ObserveRow(ctx context.Context, board, row int) (game.RawRow, error) {
	raw, err := o.Puzzle.ObserveRow(ctx, board, row)
	if err != nil {
		return nil, err
	}
	return raw[:4], nil
}

func TestSolve_PropagatesFatalErrors(t *testing.T) {
	d := mustDict(t, distinctDict...)
	p, err := game.NewPuzzle(game.Termo, "corte")
	require.NoError(t, err)

	tests := []struct {
		name string
		c    Collaborator
		want error
		kind string
	}{
		{"submit fails", brokenSubmitter{p}, ErrCollaboratorUnavailable, "collaborator_unavailable"},
		{"short row", shortObserver{p}, ErrMalformedObservation, "malformed_observation"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, p.NewGame(context.Background()))
			s := newSolver(t, tt.c, d, 1, -1)

			out, err := s.Solve(context.Background(), game.Termo)
			require.ErrorIs(t, err, tt.want)
			assert.Equal(t, tt.kind, Kind(err))
			assert.Equal(t, 1, out.Runs, "fatal errors are not retried")
		})
	}
}

func TestSolve_Canceled(t *testing.T) {
	d := mustDict(t, distinctDict...)
	rec := newRecorder(t, game.Termo, "corte")
	s := newSolver(t, rec, d, 1, 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Solve(ctx, game.Termo)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, "canceled", Kind(err))
	assert.Empty(t, rec.submitted)
}

func TestNew_Validation(t *testing.T) {
	d := mustDict(t, distinctDict...)
	_, err := New(nil, Options{Dictionary: d})
	assert.Error(t, err)

	p, err := game.NewPuzzle(game.Termo, "corte")
	require.NoError(t, err)
	_, err = New(p, Options{})
	assert.Error(t, err)

	s, err := New(p, Options{Dictionary: d, MaxRetries: -1})
	require.NoError(t, err)
	assert.Equal(t, DefaultMaxRetries, s.maxRetries)

	s, err = New(p, Options{Dictionary: d, Selector: NewSelector(nil, " CORTE ")})
	require.NoError(t, err)
	assert.Equal(t, 0, s.maxRetries)
	assert.Equal(t, "corte", s.sel.Opening())

	for _, opening := range []string{"abc", "corte1", "sexteto"} {
		_, err = New(p, Options{Dictionary: d, Selector: NewSelector(nil, opening)})
		assert.ErrorIs(t, err, ErrInvalidOpening, opening)
	}
}

func TestSolve_ZeroRetriesStopsAfterFirstRun(t *testing.T) {
	d := mustDict(t, orteDict...)
	rec := newRecorder(t, game.Termo, "zorte")
	s := newSolver(t, rec, d, 8, 0)

	out, err := s.Solve(context.Background(), game.Termo)

	require.ErrorIs(t, err, ErrRetriesExhausted)
	assert.Equal(t, 1, out.Runs)
	assert.Equal(t, 0, rec.restarts)
	assert.Len(t, rec.submitted, game.Termo.MaxAttempts())
}

func TestKind(t *testing.T) {
	assert.Equal(t, "", Kind(nil))
	assert.Equal(t, "internal", Kind(errors.New("x")))
	assert.Equal(t, "retries_exhausted", Kind(ErrRetriesExhausted))
}
