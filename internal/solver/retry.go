package solver

import (
	"context"
	"fmt"

	"github.com/robalobadob/termo-solver/internal/game"
)

// Outcome is the result of Solve across every run it made.
type Outcome struct {
	Variant game.Variant `json:"variant"`
	Result  []string     `json:"result"`
	Runs    int          `json:"runs"`
	Reports []*Report    `json:"reports"`
}

// Rows is the number of words submitted across all runs.
func (o *Outcome) Rows() int {
	n := 0
	for _, r := range o.Reports {
		n += len(r.Played)
	}
	return n
}

// Solve plays v until every board is solved or the retry budget is spent.
//
// A failed single-board run retries warm: the next run keeps the narrowed
// candidates and opens with a random one of them. Multi-board runs retry
// cold from the full dictionary and the opening word.
//
// The returned Outcome is never nil; on error it holds the runs made so far.
func (s *Solver) Solve(ctx context.Context, v game.Variant) (*Outcome, error) {
	out := &Outcome{Variant: v, Result: []string{}}
	start := s.ColdStart()

	for {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		if out.Runs > 0 {
			if r, ok := s.c.(Restarter); ok {
				if err := r.NewGame(ctx); err != nil {
					return out, fmt.Errorf("%w: new game: %w", ErrCollaboratorUnavailable, err)
				}
			}
		}
		out.Runs++

		rep, err := s.Play(ctx, v, start)
		out.Reports = append(out.Reports, rep)
		if err != nil {
			return out, err
		}
		if rep.Solved() {
			out.Result = rep.Result
			s.log.Info().Str("variant", v.String()).Strs("words", rep.Result).Int("runs", out.Runs).Msg("game solved")
			return out, nil
		}
		if out.Runs > s.maxRetries {
			return out, fmt.Errorf("%w: %s unsolved after %d runs", ErrRetriesExhausted, v, out.Runs)
		}

		s.log.Warn().
			Str("variant", v.String()).
			Int("solved", len(rep.Result)).
			Int("boards", v.Boards()).
			Int("run", out.Runs).
			Msg("no full solution, trying again")

		if v.WarmRetry() {
			start, err = s.WarmStart(rep.Boards[0].Candidates)
			if err != nil {
				return out, fmt.Errorf("warm retry: %w", err)
			}
			continue
		}
		start = s.ColdStart()
	}
}
