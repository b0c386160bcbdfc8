package solver

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/robalobadob/termo-solver/internal/game"
)

// Report is the outcome of one game session.
type Report struct {
	Variant game.Variant `json:"variant"`
	Boards  []Board      `json:"boards"`
	Result  []string     `json:"result"` // solved words in board order; exhausted boards add nothing
	Played  []string     `json:"played"` // every submitted word, one per row
}

// Solved reports whether every board of the variant was solved.
func (r *Report) Solved() bool { return len(r.Result) == r.Variant.Boards() }

// session is the state of one Play call.
type session struct {
	*Solver
	variant game.Variant
	played  []string
	log     zerolog.Logger
}

// Play runs one game session: board 0 from start, then each remaining
// board seeded from the rows already played.
func (s *Solver) Play(ctx context.Context, v game.Variant, start Start) (*Report, error) {
	ss := &session{
		Solver:  s,
		variant: v,
		log:     s.log.With().Str("variant", v.String()).Logger(),
	}
	rep := &Report{Variant: v, Boards: make([]Board, v.Boards()), Result: []string{}}
	defer func() { rep.Played = ss.played }()

	for k := range rep.Boards {
		b := &rep.Boards[k]
		b.Index = k
		ss.log.Info().Int("board", k+1).Int("of", v.Boards()).Msg("starting board")

		next := start
		if k > 0 {
			if err := ss.seed(ctx, b); err != nil {
				return rep, err
			}
			if b.State == Solved {
				ss.log.Info().Int("board", k+1).Str("word", b.Answer).Msg("board solved by earlier row")
				continue
			}
			next = Start{Candidates: b.Candidates}
		}
		if err := ss.solveBoard(ctx, b, next); err != nil {
			return rep, err
		}
	}

	for _, b := range rep.Boards {
		if b.State == Solved {
			rep.Result = append(rep.Result, b.Answer)
		}
	}
	return rep, nil
}

// seed rebuilds b's candidates from its own clues for every row played so
// far. The boards share keystrokes, not answers, so board 0's candidates
// say nothing about b.
func (ss *session) seed(ctx context.Context, b *Board) error {
	b.Candidates = ss.dict.Words()
	for row, word := range ss.played {
		clue, err := ss.observe(ctx, b.Index, row)
		if err != nil {
			return err
		}
		b.Rows = append(b.Rows, Row{Word: word, Clue: clue})
		if clue.Solved() {
			b.State = Solved
			b.Answer = word
			return nil
		}
		b.Candidates = Filter(clue, b.Candidates)
	}
	ss.log.Debug().
		Int("board", b.Index+1).
		Int("rows", len(ss.played)).
		Int("candidates", len(b.Candidates)).
		Msg("seeded board")
	return nil
}

func (ss *session) submit(ctx context.Context, word string) error {
	if err := ss.c.Submit(ctx, word); err != nil {
		return fmt.Errorf("%w: submit %q: %w", ErrCollaboratorUnavailable, word, err)
	}
	ss.played = append(ss.played, word)
	return nil
}

func (ss *session) observe(ctx context.Context, board, row int) (game.Clue, error) {
	raw, err := ss.c.ObserveRow(ctx, board, row)
	if err != nil {
		return game.Clue{}, fmt.Errorf("%w: board %d row %d: %w", ErrCollaboratorUnavailable, board+1, row+1, err)
	}
	clue, err := Interpret(raw)
	if err != nil {
		return game.Clue{}, fmt.Errorf("board %d row %d: %w", board+1, row+1, err)
	}
	return clue, nil
}
