package solver

import (
	"context"
	"fmt"

	"github.com/robalobadob/termo-solver/internal/game"
)

// BoardState is the position of a board in its attempt loop.
type BoardState int

const (
	Idle BoardState = iota
	AwaitingFeedback
	Solved
	Exhausted
)

func (s BoardState) String() string {
	switch s {
	case Idle:
		return "idle"
	case AwaitingFeedback:
		return "awaiting_feedback"
	case Solved:
		return "solved"
	case Exhausted:
		return "exhausted"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// MarshalText encodes the state by name.
func (s BoardState) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Row is one played guess and the clue a board gave for it.
type Row struct {
	Word string    `json:"word"`
	Clue game.Clue `json:"clue"`
}

// Board is the record of one board within a session.
type Board struct {
	Index      int        `json:"index"`
	Rows       []Row      `json:"rows"`
	State      BoardState `json:"state"`
	Answer     string     `json:"answer,omitempty"`
	Candidates []string   `json:"-"`
}

// solveBoard runs the attempt loop for b from the session's current row.
func (ss *session) solveBoard(ctx context.Context, b *Board, start Start) error {
	logger := ss.log.With().Int("board", b.Index+1).Logger()
	b.Candidates = start.Candidates
	guess := start.Opening

	for row := len(ss.played); row < ss.variant.MaxAttempts(); row++ {
		b.State = Idle
		if guess == "" {
			w, err := ss.sel.Select(b.Candidates, false)
			if err != nil {
				return fmt.Errorf("board %d row %d: %w", b.Index+1, row+1, err)
			}
			guess = w
		}

		logger.Info().Int("row", row+1).Str("guess", guess).Msg("trying word")
		if err := ss.submit(ctx, guess); err != nil {
			return err
		}
		b.State = AwaitingFeedback

		clue, err := ss.observe(ctx, b.Index, row)
		if err != nil {
			return err
		}
		b.Rows = append(b.Rows, Row{Word: guess, Clue: clue})
		if clue.Solved() {
			b.State = Solved
			b.Answer = guess
			logger.Info().Str("word", guess).Int("rows", row+1).Msg("board solved")
			return nil
		}

		before := len(b.Candidates)
		b.Candidates = Filter(clue, b.Candidates)
		logger.Debug().
			Str("clue", clue.String()).
			Int("before", before).
			Int("after", len(b.Candidates)).
			Msg("filtered candidates")
		guess = ""
	}

	b.State = Exhausted
	logger.Warn().Int("remaining", len(b.Candidates)).Msg("board exhausted")
	return nil
}
