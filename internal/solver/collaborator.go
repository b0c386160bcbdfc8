package solver

import (
	"context"

	"github.com/robalobadob/termo-solver/internal/game"
)

// Submitter types a word and confirms it, blocking until the game has
// settled enough to be observed.
type Submitter interface {
	Submit(ctx context.Context, word string) error
}

// Observer reads the raw tiles of one played row on one board.
type Observer interface {
	ObserveRow(ctx context.Context, board, row int) (game.RawRow, error)
}

// Collaborator is everything the solver needs from the game it plays.
type Collaborator interface {
	Submitter
	Observer
}

// Restarter is implemented by collaborators that can reset the game
// between runs. Solve calls it before every retry.
type Restarter interface {
	NewGame(ctx context.Context) error
}
