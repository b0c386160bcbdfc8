// Package store keeps a history of solve runs.
//
// The history is an audit log: the solver never reads it back, so nothing
// learned in one process influences the next.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/robalobadob/termo-solver/internal/game"
	"github.com/robalobadob/termo-solver/internal/solver"
)

// DefaultLimit is used by Recent when limit <= 0.
const DefaultLimit = 20

// ErrNotFound is returned by Get for unknown IDs.
var ErrNotFound = errors.New("not found")

// Run statuses.
const (
	StatusSolved = "solved"
	StatusFailed = "failed"
)

// Run is one Solve call as recorded in the history.
type Run struct {
	ID         string    `json:"id"`
	Variant    string    `json:"variant"`
	Source     string    `json:"source"` // browser | simulated | daily
	Status     string    `json:"status"`
	Result     []string  `json:"result"`
	Runs       int       `json:"runs"`
	Rows       int       `json:"rows"`
	ErrorKind  string    `json:"errorKind,omitempty"`
	Error      string    `json:"error,omitempty"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
}

// Store defines the persistence interface for runs.
type Store interface {
	// Save persists or replaces a run.
	Save(ctx context.Context, r *Run) error

	// Get retrieves a run by ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*Run, error)

	// Recent lists the latest runs, newest first.
	Recent(ctx context.Context, limit int) ([]Run, error)

	Close() error
}

// NewRun builds the history entry for a finished Solve call.
func NewRun(v game.Variant, source string, started time.Time, out *solver.Outcome, err error) *Run {
	r := &Run{
		ID:         uuid.NewString(),
		Variant:    v.String(),
		Source:     source,
		Status:     StatusSolved,
		Result:     []string{},
		StartedAt:  started.UTC(),
		FinishedAt: time.Now().UTC(),
	}
	if out != nil {
		r.Result = append(r.Result, out.Result...)
		r.Runs = out.Runs
		r.Rows = out.Rows()
	}
	if err != nil {
		r.Status = StatusFailed
		r.ErrorKind = solver.Kind(err)
		r.Error = err.Error()
	}
	return r
}

// Open returns a SQLite store for dsn, or a memory store when dsn is empty.
func Open(dsn string) (Store, error) {
	if dsn == "" {
		return NewMemoryStore(), nil
	}
	return OpenSQLite(dsn)
}
