package solver

import (
	"context"
	"errors"
)

// Error kinds surfaced by Solve. Exhausted boards are not errors; they
// trigger a retry instead.
var (
	ErrMalformedObservation    = errors.New("malformed observation")
	ErrEmptyCandidateSet       = errors.New("empty candidate set")
	ErrCollaboratorUnavailable = errors.New("collaborator unavailable")
	ErrRetriesExhausted        = errors.New("retries exhausted")
)

// ErrInvalidOpening is returned by New when the opening word is not a
// 5-letter a–z word after folding.
var ErrInvalidOpening = errors.New("invalid opening word")

// Kind maps err to a stable name for logs, stored runs and API responses.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMalformedObservation):
		return "malformed_observation"
	case errors.Is(err, ErrEmptyCandidateSet):
		return "empty_candidate_set"
	case errors.Is(err, ErrRetriesExhausted):
		return "retries_exhausted"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	case errors.Is(err, ErrCollaboratorUnavailable):
		return "collaborator_unavailable"
	default:
		return "internal"
	}
}
