// internal/httpserver/routes_daily.go
//
// POST /daily/{variant} solves today's simulated daily puzzle.
// The answers are derived from the UTC date and DAILY_SALT, so every call
// on the same day plays the same hidden words.

package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/termo-solver/internal/daily"
	"github.com/robalobadob/termo-solver/internal/game"
	"github.com/robalobadob/termo-solver/internal/runner"
)

// mountDaily registers the /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	r.Post("/daily/{variant}", s.handleDaily)
}

func (s *Server) handleDaily(w http.ResponseWriter, r *http.Request) {
	v, err := game.ParseVariant(chi.URLParam(r, "variant"))
	if err != nil {
		http.Error(w, `{"error":"unknown_variant"}`, http.StatusBadRequest)
		return
	}
	answers, err := daily.Answers(s.opts.Now(), s.opts.DailySalt, s.opts.Runner.Dictionary().Words(), v.Boards())
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
		return
	}
	run, out, err := s.opts.Runner.Simulate(r.Context(), v, answers, 0, runner.SourceDaily)
	s.writeSolve(w, run, out, err)
}
