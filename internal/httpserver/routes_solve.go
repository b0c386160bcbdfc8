// internal/httpserver/routes_solve.go
//
// POST /solve runs the solver against a simulated puzzle.
//   - variant: termo | dueto | quarteto (required)
//   - answers: one word per board; omitted → random dictionary words
//   - seed:    fixes answers and guesses; 0 → random
//
// An unsolved game is still a 200: the run record carries status "failed"
// and the error kind.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/termo-solver/internal/game"
	"github.com/robalobadob/termo-solver/internal/runner"
	"github.com/robalobadob/termo-solver/internal/solver"
	"github.com/robalobadob/termo-solver/internal/store"
)

type solveReq struct {
	Variant string   `json:"variant"`
	Answers []string `json:"answers"`
	Seed    uint64   `json:"seed"`
}

type solveRes struct {
	Run    *store.Run     `json:"run"`
	Boards []solver.Board `json:"boards"` // boards of the last run
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var body solveReq
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, `{"error":"invalid_json"}`, http.StatusBadRequest)
		return
	}
	v, err := game.ParseVariant(body.Variant)
	if err != nil {
		http.Error(w, `{"error":"unknown_variant"}`, http.StatusBadRequest)
		return
	}
	if len(body.Answers) > 0 && len(body.Answers) != v.Boards() {
		http.Error(w, `{"error":"answers_mismatch"}`, http.StatusBadRequest)
		return
	}
	for _, a := range body.Answers {
		if !s.opts.Runner.Dictionary().Contains(a) {
			http.Error(w, `{"error":"answer_not_in_dictionary"}`, http.StatusBadRequest)
			return
		}
	}

	run, out, err := s.opts.Runner.Simulate(r.Context(), v, body.Answers, body.Seed, runner.SourceSimulated)
	s.writeSolve(w, run, out, err)
}

// writeSolve renders the outcome of a runner call.
func (s *Server) writeSolve(w http.ResponseWriter, run *store.Run, out *solver.Outcome, err error) {
	if run == nil {
		log.Error().Err(err).Msg("solve setup")
		if errors.Is(err, game.ErrInvalidGuess) {
			http.Error(w, `{"error":"invalid_answer"}`, http.StatusBadRequest)
			return
		}
		http.Error(w, `{"error":"internal"}`, http.StatusInternalServerError)
		return
	}
	if err != nil {
		log.Warn().Err(err).Str("run", run.ID).Str("kind", run.ErrorKind).Msg("solve failed")
	}
	res := solveRes{Run: run, Boards: []solver.Board{}}
	if out != nil && len(out.Reports) > 0 {
		res.Boards = out.Reports[len(out.Reports)-1].Boards
	}
	_ = json.NewEncoder(w).Encode(res)
}
