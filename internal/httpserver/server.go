// internal/httpserver/server.go
//
// HTTP server wiring for the solver.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/variants".
//   - Auth endpoints: POST /auth/login, POST /auth/logout.
//   - Solve endpoints (require auth): POST /solve, POST /daily/{variant}.
//   - Run history (require auth): GET /runs, GET /runs/{id}.
//
// Solves run against simulated puzzles through a runner.Runner, which
// records each one in the run history.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/termo-solver/internal/game"
	"github.com/robalobadob/termo-solver/internal/runner"
	"github.com/robalobadob/termo-solver/internal/store"
)

// Options configure a Server.
type Options struct {
	Runner            *runner.Runner // required
	Store             store.Store    // required; the runner's history
	JWTSecret         string
	JWTExpiresDays    int
	AdminPasswordHash string // bcrypt; empty disables login
	SecureCookies     bool
	ClientOrigin      string
	DailySalt         string
	Now               func() time.Time
}

// Server bundles router, runner and run history.
type Server struct {
	r    *chi.Mux
	opts Options
}

// New constructs a Server, installs middleware, and registers routes.
func New(opts Options) *Server {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.JWTExpiresDays <= 0 {
		opts.JWTExpiresDays = 14
	}
	s := &Server{r: chi.NewRouter(), opts: opts}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(requestLogger)                   // one log line per request
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(60 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(cors(opts.ClientOrigin))         // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"service":"termo-solver","endpoints":["/health","/variants","POST /auth/login","POST /solve","POST /daily/{variant}","/runs"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/variants", s.handleVariants)
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]int{"words": s.opts.Runner.Dictionary().Len()})
	})

	s.mountAuthRoutes()

	s.r.Group(func(r chi.Router) {
		r.Use(s.requireAuth())
		r.Post("/solve", s.handleSolve)
		s.mountDaily(r)
		r.Get("/runs", s.handleRuns)
		r.Get("/runs/{id}", s.handleRun)
	})

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ------------------------------ VARIANTS -----------------------------------

type variantRes struct {
	Name        string `json:"name"`
	Boards      int    `json:"boards"`
	MaxAttempts int    `json:"maxAttempts"`
	WarmRetry   bool   `json:"warmRetry"`
}

func (s *Server) handleVariants(w http.ResponseWriter, r *http.Request) {
	out := make([]variantRes, 0, len(game.Variants()))
	for _, v := range game.Variants() {
		out = append(out, variantRes{Name: v.String(), Boards: v.Boards(), MaxAttempts: v.MaxAttempts(), WarmRetry: v.WarmRetry()})
	}
	_ = json.NewEncoder(w).Encode(out)
}

// -------------------------------- RUNS -------------------------------------

func (s *Server) handleRuns(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	runs, err := s.opts.Store.Recent(r.Context(), limit)
	if err != nil {
		log.Error().Err(err).Msg("list runs")
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(runs)
}

func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	run, err := s.opts.Store.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("get run")
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(run)
}
