// main.go
//
// Entry point for the termo-solver CLI.
// Responsibilities:
//   - Load .env + environment configuration.
//   - Configure zerolog (level, console or JSON output).
//   - Open the word list and run history shared by every command.
//   - Dispatch to the cobra commands: solve, simulate, serve, hash-password.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/termo-solver/internal/config"
	"github.com/robalobadob/termo-solver/internal/runner"
	"github.com/robalobadob/termo-solver/internal/store"
	"github.com/robalobadob/termo-solver/internal/words"
)

var cfg = config.Load()

// app holds what PersistentPreRunE opened for the running command.
var app struct {
	dict   *words.Dictionary
	store  store.Store
	runner *runner.Runner
}

var rootCmd = &cobra.Command{
	Use:           "termo-solver",
	Short:         "Solve the term.ooo word games (termo, dueto, quarteto)",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogging(cfg.Log)
		if cmd.Annotations["bare"] != "" {
			return nil
		}
		return openApp()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if app.store != nil {
			return app.store.Close()
		}
		return nil
	},
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVar(&cfg.Log.Level, "log-level", cfg.Log.Level, "trace|debug|info|warn|error")
	f.StringVar(&cfg.Log.Format, "log-format", cfg.Log.Format, "console or json")
	f.StringVar(&cfg.Solver.WordsFile, "words", cfg.Solver.WordsFile, "word list file (default: embedded list)")
	f.StringVar(&cfg.Solver.OpeningWord, "opening", cfg.Solver.OpeningWord, "first guess of a fresh run")
	f.IntVar(&cfg.Solver.MaxRetries, "max-retries", cfg.Solver.MaxRetries, "extra runs after a failed one (0: none, -1: default)")
	f.Uint64Var(&cfg.Solver.Seed, "seed", cfg.Solver.Seed, "random seed (0: random)")
	f.StringVar(&cfg.Server.DBPath, "db", cfg.Server.DBPath, "SQLite run history (default: in memory)")

	rootCmd.AddCommand(solveCmd, simulateCmd, serveCmd, hashPasswordCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("termo-solver failed")
		stop()
		os.Exit(1)
	}
}

// setupLogging applies LOG_LEVEL and LOG_FORMAT to the global logger.
func setupLogging(c config.LogConfig) {
	if lvl, err := zerolog.ParseLevel(c.Level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if c.Format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
	}
}

func openApp() error {
	dict, err := words.Open(cfg.Solver.WordsFile)
	if err != nil {
		return err
	}
	st, err := store.Open(cfg.Server.DBPath)
	if err != nil {
		return err
	}
	rn, err := runner.New(runner.Options{
		Dictionary:  dict,
		Store:       st,
		OpeningWord: cfg.Solver.OpeningWord,
		MaxRetries:  cfg.Solver.MaxRetries,
		Logger:      &log.Logger,
	})
	if err != nil {
		_ = st.Close()
		return err
	}
	app.dict, app.store, app.runner = dict, st, rn
	log.Debug().Int("words", dict.Len()).Str("db", cfg.Server.DBPath).Msg("ready")
	return nil
}
