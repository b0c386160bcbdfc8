package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/robalobadob/termo-solver/internal/daily"
	"github.com/robalobadob/termo-solver/internal/game"
	"github.com/robalobadob/termo-solver/internal/runner"
)

var (
	simAnswers []string
	simDaily   bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <termo|dueto|quarteto>",
	Short: "Solve an in-memory puzzle",
	Long: `Plays against a simulated puzzle that labels its tiles like term.ooo.
Answers come from --answers, from --daily (today's deterministic words) or
are drawn at random from the word list.`,
	Example: `  termo-solver simulate termo --answers corte --seed 7
  termo-solver simulate quarteto --daily`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := game.ParseVariant(args[0])
		if err != nil {
			return err
		}
		source := runner.SourceSimulated
		answers := simAnswers
		if simDaily {
			answers, err = daily.Answers(time.Now(), cfg.Daily.Salt, app.dict.Words(), v.Boards())
			if err != nil {
				return err
			}
			source = runner.SourceDaily
		}
		run, out, err := app.runner.Simulate(cmd.Context(), v, answers, cfg.Solver.Seed, source)
		printRun(cmd.OutOrStdout(), run, out)
		return err
	},
}

func init() {
	simulateCmd.Flags().StringSliceVar(&simAnswers, "answers", nil, "hidden words, one per board")
	simulateCmd.Flags().BoolVar(&simDaily, "daily", false, "use today's daily words")
	simulateCmd.MarkFlagsMutuallyExclusive("answers", "daily")
}
