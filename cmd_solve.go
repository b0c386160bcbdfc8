package main

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/termo-solver/internal/browser"
	"github.com/robalobadob/termo-solver/internal/game"
	"github.com/robalobadob/termo-solver/internal/runner"
	"github.com/robalobadob/termo-solver/internal/solver"
	"github.com/robalobadob/termo-solver/internal/store"
)

var solveCmd = &cobra.Command{
	Use:   "solve [termo|dueto|quarteto|all]",
	Short: "Solve today's game on term.ooo in a browser",
	Long: `Opens term.ooo in Chromium, plays guesses on the on-screen keyboard and
reads the tiles back until every board is solved. "all" plays termo,
dueto and quarteto in that order.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"termo", "dueto", "quarteto", "all"},
	RunE:      runSolve,
}

func init() {
	f := solveCmd.Flags()
	f.StringVar(&cfg.Browser.BaseURL, "url", cfg.Browser.BaseURL, "site base URL")
	f.BoolVar(&cfg.Browser.Headless, "headless", cfg.Browser.Headless, "run the browser without a window")
	f.StringVar(&cfg.Browser.Bin, "browser-bin", cfg.Browser.Bin, "Chromium binary (default: found or downloaded)")
	f.DurationVar(&cfg.Browser.Settle, "settle", cfg.Browser.Settle, "wait after each guess before reading tiles")
	f.DurationVar(&cfg.Browser.Timeout, "timeout", cfg.Browser.Timeout, "limit per variant")
}

func runSolve(cmd *cobra.Command, args []string) error {
	variants, err := parseVariants(args)
	if err != nil {
		return err
	}
	for _, v := range variants {
		if err := solveInBrowser(cmd.Context(), cmd.OutOrStdout(), v); err != nil {
			return err
		}
	}
	return nil
}

// parseVariants resolves the optional variant argument; none means termo.
func parseVariants(args []string) ([]game.Variant, error) {
	if len(args) == 0 {
		return []game.Variant{game.Termo}, nil
	}
	if args[0] == "all" {
		return game.Variants(), nil
	}
	v, err := game.ParseVariant(args[0])
	if err != nil {
		return nil, err
	}
	return []game.Variant{v}, nil
}

func solveInBrowser(ctx context.Context, out io.Writer, v game.Variant) error {
	ctx, cancel := context.WithTimeout(ctx, cfg.Browser.Timeout)
	defer cancel()

	d, err := browser.Open(ctx, browser.Config{
		BaseURL:  cfg.Browser.BaseURL,
		Headless: cfg.Browser.Headless,
		Bin:      cfg.Browser.Bin,
		Settle:   cfg.Browser.Settle,
	}, v)
	if err != nil {
		return err
	}
	defer func() {
		if err := d.Close(); err != nil {
			log.Warn().Err(err).Msg("close browser")
		}
	}()

	run, o, err := app.runner.Solve(ctx, d, v, cfg.Solver.Seed, runner.SourceBrowser)
	printRun(out, run, o)
	return err
}

// printRun writes a one-line summary of a finished run.
func printRun(out io.Writer, run *store.Run, o *solver.Outcome) {
	if run == nil {
		return
	}
	if run.Status == store.StatusSolved {
		fmt.Fprintf(out, "%s: %v (%d runs, %d rows)\n", run.Variant, run.Result, run.Runs, run.Rows)
		return
	}
	fmt.Fprintf(out, "%s: not solved after %d runs [%s]\n", run.Variant, run.Runs, run.ErrorKind)
	if o != nil && len(o.Reports) > 0 {
		for _, b := range o.Reports[len(o.Reports)-1].Boards {
			fmt.Fprintf(out, "  board %d: %s\n", b.Index+1, b.State)
		}
	}
}
