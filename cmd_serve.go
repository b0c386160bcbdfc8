package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/termo-solver/internal/httpserver"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the solve API over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		srv := httpserver.New(httpserver.Options{
			Runner:            app.runner,
			Store:             app.store,
			JWTSecret:         cfg.Auth.JWTSecret,
			JWTExpiresDays:    cfg.Auth.JWTExpiresDays,
			AdminPasswordHash: cfg.Auth.AdminPasswordHash,
			SecureCookies:     cfg.Auth.Secure,
			ClientOrigin:      cfg.Server.ClientOrigin,
			DailySalt:         cfg.Daily.Salt,
		})
		if cfg.Auth.AdminPasswordHash == "" {
			log.Warn().Msg("ADMIN_PASSWORD_HASH not set; login is disabled")
		}
		log.Info().Str("port", cfg.Server.Port).Msg("starting termo-solver server")
		return srv.Start(":" + cfg.Server.Port)
	},
}

var hashPasswordCmd = &cobra.Command{
	Use:         "hash-password [password]",
	Short:       "Print the bcrypt hash to use as ADMIN_PASSWORD_HASH",
	Args:        cobra.MaximumNArgs(1),
	Annotations: map[string]string{"bare": "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		pw := ""
		if len(args) == 1 {
			pw = args[0]
		} else {
			line, err := bufio.NewReader(os.Stdin).ReadString('\n')
			if err != nil && line == "" {
				return fmt.Errorf("read password: %w", err)
			}
			pw = strings.TrimRight(line, "\r\n")
		}
		if pw == "" {
			return fmt.Errorf("empty password")
		}
		h, err := httpserver.HashPassword(pw)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), h)
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&cfg.Server.Port, "port", cfg.Server.Port, "listen port")
}
