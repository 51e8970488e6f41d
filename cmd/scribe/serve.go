package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/praetorian-inc/scribe/pkg/serve"
	"github.com/spf13/cobra"
)

var serveIgnore bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run as streaming server for editor integration",
	Long: `Run Scribe as a long-lived streaming server that accepts requests
via stdin and writes responses to stdout using NDJSON format.

The editor sends an "init" request, then "check", "suggest" and "add_word"
requests as the user types. Dictionary settings the init request omits come
from the config. Every word is checked unless --ignore enables the
configured ignore rules. The process runs until stdin closes, a "close"
request arrives, or SIGTERM is received.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&serveIgnore, "ignore", false, "Skip words inside URLs, code and other configured ignore regions")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if !serveIgnore {
		cfg.Ignore.Builtin = false
		cfg.Ignore.RulesFile = ""
	}

	sess, _, err := newSession(cmd, cfg)
	if err != nil {
		return err
	}
	defer sess.Close()

	// Set up signal handling
	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := serve.NewServer(sess, cmd.InOrStdin(), cmd.OutOrStdout())
	return srv.Run(ctx)
}
