package main

import (
	"fmt"
	"io"

	"github.com/praetorian-inc/scribe/pkg/config"
	"github.com/praetorian-inc/scribe/pkg/session"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
	quiet      bool
)

var rootCmd = &cobra.Command{
	Use:   "scribe",
	Short: "Scribe - spell checking for editors and the command line",
	Long: `Scribe finds misspelled words in text and reports their positions in
UTF-16 code units, the way editors index their buffers.

It checks files and directories from the command line, or runs as a
long-lived server that an editor drives over stdin/stdout.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default ./"+config.DefaultPath+" if present)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode (errors only)")

	// Add subcommands
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(wordsCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads the file named by --config, or the default file.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// writerLogger writes debug lines to a writer, usually stderr.
type writerLogger struct {
	w io.Writer
}

func (l writerLogger) Log(format string, args ...interface{}) {
	fmt.Fprintf(l.w, "[debug] "+format+"\n", args...)
}

// newLogger returns a stderr logger under --verbose.
func newLogger(cmd *cobra.Command) session.DebugLogger {
	if !verbose {
		return session.NoopLogger{}
	}
	return writerLogger{w: cmd.ErrOrStderr()}
}
