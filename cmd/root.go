package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/marcus/stars/internal/version"
	"github.com/marcus/stars/internal/workdir"
	"github.com/spf13/cobra"
)

var (
	baseDir string
	logOut  io.Closer
)

// SetVersion sets the version string
func SetVersion(v string) {
	version.Set(v)
}

var rootCmd = &cobra.Command{
	Use:   "stars",
	Short: "Star-rating control for the terminal",
	Long: `stars - an N-item rating control with whole or half-unit precision.

Hover to preview, click to commit. Use 'stars run' for the interactive control,
'stars paint' for static output and 'stars replay' to script pointer events.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logOut != nil {
			logOut.Close()
			logOut = nil
		}
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initBaseDir)

	rootCmd.PersistentFlags().String("log-file", "", "Write JSON logs to this file")
	rootCmd.PersistentFlags().Bool("debug", false, "Log at debug level")
}

func initBaseDir() {
	var err error
	baseDir, err = os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot determine working directory: %v\n", err)
		os.Exit(1)
	}
	baseDir = workdir.ResolveBaseDir(baseDir)
}

// getBaseDir returns the directory holding .stars/config.json
func getBaseDir() string {
	return baseDir
}

// setupLogging installs the default slog logger. Logs go to --log-file when
// set, otherwise to stderr at warn level.
func setupLogging(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("log-file")
	debug, _ := cmd.Flags().GetBool("debug")

	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}

	var w io.Writer = os.Stderr
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		w, logOut = f, f
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})))
	return nil
}
