package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/stars/pkg/widget"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var errNotTerminal = errors.New("stars run needs an interactive terminal; use 'stars paint' for static output")

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the interactive rating control",
	Long: `Open the rating control in the terminal. Hover over the items to preview a
rating and click to commit it. The committed value is printed on exit.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return errNotTerminal
		}

		cfg, err := loadOptions(cmd)
		if err != nil {
			return err
		}

		// The screen belongs to the program; keep logs off stderr unless a
		// file was requested.
		logger := slog.Default()
		if path, _ := cmd.Flags().GetString("log-file"); path == "" {
			logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
		}

		m, err := widget.New(cfg.RatingOptions(), append(cfg.WidgetOptions(), widget.WithLogger(logger))...)
		if err != nil {
			return err
		}

		p := tea.NewProgram(m,
			tea.WithContext(cmd.Context()),
			tea.WithAltScreen(),
			tea.WithMouseAllMotion(),
		)
		final, err := p.Run()
		if err != nil {
			return fmt.Errorf("run rating control: %w", err)
		}

		if fm, ok := final.(widget.Model); ok {
			fmt.Fprintln(cmd.OutOrStdout(), widget.FormatValue(fm.Value()))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	addOptionFlags(runCmd.Flags())
}
