package cmd

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

//go:embed guide.md
var guideMarkdown string

var guideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Show the usage guide",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		style, _ := cmd.Flags().GetString("style")
		if style == "" {
			style = guideStyle(term.IsTerminal(int(os.Stdout.Fd())))
		}
		out, err := glamour.Render(guideMarkdown, style)
		if err != nil {
			return fmt.Errorf("render guide: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(guideCmd)
	guideCmd.Flags().String("style", "", "Glamour style (dark, light, notty); detected when empty")
}

func guideStyle(isTerminal bool) string {
	if isTerminal {
		return "dark"
	}
	return "notty"
}
