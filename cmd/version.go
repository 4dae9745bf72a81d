package cmd

import (
	"fmt"

	"github.com/marcus/stars/internal/version"
	"github.com/marcus/stars/pkg/rating"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "stars %s\nengine %s\n", version.Current(), rating.Version())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
