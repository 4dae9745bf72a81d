package cmd

import (
	"fmt"
	"io"

	"github.com/marcus/stars/internal/config"
	"github.com/marcus/stars/pkg/rating"
	"github.com/marcus/stars/pkg/widget"
	"github.com/spf13/cobra"
)

var paintCmd = &cobra.Command{
	Use:   "paint",
	Short: "Print the control as painted for a value",
	Example: `  stars paint --half --value 3.5
  stars paint -n 10 --value 7 --plain`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadOptions(cmd)
		if err != nil {
			return err
		}
		plain, _ := cmd.Flags().GetBool("plain")
		return paint(cmd.OutOrStdout(), cfg, plain)
	},
}

func init() {
	rootCmd.AddCommand(paintCmd)
	addOptionFlags(paintCmd.Flags())
	paintCmd.Flags().Bool("plain", false, "Print F/H/O letters instead of glyphs")
}

// paint builds a control from cfg and prints its initial paint.
func paint(w io.Writer, cfg *config.Config, plain bool) error {
	buf := rating.NewBuffer()
	r, err := rating.New(buf, cfg.RatingOptions())
	if err != nil {
		return err
	}

	states := buf.States()
	if plain {
		fmt.Fprintf(w, "%s %s/%d\n", rating.Letters(states), widget.FormatValue(r.Value()), r.Len())
		return nil
	}
	fmt.Fprintf(w, "%s %s\n",
		widget.RenderStrip(states, cfg.Glyphs, cfg.CellWidth, false),
		widget.StatusStyle.Render(widget.FormatValue(r.Value())+"/"+fmt.Sprint(r.Len())))
	return nil
}
