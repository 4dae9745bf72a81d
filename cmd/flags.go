package cmd

import (
	"log/slog"

	"github.com/marcus/stars/internal/config"
	"github.com/marcus/stars/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// addOptionFlags registers the control option flags shared by run, paint and replay.
func addOptionFlags(fs *pflag.FlagSet) {
	fs.IntP("length", "n", 0, "Number of items (default from config, else 5)")
	fs.Float64("value", 0, "Initial committed value")
	fs.Bool("half", false, "Allow half-unit ratings")
	fs.Int("cell-width", 0, "Terminal cells per item (minimum 2)")
	fs.String("title", "", "Heading shown above the items")
}

// applyOptionFlags overrides cfg with the flags set on the command line.
func applyOptionFlags(fs *pflag.FlagSet, cfg *config.Config) {
	if fs.Changed("length") {
		cfg.Length, _ = fs.GetInt("length")
	}
	if fs.Changed("value") {
		cfg.Value, _ = fs.GetFloat64("value")
	}
	if fs.Changed("half") {
		cfg.AllowHalf, _ = fs.GetBool("half")
	}
	if fs.Changed("cell-width") {
		cfg.CellWidth, _ = fs.GetInt("cell-width")
	}
	if fs.Changed("title") {
		cfg.Title, _ = fs.GetString("title")
	}
}

// loadOptions reads the config file and layers the command's flags on top.
func loadOptions(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(getBaseDir())
	if err != nil {
		return nil, err
	}
	if cfg.WrittenByNewer() {
		slog.Warn("config written by a newer version",
			"file", config.Path(getBaseDir()), "written", cfg.Version, "running", version.Current())
	}
	applyOptionFlags(cmd.Flags(), cfg)
	return cfg, nil
}
