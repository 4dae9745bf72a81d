package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/marcus/stars/internal/version"
	"github.com/marcus/stars/pkg/rating"
	"github.com/marcus/stars/pkg/widget"
)

const configFile = ".stars/config.json"

// Config holds the persisted control options. Zero fields fall back to the
// rating and widget defaults.
type Config struct {
	Version   string        `json:"version,omitempty"`
	Length    int           `json:"length,omitempty"`
	Value     float64       `json:"value,omitempty"`
	AllowHalf bool          `json:"allow_half,omitempty"`
	CellWidth int           `json:"cell_width,omitempty"`
	Title     string        `json:"title,omitempty"`
	Glyphs    widget.Glyphs `json:"glyphs"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	d := rating.DefaultOptions()
	return &Config{
		Length:    d.Length,
		CellWidth: 2,
		Glyphs:    widget.DefaultGlyphs(),
	}
}

// Path returns the config file location under baseDir.
func Path(baseDir string) string {
	return filepath.Join(baseDir, configFile)
}

// Load reads the config from disk
func Load(baseDir string) (*Config, error) {
	data, err := os.ReadFile(Path(baseDir))
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", configFile, err)
	}

	return cfg, nil
}

// Save writes the config to disk, stamped with the running version
func Save(baseDir string, cfg *Config) error {
	configPath := Path(baseDir)

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	cfg.Version = version.Current()
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// WrittenByNewer reports whether the file was saved by a newer release than
// the one running.
func (c *Config) WrittenByNewer() bool {
	return c.Version != "" && version.IsNewer(c.Version, version.Current())
}

// RatingOptions returns the construction options for the core control.
func (c *Config) RatingOptions() rating.Options {
	return rating.Options{
		Value:     c.Value,
		Length:    c.Length,
		AllowHalf: c.AllowHalf,
	}
}

// WidgetOptions returns the presentation options for the terminal widget.
func (c *Config) WidgetOptions() []widget.Option {
	opts := []widget.Option{
		widget.WithGlyphs(c.Glyphs),
		widget.WithCellWidth(c.CellWidth),
	}
	if c.Title != "" {
		opts = append(opts, widget.WithTitle(c.Title))
	}
	return opts
}
