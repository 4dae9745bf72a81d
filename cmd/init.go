package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/marcus/stars/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .stars/config.json interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(getBaseDir())
		if err != nil {
			return err
		}

		a := newInitAnswers(cfg)
		if err := a.form().Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}
		if err := a.applyTo(cfg); err != nil {
			return err
		}

		if err := config.Save(getBaseDir(), cfg); err != nil {
			return fmt.Errorf("save config: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", config.Path(getBaseDir()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

// initLengths are the item counts offered by the init form.
var initLengths = []int{3, 5, 7, 10}

// initAnswers holds the form fields; value and cell width are typed as text.
type initAnswers struct {
	length    int
	half      bool
	value     string
	cellWidth string
	title     string
}

func newInitAnswers(cfg *config.Config) *initAnswers {
	return &initAnswers{
		length:    cfg.Length,
		half:      cfg.AllowHalf,
		value:     strconv.FormatFloat(cfg.Value, 'f', -1, 64),
		cellWidth: strconv.Itoa(cfg.CellWidth),
		title:     cfg.Title,
	}
}

func (a *initAnswers) form() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("How many items?").
				Options(huh.NewOptions(initLengths...)...).
				Value(&a.length),
			huh.NewConfirm().
				Title("Allow half ratings?").
				Value(&a.half),
			huh.NewInput().
				Title("Initial value").
				Value(&a.value).
				Validate(a.validateValue),
			huh.NewInput().
				Title("Cells per item").
				Value(&a.cellWidth).
				Validate(validateCellWidth),
			huh.NewInput().
				Title("Title").
				Placeholder("Rate it").
				Value(&a.title),
		),
	)
}

func (a *initAnswers) validateValue(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return errors.New("enter a number")
	}
	if v < 0 || v > float64(a.length) {
		return fmt.Errorf("must be between 0 and %d", a.length)
	}
	step := 1.0
	if a.half {
		step = 0.5
	}
	if v/step != float64(int(v/step)) {
		if a.half {
			return errors.New("must be a multiple of 0.5")
		}
		return errors.New("must be a whole number")
	}
	return nil
}

func validateCellWidth(s string) error {
	w, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || w < 2 {
		return errors.New("enter a whole number of at least 2")
	}
	return nil
}

func (a *initAnswers) applyTo(cfg *config.Config) error {
	if err := a.validateValue(a.value); err != nil {
		return fmt.Errorf("initial value: %w", err)
	}
	if err := validateCellWidth(a.cellWidth); err != nil {
		return fmt.Errorf("cells per item: %w", err)
	}
	cfg.Length = a.length
	cfg.AllowHalf = a.half
	cfg.Value, _ = strconv.ParseFloat(strings.TrimSpace(a.value), 64)
	cfg.CellWidth, _ = strconv.Atoi(strings.TrimSpace(a.cellWidth))
	cfg.Title = strings.TrimSpace(a.title)
	return nil
}
