package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/marcus/stars/internal/config"
	"github.com/marcus/stars/pkg/rating"
	"github.com/marcus/stars/pkg/widget"
	"github.com/spf13/cobra"
)

// replayCell is the width of one item in replayed events.
const replayCell = 2.0

var replayCmd = &cobra.Command{
	Use:   "replay EVENT...",
	Short: "Feed a scripted sequence of pointer events to the control",
	Long: `Replay pointer events and print the item strip after each one.

Events:
  enter:N[L|R]   pointer enters item N, left or right half (default right)
  move:N[L|R]    pointer moves within item N
  click:N[L|R]   click on item N
  leave          pointer leaves the control`,
	Example: `  stars replay --half --value 1 enter:2L move:4R click:4R leave`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		steps, err := parseSteps(args)
		if err != nil {
			return err
		}
		cfg, err := loadOptions(cmd)
		if err != nil {
			return err
		}
		jsonOutput, _ := cmd.Flags().GetBool("json")
		return replay(cmd.OutOrStdout(), cfg, steps, jsonOutput)
	},
}

func init() {
	rootCmd.AddCommand(replayCmd)
	addOptionFlags(replayCmd.Flags())
	replayCmd.Flags().Bool("json", false, "Machine-readable JSON lines")
}

type stepOp string

const (
	opEnter stepOp = "enter"
	opMove  stepOp = "move"
	opClick stepOp = "click"
	opLeave stepOp = "leave"
)

// step is one parsed replay event.
type step struct {
	Op   stepOp
	Item int
	Left bool
}

func (s step) String() string {
	if s.Op == opLeave {
		return string(s.Op)
	}
	half := "R"
	if s.Left {
		half = "L"
	}
	return fmt.Sprintf("%s:%d%s", s.Op, s.Item, half)
}

// event places the pointer inside the item's left or right half.
func (s step) event() rating.Event {
	if s.Op == opLeave {
		return rating.Event{}
	}
	left := float64(s.Item-1) * replayCell
	x := left + replayCell*0.75
	if s.Left {
		x = left + replayCell*0.25
	}
	return rating.Event{Item: s.Item, PointerX: x, Box: &rating.Box{Left: left, Width: replayCell}}
}

func parseStep(arg string) (step, error) {
	name, target, hasTarget := strings.Cut(strings.ToLower(arg), ":")
	op := stepOp(name)
	switch op {
	case opLeave:
		if hasTarget {
			return step{}, fmt.Errorf("event %q: leave takes no item", arg)
		}
		return step{Op: op}, nil
	case opEnter, opMove, opClick:
	default:
		return step{}, fmt.Errorf("event %q: unknown event %q", arg, name)
	}
	if !hasTarget || target == "" {
		return step{}, fmt.Errorf("event %q: missing item", arg)
	}

	s := step{Op: op}
	switch target[len(target)-1] {
	case 'l':
		s.Left = true
		target = target[:len(target)-1]
	case 'r':
		target = target[:len(target)-1]
	}
	item, err := strconv.Atoi(target)
	if err != nil || item < 1 {
		return step{}, fmt.Errorf("event %q: invalid item %q", arg, target)
	}
	s.Item = item
	return s, nil
}

func parseSteps(args []string) ([]step, error) {
	steps := make([]step, 0, len(args))
	for _, arg := range args {
		s, err := parseStep(arg)
		if err != nil {
			return nil, err
		}
		steps = append(steps, s)
	}
	return steps, nil
}

// replayResult is the JSON form of one replayed step.
type replayResult struct {
	Event      string  `json:"event"`
	Strip      string  `json:"strip"`
	Value      float64 `json:"value"`
	HoverIndex float64 `json:"hover_index"`
	IsHalf     bool    `json:"is_half"`
	IsHovering bool    `json:"is_hovering"`
	Sweep      string  `json:"sweep"`
	Touched    int     `json:"touched"`
}

func replay(w io.Writer, cfg *config.Config, steps []step, jsonOutput bool) error {
	buf := rating.NewBuffer()
	r, err := rating.New(buf, cfg.RatingOptions())
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	emit := func(label string, sw rating.Sweep) error {
		st := r.State()
		res := replayResult{
			Event:      label,
			Strip:      rating.Letters(buf.States()),
			Value:      st.Value,
			HoverIndex: st.HoverIndex,
			IsHalf:     st.IsHalf,
			IsHovering: st.IsHovering,
			Sweep:      sw.Direction.String(),
			Touched:    sw.Touched,
		}
		if jsonOutput {
			return enc.Encode(res)
		}
		_, err := fmt.Fprintf(w, "%-10s %s  value=%s hover=%s half=%t hovering=%t sweep=%s touched=%d\n",
			res.Event, res.Strip, widget.FormatValue(res.Value), widget.FormatValue(res.HoverIndex),
			res.IsHalf, res.IsHovering, res.Sweep, res.Touched)
		return err
	}

	if err := emit("init", rating.Sweep{}); err != nil {
		return err
	}
	for _, s := range steps {
		var sw rating.Sweep
		switch s.Op {
		case opEnter:
			sw = r.Enter(s.event())
		case opMove:
			sw = r.Move(s.event())
		case opClick:
			sw = r.Click(s.event())
		case opLeave:
			sw = r.Leave(s.event())
		}
		if err := emit(s.String(), sw); err != nil {
			return err
		}
	}
	return nil
}
