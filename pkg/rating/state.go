package rating

import (
	"fmt"
	"math"
)

// RenderState is the visual state of a single item.
type RenderState int

const (
	Outline RenderState = iota
	Half
	Filled
)

func (s RenderState) String() string {
	switch s {
	case Outline:
		return "outline"
	case Half:
		return "half"
	case Filled:
		return "filled"
	default:
		return fmt.Sprintf("RenderState(%d)", int(s))
	}
}

// Letter returns the one-letter form used by plain-text output (F, H or O).
func (s RenderState) Letter() byte {
	switch s {
	case Filled:
		return 'F'
	case Half:
		return 'H'
	default:
		return 'O'
	}
}

// DefaultLength is the number of items used when Options.Length is zero.
const DefaultLength = 5

// Options configures a Rating at construction.
type Options struct {
	Value     float64 // initial committed value
	Length    int     // number of items; zero selects DefaultLength
	AllowHalf bool    // accept 0.5 granularity and render Half items
}

// DefaultOptions returns the options used for fields the caller leaves unset.
func DefaultOptions() Options {
	return Options{Length: DefaultLength}
}

// Step returns the value granularity implied by AllowHalf.
func (o Options) Step() float64 {
	if o.AllowHalf {
		return 0.5
	}
	return 1
}

// normalize merges o over the defaults and brings Value into range.
// Out-of-range values are clamped to [0, Length], then snapped down to the
// configured granularity.
func (o Options) normalize() (Options, error) {
	if o.Length == 0 {
		o.Length = DefaultLength
	}
	if o.Length < 0 {
		return o, &OptionError{Field: "length", Reason: fmt.Sprintf("must be at least 1, got %d", o.Length)}
	}
	o.Value = o.Snap(o.Value)
	return o, nil
}

// Snap clamps v to [0, Length] and rounds it down to the granularity.
func (o Options) Snap(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > float64(o.Length) {
		v = float64(o.Length)
	}
	step := o.Step()
	return math.Floor(v/step) * step
}

// State is the mutable core of a control, exposed as a copyable value so
// hosts and tests can inspect it without reaching into the Rating.
type State struct {
	// Value is the committed rating.
	Value float64
	// HoverIndex is the value implied by the pointer. It equals Value when idle.
	HoverIndex float64
	// LastHoverIndex is the boundary most recently painted to the surface.
	LastHoverIndex float64
	// IsHalf reports whether the pointer sits in the left half of its item.
	IsHalf bool
	// IsHovering is true between the first Enter/Move and the next Leave or Click.
	IsHovering bool
}

// Boundary returns the boundary on display: HoverIndex while hovering,
// Value otherwise.
func (s State) Boundary() float64 {
	if s.IsHovering {
		return s.HoverIndex
	}
	return s.Value
}

// boundaryItem returns the 1-based item that carries the fractional part
// of b, or 0 for a zero boundary.
func boundaryItem(b float64) int {
	return int(math.Ceil(b))
}
