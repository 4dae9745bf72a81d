package rating

import "math"

// Rating is the interaction state machine of one control. It is Idle while
// the display follows the committed value and Hovering while it follows the
// pointer.
type Rating struct {
	opts    Options
	state   State
	surface Surface
}

// New mounts a control of opts.Length items on anchor and paints the initial
// value as though it had just been committed. Unset options fall back to
// DefaultOptions; Value is clamped into range.
func New(anchor Anchor, opts Options) (*Rating, error) {
	if anchor == nil {
		return nil, ErrNoAnchor
	}
	opts, err := opts.normalize()
	if err != nil {
		return nil, err
	}
	surface := anchor.Mount(opts.Length)
	if surface == nil {
		return nil, ErrNoAnchor
	}

	r := &Rating{opts: opts, surface: surface}
	r.state = State{
		Value:      opts.Value,
		HoverIndex: opts.Value,
		IsHalf:     opts.AllowHalf && opts.Value != math.Floor(opts.Value),
	}
	PaintFrom(r.surface, r.state, boundaryItem(r.state.Value), opts.AllowHalf)
	r.state.LastHoverIndex = r.state.Value
	return r, nil
}

// Enter handles the pointer entering item ev.Item. Events for items outside
// the strip are ignored.
func (r *Rating) Enter(ev Event) Sweep {
	if !r.contains(ev.Item) {
		return Sweep{}
	}
	if !r.state.IsHovering {
		r.state.LastHoverIndex = r.state.Value
	}
	r.state.IsHalf = r.resolveHalf(ev)
	r.state.HoverIndex = ComputeHoverIndex(ev.Item, r.state.IsHalf, r.opts.AllowHalf)
	r.state.IsHovering = true

	sw := PaintFrom(r.surface, r.state, ev.Item, r.opts.AllowHalf)
	r.state.LastHoverIndex = r.state.HoverIndex
	return sw
}

// Move handles motion within an item. It follows the same path as Enter.
func (r *Rating) Move(ev Event) Sweep {
	return r.Enter(ev)
}

// Leave handles the pointer leaving the control and reverts the display to
// the committed value.
func (r *Rating) Leave(ev Event) Sweep {
	r.state.HoverIndex = r.state.Value
	r.state.IsHalf = r.resolveHalf(ev)
	r.state.IsHovering = false

	sw := RevertFrom(r.surface, r.state, boundaryItem(r.state.Value), r.opts.AllowHalf)
	r.state.LastHoverIndex = r.state.Value
	return sw
}

// Click commits the value under the pointer. Clicking the value already
// committed leaves it unchanged and repaints idempotently.
func (r *Rating) Click(ev Event) Sweep {
	if !r.contains(ev.Item) {
		return Sweep{}
	}
	r.state.IsHalf = r.resolveHalf(ev)
	r.state.HoverIndex = ComputeHoverIndex(ev.Item, r.state.IsHalf, r.opts.AllowHalf)
	if r.state.HoverIndex != r.state.Value {
		r.state.Value = r.state.HoverIndex
	}
	r.state.IsHovering = false

	// LastHoverIndex still holds the boundary on screen, which is what the
	// sweep has to be bounded by; it only follows Value once painted.
	sw := PaintFrom(r.surface, r.state, ev.Item, r.opts.AllowHalf)
	r.state.LastHoverIndex = r.state.Value
	return sw
}

func (r *Rating) resolveHalf(ev Event) bool {
	return r.opts.AllowHalf && ev.Box.Half(ev.PointerX)
}

func (r *Rating) contains(item int) bool {
	return item >= 1 && item <= r.opts.Length
}

// Value returns the committed rating.
func (r *Rating) Value() float64 { return r.state.Value }

// HoverIndex returns the value under the pointer, or Value when idle.
func (r *Rating) HoverIndex() float64 { return r.state.HoverIndex }

// IsHalf reports whether the last event landed in an item's left half.
func (r *Rating) IsHalf() bool { return r.state.IsHalf }

// IsHovering reports whether the display currently follows the pointer.
func (r *Rating) IsHovering() bool { return r.state.IsHovering }

// State returns a copy of the full interaction state.
func (r *Rating) State() State { return r.state }

// Options returns the normalized options the control was built with.
func (r *Rating) Options() Options { return r.opts }

// Len returns the number of items.
func (r *Rating) Len() int { return r.opts.Length }

// Render reads the current state of every item back from the surface.
func (r *Rating) Render() []RenderState {
	out := make([]RenderState, r.opts.Length)
	for i := range out {
		out[i] = r.surface.State(i + 1)
	}
	return out
}
