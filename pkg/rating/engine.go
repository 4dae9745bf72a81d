package rating

import "math"

// Surface is an ordered strip of items addressed by 1-based index.
// Reads and writes outside [1, Len()] are ignored by the engine.
type Surface interface {
	Len() int
	State(index int) RenderState
	SetState(index int, s RenderState)
}

// Anchor hosts the items of one control. Mount is called once, at
// construction, and must return a surface of length items all in Outline.
type Anchor interface {
	Mount(length int) Surface
}

// Direction is the way a sweep walks the strip.
type Direction int

const (
	NoSweep Direction = iota
	Forward
	Backward
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return "none"
	}
}

// Sweep reports what a paint operation did to the surface.
type Sweep struct {
	Direction Direction
	From, To  int // first and last item visited by the sweep, 0 when none
	Touched   int // items whose state was rewritten, boundary item included
}

// stateAt is the render state of item index for boundary b.
func stateAt(index int, b float64, allowHalf bool) RenderState {
	full := math.Floor(b)
	switch {
	case float64(index) <= full:
		return Filled
	case allowHalf && b != full && index == boundaryItem(b):
		return Half
	default:
		return Outline
	}
}

// Compute returns the render state of every item for boundary b. It is the
// reference the incremental operations are measured against.
func Compute(length int, b float64, allowHalf bool) []RenderState {
	out := make([]RenderState, length)
	for i := range out {
		out[i] = stateAt(i+1, b, allowHalf)
	}
	return out
}

// PaintFrom repaints s for the boundary on display in st. The boundary item
// is set to Half when st.IsHalf (and half mode is on), otherwise Filled. The
// remaining work is a single directional sweep over the items between
// st.LastHoverIndex, the boundary painted last, and the new boundary: forward
// when the boundary grew, backward when it shrank.
func PaintFrom(s Surface, st State, item int, allowHalf bool) Sweep {
	want := Filled
	if allowHalf && st.IsHalf {
		want = Half
	}
	return paint(s, st.LastHoverIndex, st.Boundary(), item, want, allowHalf)
}

// RevertFrom restores the states implied by st.Value alone. The sweep is
// bounded by st.LastHoverIndex. The boundary item becomes Half iff Value has a
// fractional part; the pointer's IsHalf plays no role.
func RevertFrom(s Surface, st State, item int, allowHalf bool) Sweep {
	want := Filled
	if allowHalf && st.Value != math.Floor(st.Value) {
		want = Half
	}
	return paint(s, st.LastHoverIndex, st.Value, item, want, allowHalf)
}

func paint(s Surface, prev, next float64, item int, want RenderState, allowHalf bool) Sweep {
	n := s.Len()
	var sw Sweep
	if item >= 1 && item <= n {
		sw.Touched += set(s, item, want)
	}

	// Items up to floor(min) are Filled for both boundaries and items past
	// ceil(max) are Outline for both; only the window between can differ.
	lo := int(math.Floor(math.Min(prev, next))) + 1
	hi := boundaryItem(math.Max(prev, next))
	lo = max(lo, 1)
	hi = min(hi, n)
	if lo > hi || prev == next {
		return sw
	}

	if next > prev {
		sw.Direction, sw.From, sw.To = Forward, lo, hi
		for k := lo; k <= hi; k++ {
			if k != item {
				sw.Touched += set(s, k, stateAt(k, next, allowHalf))
			}
		}
		return sw
	}

	sw.Direction, sw.From, sw.To = Backward, hi, lo
	for k := hi; k >= lo; k-- {
		if k != item {
			sw.Touched += set(s, k, stateAt(k, next, allowHalf))
		}
	}
	return sw
}

func set(s Surface, index int, want RenderState) int {
	if s.State(index) == want {
		return 0
	}
	s.SetState(index, want)
	return 1
}
