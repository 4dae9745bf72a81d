// Package rating implements the state engine behind an N-item rating control
// (five stars, ten hearts, ...) with whole or half-unit precision.
//
// The package has three layers:
//
//   - Geometry and hover helpers: ResolveHalf, Box.Half and ComputeHoverIndex
//     turn a pointer position over an item into a continuous hover value.
//   - The visual state engine: Compute is the pure mapping from a boundary to
//     every item's RenderState; PaintFrom and RevertFrom apply the same mapping
//     incrementally to a Surface, visiting only the items between the previously
//     painted boundary and the new one.
//   - The interaction state machine: Rating owns the committed value and the
//     hover position and sequences Enter, Move, Leave and Click events into
//     engine calls.
//
// # Quick Start
//
//	strip := rating.NewBuffer()
//	r, err := rating.New(strip, rating.Options{Length: 5, AllowHalf: true, Value: 3.5})
//	if err != nil {
//	    return err
//	}
//
//	// Pointer over the left half of the second item.
//	r.Move(rating.Event{Item: 2, PointerX: 2.2, Box: &rating.Box{Left: 2, Width: 2}})
//	strip.States() // filled, half, outline, outline, outline
//
//	r.Leave(rating.Event{})
//	strip.States() // filled, filled, filled, half, outline
//
// A Rating is not safe for concurrent use. Hosts deliver events from a single
// goroutine (bubbletea's Update loop does this naturally).
package rating
