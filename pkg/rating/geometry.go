package rating

// Box is the horizontal extent of a laid-out item.
type Box struct {
	Left  float64
	Width float64
}

// ResolveHalf reports whether pointerX falls in the left half of the item
// starting at itemLeft.
func ResolveHalf(pointerX, itemLeft, itemWidth float64) bool {
	return pointerX-itemLeft < itemWidth/2
}

// Half is ResolveHalf against b. An item without layout (nil box or no width)
// always resolves to the full zone.
func (b *Box) Half(pointerX float64) bool {
	if b == nil || b.Width <= 0 {
		return false
	}
	return ResolveHalf(pointerX, b.Left, b.Width)
}

// ComputeHoverIndex converts "pointer over item, in its left or right half"
// into a value on the same scale as the committed rating.
func ComputeHoverIndex(item int, pointerIsHalf, allowHalf bool) float64 {
	if allowHalf && pointerIsHalf {
		return float64(item-1) + 0.5
	}
	return float64(item)
}

// Event is one pointer report delivered to the state machine.
type Event struct {
	Item     int     // 1-based item under the pointer, 0 when over none
	PointerX float64 // pointer position on the same axis as Box
	Box      *Box    // nil when the item is not laid out
}
