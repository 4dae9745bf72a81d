package rating

// Buffer is an in-memory item strip. It satisfies both Anchor and Surface and
// counts writes so callers can check how much a repaint cost.
type Buffer struct {
	states []RenderState
	writes int
}

// NewBuffer returns an empty buffer ready to be mounted.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Mount resets the buffer to length Outline items.
func (b *Buffer) Mount(length int) Surface {
	b.states = make([]RenderState, length)
	b.writes = 0
	return b
}

func (b *Buffer) Len() int {
	return len(b.states)
}

func (b *Buffer) State(index int) RenderState {
	if index < 1 || index > len(b.states) {
		return Outline
	}
	return b.states[index-1]
}

func (b *Buffer) SetState(index int, s RenderState) {
	if index < 1 || index > len(b.states) {
		return
	}
	b.states[index-1] = s
	b.writes++
}

// States returns a copy of every item's state, item 1 first.
func (b *Buffer) States() []RenderState {
	out := make([]RenderState, len(b.states))
	copy(out, b.states)
	return out
}

// Writes returns the number of SetState calls since Mount or ResetWrites.
func (b *Buffer) Writes() int {
	return b.writes
}

// ResetWrites zeroes the write counter.
func (b *Buffer) ResetWrites() {
	b.writes = 0
}

// Letters renders the strip as F/H/O letters, e.g. "FFFHO".
func Letters(states []RenderState) string {
	buf := make([]byte, len(states))
	for i, s := range states {
		buf[i] = s.Letter()
	}
	return string(buf)
}
