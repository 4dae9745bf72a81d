package rating

import "testing"

func TestResolveHalf(t *testing.T) {
	cases := []struct {
		x, left, width float64
		expected       bool
	}{
		{10, 10, 4, true},    // left edge
		{11.9, 10, 4, true},  // just left of center
		{12, 10, 4, false},   // center belongs to the full zone
		{13.9, 10, 4, false}, // right edge
		{0, 0, 1, true},
	}
	for _, tc := range cases {
		got := ResolveHalf(tc.x, tc.left, tc.width)
		if got != tc.expected {
			t.Errorf("ResolveHalf(%v, %v, %v) = %v, want %v", tc.x, tc.left, tc.width, got, tc.expected)
		}
	}
}

func TestBoxHalfDegenerate(t *testing.T) {
	var missing *Box
	if missing.Half(0) {
		t.Error("nil box should resolve to the full zone")
	}
	if (&Box{Left: 5, Width: 0}).Half(4) {
		t.Error("zero-width box should resolve to the full zone")
	}
	if !(&Box{Left: 5, Width: 2}).Half(5.5) {
		t.Error("left half of a laid-out box should resolve half")
	}
}

func TestComputeHoverIndex(t *testing.T) {
	tests := []struct {
		item      int
		half      bool
		allowHalf bool
		want      float64
	}{
		{1, false, false, 1},
		{1, true, false, 1},
		{1, true, true, 0.5},
		{1, false, true, 1},
		{4, true, true, 3.5},
		{5, false, true, 5},
	}
	for _, tt := range tests {
		got := ComputeHoverIndex(tt.item, tt.half, tt.allowHalf)
		if got != tt.want {
			t.Errorf("ComputeHoverIndex(%d, %v, %v) = %v, want %v", tt.item, tt.half, tt.allowHalf, got, tt.want)
		}
	}
}

func TestCompute(t *testing.T) {
	tests := []struct {
		length    int
		boundary  float64
		allowHalf bool
		want      string
	}{
		{5, 0, true, "OOOOO"},
		{5, 3.5, true, "FFFHO"},
		{5, 3.5, false, "FFFOO"},
		{5, 3, true, "FFFOO"},
		{5, 5, true, "FFFFF"},
		{5, 4.5, true, "FFFFH"},
		{1, 0.5, true, "H"},
		{0, 2, true, ""},
	}
	for _, tt := range tests {
		got := Letters(Compute(tt.length, tt.boundary, tt.allowHalf))
		if got != tt.want {
			t.Errorf("Compute(%d, %v, %v) = %s, want %s", tt.length, tt.boundary, tt.allowHalf, got, tt.want)
		}
	}
}

func TestPaintFromDirection(t *testing.T) {
	buf := NewBuffer()
	s := buf.Mount(6)

	sw := PaintFrom(s, State{Value: 4.5, HoverIndex: 4.5, IsHalf: true}, 5, true)
	if sw.Direction != Forward || sw.From != 1 || sw.To != 5 {
		t.Errorf("first paint = %+v, want forward 1..5", sw)
	}
	if got := Letters(buf.States()); got != "FFFFHO" {
		t.Errorf("strip = %s, want FFFFHO", got)
	}

	sw = PaintFrom(s, State{Value: 1, HoverIndex: 1, LastHoverIndex: 4.5}, 1, true)
	if sw.Direction != Backward || sw.From != 5 || sw.To != 2 {
		t.Errorf("shrink = %+v, want backward 5..2", sw)
	}
	if got := Letters(buf.States()); got != "FOOOOO" {
		t.Errorf("strip = %s, want FOOOOO", got)
	}
}

func TestRevertFromIgnoresPointerHalf(t *testing.T) {
	buf := NewBuffer()
	s := buf.Mount(5)
	for i, st := range Compute(5, 5, true) {
		s.SetState(i+1, st)
	}

	st := State{Value: 2, HoverIndex: 2, LastHoverIndex: 5, IsHalf: true}
	RevertFrom(s, st, 2, true)
	if got := Letters(buf.States()); got != "FFOOO" {
		t.Errorf("strip = %s, want FFOOO", got)
	}
}

func TestRenderStateString(t *testing.T) {
	for s, want := range map[RenderState]string{Outline: "outline", Half: "half", Filled: "filled", RenderState(9): "RenderState(9)"} {
		if got := s.String(); got != want {
			t.Errorf("RenderState(%d).String() = %q, want %q", int(s), got, want)
		}
	}
}

func TestBufferIgnoresOutOfRange(t *testing.T) {
	buf := NewBuffer()
	buf.Mount(3)
	buf.SetState(0, Filled)
	buf.SetState(4, Filled)
	if buf.Writes() != 0 {
		t.Errorf("Writes() = %d, want 0", buf.Writes())
	}
	if buf.State(10) != Outline {
		t.Errorf("State(10) = %v, want outline", buf.State(10))
	}
}
