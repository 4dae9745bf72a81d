package mouse

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 20, H: 10}

	cases := []struct {
		x, y     int
		expected bool
	}{
		{10, 10, true},  // Top-left corner
		{29, 10, true},  // Top-right edge (exclusive width)
		{10, 19, true},  // Bottom-left edge (exclusive height)
		{29, 19, true},  // Bottom-right corner
		{15, 15, true},  // Center
		{9, 10, false},  // Just left
		{30, 10, false}, // Just right (exclusive)
		{10, 9, false},  // Just above
		{10, 20, false}, // Just below (exclusive)
	}

	for _, tc := range cases {
		got := r.Contains(tc.x, tc.y)
		if got != tc.expected {
			t.Errorf("Rect(%+v).Contains(%d, %d) = %v, want %v", r, tc.x, tc.y, got, tc.expected)
		}
	}
}

func TestHitMapItems(t *testing.T) {
	hm := NewHitMap()

	// Five two-cell items on one row.
	for i := 1; i <= 5; i++ {
		hm.AddRect("item", 2+(i-1)*2, 3, 2, 1, i)
	}

	r := hm.Test(6, 3)
	if r == nil || r.Data.(int) != 3 {
		t.Errorf("expected item 3, got %v", r)
	}

	r = hm.Test(11, 3)
	if r == nil || r.Data.(int) != 5 {
		t.Errorf("expected item 5, got %v", r)
	}

	// Row above and the cell past the last item miss
	if r = hm.Test(6, 2); r != nil {
		t.Errorf("expected no hit above the row, got %v", r)
	}
	if r = hm.Test(12, 3); r != nil {
		t.Errorf("expected no hit past the last item, got %v", r)
	}
}

func TestHitMapPriority(t *testing.T) {
	hm := NewHitMap()

	// Add overlapping regions - later ones have higher priority
	hm.AddRect("background", 0, 0, 100, 100, nil)
	hm.AddRect("strip", 10, 10, 80, 1, nil)
	hm.AddRect("item", 40, 10, 2, 1, nil)

	r := hm.Test(41, 10)
	if r == nil || r.ID != "item" {
		t.Errorf("expected hit on item, got %v", r)
	}

	r = hm.Test(15, 10)
	if r == nil || r.ID != "strip" {
		t.Errorf("expected hit on strip, got %v", r)
	}

	r = hm.Test(5, 5)
	if r == nil || r.ID != "background" {
		t.Errorf("expected hit on background, got %v", r)
	}
}

func TestHitMapClear(t *testing.T) {
	hm := NewHitMap()

	hm.AddRect("region1", 0, 0, 50, 50, nil)
	hm.AddRect("region2", 60, 0, 50, 50, nil)

	if len(hm.Regions()) != 2 {
		t.Errorf("expected 2 regions, got %d", len(hm.Regions()))
	}

	hm.Clear()

	if len(hm.Regions()) != 0 {
		t.Errorf("expected 0 regions after clear, got %d", len(hm.Regions()))
	}
}

func TestHandlerClick(t *testing.T) {
	h := NewHandler()
	h.HitMap.AddRect("item", 10, 10, 2, 1, 1)

	result := h.HandleClick(11, 10)
	if result.Region == nil || result.Region.ID != "item" {
		t.Errorf("expected click on item, got %v", result.Region)
	}

	// Miss click
	result = h.HandleClick(5, 5)
	if result.Region != nil {
		t.Errorf("expected no region on miss, got %v", result.Region)
	}
}

func TestHandleMouseActions(t *testing.T) {
	h := NewHandler()
	h.HitMap.AddRect("item", 10, 10, 30, 10, nil)

	action := h.HandleMouse(tea.MouseMsg{
		X:      20,
		Y:      15,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	if action.Type != ActionClick {
		t.Errorf("expected ActionClick, got %v", action.Type)
	}
	if action.Region == nil || action.Region.ID != "item" {
		t.Errorf("expected region 'item', got %v", action.Region)
	}

	action = h.HandleMouse(tea.MouseMsg{
		X:      25,
		Y:      15,
		Action: tea.MouseActionMotion,
	})
	if action.Type != ActionHover || action.Region == nil {
		t.Errorf("expected ActionHover on item, got %v %v", action.Type, action.Region)
	}

	// Motion off every region is still a hover, with no region
	action = h.HandleMouse(tea.MouseMsg{
		X:      0,
		Y:      0,
		Action: tea.MouseActionMotion,
	})
	if action.Type != ActionHover || action.Region != nil {
		t.Errorf("expected region-less hover, got %v %v", action.Type, action.Region)
	}

	// Wheel and release carry no rating meaning
	action = h.HandleMouse(tea.MouseMsg{
		X:      20,
		Y:      15,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonWheelDown,
	})
	if action.Type != ActionNone {
		t.Errorf("expected ActionNone for wheel, got %v", action.Type)
	}
	action = h.HandleMouse(tea.MouseMsg{
		X:      20,
		Y:      15,
		Action: tea.MouseActionRelease,
	})
	if action.Type != ActionNone {
		t.Errorf("expected ActionNone for release, got %v", action.Type)
	}
}

func TestHandlerClear(t *testing.T) {
	h := NewHandler()
	h.HitMap.AddRect("item", 10, 10, 30, 10, nil)

	h.Clear()

	if len(h.HitMap.Regions()) != 0 {
		t.Errorf("expected 0 regions after Clear, got %d", len(h.HitMap.Regions()))
	}
}
