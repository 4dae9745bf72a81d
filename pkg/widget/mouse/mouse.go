// Package mouse maps terminal mouse reports onto named screen regions.
// Regions are registered while rendering and tested in reverse order, so a
// region added later sits on top of the ones before it.
package mouse

import tea "github.com/charmbracelet/bubbletea"

// Rect is a screen rectangle in terminal cells. W and H are exclusive.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Region is a hit target with optional payload.
type Region struct {
	ID   string
	Rect Rect
	Data any
}

// HitMap holds the regions registered for the current frame.
type HitMap struct {
	regions []Region
}

// NewHitMap returns an empty hit map.
func NewHitMap() *HitMap {
	return &HitMap{}
}

// AddRect registers a region. Later regions take priority over earlier ones.
func (h *HitMap) AddRect(id string, x, y, w, h2 int, data any) {
	h.regions = append(h.regions, Region{ID: id, Rect: Rect{X: x, Y: y, W: w, H: h2}, Data: data})
}

// Test returns the topmost region containing (x, y), or nil.
func (h *HitMap) Test(x, y int) *Region {
	for i := len(h.regions) - 1; i >= 0; i-- {
		if h.regions[i].Rect.Contains(x, y) {
			return &h.regions[i]
		}
	}
	return nil
}

// Clear drops every region.
func (h *HitMap) Clear() {
	h.regions = h.regions[:0]
}

// Regions returns the registered regions in priority order, lowest first.
func (h *HitMap) Regions() []Region {
	return h.regions
}

// ActionType classifies a mouse report.
type ActionType int

const (
	ActionNone ActionType = iota
	ActionClick
	ActionHover
)

func (a ActionType) String() string {
	switch a {
	case ActionClick:
		return "click"
	case ActionHover:
		return "hover"
	default:
		return "none"
	}
}

// MouseAction is a decoded mouse report. Region is nil when the pointer is
// over no registered region.
type MouseAction struct {
	Type   ActionType
	Region *Region
	X, Y   int
}

// Handler decodes bubbletea mouse messages against a hit map.
type Handler struct {
	HitMap *HitMap
}

// NewHandler returns a handler with an empty hit map.
func NewHandler() *Handler {
	return &Handler{HitMap: NewHitMap()}
}

// HandleClick resolves a click at (x, y).
func (h *Handler) HandleClick(x, y int) MouseAction {
	return MouseAction{Type: ActionClick, Region: h.HitMap.Test(x, y), X: x, Y: y}
}

// HandleMouse turns a bubbletea mouse message into an action. Left presses
// are clicks; motion with no button held is hover.
func (h *Handler) HandleMouse(msg tea.MouseMsg) MouseAction {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			return h.HandleClick(msg.X, msg.Y)
		}
	case tea.MouseActionMotion:
		return MouseAction{Type: ActionHover, Region: h.HitMap.Test(msg.X, msg.Y), X: msg.X, Y: msg.Y}
	}
	return MouseAction{Type: ActionNone, X: msg.X, Y: msg.Y}
}

// Clear drops the regions of the previous frame.
func (h *Handler) Clear() {
	h.HitMap.Clear()
}
