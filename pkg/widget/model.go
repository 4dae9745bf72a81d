package widget

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/stars/pkg/rating"
	"github.com/marcus/stars/pkg/widget/mouse"
)

const regionItem = "rating-item"

// Strip placement inside the view: title on row 0, a blank row, then the items.
const (
	stripX = 2
	stripY = 2
)

// RatedMsg is emitted when a click commits a new value.
type RatedMsg struct {
	Value float64
}

// Option configures a Model.
type Option func(*Model)

// WithGlyphs sets the item glyphs. Empty fields keep the default star.
func WithGlyphs(g Glyphs) Option {
	return func(m *Model) {
		m.glyphs = g.withDefaults()
	}
}

// WithCellWidth sets the cell width of one item (minimum 2).
func WithCellWidth(w int) Option {
	return func(m *Model) {
		m.cellWidth = w
	}
}

// WithTitle sets the heading shown above the items.
func WithTitle(title string) Option {
	return func(m *Model) {
		m.title = title
	}
}

// WithLogger sets the logger for interaction events.
func WithLogger(l *slog.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// Model is a bubbletea model hosting one rating control.
type Model struct {
	rating *rating.Rating
	strip  *rating.Buffer
	mouse  *mouse.Handler
	keys   keyMap
	help   help.Model
	logger *slog.Logger

	glyphs    Glyphs
	cellWidth int
	title     string

	Width  int
	Height int

	// hovered is the item under the pointer, 0 when outside the strip.
	hovered    int
	hoveredBox *rating.Box
	quitting   bool
}

// New builds a Model around a new rating control.
func New(opts rating.Options, options ...Option) (Model, error) {
	strip := rating.NewBuffer()
	r, err := rating.New(strip, opts)
	if err != nil {
		return Model{}, fmt.Errorf("create rating: %w", err)
	}

	m := Model{
		rating: r,
		strip:  strip,
		mouse:  mouse.NewHandler(),
		keys:   defaultKeys,
		help:   help.New(),
		logger: slog.Default(),
		glyphs: DefaultGlyphs(),
		title:  "Rate it",
	}
	for _, opt := range options {
		opt(&m)
	}
	m.cellWidth = m.glyphs.CellWidth(m.cellWidth)
	m.registerRegions()
	return m, nil
}

// Rating returns the hosted control.
func (m Model) Rating() *rating.Rating {
	return m.rating
}

// Value returns the committed rating.
func (m Model) Value() float64 {
	return m.rating.Value()
}

// Quitting reports whether the user asked to exit.
func (m Model) Quitting() bool {
	return m.quitting
}

// registerRegions lays the items out left to right, one cell each.
func (m Model) registerRegions() {
	m.mouse.Clear()
	for i := 1; i <= m.rating.Len(); i++ {
		m.mouse.HitMap.AddRect(regionItem, stripX+(i-1)*m.cellWidth, stripY, m.cellWidth, 1, i)
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case RatedMsg:
		m.logger.Info("rating committed", "value", msg.Value, "length", m.rating.Len())
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// handleMouse routes hover and click actions to the state machine. Motion
// that leaves the strip is delivered as a leave for the item last hovered.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	action := m.mouse.HandleMouse(msg)
	item, box := itemOf(action.Region)

	switch action.Type {
	case mouse.ActionHover:
		if item == 0 {
			if m.hovered == 0 {
				return m, nil
			}
			sw := m.rating.Leave(rating.Event{Item: m.hovered, PointerX: float64(action.X), Box: m.hoveredBox})
			m.logger.Debug("leave", "item", m.hovered, "value", m.rating.Value(), "touched", sw.Touched)
			m.hovered, m.hoveredBox = 0, nil
			return m, nil
		}

		ev := rating.Event{Item: item, PointerX: float64(action.X), Box: box}
		var sw rating.Sweep
		if item != m.hovered {
			sw = m.rating.Enter(ev)
		} else {
			sw = m.rating.Move(ev)
		}
		m.hovered, m.hoveredBox = item, box
		if sw.Touched > 0 {
			m.logger.Debug("hover", "item", item, "hover", m.rating.HoverIndex(),
				"sweep", sw.Direction.String(), "touched", sw.Touched)
		}
		return m, nil

	case mouse.ActionClick:
		if item == 0 {
			return m, nil
		}
		before := m.rating.Value()
		sw := m.rating.Click(rating.Event{Item: item, PointerX: float64(action.X), Box: box})
		m.hovered, m.hoveredBox = item, box
		m.logger.Debug("click", "item", item, "value", m.rating.Value(), "touched", sw.Touched)
		if v := m.rating.Value(); v != before {
			return m, func() tea.Msg { return RatedMsg{Value: v} }
		}
	}
	return m, nil
}

func itemOf(r *mouse.Region) (int, *rating.Box) {
	if r == nil || r.ID != regionItem {
		return 0, nil
	}
	item, ok := r.Data.(int)
	if !ok {
		return 0, nil
	}
	return item, &rating.Box{Left: float64(r.Rect.X), Width: float64(r.Rect.W)}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(TitleStyle.Render(m.title))
	sb.WriteString("\n\n")
	sb.WriteString(strings.Repeat(" ", stripX))
	sb.WriteString(RenderStrip(m.strip.States(), m.glyphs, m.cellWidth, m.rating.IsHovering()))
	sb.WriteString("\n\n")
	sb.WriteString(m.statusLine())
	sb.WriteString("\n\n")
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

func (m Model) statusLine() string {
	status := StatusStyle.Render("  rating ") +
		ValueStyle.Render(FormatValue(m.rating.Value())) +
		StatusStyle.Render(" / "+strconv.Itoa(m.rating.Len()))
	if m.rating.IsHovering() {
		status += HoverStyle.Render("  → " + FormatValue(m.rating.HoverIndex()))
	}
	return status
}

// FormatValue prints whole values without a fraction and half values with one digit.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
