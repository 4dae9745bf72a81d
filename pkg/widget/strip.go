package widget

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/marcus/stars/pkg/rating"
)

// minCellWidth is the narrowest cell that still has a left and a right half.
const minCellWidth = 2

// Glyphs are the strings drawn for each render state.
type Glyphs struct {
	Filled  string `json:"filled"`
	Half    string `json:"half"`
	Outline string `json:"outline"`
}

// DefaultGlyphs returns the star glyph set.
func DefaultGlyphs() Glyphs {
	return Glyphs{Filled: "★", Half: "⯪", Outline: "☆"}
}

// withDefaults fills empty glyphs from DefaultGlyphs.
func (g Glyphs) withDefaults() Glyphs {
	d := DefaultGlyphs()
	if g.Filled == "" {
		g.Filled = d.Filled
	}
	if g.Half == "" {
		g.Half = d.Half
	}
	if g.Outline == "" {
		g.Outline = d.Outline
	}
	return g
}

func (g Glyphs) forState(s rating.RenderState) string {
	switch s {
	case rating.Filled:
		return g.Filled
	case rating.Half:
		return g.Half
	default:
		return g.Outline
	}
}

// CellWidth returns the width every item cell is padded to: at least want,
// at least minCellWidth, and wide enough for the widest glyph.
func (g Glyphs) CellWidth(want int) int {
	w := max(want, minCellWidth)
	for _, s := range []string{g.Filled, g.Half, g.Outline} {
		w = max(w, ansi.StringWidth(s))
	}
	return w
}

// RenderStrip draws states as padded glyph cells. preview selects the hover
// style for non-outline items.
func RenderStrip(states []rating.RenderState, g Glyphs, cellWidth int, preview bool) string {
	g = g.withDefaults()
	cellWidth = g.CellWidth(cellWidth)

	var sb strings.Builder
	for _, s := range states {
		glyph := g.forState(s)
		pad := cellWidth - ansi.StringWidth(glyph)
		sb.WriteString(styleFor(s, preview).Render(glyph))
		sb.WriteString(strings.Repeat(" ", pad))
	}
	return sb.String()
}

func styleFor(s rating.RenderState, preview bool) lipgloss.Style {
	switch {
	case s == rating.Outline:
		return OutlineStyle
	case preview:
		return PreviewStyle
	case s == rating.Half:
		return HalfStyle
	default:
		return FilledStyle
	}
}
