package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/skirmish/internal/board"
	"github.com/samdwyer/skirmish/internal/choice"
	"github.com/samdwyer/skirmish/internal/entity"
	"github.com/samdwyer/skirmish/internal/gamedata"
)

// Renderer draws the board, recent messages, and choice menus.
type Renderer struct {
	screen   *Screen
	terrains *gamedata.TerrainRegistry
	menuRow  int // first free row below the board and message log
}

// NewRenderer creates a renderer over the given screen, using the terrain
// registry to turn terrain names back into glyphs.
func NewRenderer(screen *Screen, terrains *gamedata.TerrainRegistry) *Renderer {
	return &Renderer{screen: screen, terrains: terrains}
}

// Render performs a full redraw: terrain, units on top, then the message
// log below the board.
func (r *Renderer) Render(b *board.Board, messages []string) {
	r.screen.Clear()

	for _, p := range b.Positions() {
		glyph := r.terrains.GlyphFor(b.TerrainAt(p.X, p.Y).Name())
		style := tcell.StyleDefault.Foreground(tcell.ColorGray)
		if u, ok := b.At(p.X, p.Y).(*entity.Unit); ok && u != nil {
			glyph = u.Glyph
			style = tcell.StyleDefault.Foreground(unitColor(u)).Bold(true)
		}
		r.screen.SetContent(p.X, p.Y, glyph, style)
	}

	logRow := b.Rows() + 1
	for i, msg := range messages {
		r.drawText(0, logRow+i, msg, tcell.StyleDefault.Foreground(tcell.ColorWhite))
	}
	r.menuRow = logRow + len(messages) + 1

	r.screen.Show()
}

// RenderMenu draws the offered choices below the log, highlighting the
// current selection.
func (r *Renderer) RenderMenu(choices []*choice.Choice, selected int) {
	for i, c := range choices {
		style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
		prefix := "  "
		if i == selected {
			style = style.Reverse(true)
			prefix = "> "
		}
		r.drawText(0, r.menuRow+i, prefix+c.Rep.String(), style)
	}
	r.screen.Show()
}

// drawText writes a string starting at (x, y).
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		r.screen.SetContent(x+i, y, ch, style)
	}
}

// unitColor resolves a unit's configured hex color, falling back to white.
func unitColor(u *entity.Unit) tcell.Color {
	color, err := gamedata.ParseHexColor(u.Color)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}
