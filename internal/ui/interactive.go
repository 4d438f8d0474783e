package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/skirmish/internal/board"
	"github.com/samdwyer/skirmish/internal/choice"
	"github.com/samdwyer/skirmish/internal/player"
)

// logLines bounds the on-screen message log.
const logLines = 6

// Interactive is the player variant that blocks on keyboard input. From
// the engine's point of view it is indistinguishable from any other
// player: SelectOne simply does not return until a choice is made.
type Interactive struct {
	*player.Roster
	screen   *Screen
	renderer *Renderer
	log      []string
	board    *board.Board // last rendered board
}

// NewInteractive creates an interactive player drawing on the given
// screen.
func NewInteractive(name string, screen *Screen, renderer *Renderer) *Interactive {
	return &Interactive{
		Roster:   player.NewRoster(name),
		screen:   screen,
		renderer: renderer,
	}
}

// Notify appends the message to the on-screen log.
func (p *Interactive) Notify(msg string) {
	p.log = append(p.log, msg)
	if len(p.log) > logLines {
		p.log = p.log[len(p.log)-logLines:]
	}
}

// Render performs a full redraw of the board and message log.
func (p *Interactive) Render(b *board.Board) {
	p.board = b
	p.renderer.Render(b, p.log)
}

// SelectOne blocks until the user picks a choice with the arrow keys and
// Enter. The engine does not proceed while this call is outstanding.
func (p *Interactive) SelectOne(choices []*choice.Choice) *choice.Choice {
	selected := 0
	for {
		if p.board != nil {
			p.renderer.Render(p.board, p.log)
		}
		p.renderer.RenderMenu(choices, selected)

		switch ev := p.screen.PollEvent().(type) {
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyUp:
				if selected > 0 {
					selected--
				}
			case tcell.KeyDown:
				if selected < len(choices)-1 {
					selected++
				}
			case tcell.KeyEnter:
				return choices[selected]
			}
		case *tcell.EventResize:
			p.screen.Sync()
		}
	}
}

var _ player.Player = (*Interactive)(nil)
