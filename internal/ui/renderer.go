package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/asciiwar/internal/gamedata"
	"github.com/samdwyer/asciiwar/internal/grid"
	"github.com/samdwyer/asciiwar/internal/match"
)

// CellWidth is the number of terminal columns used per map tile, which keeps tiles roughly square.
const CellWidth = 2

// StatusRow is the terminal row of the status line.
const StatusRow = grid.Height + 1

// HelpRow is the terminal row of the key help line.
const HelpRow = grid.Height + 2

// Renderer handles drawing the match to the screen.
type Renderer struct {
	screen  *Screen
	palette gamedata.Palette
}

// NewRenderer creates a new renderer for the given screen and palette.
func NewRenderer(screen *Screen, palette gamedata.Palette) *Renderer {
	return &Renderer{screen: screen, palette: palette}
}

// Render draws the map, the characters, the active selector and the status line.
func (r *Renderer) Render(snap match.Snapshot) {
	r.screen.Clear()

	for _, t := range snap.Tiles {
		style := tcell.StyleDefault.Background(r.palette.TerrainColor(t.Terrain))
		r.drawCell(t.Pos, ' ', style)
	}

	for _, c := range snap.Characters {
		if !c.Alive {
			continue
		}
		bg := r.palette.TerrainColor(snap.Tiles[indexOf(c.Position)].Terrain)
		style := tcell.StyleDefault.Background(bg).Foreground(c.Color).Bold(c.Active)
		r.drawCell(c.Position, FacingRune(c.Facing), style)
	}

	if active := snap.Active(); active.SelectorOnGrid() {
		style := tcell.StyleDefault.Background(r.palette.SelectorColor()).Foreground(tcell.ColorWhite)
		r.drawCell(active.Selector, '+', style)
	}

	r.RenderMessage(StatusLine(snap), StatusRow)
	r.RenderMessage("arrows: move/aim  space: confirm  q: quit", HelpRow)

	r.screen.Show()
}

// RenderMessage displays a message on the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	r.screen.SetString(0, y, msg, tcell.StyleDefault.Foreground(tcell.ColorWhite))
}

// drawCell fills the terminal columns of one tile; the glyph goes in the first column.
func (r *Renderer) drawCell(pos grid.Position, glyph rune, style tcell.Style) {
	x := pos.X * CellWidth
	r.screen.SetContent(x, pos.Y, glyph, style)
	for i := 1; i < CellWidth; i++ {
		r.screen.SetContent(x+i, pos.Y, ' ', style)
	}
}

// StatusLine summarizes the turn, phase and active character.
func StatusLine(snap match.Snapshot) string {
	active := snap.Active()
	line := fmt.Sprintf("Turn %d | %s (%c) hp %d | %s", snap.Turn, active.Name, active.Symbol, active.HP, snap.Phase)
	switch {
	case snap.Phase == match.PhaseMove:
		line += fmt.Sprintf(" | mp %d", snap.MovementPoints)
	case active.SelectorOnGrid():
		line += " | target " + active.Selector.String()
	default:
		line += " | target " + active.Selector.String() + " off map"
	}
	return line
}

// FacingRune returns an arrow glyph pointing in the facing direction.
func FacingRune(d grid.Direction) rune {
	switch d {
	case grid.DirUp:
		return '^'
	case grid.DirDown:
		return 'v'
	case grid.DirLeft:
		return '<'
	case grid.DirRight:
		return '>'
	default:
		return '@'
	}
}

func indexOf(p grid.Position) int {
	i, err := grid.ToIndex(p)
	if err != nil {
		return 0
	}
	return i
}
