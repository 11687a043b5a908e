package ui

import (
	"strings"

	"github.com/samdwyer/asciiwar/internal/grid"
	"github.com/samdwyer/asciiwar/internal/match"
)

// FormatASCII draws the snapshot as plain text: terrain runes, character
// symbols on their tiles and '+' for an on-grid selector, one row per line.
func FormatASCII(snap match.Snapshot) string {
	rows := make([][]rune, grid.Height)
	for y := range rows {
		rows[y] = make([]rune, grid.Width)
	}
	for _, t := range snap.Tiles {
		rows[t.Pos.Y][t.Pos.X] = t.Terrain.Rune()
	}
	if active := snap.Active(); active.SelectorOnGrid() {
		rows[active.Selector.Y][active.Selector.X] = '+'
	}
	for _, c := range snap.Characters {
		if c.Alive && c.Position.InBounds() {
			rows[c.Position.Y][c.Position.X] = c.Symbol
		}
	}

	var b strings.Builder
	for _, row := range rows {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}
