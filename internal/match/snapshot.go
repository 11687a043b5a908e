package match

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/asciiwar/internal/grid"
	"github.com/samdwyer/asciiwar/internal/world"
)

// TileView is the drawable state of one tile.
type TileView struct {
	Pos      grid.Position
	Terrain  world.Terrain
	Occupant int // world.NoOccupant when empty
}

// CharacterView is the drawable state of one character.
type CharacterView struct {
	ID       int
	Name     string
	Symbol   rune
	Color    tcell.Color
	Position grid.Position
	Facing   grid.Direction
	HP       int
	Alive    bool
	Active   bool

	// Only set for the active character during the Attack phase.
	Targeting bool
	Selector  grid.Position
}

// SelectorOnGrid returns true when the selector is shown and lies on the map.
func (v CharacterView) SelectorOnGrid() bool {
	return v.Targeting && v.Selector.InBounds()
}

// Snapshot is a read-only copy of everything the renderer may show.
type Snapshot struct {
	Name           string
	Turn           int
	Phase          Phase
	ActiveIndex    int
	MovementPoints int
	Tiles          []TileView // Index order, see grid.ToIndex
	Characters     []CharacterView
}

// Active returns the view of the acting character.
func (s Snapshot) Active() CharacterView {
	return s.Characters[s.ActiveIndex]
}

// Snapshot captures the current state for rendering.
func (e *Engine) Snapshot() Snapshot {
	tiles := e.board.Tiles()
	snap := Snapshot{
		Name:           e.name,
		Turn:           e.turn,
		Phase:          e.phase,
		ActiveIndex:    e.active,
		MovementPoints: e.current().MovementPoints(),
		Tiles:          make([]TileView, len(tiles)),
		Characters:     make([]CharacterView, len(e.characters)),
	}

	for i, t := range tiles {
		pos, _ := grid.FromIndex(i)
		snap.Tiles[i] = TileView{Pos: pos, Terrain: t.Terrain, Occupant: t.Occupant()}
	}

	for i := range e.characters {
		snap.Characters[i] = e.view(i)
	}
	return snap
}

// view copies roster entry i into a CharacterView.
func (e *Engine) view(i int) CharacterView {
	c := e.characters[i]
	v := CharacterView{
		ID:       c.ID,
		Name:     c.Name,
		Symbol:   c.Symbol,
		Color:    c.Color,
		Position: c.Position,
		Facing:   c.Facing,
		HP:       c.HP,
		Alive:    c.IsAlive(),
		Active:   i == e.active,
	}
	if v.Active && e.phase == PhaseAttack {
		v.Targeting = true
		v.Selector = c.Selector
	}
	return v
}
