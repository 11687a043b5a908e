package world

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/asciiwar/internal/grid"
	"github.com/samdwyer/asciiwar/internal/telemetry"
)

// ErrInvalidMove is returned when an occupancy or terrain precondition is violated.
var ErrInvalidMove = errors.New("invalid move")

// Map is the fixed-size battle grid. The zero Map is all empty, unoccupied floor.
type Map struct {
	tiles [grid.Cells]Tile
}

// NewMap creates a map of empty, unoccupied tiles.
func NewMap() *Map {
	m := &Map{}
	for i := range m.tiles {
		m.tiles[i].Terrain = TerrainEmpty
	}
	return m
}

// Build lays out terrain from a per-cell table indexed by grid.ToIndex.
func (m *Map) Build(ctx context.Context, terrain []Terrain) error {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "map.build")
	defer span.End()

	if len(terrain) != grid.Cells {
		return fmt.Errorf("layout has %d cells, want %d", len(terrain), grid.Cells)
	}

	walls, traps := 0, 0
	for i, kind := range terrain {
		pos, err := grid.FromIndex(i)
		if err != nil {
			return err
		}
		if err := m.SetTerrain(pos, kind); err != nil {
			return err
		}
		switch kind {
		case TerrainWall:
			walls++
		case TerrainTrap:
			traps++
		}
	}

	span.SetAttributes(
		attribute.Int("map.walls", walls),
		attribute.Int("map.traps", traps),
	)
	return nil
}

// TileAt returns the tile at pos.
func (m *Map) TileAt(pos grid.Position) (Tile, error) {
	i, err := grid.ToIndex(pos)
	if err != nil {
		return Tile{}, err
	}
	return m.tiles[i], nil
}

// IsPassable returns true if a character could step onto pos.
// Off-grid positions are never passable.
func (m *Map) IsPassable(pos grid.Position) bool {
	t, err := m.TileAt(pos)
	if err != nil {
		return false
	}
	return t.IsPassable()
}

// SetTerrain changes the terrain kind at pos. Only used while setting up a match.
func (m *Map) SetTerrain(pos grid.Position, kind Terrain) error {
	i, err := grid.ToIndex(pos)
	if err != nil {
		return err
	}
	if kind == TerrainWall && m.tiles[i].Occupied() {
		return fmt.Errorf("wall at occupied %s: %w", pos, ErrInvalidMove)
	}
	m.tiles[i].Terrain = kind
	return nil
}

// Place marks pos as occupied by charID. Used to seat characters at match start.
func (m *Map) Place(pos grid.Position, charID int) error {
	i, err := grid.ToIndex(pos)
	if err != nil {
		return err
	}
	if charID < 0 {
		return fmt.Errorf("place at %s: negative id %d: %w", pos, charID, ErrInvalidMove)
	}
	if !m.tiles[i].IsPassable() {
		return fmt.Errorf("place %d at %s: %w", charID, pos, ErrInvalidMove)
	}
	m.tiles[i].setOccupant(charID)
	return nil
}

// MoveOccupant moves charID from one tile to another.
// from must hold charID and to must be passable; otherwise the map is left untouched.
func (m *Map) MoveOccupant(from, to grid.Position, charID int) error {
	fi, err := grid.ToIndex(from)
	if err != nil {
		return err
	}
	ti, err := grid.ToIndex(to)
	if err != nil {
		return err
	}
	if !m.tiles[fi].Occupied() || m.tiles[fi].Occupant() != charID {
		return fmt.Errorf("move %d from %s: tile held by %d: %w", charID, from, m.tiles[fi].Occupant(), ErrInvalidMove)
	}
	if !m.tiles[ti].IsPassable() {
		return fmt.Errorf("move %d to %s: %w", charID, to, ErrInvalidMove)
	}

	m.tiles[fi].occupant = 0
	m.tiles[ti].setOccupant(charID)
	return nil
}

// Find returns the position of the tile occupied by charID.
func (m *Map) Find(charID int) (grid.Position, bool) {
	for i, t := range m.tiles {
		if t.Occupied() && t.Occupant() == charID {
			pos, _ := grid.FromIndex(i)
			return pos, true
		}
	}
	return grid.Position{}, false
}

// Tiles returns a copy of every tile, in index order.
func (m *Map) Tiles() []Tile {
	out := make([]Tile, grid.Cells)
	copy(out, m.tiles[:])
	return out
}
