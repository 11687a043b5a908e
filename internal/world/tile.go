// Package world provides the battle map and its occupancy bookkeeping.
package world

import "fmt"

// NoOccupant marks a tile that no character is standing on.
const NoOccupant = -1

// Terrain is the kind of ground a tile is made of.
type Terrain rune

const (
	// TerrainEmpty is open floor.
	TerrainEmpty Terrain = '.'
	// TerrainWall is impassable and never occupied.
	TerrainWall Terrain = '#'
	// TerrainTrap is passable; it only marks the ground.
	TerrainTrap Terrain = '^'
)

// String returns a human-readable terrain name.
func (t Terrain) String() string {
	switch t {
	case TerrainEmpty, 0:
		return "empty"
	case TerrainWall:
		return "wall"
	case TerrainTrap:
		return "trap"
	default:
		return "unknown"
	}
}

// Rune returns the terrain's display character.
func (t Terrain) Rune() rune {
	if t == 0 {
		return rune(TerrainEmpty)
	}
	return rune(t)
}

// TerrainFromCode converts a layout table code (0 empty, 1 wall, 2 trap) to a Terrain.
func TerrainFromCode(code int) (Terrain, error) {
	switch code {
	case 0:
		return TerrainEmpty, nil
	case 1:
		return TerrainWall, nil
	case 2:
		return TerrainTrap, nil
	default:
		return TerrainEmpty, fmt.Errorf("unknown terrain code %d", code)
	}
}

// Tile represents a single map cell. The zero Tile is empty, unoccupied floor.
type Tile struct {
	Terrain  Terrain
	Cooldown int // Reserved for trap timing

	occupant int // character id + 1, zero when nobody stands here
}

// Occupant returns the id of the character standing on the tile, or NoOccupant.
func (t Tile) Occupant() int {
	return t.occupant - 1
}

// Occupied returns true if a character stands on the tile.
func (t Tile) Occupied() bool {
	return t.occupant != 0
}

func (t *Tile) setOccupant(charID int) {
	t.occupant = charID + 1
}

// IsPassable returns true if a character may enter the tile.
// Walls never are; anything else is passable while unoccupied.
func (t Tile) IsPassable() bool {
	if t.Terrain == TerrainWall {
		return false
	}
	return !t.Occupied()
}
