package gamedata

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/asciiwar/internal/grid"
	"github.com/samdwyer/asciiwar/internal/world"
)

// RosterSize is the number of characters in a match.
const RosterSize = 2

// CharacterDef defines a character's starting state.
type CharacterDef struct {
	ID       int    `json:"id"`       // Unique id, also written into tile occupancy
	Name     string `json:"name"`     // Display name (e.g., "Alpha")
	Symbol   string `json:"symbol"`   // Single character for the status line
	Color    string `json:"color"`    // Hex color code (e.g., "#1A4DCC")
	X        int    `json:"x"`        // Starting column
	Y        int    `json:"y"`        // Starting row
	Facing   string `json:"facing"`   // "up", "down", "left" or "right"
	HP       int    `json:"hp"`       // Starting hit points
	Mobility int    `json:"mobility"` // Movement points per turn
}

// SymbolRune returns the symbol as a rune for rendering.
func (c *CharacterDef) SymbolRune() rune {
	if len(c.Symbol) == 0 {
		return '?'
	}
	return rune(c.Symbol[0])
}

// TCellColor returns the color as a tcell.Color.
func (c *CharacterDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(c.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// Palette holds the draw colors for terrain and the selector.
type Palette struct {
	Empty    string `json:"empty"`
	Wall     string `json:"wall"`
	Trap     string `json:"trap"`
	Selector string `json:"selector"`
}

// TerrainColor returns the tcell color for a terrain kind.
func (p Palette) TerrainColor(t world.Terrain) tcell.Color {
	var hex string
	switch t {
	case world.TerrainWall:
		hex = p.Wall
	case world.TerrainTrap:
		hex = p.Trap
	default:
		hex = p.Empty
	}
	color, err := ParseHexColor(hex)
	if err != nil {
		return tcell.ColorGray
	}
	return color
}

// SelectorColor returns the tcell color for the attack selector.
func (p Palette) SelectorColor() tcell.Color {
	color, err := ParseHexColor(p.Selector)
	if err != nil {
		return tcell.ColorBlue
	}
	return color
}

// MatchDef is the fixed initial layout of a match.
type MatchDef struct {
	Name       string         `json:"name"`
	Layout     []int          `json:"layout"` // Row-major terrain codes: 0 empty, 1 wall, 2 trap
	Characters []CharacterDef `json:"characters"`
	Palette    Palette        `json:"palette"`
}

// Terrain converts the layout codes to terrain kinds.
func (m *MatchDef) Terrain() ([]world.Terrain, error) {
	out := make([]world.Terrain, len(m.Layout))
	for i, code := range m.Layout {
		t, err := world.TerrainFromCode(code)
		if err != nil {
			return nil, fmt.Errorf("layout cell %d: %w", i, err)
		}
		out[i] = t
	}
	return out, nil
}

// Validate checks the definition can seat every character on the grid.
func (m *MatchDef) Validate() error {
	if len(m.Layout) != grid.Cells {
		return fmt.Errorf("layout has %d cells, want %d", len(m.Layout), grid.Cells)
	}
	terrain, err := m.Terrain()
	if err != nil {
		return err
	}
	if len(m.Characters) != RosterSize {
		return fmt.Errorf("roster has %d characters, want %d", len(m.Characters), RosterSize)
	}

	ids := make(map[int]bool)
	starts := make(map[grid.Position]bool)
	for _, c := range m.Characters {
		if c.ID < 0 {
			return fmt.Errorf("character %q has negative id %d", c.Name, c.ID)
		}
		if ids[c.ID] {
			return fmt.Errorf("duplicate character id %d", c.ID)
		}
		ids[c.ID] = true

		pos := grid.Pos(c.X, c.Y)
		idx, err := grid.ToIndex(pos)
		if err != nil {
			return fmt.Errorf("character %q start: %w", c.Name, err)
		}
		if terrain[idx] == world.TerrainWall {
			return fmt.Errorf("character %q starts inside a wall at %s", c.Name, pos)
		}
		if starts[pos] {
			return fmt.Errorf("character %q shares start %s", c.Name, pos)
		}
		starts[pos] = true

		if _, err := grid.ParseDirection(c.Facing); err != nil {
			return fmt.Errorf("character %q: %w", c.Name, err)
		}
		if c.HP < 0 || c.Mobility < 0 {
			return errors.New("hp and mobility must not be negative")
		}
	}
	return nil
}

// LoadMatch loads the match definition from the embedded match.json.
func LoadMatch() (*MatchDef, error) {
	def, err := Load[MatchDef]("match.json")
	if err != nil {
		return nil, err
	}
	if err := def.Validate(); err != nil {
		return nil, fmt.Errorf("match.json: %w", err)
	}
	return &def, nil
}

// LoadMatchFile loads a match definition from a JSON file on disk.
func LoadMatchFile(path string) (*MatchDef, error) {
	def, err := LoadFile[MatchDef](path)
	if err != nil {
		return nil, err
	}
	if err := def.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &def, nil
}

// MustLoadMatch loads the embedded match definition, panicking on error.
func MustLoadMatch() *MatchDef {
	def, err := LoadMatch()
	if err != nil {
		panic(err)
	}
	return def
}
