package gamedata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/samdwyer/asciiwar/internal/grid"
	"github.com/samdwyer/asciiwar/internal/world"
)

func TestLoadMatch(t *testing.T) {
	def, err := LoadMatch()
	if err != nil {
		t.Fatalf("Failed to load match: %v", err)
	}

	if len(def.Layout) != grid.Cells {
		t.Errorf("Expected %d layout cells, got %d", grid.Cells, len(def.Layout))
	}
	if len(def.Characters) != RosterSize {
		t.Fatalf("Expected %d characters, got %d", RosterSize, len(def.Characters))
	}

	a, b := def.Characters[0], def.Characters[1]
	if a.X != 1 || a.Y != 1 || a.Facing != "down" || a.Mobility != 3 || a.HP != 5 {
		t.Errorf("Unexpected first character: %+v", a)
	}
	if b.X != 13 || b.Y != 13 || b.Facing != "up" {
		t.Errorf("Unexpected second character: %+v", b)
	}
}

func TestMatchTerrain(t *testing.T) {
	def := MustLoadMatch()

	terrain, err := def.Terrain()
	if err != nil {
		t.Fatalf("Terrain() error: %v", err)
	}

	tests := []struct {
		pos  grid.Position
		want world.Terrain
	}{
		{grid.Pos(0, 0), world.TerrainWall},
		{grid.Pos(1, 1), world.TerrainEmpty},
		{grid.Pos(5, 1), world.TerrainWall},
		{grid.Pos(13, 4), world.TerrainTrap},
		{grid.Pos(15, 15), world.TerrainWall},
	}

	for _, tt := range tests {
		idx, _ := grid.ToIndex(tt.pos)
		if terrain[idx] != tt.want {
			t.Errorf("terrain at %v = %v, want %v", tt.pos, terrain[idx], tt.want)
		}
	}
}

func TestValidateRejects(t *testing.T) {
	base := func() *MatchDef {
		def := MustLoadMatch()
		cp := *def
		cp.Layout = append([]int(nil), def.Layout...)
		cp.Characters = append([]CharacterDef(nil), def.Characters...)
		return &cp
	}

	tests := []struct {
		name   string
		mutate func(*MatchDef)
	}{
		{"short layout", func(d *MatchDef) { d.Layout = d.Layout[:20] }},
		{"bad terrain code", func(d *MatchDef) { d.Layout[17] = 9 }},
		{"single character", func(d *MatchDef) { d.Characters = d.Characters[:1] }},
		{"duplicate id", func(d *MatchDef) { d.Characters[1].ID = d.Characters[0].ID }},
		{"negative id", func(d *MatchDef) { d.Characters[0].ID = -3 }},
		{"start in wall", func(d *MatchDef) { d.Characters[0].X, d.Characters[0].Y = 0, 0 }},
		{"start off grid", func(d *MatchDef) { d.Characters[0].X = grid.Width }},
		{"shared start", func(d *MatchDef) { d.Characters[1].X, d.Characters[1].Y = 1, 1 }},
		{"bad facing", func(d *MatchDef) { d.Characters[1].Facing = "north" }},
		{"negative mobility", func(d *MatchDef) { d.Characters[1].Mobility = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := base()
			tt.mutate(def)
			if err := def.Validate(); err == nil {
				t.Error("Validate() should fail")
			}
		})
	}
}

func TestLoadMatchFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "match.json")
	content, err := dataFS.ReadFile("match.json")
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	def, err := LoadMatchFile(path)
	if err != nil {
		t.Fatalf("LoadMatchFile() error: %v", err)
	}
	if def.Name != "Fight!" {
		t.Errorf("Name = %q, want %q", def.Name, "Fight!")
	}

	if _, err := LoadMatchFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("LoadMatchFile() on missing file should fail")
	}

	bad := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(bad, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadMatchFile(bad); err == nil {
		t.Error("LoadMatchFile() on malformed JSON should fail")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#804D4D", true},
		{"#000000", true},
		{"invalid", false},
		{"#FFF", false}, // Too short
		{"#GG0000", false},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}
}

func TestCharacterDefMethods(t *testing.T) {
	def := CharacterDef{Symbol: "A", Color: "#1A4DCC"}

	if def.SymbolRune() != 'A' {
		t.Errorf("Expected symbol 'A', got %c", def.SymbolRune())
	}
	if color := def.TCellColor(); color == 0 {
		t.Error("TCellColor returned zero color")
	}

	empty := CharacterDef{}
	if empty.SymbolRune() != '?' {
		t.Errorf("Expected fallback symbol '?', got %c", empty.SymbolRune())
	}
}

func TestPaletteFallbacks(t *testing.T) {
	p := Palette{Empty: "#804D4D", Wall: "bogus"}

	if got := p.TerrainColor(world.TerrainEmpty); got != MustParseHexColor("#804D4D") {
		t.Errorf("TerrainColor(empty) = %v", got)
	}
	if got := p.TerrainColor(world.TerrainWall); got == 0 {
		t.Error("TerrainColor(wall) with bad hex should fall back, got zero color")
	}
	if got := p.SelectorColor(); got == 0 {
		t.Error("SelectorColor() with empty hex should fall back, got zero color")
	}
}
