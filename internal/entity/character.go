// Package entity provides the characters that fight on the map.
package entity

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/asciiwar/internal/gamedata"
	"github.com/samdwyer/asciiwar/internal/grid"
)

// Status represents whether a character can still act.
type Status int

const (
	StatusAlive Status = iota
	StatusDead
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusAlive:
		return "alive"
	case StatusDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Character is one player's unit on the map.
type Character struct {
	ID       int           // Stable for the whole match; doubles as the map occupancy marker
	Name     string        // Display name
	Symbol   rune          // Display symbol for the status line
	Color    tcell.Color   // Draw color
	Position grid.Position // Current cell
	Facing   grid.Direction
	HP       int
	Status   Status
	Mobility int           // Base movement points per turn
	Selector grid.Position // Target cell, only meaningful while attacking

	movement      int // Move phase budget
	selectorSteps int // Attack phase counter, reset with the budget but never spent
}

// NewCharacter creates a living character with a full movement budget.
func NewCharacter(id int, name string, pos grid.Position, facing grid.Direction, hp, mobility int) *Character {
	if hp < 0 {
		hp = 0
	}
	if mobility < 0 {
		mobility = 0
	}
	return &Character{
		ID:            id,
		Name:          name,
		Symbol:        '@',
		Color:         tcell.ColorWhite,
		Position:      pos,
		Facing:        facing,
		HP:            hp,
		Status:        StatusAlive,
		Mobility:      mobility,
		Selector:      pos,
		movement:      mobility,
		selectorSteps: mobility,
	}
}

// NewCharacterFromDef creates a character from a match definition.
func NewCharacterFromDef(def *gamedata.CharacterDef) (*Character, error) {
	facing, err := grid.ParseDirection(def.Facing)
	if err != nil {
		return nil, err
	}
	c := NewCharacter(def.ID, def.Name, grid.Pos(def.X, def.Y), facing, def.HP, def.Mobility)
	c.Symbol = def.SymbolRune()
	c.Color = def.TCellColor()
	return c, nil
}

// IsAlive returns true unless the character has been marked dead.
func (c *Character) IsAlive() bool { return c.Status == StatusAlive }

// MovementPoints returns the remaining Move phase budget.
func (c *Character) MovementPoints() int { return c.movement }

// SelectorSteps returns the Attack phase counter.
func (c *Character) SelectorSteps() int { return c.selectorSteps }

// ApplyMove turns the character to face d. Facing follows the last attempted
// direction, so this happens whether or not the step itself is allowed.
// Returns false only for an unrecognized direction.
func (c *Character) ApplyMove(d grid.Direction) bool {
	if !d.Valid() {
		return false
	}
	c.Facing = d
	return true
}

// SetPosition records the character's new cell. The map must already agree.
func (c *Character) SetPosition(pos grid.Position) {
	c.Position = pos
}

// SpendMovementPoint consumes one movement point, never dropping below zero.
func (c *Character) SpendMovementPoint() {
	if c.movement > 0 {
		c.movement--
	}
}

// ResetMovement restores the budget to the base mobility.
func (c *Character) ResetMovement() {
	c.movement = c.Mobility
}

// BeginTargeting puts the selector on the character's own cell and
// restores both counters, as on every Attack phase entry.
func (c *Character) BeginTargeting() {
	c.Selector = c.Position
	c.selectorSteps = c.Mobility
	c.ResetMovement()
}

// MoveSelector steps the selector one cell in direction d. There is no
// bounds or occupancy check; the selector may leave the grid.
func (c *Character) MoveSelector(d grid.Direction) bool {
	if !d.Valid() {
		return false
	}
	c.Selector = c.Selector.Step(d)
	return true
}
