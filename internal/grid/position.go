// Package grid provides coordinate addressing for the fixed-size battle map.
package grid

import (
	"errors"
	"fmt"
)

const (
	// Width is the number of columns in the map.
	Width = 16
	// Height is the number of rows in the map.
	Height = 16
	// Cells is the total number of cells in the map.
	Cells = Width * Height
)

// ErrOutOfBounds is returned when a position or index falls outside the grid.
var ErrOutOfBounds = errors.New("position out of bounds")

// Position is a cell coordinate. X grows to the right, Y grows downward.
type Position struct {
	X, Y int
}

// Pos is a convenience constructor for Position.
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// InBounds returns true if the position lies inside [0,Width)x[0,Height).
func (p Position) InBounds() bool {
	return p.X >= 0 && p.X < Width && p.Y >= 0 && p.Y < Height
}

// Step returns the position one cell away in the given direction without any bounds check.
// Use Neighbor when the result must stay on the grid.
func (p Position) Step(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// ToIndex converts a position to its linear cell index x + y*Width.
func ToIndex(p Position) (int, error) {
	if !p.InBounds() {
		return 0, fmt.Errorf("index of %s: %w", p, ErrOutOfBounds)
	}
	return p.X + p.Y*Width, nil
}

// FromIndex converts a linear cell index back to a position.
func FromIndex(i int) (Position, error) {
	if i < 0 || i >= Cells {
		return Position{}, fmt.Errorf("position of index %d: %w", i, ErrOutOfBounds)
	}
	return Position{X: i % Width, Y: i / Width}, nil
}

// Neighbor returns the adjacent cell in direction d.
// ok is false when the neighbor would fall off the grid or d is not a compass direction.
func Neighbor(p Position, d Direction) (n Position, ok bool) {
	if !d.Valid() || !p.InBounds() {
		return Position{}, false
	}
	n = p.Step(d)
	if !n.InBounds() {
		return Position{}, false
	}
	return n, true
}
