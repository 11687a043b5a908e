package grid

import (
	"fmt"
	"strings"
)

// Direction is one of the four compass directions.
type Direction int

const (
	// DirNone is the zero value and never moves anything.
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Valid returns true for the four compass directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// Delta returns the (dx, dy) offset of one step in this direction.
func (d Direction) Delta() (int, int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// ParseDirection converts a name such as "up" or "Right" to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return DirUp, nil
	case "down":
		return DirDown, nil
	case "left":
		return DirLeft, nil
	case "right":
		return DirRight, nil
	default:
		return DirNone, fmt.Errorf("unknown direction %q", s)
	}
}
