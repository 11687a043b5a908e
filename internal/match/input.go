package match

import "github.com/samdwyer/asciiwar/internal/grid"

// Input is one logical event fed to the engine.
type Input int

const (
	InputUnrecognized Input = iota
	InputUp
	InputDown
	InputLeft
	InputRight
	InputConfirm
)

// String returns a human-readable input name.
func (in Input) String() string {
	switch in {
	case InputUp:
		return "up"
	case InputDown:
		return "down"
	case InputLeft:
		return "left"
	case InputRight:
		return "right"
	case InputConfirm:
		return "confirm"
	default:
		return "unrecognized"
	}
}

// Direction returns the compass direction of a directional input.
func (in Input) Direction() (grid.Direction, bool) {
	switch in {
	case InputUp:
		return grid.DirUp, true
	case InputDown:
		return grid.DirDown, true
	case InputLeft:
		return grid.DirLeft, true
	case InputRight:
		return grid.DirRight, true
	default:
		return grid.DirNone, false
	}
}

// Source delivers one input at a time. ok is false once the source is exhausted
// or the player asked to leave.
type Source interface {
	Next() (in Input, ok bool)
}

// Script is a Source replaying a fixed sequence of inputs.
type Script []Input

// Next pops the first remaining input.
func (s *Script) Next() (Input, bool) {
	if len(*s) == 0 {
		return InputUnrecognized, false
	}
	in := (*s)[0]
	*s = (*s)[1:]
	return in, true
}
