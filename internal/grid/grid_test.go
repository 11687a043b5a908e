package grid

import (
	"errors"
	"testing"
)

func TestIndexRoundTrip(t *testing.T) {
	for i := 0; i < Cells; i++ {
		p, err := FromIndex(i)
		if err != nil {
			t.Fatalf("FromIndex(%d) error: %v", i, err)
		}
		got, err := ToIndex(p)
		if err != nil {
			t.Fatalf("ToIndex(%v) error: %v", p, err)
		}
		if got != i {
			t.Errorf("ToIndex(FromIndex(%d)) = %d", i, got)
		}
	}
}

func TestToIndexLayout(t *testing.T) {
	tests := []struct {
		pos  Position
		want int
	}{
		{Pos(0, 0), 0},
		{Pos(1, 1), 17},
		{Pos(15, 0), 15},
		{Pos(0, 1), 16},
		{Pos(15, 15), 255},
	}

	for _, tt := range tests {
		got, err := ToIndex(tt.pos)
		if err != nil {
			t.Errorf("ToIndex(%v) error: %v", tt.pos, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ToIndex(%v) = %d, want %d", tt.pos, got, tt.want)
		}
	}
}

func TestIndexOutOfBounds(t *testing.T) {
	for _, p := range []Position{Pos(-1, 0), Pos(0, -1), Pos(Width, 0), Pos(0, Height)} {
		if _, err := ToIndex(p); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("ToIndex(%v) error = %v, want ErrOutOfBounds", p, err)
		}
	}
	for _, i := range []int{-1, Cells, Cells + 100} {
		if _, err := FromIndex(i); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("FromIndex(%d) error = %v, want ErrOutOfBounds", i, err)
		}
	}
}

func TestNeighbor(t *testing.T) {
	tests := []struct {
		pos    Position
		dir    Direction
		want   Position
		wantOK bool
	}{
		{Pos(1, 1), DirUp, Pos(1, 0), true},
		{Pos(1, 1), DirDown, Pos(1, 2), true},
		{Pos(1, 1), DirLeft, Pos(0, 1), true},
		{Pos(1, 1), DirRight, Pos(2, 1), true},
		{Pos(4, 0), DirUp, Position{}, false},
		{Pos(0, 4), DirLeft, Position{}, false},
		{Pos(15, 4), DirRight, Position{}, false},
		{Pos(4, 15), DirDown, Position{}, false},
		{Pos(4, 4), DirNone, Position{}, false},
	}

	for _, tt := range tests {
		got, ok := Neighbor(tt.pos, tt.dir)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("Neighbor(%v, %v) = %v, %v; want %v, %v", tt.pos, tt.dir, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestNeighborNeverLeavesGrid(t *testing.T) {
	dirs := []Direction{DirUp, DirDown, DirLeft, DirRight}
	for i := 0; i < Cells; i++ {
		p, _ := FromIndex(i)
		for _, d := range dirs {
			n, ok := Neighbor(p, d)
			if ok && !n.InBounds() {
				t.Errorf("Neighbor(%v, %v) = %v is off the grid", p, d, n)
			}
		}
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		input   string
		want    Direction
		wantErr bool
	}{
		{"up", DirUp, false},
		{"Down", DirDown, false},
		{" LEFT ", DirLeft, false},
		{"right", DirRight, false},
		{"north", DirNone, true},
	}

	for _, tt := range tests {
		got, err := ParseDirection(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDirection(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseDirection(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
