package core

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned when a position lies outside the board.
var ErrOutOfRange = errors.New("position out of range")

// Bounds is the size of a tile grid in columns and rows.
type Bounds struct {
	Columns int
	Rows    int
}

// NewBounds creates grid bounds with the given dimensions.
func NewBounds(columns, rows int) Bounds {
	return Bounds{Columns: columns, Rows: rows}
}

// Valid reports whether both dimensions are positive.
func (b Bounds) Valid() bool {
	return b.Columns > 0 && b.Rows > 0
}

// Cells returns the number of tiles on the grid.
func (b Bounds) Cells() int {
	return b.Columns * b.Rows
}

// Contains returns true if p lies on the grid.
func (b Bounds) Contains(p Pos) bool {
	return p.Col >= 0 && p.Col < b.Columns && p.Row >= 0 && p.Row < b.Rows
}

// Clamp pulls p onto the grid, each axis independently.
func (b Bounds) Clamp(p Pos) Pos {
	return Pos{
		Col: Clamp(p.Col, 0, b.Columns-1),
		Row: Clamp(p.Row, 0, b.Rows-1),
	}
}

// String formats the board as "COLSxROWS".
func (b Bounds) String() string {
	return fmt.Sprintf("%dx%d", b.Columns, b.Rows)
}

// Pos is an immutable tile coordinate. Two positions are equal iff both
// components match, so Pos is safe to compare with == and use as a map key.
type Pos struct {
	Col int `yaml:"col"`
	Row int `yaml:"row"`
}

// NewPos creates a position, failing with ErrOutOfRange if it is off the grid.
func NewPos(col, row int, b Bounds) (Pos, error) {
	p := Pos{Col: col, Row: row}
	if !b.Contains(p) {
		return Pos{}, fmt.Errorf("core: (%d, %d) on %dx%d board: %w", col, row, b.Columns, b.Rows, ErrOutOfRange)
	}
	return p, nil
}

// MustPos is like NewPos but panics on error. Intended for tests and constants.
func MustPos(col, row int, b Bounds) Pos {
	p, err := NewPos(col, row, b)
	if err != nil {
		panic(err)
	}
	return p
}

// Equal returns true if both positions refer to the same tile.
func (p Pos) Equal(other Pos) bool {
	return p == other
}

// Translate returns p moved by (dCol, dRow), clamped to the board.
// A position on the last column moving right stays on the last column.
func (p Pos) Translate(dCol, dRow int, b Bounds) Pos {
	return b.Clamp(Pos{Col: p.Col + dCol, Row: p.Row + dRow})
}

// Step returns p moved one tile in direction d, clamped to the board.
func (p Pos) Step(d Direction, b Bounds) Pos {
	dc, dr := d.Delta()
	return p.Translate(dc, dr, b)
}

// String returns the position as "(col,row)".
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Col, p.Row)
}

// Direction is a one-tile movement request.
type Direction int32

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Delta returns the column and row offsets for the direction.
func (d Direction) Delta() (dCol, dRow int) {
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

// String returns a lowercase name for the direction.
func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection maps a single script letter (U, D, L, R, or '.' for none)
// to a direction.
func ParseDirection(r rune) (Direction, bool) {
	switch r {
	case 'U', 'u':
		return DirUp, true
	case 'D', 'd':
		return DirDown, true
	case 'L', 'l':
		return DirLeft, true
	case 'R', 'r':
		return DirRight, true
	case '.', '-':
		return DirNone, true
	}
	return DirNone, false
}
