package core

import "fmt"

// Pos addresses a grid cell. Row 0 is the top of the board; gravity pulls
// tokens toward higher rows.
type Pos struct {
	Row int
	Col int
}

// P is a convenience constructor for Pos.
func P(row, col int) Pos {
	return Pos{Row: row, Col: col}
}

// String returns a string representation of the position.
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Add returns a new Pos offset by (dRow, dCol).
func (p Pos) Add(dRow, dCol int) Pos {
	return Pos{Row: p.Row + dRow, Col: p.Col + dCol}
}

// Manhattan returns the Manhattan distance to another position.
func (p Pos) Manhattan(other Pos) int {
	dr := p.Row - other.Row
	dc := p.Col - other.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}

// IsNeighbour reports whether a and b are 4-adjacent: exactly one of the
// row/column deltas is 1 and the other is 0.
func IsNeighbour(a, b Pos) bool {
	return a.Manhattan(b) == 1
}
