package core

import (
	"fmt"
	"strings"
)

// DefaultSize is the standard board dimension.
const DefaultSize = 12

// Grid is a square board of token kinds.
// Cells are stored in row-major order: index = row*N + col.
type Grid struct {
	n     int
	cells []Kind
}

// NewGrid creates an empty n×n grid.
func NewGrid(n int) *Grid {
	if n < 1 {
		n = 1
	}
	return &Grid{
		n:     n,
		cells: make([]Kind, n*n),
	}
}

// GridFromRows builds a grid from a square matrix of kinds.
func GridFromRows(rows [][]Kind) (*Grid, error) {
	n := len(rows)
	if n == 0 {
		return nil, fmt.Errorf("grid: no rows")
	}
	g := NewGrid(n)
	for r, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("grid: row %d has %d cells, want %d", r, len(row), n)
		}
		for c, k := range row {
			g.Set(P(r, c), k)
		}
	}
	return g, nil
}

// ParseGrid builds a grid from lines of single-letter kind codes
// (see Kind.Char). Whitespace inside a line is ignored.
func ParseGrid(lines ...string) (*Grid, error) {
	rows := make([][]Kind, 0, len(lines))
	for i, line := range lines {
		line = strings.ReplaceAll(line, " ", "")
		row := make([]Kind, 0, len(line))
		for _, ch := range line {
			k, ok := ParseKind(string(ch))
			if !ok {
				return nil, fmt.Errorf("grid: line %d: unknown kind %q", i, ch)
			}
			row = append(row, k)
		}
		rows = append(rows, row)
	}
	return GridFromRows(rows)
}

// Size returns the board dimension N.
func (g *Grid) Size() int {
	return g.n
}

func (g *Grid) index(p Pos) int {
	return p.Row*g.n + p.Col
}

// InBounds reports whether p lies within [0, N) on both axes.
func (g *Grid) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < g.n && p.Col >= 0 && p.Col < g.n
}

// Get returns the kind at p, or KindEmpty when out of bounds.
func (g *Grid) Get(p Pos) Kind {
	if !g.InBounds(p) {
		return KindEmpty
	}
	return g.cells[g.index(p)]
}

// Set stores k at p. Out-of-bounds writes are ignored.
func (g *Grid) Set(p Pos, k Kind) {
	if g.InBounds(p) {
		g.cells[g.index(p)] = k
	}
}

// Clear empties the cell at p.
func (g *Grid) Clear(p Pos) {
	g.Set(p, KindEmpty)
}

// IsEmpty reports whether the cell at p holds no token.
func (g *Grid) IsEmpty(p Pos) bool {
	return !g.Get(p).Occupied()
}

// Swap exchanges the contents of a and b.
func (g *Grid) Swap(a, b Pos) {
	if !g.InBounds(a) || !g.InBounds(b) {
		return
	}
	ia, ib := g.index(a), g.index(b)
	g.cells[ia], g.cells[ib] = g.cells[ib], g.cells[ia]
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Kind, len(g.cells))
	copy(cells, g.cells)
	return &Grid{n: g.n, cells: cells}
}

// Equal reports whether both grids have the same size and contents.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.n != other.n {
		return false
	}
	for i, k := range g.cells {
		if other.cells[i] != k {
			return false
		}
	}
	return true
}

// OccupiedCount returns the number of cells holding a token.
func (g *Grid) OccupiedCount() int {
	count := 0
	for _, k := range g.cells {
		if k.Occupied() {
			count++
		}
	}
	return count
}

// Full reports whether every cell holds a token.
func (g *Grid) Full() bool {
	return g.OccupiedCount() == len(g.cells)
}

// Rows returns a copy of the grid as a row-major matrix.
func (g *Grid) Rows() [][]Kind {
	rows := make([][]Kind, g.n)
	for r := range rows {
		rows[r] = make([]Kind, g.n)
		copy(rows[r], g.cells[r*g.n:(r+1)*g.n])
	}
	return rows
}

// String renders the grid using Kind.Char, one line per row.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.n*g.n + g.n)
	for r := 0; r < g.n; r++ {
		if r > 0 {
			sb.WriteRune('\n')
		}
		for c := 0; c < g.n; c++ {
			sb.WriteRune(g.Get(P(r, c)).Char())
		}
	}
	return sb.String()
}
