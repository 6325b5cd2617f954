package core

// MinRunExclusive is the run length that must be exceeded for a run to count.
// Runs of three or more tokens are valid.
const MinRunExclusive = 2

// Axis selects the line along which runs are measured.
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

// String returns the string representation of an axis.
func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Direction is one of the eight compass directions on the grid.
type Direction uint8

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// Delta returns the (dRow, dCol) step for the direction. North decreases Row.
func (d Direction) Delta() (dRow, dCol int) {
	switch d {
	case North:
		return -1, 0
	case NorthEast:
		return -1, 1
	case East:
		return 0, 1
	case SouthEast:
		return 1, 1
	case South:
		return 1, 0
	case SouthWest:
		return 1, -1
	case West:
		return 0, -1
	case NorthWest:
		return -1, -1
	default:
		return 0, 0
	}
}

// Directions lists all eight compass directions clockwise from North.
func Directions() []Direction {
	return []Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}
}

// DirResult is the outcome of walking from a cell in one direction.
type DirResult struct {
	Length int  // Origin plus consecutive matching neighbours
	Valid  bool // Length > MinRunExclusive
}

// Run is a contiguous same-kind sequence along one axis.
type Run struct {
	Start  Pos // Top-most (vertical) or left-most (horizontal) cell
	Length int
	Axis   Axis
	Kind   Kind
	Valid  bool
}

// CheckDirection walks from p by (dRow, dCol) while the neighbour holds the
// same kind as p, stopping at the first mismatch or the board edge.
// An empty origin never forms a run and yields Length 0.
func CheckDirection(g *Grid, p Pos, dRow, dCol int) DirResult {
	origin := g.Get(p)
	if !origin.Occupied() {
		return DirResult{}
	}
	if dRow == 0 && dCol == 0 {
		return DirResult{Length: 1}
	}

	length := 1
	for q := p.Add(dRow, dCol); g.InBounds(q) && g.Get(q) == origin; q = q.Add(dRow, dCol) {
		length++
	}
	return DirResult{Length: length, Valid: length > MinRunExclusive}
}

// Check walks from p in the given compass direction.
func Check(g *Grid, p Pos, d Direction) DirResult {
	dRow, dCol := d.Delta()
	return CheckDirection(g, p, dRow, dCol)
}

// CheckAxis merges the two opposite walks along an axis into one run.
// The shared origin is counted once.
func CheckAxis(g *Grid, p Pos, axis Axis) Run {
	kind := g.Get(p)
	if !kind.Occupied() {
		return Run{Start: p, Axis: axis}
	}

	var back, forward DirResult
	if axis == Horizontal {
		back = Check(g, p, West)
		forward = Check(g, p, East)
	} else {
		back = Check(g, p, North)
		forward = Check(g, p, South)
	}

	length := back.Length + forward.Length - 1
	start := P(p.Row, p.Col-back.Length+1)
	if axis == Vertical {
		start = P(p.Row-back.Length+1, p.Col)
	}

	return Run{
		Start:  start,
		Length: length,
		Axis:   axis,
		Kind:   kind,
		Valid:  length > MinRunExclusive,
	}
}

// Cells returns the positions covered by the run.
func (r Run) Cells() []Pos {
	cells := make([]Pos, 0, r.Length)
	for i := 0; i < r.Length; i++ {
		if r.Axis == Horizontal {
			cells = append(cells, r.Start.Add(0, i))
		} else {
			cells = append(cells, r.Start.Add(i, 0))
		}
	}
	return cells
}

// Contains reports whether p lies on the run.
func (r Run) Contains(p Pos) bool {
	if r.Axis == Horizontal {
		return p.Row == r.Start.Row && p.Col >= r.Start.Col && p.Col < r.Start.Col+r.Length
	}
	return p.Col == r.Start.Col && p.Row >= r.Start.Row && p.Row < r.Start.Row+r.Length
}

type runKey struct {
	start Pos
	axis  Axis
}

// RunsAt returns the distinct valid runs, on either axis, that touch any of
// the given positions.
func RunsAt(g *Grid, positions ...Pos) []Run {
	var runs []Run
	seen := make(map[runKey]bool)
	for _, p := range positions {
		for _, axis := range []Axis{Horizontal, Vertical} {
			r := CheckAxis(g, p, axis)
			if !r.Valid {
				continue
			}
			key := runKey{start: r.Start, axis: axis}
			if seen[key] {
				continue
			}
			seen[key] = true
			runs = append(runs, r)
		}
	}
	return runs
}

// AllRuns scans the whole grid for valid runs.
func AllRuns(g *Grid) []Run {
	positions := make([]Pos, 0, g.Size()*g.Size())
	for r := 0; r < g.Size(); r++ {
		for c := 0; c < g.Size(); c++ {
			positions = append(positions, P(r, c))
		}
	}
	return RunsAt(g, positions...)
}

// RunCells returns the distinct cells covered by the runs. Cells shared by a
// horizontal and a vertical run appear once.
func RunCells(runs []Run) []Pos {
	var cells []Pos
	seen := make(map[Pos]bool)
	for _, r := range runs {
		for _, p := range r.Cells() {
			if seen[p] {
				continue
			}
			seen[p] = true
			cells = append(cells, p)
		}
	}
	return cells
}

// ColumnPositions returns every position of column col, top to bottom.
func ColumnPositions(g *Grid, col int) []Pos {
	positions := make([]Pos, g.Size())
	for r := range positions {
		positions[r] = P(r, col)
	}
	return positions
}
