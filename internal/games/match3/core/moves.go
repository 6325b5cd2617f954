package core

// Move is an adjacent swap that creates at least one run.
type Move struct {
	A, B    Pos
	Touched int // Cells covered by the runs the swap creates
}

// SwapRuns returns the valid runs at both endpoints of a swap that has
// already been applied to g.
func SwapRuns(g *Grid, a, b Pos) []Run {
	return RunsAt(g, a, b)
}

func trySwap(g *Grid, a, b Pos, moves []Move) []Move {
	if g.IsEmpty(a) || g.IsEmpty(b) || g.Get(a) == g.Get(b) {
		return moves
	}
	g.Swap(a, b)
	runs := SwapRuns(g, a, b)
	if len(runs) > 0 {
		moves = append(moves, Move{A: a, B: b, Touched: len(RunCells(runs))})
	}
	// undo swap
	g.Swap(a, b)
	return moves
}

// FindMoves enumerates every adjacent swap that would create a run.
// The grid is left unchanged.
func FindMoves(g *Grid) []Move {
	var moves []Move
	for r := 0; r < g.Size(); r++ {
		for c := 0; c < g.Size(); c++ {
			a := P(r, c)
			if right := a.Add(0, 1); g.InBounds(right) {
				moves = trySwap(g, a, right, moves)
			}
			if down := a.Add(1, 0); g.InBounds(down) {
				moves = trySwap(g, a, down, moves)
			}
		}
	}
	return moves
}

// HasMove reports whether any adjacent swap would create a run.
func HasMove(g *Grid) bool {
	for r := 0; r < g.Size(); r++ {
		for c := 0; c < g.Size(); c++ {
			a := P(r, c)
			for _, b := range []Pos{a.Add(0, 1), a.Add(1, 0)} {
				if g.InBounds(b) && len(trySwap(g, a, b, nil)) > 0 {
					return true
				}
			}
		}
	}
	return false
}

// BestMove returns the move touching the most cells, preferring the first
// found on ties. ok is false when no move exists.
func BestMove(g *Grid) (Move, bool) {
	moves := FindMoves(g)
	if len(moves) == 0 {
		return Move{}, false
	}
	best := moves[0]
	for _, m := range moves[1:] {
		if m.Touched > best.Touched {
			best = m
		}
	}
	return best, true
}
