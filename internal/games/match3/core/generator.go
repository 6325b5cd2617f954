package core

import (
	"errors"
	"fmt"
	"math/rand"
)

// MinKinds is the smallest kind count a board can be generated with.
const MinKinds = 3

var (
	// ErrTooFewKinds is returned when a generator is configured with fewer
	// than MinKinds token kinds.
	ErrTooFewKinds = errors.New("match3: too few token kinds")

	// ErrValidationDiverged is returned when Validate hits its pass cap with
	// runs still present on the board.
	ErrValidationDiverged = errors.New("match3: validation did not converge")
)

// GenParams configures board generation.
type GenParams struct {
	Kinds     int   // Number of token kinds in play (MinKinds..MaxKinds)
	Seed      int64 // RNG seed for deterministic boards
	MaxPasses int   // Validation pass cap (0 = unlimited)
}

// DefaultGenParams returns the classic board settings.
func DefaultGenParams() GenParams {
	return GenParams{
		Kinds:     6,
		Seed:      0,
		MaxPasses: 0,
	}
}

// Generator fills, validates and regenerates boards.
type Generator struct {
	rng       *rand.Rand
	kinds     []Kind
	maxPasses int
}

// NewGenerator creates a generator from params.
func NewGenerator(params GenParams) (*Generator, error) {
	if params.Kinds < MinKinds {
		return nil, fmt.Errorf("%w: got %d, need at least %d", ErrTooFewKinds, params.Kinds, MinKinds)
	}
	if params.Kinds > MaxKinds {
		params.Kinds = MaxKinds
	}
	if params.MaxPasses < 0 {
		params.MaxPasses = 0
	}
	return &Generator{
		rng:       rand.New(rand.NewSource(params.Seed)),
		kinds:     Kinds(params.Kinds),
		maxPasses: params.MaxPasses,
	}, nil
}

// KindSet returns the kinds this generator draws from.
func (gen *Generator) KindSet() []Kind {
	out := make([]Kind, len(gen.kinds))
	copy(out, gen.kinds)
	return out
}

// SetKinds changes the number of kinds drawn from. Tokens already on the
// board keep their kinds.
func (gen *Generator) SetKinds(n int) error {
	if n < MinKinds {
		return fmt.Errorf("%w: got %d, need at least %d", ErrTooFewKinds, n, MinKinds)
	}
	gen.kinds = Kinds(n)
	return nil
}

// RandomKind draws a kind uniformly from the allowed set.
func (gen *Generator) RandomKind() Kind {
	return gen.kinds[gen.rng.Intn(len(gen.kinds))]
}

// RandomizeCell assigns a fresh random kind to p.
func (gen *Generator) RandomizeCell(g *Grid, p Pos) {
	g.Set(p, gen.RandomKind())
}

// InitializeRandomly assigns every cell a random kind. The result may
// contain runs; call Validate afterwards.
func (gen *Generator) InitializeRandomly(g *Grid) {
	for r := 0; r < g.Size(); r++ {
		for c := 0; c < g.Size(); c++ {
			gen.RandomizeCell(g, P(r, c))
		}
	}
}

// Validate re-rolls every run on the board until a full pass finds none.
// It returns the number of passes that found at least one run.
func (gen *Generator) Validate(g *Grid) (int, error) {
	_, passes, err := gen.Revalidate(g)
	return passes, err
}

// Revalidate is Validate that also reports the distinct cells it re-rolled,
// in the order they were first touched.
func (gen *Generator) Revalidate(g *Grid) ([]Pos, int, error) {
	var rerolled []Pos
	touched := make(map[Pos]bool)

	passes := 0
	for {
		if gen.maxPasses > 0 && passes >= gen.maxPasses {
			if len(AllRuns(g)) > 0 {
				return rerolled, passes, fmt.Errorf("%w after %d passes", ErrValidationDiverged, passes)
			}
			return rerolled, passes, nil
		}

		count := 0
		for r := 0; r < g.Size(); r++ {
			for c := 0; c < g.Size(); c++ {
				for _, axis := range []Axis{Horizontal, Vertical} {
					run := CheckAxis(g, P(r, c), axis)
					if !run.Valid {
						continue
					}
					for _, p := range run.Cells() {
						gen.RandomizeCell(g, p)
						if !touched[p] {
							touched[p] = true
							rerolled = append(rerolled, p)
						}
					}
					count++
				}
			}
		}
		if count == 0 {
			return rerolled, passes, nil
		}
		passes++
	}
}

// RegenerateColumn fills the empty cells at the top of a column, from row 0
// down to the first occupied cell, and returns exactly the filled positions.
// Cells at and below the first occupied cell are untouched.
func (gen *Generator) RegenerateColumn(g *Grid, col int) []Pos {
	var filled []Pos
	for r := 0; r < g.Size(); r++ {
		p := P(r, col)
		if !g.InBounds(p) || !g.IsEmpty(p) {
			break
		}
		gen.RandomizeCell(g, p)
		filled = append(filled, p)
	}
	return filled
}

// Shuffle replaces the board with a fresh validated one.
func (gen *Generator) Shuffle(g *Grid) (int, error) {
	gen.InitializeRandomly(g)
	return gen.Validate(g)
}

// NewBoard creates an n×n board that is fully occupied and run-free.
func (gen *Generator) NewBoard(n int) (*Grid, error) {
	g := NewGrid(n)
	if _, err := gen.Shuffle(g); err != nil {
		return nil, err
	}
	return g, nil
}
