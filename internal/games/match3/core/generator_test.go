package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeneratorTooFewKinds(t *testing.T) {
	params := DefaultGenParams()
	params.Kinds = 2

	_, err := NewGenerator(params)
	require.ErrorIs(t, err, ErrTooFewKinds)
}

func TestNewGeneratorClampsKinds(t *testing.T) {
	params := DefaultGenParams()
	params.Kinds = 50

	gen, err := NewGenerator(params)
	require.NoError(t, err)
	assert.Len(t, gen.KindSet(), MaxKinds)
}

func TestValidateLeavesNoRuns(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		gen, err := NewGenerator(GenParams{Kinds: 3, Seed: seed})
		require.NoError(t, err)

		g := NewGrid(DefaultSize)
		gen.InitializeRandomly(g)
		_, err = gen.Validate(g)
		require.NoError(t, err)

		assert.True(t, g.Full(), "seed %d: board not full", seed)
		assert.Empty(t, AllRuns(g), "seed %d: runs remain", seed)
		for r := 0; r < g.Size(); r++ {
			for c := 0; c < g.Size(); c++ {
				for _, axis := range []Axis{Horizontal, Vertical} {
					assert.LessOrEqual(t, CheckAxis(g, P(r, c), axis).Length, MinRunExclusive)
				}
			}
		}
	}
}

func TestValidateDrawsOnlyAllowedKinds(t *testing.T) {
	gen, err := NewGenerator(GenParams{Kinds: 4, Seed: 99})
	require.NoError(t, err)

	g, err := gen.NewBoard(8)
	require.NoError(t, err)

	allowed := make(map[Kind]bool)
	for _, k := range gen.KindSet() {
		allowed[k] = true
	}
	for _, row := range g.Rows() {
		for _, k := range row {
			assert.True(t, allowed[k], "unexpected kind %s", k)
		}
	}
}

func TestValidateCleanBoardIsNoop(t *testing.T) {
	gen, err := NewGenerator(GenParams{Kinds: 3, Seed: 1, MaxPasses: 1})
	require.NoError(t, err)

	g := stripeGrid(DefaultSize)
	before := g.Clone()

	passes, err := gen.Validate(g)
	require.NoError(t, err)
	assert.Equal(t, 0, passes)
	assert.True(t, g.Equal(before))
}

func TestValidatePassCap(t *testing.T) {
	gen, err := NewGenerator(GenParams{Kinds: 3, Seed: 5, MaxPasses: 1})
	require.NoError(t, err)

	g := NewGrid(DefaultSize)
	for r := 0; r < g.Size(); r++ {
		for c := 0; c < g.Size(); c++ {
			g.Set(P(r, c), KindRed)
		}
	}

	passes, err := gen.Validate(g)
	assert.LessOrEqual(t, passes, 1)
	if err != nil {
		require.ErrorIs(t, err, ErrValidationDiverged)
		assert.NotEmpty(t, AllRuns(g))
	} else {
		assert.Empty(t, AllRuns(g))
	}
}

func TestRegenerateColumnScope(t *testing.T) {
	gen, err := NewGenerator(GenParams{Kinds: 3, Seed: 3})
	require.NoError(t, err)

	g := stripeGrid(6)
	const k = 3
	for r := 0; r < k; r++ {
		g.Clear(P(r, 2))
	}
	before := g.Clone()

	filled := gen.RegenerateColumn(g, 2)
	assert.Equal(t, []Pos{P(0, 2), P(1, 2), P(2, 2)}, filled)

	for r := 0; r < g.Size(); r++ {
		for c := 0; c < g.Size(); c++ {
			p := P(r, c)
			if c == 2 && r < k {
				assert.False(t, g.IsEmpty(p), "%v should be filled", p)
				continue
			}
			assert.Equal(t, before.Get(p), g.Get(p), "%v should be untouched", p)
		}
	}
}

func TestRegenerateColumnStopsAtFirstToken(t *testing.T) {
	gen, err := NewGenerator(GenParams{Kinds: 3, Seed: 3})
	require.NoError(t, err)

	g := mustParse(t,
		"....",
		"R...",
		"....",
		"G...",
	)

	filled := gen.RegenerateColumn(g, 0)
	assert.Equal(t, []Pos{P(0, 0)}, filled)
	assert.True(t, g.IsEmpty(P(2, 0)), "gap below the first token stays empty")

	assert.Empty(t, gen.RegenerateColumn(g, 9), "out of range column")
}

func TestGeneratorDeterminism(t *testing.T) {
	a, err := NewGenerator(GenParams{Kinds: 6, Seed: 42})
	require.NoError(t, err)
	b, err := NewGenerator(GenParams{Kinds: 6, Seed: 42})
	require.NoError(t, err)

	ga, err := a.NewBoard(DefaultSize)
	require.NoError(t, err)
	gb, err := b.NewBoard(DefaultSize)
	require.NoError(t, err)

	assert.True(t, ga.Equal(gb))
}
