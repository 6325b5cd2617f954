package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckAxisRowOfThree(t *testing.T) {
	g := mustParse(t,
		"RRRG",
		"GBGB",
		"BGBG",
		"GBGB",
	)

	run := CheckAxis(g, P(0, 0), Horizontal)
	assert.Equal(t, 3, run.Length)
	assert.True(t, run.Valid)
	assert.Equal(t, P(0, 0), run.Start)
	assert.Equal(t, KindRed, run.Kind)

	// Any cell of the run reports the same extent
	fromEnd := CheckAxis(g, P(0, 2), Horizontal)
	assert.Equal(t, run.Start, fromEnd.Start)
	assert.Equal(t, run.Length, fromEnd.Length)

	vertical := CheckAxis(g, P(0, 0), Vertical)
	assert.Equal(t, 1, vertical.Length)
	assert.False(t, vertical.Valid)
}

func TestCheckAxisVertical(t *testing.T) {
	g := mustParse(t,
		"GBGB",
		"RGBG",
		"RBGB",
		"RGBG",
	)

	run := CheckAxis(g, P(2, 0), Vertical)
	assert.Equal(t, P(1, 0), run.Start)
	assert.Equal(t, 3, run.Length)
	assert.True(t, run.Valid)
	assert.Equal(t, []Pos{P(1, 0), P(2, 0), P(3, 0)}, run.Cells())
	assert.True(t, run.Contains(P(3, 0)))
	assert.False(t, run.Contains(P(0, 0)))
}

func TestCheckDirection(t *testing.T) {
	g := mustParse(t,
		"RGGG",
		"GRBB",
		"BGRG",
		"GBGR",
	)

	tests := []struct {
		name   string
		p      Pos
		dir    Direction
		length int
		valid  bool
	}{
		{"diagonal run", P(0, 0), SouthEast, 4, true},
		{"diagonal back", P(3, 3), NorthWest, 4, true},
		{"east of green", P(0, 1), East, 3, true},
		{"west from edge", P(0, 0), West, 1, false},
		{"pair", P(1, 2), East, 2, false},
		{"north mismatch", P(2, 2), North, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Check(g, tt.p, tt.dir)
			assert.Equal(t, tt.length, res.Length)
			assert.Equal(t, tt.valid, res.Valid)
		})
	}
}

func TestRunDetectorIgnoresEmpty(t *testing.T) {
	g := mustParse(t,
		"...R",
		"....",
		"....",
		"RRGB",
	)

	assert.Equal(t, 0, CheckDirection(g, P(0, 0), 0, 1).Length)
	run := CheckAxis(g, P(0, 1), Horizontal)
	assert.Equal(t, 0, run.Length)
	assert.False(t, run.Valid)
	assert.Empty(t, AllRuns(g))
}

func TestRunsAtCrossShape(t *testing.T) {
	g := mustParse(t,
		"GRGB",
		"RRRG",
		"BRBG",
		"GBGB",
	)

	runs := RunsAt(g, P(1, 1), P(1, 0), P(0, 1))
	assert.Len(t, runs, 2, "horizontal and vertical run through (1,1), deduplicated")

	cells := RunCells(runs)
	assert.Len(t, cells, 5, "shared centre counted once")
	assert.ElementsMatch(t, []Pos{P(1, 0), P(1, 1), P(1, 2), P(0, 1), P(2, 1)}, cells)
}

func TestAllRunsStripeGrid(t *testing.T) {
	assert.Empty(t, AllRuns(stripeGrid(DefaultSize)))
}

func TestDirectionDeltas(t *testing.T) {
	seen := make(map[[2]int]bool)
	for _, d := range Directions() {
		dr, dc := d.Delta()
		assert.False(t, dr == 0 && dc == 0, "direction %d has zero delta", d)
		seen[[2]int{dr, dc}] = true
	}
	assert.Len(t, seen, 8)
}
