package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-match3/internal/core"
)

type stubGame struct{ id string }

func (s stubGame) ID() string { return s.id }
func (s stubGame) Title() string { return "Stub " + s.id }
func (s stubGame) Reset(core.RuntimeConfig) {}
func (s stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (s stubGame) Render(*core.Screen) {}
func (s stubGame) State() core.GameState { return core.GameState{} }

func register(t *testing.T, m Mode) {
	t.Helper()
	Register(m)
	t.Cleanup(func() { unregister(m.ID) })
}

func TestCreate(t *testing.T) {
	register(t, Mode{ID: "stub_a", New: func() Game { return stubGame{id: "stub_a"} }})

	g, err := Create("stub_a")
	require.NoError(t, err)
	assert.Equal(t, "stub_a", g.ID())
	assert.True(t, Exists("stub_a"))

	_, err = Create("missing")
	assert.ErrorIs(t, err, ErrUnknownGame)
	assert.False(t, Exists("missing"))
}

func TestRegisterFillsTitle(t *testing.T) {
	register(t, Mode{ID: "stub_b", New: func() Game { return stubGame{id: "stub_b"} }})

	for _, info := range List() {
		if info.ID == "stub_b" {
			assert.Equal(t, "Stub stub_b", info.Title)
			return
		}
	}
	t.Fatal("stub_b not listed")
}

func TestListOrder(t *testing.T) {
	newStub := func(id string) Factory { return func() Game { return stubGame{id: id} } }
	register(t, Mode{ID: "zz_first", Order: -10, New: newStub("zz_first")})
	register(t, Mode{ID: "aa_second", Order: -5, New: newStub("aa_second")})
	register(t, Mode{ID: "ab_third", Order: -5, New: newStub("ab_third")})

	list := List()
	require.GreaterOrEqual(t, len(list), 3)
	assert.Equal(t, "zz_first", list[0].ID)
	assert.Equal(t, "aa_second", list[1].ID)
	assert.Equal(t, "ab_third", list[2].ID)
}

func TestRegisterPanics(t *testing.T) {
	register(t, Mode{ID: "stub_dup", New: func() Game { return stubGame{id: "stub_dup"} }})

	assert.Panics(t, func() {
		Register(Mode{ID: "stub_dup", New: func() Game { return stubGame{} }})
	})
	assert.Panics(t, func() { Register(Mode{ID: "no_factory"}) })
	assert.Panics(t, func() { Register(Mode{New: func() Game { return stubGame{} }}) })
}
