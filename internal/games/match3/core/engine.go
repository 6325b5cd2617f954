package core

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/kamstrup/intmap"
)

// MinSize is the smallest supported board dimension.
const MinSize = 4

// Phase is the engine's position in the swap/cascade cycle.
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseSwapping
	PhaseReverting
	PhaseClearing
	PhaseFalling
	PhaseSettling
)

// String returns the string representation of a phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSwapping:
		return "swapping"
	case PhaseReverting:
		return "reverting"
	case PhaseClearing:
		return "clearing"
	case PhaseFalling:
		return "falling"
	case PhaseSettling:
		return "settling"
	default:
		return "unknown"
	}
}

// Timing holds phase durations in ticks.
type Timing struct {
	SwapTicks   int // Swap (and revert) animation
	ClearTicks  int // Clear flash before cells empty
	FallTicks   int // Ticks between gravity steps
	SettleTicks int // Delay after the last column settles
}

// DefaultTiming returns durations for a 60 ticks/sec loop.
func DefaultTiming() Timing {
	return Timing{
		SwapTicks:   24,
		ClearTicks:  24,
		FallTicks:   6,
		SettleTicks: 6,
	}
}

// EngineConfig configures a new engine.
type EngineConfig struct {
	Size   int
	Gen    GenParams
	Timing Timing
}

// DefaultEngineConfig returns a 12×12 board with default generation and timing.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		Size:   DefaultSize,
		Gen:    DefaultGenParams(),
		Timing: DefaultTiming(),
	}
}

// Option customizes an Engine.
type Option func(*Engine)

// WithLogger attaches a logger for debug output.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithAnimator attaches a visual adapter.
func WithAnimator(a Animator) Option {
	return func(e *Engine) {
		e.animator = a
	}
}

// WithGrid starts the engine from a copy of g instead of a generated board.
// The grid is used as given, runs included.
func WithGrid(g *Grid) Option {
	return func(e *Engine) {
		if g != nil {
			e.grid = g.Clone()
		}
	}
}

// Stats accumulates counters over an engine's lifetime.
type Stats struct {
	Swaps    int // Applied swaps
	Reverts  int // Swaps undone for lack of a run
	Cleared  int // Cells cleared
	Cascades int // Clears triggered by falling tokens
	MaxCombo int
	Shuffles int
}

// Snapshot is a read-only copy of the engine state for rendering.
type Snapshot struct {
	Rows         [][]Kind
	Phase        Phase
	Locked       bool
	Selected     Pos
	HasSelection bool
	Clearing     []Pos
	Combo        int
}

// Engine owns the board and drives selection, swaps and cascades.
// It is single-threaded: callers serialize OnCellSelected and Tick.
type Engine struct {
	grid     *Grid
	gen      *Generator
	timing   Timing
	log      *log.Logger
	animator Animator

	phase Phase
	timer int

	selected     Pos
	hasSelection bool

	swapA, swapB Pos
	pending      []Pos // Cells queued for clearing
	clearing     []Pos // Cells currently flashing

	moving  *intmap.Map[int, int] // Column -> gravity steps taken
	settled *intmap.Set[int]      // Columns settled since the last evaluation
	touched *intmap.Set[int]      // Columns affected in the current cascade

	combo int
	stats Stats
}

// NewEngine creates an engine. Without WithGrid it generates a run-free board
// that has at least one valid move.
func NewEngine(cfg EngineConfig, opts ...Option) (*Engine, error) {
	if cfg.Size < MinSize {
		return nil, fmt.Errorf("match3: board size %d below minimum %d", cfg.Size, MinSize)
	}
	gen, err := NewGenerator(cfg.Gen)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		gen:     gen,
		timing:  cfg.Timing,
		log:     log.New(io.Discard),
		moving:  intmap.New[int, int](cfg.Size),
		settled: intmap.NewSet[int](cfg.Size),
		touched: intmap.NewSet[int](cfg.Size),
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.grid == nil {
		e.grid, err = gen.NewBoard(cfg.Size)
		if err != nil {
			return nil, fmt.Errorf("match3: generate board: %w", err)
		}
		if !HasMove(e.grid) {
			e.shuffle()
		}
	}

	e.log.Debug("engine ready", "size", e.grid.Size(), "kinds", len(gen.kinds))
	return e, nil
}

// Grid returns the live board. Callers must not mutate it.
func (e *Engine) Grid() *Grid {
	return e.grid
}

// Phase returns the current phase.
func (e *Engine) Phase() Phase {
	return e.phase
}

// IsLocked reports whether input is currently rejected.
func (e *Engine) IsLocked() bool {
	return e.phase != PhaseIdle
}

// Selection returns the pending selection, if any.
func (e *Engine) Selection() (Pos, bool) {
	return e.selected, e.hasSelection
}

// Stats returns the lifetime counters.
func (e *Engine) Stats() Stats {
	return e.stats
}

// Snapshot returns a copy of the board and interaction state.
func (e *Engine) Snapshot() Snapshot {
	clearing := make([]Pos, len(e.clearing))
	copy(clearing, e.clearing)
	return Snapshot{
		Rows:         e.grid.Rows(),
		Phase:        e.phase,
		Locked:       e.IsLocked(),
		Selected:     e.selected,
		HasSelection: e.hasSelection,
		Clearing:     clearing,
		Combo:        e.combo,
	}
}

// Kinds returns the number of kinds new tokens are drawn from.
func (e *Engine) Kinds() int {
	return len(e.gen.kinds)
}

// SetKinds changes the kinds used for regenerated tokens.
func (e *Engine) SetKinds(n int) error {
	if n == len(e.gen.kinds) {
		return nil
	}
	if err := e.gen.SetKinds(n); err != nil {
		return err
	}
	e.log.Debug("kinds changed", "kinds", len(e.gen.kinds))
	return nil
}

// Hint returns the best available move while idle.
func (e *Engine) Hint() (Move, bool) {
	if e.IsLocked() {
		return Move{}, false
	}
	return BestMove(e.grid)
}

// OnCellSelected handles a click or keyboard selection of p.
func (e *Engine) OnCellSelected(p Pos) Result {
	if e.IsLocked() || !e.grid.InBounds(p) || e.grid.IsEmpty(p) {
		return Result{Outcome: OutcomeIgnored}
	}

	if !e.hasSelection {
		e.selected, e.hasSelection = p, true
		return Result{Outcome: OutcomeSelected, Events: []Event{{Kind: EventSelected, From: p}}}
	}

	if p == e.selected {
		return Result{Outcome: OutcomeIgnored}
	}

	prev := e.selected
	if !IsNeighbour(prev, p) {
		e.selected = p
		return Result{
			Outcome: OutcomeSelected,
			Events: []Event{
				{Kind: EventDeselected, From: prev},
				{Kind: EventSelected, From: p},
			},
		}
	}

	e.hasSelection = false
	events := []Event{
		{Kind: EventDeselected, From: prev},
		{Kind: EventSwapped, From: prev, To: p},
	}

	e.grid.Swap(prev, p)
	e.moveVisual(prev, p)
	e.swapA, e.swapB = prev, p
	e.enter(PhaseSwapping, e.timing.SwapTicks)

	runs := SwapRuns(e.grid, prev, p)
	if len(runs) == 0 {
		e.log.Debug("swap has no run", "from", prev, "to", p)
		return Result{Outcome: OutcomeReverted, Events: events}
	}

	e.pending = RunCells(runs)
	e.combo = 1
	e.stats.Swaps++
	e.log.Debug("swap", "from", prev, "to", p, "runs", len(runs), "cells", len(e.pending))
	return Result{Outcome: OutcomeApplied, Events: events}
}

// Tick advances timers by one tick and performs any due transition.
func (e *Engine) Tick() []Event {
	if e.phase == PhaseIdle {
		return nil
	}
	if e.timer > 0 {
		e.timer--
		if e.timer > 0 {
			return nil
		}
	}

	switch e.phase {
	case PhaseSwapping:
		return e.finishSwap()
	case PhaseReverting:
		e.enter(PhaseIdle, 0)
		return nil
	case PhaseClearing:
		return e.finishClear()
	case PhaseFalling:
		return e.fallStep()
	case PhaseSettling:
		return e.finishSettle()
	}
	return nil
}

// RunUntilIdle ticks until the engine unlocks or maxTicks elapse.
// It reports whether the engine reached idle.
func (e *Engine) RunUntilIdle(maxTicks int) ([]Event, bool) {
	var events []Event
	for i := 0; i < maxTicks && e.IsLocked(); i++ {
		events = append(events, e.Tick()...)
	}
	return events, !e.IsLocked()
}

func (e *Engine) enter(phase Phase, ticks int) {
	e.phase = phase
	e.timer = ticks
}

func (e *Engine) finishSwap() []Event {
	if len(e.pending) == 0 {
		e.grid.Swap(e.swapA, e.swapB)
		e.moveVisual(e.swapA, e.swapB)
		e.stats.Reverts++
		e.enter(PhaseReverting, e.timing.SwapTicks)
		return []Event{{Kind: EventReverted, From: e.swapA, To: e.swapB}}
	}
	return []Event{e.beginClear()}
}

// beginClear moves the pending cells into the clear flash.
func (e *Engine) beginClear() Event {
	e.clearing = e.pending
	e.pending = nil
	for _, p := range e.clearing {
		e.clearVisual(p)
	}
	if e.combo > e.stats.MaxCombo {
		e.stats.MaxCombo = e.combo
	}
	e.log.Debug("clear", "cells", len(e.clearing), "combo", e.combo)
	e.enter(PhaseClearing, e.timing.ClearTicks)

	cells := make([]Pos, len(e.clearing))
	copy(cells, e.clearing)
	return Event{Kind: EventCleared, Cells: cells, Combo: e.combo}
}

func (e *Engine) finishClear() []Event {
	for _, p := range e.clearing {
		e.grid.Clear(p)
		e.stats.Cleared++
		e.startColumn(p.Col)
	}
	e.clearing = nil
	e.enter(PhaseFalling, e.timing.FallTicks)
	return nil
}

// startColumn marks a column as moving. A column already moving is left alone.
func (e *Engine) startColumn(col int) {
	e.touched.Add(col)
	if e.moving.Has(col) {
		return
	}
	e.moving.Put(col, 0)
}

// fallStep advances every moving column by one gravity step.
func (e *Engine) fallStep() []Event {
	var events []Event
	for col := 0; col < e.grid.Size(); col++ {
		steps, ok := e.moving.Get(col)
		if !ok {
			continue
		}
		shifted := e.stepColumn(col)
		if len(shifted) == 0 {
			e.moving.Del(col)
			e.settled.Add(col)
			e.log.Debug("column settled", "col", col, "steps", steps)
			continue
		}
		e.moving.Put(col, steps+1)
		events = append(events, shifted...)
	}

	if e.moving.Len() == 0 {
		e.enter(PhaseSettling, e.timing.SettleTicks)
	} else {
		e.enter(PhaseFalling, e.timing.FallTicks)
	}
	return events
}

// stepColumn moves each occupied cell sitting directly above a gap down one
// row. Scanning bottom-up lets a whole stack fall one row per step.
func (e *Engine) stepColumn(col int) []Event {
	var events []Event
	for r := e.grid.Size() - 2; r >= 0; r-- {
		from, to := P(r, col), P(r+1, col)
		if e.grid.IsEmpty(from) || !e.grid.IsEmpty(to) {
			continue
		}
		e.grid.Swap(from, to)
		e.moveVisual(from, to)
		events = append(events, Event{Kind: EventShifted, From: from, To: to})
	}
	return events
}

// finishSettle looks for runs created by falling tokens. It clears them as a
// new combo level, or regenerates the affected columns and unlocks.
func (e *Engine) finishSettle() []Event {
	var positions []Pos
	for col := 0; col < e.grid.Size(); col++ {
		if e.settled.Has(col) {
			positions = append(positions, ColumnPositions(e.grid, col)...)
		}
	}
	e.settled.Clear()

	if runs := RunsAt(e.grid, positions...); len(runs) > 0 {
		e.pending = RunCells(runs)
		e.combo++
		e.stats.Cascades++
		return []Event{e.beginClear()}
	}

	return e.regenerate()
}

func (e *Engine) regenerate() []Event {
	var events []Event

	var filled []Pos
	for col := 0; col < e.grid.Size(); col++ {
		if e.touched.Has(col) {
			filled = append(filled, e.gen.RegenerateColumn(e.grid, col)...)
		}
	}
	e.touched.Clear()
	if len(filled) > 0 {
		events = append(events, Event{Kind: EventRegenerated, Cells: filled})
	}

	rerolled, passes, err := e.gen.Revalidate(e.grid)
	if err != nil {
		e.log.Error("revalidate board", "err", err)
	}
	if len(rerolled) > 0 {
		e.log.Debug("revalidated", "cells", len(rerolled), "passes", passes)
		events = append(events, Event{Kind: EventRevalidated, Cells: rerolled})
	}

	if !HasMove(e.grid) {
		events = append(events, e.shuffle())
	}

	e.combo = 0
	e.enter(PhaseIdle, 0)
	return append(events, Event{Kind: EventSettled})
}

// shuffle replaces a board that has no valid move left.
func (e *Engine) shuffle() Event {
	for attempt := 0; ; attempt++ {
		passes, err := e.gen.Shuffle(e.grid)
		if err != nil {
			e.log.Error("shuffle board", "err", err)
		}
		if HasMove(e.grid) || attempt >= 100 {
			e.stats.Shuffles++
			e.log.Debug("shuffled", "attempts", attempt+1, "passes", passes)
			break
		}
	}
	return Event{Kind: EventShuffled}
}

func (e *Engine) moveVisual(a, b Pos) {
	if e.animator != nil {
		e.animator.MoveVisual(a, b)
	}
}

func (e *Engine) clearVisual(p Pos) {
	if e.animator != nil {
		e.animator.ClearVisual(p)
	}
}
