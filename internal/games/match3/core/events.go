package core

// Outcome is the result of a single cell selection.
type Outcome uint8

const (
	OutcomeIgnored  Outcome = iota // Locked, empty cell, out of bounds or repeat click
	OutcomeSelected                // Cell became the pending selection
	OutcomeApplied                 // Swap created at least one run
	OutcomeReverted                // Swap created no run and will be undone
)

// String returns the string representation of an outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeSelected:
		return "selected"
	case OutcomeApplied:
		return "applied"
	case OutcomeReverted:
		return "reverted"
	default:
		return "unknown"
	}
}

// EventKind identifies a board change.
type EventKind uint8

const (
	EventSelected    EventKind = iota // From = selected cell
	EventDeselected                   // From = previously selected cell
	EventSwapped                      // From, To = swapped cells
	EventReverted                     // From, To = cells swapped back
	EventCleared                      // Cells = cells being cleared, Combo = cascade level
	EventShifted                      // From -> To, one row down
	EventRegenerated                  // Cells = newly filled cells
	EventRevalidated                  // Cells = cells re-rolled by validation
	EventSettled                      // Board is idle again
	EventShuffled                     // Board replaced because no move remained
)

// String returns the string representation of an event kind.
func (k EventKind) String() string {
	switch k {
	case EventSelected:
		return "selected"
	case EventDeselected:
		return "deselected"
	case EventSwapped:
		return "swapped"
	case EventReverted:
		return "reverted"
	case EventCleared:
		return "cleared"
	case EventShifted:
		return "shifted"
	case EventRegenerated:
		return "regenerated"
	case EventRevalidated:
		return "revalidated"
	case EventSettled:
		return "settled"
	case EventShuffled:
		return "shuffled"
	default:
		return "unknown"
	}
}

// Event describes one change the presentation layer may animate.
type Event struct {
	Kind  EventKind
	From  Pos
	To    Pos
	Cells []Pos
	Combo int
}

// Result is returned by Engine.OnCellSelected.
type Result struct {
	Outcome Outcome
	Events  []Event
}

// Animator receives visual cues as the engine mutates the board.
// Logical state never waits on it.
type Animator interface {
	MoveVisual(a, b Pos)
	ClearVisual(p Pos)
}

// CountEvents returns how many events of kind k are in events.
func CountEvents(events []Event, k EventKind) int {
	n := 0
	for _, ev := range events {
		if ev.Kind == k {
			n++
		}
	}
	return n
}
