package core

import "strings"

// Kind is the logical type of a token. Two tokens match iff their kinds are equal.
// The zero value marks an empty cell.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindRed
	KindGreen
	KindBlue
	KindYellow
	KindPurple
	KindOrange
	KindCyan
	KindWhite
	KindCount // Sentinel value for iteration
)

// MaxKinds is the number of distinct token kinds available to a board.
const MaxKinds = int(KindCount) - 1

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindRed:
		return "red"
	case KindGreen:
		return "green"
	case KindBlue:
		return "blue"
	case KindYellow:
		return "yellow"
	case KindPurple:
		return "purple"
	case KindOrange:
		return "orange"
	case KindCyan:
		return "cyan"
	case KindWhite:
		return "white"
	default:
		return "unknown"
	}
}

// Char returns a single character representation for ASCII dumps and tests.
func (k Kind) Char() rune {
	switch k {
	case KindEmpty:
		return '.'
	case KindRed:
		return 'R'
	case KindGreen:
		return 'G'
	case KindBlue:
		return 'B'
	case KindYellow:
		return 'Y'
	case KindPurple:
		return 'P'
	case KindOrange:
		return 'O'
	case KindCyan:
		return 'C'
	case KindWhite:
		return 'W'
	default:
		return '?'
	}
}

// Occupied reports whether the kind denotes a token rather than an empty cell.
func (k Kind) Occupied() bool {
	return k != KindEmpty && k < KindCount
}

// ParseKind converts a name or single-letter code to a Kind.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(s) {
	case "empty", ".", "":
		return KindEmpty, true
	case "red", "r":
		return KindRed, true
	case "green", "g":
		return KindGreen, true
	case "blue", "b":
		return KindBlue, true
	case "yellow", "y":
		return KindYellow, true
	case "purple", "p":
		return KindPurple, true
	case "orange", "o":
		return KindOrange, true
	case "cyan", "c":
		return KindCyan, true
	case "white", "w":
		return KindWhite, true
	default:
		return KindEmpty, false
	}
}

// Kinds returns the first n token kinds in declaration order.
// n is clamped to [0, MaxKinds].
func Kinds(n int) []Kind {
	if n < 0 {
		n = 0
	}
	if n > MaxKinds {
		n = MaxKinds
	}
	kinds := make([]Kind, n)
	for i := range kinds {
		kinds[i] = Kind(i + 1)
	}
	return kinds
}
