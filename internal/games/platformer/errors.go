package platformer

import (
	"errors"
	"fmt"
)

// Level plan errors.
var (
	ErrEmptyPlan    = errors.New("level plan is empty")
	ErrRaggedRow    = errors.New("row width differs from the first row")
	ErrUnknownGlyph = errors.New("unknown character")
	ErrNoPlayer     = errors.New("level has no player")
	ErrManyPlayers  = errors.New("level has more than one player")
)

// ErrInvariant marks a broken simulation invariant. It is only ever raised
// through panic; well-formed levels never produce it.
var ErrInvariant = errors.New("platformer: invariant violated")

// ParseError locates a malformed spot in a level plan.
// Line and Column are 1-based; Column is 0 for whole-row problems.
type ParseError struct {
	Line   int
	Column int
	Glyph  rune
	Err    error
}

func (e *ParseError) Error() string {
	if e.Column == 0 {
		return fmt.Sprintf("level plan line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("level plan line %d, column %d: %v %q", e.Line, e.Column, e.Err, e.Glyph)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
