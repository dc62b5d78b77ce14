// errors.go
//
// Error kinds the engine can produce. Everything here is returned, never
// panicked, and every kind plays with errors.Is / errors.As:
//
//   - ErrUnderflow        — pop/top/peek past the available depth.
//   - UnboundWordError    — a Word resolved against an Env that has no
//     binding for its symbol.
//   - ArityError          — a primitive's internal underflow, reported with
//     the word's name and wanted arity when the word library can tell
//     (unwraps to ErrUnderflow).
//   - Trap                — the interpreter's halt wrapper: the underlying
//     failure plus the program counter and a stack snapshot at the point of
//     failure. Stack mutations made before the failing step stay visible in
//     the snapshot; nothing is rolled back.
package nslang

import (
	"errors"
	"fmt"
)

// ErrUnderflow is the sentinel for any stack access past the available depth.
var ErrUnderflow = errors.New("stack underflow")

// UnboundWordError reports a lookup miss for a Word's symbol.
type UnboundWordError struct {
	Symbol string
}

func (e *UnboundWordError) Error() string {
	return fmt.Sprintf("unbound word: %s", e.Symbol)
}

// ArityError reports that a primitive needed more operands than the stack
// held. Want is the arity the word declares, Have the depth it found.
type ArityError struct {
	Word string
	Want int
	Have int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%s: needs %d operand(s), stack has %d", e.Word, e.Want, e.Have)
}

// An ArityError is a flavored underflow; errors.Is(err, ErrUnderflow) holds.
func (e *ArityError) Unwrap() error { return ErrUnderflow }

// Trap is what Run returns on failure: the cause, the program counter of the
// failing step, and a bottom-first snapshot of the stack at that moment.
type Trap struct {
	PC    int
	Stack []Value
	Err   error
}

func (t *Trap) Error() string {
	return fmt.Sprintf("trap at pc=%d: %v", t.PC, t.Err)
}

func (t *Trap) Unwrap() error { return t.Err }
