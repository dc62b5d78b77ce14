// value.go
//
// The runtime value model: a closed tagged union over the four kinds of data
// an n-slang program can hold. A Value is constructed once and never mutated;
// the tag determines which Go type lives in Data (see ValueTag). The core
// performs no implicit coercion between variants anywhere — a primitive that
// wants a number and finds a string fails, it does not convert.
//
// Programs are plain []Value. The same Value type serves as instruction and
// as operand: a Word that appears in a program is an instruction to resolve,
// while a Word sitting on the stack is just data. That symmetry is deliberate
// and observable (see interp.go).
package nslang

import (
	"fmt"
	"strconv"
)

// ValueTag enumerates the runtime kinds a Value may hold.
// The tag determines which Go type Value.Data carries.
type ValueTag int

const (
	VTNum  ValueTag = iota // float64
	VTStr                  // string
	VTWord                 // string (symbol, resolved against an Env)
	VTPrim                 // *Primitive (host operation)
)

// Value is the universal runtime carrier used by the interpreter.
//
// Invariants:
//   - Exactly one tag is active; Data matches it (float64 for VTNum, string
//     for VTStr and VTWord, *Primitive for VTPrim).
//   - Values are immutable after construction.
type Value struct {
	Tag  ValueTag
	Data interface{}
}

// PrimFunc is the capability a Primitive wraps: it receives the current
// operand stack and returns the transformed stack or a failure. Primitives
// may pop and push any number of values; the engine imposes no arity.
type PrimFunc func(*Stack) (*Stack, error)

// Primitive boxes a host operation together with the name it is known by.
// The name is diagnostic only (it shows up in arity errors and traces); the
// engine dispatches purely on Fn.
type Primitive struct {
	Name string
	Fn   PrimFunc
}

// Constructors, one per variant. Each guarantees the payload matches the tag.
func Num(f float64) Value   { return Value{Tag: VTNum, Data: f} }
func Str(s string) Value    { return Value{Tag: VTStr, Data: s} }
func Word(sym string) Value { return Value{Tag: VTWord, Data: sym} }

// Prim wraps a host function into a Primitive Value. The name is used in
// diagnostics; it does not have to match the word the value is bound to.
func Prim(name string, fn PrimFunc) Value {
	return Value{Tag: VTPrim, Data: &Primitive{Name: name, Fn: fn}}
}

// NumOf unwraps a VTNum payload. The boolean reports whether the tag matched.
func NumOf(v Value) (float64, bool) {
	if v.Tag != VTNum {
		return 0, false
	}
	return v.Data.(float64), true
}

// StrOf unwraps a VTStr payload.
func StrOf(v Value) (string, bool) {
	if v.Tag != VTStr {
		return "", false
	}
	return v.Data.(string), true
}

// Symbol unwraps a VTWord payload.
func Symbol(v Value) (string, bool) {
	if v.Tag != VTWord {
		return "", false
	}
	return v.Data.(string), true
}

// Equal compares two Values structurally. Primitives compare by identity of
// the boxed operation.
func Equal(a, b Value) bool {
	if a.Tag != b.Tag {
		return false
	}
	switch a.Tag {
	case VTNum:
		return a.Data.(float64) == b.Data.(float64)
	case VTStr, VTWord:
		return a.Data.(string) == b.Data.(string)
	case VTPrim:
		return a.Data.(*Primitive) == b.Data.(*Primitive)
	default:
		return false
	}
}

// String renders a human-friendly debug representation.
func (v Value) String() string {
	switch v.Tag {
	case VTNum:
		return strconv.FormatFloat(v.Data.(float64), 'g', -1, 64)
	case VTStr:
		return fmt.Sprintf("%q", v.Data.(string))
	case VTWord:
		return v.Data.(string)
	case VTPrim:
		return fmt.Sprintf("<prim %s>", v.Data.(*Primitive).Name)
	default:
		return "<unknown>"
	}
}

// TagName returns the tag's display name (used by traces and tests).
func (t ValueTag) String() string {
	switch t {
	case VTNum:
		return "Num"
	case VTStr:
		return "Str"
	case VTWord:
		return "Word"
	case VTPrim:
		return "Prim"
	default:
		return "?"
	}
}

// Program is an ordered sequence of Values acting as a flat, non-branching
// instruction list. The interpreter treats it as immutable; how a Program is
// built (by hand, by a reader, from a file) is the embedder's business.
type Program []Value
