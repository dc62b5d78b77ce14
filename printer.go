// printer.go
//
// Console display helpers. These sit outside engine correctness: they render
// Values, stacks, and traps as plain text (no ANSI escapes — coloring is the
// CLI's job). A trap renders with its pc, cause, and a top-first dump of the
// stack snapshot so the failing operand is the first line you read.
package nslang

import (
	"errors"
	"fmt"
	"strings"
)

// FormatValue renders a single Value for display. Unlike Value.String, a Str
// renders unquoted — this is the "what the user sees" form.
func FormatValue(v Value) string {
	if s, ok := StrOf(v); ok {
		return s
	}
	return v.String()
}

// FormatStack renders a stack bottom-first on one line, e.g.:
//
//	[1 2 "three" +]
func FormatStack(st *Stack) string {
	if st == nil {
		return "[]"
	}
	vs := st.Values()
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = v.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// FormatError renders engine failures in a readable multi-line form. A *Trap
// gets a header, the cause, and a numbered top-first stack dump:
//
//	TRAP at pc=3: unbound word: sqrtt
//
//	  stack (2 deep, top first):
//	    0: 16
//	    1: 9
//
// Non-trap errors are rendered with err.Error() unchanged.
func FormatError(err error) string {
	var t *Trap
	if !errors.As(err, &t) {
		return err.Error()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "TRAP at pc=%d: %v\n", t.PC, t.Err)
	if len(t.Stack) == 0 {
		b.WriteString("\n  stack empty\n")
		return b.String()
	}
	fmt.Fprintf(&b, "\n  stack (%d deep, top first):\n", len(t.Stack))
	for i := len(t.Stack) - 1; i >= 0; i-- {
		fmt.Fprintf(&b, "    %d: %s\n", len(t.Stack)-1-i, t.Stack[i])
	}
	return b.String()
}
