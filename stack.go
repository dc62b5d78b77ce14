// stack.go
//
// The operand stack: an ordered, mutable LIFO sequence of Values. One stack
// is owned by one interpreter run; primitives receive it, mutate it in place
// (or swap in a fresh one), and hand it back. Every access past the available
// depth is a checked ErrUnderflow — there is no undefined top-of-empty.
package nslang

// Stack is a LIFO container of Values. The zero value is not usable; create
// stacks with NewStack or NewStackFrom.
type Stack struct {
	items []Value
}

// NewStack returns a new, empty stack.
func NewStack() *Stack { return &Stack{} }

// NewStackFrom returns a stack holding vs, bottom-first (the last argument
// ends up on top).
func NewStackFrom(vs ...Value) *Stack {
	items := make([]Value, len(vs))
	copy(items, vs)
	return &Stack{items: items}
}

// Push appends v at the top and returns the stack for chaining.
func (s *Stack) Push(v Value) *Stack {
	s.items = append(s.items, v)
	return s
}

// Pop removes and returns the top value, or ErrUnderflow on an empty stack.
func (s *Stack) Pop() (Value, error) {
	n := len(s.items)
	if n == 0 {
		return Value{}, ErrUnderflow
	}
	v := s.items[n-1]
	s.items = s.items[:n-1]
	return v, nil
}

// Top returns the top value without removing it.
func (s *Stack) Top() (Value, error) {
	if len(s.items) == 0 {
		return Value{}, ErrUnderflow
	}
	return s.items[len(s.items)-1], nil
}

// Peek returns the value at depth i from the top (i = 0 is the top) without
// removing anything. It fails with ErrUnderflow when i exceeds the depth.
func (s *Stack) Peek(i int) (Value, error) {
	if i < 0 || i >= len(s.items) {
		return Value{}, ErrUnderflow
	}
	return s.items[len(s.items)-1-i], nil
}

// Depth returns the current element count.
func (s *Stack) Depth() int { return len(s.items) }

// Values returns a bottom-first copy of the contents. Mutating the returned
// slice does not affect the stack.
func (s *Stack) Values() []Value {
	out := make([]Value, len(s.items))
	copy(out, s.items)
	return out
}

// Clone returns an independent stack with the same contents.
func (s *Stack) Clone() *Stack {
	return &Stack{items: s.Values()}
}
