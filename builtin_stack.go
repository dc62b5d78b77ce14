// builtin_stack.go
//
// Stack-shuffling words. These work on Values of any tag — shuffles move
// operands, they never inspect them.
package nslang

import "fmt"

// ShuffleWords installs the stack manipulation vocabulary:
//
//	dup drop swap over rot nip tuck pick depth clear
func ShuffleWords(env *Env) *Env {
	env.Define("dup", Prim("dup", func(st *Stack) (*Stack, error) {
		if err := need("dup", st, 1); err != nil {
			return nil, err
		}
		v, _ := st.Top()
		return st.Push(v), nil
	}))

	env.Define("drop", Prim("drop", func(st *Stack) (*Stack, error) {
		if err := need("drop", st, 1); err != nil {
			return nil, err
		}
		_, _ = st.Pop()
		return st, nil
	}))

	env.Define("swap", Prim("swap", func(st *Stack) (*Stack, error) {
		if err := need("swap", st, 2); err != nil {
			return nil, err
		}
		a, _ := st.Pop()
		b, _ := st.Pop()
		return st.Push(a).Push(b), nil
	}))

	env.Define("over", Prim("over", func(st *Stack) (*Stack, error) {
		if err := need("over", st, 2); err != nil {
			return nil, err
		}
		v, _ := st.Peek(1)
		return st.Push(v), nil
	}))

	// rot: ( a b c -- b c a )
	env.Define("rot", Prim("rot", func(st *Stack) (*Stack, error) {
		if err := need("rot", st, 3); err != nil {
			return nil, err
		}
		c, _ := st.Pop()
		b, _ := st.Pop()
		a, _ := st.Pop()
		return st.Push(b).Push(c).Push(a), nil
	}))

	// nip: ( a b -- b )
	env.Define("nip", Prim("nip", func(st *Stack) (*Stack, error) {
		if err := need("nip", st, 2); err != nil {
			return nil, err
		}
		b, _ := st.Pop()
		_, _ = st.Pop()
		return st.Push(b), nil
	}))

	// tuck: ( a b -- b a b )
	env.Define("tuck", Prim("tuck", func(st *Stack) (*Stack, error) {
		if err := need("tuck", st, 2); err != nil {
			return nil, err
		}
		b, _ := st.Pop()
		a, _ := st.Pop()
		return st.Push(b).Push(a).Push(b), nil
	}))

	// pick: ( xn .. x0 n -- xn .. x0 xn ) — n is a Num index from the top.
	env.Define("pick", Prim("pick", func(st *Stack) (*Stack, error) {
		xs, err := popNums("pick", st, 1)
		if err != nil {
			return nil, err
		}
		n := int(xs[0])
		if float64(n) != xs[0] || n < 0 {
			return nil, fmt.Errorf("pick: index must be a non-negative integer, got %g", xs[0])
		}
		v, err := st.Peek(n)
		if err != nil {
			return nil, &ArityError{Word: "pick", Want: n + 1, Have: st.Depth()}
		}
		return st.Push(v), nil
	}))

	env.Define("depth", Prim("depth", func(st *Stack) (*Stack, error) {
		return st.Push(Num(float64(st.Depth()))), nil
	}))

	env.Define("clear", Prim("clear", func(st *Stack) (*Stack, error) {
		return NewStack(), nil
	}))

	return env
}
