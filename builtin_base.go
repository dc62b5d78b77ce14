// builtin_base.go
//
// Shared plumbing for the standard word libraries, and StdWords, the composed
// base environment builder. Each builtin_*.go file exports one Builder; an
// embedder that wants everything calls BuildEnv(StdWords()), one that wants a
// leaner dialect picks and composes by hand.
package nslang

import "fmt"

// StdWords is the full standard library: arithmetic, stack shuffling, and
// string words, composed in that order. Later builders may overwrite earlier
// bindings, so embedders can shadow any standard word by appending their own
// builder.
func StdWords() Builder {
	return Compose(MathWords, ShuffleWords, StringWords)
}

// need checks the stack holds at least n operands for the named word and
// reports the shortfall as an ArityError (a flavored underflow).
func need(name string, st *Stack, n int) error {
	if d := st.Depth(); d < n {
		return &ArityError{Word: name, Want: n, Have: d}
	}
	return nil
}

// popNums pops n operands, top last, requiring every one to be a Num.
func popNums(name string, st *Stack, n int) ([]float64, error) {
	if err := need(name, st, n); err != nil {
		return nil, err
	}
	out := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		v, _ := st.Pop()
		f, ok := NumOf(v)
		if !ok {
			return nil, fmt.Errorf("%s: expected Num, got %s %s", name, v.Tag, v)
		}
		out[i] = f
	}
	return out, nil
}

// popStrs pops n operands, top last, requiring every one to be a Str.
func popStrs(name string, st *Stack, n int) ([]string, error) {
	if err := need(name, st, n); err != nil {
		return nil, err
	}
	out := make([]string, n)
	for i := n - 1; i >= 0; i-- {
		v, _ := st.Pop()
		s, ok := StrOf(v)
		if !ok {
			return nil, fmt.Errorf("%s: expected Str, got %s %s", name, v.Tag, v)
		}
		out[i] = s
	}
	return out, nil
}

// binNum builds a primitive that pops two numbers and pushes f(a, b).
func binNum(name string, f func(a, b float64) (float64, error)) Value {
	return Prim(name, func(st *Stack) (*Stack, error) {
		xs, err := popNums(name, st, 2)
		if err != nil {
			return nil, err
		}
		r, err := f(xs[0], xs[1])
		if err != nil {
			return nil, err
		}
		return st.Push(Num(r)), nil
	})
}

// unNum builds a primitive that pops one number and pushes f(x).
func unNum(name string, f func(x float64) (float64, error)) Value {
	return Prim(name, func(st *Stack) (*Stack, error) {
		xs, err := popNums(name, st, 1)
		if err != nil {
			return nil, err
		}
		r, err := f(xs[0])
		if err != nil {
			return nil, err
		}
		return st.Push(Num(r)), nil
	})
}
