// builtin_strings.go
//
// String words and tag predicates. There is no Bool variant in the value
// model, so predicates push Num 1 or 0. ->str is the one sanctioned bridge
// from Num to Str; it is an explicit word, not a coercion.
package nslang

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// StringWords installs the string vocabulary:
//
//	concat len upper lower trim ->str num? str? word?
func StringWords(env *Env) *Env {
	env.Define("concat", Prim("concat", func(st *Stack) (*Stack, error) {
		xs, err := popStrs("concat", st, 2)
		if err != nil {
			return nil, err
		}
		return st.Push(Str(xs[0] + xs[1])), nil
	}))

	// len counts runes, not bytes.
	env.Define("len", Prim("len", func(st *Stack) (*Stack, error) {
		xs, err := popStrs("len", st, 1)
		if err != nil {
			return nil, err
		}
		return st.Push(Num(float64(utf8.RuneCountInString(xs[0])))), nil
	}))

	env.Define("upper", strWord("upper", strings.ToUpper))
	env.Define("lower", strWord("lower", strings.ToLower))
	env.Define("trim", strWord("trim", strings.TrimSpace))

	env.Define("->str", Prim("->str", func(st *Stack) (*Stack, error) {
		if err := need("->str", st, 1); err != nil {
			return nil, err
		}
		v, _ := st.Pop()
		switch v.Tag {
		case VTNum:
			return st.Push(Str(strconv.FormatFloat(v.Data.(float64), 'g', -1, 64))), nil
		case VTStr:
			return st.Push(v), nil
		case VTWord:
			return st.Push(Str(v.Data.(string))), nil
		default:
			return st.Push(Str(v.String())), nil
		}
	}))

	env.Define("num?", tagIs("num?", VTNum))
	env.Define("str?", tagIs("str?", VTStr))
	env.Define("word?", tagIs("word?", VTWord))
	return env
}

func strWord(name string, f func(string) string) Value {
	return Prim(name, func(st *Stack) (*Stack, error) {
		xs, err := popStrs(name, st, 1)
		if err != nil {
			return nil, err
		}
		return st.Push(Str(f(xs[0]))), nil
	})
}

// tagIs builds a predicate: pop one value, push Num 1 if its tag matches.
func tagIs(name string, tag ValueTag) Value {
	return Prim(name, func(st *Stack) (*Stack, error) {
		if err := need(name, st, 1); err != nil {
			return nil, err
		}
		v, _ := st.Pop()
		if v.Tag == tag {
			return st.Push(Num(1)), nil
		}
		return st.Push(Num(0)), nil
	})
}
