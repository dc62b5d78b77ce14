package nslang

import (
	"errors"
	"testing"
)

func Test_Builtin_Strings_Concat_And_Len(t *testing.T) {
	st := runStd(t, Program{Str("fo"), Str("o"), Word("concat")})
	wantStack(t, st, Str("foo"))

	// len counts runes.
	st = runStd(t, Program{Str("héllo"), Word("len")})
	wantStack(t, st, Num(5))
}

func Test_Builtin_Strings_Case_And_Trim(t *testing.T) {
	st := runStd(t, Program{Str("HeLLo"), Word("lower")})
	wantStack(t, st, Str("hello"))

	st = runStd(t, Program{Str("HeLLo"), Word("upper")})
	wantStack(t, st, Str("HELLO"))

	st = runStd(t, Program{Str("  x \t"), Word("trim")})
	wantStack(t, st, Str("x"))
}

func Test_Builtin_Strings_ToStr(t *testing.T) {
	st := runStd(t, Program{Num(2.5), Word("->str")})
	wantStack(t, st, Str("2.5"))

	// Already a Str: unchanged.
	st = runStd(t, Program{Str("s"), Word("->str")})
	wantStack(t, st, Str("s"))
}

func Test_Builtin_Strings_Predicates(t *testing.T) {
	st := runStd(t, Program{Num(3), Word("num?")})
	wantStack(t, st, Num(1))

	st = runStd(t, Program{Str("x"), Word("num?")})
	wantStack(t, st, Num(0))

	st = runStd(t, Program{Str("x"), Word("str?")})
	wantStack(t, st, Num(1))
}

func Test_Builtin_Strings_WordPredicate_On_Alias(t *testing.T) {
	// An aliased word lands on the stack as a literal Word, and word? sees it.
	env := BuildEnv(StdWords())
	env.Define("a", Word("b"))

	st, err := Run(env, Program{Word("a"), Word("word?")})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	wantStack(t, st, Num(1))
}

func Test_Builtin_Strings_Reject_WrongTag(t *testing.T) {
	_, err := Run(BuildEnv(StdWords()), Program{Num(1), Word("upper")})
	if err == nil {
		t.Fatalf("upper on a Num should fail")
	}
	if errors.Is(err, ErrUnderflow) {
		t.Fatalf("type failure must not masquerade as underflow: %v", err)
	}
}
