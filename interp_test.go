package nslang

import (
	"errors"
	"testing"
)

func runStd(t *testing.T, prog Program) *Stack {
	t.Helper()
	st, err := Run(BuildEnv(StdWords()), prog)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	return st
}

func wantStack(t *testing.T, st *Stack, want ...Value) {
	t.Helper()
	got := st.Values()
	if len(got) != len(want) {
		t.Fatalf("stack = %v, want %v", got, want)
	}
	for i := range want {
		if !Equal(got[i], want[i]) {
			t.Fatalf("stack[%d] = %#v, want %#v", i, got[i], want[i])
		}
	}
}

func Test_Interp_Add_Two_Numbers(t *testing.T) {
	st := runStd(t, Program{Num(1), Num(2), Word("+")})
	wantStack(t, st, Num(3))
}

func Test_Interp_Distance_3_4_5(t *testing.T) {
	prog := Program{
		Num(0), Num(3), Word("-"), Word("dup"), Word("*"),
		Num(0), Num(4), Word("-"), Word("dup"), Word("*"),
		Word("+"), Word("sqrt"),
	}
	st := runStd(t, prog)
	wantStack(t, st, Num(5))
}

func Test_Interp_Literals_Push_Unchanged(t *testing.T) {
	env := NewEnv() // nothing bound; no word in the program needs resolving
	st, err := Run(env, Program{Num(1.5), Str("hi")})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	wantStack(t, st, Num(1.5), Str("hi"))
}

func Test_Interp_Word_Resolves_Exactly_Once(t *testing.T) {
	// "a" aliases "b"; running [a] must push the literal Word("b") and must
	// NOT resolve "b" further, even though "b" is itself bound.
	env := NewEnv().
		Define("a", Word("b")).
		Define("b", Num(7))

	st, err := Run(env, Program{Word("a")})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	wantStack(t, st, Word("b"))
}

func Test_Interp_Resolved_Primitive_Is_Invoked(t *testing.T) {
	env := NewEnv().Define("push9", Prim("push9", func(st *Stack) (*Stack, error) {
		return st.Push(Num(9)), nil
	}))

	st, err := Run(env, Program{Word("push9")})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	wantStack(t, st, Num(9))
}

func Test_Interp_Literal_Primitive_In_Program(t *testing.T) {
	// A Primitive embedded directly in a Program dispatches without any
	// environment involvement; code and data are the same stuff.
	double := Prim("double", func(st *Stack) (*Stack, error) {
		xs, err := popNums("double", st, 1)
		if err != nil {
			return nil, err
		}
		return st.Push(Num(xs[0] * 2)), nil
	})

	st, err := Run(NewEnv(), Program{Num(21), double})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	wantStack(t, st, Num(42))
}

func Test_Interp_Primitive_Result_Replaces_Stack(t *testing.T) {
	fresh := Prim("fresh", func(*Stack) (*Stack, error) {
		return NewStackFrom(Str("only")), nil
	})

	st, err := Run(NewEnv(), Program{Num(1), Num(2), fresh})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	wantStack(t, st, Str("only"))
}

func Test_Interp_UnboundWord_Halts_With_Trap(t *testing.T) {
	env := BuildEnv(StdWords())
	st, err := Run(env, Program{Num(1), Word("missing"), Num(2)})

	var tr *Trap
	if !errors.As(err, &tr) {
		t.Fatalf("want *Trap, got %#v", err)
	}
	if tr.PC != 1 {
		t.Fatalf("trap pc = %d, want 1", tr.PC)
	}

	var ub *UnboundWordError
	if !errors.As(err, &ub) || ub.Symbol != "missing" {
		t.Fatalf("trap cause = %#v, want UnboundWord(missing)", tr.Err)
	}

	// A failed lookup must not touch the stack: the snapshot and the returned
	// stack both hold exactly the pre-step contents, and execution never
	// reached the Num(2) at pc=2.
	wantStack(t, st, Num(1))
	if len(tr.Stack) != 1 || !Equal(tr.Stack[0], Num(1)) {
		t.Fatalf("trap snapshot = %v, want [1]", tr.Stack)
	}
}

func Test_Interp_Primitive_Failure_Keeps_Partial_Mutation(t *testing.T) {
	// + pops its top operand before the type check fails, and nothing is
	// rolled back: the trap shows the stack as the failing step left it.
	env := BuildEnv(StdWords())
	st, err := Run(env, Program{Num(1), Str("oops"), Word("+")})

	var tr *Trap
	if !errors.As(err, &tr) {
		t.Fatalf("want *Trap, got %#v", err)
	}
	if tr.PC != 2 {
		t.Fatalf("trap pc = %d, want 2", tr.PC)
	}
	wantStack(t, st, Num(1))
	if len(tr.Stack) != 1 || !Equal(tr.Stack[0], Num(1)) {
		t.Fatalf("trap snapshot = %v, want [1]", tr.Stack)
	}
}

func Test_Interp_RunFrom_Resumes_With_Offset_And_Stack(t *testing.T) {
	env := BuildEnv(StdWords())
	prog := Program{Num(999), Num(2), Num(3), Word("*")}

	// Skip pc=0 and start with operands already staged.
	ip := New(env)
	st, err := ip.RunFrom(prog, 1, NewStackFrom(Num(10)))
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	wantStack(t, st, Num(10), Num(6))
}

func Test_Interp_Empty_Program_Returns_Empty_Stack(t *testing.T) {
	st, err := Run(NewEnv(), Program{})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if st.Depth() != 0 {
		t.Fatalf("stack not empty: %v", st.Values())
	}
}

func Test_Interp_Sink_Sees_Steps_And_Trap(t *testing.T) {
	var tags []string
	ip := New(BuildEnv(StdWords()))
	ip.Sink = SinkFunc(func(tag string, _ any) { tags = append(tags, tag) })

	_, err := ip.Run(Program{Num(4), Word("sqrt"), Word("nope")})
	if err == nil {
		t.Fatalf("expected trap")
	}

	want := []string{"step", "step", "resolve", "apply", "step", "trap"}
	if len(tags) != len(want) {
		t.Fatalf("sink tags = %v, want %v", tags, want)
	}
	for i := range want {
		if tags[i] != want[i] {
			t.Fatalf("sink tags = %v, want %v", tags, want)
		}
	}
}

func Test_Interp_Shared_Env_Across_Runs(t *testing.T) {
	// Sharing an environment between sequential runs is the embedder's call;
	// definitions made between runs are visible to the next one.
	env := BuildEnv(StdWords())
	if _, err := Run(env, Program{Num(1), Num(1), Word("+")}); err != nil {
		t.Fatalf("first run failed: %v", err)
	}

	env.Define("two", Num(2))
	st, err := Run(env, Program{Word("two"), Word("two"), Word("*")})
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	wantStack(t, st, Num(4))
}
