// interp.go
//
// The interpreter loop: a sequential dispatcher over a flat Program. One run
// owns one stack and one environment, executes in a single unbroken pass, and
// either returns the final stack or halts at the first failure with a Trap
// carrying the pc and a stack snapshot.
//
// Per step:
//
//  1. Read program[pc].
//  2. A Word is resolved through the environment exactly once. If the
//     resolved value is itself a Word, it is NOT resolved again — it falls
//     through and is pushed as a literal. Single-level indirection is an
//     observable property of the engine, kept on purpose.
//  3. A Primitive (literal or resolved) is invoked against the current stack
//     and the stack it returns becomes the current stack. Anything else is
//     pushed unchanged.
//  4. pc advances by one; the run ends when pc reaches the program length.
//
// There is no branching, no recursion into sub-programs, and no implicit
// cleanup: whatever the stack looks like when a step fails is what the Trap
// reports.
package nslang

// Interp drives programs against a fixed environment. Env must be non-nil;
// Sink may be nil (no events are emitted then).
type Interp struct {
	Env  *Env
	Sink Sink
}

// New returns an interpreter over env with no diagnostics sink.
func New(env *Env) *Interp {
	return &Interp{Env: env}
}

// Run executes prog from pc 0 on a fresh empty stack. On success it returns
// the final stack. On failure it returns the stack as it stood at the point
// of failure together with a *Trap describing the cause.
func (ip *Interp) Run(prog Program) (*Stack, error) {
	return ip.RunFrom(prog, 0, NewStack())
}

// RunFrom executes prog starting at pc on the provided stack. It exists for
// resumption: a caller holding a Trap can continue past the failing step or
// re-enter a program with operands already staged. st must be non-nil.
func (ip *Interp) RunFrom(prog Program, pc int, st *Stack) (*Stack, error) {
	for ; pc < len(prog); pc++ {
		instr := prog[pc]
		ip.emit("step", StepEvent{PC: pc, Instr: instr, Depth: st.Depth()})

		// Resolve a word through the environment, once.
		if instr.Tag == VTWord {
			resolved, err := ip.Env.Lookup(instr)
			if err != nil {
				return st, ip.trap(pc, st, err)
			}
			ip.emit("resolve", ResolveEvent{PC: pc, Symbol: instr.Data.(string), To: resolved})
			instr = resolved
		}

		switch instr.Tag {
		case VTPrim:
			p := instr.Data.(*Primitive)
			ip.emit("apply", ApplyEvent{PC: pc, Name: p.Name, Depth: st.Depth()})
			next, err := p.Fn(st)
			if err != nil {
				return st, ip.trap(pc, st, err)
			}
			st = next
		default:
			// Num, Str, and once-resolved Words are literals.
			st.Push(instr)
		}
	}
	return st, nil
}

func (ip *Interp) trap(pc int, st *Stack, cause error) error {
	t := &Trap{PC: pc, Stack: st.Values(), Err: cause}
	ip.emit("trap", t)
	return t
}

func (ip *Interp) emit(tag string, payload any) {
	if ip.Sink != nil {
		ip.Sink.Emit(tag, payload)
	}
}

// Run is the package-level convenience entrypoint: a one-shot run of prog
// against env with no sink attached.
func Run(env *Env, prog Program) (*Stack, error) {
	return New(env).Run(prog)
}
