// sink.go
//
// Diagnostics are pushed out of the engine as (tag, payload) pairs. Whether
// anything listens is the embedder's choice; correctness never depends on a
// sink being attached.
package nslang

// Sink consumes diagnostic events from an interpreter run.
//
// Tags emitted by the engine:
//
//	"step"    — payload StepEvent, before dispatching an instruction
//	"resolve" — payload ResolveEvent, after a word lookup succeeds
//	"apply"   — payload ApplyEvent, before invoking a primitive
//	"trap"    — payload *Trap, when the run halts on a failure
type Sink interface {
	Emit(tag string, payload any)
}

// StepEvent describes one instruction about to execute.
type StepEvent struct {
	PC    int
	Instr Value
	Depth int
}

// ResolveEvent describes a successful word resolution.
type ResolveEvent struct {
	PC     int
	Symbol string
	To     Value
}

// ApplyEvent describes a primitive about to be invoked.
type ApplyEvent struct {
	PC    int
	Name  string
	Depth int
}

// NopSink discards every event.
type NopSink struct{}

func (NopSink) Emit(string, any) {}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(tag string, payload any)

func (f SinkFunc) Emit(tag string, payload any) { f(tag, payload) }
