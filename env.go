// env.go
//
// The word environment: a single flat mapping from symbol to Value. There are
// no nested scopes and no parent chain — n-slang resolution is one table, one
// level. An Env is owned by one run at a time; embedders that share one
// across concurrent runs must synchronize on their side, the engine does not
// lock.
//
// Environments grow by composing builders. A Builder takes an Env and returns
// it (usually the same one) with more words defined; BuildEnv folds an
// explicit, ordered list of builders over a fresh Env. That replaces the
// original design's hidden accumulating loader with state the embedder can
// see and thread.
package nslang

// Env maps symbols to Values. Keys are unique; Define overwrites.
type Env struct {
	table map[string]Value
}

// NewEnv returns a new, empty environment.
func NewEnv() *Env {
	return &Env{table: make(map[string]Value)}
}

// Define binds key to v, overwriting any prior binding, and returns the
// environment so definitions chain.
func (e *Env) Define(key string, v Value) *Env {
	e.table[key] = v
	return e
}

// Lookup resolves a Word Value against the environment. Passing a non-Word
// is a programming error and reported as an unbound lookup of the value's
// rendering.
func (e *Env) Lookup(w Value) (Value, error) {
	sym, ok := Symbol(w)
	if !ok {
		return Value{}, &UnboundWordError{Symbol: w.String()}
	}
	return e.LookupName(sym)
}

// LookupName resolves a symbol directly.
func (e *Env) LookupName(sym string) (Value, error) {
	v, ok := e.table[sym]
	if !ok {
		return Value{}, &UnboundWordError{Symbol: sym}
	}
	return v, nil
}

// Len reports the number of bindings.
func (e *Env) Len() int { return len(e.table) }

// Builder extends an environment with definitions and returns it. Word
// libraries (builtin_*.go) each export one.
type Builder func(*Env) *Env

// Compose chains builders left-to-right into one.
func Compose(builders ...Builder) Builder {
	return func(env *Env) *Env {
		for _, b := range builders {
			env = b(env)
		}
		return env
	}
}

// BuildEnv folds the builders over a fresh empty environment.
func BuildEnv(builders ...Builder) *Env {
	return Compose(builders...)(NewEnv())
}
