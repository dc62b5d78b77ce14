// builtin_math.go
//
// Arithmetic words over Num operands. All of these are strict: a Str or Word
// operand is a failure, never a coercion. Division and modulus by zero fail
// rather than producing Inf/NaN, matching the engine's fail-fast character.
package nslang

import (
	"fmt"
	"math"
)

// MathWords installs the arithmetic vocabulary:
//
//	+ - * / mod neg abs min max sqrt floor ceil round
func MathWords(env *Env) *Env {
	env.Define("+", binNum("+", func(a, b float64) (float64, error) { return a + b, nil }))
	env.Define("-", binNum("-", func(a, b float64) (float64, error) { return a - b, nil }))
	env.Define("*", binNum("*", func(a, b float64) (float64, error) { return a * b, nil }))
	env.Define("/", binNum("/", func(a, b float64) (float64, error) {
		if b == 0 {
			return 0, fmt.Errorf("/: division by zero")
		}
		return a / b, nil
	}))
	env.Define("mod", binNum("mod", func(a, b float64) (float64, error) {
		if b == 0 {
			return 0, fmt.Errorf("mod: division by zero")
		}
		return math.Mod(a, b), nil
	}))
	env.Define("min", binNum("min", func(a, b float64) (float64, error) { return math.Min(a, b), nil }))
	env.Define("max", binNum("max", func(a, b float64) (float64, error) { return math.Max(a, b), nil }))

	env.Define("neg", unNum("neg", func(x float64) (float64, error) { return -x, nil }))
	env.Define("abs", unNum("abs", func(x float64) (float64, error) { return math.Abs(x), nil }))
	env.Define("sqrt", unNum("sqrt", func(x float64) (float64, error) {
		if x < 0 {
			return 0, fmt.Errorf("sqrt: negative operand %g", x)
		}
		return math.Sqrt(x), nil
	}))
	env.Define("floor", unNum("floor", func(x float64) (float64, error) { return math.Floor(x), nil }))
	env.Define("ceil", unNum("ceil", func(x float64) (float64, error) { return math.Ceil(x), nil }))
	env.Define("round", unNum("round", func(x float64) (float64, error) { return math.Round(x), nil }))
	return env
}
