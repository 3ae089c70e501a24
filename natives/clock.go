/*
File    : loxy/natives/clock.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package natives implements the interpreter's built-in callables — the
// small set of native functions available in every global environment
// without a corresponding Lox-source declaration.
package natives

import (
	"time"

	"github.com/akashmaji946/loxy/value"
)

// epoch is the fixed reference instant clock() measures elapsed seconds
// against. It is computed once at process start rather than read fresh
// per call, so repeated calls within a run measure relative time instead
// of wall-clock time, matching the original implementation's intent of a
// monotonic-feeling benchmarking clock.
var epoch = time.Now()

// Clock is the `clock` native: it takes no arguments and returns the
// number of seconds elapsed since the interpreter started, as a Value of
// kind KindNumber.
type Clock struct{}

// Arity is always zero: clock() takes no arguments.
func (Clock) Arity() int { return 0 }

// Name returns "clock", the identifier bound to this native in the global
// environment.
func (Clock) Name() string { return "clock" }

// IsNative always reports true for every value in this package.
func (Clock) IsNative() bool { return true }

// Call returns the elapsed time since epoch, in fractional seconds.
func (Clock) Call(args []value.Value) (value.Value, error) {
	return value.Number(time.Since(epoch).Seconds()), nil
}
