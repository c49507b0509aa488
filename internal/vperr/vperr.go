// Package vperr defines the core's programmer-error kind. Bitstream-level
// malformedness is caught upstream and never reaches this core with invalid
// modes; values reported through LogicFault are detected via
// assertions and are never recoverable data errors.
package vperr

import "fmt"

// LogicFault is an out-of-domain mode enum value or a violated
// neighbour-index predicate: a programmer error, not a data error.
type LogicFault struct{ Msg string }

func (e LogicFault) Error() string { return "vp8predict: logic fault: " + e.Msg }

// Assert panics with a LogicFault if cond is false.
func Assert(cond bool, format string, args ...any) {
	if !cond {
		panic(LogicFault{Msg: fmt.Sprintf(format, args...)})
	}
}
