/*
File    : loxy/report/report.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package report implements the Reporter collaborator shared by every
// compiler phase. It is a plain value threaded explicitly through the
// Scanner, Parser, Resolver and Interpreter rather than kept as ambient
// global state, so that a driver (REPL, file runner, TCP session) can run
// many independent programs without one run's errors leaking into the next.
package report

import (
	"fmt"
	"io"
)

// Reporter collects compile-time and runtime error flags for one run of the
// pipeline and formats diagnostics in the wire format spec'd for the
// language: "[line N] Error AT: MESSAGE" for compile errors and
// "MESSAGE\n[line N]" for runtime errors.
type Reporter struct {
	// Writer is where formatted diagnostics are written. When it is nil,
	// nothing is written but the error flags are still recorded.
	Writer io.Writer

	hadError        bool
	hadRuntimeError bool
}

// NewReporter creates a Reporter that writes formatted diagnostics to w.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{Writer: w}
}

// ReportCompile records a compile-time error (scan, parse or resolve phase)
// at the given source line and writes it to the reporter's Writer. where
// supplies the " at end" / " at 'LEXEME'" suffix, or the empty string.
func (r *Reporter) ReportCompile(line int, where string, msg string) {
	r.hadError = true
	if r.Writer != nil {
		fmt.Fprintf(r.Writer, "[line %d] Error%s: %s\n", line, where, msg)
	}
}

// ReportRuntime records a runtime error and writes it in the two-line
// format: the message, then the offending line in brackets.
func (r *Reporter) ReportRuntime(line int, msg string) {
	r.hadRuntimeError = true
	if r.Writer != nil {
		fmt.Fprintf(r.Writer, "%s\n[line %d]\n", msg, line)
	}
}

// HadError reports whether any compile-time error was recorded since the
// last Reset.
func (r *Reporter) HadError() bool { return r.hadError }

// HadRuntimeError reports whether a runtime error was recorded since the
// last Reset.
func (r *Reporter) HadRuntimeError() bool { return r.hadRuntimeError }

// Reset clears both error flags, ready for the next line or file. This is
// called between REPL lines so that one bad line does not poison the rest
// of the session.
func (r *Reporter) Reset() {
	r.hadError = false
	r.hadRuntimeError = false
}
