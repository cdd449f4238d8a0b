// errors.go: diagnostic sink and error types shared by the pipeline.
//
// The scanner, parser and evaluator all report through a *Reporter rather
// than printing directly. The reporter formats every diagnostic as
//
//	[line <N>] Error <AT>: <MESSAGE>
//
// where <AT> is empty for lexical errors, "at end" when the parser stalls on
// EOF, and "at '<lexeme>'" otherwise. The reporter also carries the error
// flag that decides the exit status of a file run (65 when set).
package lox

import (
	"fmt"
	"io"
)

// RuntimeErrorKind classifies evaluation failures.
type RuntimeErrorKind int

const (
	RuntimeType        RuntimeErrorKind = iota // operand type mismatch
	RuntimeUndefined                           // unresolved variable reference
	RuntimeUnsupported                         // recognized but unevaluable construct
)

// RuntimeError represents an execution-time failure. It aborts the current
// evaluation pass; there is no retry or unwind-and-resume.
type RuntimeError struct {
	Kind RuntimeErrorKind
	Msg  string
}

func (e *RuntimeError) Error() string { return e.Msg }

// parseError is the sentinel returned inside the parser after the diagnostic
// has already been reported. It carries no message of its own.
type parseError struct{}

func (parseError) Error() string { return "parse error" }

// Reporter is the diagnostic sink. It writes formatted diagnostics to w and
// records whether any error has been emitted since the last Reset.
type Reporter struct {
	w        io.Writer
	hadError bool
}

// NewReporter creates a reporter writing to w (stderr in production).
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Report emits a diagnostic with an explicit context string and sets the
// error flag. An empty at produces "Error : <msg>", matching the scanner's
// line-only diagnostics.
func (r *Reporter) Report(line int, at, msg string) {
	fmt.Fprintf(r.w, "[line %d] Error %s: %s\n", line, at, msg)
	r.hadError = true
}

// Error reports a scan diagnostic at the given line with no context.
func (r *Reporter) Error(line int, msg string) {
	r.Report(line, "", msg)
}

// ErrorAt reports a parse diagnostic at the given token. EOF formats as
// "at end"; any other token as "at '<lexeme>'".
func (r *Reporter) ErrorAt(tok Token, msg string) {
	if tok.Type == EOF {
		r.Report(tok.Line, "at end", msg)
	} else {
		r.Report(tok.Line, fmt.Sprintf("at '%s'", tok.Lexeme), msg)
	}
}

// Runtime surfaces an evaluation failure and sets the error flag, so file
// runs inherit status 65 through the same contract as scan/parse errors.
func (r *Reporter) Runtime(err error) {
	fmt.Fprintln(r.w, err.Error())
	r.hadError = true
}

// HadError reports whether any diagnostic was emitted since the last Reset.
func (r *Reporter) HadError() bool { return r.hadError }

// Reset clears the error flag. The REPL calls this after every line.
func (r *Reporter) Reset() { r.hadError = false }
