package lox

import (
	"io"
	"os"
)

// Runner drives the scanner -> parser -> evaluator pipeline against a shared
// diagnostic sink. One Runner carries one persistent environment, so the
// REPL reuses a single Runner across lines while each file run gets a fresh
// one.
type Runner struct {
	interp *Interpreter
	rep    *Reporter
}

// NewRunner creates a runner printing program output to stdout and
// diagnostics to stderr.
func NewRunner(stdout, stderr io.Writer) *Runner {
	return &Runner{
		interp: NewInterpreter(stdout),
		rep:    NewReporter(stderr),
	}
}

// Reporter returns the runner's diagnostic sink.
func (r *Runner) Reporter() *Reporter { return r.rep }

// Run scans, parses and evaluates one source unit. Evaluation is suppressed
// when scanning or parsing emitted any diagnostic.
func (r *Runner) Run(src string) {
	toks := NewScanner(src, r.rep).ScanTokens()
	stmts := Parse(toks, r.rep)
	if r.rep.HadError() {
		return
	}
	if err := r.interp.Interpret(stmts); err != nil {
		r.rep.Runtime(err)
	}
}

// RunFile reads path as UTF-8 text and executes it, returning the process
// exit code: 65 when any diagnostic was emitted, 0 otherwise. I/O failures
// surface as the returned error.
func (r *Runner) RunFile(path string) (int, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return 1, err
	}
	r.Run(string(src))
	if r.rep.HadError() {
		return 65, nil
	}
	return 0, nil
}
