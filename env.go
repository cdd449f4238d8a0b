package lox

// Environment is the runtime binding stack: a global mapping plus an ordered
// stack of local scopes, the last element being the innermost. The locals
// stack is non-empty only while a block is executing; outside blocks every
// definition lands in the globals.
type Environment struct {
	globals map[string]Value
	locals  []map[string]Value
}

// NewEnvironment creates an environment with empty globals and no local
// scopes.
func NewEnvironment() *Environment {
	return &Environment{globals: make(map[string]Value)}
}

// Define inserts name into the innermost scope, overwriting any existing
// entry there. Re-declaring in the same scope is not an error.
func (e *Environment) Define(name string, v Value) {
	if n := len(e.locals); n > 0 {
		e.locals[n-1][name] = v
		return
	}
	e.globals[name] = v
}

// Get searches the local scopes innermost-outward, then the globals.
func (e *Environment) Get(name string) (Value, bool) {
	for i := len(e.locals) - 1; i >= 0; i-- {
		if v, ok := e.locals[i][name]; ok {
			return v, true
		}
	}
	v, ok := e.globals[name]
	return v, ok
}

// Assign mutates the nearest existing binding of name and reports whether
// one was found. It never defines; the caller surfaces the undefined case.
func (e *Environment) Assign(name string, v Value) bool {
	for i := len(e.locals) - 1; i >= 0; i-- {
		if _, ok := e.locals[i][name]; ok {
			e.locals[i][name] = v
			return true
		}
	}
	if _, ok := e.globals[name]; ok {
		e.globals[name] = v
		return true
	}
	return false
}

// PushScope opens a fresh empty local scope. Calls are balanced with
// PopScope around block evaluation.
func (e *Environment) PushScope() {
	e.locals = append(e.locals, make(map[string]Value))
}

// PopScope removes the innermost local scope.
func (e *Environment) PopScope() {
	e.locals = e.locals[:len(e.locals)-1]
}
