// interpreter.go: AST-walking evaluator.
//
// The interpreter dispatches over the statement and expression variants of
// ast.go, mutating its Environment and writing print output to stdout. All
// operator semantics live here: structural equality that always evaluates
// both operands, numeric-only comparison and arithmetic, string
// concatenation under '+', and short-circuit logical operators that return
// the deciding operand's value rather than a boolean.
//
// The first runtime error aborts the current statement and the whole
// evaluation pass; the caller (run.go) decides what to do with it.
package lox

import (
	"fmt"
	"io"
)

// Interpreter evaluates statement lists against a persistent environment.
// The environment survives across Interpret calls, which is what keeps REPL
// state alive between lines.
type Interpreter struct {
	env    *Environment
	stdout io.Writer
}

// NewInterpreter creates an interpreter with a fresh environment writing
// print output to stdout.
func NewInterpreter(stdout io.Writer) *Interpreter {
	return &Interpreter{env: NewEnvironment(), stdout: stdout}
}

// Env exposes the interpreter's environment, mainly for tests.
func (ip *Interpreter) Env() *Environment { return ip.env }

// Interpret executes the statements in order. It stops at the first runtime
// error and returns it.
func (ip *Interpreter) Interpret(stmts []Stmt) error {
	for _, s := range stmts {
		if err := ip.execute(s); err != nil {
			return err
		}
	}
	return nil
}

func (ip *Interpreter) execute(s Stmt) error {
	switch s := s.(type) {
	case *ExprStmt:
		_, err := ip.evaluate(s.Expr)
		return err
	case *PrintStmt:
		v, err := ip.evaluate(s.Expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(ip.stdout, v.String())
		return nil
	case *VarStmt:
		value := Nil
		if s.Initializer != nil {
			var err error
			if value, err = ip.evaluate(s.Initializer); err != nil {
				return err
			}
		}
		ip.env.Define(s.Name, value)
		return nil
	case *BlockStmt:
		return ip.executeBlock(s)
	case *IfStmt:
		cond, err := ip.evaluate(s.Condition)
		if err != nil {
			return err
		}
		if cond.Truthy() {
			return ip.execute(s.Then)
		}
		if s.Else != nil {
			return ip.execute(s.Else)
		}
		return nil
	case *WhileStmt:
		for {
			cond, err := ip.evaluate(s.Condition)
			if err != nil {
				return err
			}
			if !cond.Truthy() {
				return nil
			}
			if err := ip.execute(s.Body); err != nil {
				return err
			}
		}
	default:
		return &RuntimeError{Kind: RuntimeUnsupported, Msg: "unknown statement"}
	}
}

// executeBlock runs the block body in a fresh scope. The deferred pop keeps
// the scope stack balanced on every exit path, including runtime errors.
func (ip *Interpreter) executeBlock(b *BlockStmt) error {
	ip.env.PushScope()
	defer ip.env.PopScope()
	for _, s := range b.Statements {
		if err := ip.execute(s); err != nil {
			return err
		}
	}
	return nil
}

func (ip *Interpreter) evaluate(e Expr) (Value, error) {
	switch e := e.(type) {
	case *Literal:
		return e.Value, nil
	case *Grouping:
		return ip.evaluate(e.Expr)
	case *Unary:
		return ip.evalUnary(e)
	case *Binary:
		return ip.evalBinary(e)
	case *Logical:
		return ip.evalLogical(e)
	case *Variable:
		v, ok := ip.env.Get(e.Name)
		if !ok {
			return Nil, &RuntimeError{Kind: RuntimeUndefined, Msg: "Undefined variable"}
		}
		return v, nil
	case *Assign:
		value, err := ip.evaluate(e.Value)
		if err != nil {
			return Nil, err
		}
		if !ip.env.Assign(e.Name, value) {
			return Nil, &RuntimeError{Kind: RuntimeUndefined, Msg: "Undefined variable."}
		}
		return value, nil
	case *Call:
		return Nil, &RuntimeError{Kind: RuntimeUnsupported, Msg: "function calls are not supported"}
	default:
		return Nil, &RuntimeError{Kind: RuntimeUnsupported, Msg: "unknown expression"}
	}
}

func (ip *Interpreter) evalUnary(e *Unary) (Value, error) {
	v, err := ip.evaluate(e.Right)
	if err != nil {
		return Nil, err
	}
	switch e.Op {
	case OpNeg:
		if v.Tag != VTNum {
			return Nil, typeErr("cannot negate a non-number")
		}
		return Num(-v.Data.(float32)), nil
	default: // OpBang
		return Bool(!v.Truthy()), nil
	}
}

// evalLogical short-circuits: the left value itself is the result when it
// decides the outcome, otherwise the right value is.
func (ip *Interpreter) evalLogical(e *Logical) (Value, error) {
	left, err := ip.evaluate(e.Left)
	if err != nil {
		return Nil, err
	}
	if e.Op == OpOr {
		if left.Truthy() {
			return left, nil
		}
	} else {
		if !left.Truthy() {
			return left, nil
		}
	}
	return ip.evaluate(e.Right)
}

// evalBinary always evaluates both operands, left first, even for equality
// where the result may not need the right one.
func (ip *Interpreter) evalBinary(e *Binary) (Value, error) {
	left, err := ip.evaluate(e.Left)
	if err != nil {
		return Nil, err
	}
	right, err := ip.evaluate(e.Right)
	if err != nil {
		return Nil, err
	}

	switch e.Op {
	case OpEq:
		return Bool(left.Equal(right)), nil
	case OpNeq:
		return Bool(!left.Equal(right)), nil
	case OpLt, OpLtEq, OpGt, OpGtEq:
		if left.Tag != VTNum || right.Tag != VTNum {
			return Nil, typeErr("comparison can only between two numbers")
		}
		a, b := left.Data.(float32), right.Data.(float32)
		switch e.Op {
		case OpLt:
			return Bool(a < b), nil
		case OpLtEq:
			return Bool(a <= b), nil
		case OpGt:
			return Bool(a > b), nil
		default:
			return Bool(a >= b), nil
		}
	case OpAdd:
		return addValues(left, right)
	case OpSub:
		return numericOp(left, right, "subtraction operand cannot be non-number",
			func(a, b float32) float32 { return a - b })
	case OpMul:
		return numericOp(left, right, "multiplication operand cannot be non-number",
			func(a, b float32) float32 { return a * b })
	default: // OpDiv; division by zero yields the IEEE value, no trap
		return numericOp(left, right, "division operand cannot be non-number",
			func(a, b float32) float32 { return a / b })
	}
}

func addValues(left, right Value) (Value, error) {
	switch {
	case left.Tag == VTNum && right.Tag == VTNum:
		return Num(left.Data.(float32) + right.Data.(float32)), nil
	case left.Tag == VTStr && right.Tag == VTStr:
		return Str(left.Data.(string) + right.Data.(string)), nil
	case left.Tag == VTBool || right.Tag == VTBool:
		return Nil, typeErr("boolean cannot be an operand to addition")
	case left.Tag == VTNil || right.Tag == VTNil:
		return Nil, typeErr("nil cannot be an operand to addition")
	case left.Tag == VTNum:
		return Nil, typeErr("number value cannot be added with non-number operand")
	default:
		return Nil, typeErr("string value cannot be added to non-string value")
	}
}

func numericOp(left, right Value, msg string, op func(a, b float32) float32) (Value, error) {
	if left.Tag != VTNum || right.Tag != VTNum {
		return Nil, typeErr(msg)
	}
	return Num(op(left.Data.(float32), right.Data.(float32))), nil
}

func typeErr(msg string) error {
	return &RuntimeError{Kind: RuntimeType, Msg: msg}
}
