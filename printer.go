// printer.go: compact parenthesized rendering of AST nodes.
//
// The printed form is prefix notation with one pair of parentheses per node.
// It exists for debugging and for tests that want to assert a tree shape
// without spelling out nested struct literals.
package lox

import "strings"

// FormatExpr renders an expression tree in prefix notation, e.g.
// "1 + 2 * 3" formats as "(+ 1 (* 2 3))".
func FormatExpr(e Expr) string {
	switch e := e.(type) {
	case *Literal:
		return e.Value.String()
	case *Unary:
		return parenthesize(string(e.Op), FormatExpr(e.Right))
	case *Binary:
		return parenthesize(string(e.Op), FormatExpr(e.Left), FormatExpr(e.Right))
	case *Logical:
		return parenthesize(string(e.Op), FormatExpr(e.Left), FormatExpr(e.Right))
	case *Grouping:
		return parenthesize("group", FormatExpr(e.Expr))
	case *Variable:
		return e.Name
	case *Assign:
		return parenthesize("=", e.Name, FormatExpr(e.Value))
	case *Call:
		parts := []string{FormatExpr(e.Callee)}
		for _, a := range e.Args {
			parts = append(parts, FormatExpr(a))
		}
		return parenthesize("call", parts...)
	default:
		return "<unknown>"
	}
}

// FormatStmt renders a statement tree in the same prefix notation.
func FormatStmt(s Stmt) string {
	switch s := s.(type) {
	case *ExprStmt:
		return parenthesize("expr", FormatExpr(s.Expr))
	case *PrintStmt:
		return parenthesize("print", FormatExpr(s.Expr))
	case *VarStmt:
		if s.Initializer == nil {
			return parenthesize("var", s.Name)
		}
		return parenthesize("var", s.Name, FormatExpr(s.Initializer))
	case *BlockStmt:
		parts := make([]string, 0, len(s.Statements))
		for _, inner := range s.Statements {
			parts = append(parts, FormatStmt(inner))
		}
		return parenthesize("block", parts...)
	case *IfStmt:
		if s.Else == nil {
			return parenthesize("if", FormatExpr(s.Condition), FormatStmt(s.Then))
		}
		return parenthesize("if", FormatExpr(s.Condition), FormatStmt(s.Then), FormatStmt(s.Else))
	case *WhileStmt:
		return parenthesize("while", FormatExpr(s.Condition), FormatStmt(s.Body))
	default:
		return "<unknown>"
	}
}

func parenthesize(tag string, parts ...string) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(tag)
	for _, p := range parts {
		b.WriteByte(' ')
		b.WriteString(p)
	}
	b.WriteByte(')')
	return b.String()
}
