package lox

import "testing"

func Test_Printer_SimpleLiteral(t *testing.T) {
	if got := FormatExpr(&Literal{Value: Nil}); got != "nil" {
		t.Fatalf("got %q", got)
	}
}

func Test_Printer_SimpleGrouping(t *testing.T) {
	e := &Grouping{Expr: &Literal{Value: Nil}}
	if got := FormatExpr(e); got != "(group nil)" {
		t.Fatalf("got %q", got)
	}
}

func Test_Printer_SimpleBinary(t *testing.T) {
	e := &Binary{
		Left:  &Literal{Value: Bool(true)},
		Op:    OpAdd,
		Right: &Literal{Value: Bool(false)},
	}
	if got := FormatExpr(e); got != "(+ true false)" {
		t.Fatalf("got %q", got)
	}
}

func Test_Printer_Nested(t *testing.T) {
	// -123 * (45.7) in prefix form
	e := &Binary{
		Left:  &Unary{Op: OpNeg, Right: &Literal{Value: Num(123)}},
		Op:    OpMul,
		Right: &Grouping{Expr: &Literal{Value: Num(45.7)}},
	}
	if got := FormatExpr(e); got != "(* (- 123) (group 45.7))" {
		t.Fatalf("got %q", got)
	}
}

func Test_Printer_Statements(t *testing.T) {
	s := &IfStmt{
		Condition: &Variable{Name: "a"},
		Then:      &PrintStmt{Expr: &Variable{Name: "a"}},
		Else:      &BlockStmt{Statements: []Stmt{&ExprStmt{Expr: &Assign{Name: "a", Value: &Literal{Value: Num(1)}}}}},
	}
	want := "(if a (print a) (block (expr (= a 1))))"
	if got := FormatStmt(s); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
