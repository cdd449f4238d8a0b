package lox

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
)

func parseSrc(t *testing.T, src string) ([]Stmt, string) {
	t.Helper()
	var errs bytes.Buffer
	rep := NewReporter(&errs)
	toks := NewScanner(src, rep).ScanTokens()
	stmts := Parse(toks, rep)
	return stmts, errs.String()
}

func wantProgram(t *testing.T, src string, want []string) {
	t.Helper()
	stmts, errs := parseSrc(t, src)
	if errs != "" {
		t.Fatalf("unexpected diagnostics for %q:\n%s", src, errs)
	}
	got := make([]string, 0, len(stmts))
	for _, s := range stmts {
		got = append(got, FormatStmt(s))
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("\nsource: %q\nwant: %v\ngot:  %v", src, want, got)
	}
}

func Test_Parser_Precedence(t *testing.T) {
	wantProgram(t, "1 + 2 * 3;", []string{"(expr (+ 1 (* 2 3)))"})
	wantProgram(t, "1 * 2 + 3;", []string{"(expr (+ (* 1 2) 3))"})
	wantProgram(t, "(1 + 2) * 3;", []string{"(expr (* (group (+ 1 2)) 3))"})
	wantProgram(t, "1 < 2 == true;", []string{"(expr (== (< 1 2) true))"})
	wantProgram(t, "a or b and c;", []string{"(expr (or a (and b c)))"})
	wantProgram(t, "1 - 2 - 3;", []string{"(expr (- (- 1 2) 3))"})
}

func Test_Parser_Unary(t *testing.T) {
	wantProgram(t, "!-1;", []string{"(expr (! (- 1)))"})
	wantProgram(t, "-1 + 2;", []string{"(expr (+ (- 1) 2))"})
}

func Test_Parser_AssignmentRightAssociative(t *testing.T) {
	wantProgram(t, "a = b = 2;", []string{"(expr (= a (= b 2)))"})
}

func Test_Parser_VarDeclaration(t *testing.T) {
	wantProgram(t, "var a;", []string{"(var a)"})
	wantProgram(t, "var a = 1 + 2;", []string{"(var a (+ 1 2))"})
}

func Test_Parser_Block(t *testing.T) {
	wantProgram(t, "{ var a = 1; print a; }",
		[]string{"(block (var a 1) (print a))"})
}

func Test_Parser_IfElse(t *testing.T) {
	wantProgram(t, "if (a) print 1;", []string{"(if a (print 1))"})
	wantProgram(t, "if (a) print 1; else print 2;",
		[]string{"(if a (print 1) (print 2))"})
}

func Test_Parser_While(t *testing.T) {
	wantProgram(t, "while (i < 3) print i;",
		[]string{"(while (< i 3) (print i))"})
}

func Test_Parser_ForDesugaring(t *testing.T) {
	wantProgram(t, "for (var j = 0; j < 2; j = j + 1) print j;",
		[]string{"(block (var j 0) (while (< j 2) (block (print j) (expr (= j (+ j 1))))))"})
	wantProgram(t, "for (;;) print 1;",
		[]string{"(block (while true (print 1)))"})
	wantProgram(t, "for (; i < 2;) print i;",
		[]string{"(block (while (< i 2) (print i)))"})
	wantProgram(t, "for (i = 0; i < 2;) print i;",
		[]string{"(block (expr (= i 0)) (while (< i 2) (print i)))"})
}

func Test_Parser_Calls(t *testing.T) {
	wantProgram(t, "f();", []string{"(expr (call f))"})
	wantProgram(t, "f(1, 2)(3);", []string{"(expr (call (call f 1 2) 3))"})
}

func Test_Parser_TooManyArguments(t *testing.T) {
	var b strings.Builder
	b.WriteString("f(")
	for i := 0; i < 256; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString("1")
	}
	b.WriteString(");")
	_, errs := parseSrc(t, b.String())
	if !strings.Contains(errs, "Can't have more than 255 arguments.") {
		t.Fatalf("diagnostics = %q", errs)
	}
}

func Test_Parser_InvalidAssignmentTarget(t *testing.T) {
	stmts, errs := parseSrc(t, "1 = 2;")
	if !strings.Contains(errs, "Invalid assignment target.") {
		t.Fatalf("diagnostics = %q", errs)
	}
	// the parser keeps going with the LHS as the expression
	if len(stmts) != 1 || FormatStmt(stmts[0]) != "(expr 1)" {
		t.Fatalf("stmts = %v", stmts)
	}
}

func Test_Parser_ErrorAtEnd(t *testing.T) {
	_, errs := parseSrc(t, "print 1")
	if want := "[line 1] Error at end: Expected ';' after expression\n"; errs != want {
		t.Fatalf("diagnostics = %q, want %q", errs, want)
	}
}

func Test_Parser_ErrorAtLexeme(t *testing.T) {
	_, errs := parseSrc(t, "var + 1;")
	if !strings.Contains(errs, "[line 1] Error at '+': Expect variable name") {
		t.Fatalf("diagnostics = %q", errs)
	}
}

func Test_Parser_SynchronizeRecovers(t *testing.T) {
	stmts, errs := parseSrc(t, "var + 1;\nprint 2;")
	if errs == "" {
		t.Fatal("expected a diagnostic")
	}
	// one malformed statement must not poison the rest
	if len(stmts) != 1 || FormatStmt(stmts[0]) != "(print 2)" {
		got := make([]string, 0, len(stmts))
		for _, s := range stmts {
			got = append(got, FormatStmt(s))
		}
		t.Fatalf("recovered stmts = %v", got)
	}
}

func Test_Parser_SynchronizePastSemicolon(t *testing.T) {
	stmts, errs := parseSrc(t, "1 +;\nvar a = 3;")
	if errs == "" {
		t.Fatal("expected a diagnostic")
	}
	if len(stmts) != 1 || FormatStmt(stmts[0]) != "(var a 3)" {
		got := make([]string, 0, len(stmts))
		for _, s := range stmts {
			got = append(got, FormatStmt(s))
		}
		t.Fatalf("recovered stmts = %v", got)
	}
}

func Test_Parser_SynchronizeStopsAtKeyword(t *testing.T) {
	stmts, errs := parseSrc(t, "+ print 2;")
	if !strings.Contains(errs, "Expected expression.") {
		t.Fatalf("diagnostics = %q", errs)
	}
	if len(stmts) != 1 || FormatStmt(stmts[0]) != "(print 2)" {
		t.Fatalf("recovered stmts = %v", stmts)
	}
}

func Test_Parser_EmptySource(t *testing.T) {
	wantProgram(t, "", []string{})
}
