// ast.go: tree shapes shared by the parser and the evaluator.
//
// The AST is a pure tree: no sharing, no back references. Nodes are immutable
// once the parser returns them and live for a single evaluation pass.
package lox

// UnaryOp represents a prefix operator.
type UnaryOp string

const (
	OpNeg  UnaryOp = "-"
	OpBang UnaryOp = "!"
)

// BinaryOp represents an infix arithmetic, comparison or equality operator.
type BinaryOp string

const (
	OpEq   BinaryOp = "=="
	OpNeq  BinaryOp = "!="
	OpLt   BinaryOp = "<"
	OpLtEq BinaryOp = "<="
	OpGt   BinaryOp = ">"
	OpGtEq BinaryOp = ">="
	OpAdd  BinaryOp = "+"
	OpSub  BinaryOp = "-"
	OpMul  BinaryOp = "*"
	OpDiv  BinaryOp = "/"
)

// LogicalOp represents a short-circuit operator.
type LogicalOp string

const (
	OpAnd LogicalOp = "and"
	OpOr  LogicalOp = "or"
)

// Expr is the interface for all expression nodes.
type Expr interface {
	exprNode() // sealed marker
}

type Literal struct {
	Value Value
}

type Unary struct {
	Op    UnaryOp
	Right Expr
}

type Binary struct {
	Left  Expr
	Op    BinaryOp
	Right Expr
}

type Logical struct {
	Left  Expr
	Op    LogicalOp
	Right Expr
}

type Grouping struct {
	Expr Expr
}

type Variable struct {
	Name string
}

type Assign struct {
	Name  string
	Value Expr
}

// Call is parsed so the grammar surface stays stable, but is not evaluated
// by this core.
type Call struct {
	Callee Expr
	Args   []Expr
}

func (*Literal) exprNode()  {}
func (*Unary) exprNode()    {}
func (*Binary) exprNode()   {}
func (*Logical) exprNode()  {}
func (*Grouping) exprNode() {}
func (*Variable) exprNode() {}
func (*Assign) exprNode()   {}
func (*Call) exprNode()     {}

// Stmt is the interface for all statement nodes.
type Stmt interface {
	stmtNode() // sealed marker
}

type ExprStmt struct {
	Expr Expr
}

type PrintStmt struct {
	Expr Expr
}

type VarStmt struct {
	Name        string
	Initializer Expr // nil when the declaration has no initializer
}

type BlockStmt struct {
	Statements []Stmt
}

type IfStmt struct {
	Condition Expr
	Then      Stmt
	Else      Stmt // nil when there is no else branch
}

type WhileStmt struct {
	Condition Expr
	Body      Stmt
}

func (*ExprStmt) stmtNode()  {}
func (*PrintStmt) stmtNode() {}
func (*VarStmt) stmtNode()   {}
func (*BlockStmt) stmtNode() {}
func (*IfStmt) stmtNode()    {}
func (*WhileStmt) stmtNode() {}
