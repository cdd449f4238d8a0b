// parser.go: recursive-descent parser for the Lox statement grammar.
//
// OVERVIEW
// --------
// The parser consumes the token vector produced by the scanner and builds
// the statement list evaluated by the interpreter. Precedence is encoded as
// one method per rung of the ladder, lowest binding first:
//
//	expression -> assignment
//	assignment -> IDENT "=" assignment | logic_or
//	logic_or   -> logic_and ( "or"  logic_and )*
//	logic_and  -> equality  ( "and" equality  )*
//	equality   -> comparison( ("!="|"==") comparison )*
//	comparison -> term      ( ("<"|"<="|">"|">=") term )*
//	term       -> factor    ( ("+"|"-") factor )*
//	factor     -> unary     ( ("*"|"/") unary  )*
//	unary      -> ("!"|"-") unary | call
//	call       -> primary ( "(" arguments? ")" )*
//	primary    -> literal | "(" expression ")" | IDENT
//
// Error recovery is panic-mode: a failed declaration reports its diagnostic
// through the Reporter, then synchronize() skips to the next statement
// boundary so one malformed statement does not poison the rest. The parser
// returns whatever prefix of statements parsed cleanly.
//
// "for" has no AST node of its own; it is rewritten during parsing into
// Block[ init?, While( cond ?? true, Block[ body, incr? ] ) ].
package lox

// Parse consumes a token vector and produces the statement list.
// Diagnostics are side-channeled through rep; the returned slice holds the
// successfully parsed statement prefix.
func Parse(toks []Token, rep *Reporter) []Stmt {
	p := &parser{toks: toks, rep: rep}
	return p.program()
}

type parser struct {
	toks []Token
	i    int
	rep  *Reporter
}

// ---------------------------- token basics ----------------------------

func (p *parser) atEnd() bool { return p.peek().Type == EOF }

func (p *parser) peek() Token {
	if p.i >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.i]
}

func (p *parser) prev() Token { return p.toks[p.i-1] }

func (p *parser) advance() Token {
	if !p.atEnd() {
		p.i++
	}
	return p.prev()
}

func (p *parser) check(tt TokenType) bool { return p.peek().Type == tt }

func (p *parser) match(tts ...TokenType) bool {
	for _, tt := range tts {
		if p.check(tt) {
			p.advance()
			return true
		}
	}
	return false
}

// need consumes a token of the expected type or reports msg at the current
// token and returns the parse sentinel.
func (p *parser) need(tt TokenType, msg string) (Token, error) {
	if p.check(tt) {
		return p.advance(), nil
	}
	return Token{}, p.fail(p.peek(), msg)
}

func (p *parser) fail(tok Token, msg string) error {
	p.rep.ErrorAt(tok, msg)
	return parseError{}
}

// synchronize advances to just past the next ';', or stops right before a
// token that can begin a declaration.
func (p *parser) synchronize() {
	p.advance()
	for !p.atEnd() {
		if p.prev().Type == SEMICOLON {
			return
		}
		switch p.peek().Type {
		case CLASS, FUN, VAR, FOR, IF, WHILE, PRINT, RETURN:
			return
		}
		p.advance()
	}
}

// ---------------------------- statements ----------------------------

func (p *parser) program() []Stmt {
	stmts := []Stmt{}
	for !p.atEnd() {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	return stmts
}

func (p *parser) declaration() Stmt {
	var s Stmt
	var err error
	if p.match(VAR) {
		s, err = p.varDecl()
	} else {
		s, err = p.statement()
	}
	if err != nil {
		p.synchronize()
		return nil
	}
	return s
}

func (p *parser) varDecl() (Stmt, error) {
	name, err := p.need(ID, "Expect variable name")
	if err != nil {
		return nil, err
	}
	var init Expr
	if p.match(ASSIGN) {
		if init, err = p.expression(); err != nil {
			return nil, err
		}
	}
	if _, err := p.need(SEMICOLON, "Expect ';' after variable declaration."); err != nil {
		return nil, err
	}
	return &VarStmt{Name: name.Lexeme, Initializer: init}, nil
}

func (p *parser) statement() (Stmt, error) {
	switch {
	case p.match(PRINT):
		return p.printStatement()
	case p.match(LBRACE):
		return p.blockStatement()
	case p.match(IF):
		return p.ifStatement()
	case p.match(WHILE):
		return p.whileStatement()
	case p.match(FOR):
		return p.forStatement()
	default:
		return p.expressionStatement()
	}
}

func (p *parser) printStatement() (Stmt, error) {
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.need(SEMICOLON, "Expected ';' after expression"); err != nil {
		return nil, err
	}
	return &PrintStmt{Expr: value}, nil
}

func (p *parser) expressionStatement() (Stmt, error) {
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.need(SEMICOLON, "Expected ';' after expression"); err != nil {
		return nil, err
	}
	return &ExprStmt{Expr: value}, nil
}

func (p *parser) blockStatement() (Stmt, error) {
	stmts := []Stmt{}
	for !p.check(RBRACE) && !p.atEnd() {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	if _, err := p.need(RBRACE, "Expect '}' after block."); err != nil {
		return nil, err
	}
	return &BlockStmt{Statements: stmts}, nil
}

func (p *parser) ifStatement() (Stmt, error) {
	if _, err := p.need(LPAREN, "Expect '(' after 'if'."); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.need(RPAREN, "Expect ')' after if condition."); err != nil {
		return nil, err
	}
	then, err := p.statement()
	if err != nil {
		return nil, err
	}
	var elseBranch Stmt
	if p.match(ELSE) {
		if elseBranch, err = p.statement(); err != nil {
			return nil, err
		}
	}
	return &IfStmt{Condition: cond, Then: then, Else: elseBranch}, nil
}

func (p *parser) whileStatement() (Stmt, error) {
	if _, err := p.need(LPAREN, "Expect '(' after 'while'."); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.need(RPAREN, "Expect ')' after condition."); err != nil {
		return nil, err
	}
	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return &WhileStmt{Condition: cond, Body: body}, nil
}

// forStatement desugars into a while loop wrapped in a block, so the
// initializer's variable is scoped to the loop.
func (p *parser) forStatement() (Stmt, error) {
	if _, err := p.need(LPAREN, "Expect '(' after 'for'."); err != nil {
		return nil, err
	}

	var init Stmt
	var err error
	switch {
	case p.match(SEMICOLON):
		// no initializer
	case p.match(VAR):
		if init, err = p.varDecl(); err != nil {
			return nil, err
		}
	default:
		if init, err = p.expressionStatement(); err != nil {
			return nil, err
		}
	}

	var cond Expr
	if !p.check(SEMICOLON) {
		if cond, err = p.expression(); err != nil {
			return nil, err
		}
	}
	if _, err := p.need(SEMICOLON, "Expect ';' after loop condition."); err != nil {
		return nil, err
	}

	var incr Expr
	if !p.check(RPAREN) {
		if incr, err = p.expression(); err != nil {
			return nil, err
		}
	}
	if _, err := p.need(RPAREN, "Expect ')' after for clauses."); err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}

	if incr != nil {
		body = &BlockStmt{Statements: []Stmt{body, &ExprStmt{Expr: incr}}}
	}
	if cond == nil {
		cond = &Literal{Value: Bool(true)}
	}
	loop := &WhileStmt{Condition: cond, Body: body}

	stmts := []Stmt{}
	if init != nil {
		stmts = append(stmts, init)
	}
	stmts = append(stmts, loop)
	return &BlockStmt{Statements: stmts}, nil
}

// ---------------------------- expressions ----------------------------

func (p *parser) expression() (Expr, error) {
	return p.assignment()
}

// assignment parses the left side as logic_or first; only once '=' shows up
// does it require the left side to be a plain variable reference.
func (p *parser) assignment() (Expr, error) {
	e, err := p.logicOr()
	if err != nil {
		return nil, err
	}
	if p.match(ASSIGN) {
		equals := p.prev()
		value, err := p.assignment()
		if err != nil {
			return nil, err
		}
		if v, ok := e.(*Variable); ok {
			return &Assign{Name: v.Name, Value: value}, nil
		}
		// Report but keep going with the LHS as a bare expression.
		p.rep.ErrorAt(equals, "Invalid assignment target.")
	}
	return e, nil
}

func (p *parser) logicOr() (Expr, error) {
	e, err := p.logicAnd()
	if err != nil {
		return nil, err
	}
	for p.match(OR) {
		rhs, err := p.logicAnd()
		if err != nil {
			return nil, err
		}
		e = &Logical{Left: e, Op: OpOr, Right: rhs}
	}
	return e, nil
}

func (p *parser) logicAnd() (Expr, error) {
	e, err := p.equality()
	if err != nil {
		return nil, err
	}
	for p.match(AND) {
		rhs, err := p.equality()
		if err != nil {
			return nil, err
		}
		e = &Logical{Left: e, Op: OpAnd, Right: rhs}
	}
	return e, nil
}

var binaryOps = map[TokenType]BinaryOp{
	NEQ:        OpNeq,
	EQ:         OpEq,
	LESS:       OpLt,
	LESS_EQ:    OpLtEq,
	GREATER:    OpGt,
	GREATER_EQ: OpGtEq,
	PLUS:       OpAdd,
	MINUS:      OpSub,
	STAR:       OpMul,
	SLASH:      OpDiv,
}

// binaryLevel parses one left-associative rung: next ( ops next )*.
func (p *parser) binaryLevel(next func() (Expr, error), tts ...TokenType) (Expr, error) {
	e, err := next()
	if err != nil {
		return nil, err
	}
	for p.match(tts...) {
		op := binaryOps[p.prev().Type]
		rhs, err := next()
		if err != nil {
			return nil, err
		}
		e = &Binary{Left: e, Op: op, Right: rhs}
	}
	return e, nil
}

func (p *parser) equality() (Expr, error) {
	return p.binaryLevel(p.comparison, NEQ, EQ)
}

func (p *parser) comparison() (Expr, error) {
	return p.binaryLevel(p.term, LESS, LESS_EQ, GREATER, GREATER_EQ)
}

func (p *parser) term() (Expr, error) {
	return p.binaryLevel(p.factor, PLUS, MINUS)
}

func (p *parser) factor() (Expr, error) {
	return p.binaryLevel(p.unary, STAR, SLASH)
}

func (p *parser) unary() (Expr, error) {
	if p.match(BANG, MINUS) {
		op := OpBang
		if p.prev().Type == MINUS {
			op = OpNeg
		}
		rhs, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &Unary{Op: op, Right: rhs}, nil
	}
	return p.call()
}

func (p *parser) call() (Expr, error) {
	e, err := p.primary()
	if err != nil {
		return nil, err
	}
	for p.match(LPAREN) {
		if e, err = p.finishCall(e); err != nil {
			return nil, err
		}
	}
	return e, nil
}

func (p *parser) finishCall(callee Expr) (Expr, error) {
	args := []Expr{}
	if !p.check(RPAREN) {
		for {
			if len(args) >= 255 {
				return nil, p.fail(p.peek(), "Can't have more than 255 arguments.")
			}
			arg, err := p.expression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.match(COMMA) {
				break
			}
		}
	}
	if _, err := p.need(RPAREN, "Expect ')' after arguments."); err != nil {
		return nil, err
	}
	return &Call{Callee: callee, Args: args}, nil
}

func (p *parser) primary() (Expr, error) {
	switch {
	case p.match(FALSE):
		return &Literal{Value: Bool(false)}, nil
	case p.match(TRUE):
		return &Literal{Value: Bool(true)}, nil
	case p.match(NIL):
		return &Literal{Value: Nil}, nil
	case p.match(NUMBER):
		return &Literal{Value: Num(p.prev().Literal.(float32))}, nil
	case p.match(STRING):
		return &Literal{Value: Str(p.prev().Literal.(string))}, nil
	case p.match(LPAREN):
		e, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.need(RPAREN, "Expected ')' after expression"); err != nil {
			return nil, err
		}
		return &Grouping{Expr: e}, nil
	case p.match(ID):
		return &Variable{Name: p.prev().Lexeme}, nil
	default:
		return nil, p.fail(p.peek(), "Expected expression.")
	}
}
