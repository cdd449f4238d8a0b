package lox

// TokenType represents the kind of token.
type TokenType int

const (
	// Special
	EOF TokenType = iota

	// Punctuation
	LPAREN    // "("
	RPAREN    // ")"
	LBRACE    // "{"
	RBRACE    // "}"
	COMMA     // ","
	DOT       // "."
	SEMICOLON // ";"

	// Operators
	PLUS
	MINUS
	STAR
	SLASH
	BANG       // "!"
	NEQ        // "!="
	ASSIGN     // "="
	EQ         // "=="
	LESS       // "<"
	LESS_EQ    // "<="
	GREATER    // ">"
	GREATER_EQ // ">="

	// Literals & identifiers
	ID
	STRING
	NUMBER

	// Keywords
	AND
	CLASS
	ELSE
	FALSE
	FUN
	FOR
	IF
	NIL
	OR
	PRINT
	RETURN
	SUPER
	THIS
	TRUE
	VAR
	WHILE
)

var tokenNames = map[TokenType]string{
	EOF:        "EOF",
	LPAREN:     "LPAREN",
	RPAREN:     "RPAREN",
	LBRACE:     "LBRACE",
	RBRACE:     "RBRACE",
	COMMA:      "COMMA",
	DOT:        "DOT",
	SEMICOLON:  "SEMICOLON",
	PLUS:       "PLUS",
	MINUS:      "MINUS",
	STAR:       "STAR",
	SLASH:      "SLASH",
	BANG:       "BANG",
	NEQ:        "NEQ",
	ASSIGN:     "ASSIGN",
	EQ:         "EQ",
	LESS:       "LESS",
	LESS_EQ:    "LESS_EQ",
	GREATER:    "GREATER",
	GREATER_EQ: "GREATER_EQ",
	ID:         "ID",
	STRING:     "STRING",
	NUMBER:     "NUMBER",
	AND:        "AND",
	CLASS:      "CLASS",
	ELSE:       "ELSE",
	FALSE:      "FALSE",
	FUN:        "FUN",
	FOR:        "FOR",
	IF:         "IF",
	NIL:        "NIL",
	OR:         "OR",
	PRINT:      "PRINT",
	RETURN:     "RETURN",
	SUPER:      "SUPER",
	THIS:       "THIS",
	TRUE:       "TRUE",
	VAR:        "VAR",
	WHILE:      "WHILE",
}

func (tt TokenType) String() string {
	if s, ok := tokenNames[tt]; ok {
		return s
	}
	return "UNKNOWN"
}

// Token is a lexical token with optional literal value.
// Tokens are immutable after scanning.
type Token struct {
	Type    TokenType
	Lexeme  string      // raw text slice, delimiters included for strings
	Literal interface{} // float32 for NUMBER, decoded text for STRING
	Line    int         // 1-based
}

// keywords map
var keywords = map[string]TokenType{
	"and":    AND,
	"class":  CLASS,
	"else":   ELSE,
	"false":  FALSE,
	"fun":    FUN,
	"for":    FOR,
	"if":     IF,
	"nil":    NIL,
	"or":     OR,
	"print":  PRINT,
	"return": RETURN,
	"super":  SUPER,
	"this":   THIS,
	"true":   TRUE,
	"var":    VAR,
	"while":  WHILE,
}
