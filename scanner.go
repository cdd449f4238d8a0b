// scanner.go: source text -> token stream.
//
// The scanner walks the decoded rune sequence through a depth-2 Prefetched
// buffer (prefetch.go), which is exactly the lookahead the grammar needs:
// one rune to resolve two-character operators and comments, two to decide
// whether a '.' belongs to a number. Malformed input is reported through the
// Reporter and scanning continues; the scanner itself never fails.
package lox

import (
	"strconv"
	"unicode"
)

type runeStream struct {
	runes []rune
	i     int
}

func (s *runeStream) Next() (rune, bool) {
	if s.i >= len(s.runes) {
		return 0, false
	}
	r := s.runes[s.i]
	s.i++
	return r, true
}

// Scanner scans a Lox source string into tokens.
type Scanner struct {
	runes   []rune
	iter    *Prefetched[rune]
	tokens  []Token
	start   int // start index of current lexeme
	current int // index one past the last consumed rune
	line    int // 1-based
	rep     *Reporter
}

// NewScanner creates a new scanner for the given source, reporting
// diagnostics to rep.
func NewScanner(src string, rep *Reporter) *Scanner {
	runes := []rune(src)
	return &Scanner{
		runes: runes,
		iter:  NewPrefetched[rune](&runeStream{runes: runes}, 2),
		line:  1,
		rep:   rep,
	}
}

// ScanTokens tokenizes the entire source. The result always ends with
// exactly one EOF token carrying the final line number.
func (s *Scanner) ScanTokens() []Token {
	for !s.isAtEnd() {
		s.start = s.current
		s.scanToken()
	}
	s.tokens = append(s.tokens, Token{Type: EOF, Lexeme: "", Line: s.line})
	return s.tokens
}

func (s *Scanner) isAtEnd() bool { return s.current >= len(s.runes) }

func (s *Scanner) advance() rune {
	r, _ := s.iter.Next()
	s.current++
	return r
}

func (s *Scanner) peek() rune {
	r, ok := s.iter.Peek()
	if !ok {
		return 0
	}
	return r
}

func (s *Scanner) peekNext() rune {
	r, ok := s.iter.PeekNth(1)
	if !ok {
		return 0
	}
	return r
}

func (s *Scanner) match(expected rune) bool {
	if r, ok := s.iter.Peek(); !ok || r != expected {
		return false
	}
	s.advance()
	return true
}

func (s *Scanner) addToken(tt TokenType) {
	s.addTokenLit(tt, nil)
}

func (s *Scanner) addTokenLit(tt TokenType, lit interface{}) {
	s.tokens = append(s.tokens, Token{
		Type:    tt,
		Lexeme:  string(s.runes[s.start:s.current]),
		Literal: lit,
		Line:    s.line,
	})
}

func (s *Scanner) scanToken() {
	switch ch := s.advance(); ch {
	case '(':
		s.addToken(LPAREN)
	case ')':
		s.addToken(RPAREN)
	case '{':
		s.addToken(LBRACE)
	case '}':
		s.addToken(RBRACE)
	case ',':
		s.addToken(COMMA)
	case '.':
		s.addToken(DOT)
	case '-':
		s.addToken(MINUS)
	case '+':
		s.addToken(PLUS)
	case ';':
		s.addToken(SEMICOLON)
	case '*':
		s.addToken(STAR)
	case '!':
		if s.match('=') {
			s.addToken(NEQ)
		} else {
			s.addToken(BANG)
		}
	case '=':
		if s.match('=') {
			s.addToken(EQ)
		} else {
			s.addToken(ASSIGN)
		}
	case '<':
		if s.match('=') {
			s.addToken(LESS_EQ)
		} else {
			s.addToken(LESS)
		}
	case '>':
		if s.match('=') {
			s.addToken(GREATER_EQ)
		} else {
			s.addToken(GREATER)
		}
	case '/':
		if s.match('/') {
			// comment until end of line, no token
			for s.peek() != '\n' && !s.isAtEnd() {
				s.advance()
			}
		} else {
			s.addToken(SLASH)
		}
	case ' ', '\r', '\t':
	case '\n':
		s.line++
	case '"':
		s.scanString()
	default:
		if isDigit(ch) {
			s.scanNumber()
		} else if unicode.IsLetter(ch) {
			s.scanIdentifier()
		} else {
			s.rep.Error(s.line, "Unexpected character.")
		}
	}
}

func (s *Scanner) scanString() {
	for s.peek() != '"' && !s.isAtEnd() {
		if s.peek() == '\n' {
			s.line++
		}
		s.advance()
	}
	if s.isAtEnd() {
		s.rep.Error(s.line, "Unterminated string.")
		return
	}
	// closing delimiter
	s.advance()
	interior := string(s.runes[s.start+1 : s.current-1])
	s.addTokenLit(STRING, interior)
}

// scanNumber consumes digits with an optional fractional part. A trailing
// '.' without fractional digits is left unconsumed.
func (s *Scanner) scanNumber() {
	for isDigit(s.peek()) {
		s.advance()
	}
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance() // consume '.'
		for isDigit(s.peek()) {
			s.advance()
		}
	}
	s.addTokenLit(NUMBER, parseFloat32(string(s.runes[s.start:s.current])))
}

func (s *Scanner) scanIdentifier() {
	for isAlphaNum(s.peek()) {
		s.advance()
	}
	lex := string(s.runes[s.start:s.current])
	if tt, ok := keywords[lex]; ok {
		s.addToken(tt)
		return
	}
	s.addTokenLit(ID, lex)
}

// parseFloat32 cannot fail here: the scanner only hands it digit runs with
// at most one interior '.'.
func parseFloat32(s string) float32 {
	f, _ := strconv.ParseFloat(s, 32)
	return float32(f)
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isAlphaNum(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) }
