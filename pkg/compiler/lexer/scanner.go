package lexer

import (
	"strconv"

	"github.com/agenthands/nlox/pkg/core/value"
	"github.com/agenthands/nlox/pkg/diag"
)

const (
	msgUnexpectedChar     = "Unexpected character."
	msgUnterminatedString = "Unterminated string."
)

// Scanner performs lexical analysis on source text.
// All cursor state lives on the instance; independent scanners never interfere.
type Scanner struct {
	source  string
	start   int
	current int
	line    int
	sink    diag.Reporter
}

// NewScanner creates a new scanner for the given source.
// Lexical errors go to sink; a nil sink discards them.
func NewScanner(source string, sink diag.Reporter) *Scanner {
	if sink == nil {
		sink = diag.Discard
	}
	return &Scanner{
		source: source,
		line:   1,
		sink:   sink,
	}
}

// ScanTokens is a one-shot helper around NewScanner and (*Scanner).ScanTokens.
func ScanTokens(source string, sink diag.Reporter) []Token {
	return NewScanner(source, sink).ScanTokens()
}

// Reset re-initializes the scanner with new source for reuse.
func (s *Scanner) Reset(source string) {
	s.source = source
	s.start = 0
	s.current = 0
	s.line = 1
}

// Line returns the current line of the cursor.
func (s *Scanner) Line() int {
	return s.line
}

// ScanTokens consumes the rest of the source and returns its tokens,
// terminated by exactly one end-of-input token.
func (s *Scanner) ScanTokens() []Token {
	var tokens []Token
	for {
		tok := s.Next()
		tokens = append(tokens, tok)
		if tok.Kind == KindEndOfInput {
			return tokens
		}
	}
}

// Next returns the next token from the source. Once the input is exhausted
// every call returns an end-of-input token.
func (s *Scanner) Next() Token {
	for !s.isAtEnd() {
		s.start = s.current
		if tok, ok := s.scanToken(); ok {
			return tok
		}
	}
	return Token{Kind: KindEndOfInput, Line: s.line}
}

// scanToken recognizes one lexeme starting at s.start. ok is false when the
// lexeme produced no token (whitespace, comments, errors).
func (s *Scanner) scanToken() (Token, bool) {
	ch := s.advance()

	switch ch {
	case '(':
		return s.emit(KindLeftParen), true
	case ')':
		return s.emit(KindRightParen), true
	case '{':
		return s.emit(KindLeftBrace), true
	case '}':
		return s.emit(KindRightBrace), true
	case ',':
		return s.emit(KindComma), true
	case '.':
		return s.emit(KindDot), true
	case '-':
		return s.emit(KindMinus), true
	case '+':
		return s.emit(KindPlus), true
	case ';':
		return s.emit(KindSemicolon), true
	case '*':
		return s.emit(KindStar), true
	case '!':
		return s.emit(s.either('=', KindBangEqual, KindBang)), true
	case '=':
		return s.emit(s.either('=', KindEqualEqual, KindEqual)), true
	case '<':
		return s.emit(s.either('=', KindLessEqual, KindLess)), true
	case '>':
		return s.emit(s.either('=', KindGreaterEqual, KindGreater)), true
	case '/':
		if s.match('/') {
			s.skipComment()
			return Token{}, false
		}
		return s.emit(KindSlash), true
	case ' ', '\t', '\r':
		return Token{}, false
	case '\n':
		s.line++
		return Token{}, false
	case '"':
		return s.scanString()
	}

	switch {
	case isDigit(ch):
		return s.scanNumber(), true
	case isAlpha(ch):
		return s.scanIdentifier(), true
	}

	s.sink.Report(s.line, msgUnexpectedChar)
	return Token{}, false
}

func (s *Scanner) skipComment() {
	for !s.isAtEnd() && s.peek() != '\n' {
		s.current++
	}
}

func (s *Scanner) scanString() (Token, bool) {
	for !s.isAtEnd() && s.peek() != '"' {
		if s.peek() == '\n' {
			s.line++
		}
		s.current++
	}

	if s.isAtEnd() {
		s.sink.Report(s.line, msgUnterminatedString)
		return Token{}, false
	}

	s.current++ // closing '"'

	tok := s.emit(KindString)
	tok.Literal = value.String(s.source[s.start+1 : s.current-1])
	return tok, true
}

func (s *Scanner) scanNumber() Token {
	for isDigit(s.peek()) {
		s.current++
	}

	// A dot only belongs to the number when a digit follows it.
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.current++
		for isDigit(s.peek()) {
			s.current++
		}
	}

	tok := s.emit(KindNumber)
	// A digit run always parses. Runs too large for a float64 saturate to
	// +Inf without a diagnostic, and format as "+Inf".
	f, _ := strconv.ParseFloat(tok.Lexeme, 64)
	tok.Literal = value.Number(f)
	return tok
}

func (s *Scanner) scanIdentifier() Token {
	for isAlphaNumeric(s.peek()) {
		s.current++
	}
	return s.emit(LookupIdent(s.source[s.start:s.current]))
}

func (s *Scanner) emit(kind Kind) Token {
	return Token{Kind: kind, Lexeme: s.source[s.start:s.current], Line: s.line}
}

func (s *Scanner) either(next byte, matched, otherwise Kind) Kind {
	if s.match(next) {
		return matched
	}
	return otherwise
}

func (s *Scanner) match(expected byte) bool {
	if s.isAtEnd() || s.source[s.current] != expected {
		return false
	}
	s.current++
	return true
}

func (s *Scanner) advance() byte {
	ch := s.source[s.current]
	s.current++
	return ch
}

func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.source) {
		return 0
	}
	return s.source[s.current+1]
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isAlphaNumeric(ch byte) bool {
	return isAlpha(ch) || isDigit(ch)
}
