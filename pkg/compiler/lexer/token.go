package lexer

import (
	"fmt"

	"github.com/agenthands/nlox/pkg/core/value"
)

// Kind represents the type of token identified by the scanner.
type Kind uint8

const (
	// Single-character tokens.
	KindLeftParen Kind = iota
	KindRightParen
	KindLeftBrace
	KindRightBrace
	KindComma
	KindDot
	KindMinus
	KindPlus
	KindSemicolon
	KindSlash
	KindStar

	// One or two character tokens.
	KindBang
	KindBangEqual
	KindEqual
	KindEqualEqual
	KindGreater
	KindGreaterEqual
	KindLess
	KindLessEqual

	// Literals.
	KindIdentifier
	KindString
	KindNumber

	// Keywords.
	KindAnd
	KindClass
	KindElse
	KindFalse
	KindFun
	KindFor
	KindIf
	KindNil
	KindOr
	KindPrint
	KindReturn
	KindSuper
	KindThis
	KindTrue
	KindVar
	KindWhile

	KindEndOfInput
)

var kindNames = [...]string{
	KindLeftParen:    "LEFT_PAREN",
	KindRightParen:   "RIGHT_PAREN",
	KindLeftBrace:    "LEFT_BRACE",
	KindRightBrace:   "RIGHT_BRACE",
	KindComma:        "COMMA",
	KindDot:          "DOT",
	KindMinus:        "MINUS",
	KindPlus:         "PLUS",
	KindSemicolon:    "SEMICOLON",
	KindSlash:        "SLASH",
	KindStar:         "STAR",
	KindBang:         "BANG",
	KindBangEqual:    "BANG_EQUAL",
	KindEqual:        "EQUAL",
	KindEqualEqual:   "EQUAL_EQUAL",
	KindGreater:      "GREATER",
	KindGreaterEqual: "GREATER_EQUAL",
	KindLess:         "LESS",
	KindLessEqual:    "LESS_EQUAL",
	KindIdentifier:   "IDENTIFIER",
	KindString:       "STRING",
	KindNumber:       "NUMBER",
	KindAnd:          "AND",
	KindClass:        "CLASS",
	KindElse:         "ELSE",
	KindFalse:        "FALSE",
	KindFun:          "FUN",
	KindFor:          "FOR",
	KindIf:           "IF",
	KindNil:          "NIL",
	KindOr:           "OR",
	KindPrint:        "PRINT",
	KindReturn:       "RETURN",
	KindSuper:        "SUPER",
	KindThis:         "THIS",
	KindTrue:         "TRUE",
	KindVar:          "VAR",
	KindWhile:        "WHILE",
	KindEndOfInput:   "END_OF_INPUT",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// IsKeyword reports whether k is one of the reserved word kinds.
func (k Kind) IsKeyword() bool {
	return k >= KindAnd && k <= KindWhile
}

// Token is a classified, located fragment of source text.
// Literal is set only for KindNumber (number) and KindString (string).
type Token struct {
	Kind    Kind
	Lexeme  string
	Literal value.Value
	Line    int
}

// NewToken builds a token without a literal.
func NewToken(kind Kind, lexeme string, line int) Token {
	return Token{Kind: kind, Lexeme: lexeme, Line: line}
}

func (t Token) String() string {
	if t.Literal.IsNil() {
		return fmt.Sprintf("%s %s", t.Kind, t.Lexeme)
	}
	return fmt.Sprintf("%s %s %s", t.Kind, t.Lexeme, t.Literal.Format())
}
