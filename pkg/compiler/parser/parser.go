package parser

import (
	"fmt"

	"github.com/agenthands/nlox/pkg/compiler/ast"
	"github.com/agenthands/nlox/pkg/compiler/lexer"
	"github.com/agenthands/nlox/pkg/core/value"
	"github.com/agenthands/nlox/pkg/diag"
)

// MaxArgs is the largest number of arguments a call may have.
const MaxArgs = 255

// Error is a syntax error anchored at a token.
type Error struct {
	Token   lexer.Token
	Message string
}

func (e *Error) Where() string {
	if e.Token.Kind == lexer.KindEndOfInput {
		return " at end"
	}
	return fmt.Sprintf(" at '%s'", e.Token.Lexeme)
}

func (e *Error) Error() string {
	return fmt.Sprintf("[line %d] Error%s: %s", e.Token.Line, e.Where(), e.Message)
}

// Parser is a recursive-descent parser for expressions.
//
//	expression → assignment
//	assignment → ( call "." )? IDENTIFIER "=" assignment | logic_or
//	logic_or   → logic_and ( "or" logic_and )*
//	logic_and  → equality ( "and" equality )*
//	equality   → comparison ( ( "!=" | "==" ) comparison )*
//	comparison → term ( ( ">" | ">=" | "<" | "<=" ) term )*
//	term       → factor ( ( "-" | "+" ) factor )*
//	factor     → unary ( ( "/" | "*" ) unary )*
//	unary      → ( "!" | "-" ) unary | call
//	call       → primary ( "(" arguments? ")" | "." IDENTIFIER )*
//	primary    → "true" | "false" | "nil" | "this" | NUMBER | STRING
//	           | IDENTIFIER | "(" expression ")" | "super" "." IDENTIFIER
type Parser struct {
	tokens  []lexer.Token
	current int
	sink    diag.Reporter

	// errors that did not stop parsing (bad assignment target, too many arguments)
	errs []*Error
}

// New creates a parser over tokens. A missing end-of-input marker is appended.
// Syntax errors are also sent to sink; a nil sink discards them.
func New(tokens []lexer.Token, sink diag.Reporter) *Parser {
	if sink == nil {
		sink = diag.Discard
	}
	if n := len(tokens); n == 0 || tokens[n-1].Kind != lexer.KindEndOfInput {
		line := 1
		if n > 0 {
			line = tokens[n-1].Line
		}
		tokens = append(tokens[:n:n], lexer.Token{Kind: lexer.KindEndOfInput, Line: line})
	}
	return &Parser{tokens: tokens, sink: sink}
}

// ParseExpression parses a single expression that must span all tokens.
// The returned tree may be non-nil together with an error when the error
// did not prevent building it.
func (p *Parser) ParseExpression() (ast.Expr, error) {
	expr, err := p.Expression()
	if err != nil {
		return nil, err
	}
	if !p.isAtEnd() {
		return nil, p.fail(p.peek(), "Expect end of expression.")
	}
	if len(p.errs) > 0 {
		return expr, p.errs[0]
	}
	return expr, nil
}

// Errors returns the non-fatal errors seen so far.
func (p *Parser) Errors() []*Error {
	return p.errs
}

// Expression parses the expression production.
func (p *Parser) Expression() (ast.Expr, error) {
	return p.assignment()
}

// Equality parses the equality production.
func (p *Parser) Equality() (ast.Expr, error) {
	return p.binary(p.comparison, lexer.KindBangEqual, lexer.KindEqualEqual)
}

func (p *Parser) assignment() (ast.Expr, error) {
	expr, err := p.or()
	if err != nil {
		return nil, err
	}

	if !p.match(lexer.KindEqual) {
		return expr, nil
	}
	equals := p.previous()
	val, err := p.assignment()
	if err != nil {
		return nil, err
	}

	switch target := expr.(type) {
	case *ast.Variable:
		return ast.NewAssign(target.Name, val), nil
	case *ast.Get:
		return ast.NewSet(target.Object, target.Name, val), nil
	}

	p.report(equals, "Invalid assignment target.")
	return expr, nil
}

func (p *Parser) or() (ast.Expr, error) {
	return p.logical(p.and, lexer.KindOr)
}

func (p *Parser) and() (ast.Expr, error) {
	return p.logical(p.Equality, lexer.KindAnd)
}

func (p *Parser) comparison() (ast.Expr, error) {
	return p.binary(p.term, lexer.KindGreater, lexer.KindGreaterEqual, lexer.KindLess, lexer.KindLessEqual)
}

func (p *Parser) term() (ast.Expr, error) {
	return p.binary(p.factor, lexer.KindMinus, lexer.KindPlus)
}

func (p *Parser) factor() (ast.Expr, error) {
	return p.binary(p.unary, lexer.KindSlash, lexer.KindStar)
}

// binary parses a left-associative chain of operand separated by kinds.
func (p *Parser) binary(operand func() (ast.Expr, error), kinds ...lexer.Kind) (ast.Expr, error) {
	expr, err := operand()
	if err != nil {
		return nil, err
	}
	for p.match(kinds...) {
		op := p.previous()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		expr = ast.NewBinary(expr, op, right)
	}
	return expr, nil
}

func (p *Parser) logical(operand func() (ast.Expr, error), kind lexer.Kind) (ast.Expr, error) {
	expr, err := operand()
	if err != nil {
		return nil, err
	}
	for p.match(kind) {
		op := p.previous()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		expr = ast.NewLogical(expr, op, right)
	}
	return expr, nil
}

func (p *Parser) unary() (ast.Expr, error) {
	if p.match(lexer.KindBang, lexer.KindMinus) {
		op := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return ast.NewUnary(op, right), nil
	}
	return p.call()
}

func (p *Parser) call() (ast.Expr, error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}

	for {
		switch {
		case p.match(lexer.KindLeftParen):
			expr, err = p.finishCall(expr)
			if err != nil {
				return nil, err
			}
		case p.match(lexer.KindDot):
			name, err := p.consume(lexer.KindIdentifier, "Expect property name after '.'.")
			if err != nil {
				return nil, err
			}
			expr = ast.NewGet(expr, name)
		default:
			return expr, nil
		}
	}
}

func (p *Parser) finishCall(callee ast.Expr) (ast.Expr, error) {
	var args []ast.Expr
	if !p.check(lexer.KindRightParen) {
		for {
			if len(args) >= MaxArgs {
				p.report(p.peek(), fmt.Sprintf("Can't have more than %d arguments.", MaxArgs))
			}
			arg, err := p.Expression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.match(lexer.KindComma) {
				break
			}
		}
	}

	paren, err := p.consume(lexer.KindRightParen, "Expect ')' after arguments.")
	if err != nil {
		return nil, err
	}
	return ast.NewCall(callee, paren, args), nil
}

func (p *Parser) primary() (ast.Expr, error) {
	tok := p.peek()
	switch tok.Kind {
	case lexer.KindFalse:
		p.advance()
		return ast.NewLiteral(value.Bool(false)), nil
	case lexer.KindTrue:
		p.advance()
		return ast.NewLiteral(value.Bool(true)), nil
	case lexer.KindNil:
		p.advance()
		return ast.NewLiteral(value.Nil()), nil
	case lexer.KindNumber, lexer.KindString:
		p.advance()
		return ast.NewLiteral(tok.Literal), nil
	case lexer.KindSuper:
		p.advance()
		if _, err := p.consume(lexer.KindDot, "Expect '.' after 'super'."); err != nil {
			return nil, err
		}
		method, err := p.consume(lexer.KindIdentifier, "Expect superclass method name.")
		if err != nil {
			return nil, err
		}
		return ast.NewSuper(tok, method), nil
	case lexer.KindThis:
		p.advance()
		return ast.NewThis(tok), nil
	case lexer.KindIdentifier:
		p.advance()
		return ast.NewVariable(tok), nil
	case lexer.KindLeftParen:
		p.advance()
		expr, err := p.Expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(lexer.KindRightParen, "Expect ')' after expression."); err != nil {
			return nil, err
		}
		return ast.NewGrouping(expr), nil
	}

	return nil, p.fail(tok, "Expect expression.")
}

func (p *Parser) consume(kind lexer.Kind, message string) (lexer.Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}
	return lexer.Token{}, p.fail(p.peek(), message)
}

func (p *Parser) match(kinds ...lexer.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) check(kind lexer.Kind) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Kind == kind
}

func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == lexer.KindEndOfInput
}

func (p *Parser) peek() lexer.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() lexer.Token {
	return p.tokens[p.current-1]
}

// fail reports an error that aborts the current parse.
func (p *Parser) fail(tok lexer.Token, message string) *Error {
	err := &Error{Token: tok, Message: message}
	diag.ReportAt(p.sink, tok.Line, err.Where(), message)
	return err
}

// report records an error and lets parsing continue.
func (p *Parser) report(tok lexer.Token, message string) {
	p.errs = append(p.errs, p.fail(tok, message))
}
