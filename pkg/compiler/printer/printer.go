// Package printer renders expression trees in parenthesized prefix form,
// e.g. "(+ 1 (* 2 3))". Its output is the golden format for parser tests.
package printer

import (
	"strings"

	"github.com/agenthands/nlox/pkg/compiler/ast"
	"github.com/agenthands/nlox/pkg/compiler/lexer"
)

// Printer is an ast.Visitor producing strings.
type Printer struct{}

var _ ast.Visitor[string] = Printer{}

// Print renders e.
func Print(e ast.Expr) string {
	return Printer{}.Print(e)
}

func (p Printer) Print(e ast.Expr) string {
	return ast.Accept[string](e, p)
}

func (p Printer) VisitAssign(e *ast.Assign) string {
	return p.parenthesize("=", e.Name, e.Value)
}

func (p Printer) VisitBinary(e *ast.Binary) string {
	return p.parenthesize(e.Operator.Lexeme, e.Left, e.Right)
}

func (p Printer) VisitCall(e *ast.Call) string {
	items := make([]any, 0, len(e.Args)+1)
	items = append(items, e.Callee)
	for _, arg := range e.Args {
		items = append(items, arg)
	}
	return p.parenthesize("call", items...)
}

func (p Printer) VisitGet(e *ast.Get) string {
	return p.parenthesize(".", e.Object, e.Name)
}

func (p Printer) VisitGrouping(e *ast.Grouping) string {
	return p.parenthesize("group", e.Expression)
}

func (p Printer) VisitLiteral(e *ast.Literal) string {
	return e.Value.Format()
}

func (p Printer) VisitLogical(e *ast.Logical) string {
	return p.parenthesize(e.Operator.Lexeme, e.Left, e.Right)
}

func (p Printer) VisitSet(e *ast.Set) string {
	return p.parenthesize("=", e.Object, e.Name, e.Value)
}

func (p Printer) VisitSuper(e *ast.Super) string {
	return p.parenthesize("super", e.Method)
}

func (p Printer) VisitThis(*ast.This) string {
	return "this"
}

func (p Printer) VisitUnary(e *ast.Unary) string {
	return p.parenthesize(e.Operator.Lexeme, e.Right)
}

func (p Printer) VisitVariable(e *ast.Variable) string {
	return e.Name.Lexeme
}

// parenthesize renders "(name item ...)". Items may be subtrees, tokens or strings.
func (p Printer) parenthesize(name string, items ...any) string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(name)
	for _, item := range items {
		sb.WriteByte(' ')
		switch it := item.(type) {
		case ast.Expr:
			sb.WriteString(p.Print(it))
		case lexer.Token:
			sb.WriteString(it.Lexeme)
		case string:
			sb.WriteString(it)
		}
	}
	sb.WriteByte(')')
	return sb.String()
}
