package ast

import (
	"github.com/agenthands/nlox/pkg/compiler/lexer"
	"github.com/agenthands/nlox/pkg/core/value"
)

// Expr represents an expression node. The set of implementations is closed:
// exactly the 12 node types in this file.
//
// A tree is strict: every node exclusively owns its children and tokens.
type Expr interface {
	// Clone returns a deep copy that shares nothing with the receiver.
	Clone() Expr
	exprNode()
}

// Assign: name = value
type Assign struct {
	Name  lexer.Token
	Value Expr
}

// Binary: left op right
type Binary struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

// Call: callee(args...)
type Call struct {
	Callee Expr
	Paren  lexer.Token
	Args   []Expr
}

// Get: object.name
type Get struct {
	Object Expr
	Name   lexer.Token
}

// Grouping: (expr)
type Grouping struct {
	Expression Expr
}

// Literal values
type Literal struct {
	Value value.Value
}

// Logical: left and|or right
type Logical struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

// Set: object.name = value
type Set struct {
	Object Expr
	Name   lexer.Token
	Value  Expr
}

// Super: super.method
type Super struct {
	Keyword lexer.Token
	Method  lexer.Token
}

// This: the this keyword
type This struct {
	Keyword lexer.Token
}

// Unary: op right
type Unary struct {
	Operator lexer.Token
	Right    Expr
}

// Variable: a bare identifier
type Variable struct {
	Name lexer.Token
}

func (*Assign) exprNode()   {}
func (*Binary) exprNode()   {}
func (*Call) exprNode()     {}
func (*Get) exprNode()      {}
func (*Grouping) exprNode() {}
func (*Literal) exprNode()  {}
func (*Logical) exprNode()  {}
func (*Set) exprNode()      {}
func (*Super) exprNode()    {}
func (*This) exprNode()     {}
func (*Unary) exprNode()    {}
func (*Variable) exprNode() {}

// NewAssign builds name = v.
func NewAssign(name lexer.Token, v Expr) *Assign {
	return &Assign{Name: name, Value: v}
}

// NewBinary builds a binary operation.
func NewBinary(left Expr, op lexer.Token, right Expr) *Binary {
	return &Binary{Left: left, Operator: op, Right: right}
}

// NewCall takes ownership of args; the slice itself is copied.
func NewCall(callee Expr, paren lexer.Token, args []Expr) *Call {
	owned := make([]Expr, len(args))
	copy(owned, args)
	return &Call{Callee: callee, Paren: paren, Args: owned}
}

// NewGet builds a property access.
func NewGet(object Expr, name lexer.Token) *Get {
	return &Get{Object: object, Name: name}
}

// NewGrouping wraps e in parentheses.
func NewGrouping(e Expr) *Grouping {
	return &Grouping{Expression: e}
}

// NewLiteral builds a literal node.
func NewLiteral(v value.Value) *Literal {
	return &Literal{Value: v}
}

// NewLogical builds an and/or node.
func NewLogical(left Expr, op lexer.Token, right Expr) *Logical {
	return &Logical{Left: left, Operator: op, Right: right}
}

// NewSet builds a property assignment.
func NewSet(object Expr, name lexer.Token, v Expr) *Set {
	return &Set{Object: object, Name: name, Value: v}
}

// NewSuper builds a superclass method access.
func NewSuper(keyword, method lexer.Token) *Super {
	return &Super{Keyword: keyword, Method: method}
}

// NewThis builds a this node.
func NewThis(keyword lexer.Token) *This {
	return &This{Keyword: keyword}
}

// NewUnary builds a prefix operation.
func NewUnary(op lexer.Token, right Expr) *Unary {
	return &Unary{Operator: op, Right: right}
}

// NewVariable builds a variable reference.
func NewVariable(name lexer.Token) *Variable {
	return &Variable{Name: name}
}
