package ast

import "fmt"

// Visitor has one method per node type. R is the result of visiting a node,
// so the same tree can be printed, evaluated or compiled.
type Visitor[R any] interface {
	VisitAssign(e *Assign) R
	VisitBinary(e *Binary) R
	VisitCall(e *Call) R
	VisitGet(e *Get) R
	VisitGrouping(e *Grouping) R
	VisitLiteral(e *Literal) R
	VisitLogical(e *Logical) R
	VisitSet(e *Set) R
	VisitSuper(e *Super) R
	VisitThis(e *This) R
	VisitUnary(e *Unary) R
	VisitVariable(e *Variable) R
}

// Accept dispatches e to the visitor method for its concrete type.
func Accept[R any](e Expr, v Visitor[R]) R {
	switch n := e.(type) {
	case *Assign:
		return v.VisitAssign(n)
	case *Binary:
		return v.VisitBinary(n)
	case *Call:
		return v.VisitCall(n)
	case *Get:
		return v.VisitGet(n)
	case *Grouping:
		return v.VisitGrouping(n)
	case *Literal:
		return v.VisitLiteral(n)
	case *Logical:
		return v.VisitLogical(n)
	case *Set:
		return v.VisitSet(n)
	case *Super:
		return v.VisitSuper(n)
	case *This:
		return v.VisitThis(n)
	case *Unary:
		return v.VisitUnary(n)
	case *Variable:
		return v.VisitVariable(n)
	default:
		panic(fmt.Sprintf("ast: unexpected node %T", e))
	}
}

// Walk visits e and its descendants in pre-order, children left to right in
// field order. Returning false from fn skips the children of that node.
func Walk(e Expr, fn func(Expr) bool) {
	if e == nil || !fn(e) {
		return
	}
	switch n := e.(type) {
	case *Assign:
		Walk(n.Value, fn)
	case *Binary:
		Walk(n.Left, fn)
		Walk(n.Right, fn)
	case *Call:
		Walk(n.Callee, fn)
		for _, arg := range n.Args {
			Walk(arg, fn)
		}
	case *Get:
		Walk(n.Object, fn)
	case *Grouping:
		Walk(n.Expression, fn)
	case *Logical:
		Walk(n.Left, fn)
		Walk(n.Right, fn)
	case *Set:
		Walk(n.Object, fn)
		Walk(n.Value, fn)
	case *Unary:
		Walk(n.Right, fn)
	}
}
