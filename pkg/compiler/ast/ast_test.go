package ast_test

import (
	"testing"

	"github.com/agenthands/nlox/pkg/compiler/ast"
	"github.com/agenthands/nlox/pkg/compiler/lexer"
	"github.com/agenthands/nlox/pkg/compiler/printer"
	"github.com/agenthands/nlox/pkg/core/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tok(kind lexer.Kind, lexeme string) lexer.Token {
	return lexer.NewToken(kind, lexeme, 1)
}

func num(f float64) ast.Expr {
	return ast.NewLiteral(value.Number(f))
}

// nameVisitor reports which visit method was called.
type nameVisitor struct{}

func (nameVisitor) VisitAssign(*ast.Assign) string     { return "assign" }
func (nameVisitor) VisitBinary(*ast.Binary) string     { return "binary" }
func (nameVisitor) VisitCall(*ast.Call) string         { return "call" }
func (nameVisitor) VisitGet(*ast.Get) string           { return "get" }
func (nameVisitor) VisitGrouping(*ast.Grouping) string { return "grouping" }
func (nameVisitor) VisitLiteral(*ast.Literal) string   { return "literal" }
func (nameVisitor) VisitLogical(*ast.Logical) string   { return "logical" }
func (nameVisitor) VisitSet(*ast.Set) string           { return "set" }
func (nameVisitor) VisitSuper(*ast.Super) string       { return "super" }
func (nameVisitor) VisitThis(*ast.This) string         { return "this" }
func (nameVisitor) VisitUnary(*ast.Unary) string       { return "unary" }
func (nameVisitor) VisitVariable(*ast.Variable) string { return "variable" }

// depthVisitor computes tree height, showing a non-string result type.
type depthVisitor struct{}

func (d depthVisitor) max(es ...ast.Expr) int {
	m := 0
	for _, e := range es {
		if h := ast.Accept[int](e, d); h > m {
			m = h
		}
	}
	return m + 1
}

func (d depthVisitor) VisitAssign(e *ast.Assign) int { return d.max(e.Value) }
func (d depthVisitor) VisitBinary(e *ast.Binary) int { return d.max(e.Left, e.Right) }

func (d depthVisitor) VisitCall(e *ast.Call) int {
	return d.max(append([]ast.Expr{e.Callee}, e.Args...)...)
}

func (d depthVisitor) VisitGet(e *ast.Get) int           { return d.max(e.Object) }
func (d depthVisitor) VisitGrouping(e *ast.Grouping) int { return d.max(e.Expression) }
func (d depthVisitor) VisitLiteral(*ast.Literal) int     { return 1 }
func (d depthVisitor) VisitLogical(e *ast.Logical) int   { return d.max(e.Left, e.Right) }
func (d depthVisitor) VisitSet(e *ast.Set) int           { return d.max(e.Object, e.Value) }
func (d depthVisitor) VisitSuper(*ast.Super) int         { return 1 }
func (d depthVisitor) VisitThis(*ast.This) int           { return 1 }
func (d depthVisitor) VisitUnary(e *ast.Unary) int       { return d.max(e.Right) }
func (d depthVisitor) VisitVariable(*ast.Variable) int   { return 1 }

func allNodes() map[string]ast.Expr {
	x := tok(lexer.KindIdentifier, "x")
	return map[string]ast.Expr{
		"assign":   ast.NewAssign(x, num(1)),
		"binary":   ast.NewBinary(num(1), tok(lexer.KindPlus, "+"), num(2)),
		"call":     ast.NewCall(ast.NewVariable(x), tok(lexer.KindRightParen, ")"), []ast.Expr{num(1)}),
		"get":      ast.NewGet(ast.NewVariable(x), tok(lexer.KindIdentifier, "y")),
		"grouping": ast.NewGrouping(num(1)),
		"literal":  num(1),
		"logical":  ast.NewLogical(num(1), tok(lexer.KindOr, "or"), num(2)),
		"set":      ast.NewSet(ast.NewVariable(x), tok(lexer.KindIdentifier, "y"), num(3)),
		"super":    ast.NewSuper(tok(lexer.KindSuper, "super"), tok(lexer.KindIdentifier, "m")),
		"this":     ast.NewThis(tok(lexer.KindThis, "this")),
		"unary":    ast.NewUnary(tok(lexer.KindMinus, "-"), num(1)),
		"variable": ast.NewVariable(x),
	}
}

func TestAcceptDispatchesToOwnVariant(t *testing.T) {
	nodes := allNodes()
	require.Len(t, nodes, 12)

	for want, node := range nodes {
		t.Run(want, func(t *testing.T) {
			assert.Equal(t, want, ast.Accept[string](node, nameVisitor{}))
		})
	}
}

func TestAcceptWithNonStringResult(t *testing.T) {
	// 1 + 2 * 3
	tree := ast.NewBinary(
		num(1),
		tok(lexer.KindPlus, "+"),
		ast.NewBinary(num(2), tok(lexer.KindStar, "*"), num(3)),
	)
	assert.Equal(t, 3, ast.Accept[int](tree, depthVisitor{}))
	assert.Equal(t, "(+ 1 (* 2 3))", printer.Print(tree))
}

func TestCloneProducesEqualIndependentTrees(t *testing.T) {
	for name, node := range allNodes() {
		t.Run(name, func(t *testing.T) {
			c := node.Clone()
			require.NotSame(t, node, c)
			assert.Equal(t, node, c)
			assert.Equal(t, printer.Print(node), printer.Print(c))
		})
	}
}

func TestCloneDoesNotAlias(t *testing.T) {
	orig := ast.NewCall(
		ast.NewGet(ast.NewVariable(tok(lexer.KindIdentifier, "car")), tok(lexer.KindIdentifier, "drive")),
		tok(lexer.KindRightParen, ")"),
		[]ast.Expr{
			ast.NewBinary(num(1), tok(lexer.KindPlus, "+"), num(2)),
			ast.NewLiteral(value.String("fast")),
		},
	)
	before := printer.Print(orig)

	c := orig.Clone().(*ast.Call)
	c.Args[0].(*ast.Binary).Operator = tok(lexer.KindMinus, "-")
	c.Args[1] = ast.NewLiteral(value.Nil())
	c.Args = append(c.Args, num(9))
	c.Callee.(*ast.Get).Name = tok(lexer.KindIdentifier, "park")
	c.Callee.(*ast.Get).Object.(*ast.Variable).Name.Lexeme = "bus"

	assert.Equal(t, before, printer.Print(orig))
	assert.Equal(t, "(call (. car drive) (+ 1 2) fast)", before)
	assert.Equal(t, "(call (. bus park) (- 1 2) nil 9)", printer.Print(c))
}

func TestNewCallCopiesArgumentSlice(t *testing.T) {
	args := []ast.Expr{num(1), num(2)}
	call := ast.NewCall(ast.NewVariable(tok(lexer.KindIdentifier, "f")), tok(lexer.KindRightParen, ")"), args)
	args[0] = num(7)

	assert.Equal(t, "(call f 1 2)", printer.Print(call))
}

func TestCloneCallWithoutArgs(t *testing.T) {
	call := &ast.Call{Callee: ast.NewVariable(tok(lexer.KindIdentifier, "f")), Paren: tok(lexer.KindRightParen, ")")}
	c := call.Clone().(*ast.Call)
	assert.Nil(t, c.Args)
	assert.Equal(t, "(call f)", printer.Print(c))
}

func TestWalkPreOrder(t *testing.T) {
	// a = -(b.c) or d(1)
	tree := ast.NewAssign(
		tok(lexer.KindIdentifier, "a"),
		ast.NewLogical(
			ast.NewUnary(tok(lexer.KindMinus, "-"), ast.NewGrouping(ast.NewGet(ast.NewVariable(tok(lexer.KindIdentifier, "b")), tok(lexer.KindIdentifier, "c")))),
			tok(lexer.KindOr, "or"),
			ast.NewCall(ast.NewVariable(tok(lexer.KindIdentifier, "d")), tok(lexer.KindRightParen, ")"), []ast.Expr{num(1)}),
		),
	)

	var visited []string
	ast.Walk(tree, func(e ast.Expr) bool {
		visited = append(visited, ast.Accept[string](e, nameVisitor{}))
		return true
	})
	assert.Equal(t, []string{"assign", "logical", "unary", "grouping", "get", "variable", "call", "variable", "literal"}, visited)

	visited = visited[:0]
	ast.Walk(tree, func(e ast.Expr) bool {
		visited = append(visited, ast.Accept[string](e, nameVisitor{}))
		_, isUnary := e.(*ast.Unary)
		return !isUnary
	})
	assert.Equal(t, []string{"assign", "logical", "unary", "call", "variable", "literal"}, visited)
}
