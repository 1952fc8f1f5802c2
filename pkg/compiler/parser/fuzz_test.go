package parser_test

import (
	"testing"

	"github.com/agenthands/nlox/pkg/compiler/lexer"
	"github.com/agenthands/nlox/pkg/compiler/parser"
	"github.com/agenthands/nlox/pkg/compiler/printer"
)

func FuzzParseExpression(f *testing.F) {
	f.Add("1 + 2 * 3")
	f.Add("a.b(c, d).e = -f or !g")
	f.Add("super.m(this)")
	f.Add("((1)")
	f.Add("a + b = c")

	f.Fuzz(func(t *testing.T, src string) {
		tokens := lexer.ScanTokens(src, nil)
		expr, err := parser.New(tokens, nil).ParseExpression()
		if err == nil && expr == nil {
			t.Fatalf("no tree and no error for %q", src)
		}
		if expr == nil {
			return
		}
		if got, want := printer.Print(expr.Clone()), printer.Print(expr); got != want {
			t.Fatalf("clone prints %q, original %q", got, want)
		}
	})
}

func BenchmarkParseExpression(b *testing.B) {
	tokens := lexer.ScanTokens(`a.b(1, 2 + 3 * 4, "s").c = -x.y or !(z >= 10.5 and w != nil)`, nil)
	b.ReportAllocs()

	for b.Loop() {
		if _, err := parser.New(tokens, nil).ParseExpression(); err != nil {
			b.Fatal(err)
		}
	}
}
