package lexer_test

import (
	"strings"
	"testing"

	"github.com/agenthands/nlox/pkg/compiler/lexer"
)

const benchSource = `class Car < Vehicle {
  drive(speed) {
    // cruise control
    this.speed = speed * 1.5;
    if (this.speed >= 120 and !this.sport) print "slow down";
    return super.drive(this.speed);
  }
}
`

func BenchmarkScanTokens(b *testing.B) {
	src := strings.Repeat(benchSource, 64)
	b.SetBytes(int64(len(src)))
	b.ReportAllocs()

	for b.Loop() {
		lexer.ScanTokens(src, nil)
	}
}

func BenchmarkScannerNext(b *testing.B) {
	src := strings.Repeat(benchSource, 64)
	s := lexer.NewScanner(src, nil)
	b.SetBytes(int64(len(src)))
	b.ReportAllocs()

	for b.Loop() {
		s.Reset(src)
		for s.Next().Kind != lexer.KindEndOfInput {
		}
	}
}
