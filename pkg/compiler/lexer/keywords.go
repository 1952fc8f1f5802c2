package lexer

// keywords is filled once at init and only read afterwards, so scanners may share it.
var keywords = map[string]Kind{
	"and":    KindAnd,
	"class":  KindClass,
	"else":   KindElse,
	"false":  KindFalse,
	"for":    KindFor,
	"fun":    KindFun,
	"if":     KindIf,
	"nil":    KindNil,
	"or":     KindOr,
	"print":  KindPrint,
	"return": KindReturn,
	"super":  KindSuper,
	"this":   KindThis,
	"true":   KindTrue,
	"var":    KindVar,
	"while":  KindWhile,
}

// LookupIdent returns the keyword kind for text, or KindIdentifier.
func LookupIdent(text string) Kind {
	if k, ok := keywords[text]; ok {
		return k
	}
	return KindIdentifier
}

// Keywords returns the reserved words in no particular order.
func Keywords() []string {
	out := make([]string, 0, len(keywords))
	for w := range keywords {
		out = append(out, w)
	}
	return out
}
