package lexer

// Kind represents the type of token identified by the lexer.
type Kind uint8

const (
	KindEOF Kind = iota
	KindUnknown
	KindIdentifier
	KindNumber
	KindString
	KindFn      // fn, функція, fun
	KindLet     // let, нехай, змінна
	KindIf      // if, якщо
	KindElse    // else, інакше
	KindReturn  // return, повернути
	KindWhile   // while, поки
	KindSwitch  // switch, вибір, співпадіння
	KindCase    // case, варіант
	KindDefault // default, типово
	KindTrue    // true, так, істина
	KindFalse   // false, ні, хиба
	KindNone    // null, нічого
	KindLParen
	KindRParen
	KindLBrace
	KindRBrace
	KindPlus
	KindMinus
	KindStar
	KindSlash
	KindPercent
	KindPower // **
	KindLT
	KindGT
	KindLE    // <=
	KindGE    // >=
	KindEqEq  // ==
	KindEq    // =
	KindArrow // =>
	KindComma
	KindColon
	KindSemicolon
)

// Token is an immutable lexical unit: its kind and the exact source text
// matched. String tokens carry the inner text without the quotes.
type Token struct {
	Kind Kind
	Text string
}

// Keywords maps every registered spelling, Latin and Cyrillic, to its
// keyword kind. Spellings of the same kind are lexically interchangeable.
var Keywords = map[string]Kind{
	"fn":          KindFn,
	"функція":     KindFn,
	"fun":         KindFn,
	"let":         KindLet,
	"нехай":       KindLet,
	"змінна":      KindLet,
	"if":          KindIf,
	"якщо":        KindIf,
	"else":        KindElse,
	"інакше":      KindElse,
	"return":      KindReturn,
	"повернути":   KindReturn,
	"while":       KindWhile,
	"поки":        KindWhile,
	"true":        KindTrue,
	"так":         KindTrue,
	"істина":      KindTrue,
	"false":       KindFalse,
	"ні":          KindFalse,
	"хиба":        KindFalse,
	"null":        KindNone,
	"нічого":      KindNone,
	"switch":      KindSwitch,
	"вибір":       KindSwitch,
	"співпадіння": KindSwitch,
	"case":        KindCase,
	"варіант":     KindCase,
	"default":     KindDefault,
	"типово":      KindDefault,
}

// Spellings returns every registered keyword spelling. The REPL uses this
// for tab completion; order is not specified.
func Spellings() []string {
	out := make([]string, 0, len(Keywords))
	for s := range Keywords {
		out = append(out, s)
	}
	return out
}
