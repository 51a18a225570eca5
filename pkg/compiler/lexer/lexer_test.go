package lexer_test

import (
	"testing"

	"github.com/uaslang/uasc/pkg/compiler/lexer"
)

func kinds(tokens []lexer.Token) []lexer.Kind {
	out := make([]lexer.Kind, len(tokens))
	for i, t := range tokens {
		out[i] = t.Kind
	}
	return out
}

func TestTokenizeStatement(t *testing.T) {
	tokens := lexer.Tokenize(`let x = 1 + 2;`)

	expected := []lexer.Kind{
		lexer.KindLet,
		lexer.KindIdentifier,
		lexer.KindEq,
		lexer.KindNumber,
		lexer.KindPlus,
		lexer.KindNumber,
		lexer.KindSemicolon,
		lexer.KindEOF,
	}

	got := kinds(tokens)
	if len(got) != len(expected) {
		t.Fatalf("expected %d tokens, got %d: %v", len(expected), len(got), got)
	}
	for i, exp := range expected {
		if got[i] != exp {
			t.Errorf("token %d: expected kind %v, got %v (%q)", i, exp, got[i], tokens[i].Text)
		}
	}
}

func TestKeywordSpellings(t *testing.T) {
	tests := []struct {
		spellings []string
		kind      lexer.Kind
	}{
		{[]string{"fn", "функція", "fun"}, lexer.KindFn},
		{[]string{"let", "нехай", "змінна"}, lexer.KindLet},
		{[]string{"if", "якщо"}, lexer.KindIf},
		{[]string{"else", "інакше"}, lexer.KindElse},
		{[]string{"return", "повернути"}, lexer.KindReturn},
		{[]string{"while", "поки"}, lexer.KindWhile},
		{[]string{"switch", "вибір", "співпадіння"}, lexer.KindSwitch},
		{[]string{"case", "варіант"}, lexer.KindCase},
		{[]string{"default", "типово"}, lexer.KindDefault},
		{[]string{"true", "так", "істина"}, lexer.KindTrue},
		{[]string{"false", "ні", "хиба"}, lexer.KindFalse},
		{[]string{"null", "нічого"}, lexer.KindNone},
	}

	for _, tt := range tests {
		for _, spelling := range tt.spellings {
			tokens := lexer.Tokenize(spelling)
			if len(tokens) != 2 {
				t.Fatalf("%q: expected keyword + EOF, got %v", spelling, tokens)
			}
			if tokens[0].Kind != tt.kind {
				t.Errorf("%q: expected kind %v, got %v", spelling, tt.kind, tokens[0].Kind)
			}
			if tokens[0].Text != spelling {
				t.Errorf("%q: expected literal text preserved, got %q", spelling, tokens[0].Text)
			}
		}
	}
}

func TestTwoCharOperators(t *testing.T) {
	tests := []struct {
		src  string
		kind lexer.Kind
	}{
		{"**", lexer.KindPower},
		{"<=", lexer.KindLE},
		{">=", lexer.KindGE},
		{"==", lexer.KindEqEq},
		{"=>", lexer.KindArrow},
		{"*", lexer.KindStar},
		{"<", lexer.KindLT},
		{">", lexer.KindGT},
		{"=", lexer.KindEq},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			tokens := lexer.Tokenize(tt.src)
			if tokens[0].Kind != tt.kind {
				t.Errorf("expected kind %v, got %v", tt.kind, tokens[0].Kind)
			}
			if tokens[0].Text != tt.src {
				t.Errorf("expected text %q, got %q", tt.src, tokens[0].Text)
			}
		})
	}
}

func TestLineComment(t *testing.T) {
	tokens := lexer.Tokenize("1 // everything to the newline\n2")
	got := kinds(tokens)
	expected := []lexer.Kind{lexer.KindNumber, lexer.KindNumber, lexer.KindEOF}
	if len(got) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, got)
	}
	if tokens[1].Text != "2" {
		t.Errorf("expected second number to be 2, got %q", tokens[1].Text)
	}
}

func TestCommentAtEndOfInput(t *testing.T) {
	tokens := lexer.Tokenize("1 // no trailing newline")
	if len(tokens) != 2 || tokens[1].Kind != lexer.KindEOF {
		t.Errorf("expected NUMBER + EOF, got %v", tokens)
	}
}

func TestUnknownCharactersDropped(t *testing.T) {
	tokens := lexer.Tokenize("x @ = # 1")
	got := kinds(tokens)
	expected := []lexer.Kind{lexer.KindIdentifier, lexer.KindEq, lexer.KindNumber, lexer.KindEOF}
	if len(got) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, got)
	}
	for i, exp := range expected {
		if got[i] != exp {
			t.Errorf("token %d: expected %v, got %v", i, exp, got[i])
		}
	}
}

func TestStringLiteral(t *testing.T) {
	tokens := lexer.Tokenize(`"hello world"`)
	if tokens[0].Kind != lexer.KindString {
		t.Fatalf("expected string token, got %v", tokens[0].Kind)
	}
	if tokens[0].Text != "hello world" {
		t.Errorf("expected inner text without quotes, got %q", tokens[0].Text)
	}
}

func TestUnterminatedStringConsumesToEOF(t *testing.T) {
	tokens := lexer.Tokenize(`"abc def`)
	if len(tokens) != 2 {
		t.Fatalf("expected STRING + EOF, got %v", tokens)
	}
	if tokens[0].Kind != lexer.KindString || tokens[0].Text != "abc def" {
		t.Errorf("expected silently closed string %q, got %q", "abc def", tokens[0].Text)
	}
}

func TestNumberKeepsRawText(t *testing.T) {
	tests := []string{"42", "3.14", "1.2.3"}
	for _, src := range tests {
		tokens := lexer.Tokenize(src)
		if tokens[0].Kind != lexer.KindNumber {
			t.Errorf("%q: expected number token, got %v", src, tokens[0].Kind)
		}
		if tokens[0].Text != src {
			t.Errorf("%q: expected raw text preserved, got %q", src, tokens[0].Text)
		}
	}
}

func TestCyrillicIdentifiers(t *testing.T) {
	tokens := lexer.Tokenize("нехай лічильник_2 = 5")
	expected := []lexer.Kind{lexer.KindLet, lexer.KindIdentifier, lexer.KindEq, lexer.KindNumber, lexer.KindEOF}
	got := kinds(tokens)
	if len(got) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, got)
	}
	if tokens[1].Text != "лічильник_2" {
		t.Errorf("expected identifier text preserved, got %q", tokens[1].Text)
	}
}

func TestEmptySource(t *testing.T) {
	tokens := lexer.Tokenize("")
	if len(tokens) != 1 || tokens[0].Kind != lexer.KindEOF {
		t.Errorf("expected a lone EOF token, got %v", tokens)
	}
}
