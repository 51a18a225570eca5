package emitter_test

import (
	"strings"
	"testing"

	"github.com/uaslang/uasc/pkg/compiler/emitter"
	"github.com/uaslang/uasc/pkg/compiler/lexer"
	"github.com/uaslang/uasc/pkg/compiler/parser"
)

// transpile runs the full pipeline: lexer, parser, emitter.
func transpile(t *testing.T, src string) string {
	t.Helper()
	prog, err := parser.Parse(lexer.Tokenize(src))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	return emitter.Transpile(prog)
}

func TestEmptyProgram(t *testing.T) {
	got := transpile(t, "")
	want := "#include \"runtime.h\"\n\nint main() {\n  return 0;\n}\n"
	if got != want {
		t.Errorf("expected:\n%s\ngot:\n%s", want, got)
	}
}

func TestTopLevelStatements(t *testing.T) {
	got := transpile(t, "let x = 2 ** 10\nprint(x)")
	want := `#include "runtime.h"

int main() {
  Value x = pow(2, 10);
  print(x);
  return 0;
}
`
	if got != want {
		t.Errorf("expected:\n%s\ngot:\n%s", want, got)
	}
}

func TestFunctionForwardDeclAndDefinition(t *testing.T) {
	got := transpile(t, `fn add(a: число, b: число): число { return a + b }
print(add(1, 2))`)
	want := `#include "runtime.h"

double add(double a, double b);

double add(double a, double b) {
  return (a + b);
}

int main() {
  print(add(1, 2));
  return 0;
}
`
	if got != want {
		t.Errorf("expected:\n%s\ngot:\n%s", want, got)
	}
}

func TestTypeMapping(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"число", "double"},
		{"int", "double"},
		{"number", "double"},
		{"стрічка", "std::string"},
		{"string", "std::string"},
		{"бул", "bool"},
		{"bool", "bool"},
		{"Value", "Value"},
		{"Anything", "Value"},
		{"", "Value"},
	}
	for _, tt := range tests {
		if got := emitter.MapType(tt.name); got != tt.want {
			t.Errorf("MapType(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestConditionTruthinessWrapping(t *testing.T) {
	got := transpile(t, `if x { print(1) } else { print(2) }`)
	want := `  if (isTruthy(x)) {
    print(1);
  } else {
    print(2);
  }
`
	if !strings.Contains(got, want) {
		t.Errorf("expected if/else lowering:\n%s\nin:\n%s", want, got)
	}

	got = transpile(t, `while 0 { print("x") }`)
	if !strings.Contains(got, "while (isTruthy(0)) {") {
		t.Errorf("expected while condition wrapped in isTruthy, got:\n%s", got)
	}
}

func TestOperatorLowering(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"a + b", "(a + b)"},
		{"a - b", "(a - b)"},
		{"a * b", "(a * b)"},
		{"a / b", "(a / b)"},
		{"a < b", "(a < b)"},
		{"a >= b", "(a >= b)"},
		{"a == b", "(a == b)"},
		{"a % b", "fmod(a, b)"},
		{"a ** b", "pow(a, b)"},
		{"-a", "-a"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got := transpile(t, tt.src)
			if !strings.Contains(got, "  "+tt.want+";\n") {
				t.Errorf("expected statement %q in:\n%s", tt.want, got)
			}
		})
	}
}

func TestLiteralLowering(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{`let s = "hi"`, `Value s = Value("hi");`},
		{"let b = true", "Value b = true;"},
		{"let b = хиба", "Value b = false;"},
		{"let n = null", "Value n = NONE_VAL;"},
		{"let n = 3.5", "Value n = 3.5;"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got := transpile(t, tt.src)
			if !strings.Contains(got, tt.want) {
				t.Errorf("expected %q in:\n%s", tt.want, got)
			}
		})
	}
}

func TestPrintSpecialCase(t *testing.T) {
	got := transpile(t, `print("n=" + 5)`)
	if !strings.Contains(got, `print((Value("n=") + 5));`) {
		t.Errorf("expected print primitive call, got:\n%s", got)
	}

	// Only the bare identifier print is special-cased.
	got = transpile(t, `printer(1)`)
	if !strings.Contains(got, "printer(1);") {
		t.Errorf("expected plain user call, got:\n%s", got)
	}
}

func TestSwitchLowering(t *testing.T) {
	got := transpile(t, `let n = 1
switch n {
	case 1 => print("a")
	case x if x > 1 => print("b")
	default: print("c")
}`)
	want := `  {
    Value _sw = n;
    if (isTruthy(_sw == 1)) {
      print(Value("a"));
    }
    else if (isTruthy([&](){ Value x = _sw; return (x > 1); }())) {
      Value x = _sw;
      print(Value("b"));
    }
    else {
      print(Value("c"));
    }
  }
`
	if !strings.Contains(got, want) {
		t.Errorf("expected switch cascade:\n%s\nin:\n%s", want, got)
	}
}

func TestSwitchBareBindingIsUnconditional(t *testing.T) {
	got := transpile(t, `switch n { case x => print(x) }`)
	if !strings.Contains(got, "if (true) {") {
		t.Errorf("expected unconditional branch for bare binding, got:\n%s", got)
	}
	if !strings.Contains(got, "Value x = _sw;") {
		t.Errorf("expected binding of pattern name to temporary, got:\n%s", got)
	}
}

func TestSwitchCasesAfterDefaultOmitted(t *testing.T) {
	got := transpile(t, `switch n { default: print("d") case 1 => print("a") }`)
	if strings.Contains(got, `print(Value("a"))`) {
		t.Errorf("expected case after default to be unreachable and omitted, got:\n%s", got)
	}
}

func TestReturnWithoutFunctionValue(t *testing.T) {
	got := transpile(t, `fn f() { return null }`)
	if !strings.Contains(got, "return NONE_VAL;") {
		t.Errorf("expected none sentinel return, got:\n%s", got)
	}
}

func TestSpellingInvariance(t *testing.T) {
	latin := `fn classify(n) {
	if n > 1 { return "big" } else { return "small" }
}
let flag = true
while flag { flag = false }
switch flag {
	case true => print("y")
	default: print(null)
}
print(classify(2))`

	cyrillic := `функція classify(n) {
	якщо n > 1 { повернути "big" } інакше { повернути "small" }
}
нехай flag = істина
поки flag { flag = хиба }
співпадіння flag {
	варіант true => print("y")
	типово: print(нічого)
}
print(classify(2))`

	a := transpile(t, latin)
	b := transpile(t, cyrillic)
	if a != b {
		t.Errorf("expected byte-identical output for interchangeable spellings:\n--- latin ---\n%s\n--- cyrillic ---\n%s", a, b)
	}
}

func TestDeterministicOutput(t *testing.T) {
	src := `fn f(a) { return a ** 2 }
let x = f(3)
print(x)`
	first := transpile(t, src)
	second := transpile(t, src)
	if first != second {
		t.Errorf("expected idempotent transpilation, outputs differ")
	}
}

func TestMalformedInputProducesNoOutput(t *testing.T) {
	prog, err := parser.Parse(lexer.Tokenize("fn f( { }"))
	if err == nil {
		t.Fatalf("expected parse error")
	}
	if prog != nil {
		t.Errorf("expected no tree to generate from, got %#v", prog)
	}
}
