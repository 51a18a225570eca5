// Package emitter walks the AST and emits C++ source text against the
// runtime.h value library. Emission is deterministic and total: the same
// tree always yields byte-identical output, and any tree the parser actually
// produces can be emitted.
package emitter

import (
	"strings"

	"github.com/uaslang/uasc/pkg/compiler/ast"
)

// Emitter holds the output buffer and indentation depth for one Emit call.
type Emitter struct {
	out    strings.Builder
	indent int
}

func NewEmitter() *Emitter {
	return &Emitter{}
}

// Transpile emits a whole program with a fresh emitter.
func Transpile(prog *ast.Program) string {
	return NewEmitter().Emit(prog)
}

// MapType maps a declared type name to its C++ type. Unrecognized or
// omitted names default to the dynamic Value type.
func MapType(name string) string {
	switch name {
	case "число", "int", "number":
		return "double"
	case "стрічка", "string":
		return "std::string"
	case "бул", "bool":
		return "bool"
	}
	return "Value"
}

// Emit generates the full compilation unit: the runtime include, forward
// declarations for every top-level function, their definitions in source
// order, then a synthetic main() holding every top-level non-function
// statement followed by a success return.
func (e *Emitter) Emit(prog *ast.Program) string {
	e.out.Reset()
	e.indent = 0

	e.out.WriteString("#include \"runtime.h\"\n\n")

	var funcs []*ast.FunctionDecl
	for _, stmt := range prog.Body {
		if fn, ok := stmt.(*ast.FunctionDecl); ok {
			funcs = append(funcs, fn)
		}
	}

	for _, fn := range funcs {
		e.signature(fn)
		e.out.WriteString(";\n")
	}
	if len(funcs) > 0 {
		e.out.WriteString("\n")
	}

	for _, fn := range funcs {
		e.signature(fn)
		e.out.WriteString(" ")
		e.block(fn.Body)
		e.out.WriteString("\n")
	}

	e.out.WriteString("int main() {\n")
	e.indent++
	for _, stmt := range prog.Body {
		if _, ok := stmt.(*ast.FunctionDecl); ok {
			continue
		}
		e.stmt(stmt)
	}
	e.pad()
	e.out.WriteString("return 0;\n")
	e.indent--
	e.out.WriteString("}\n")

	return e.out.String()
}

func (e *Emitter) signature(fn *ast.FunctionDecl) {
	e.out.WriteString(MapType(fn.ReturnType))
	e.out.WriteString(" ")
	e.out.WriteString(fn.Name)
	e.out.WriteString("(")
	for i, p := range fn.Params {
		if i > 0 {
			e.out.WriteString(", ")
		}
		e.out.WriteString(MapType(p.Type))
		e.out.WriteString(" ")
		e.out.WriteString(p.Name)
	}
	e.out.WriteString(")")
}

func (e *Emitter) stmt(s ast.Stmt) {
	switch n := s.(type) {
	case *ast.BlockStmt:
		e.pad()
		e.block(n)
	case *ast.IfStmt:
		e.ifStmt(n)
	case *ast.SwitchStmt:
		e.switchStmt(n)
	case *ast.WhileStmt:
		e.pad()
		e.out.WriteString("while (isTruthy(")
		e.expr(n.Condition)
		e.out.WriteString(")) ")
		e.block(n.Body)
	case *ast.ReturnStmt:
		e.pad()
		e.out.WriteString("return ")
		if n.Value != nil {
			e.expr(n.Value)
		} else {
			e.out.WriteString("NONE_VAL")
		}
		e.out.WriteString(";\n")
	case *ast.LetStmt:
		e.pad()
		e.out.WriteString(MapType(n.Type))
		e.out.WriteString(" ")
		e.out.WriteString(n.Name)
		e.out.WriteString(" = ")
		e.expr(n.Init)
		e.out.WriteString(";\n")
	case *ast.AssignStmt:
		e.pad()
		e.out.WriteString(n.Name)
		e.out.WriteString(" = ")
		e.expr(n.Value)
		e.out.WriteString(";\n")
	case *ast.ExprStmt:
		e.pad()
		e.expr(n.Expr)
		e.out.WriteString(";\n")
	}
}

// block emits a brace-delimited sequence. The caller supplies the leading
// indentation or separator; the closing brace lands on its own line.
func (e *Emitter) block(blk *ast.BlockStmt) {
	e.out.WriteString("{\n")
	e.indent++
	for _, s := range blk.Statements {
		e.stmt(s)
	}
	e.indent--
	e.pad()
	e.out.WriteString("}\n")
}

func (e *Emitter) ifStmt(n *ast.IfStmt) {
	e.pad()
	e.out.WriteString("if (isTruthy(")
	e.expr(n.Condition)
	e.out.WriteString(")) {\n")
	e.indent++
	for _, s := range n.ThenBranch.Statements {
		e.stmt(s)
	}
	e.indent--
	e.pad()
	e.out.WriteString("}")
	if n.ElseBranch != nil {
		e.out.WriteString(" else {\n")
		e.indent++
		for _, s := range n.ElseBranch.Statements {
			e.stmt(s)
		}
		e.indent--
		e.pad()
		e.out.WriteString("}")
	}
	e.out.WriteString("\n")
}

// switchStmt lowers a switch to a scoped block: the discriminant is
// evaluated once into a hidden temporary, then the cases become a
// mutually-exclusive if/else-if cascade in original order, so the first
// matching case wins. A guard runs inside an immediately-invoked lambda
// where the bound pattern name aliases the temporary.
func (e *Emitter) switchStmt(n *ast.SwitchStmt) {
	e.pad()
	e.out.WriteString("{\n")
	e.indent++

	e.pad()
	e.out.WriteString("Value _sw = ")
	e.expr(n.Discriminant)
	e.out.WriteString(";\n")

	first := true
	for _, c := range n.Cases {
		e.pad()
		if !first {
			e.out.WriteString("else ")
		}

		isDefault := c.PatternName == "_" && c.Value == nil

		if isDefault {
			e.out.WriteString("{\n")
		} else {
			e.out.WriteString("if (")
			needsAnd := false
			if c.Value != nil {
				e.out.WriteString("isTruthy(_sw == ")
				e.expr(c.Value)
				e.out.WriteString(")")
				needsAnd = true
			}
			if c.Guard != nil {
				if needsAnd {
					e.out.WriteString(" && ")
				}
				e.out.WriteString("isTruthy([&](){ ")
				if c.PatternName != "" && c.PatternName != "_" {
					e.out.WriteString("Value ")
					e.out.WriteString(c.PatternName)
					e.out.WriteString(" = _sw; ")
				}
				e.out.WriteString("return ")
				e.expr(c.Guard)
				e.out.WriteString("; }())")
			} else if !needsAnd {
				// Pure variable binding: unconditionally true.
				e.out.WriteString("true")
			}
			e.out.WriteString(") {\n")
		}

		e.indent++
		if c.PatternName != "" && c.PatternName != "_" {
			e.pad()
			e.out.WriteString("Value ")
			e.out.WriteString(c.PatternName)
			e.out.WriteString(" = _sw;\n")
		}
		e.stmt(c.Body)
		e.indent--
		e.pad()
		e.out.WriteString("}\n")

		first = false
		if isDefault {
			// Anything after default is unreachable by construction.
			break
		}
	}

	e.indent--
	e.pad()
	e.out.WriteString("}\n")
}

func (e *Emitter) expr(x ast.Expr) {
	switch n := x.(type) {
	case *ast.AssignExpr:
		e.out.WriteString("(")
		e.out.WriteString(n.Name)
		e.out.WriteString(" = ")
		e.expr(n.Value)
		e.out.WriteString(")")
	case *ast.BinaryExpr:
		e.binary(n)
	case *ast.UnaryExpr:
		e.out.WriteString(n.Op)
		e.expr(n.Right)
	case *ast.CallExpr:
		e.call(n)
	case *ast.Literal:
		e.literal(n)
	case *ast.Identifier:
		e.out.WriteString(n.Name)
	}
}

// binary lowers % and ** to runtime calls: C++ already owns those symbols
// for integer remainder and XOR, so the infix forms would collide. Every
// other operator maps to its infix form on Value overloads.
func (e *Emitter) binary(n *ast.BinaryExpr) {
	switch n.Op {
	case "%":
		e.out.WriteString("fmod(")
		e.expr(n.Left)
		e.out.WriteString(", ")
		e.expr(n.Right)
		e.out.WriteString(")")
	case "**":
		e.out.WriteString("pow(")
		e.expr(n.Left)
		e.out.WriteString(", ")
		e.expr(n.Right)
		e.out.WriteString(")")
	default:
		e.out.WriteString("(")
		e.expr(n.Left)
		e.out.WriteString(" ")
		e.out.WriteString(n.Op)
		e.out.WriteString(" ")
		e.expr(n.Right)
		e.out.WriteString(")")
	}
}

func (e *Emitter) call(n *ast.CallExpr) {
	// A bare call to print resolves to the runtime's print primitive.
	if id, ok := n.Callee.(*ast.Identifier); ok && id.Name == "print" {
		e.out.WriteString("print(")
		e.args(n.Args)
		e.out.WriteString(")")
		return
	}
	e.expr(n.Callee)
	e.out.WriteString("(")
	e.args(n.Args)
	e.out.WriteString(")")
}

func (e *Emitter) args(args []ast.Expr) {
	for i, a := range args {
		if i > 0 {
			e.out.WriteString(", ")
		}
		e.expr(a)
	}
}

func (e *Emitter) literal(n *ast.Literal) {
	switch n.Kind {
	case ast.LitString:
		e.out.WriteString("Value(\"")
		e.out.WriteString(n.Value)
		e.out.WriteString("\")")
	case ast.LitBool:
		e.out.WriteString(n.Value)
	case ast.LitNone:
		e.out.WriteString("NONE_VAL")
	default:
		e.out.WriteString(n.Value)
	}
}

func (e *Emitter) pad() {
	for i := 0; i < e.indent; i++ {
		e.out.WriteString("  ")
	}
}
