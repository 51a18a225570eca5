// Package ast defines the node vocabulary produced by the parser and
// consumed by the emitter. Every node is built once during parsing and owns
// its children exclusively; the tree is immutable afterwards.
package ast

// Node represents any node in the Abstract Syntax Tree.
type Node interface {
	node()
}

// Expr represents an expression that yields a value.
type Expr interface {
	Node
	exprNode()
}

// Stmt represents a standalone unit of execution.
type Stmt interface {
	Node
	stmtNode()
}

// Program is the root node: an ordered list of top-level statements.
type Program struct {
	Body []Stmt
}

func (p *Program) node() {}

// LitKind classifies a Literal.
type LitKind uint8

const (
	LitNumber LitKind = iota
	LitString
	LitBool
	LitNone
)

// Literal is a number, string, boolean, or none literal. Value holds the
// raw source text (numbers are never reparsed).
type Literal struct {
	Value string
	Kind  LitKind
}

func (l *Literal) node()     {}
func (l *Literal) exprNode() {}

// Identifier is a bare name reference.
type Identifier struct {
	Name string
}

func (i *Identifier) node()     {}
func (i *Identifier) exprNode() {}

// BinaryExpr: LEFT op RIGHT. Op is the operator's source spelling.
type BinaryExpr struct {
	Op    string
	Left  Expr
	Right Expr
}

func (b *BinaryExpr) node()     {}
func (b *BinaryExpr) exprNode() {}

// UnaryExpr: op RIGHT.
type UnaryExpr struct {
	Op    string
	Right Expr
}

func (u *UnaryExpr) node()     {}
func (u *UnaryExpr) exprNode() {}

// CallExpr: CALLEE(ARGS...). Chained calls nest, so f()() is a CallExpr
// whose callee is itself a CallExpr.
type CallExpr struct {
	Callee Expr
	Args   []Expr
}

func (c *CallExpr) node()     {}
func (c *CallExpr) exprNode() {}

// AssignExpr: NAME = VALUE used in expression position.
type AssignExpr struct {
	Name  string
	Value Expr
}

func (a *AssignExpr) node()     {}
func (a *AssignExpr) exprNode() {}

// BlockStmt is a brace-delimited statement sequence.
type BlockStmt struct {
	Statements []Stmt
}

func (b *BlockStmt) node()     {}
func (b *BlockStmt) stmtNode() {}

// Param is one function parameter with an optional declared type name.
type Param struct {
	Name string
	Type string // "Value" when omitted
}

// FunctionDecl: fn NAME(PARAMS) [: TYPE] BODY. A well-formed declaration
// always has a non-nil body.
type FunctionDecl struct {
	Name       string
	Params     []Param
	ReturnType string // "Value" when omitted
	Body       *BlockStmt
}

func (f *FunctionDecl) node()     {}
func (f *FunctionDecl) stmtNode() {}

// LetStmt: let NAME [: TYPE] = INIT.
type LetStmt struct {
	Name string
	Type string // "Value" when omitted
	Init Expr
}

func (l *LetStmt) node()     {}
func (l *LetStmt) stmtNode() {}

// AssignStmt: NAME = VALUE in statement position.
type AssignStmt struct {
	Name  string
	Value Expr
}

func (a *AssignStmt) node()     {}
func (a *AssignStmt) stmtNode() {}

// IfStmt: if COND { ... } [else { ... }]. ElseBranch may be nil.
type IfStmt struct {
	Condition  Expr
	ThenBranch *BlockStmt
	ElseBranch *BlockStmt
}

func (i *IfStmt) node()     {}
func (i *IfStmt) stmtNode() {}

// WhileStmt: while COND { ... }.
type WhileStmt struct {
	Condition Expr
	Body      *BlockStmt
}

func (w *WhileStmt) node()     {}
func (w *WhileStmt) stmtNode() {}

// ReturnStmt: return [VALUE]. A nil Value lowers to the none sentinel.
type ReturnStmt struct {
	Value Expr
}

func (r *ReturnStmt) node()     {}
func (r *ReturnStmt) stmtNode() {}

// Case is one clause of a switch. Exactly one of Value (literal pattern)
// and PatternName (bound variable) is meaningful; a default clause carries
// PatternName "_" and no Value. Guard is optional.
type Case struct {
	PatternName string
	Value       Expr
	Guard       Expr
	Body        Stmt
}

// SwitchStmt: switch DISCRIMINANT { case ... default: ... }. Case order is
// preserved; first-match-wins is the emitter's concern.
type SwitchStmt struct {
	Discriminant Expr
	Cases        []Case
}

func (s *SwitchStmt) node()     {}
func (s *SwitchStmt) stmtNode() {}

// ExprStmt wraps an expression in statement position.
type ExprStmt struct {
	Expr Expr
}

func (e *ExprStmt) node()     {}
func (e *ExprStmt) stmtNode() {}
