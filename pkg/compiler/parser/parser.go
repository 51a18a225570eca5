// Package parser builds the AST from the lexer's token sequence with a
// recursive-descent, operator-precedence expression parser. The first
// syntactic mismatch wins: parsing stops and the error is returned, never a
// partial tree.
package parser

import (
	"fmt"

	"github.com/uaslang/uasc/pkg/compiler/ast"
	"github.com/uaslang/uasc/pkg/compiler/lexer"
)

// SyntaxError describes the first structural parse failure. Tokens carry no
// source positions, so the diagnostic references the offending token's text
// and its approximate index in the sequence.
type SyntaxError struct {
	Message string
	Token   lexer.Token
	Index   int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at '%s' (token ~%d)", e.Message, e.Token.Text, e.Index)
}

type Parser struct {
	tokens  []lexer.Token
	current int
}

func NewParser(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse consumes the whole token sequence into one Program.
func Parse(tokens []lexer.Token) (*ast.Program, error) {
	return NewParser(tokens).Parse()
}

func (p *Parser) Parse() (*ast.Program, error) {
	prog := &ast.Program{}
	for !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			return nil, err
		}
		prog.Body = append(prog.Body, stmt)
	}
	return prog, nil
}

// declaration dispatches in priority order: function declaration, variable
// declaration, assignment, then any statement. The assignment branch needs
// two tokens of lookahead to tell `x = 1` apart from `x == 1` and from a
// bare reference.
func (p *Parser) declaration() (ast.Stmt, error) {
	if p.match(lexer.KindFn) {
		return p.functionDecl()
	}
	if p.match(lexer.KindLet) {
		return p.letDecl()
	}

	if isName(p.peek()) && p.peekNext().Kind == lexer.KindEq {
		name := p.advance()
		p.advance() // consume '='
		value, err := p.expression()
		if err != nil {
			return nil, err
		}
		if p.check(lexer.KindSemicolon) {
			p.advance()
		}
		return &ast.AssignStmt{Name: name.Text, Value: value}, nil
	}

	return p.statement()
}

func (p *Parser) functionDecl() (ast.Stmt, error) {
	name, err := p.consume(lexer.KindIdentifier, "expected function name")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.KindLParen, "expected ("); err != nil {
		return nil, err
	}

	var params []ast.Param
	if !p.check(lexer.KindRParen) {
		for {
			paramName, err := p.consume(lexer.KindIdentifier, "expected parameter name")
			if err != nil {
				return nil, err
			}
			paramType := "Value"
			if p.match(lexer.KindColon) {
				typeTok, err := p.consume(lexer.KindIdentifier, "expected type name")
				if err != nil {
					return nil, err
				}
				paramType = typeTok.Text
			}
			params = append(params, ast.Param{Name: paramName.Text, Type: paramType})
			if !p.match(lexer.KindComma) {
				break
			}
		}
	}
	if _, err := p.consume(lexer.KindRParen, "expected )"); err != nil {
		return nil, err
	}

	returnType := "Value"
	if p.match(lexer.KindColon) {
		typeTok, err := p.consume(lexer.KindIdentifier, "expected return type")
		if err != nil {
			return nil, err
		}
		returnType = typeTok.Text
	}

	if _, err := p.consume(lexer.KindLBrace, "expected {"); err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return &ast.FunctionDecl{Name: name.Text, Params: params, ReturnType: returnType, Body: body}, nil
}

func (p *Parser) letDecl() (ast.Stmt, error) {
	// The bound name may itself be a keyword-literal token (true/false/none
	// spellings), which permits shadowing those identifiers.
	name := p.advance()
	if !isName(name) {
		return nil, p.errorAt("expected variable name")
	}

	typeName := "Value"
	if p.match(lexer.KindColon) {
		typeTok, err := p.consume(lexer.KindIdentifier, "expected type name")
		if err != nil {
			return nil, err
		}
		typeName = typeTok.Text
	}

	if _, err := p.consume(lexer.KindEq, "expected ="); err != nil {
		return nil, err
	}
	init, err := p.expression()
	if err != nil {
		return nil, err
	}
	if p.check(lexer.KindSemicolon) {
		p.advance()
	}
	return &ast.LetStmt{Name: name.Text, Type: typeName, Init: init}, nil
}

func (p *Parser) statement() (ast.Stmt, error) {
	if p.match(lexer.KindIf) {
		return p.ifStmt()
	}
	if p.match(lexer.KindSwitch) {
		return p.switchStmt()
	}
	if p.match(lexer.KindWhile) {
		return p.whileStmt()
	}
	if p.match(lexer.KindReturn) {
		return p.returnStmt()
	}
	if p.match(lexer.KindLBrace) {
		return p.block()
	}
	return p.exprStmt()
}

// block parses statements up to the matching closing brace. The opening
// brace has already been consumed.
func (p *Parser) block() (*ast.BlockStmt, error) {
	blk := &ast.BlockStmt{}
	for !p.check(lexer.KindRBrace) && !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			return nil, err
		}
		blk.Statements = append(blk.Statements, stmt)
	}
	if _, err := p.consume(lexer.KindRBrace, "expected }"); err != nil {
		return nil, err
	}
	return blk, nil
}

// ifStmt parses the condition as a bare expression: grouping parentheses
// are the expression parser's concern, not required here.
func (p *Parser) ifStmt() (ast.Stmt, error) {
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.KindLBrace, "expected { after condition"); err != nil {
		return nil, err
	}
	thenBranch, err := p.block()
	if err != nil {
		return nil, err
	}

	var elseBranch *ast.BlockStmt
	if p.match(lexer.KindElse) {
		if _, err := p.consume(lexer.KindLBrace, "expected { after else"); err != nil {
			return nil, err
		}
		elseBranch, err = p.block()
		if err != nil {
			return nil, err
		}
	}
	return &ast.IfStmt{Condition: cond, ThenBranch: thenBranch, ElseBranch: elseBranch}, nil
}

func (p *Parser) switchStmt() (ast.Stmt, error) {
	discriminant, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.KindLBrace, "expected { after switch discriminant"); err != nil {
		return nil, err
	}

	var cases []ast.Case
	for !p.check(lexer.KindRBrace) && !p.isAtEnd() {
		switch {
		case p.match(lexer.KindCase):
			c := ast.Case{}

			// Pattern: a one-token literal, or a name bound to the
			// discriminant. The two are mutually exclusive.
			switch {
			case p.check(lexer.KindNumber) || p.check(lexer.KindString) ||
				p.check(lexer.KindTrue) || p.check(lexer.KindFalse):
				c.Value, err = p.primary()
				if err != nil {
					return nil, err
				}
			case isName(p.peek()):
				c.PatternName = p.advance().Text
			default:
				return nil, p.errorAt("expected pattern after case")
			}

			if p.match(lexer.KindIf) {
				c.Guard, err = p.expression()
				if err != nil {
					return nil, err
				}
			}

			if !p.match(lexer.KindArrow) && !p.match(lexer.KindColon) {
				return nil, p.errorAt("expected => or : after pattern")
			}

			c.Body, err = p.declaration()
			if err != nil {
				return nil, err
			}
			cases = append(cases, c)

		case p.match(lexer.KindDefault):
			if _, err := p.consume(lexer.KindColon, "expected : after default"); err != nil {
				return nil, err
			}
			body, err := p.declaration()
			if err != nil {
				return nil, err
			}
			cases = append(cases, ast.Case{PatternName: "_", Body: body})

		default:
			return nil, p.errorAt("expected case or default in switch block")
		}
	}
	if _, err := p.consume(lexer.KindRBrace, "expected } at end of switch"); err != nil {
		return nil, err
	}
	return &ast.SwitchStmt{Discriminant: discriminant, Cases: cases}, nil
}

func (p *Parser) whileStmt() (ast.Stmt, error) {
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.KindLBrace, "expected { after while condition"); err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return &ast.WhileStmt{Condition: cond, Body: body}, nil
}

func (p *Parser) returnStmt() (ast.Stmt, error) {
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	if p.check(lexer.KindSemicolon) {
		p.advance()
	}
	return &ast.ReturnStmt{Value: value}, nil
}

func (p *Parser) exprStmt() (ast.Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if p.check(lexer.KindSemicolon) {
		p.advance()
	}
	return &ast.ExprStmt{Expr: expr}, nil
}

// expression := assignment | equality. An assignment is recognized only
// when positioned at a name-like token immediately followed by '='.
func (p *Parser) expression() (ast.Expr, error) {
	if isName(p.peek()) && p.peekNext().Kind == lexer.KindEq {
		name := p.advance()
		p.advance() // consume '='
		value, err := p.expression()
		if err != nil {
			return nil, err
		}
		return &ast.AssignExpr{Name: name.Text, Value: value}, nil
	}
	return p.equality()
}

func (p *Parser) equality() (ast.Expr, error) {
	expr, err := p.comparison()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.KindEqEq) {
		right, err := p.comparison()
		if err != nil {
			return nil, err
		}
		expr = &ast.BinaryExpr{Op: "==", Left: expr, Right: right}
	}
	return expr, nil
}

func (p *Parser) comparison() (ast.Expr, error) {
	expr, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.check(lexer.KindLT) || p.check(lexer.KindGT) || p.check(lexer.KindLE) || p.check(lexer.KindGE) {
		op := p.advance()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		expr = &ast.BinaryExpr{Op: op.Text, Left: expr, Right: right}
	}
	return expr, nil
}

func (p *Parser) term() (ast.Expr, error) {
	expr, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.check(lexer.KindPlus) || p.check(lexer.KindMinus) {
		op := p.advance()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		expr = &ast.BinaryExpr{Op: op.Text, Left: expr, Right: right}
	}
	return expr, nil
}

func (p *Parser) factor() (ast.Expr, error) {
	expr, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.check(lexer.KindStar) || p.check(lexer.KindSlash) || p.check(lexer.KindPercent) || p.check(lexer.KindPower) {
		op := p.advance()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		expr = &ast.BinaryExpr{Op: op.Text, Left: expr, Right: right}
	}
	return expr, nil
}

func (p *Parser) unary() (ast.Expr, error) {
	if p.match(lexer.KindMinus) {
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Op: "-", Right: right}, nil
	}
	return p.call()
}

// call supports chained invocations like f()().
func (p *Parser) call() (ast.Expr, error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.KindLParen) {
		expr, err = p.finishCall(expr)
		if err != nil {
			return nil, err
		}
	}
	return expr, nil
}

func (p *Parser) primary() (ast.Expr, error) {
	switch {
	case p.match(lexer.KindNumber):
		return &ast.Literal{Value: p.previous().Text, Kind: ast.LitNumber}, nil
	case p.match(lexer.KindString):
		return &ast.Literal{Value: p.previous().Text, Kind: ast.LitString}, nil
	case p.match(lexer.KindTrue):
		return &ast.Literal{Value: "true", Kind: ast.LitBool}, nil
	case p.match(lexer.KindFalse):
		return &ast.Literal{Value: "false", Kind: ast.LitBool}, nil
	case p.match(lexer.KindNone):
		return &ast.Literal{Value: "none", Kind: ast.LitNone}, nil
	case p.match(lexer.KindIdentifier):
		return &ast.Identifier{Name: p.previous().Text}, nil
	case p.match(lexer.KindLParen):
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(lexer.KindRParen, "expected )"); err != nil {
			return nil, err
		}
		return expr, nil
	}
	return nil, p.errorAt("unexpected token in expression")
}

func (p *Parser) finishCall(callee ast.Expr) (ast.Expr, error) {
	var args []ast.Expr
	if !p.check(lexer.KindRParen) {
		for {
			arg, err := p.expression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.match(lexer.KindComma) {
				break
			}
		}
	}
	if _, err := p.consume(lexer.KindRParen, "expected ) after arguments"); err != nil {
		return nil, err
	}
	return &ast.CallExpr{Callee: callee, Args: args}, nil
}

// isName reports whether a token can serve as a variable name. The boolean
// and none literal spellings qualify so they can be shadowed.
func isName(t lexer.Token) bool {
	switch t.Kind {
	case lexer.KindIdentifier, lexer.KindTrue, lexer.KindFalse, lexer.KindNone:
		return true
	}
	return false
}

func (p *Parser) match(kind lexer.Kind) bool {
	if p.check(kind) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) check(kind lexer.Kind) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Kind == kind
}

func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool {
	return p.current >= len(p.tokens) || p.tokens[p.current].Kind == lexer.KindEOF
}

func (p *Parser) peek() lexer.Token {
	if p.current >= len(p.tokens) {
		return lexer.Token{Kind: lexer.KindEOF}
	}
	return p.tokens[p.current]
}

func (p *Parser) peekNext() lexer.Token {
	if p.current+1 >= len(p.tokens) {
		return lexer.Token{Kind: lexer.KindEOF}
	}
	return p.tokens[p.current+1]
}

func (p *Parser) previous() lexer.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) consume(kind lexer.Kind, msg string) (lexer.Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}
	return lexer.Token{}, p.errorAt(msg)
}

func (p *Parser) errorAt(msg string) error {
	return &SyntaxError{Message: msg, Token: p.peek(), Index: p.current}
}
