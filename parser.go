package lkit

import (
	"fmt"
	"regexp"
	"strconv"

	"lkit/node"
	"lkit/scalar"
)

var (
	intLiteralRe    = regexp.MustCompile(`^[+-]?[0-9]+$`)
	doubleLiteralRe = regexp.MustCompile(`^[+\-0-9.eE]+$`)
)

// parser recursive-descends the grammar in §4.5 directly into the node
// tree — there is no separate AST stage. It is bound to one Environment,
// which supplies the function/variable tables a form's head and
// identifier tokens resolve against. Newly allocated constants and
// sub-expressions are collected into the parser's own scratch pools,
// rather than registered on the environment directly, so a parse that
// fails partway through never leaks nodes into the environment's pools —
// the caller (Environment.compile) commits them only once parsing the
// full program has succeeded.
type parser struct {
	lexer   *Lexer
	env     *Environment
	current Token
	peek    Token

	constants []*node.Const
	subExprs  []*node.Expression
}

func newParser(src string, env *Environment) *parser {
	p := &parser{lexer: NewLexer(src), env: env}
	p.advance()
	p.advance()
	return p
}

func (p *parser) advance() {
	p.current = p.peek
	p.peek = p.lexer.NextToken()
}

// parseProgram parses every top-level form in textual order. The caller
// (Environment.compile) evaluates all but the last for their side effects
// and keeps the last as the root.
func (p *parser) parseProgram() ([]node.Node, error) {
	if p.current.Type == TOKEN_EOF {
		return nil, &SyntaxError{Pos: p.current.Position, Msg: "missing opening '('"}
	}
	var forms []node.Node
	for p.current.Type != TOKEN_EOF {
		n, err := p.parseForm()
		if err != nil {
			return nil, err
		}
		forms = append(forms, n)
	}
	return forms, nil
}

func (p *parser) parseForm() (node.Node, error) {
	if p.current.Type != TOKEN_LPAREN {
		return nil, &SyntaxError{Pos: p.current.Position, Msg: fmt.Sprintf("expected '(', found %q", p.current.Value)}
	}
	p.advance()

	if p.current.Type != TOKEN_ATOM {
		return nil, &SyntaxError{Pos: p.current.Position, Msg: "expected a function name or 'set'"}
	}
	head := p.current.Value
	if head == "set" {
		return p.parseSet()
	}
	return p.parseCall(head)
}

// parseSet implements the 'set' special form: the next token names the
// variable, and the single value that follows (a literal, identifier, or
// nested expression) becomes its bound expression — re-evaluated into the
// variable's scalar on every subsequent read.
func (p *parser) parseSet() (node.Node, error) {
	p.advance() // consume 'set'

	if p.current.Type != TOKEN_ATOM {
		return nil, &SyntaxError{Pos: p.current.Position, Msg: "'set' requires a variable name"}
	}
	name := p.current.Value
	p.advance()

	value, err := p.parseArg()
	if err != nil {
		return nil, err
	}

	if p.current.Type != TOKEN_RPAREN {
		return nil, &SyntaxError{Pos: p.current.Position, Msg: "'set' takes exactly one value"}
	}
	p.advance() // consume ')'

	return p.env.variables.bind(name, value), nil
}

// parseCall parses a function application: head already consumed from
// current, arguments follow until the closing ')'.
func (p *parser) parseCall(head string) (node.Node, error) {
	headPos := p.current.Position
	fn, ok := p.env.functions.Get(head)
	if !ok {
		return nil, &LookupError{Pos: headPos, Name: head}
	}
	p.advance() // consume head

	var args []node.Node
	for p.current.Type != TOKEN_RPAREN {
		if p.current.Type == TOKEN_EOF {
			return nil, &SyntaxError{Pos: p.current.Position, Msg: "unterminated expression"}
		}
		arg, err := p.parseArg()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	p.advance() // consume ')'

	expr := node.NewExpression(fn, args...)
	expr.SetName(head)
	p.subExprs = append(p.subExprs, expr)
	return expr, nil
}

func (p *parser) parseArg() (node.Node, error) {
	switch p.current.Type {
	case TOKEN_LPAREN:
		return p.parseForm()
	case TOKEN_QUOTED:
		return p.parseTimestampArg()
	case TOKEN_ATOM:
		return p.parseAtomArg()
	default:
		return nil, &SyntaxError{Pos: p.current.Position, Msg: fmt.Sprintf("unexpected token %q", p.current.Value)}
	}
}

func (p *parser) parseTimestampArg() (node.Node, error) {
	ts, err := ParseTimestamp(p.current.Value)
	if err != nil {
		return nil, &SyntaxError{Pos: p.current.Position, Msg: err.Error()}
	}
	p.advance()
	c := node.NewConst(scalar.NewTimestamp(ts))
	p.constants = append(p.constants, c)
	return c, nil
}

// parseAtomArg classifies a bare token per the grammar: 'true'/'false',
// integer, double, or (falling through every literal form) an identifier
// resolved against the variable table.
func (p *parser) parseAtomArg() (node.Node, error) {
	tok := p.current.Value
	switch {
	case tok == "true":
		p.advance()
		return p.constBool(true), nil
	case tok == "false":
		p.advance()
		return p.constBool(false), nil
	case intLiteralRe.MatchString(tok):
		n, err := strconv.ParseInt(tok, 10, 32)
		if err != nil {
			return nil, &SyntaxError{Pos: p.current.Position, Msg: fmt.Sprintf("malformed integer %q", tok)}
		}
		p.advance()
		c := node.NewConst(scalar.NewInt(int32(n)))
		p.constants = append(p.constants, c)
		return c, nil
	case looksLikeDouble(tok):
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, &SyntaxError{Pos: p.current.Position, Msg: fmt.Sprintf("malformed double %q", tok)}
		}
		p.advance()
		c := node.NewConst(scalar.NewDouble(f))
		p.constants = append(p.constants, c)
		return c, nil
	default:
		p.advance()
		return p.env.variables.resolve(tok), nil
	}
}

func (p *parser) constBool(v bool) node.Node {
	c := node.NewConst(scalar.NewBool(v))
	p.constants = append(p.constants, c)
	return c
}

// looksLikeDouble applies the grammar's double rule: a token drawn only
// from [+-0-9.eE] containing at least one of '.', 'e', 'E'.
func looksLikeDouble(tok string) bool {
	if !doubleLiteralRe.MatchString(tok) {
		return false
	}
	for _, r := range tok {
		if r == '.' || r == 'e' || r == 'E' {
			return true
		}
	}
	return false
}
