// Package syntax parses risky source text into a parse tree.
//
// The grammar is
//
//	number : /-?[0-9]+/ ;
//	symbol : /[a-zA-Z0-9_+\-*\/\\=<>!&%^]+/ ;
//	sexpr  : '(' <expr>* ')' ;
//	qexpr  : '{' <expr>* '}' ;
//	expr   : <number> | <symbol> | <sexpr> | <qexpr> ;
//	risky  : /^/ <expr>* /$/ ;
//
// Each node's tag is the '|'-separated path of rules that produced it, e.g.
// "expr|number|regex" for a number literal or "expr|sexpr|>" for a
// parenthesized list. The root is tagged ">", delimiters "char" and the
// start and end anchors "regex".
package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Node is one node of a parse tree.
type Node interface {
	// Tag classifies the node.
	Tag() string
	// Contents is the literal source text of a leaf. It is empty for
	// interior nodes.
	Contents() string
	// Children returns the node's children in source order.
	Children() []Node
}

// Position is a location in source text. Line and Column are 1-based.
type Position struct {
	Filename string
	Line     int
	Column   int
}

func (p Position) String() string {
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

// Error is a syntax error.
type Error struct {
	Pos      Position
	Expected []string
	Found    string
}

func (e *Error) Error() string {
	var expected string
	switch len(e.Expected) {
	case 0:
		expected = "nothing"
	case 1:
		expected = e.Expected[0]
	default:
		expected = "one of " + strings.Join(e.Expected[:len(e.Expected)-1], ", ") + " or " + e.Expected[len(e.Expected)-1]
	}
	return fmt.Sprintf("%v: error: expected %s at %s", e.Pos, expected, e.Found)
}

type node struct {
	tag      string
	contents string
	pos      Position
	children []Node
}

func (n *node) Tag() string      { return n.tag }
func (n *node) Contents() string { return n.contents }
func (n *node) Children() []Node { return n.children }

// Pos returns the position of the node's first character.
func (n *node) Pos() Position { return n.pos }

// ParseString parses src as a single line of input.
func ParseString(filename, src string) (Node, error) {
	return Parse(filename, strings.NewReader(src))
}

// Parse parses the contents of r.
func Parse(filename string, r io.Reader) (Node, error) {
	p := &parser{l: newLexer(filename, r)}
	return p.parseRoot()
}

type parser struct {
	l *lexer
	t *token
}

func (p *parser) peek() (token, error) {
	if p.t == nil {
		t, err := p.l.next()
		if err != nil {
			return token{}, err
		}
		p.t = &t
	}
	return *p.t, nil
}

func (p *parser) next() (token, error) {
	if p.t != nil {
		t := *p.t
		p.t = nil
		return t, nil
	}
	return p.l.next()
}

var exprStart = []string{"'('", "'{'", "number", "symbol"}

func (p *parser) parseRoot() (Node, error) {
	root := &node{tag: ">", pos: p.l.pos}
	root.children = append(root.children, &node{tag: "regex", pos: p.l.pos})
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if tok.kind == tokEOF {
			root.children = append(root.children, &node{tag: "regex", pos: tok.pos})
			return root, nil
		}

		expr, err := p.parseExpression(append(exprStart[:len(exprStart):len(exprStart)], "end of input"))
		if err != nil {
			return nil, err
		}
		root.children = append(root.children, expr)
	}
}

func (p *parser) parseExpression(expected []string) (Node, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}

	switch tok.kind {
	case tokNumber:
		return &node{tag: "expr|number|regex", contents: tok.text, pos: tok.pos}, nil
	case tokSymbol:
		return &node{tag: "expr|symbol|regex", contents: tok.text, pos: tok.pos}, nil
	case tokOpen:
		tag, close := "expr|sexpr|>", ")"
		if tok.text == "{" {
			tag, close = "expr|qexpr|>", "}"
		}
		return p.parseList(tok, tag, close)
	default:
		return nil, &Error{Pos: tok.pos, Expected: expected, Found: tok.describe()}
	}
}

func (p *parser) parseList(open token, tag, close string) (Node, error) {
	list := &node{tag: tag, pos: open.pos}
	list.children = append(list.children, &node{tag: "char", contents: open.text, pos: open.pos})

	expected := append(exprStart[:len(exprStart):len(exprStart)], "'"+close+"'")
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if tok.kind == tokClose && tok.text == close {
			p.next()
			list.children = append(list.children, &node{tag: "char", contents: tok.text, pos: tok.pos})
			return list, nil
		}

		child, err := p.parseExpression(expected)
		if err != nil {
			return nil, err
		}
		list.children = append(list.children, child)
	}
}
