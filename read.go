package risky

import (
	"strconv"
	"strings"

	"github.com/pgavlin/risky/syntax"
)

// Node is a parse tree node as produced by the syntax package.
type Node = syntax.Node

// Read translates a parse tree into an unevaluated value.
func Read(n Node) Value {
	tag := n.Tag()
	switch {
	case strings.Contains(tag, "number"):
		return readNumber(n.Contents())
	case strings.Contains(tag, "symbol"):
		return Symbol(n.Contents())
	}

	children := meaningfulChildren(n)
	if tag == ">" && len(children) == 1 {
		if t := children[0].Tag(); strings.Contains(t, "sexpr") || strings.Contains(t, "qexpr") {
			return Read(children[0])
		}
	}

	var c cells
	for _, child := range children {
		c.Add(Read(child))
	}
	if strings.Contains(tag, "qexpr") {
		return &QExpr{c}
	}
	return &SExpr{c}
}

// ReadString parses and reads one line of source. Syntax errors are returned
// as errors, not as Error values.
func ReadString(src string) (Value, error) {
	n, err := syntax.ParseString("<stdin>", src)
	if err != nil {
		return nil, err
	}
	return Read(n), nil
}

func readNumber(text string) Value {
	x, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return errBadNumber(text)
	}
	return Number(x)
}

// meaningfulChildren drops delimiter tokens and anchor nodes.
func meaningfulChildren(n Node) []Node {
	var children []Node
	for _, c := range n.Children() {
		switch c.Contents() {
		case "(", ")", "{", "}":
			continue
		}
		if c.Tag() == "regex" {
			continue
		}
		children = append(children, c)
	}
	return children
}
