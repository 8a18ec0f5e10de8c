package syntax

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dump renders a parse tree as tag[contents](children...) for comparison.
func dump(n Node) string {
	var b strings.Builder
	b.WriteString(n.Tag())
	if n.Contents() != "" {
		b.WriteString("[" + n.Contents() + "]")
	}
	if len(n.Children()) != 0 {
		b.WriteString("(")
		for i, c := range n.Children() {
			if i != 0 {
				b.WriteString(" ")
			}
			b.WriteString(dump(c))
		}
		b.WriteString(")")
	}
	return b.String()
}

func TestParse(t *testing.T) {
	cases := []struct{ src, expected string }{
		{"", ">(regex regex)"},
		{"5", ">(regex expr|number|regex[5] regex)"},
		{"-5", ">(regex expr|number|regex[-5] regex)"},
		{"-", ">(regex expr|symbol|regex[-] regex)"},
		{"--5", ">(regex expr|symbol|regex[--5] regex)"},
		{"1abc", ">(regex expr|symbol|regex[1abc] regex)"},
		{"+ 1 2", ">(regex expr|symbol|regex[+] expr|number|regex[1] expr|number|regex[2] regex)"},
		{"()", ">(regex expr|sexpr|>(char[(] char[)]) regex)"},
		{"{x}", ">(regex expr|qexpr|>(char[{] expr|symbol|regex[x] char[}]) regex)"},
		{
			"(min {1} \\)",
			">(regex expr|sexpr|>(char[(] expr|symbol|regex[min] expr|qexpr|>(char[{] expr|number|regex[1] char[}]) expr|symbol|regex[\\] char[)]) regex)",
		},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			n, err := ParseString("<test>", c.src)
			require.NoError(t, err)
			assert.Equal(t, c.expected, dump(n))
		})
	}
}

func TestParseSymbols(t *testing.T) {
	n, err := ParseString("<test>", "+ - * / % ^ \\ = < > ! & _ min max head tail list join eval def exit x1")
	require.NoError(t, err)

	children := n.Children()
	require.Len(t, children, 25)
	for _, c := range children[1 : len(children)-1] {
		assert.Equal(t, "expr|symbol|regex", c.Tag(), c.Contents())
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		src      string
		expected string
	}{
		{
			"(+ 1",
			"<stdin>:1:5: error: expected one of '(', '{', number, symbol or ')' at end of input",
		},
		{
			"{1 2)",
			"<stdin>:1:5: error: expected one of '(', '{', number, symbol or '}' at ')'",
		},
		{
			")",
			"<stdin>:1:1: error: expected one of '(', '{', number, symbol or end of input at ')'",
		},
		{
			"+ 1 #",
			"<stdin>:1:5: error: expected one of '(', '{', number, symbol or end of input at '#'",
		},
		{
			"(+ 1\n  . 2)",
			"<stdin>:2:3: error: expected one of '(', '{', number, symbol or ')' at '.'",
		},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			_, err := ParseString("<stdin>", c.src)
			require.Error(t, err)

			serr, ok := err.(*Error)
			require.True(t, ok)
			assert.Equal(t, c.expected, serr.Error())
		})
	}
}

func TestPositions(t *testing.T) {
	n, err := ParseString("f", "  (a\n b)")
	require.NoError(t, err)

	list := n.Children()[1].(*node)
	assert.Equal(t, Position{Filename: "f", Line: 1, Column: 3}, list.Pos())

	b := list.Children()[2].(*node)
	assert.Equal(t, "b", b.Contents())
	assert.Equal(t, "f:2:2", b.Pos().String())
}
