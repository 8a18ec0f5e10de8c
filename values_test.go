package risky

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	cases := []struct {
		value    Value
		expected string
	}{
		{Number(42), "42"},
		{Number(-7), "-7"},
		{Symbol("min"), "min"},
		{BuiltinHead, "<builtin>"},
		{&Error{Kind: DivisionByZero}, "Error: Division By Zero"},
		{NewSExpr(), "()"},
		{NewQExpr(), "{}"},
		{NewSExpr(Symbol("+"), Number(1), NewQExpr(Number(2), Number(3))), "(+ 1 {2 3})"},
		{NewQExpr(NewSExpr(), NewQExpr()), "{() {}}"},
		{nil, "()"},
	}
	for _, c := range cases {
		assert.Equal(t, c.expected, EncodeToString(c.value))
	}
}

func TestPop(t *testing.T) {
	q := NewQExpr(Number(1), Number(2), Number(3))

	assert.Equal(t, Number(2), q.Pop(1))
	assert.Equal(t, 2, q.Len())
	assert.Equal(t, "{1 3}", EncodeToString(q))

	assert.Equal(t, Number(1), q.Pop(0))
	assert.Equal(t, Number(3), q.Pop(0))
	assert.Equal(t, 0, q.Len())
}

func TestTake(t *testing.T) {
	s := NewSExpr(Number(1), Number(2), Number(3))
	assert.Equal(t, Number(3), s.Take(2))
	assert.Equal(t, 0, s.Len())
}

func TestQuote(t *testing.T) {
	s := NewSExpr(Number(1), Number(2))
	q := s.Quote()
	assert.Equal(t, "{1 2}", EncodeToString(q))
	assert.Equal(t, 0, s.Len())

	s = q.Unquote()
	assert.Equal(t, "(1 2)", EncodeToString(s))
	assert.Equal(t, 0, q.Len())
}

func TestJoin(t *testing.T) {
	a, b := NewQExpr(Number(1)), NewQExpr(Number(2), Number(3))
	a.Join(b)
	assert.Equal(t, "{1 2 3}", EncodeToString(a))
	assert.Equal(t, 0, b.Len())
}

func TestCopy(t *testing.T) {
	inner := NewQExpr(Number(2), Number(3))
	orig := NewSExpr(Symbol("x"), inner, &Error{Kind: UnboundSymbol, Name: "y"})

	c := Copy(orig)
	require.True(t, Equal(orig, c))

	// mutating the copy leaves the original untouched
	cs := c.(*SExpr)
	cs.Cell(1).(*QExpr).Pop(0)
	cs.Cell(2).(*Error).Name = "z"
	cs.Pop(0)

	assert.Equal(t, "(x {2 3} Error: Unbound Symbol 'y')", EncodeToString(orig))
	assert.Equal(t, "({3} Error: Unbound Symbol 'z')", EncodeToString(c))
	assert.False(t, Equal(orig, c))
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(Number(1), Number(1)))
	assert.False(t, Equal(Number(1), Number(2)))
	assert.False(t, Equal(Number(1), Symbol("1")))
	assert.True(t, Equal(BuiltinAdd, BuiltinAdd))
	assert.False(t, Equal(BuiltinAdd, BuiltinSub))
	assert.True(t, Equal(NewQExpr(Number(1), NewSExpr()), NewQExpr(Number(1), NewSExpr())))
	assert.False(t, Equal(NewQExpr(Number(1)), NewSExpr(Number(1))))
	assert.False(t, Equal(NewQExpr(Number(1)), NewQExpr(Number(1), Number(2))))
	assert.True(t, Equal(&Error{Kind: ModuloByZero}, &Error{Kind: ModuloByZero}))
	assert.False(t, Equal(&Error{Kind: ModuloByZero}, &Error{Kind: DivisionByZero}))
}

func TestTypeName(t *testing.T) {
	assert.Equal(t, "Number", TypeName(Number(0)))
	assert.Equal(t, "Error", TypeName(&Error{}))
	assert.Equal(t, "Symbol", TypeName(Symbol("x")))
	assert.Equal(t, "Function", TypeName(BuiltinEval))
	assert.Equal(t, "S-Expression", TypeName(NewSExpr()))
	assert.Equal(t, "Q-Expression", TypeName(NewQExpr()))
}

func TestBuiltinNames(t *testing.T) {
	for _, b := range builtins {
		found, ok := LookupBuiltin(b.String())
		assert.True(t, ok, b.String())
		assert.Equal(t, b, found)
	}

	_, ok := LookupBuiltin("lambda")
	assert.False(t, ok)
	assert.Equal(t, "Builtin(99)", Builtin(99).String())
}
