package risky

import (
	"io"
	"strconv"
	"strings"
)

// Value
type Value interface {
	write(w io.Writer) error
}

// Encode writes the canonical textual representation of v to w.
func Encode(w io.Writer, v Value) error {
	if v == nil {
		_, err := w.Write([]byte("()"))
		return err
	}
	return v.write(w)
}

// EncodeToString returns the canonical textual representation of v.
func EncodeToString(v Value) string {
	var b strings.Builder
	Encode(&b, v)
	return b.String()
}

// Number
type Number int64

func (n Number) write(w io.Writer) error {
	_, err := w.Write(strconv.AppendInt(nil, int64(n), 10))
	return err
}

// Symbol
type Symbol string

func (s Symbol) write(w io.Writer) error {
	_, err := w.Write([]byte(s))
	return err
}

// cells is the ordered child storage shared by S- and Q-expressions. A cells
// value owns its children: Pop hands a child to the caller and closes the gap.
type cells struct {
	c []Value
}

// Len returns the number of children.
func (l *cells) Len() int {
	return len(l.c)
}

// Cell returns child i without removing it.
func (l *cells) Cell(i int) Value {
	return l.c[i]
}

// Add appends v as the last child.
func (l *cells) Add(v Value) {
	l.c = append(l.c, v)
}

// Pop removes child i and returns it. The remaining children shift left.
func (l *cells) Pop(i int) Value {
	v := l.c[i]
	copy(l.c[i:], l.c[i+1:])
	l.c[len(l.c)-1] = nil
	l.c = l.c[:len(l.c)-1]
	return v
}

// Take removes child i, discards the remaining children, and returns child i.
func (l *cells) Take(i int) Value {
	v := l.Pop(i)
	l.c = nil
	return v
}

// release hands the whole child slice to the caller, leaving l empty.
func (l *cells) release() []Value {
	c := l.c
	l.c = nil
	return c
}

func (l *cells) copy() cells {
	if l.c == nil {
		return cells{}
	}
	c := make([]Value, len(l.c))
	for i, v := range l.c {
		c[i] = Copy(v)
	}
	return cells{c: c}
}

func (l *cells) write(w io.Writer, open, close string) error {
	if _, err := w.Write([]byte(open)); err != nil {
		return err
	}
	for i, v := range l.c {
		if i != 0 {
			if _, err := w.Write([]byte(" ")); err != nil {
				return err
			}
		}
		if err := Encode(w, v); err != nil {
			return err
		}
	}
	_, err := w.Write([]byte(close))
	return err
}

// SExpr is an S-expression: an ordered container that is reduced when
// evaluated.
type SExpr struct {
	cells
}

func NewSExpr(children ...Value) *SExpr {
	return &SExpr{cells{c: children}}
}

func (s *SExpr) write(w io.Writer) error {
	return s.cells.write(w, "(", ")")
}

// Quote moves the children of s into a new Q-expression. s is left empty.
func (s *SExpr) Quote() *QExpr {
	return &QExpr{cells{c: s.release()}}
}

// QExpr is a Q-expression: an ordered container that evaluation leaves alone.
type QExpr struct {
	cells
}

func NewQExpr(children ...Value) *QExpr {
	return &QExpr{cells{c: children}}
}

func (q *QExpr) write(w io.Writer) error {
	return q.cells.write(w, "{", "}")
}

// Unquote moves the children of q into a new S-expression. q is left empty.
func (q *QExpr) Unquote() *SExpr {
	return &SExpr{cells{c: q.release()}}
}

// Join moves every child of other onto the end of q, leaving other empty.
func (q *QExpr) Join(other *QExpr) {
	q.c = append(q.c, other.release()...)
}

// Copy returns a deep copy of v. No part of the result is shared with v.
func Copy(v Value) Value {
	switch v := v.(type) {
	case *SExpr:
		return &SExpr{v.cells.copy()}
	case *QExpr:
		return &QExpr{v.cells.copy()}
	case *Error:
		e := *v
		return &e
	default:
		// Number, Symbol and Builtin are immutable scalars.
		return v
	}
}

// TypeName returns the human-readable name of v's variant.
func TypeName(v Value) string {
	switch v.(type) {
	case Number:
		return "Number"
	case *Error:
		return "Error"
	case Symbol:
		return "Symbol"
	case Builtin:
		return "Function"
	case *SExpr:
		return "S-Expression"
	case *QExpr:
		return "Q-Expression"
	default:
		return "Unknown"
	}
}
