package syntax

import (
	"bufio"
	"io"
	"strings"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokOpen
	tokClose
	tokNumber
	tokSymbol
	tokInvalid
)

type token struct {
	kind tokenKind
	text string
	pos  Position
}

// describe returns the token as it is quoted in diagnostics.
func (t token) describe() string {
	switch t.kind {
	case tokEOF:
		return "end of input"
	case tokNumber:
		return "number '" + t.text + "'"
	case tokSymbol:
		return "symbol '" + t.text + "'"
	default:
		return "'" + t.text + "'"
	}
}

type lexer struct {
	r   *bufio.Reader
	pos Position
}

func newLexer(filename string, r io.Reader) *lexer {
	return &lexer{
		r:   bufio.NewReader(r),
		pos: Position{Filename: filename, Line: 1, Column: 1},
	}
}

func (l *lexer) read() (rune, error) {
	c, _, err := l.r.ReadRune()
	if err != nil {
		if err == io.EOF {
			return 0, nil
		}
		return 0, err
	}
	if c == '\n' {
		l.pos.Line, l.pos.Column = l.pos.Line+1, 1
	} else {
		l.pos.Column++
	}
	return c, nil
}

func (l *lexer) peek() rune {
	c, _, err := l.r.ReadRune()
	if err != nil {
		return 0
	}
	l.r.UnreadRune()
	return c
}

func (l *lexer) next() (token, error) {
	for {
		start := l.pos
		c, err := l.read()
		if err != nil {
			return token{}, err
		}

		switch {
		case c == 0:
			return token{kind: tokEOF, pos: start}, nil
		case c == '(' || c == '{':
			return token{kind: tokOpen, text: string(c), pos: start}, nil
		case c == ')' || c == '}':
			return token{kind: tokClose, text: string(c), pos: start}, nil
		case isSpace(c):
			continue
		case isSymbolChar(c):
			return l.word(c, start)
		default:
			return token{kind: tokInvalid, text: string(c), pos: start}, nil
		}
	}
}

// word lexes a maximal run of symbol characters. A run that spells an
// optionally negative decimal integer is a number; anything else is a symbol.
func (l *lexer) word(first rune, start Position) (token, error) {
	var text strings.Builder
	text.WriteRune(first)
	for isSymbolChar(l.peek()) {
		c, err := l.read()
		if err != nil {
			return token{}, err
		}
		text.WriteRune(c)
	}

	s := text.String()
	if isNumber(s) {
		return token{kind: tokNumber, text: s, pos: start}, nil
	}
	return token{kind: tokSymbol, text: s, pos: start}, nil
}

func isNumber(s string) bool {
	if strings.HasPrefix(s, "-") {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func isSymbolChar(c rune) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}
	return strings.ContainsRune(`_+-*/\=<>!&%^`, c)
}

func isSpace(c rune) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
