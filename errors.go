package risky

import (
	"fmt"
	"io"
)

// ErrorKind classifies an evaluation error.
type ErrorKind int

const (
	UnboundSymbol ErrorKind = iota
	BadNumber
	ArgCount
	ArgType
	EmptyList
	DivisionByZero
	ModuloByZero
	UnknownFunction
	NotAFunction
	DefNonSymbol
	DefCountMismatch
)

var errorKindNames = [...]string{
	UnboundSymbol:    "UnboundSymbol",
	BadNumber:        "BadNumber",
	ArgCount:         "ArgCount",
	ArgType:          "ArgType",
	EmptyList:        "EmptyList",
	DivisionByZero:   "DivisionByZero",
	ModuloByZero:     "ModuloByZero",
	UnknownFunction:  "UnknownFunction",
	NotAFunction:     "NotAFunction",
	DefNonSymbol:     "DefNonSymbol",
	DefCountMismatch: "DefCountMismatch",
}

func (k ErrorKind) String() string {
	if int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is an evaluation error. Errors are ordinary values: they are returned
// from evaluation like any other result and short-circuit the reduction of
// the S-expression that contains them.
//
// Only the fields relevant to Kind are set. The message is built from them
// when the error is printed.
type Error struct {
	Kind ErrorKind

	Func  string // builtin that rejected its arguments
	Name  string // unbound symbol name or bad literal text
	Index int    // offending argument position
	Got   string // actual type name
	Want  string // expected type name
	Count int    // actual argument count
	Need  int    // expected argument count

	AtLeast bool // Need is a lower bound
}

func (e *Error) Error() string {
	switch e.Kind {
	case UnboundSymbol:
		return fmt.Sprintf("Unbound Symbol '%s'", e.Name)
	case BadNumber:
		return fmt.Sprintf("invalid number '%s'", e.Name)
	case ArgCount:
		if e.AtLeast {
			return fmt.Sprintf("Function '%s' passed incorrect number of arguments. Got %d, Expected at least %d.", e.Func, e.Count, e.Need)
		}
		return fmt.Sprintf("Function '%s' passed incorrect number of arguments. Got %d, Expected %d.", e.Func, e.Count, e.Need)
	case ArgType:
		return fmt.Sprintf("Function '%s' passed incorrect type for argument %d. Got %s, Expected %s.", e.Func, e.Index, e.Got, e.Want)
	case EmptyList:
		return fmt.Sprintf("Function '%s' passed {}", e.Func)
	case DivisionByZero:
		return "Division By Zero"
	case ModuloByZero:
		return "Modulo By Zero"
	case UnknownFunction:
		return "Unknown Function"
	case NotAFunction:
		return fmt.Sprintf("S-Expression starts with incorrect type. Got %s, Expected Function.", e.Got)
	case DefNonSymbol:
		return fmt.Sprintf("Function 'def' cannot define non-symbol. Got %s, Expected Symbol.", e.Got)
	case DefCountMismatch:
		return fmt.Sprintf("Function 'def' passed incorrect number of values for symbols. Got %d, Expected %d.", e.Count, e.Need)
	default:
		return e.Kind.String()
	}
}

func (e *Error) write(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Error: %s", e.Error())
	return err
}

func errUnbound(name Symbol) *Error {
	return &Error{Kind: UnboundSymbol, Name: string(name)}
}

func errBadNumber(text string) *Error {
	return &Error{Kind: BadNumber, Name: text}
}

func errArgCount(fn Builtin, got, want int) *Error {
	return &Error{Kind: ArgCount, Func: fn.String(), Count: got, Need: want}
}

// errArgCountAtLeast reports a builtin that needs at least min arguments.
func errArgCountAtLeast(fn Builtin, got, min int) *Error {
	return &Error{Kind: ArgCount, Func: fn.String(), Count: got, Need: min, AtLeast: true}
}

func errArgType(fn Builtin, index int, got Value, want string) *Error {
	return &Error{Kind: ArgType, Func: fn.String(), Index: index, Got: TypeName(got), Want: want}
}

func errEmptyList(fn Builtin) *Error {
	return &Error{Kind: EmptyList, Func: fn.String()}
}
