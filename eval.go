package risky

import "github.com/pgavlin/risky/syntax"

// Control reports whether a session should keep reading input after an
// evaluation step.
type Control int

const (
	// Continue means the session should read the next line.
	Continue Control = iota
	// Terminate means exit was called during the step.
	Terminate
)

func (c Control) String() string {
	if c == Terminate {
		return "terminate"
	}
	return "continue"
}

// Session is one interactive session: a single environment that lives for as
// long as the session does. A Session is not safe for concurrent use.
type Session struct {
	env *Env
}

// NewSession returns a session with a fresh environment.
func NewSession() *Session {
	return &Session{env: NewEnv()}
}

// Env returns the session's environment.
func (s *Session) Env() *Env {
	return s.env
}

// Eval reduces v to normal form. The session takes ownership of v.
func (s *Session) Eval(v Value) (Value, Control) {
	ev := evaluator{env: s.env}
	result := ev.eval(v)
	if ev.exit {
		return result, Terminate
	}
	return result, Continue
}

// EvalString parses, reads and evaluates one line of source. A syntax error
// is returned as an error and nothing is evaluated.
func (s *Session) EvalString(src string) (Value, Control, error) {
	n, err := syntax.ParseString("<stdin>", src)
	if err != nil {
		return nil, Continue, err
	}
	v, ctl := s.Eval(Read(n))
	return v, ctl, nil
}

// Eval reduces v to normal form in e, ignoring any request to exit.
func (e *Env) Eval(v Value) Value {
	ev := evaluator{env: e}
	return ev.eval(v)
}

// evaluator carries the state of a single evaluation step.
type evaluator struct {
	env  *Env
	exit bool
}

func (ev *evaluator) eval(v Value) Value {
	switch v := v.(type) {
	case Symbol:
		return ev.env.Get(v)
	case *SExpr:
		return ev.evalSExpr(v)
	default:
		// Number, Error, Builtin and QExpr are already in normal form.
		return v
	}
}

func (ev *evaluator) evalSExpr(s *SExpr) Value {
	for i := range s.c {
		s.c[i] = ev.eval(s.c[i])
	}

	for i := range s.c {
		if _, ok := s.c[i].(*Error); ok {
			return s.Take(i)
		}
	}

	switch s.Len() {
	case 0:
		return s
	case 1:
		if _, ok := s.Cell(0).(Builtin); !ok {
			return s.Take(0)
		}
	}

	f := s.Pop(0)
	b, ok := f.(Builtin)
	if !ok {
		return &Error{Kind: NotAFunction, Got: TypeName(f)}
	}
	return ev.apply(b, s)
}

// apply invokes b on args. args are already evaluated and are owned by the
// builtin.
func (ev *evaluator) apply(b Builtin, args *SExpr) Value {
	switch b {
	case BuiltinList:
		return builtinList(args)
	case BuiltinHead:
		return builtinHead(args)
	case BuiltinTail:
		return builtinTail(args)
	case BuiltinEval:
		return ev.builtinEval(args)
	case BuiltinJoin:
		return builtinJoin(args)
	case BuiltinDef:
		return ev.builtinDef(args)
	case BuiltinAdd, BuiltinSub, BuiltinMul, BuiltinDiv, BuiltinMod, BuiltinPow, BuiltinMin, BuiltinMax:
		return builtinArith(b, args)
	case BuiltinExit:
		ev.exit = true
		return builtinExit(args)
	default:
		return &Error{Kind: UnknownFunction}
	}
}
