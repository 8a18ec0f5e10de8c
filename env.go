package risky

// binding
type binding struct {
	name  Symbol
	value Value
}

// Env is the flat table of symbol bindings visible to evaluation. Bindings
// are kept in definition order and looked up by linear scan.
//
// An Env owns its values: Put stores a copy and Get returns a copy, so a
// value under evaluation never aliases a bound value.
type Env struct {
	bindings []binding
}

// NewEnv returns an environment with every builtin bound to its name.
func NewEnv() *Env {
	e := &Env{bindings: make([]binding, 0, len(builtinNames))}
	for _, b := range builtins {
		e.Put(Symbol(b.String()), b)
	}
	return e
}

func (e *Env) find(name Symbol) int {
	for i := range e.bindings {
		if e.bindings[i].name == name {
			return i
		}
	}
	return -1
}

// Bound returns true if name has a binding.
func (e *Env) Bound(name Symbol) bool {
	return e.find(name) != -1
}

// Get returns a copy of the value bound to name, or an UnboundSymbol error.
func (e *Env) Get(name Symbol) Value {
	if i := e.find(name); i != -1 {
		return Copy(e.bindings[i].value)
	}
	return errUnbound(name)
}

// Put binds name to a copy of v, replacing any existing binding.
func (e *Env) Put(name Symbol, v Value) {
	v = Copy(v)
	if i := e.find(name); i != -1 {
		e.bindings[i].value = v
		return
	}
	e.bindings = append(e.bindings, binding{name: name, value: v})
}

// Names returns the bound names in definition order.
func (e *Env) Names() []Symbol {
	names := make([]Symbol, len(e.bindings))
	for i, b := range e.bindings {
		names[i] = b.name
	}
	return names
}
