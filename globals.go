package risky

import (
	"fmt"
	"io"
)

// Builtin identifies one of the fixed builtin operations. A Builtin is the
// Function variant of Value.
type Builtin int

const (
	// list manipulation
	BuiltinList Builtin = iota
	BuiltinHead
	BuiltinTail
	BuiltinEval
	BuiltinJoin

	// environment
	BuiltinDef

	// numerics
	BuiltinAdd
	BuiltinSub
	BuiltinMul
	BuiltinDiv
	BuiltinMod
	BuiltinPow
	BuiltinMin
	BuiltinMax

	// session control
	BuiltinExit
)

var builtinNames = [...]string{
	BuiltinList: "list",
	BuiltinHead: "head",
	BuiltinTail: "tail",
	BuiltinEval: "eval",
	BuiltinJoin: "join",

	BuiltinDef: "def",

	BuiltinAdd: "+",
	BuiltinSub: "-",
	BuiltinMul: "*",
	BuiltinDiv: "/",
	BuiltinMod: "%",
	BuiltinPow: "^",
	BuiltinMin: "min",
	BuiltinMax: "max",

	BuiltinExit: "exit",
}

// builtins lists every Builtin in binding order.
var builtins = func() []Builtin {
	bs := make([]Builtin, len(builtinNames))
	for i := range builtinNames {
		bs[i] = Builtin(i)
	}
	return bs
}()

func (b Builtin) String() string {
	if b >= 0 && int(b) < len(builtinNames) {
		return builtinNames[b]
	}
	return fmt.Sprintf("Builtin(%d)", int(b))
}

func (b Builtin) write(w io.Writer) error {
	_, err := w.Write([]byte("<builtin>"))
	return err
}

// LookupBuiltin returns the builtin with the given name.
func LookupBuiltin(name string) (Builtin, bool) {
	for i, n := range builtinNames {
		if n == name {
			return Builtin(i), true
		}
	}
	return 0, false
}
