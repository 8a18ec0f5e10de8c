package risky

// builtinArith folds args from left to right under op, seeded with the first
// argument. All arguments must be numbers.
//
// Integer overflow wraps. Division and remainder truncate toward zero.
func builtinArith(op Builtin, args *SExpr) Value {
	if args.Len() == 0 {
		return errArgCountAtLeast(op, 0, 1)
	}
	for i := 0; i < args.Len(); i++ {
		if _, ok := args.Cell(i).(Number); !ok {
			return errArgType(op, i, args.Cell(i), "Number")
		}
	}

	x := args.Pop(0).(Number)
	if op == BuiltinSub && args.Len() == 0 {
		return -x
	}

	for args.Len() > 0 {
		y := args.Pop(0).(Number)
		switch op {
		case BuiltinAdd:
			x += y
		case BuiltinSub:
			x -= y
		case BuiltinMul:
			x *= y
		case BuiltinDiv:
			if y == 0 {
				return &Error{Kind: DivisionByZero}
			}
			x /= y
		case BuiltinMod:
			if y == 0 {
				return &Error{Kind: ModuloByZero}
			}
			x %= y
		case BuiltinPow:
			x = pow(x, y)
		case BuiltinMin:
			if y < x {
				x = y
			}
		case BuiltinMax:
			if y > x {
				x = y
			}
		}
	}
	return x
}

// pow returns x raised to the power y by repeated squaring. A negative
// exponent leaves x unchanged.
func pow(x, y Number) Number {
	if y < 0 {
		return x
	}
	r := Number(1)
	for ; y > 0; y >>= 1 {
		if y&1 != 0 {
			r *= x
		}
		x *= x
	}
	return r
}
