package risky

func builtinList(args *SExpr) Value {
	return args.Quote()
}

func builtinHead(args *SExpr) Value {
	q, err := singleList(BuiltinHead, args)
	if err != nil {
		return err
	}
	if q.Len() == 0 {
		return errEmptyList(BuiltinHead)
	}
	for q.Len() > 1 {
		q.Pop(1)
	}
	return q
}

func builtinTail(args *SExpr) Value {
	q, err := singleList(BuiltinTail, args)
	if err != nil {
		return err
	}
	if q.Len() == 0 {
		return errEmptyList(BuiltinTail)
	}
	q.Pop(0)
	return q
}

func (ev *evaluator) builtinEval(args *SExpr) Value {
	q, err := singleList(BuiltinEval, args)
	if err != nil {
		return err
	}
	return ev.eval(q.Unquote())
}

func builtinJoin(args *SExpr) Value {
	for i := 0; i < args.Len(); i++ {
		if _, ok := args.Cell(i).(*QExpr); !ok {
			return errArgType(BuiltinJoin, i, args.Cell(i), "Q-Expression")
		}
	}

	if args.Len() == 0 {
		return NewQExpr()
	}

	x := args.Pop(0).(*QExpr)
	for args.Len() > 0 {
		x.Join(args.Pop(0).(*QExpr))
	}
	return x
}

func (ev *evaluator) builtinDef(args *SExpr) Value {
	if args.Len() == 0 {
		return errArgCountAtLeast(BuiltinDef, 0, 1)
	}

	syms, ok := args.Cell(0).(*QExpr)
	if !ok {
		return errArgType(BuiltinDef, 0, args.Cell(0), "Q-Expression")
	}
	for i := 0; i < syms.Len(); i++ {
		if _, ok := syms.Cell(i).(Symbol); !ok {
			return &Error{Kind: DefNonSymbol, Got: TypeName(syms.Cell(i))}
		}
	}
	if syms.Len() != args.Len()-1 {
		return &Error{Kind: DefCountMismatch, Count: args.Len() - 1, Need: syms.Len()}
	}

	for i := 0; i < syms.Len(); i++ {
		ev.env.Put(syms.Cell(i).(Symbol), args.Cell(i+1))
	}
	return NewSExpr()
}

func builtinExit(args *SExpr) Value {
	if args.Len() == 1 {
		return args.Take(0)
	}
	return args
}

// singleList checks that args holds exactly one Q-expression and takes it.
func singleList(fn Builtin, args *SExpr) (*QExpr, *Error) {
	if args.Len() != 1 {
		return nil, errArgCount(fn, args.Len(), 1)
	}
	q, ok := args.Cell(0).(*QExpr)
	if !ok {
		return nil, errArgType(fn, 0, args.Cell(0), "Q-Expression")
	}
	args.Take(0)
	return q, nil
}
