package risky

// Equal returns true if a and b are structurally equal: the same variant with
// equal payloads, and for containers, pairwise equal children.
func Equal(a, b Value) bool {
	switch a := a.(type) {
	case *SExpr:
		b, ok := b.(*SExpr)
		return ok && equalCells(&a.cells, &b.cells)
	case *QExpr:
		b, ok := b.(*QExpr)
		return ok && equalCells(&a.cells, &b.cells)
	case *Error:
		b, ok := b.(*Error)
		return ok && *a == *b
	default:
		return a == b
	}
}

func equalCells(a, b *cells) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := range a.c {
		if !Equal(a.c[i], b.c[i]) {
			return false
		}
	}
	return true
}
