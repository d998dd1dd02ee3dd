package jtype

// Equal reports whether two references are structurally equal: same name,
// array depth, placeholder-ness and arguments. Declaration back-links are not
// compared
func Equal(a, b *TypeRef) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.IsArray() || b.IsArray() {
		return a.IsArray() && b.IsArray() && Equal(a.Elem, b.Elem)
	}
	if a.Name != b.Name || a.Placeholder != b.Placeholder {
		return false
	}
	return equalTypes(a.Bounds, b.Bounds) && equalArgs(a.Args, b.Args)
}

// EqualArg reports whether two type arguments are structurally equal
func EqualArg(a, b TypeArg) bool {
	switch a := a.(type) {
	case *Concrete:
		o, ok := b.(*Concrete)
		return ok && Equal(a.Type, o.Type)
	case *Placeholder:
		o, ok := b.(*Placeholder)
		return ok && a.Name == o.Name && equalTypes(a.Bounds, o.Bounds)
	case *Wildcard:
		o, ok := b.(*Wildcard)
		return ok && Equal(a.Lower, o.Lower) && equalTypes(a.Upper, o.Upper)
	}
	return a == nil && b == nil
}

func equalArgs(a, b []TypeArg) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !EqualArg(a[i], b[i]) {
			return false
		}
	}
	return true
}

func equalTypes(a, b []*TypeRef) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
