package jtype

// TypeRef represents a single reference to a named type, as it appears at a
// use site or inside a declaration header
type TypeRef struct {
	// The simple name of the referenced type (e.g. "List", "T")
	Name string
	// Elem is the component type when the reference is an array, and nil otherwise
	Elem *TypeRef
	// Args are the explicit type arguments, empty for non-generic and raw uses
	Args []TypeArg
	// Placeholder marks a reference that stands for a single formal type
	// parameter, such as the `T` in `T value`
	Placeholder bool
	// Bounds of the formal parameter a placeholder reference stands for
	Bounds []*TypeRef
	// Decl links back to the canonical declaration of the named type, it may be
	// nil, in which case the type graph resolves the declaration by name
	Decl *Declaration
}

// Named creates an unparameterized reference to a type by its simple name,
// leaving the declaration to be resolved by the type graph
func Named(name string, args ...TypeArg) *TypeRef {
	return &TypeRef{Name: name, Args: args}
}

// Ref creates a reference to a declaration with the given type arguments
func Ref(decl *Declaration, args ...TypeArg) *TypeRef {
	return &TypeRef{Name: decl.Name, Decl: decl, Args: args}
}

// Instantiate creates a reference to a declaration, wrapping each of the given
// references as a type argument
func Instantiate(decl *Declaration, args ...*TypeRef) *TypeRef {
	wrapped := make([]TypeArg, len(args))
	for i, arg := range args {
		wrapped[i] = ArgOf(arg)
	}
	return Ref(decl, wrapped...)
}

// Var creates a placeholder reference for the formal parameter `name`
func Var(name string, bounds ...*TypeRef) *TypeRef {
	return &TypeRef{Name: name, Placeholder: true, Bounds: bounds}
}

// ArrayOf wraps the given type as a single-dimensional array
func ArrayOf(elem *TypeRef) *TypeRef {
	return &TypeRef{Elem: elem}
}

// IsArray returns true if the type is an array of some component type
func (t *TypeRef) IsArray() bool {
	return t != nil && t.Elem != nil
}

// UsesGenerics returns true if the reference carries explicit type arguments
func (t *TypeRef) UsesGenerics() bool {
	return t != nil && len(t.Args) > 0
}

// Component returns the innermost non-array type, and the number of array
// dimensions wrapped around it
func (t *TypeRef) Component() (*TypeRef, int) {
	var dims int
	for t.IsArray() {
		t = t.Elem
		dims++
	}
	return t, dims
}

// MakeArray wraps the type in one more array dimension
func (t *TypeRef) MakeArray() *TypeRef {
	return ArrayOf(t)
}

// Plain returns a clean reference to the same type, with any type arguments
// discarded
func (t *TypeRef) Plain() *TypeRef {
	if t.IsArray() {
		return t.Elem.Plain().MakeArray()
	}
	return &TypeRef{
		Name:        t.Name,
		Placeholder: t.Placeholder,
		Bounds:      t.Bounds,
		Decl:        t.Decl,
	}
}

// WithArgs returns a clean reference to the same type carrying the given
// arguments. Array references are re-wrapped around their parameterized
// component type
func (t *TypeRef) WithArgs(args ...TypeArg) *TypeRef {
	if t.IsArray() {
		return t.Elem.WithArgs(args...).MakeArray()
	}
	plain := t.Plain()
	if len(args) > 0 {
		plain.Args = append([]TypeArg(nil), args...)
	}
	return plain
}

// ArgOf wraps a type reference as a type argument. Placeholder references
// become placeholder arguments, everything else is concrete
func ArgOf(t *TypeRef) TypeArg {
	if t.Placeholder && !t.IsArray() && len(t.Args) == 0 {
		return &Placeholder{Name: t.Name, Bounds: t.Bounds}
	}
	return &Concrete{Type: t}
}
