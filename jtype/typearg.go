package jtype

// TypeArg is a single slot in a type argument or type parameter list. It is
// one of *Concrete, *Placeholder, or *Wildcard
type TypeArg interface {
	typeArg()
	String() string
}

// Concrete is a fully resolved type argument, such as the `String` in
// `List<String>`
type Concrete struct {
	Type *TypeRef
}

// Placeholder stands for a formal type parameter that has not been
// substituted, along with the bounds it was declared with
// (e.g. `T extends Number & Comparable<T>`)
type Placeholder struct {
	Name   string
	Bounds []*TypeRef
}

// Wildcard is a `?` argument, optionally bounded from above (`? extends X`) or
// from below (`? super Y`)
type Wildcard struct {
	Lower *TypeRef
	Upper []*TypeRef
}

func (*Concrete) typeArg()    {}
func (*Placeholder) typeArg() {}
func (*Wildcard) typeArg()    {}

// Param declares a formal type parameter
func Param(name string, bounds ...*TypeRef) *Placeholder {
	return &Placeholder{Name: name, Bounds: bounds}
}

// Ref returns a placeholder reference standing for this parameter
func (p *Placeholder) Ref() *TypeRef {
	return Var(p.Name, p.Bounds...)
}

// Extends creates an upper-bounded wildcard, `? extends X`
func Extends(upper ...*TypeRef) *Wildcard {
	return &Wildcard{Upper: upper}
}

// Super creates a lower-bounded wildcard, `? super X`
func Super(lower *TypeRef) *Wildcard {
	return &Wildcard{Lower: lower}
}

// Unbounded creates the `?` wildcard
func Unbounded() *Wildcard {
	return &Wildcard{}
}

// ArgType returns the type standing in a type argument slot. Wildcards have no
// single type, so they are captured as their first upper bound, or nil if they
// have none
func ArgType(arg TypeArg) *TypeRef {
	switch a := arg.(type) {
	case *Concrete:
		return a.Type
	case *Placeholder:
		return Var(a.Name, a.Bounds...)
	case *Wildcard:
		if len(a.Upper) > 0 {
			return a.Upper[0]
		}
	}
	return nil
}

// PlaceholderNames returns the names of the given formal parameters
func PlaceholderNames(params []*Placeholder) []string {
	if len(params) == 0 {
		return nil
	}
	names := make([]string, 0, len(params))
	for _, p := range params {
		names = append(names, p.Name)
	}
	return names
}

// PlaceholderArgs widens a formal parameter list into a type argument list
func PlaceholderArgs(params []*Placeholder) []TypeArg {
	if len(params) == 0 {
		return nil
	}
	args := make([]TypeArg, len(params))
	for i, p := range params {
		args[i] = p
	}
	return args
}
