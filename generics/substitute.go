package generics

import (
	"golang.org/x/exp/slices"

	"github.com/NickyBoy89/jgenerics/jtype"
)

// Substitute applies the bindings through every level of a type. Placeholders
// with no binding erase to the top type. The input is never modified
func (e *Engine) Substitute(b Bindings, t *jtype.TypeRef) *jtype.TypeRef {
	return e.substitute(b, t, nil)
}

// SubstituteExcluding is Substitute, except that placeholders named in the
// exclusions are left as they are. This is what keeps a self-referential bound
// such as `T extends Comparable<T>` from being re-entered
func (e *Engine) SubstituteExcluding(b Bindings, t *jtype.TypeRef, exclusions ...string) *jtype.TypeRef {
	return e.substitute(b, t, exclusions)
}

func (e *Engine) substitute(b Bindings, t *jtype.TypeRef, exclusions []string) *jtype.TypeRef {
	if t == nil {
		return nil
	}
	if t.IsArray() {
		return e.substitute(b, t.Elem, exclusions).MakeArray()
	}

	if t.Placeholder {
		if slices.Contains(exclusions, t.Name) {
			return t.Plain()
		}
		bound, ok := b[t.Name]
		if !ok || bound == nil {
			return e.top()
		}
		if bound.Placeholder && !bound.IsArray() && len(bound.Args) == 0 {
			// Still unresolved, hand back a fresh placeholder instead of looping
			return jtype.Var(bound.Name, bound.Bounds...)
		}
		t = bound
	}

	if len(t.Args) == 0 {
		return t.Plain()
	}

	args := make([]jtype.TypeArg, len(t.Args))
	for i, arg := range t.Args {
		args[i] = e.substituteArg(b, arg, exclusions)
	}
	return t.WithArgs(args...)
}

func (e *Engine) substituteArg(b Bindings, arg jtype.TypeArg, exclusions []string) jtype.TypeArg {
	switch a := arg.(type) {
	case *jtype.Placeholder:
		if slices.Contains(exclusions, a.Name) {
			return a
		}
		if bound, ok := b[a.Name]; ok && bound != nil {
			return jtype.ArgOf(bound)
		}
		return &jtype.Concrete{Type: e.top()}
	case *jtype.Wildcard:
		fixed := &jtype.Wildcard{}
		if a.Lower != nil {
			fixed.Lower = e.substitute(b, a.Lower, exclusions)
		}
		if len(a.Upper) > 0 {
			fixed.Upper = make([]*jtype.TypeRef, len(a.Upper))
			for i, upper := range a.Upper {
				fixed.Upper[i] = e.substitute(b, upper, exclusions)
			}
		}
		return fixed
	case *jtype.Concrete:
		return jtype.ArgOf(e.substitute(b, a.Type, exclusions))
	}
	return arg
}

// SubstituteMethod substitutes the bindings through a method's return type and
// parameter types. Names, defaults, type parameters, and exceptions are carried
// over unchanged
func (e *Engine) SubstituteMethod(b Bindings, m *jtype.Method) *jtype.Method {
	params := make([]*jtype.Parameter, len(m.Parameters))
	for i, param := range m.Parameters {
		params[i] = &jtype.Parameter{
			Name:    param.Name,
			Type:    e.Substitute(b, param.Type),
			Default: param.Default,
		}
	}
	return &jtype.Method{
		Name:           m.Name,
		TypeParameters: m.TypeParameters,
		ReturnType:     e.Substitute(b, m.ReturnType),
		Parameters:     params,
		Exceptions:     m.Exceptions,
		Static:         m.Static,
		Owner:          m.Owner,
	}
}

// ApplyBindingsToDeclaredPlaceholders turns a declaration's formal parameter
// list into the argument list seen from the bindings. A bound parameter becomes
// its concrete type, an unbound one keeps its name with its bounds substituted.
// Unbound parameters whose bounds do not change are returned as the same
// object. Every entry of params must be a placeholder
func (e *Engine) ApplyBindingsToDeclaredPlaceholders(b Bindings, params []jtype.TypeArg) ([]jtype.TypeArg, error) {
	var unbound []string
	for _, param := range params {
		p, ok := param.(*jtype.Placeholder)
		if !ok {
			return nil, preconditionf("given generics type %s must be a placeholder", param)
		}
		if _, bound := b[p.Name]; !bound {
			unbound = append(unbound, p.Name)
		}
	}
	if len(params) == 0 || len(b) == 0 {
		return params, nil
	}

	newTypes := make([]jtype.TypeArg, len(params))
	for i, param := range params {
		p := param.(*jtype.Placeholder)
		if fromSpec, ok := b[p.Name]; ok && fromSpec != nil {
			newTypes[i] = &jtype.Concrete{Type: fromSpec}
			continue
		}

		changed := false
		bounds := make([]*jtype.TypeRef, len(p.Bounds))
		for j, bound := range p.Bounds {
			bounds[j] = e.substitute(b, bound, unbound)
			changed = changed || !jtype.Equal(bound, bounds[j])
		}
		if changed {
			newTypes[i] = &jtype.Placeholder{Name: p.Name, Bounds: bounds}
		} else {
			newTypes[i] = p
		}
	}
	return newTypes, nil
}
