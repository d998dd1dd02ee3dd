package generics

import (
	"strings"

	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/NickyBoy89/jgenerics/jtype"
)

// Bindings maps the names of formal type parameters to the types they stand
// for, within the scope of one declaration (or of a method nested in it)
type Bindings map[string]*jtype.TypeRef

// Clone returns an independent copy of the bindings, never nil
func (b Bindings) Clone() Bindings {
	if b == nil {
		return Bindings{}
	}
	return maps.Clone(b)
}

// String renders the bindings sorted by name, e.g. `{K=String, V=Integer}`
func (b Bindings) String() string {
	names := make([]string, 0, len(b))
	for name := range b {
		names = append(names, name)
	}
	slices.Sort(names)

	entries := make([]string, len(names))
	for i, name := range names {
		entries[i] = name + "=" + b[name].String()
	}
	return "{" + strings.Join(entries, ", ") + "}"
}

// CreateGenericsSpec builds the bindings for a use site's declaration. The use
// site's arguments are first resolved through the outer bindings, then keyed by
// the declaration's formal parameter names. For example, given
//
//	class A<V, W, X> {}
//	class B<T extends Number> extends A<T, Long, String> {}
//
// and outer bindings {T=Number}, the use site A<T, Long, String> yields
// {V=Number, W=Long, X=String}.
//
// A use site without arguments, or whose declaration cannot be found, returns
// a copy of the outer bindings. The outer bindings are never modified
func (e *Engine) CreateGenericsSpec(useSite *jtype.TypeRef, outer Bindings) (Bindings, error) {
	ret := outer.Clone()
	if !useSite.UsesGenerics() {
		return ret, nil
	}

	decl := e.graph.DeclarationOf(useSite)
	if decl == nil || len(decl.TypeParameters) == 0 {
		log.WithFields(log.Fields{
			"useSite": useSite.String(),
		}).Debug("No formal parameters for use site, keeping outer bindings")
		return ret, nil
	}
	if len(decl.TypeParameters) != len(useSite.Args) {
		return nil, preconditionf("%s has %d type arguments, but %s declares %d type parameters",
			useSite, len(useSite.Args), decl.Name, len(decl.TypeParameters))
	}

	resolved := make([]*jtype.TypeRef, len(useSite.Args))
	for i, arg := range useSite.Args {
		resolved[i] = e.resolveArg(ret, arg)
	}

	spec := make(Bindings, len(resolved))
	for i, param := range decl.TypeParameters {
		spec[param.Name] = resolved[i]
	}
	return spec, nil
}

// resolveArg resolves a single use-site argument through the bindings
func (e *Engine) resolveArg(b Bindings, arg jtype.TypeArg) *jtype.TypeRef {
	switch a := arg.(type) {
	case *jtype.Placeholder:
		if bound, ok := b[a.Name]; ok {
			return bound
		}
		return e.top()
	case *jtype.Wildcard:
		// Captured as the upper bound, `? super X` and `?` only promise Object
		if len(a.Upper) > 0 {
			return e.substitute(b, a.Upper[0], nil)
		}
		return e.top()
	case *jtype.Concrete:
		return e.substitute(b, a.Type, nil)
	}
	return e.top()
}

// AddMethodGenerics overlays a method's own type parameters on a copy of the
// outer bindings. Each method parameter is bound to a placeholder of its own
// name, shadowing any outer parameter spelled the same, and carrying its
// declared bounds resolved against the outer bindings
func (e *Engine) AddMethodGenerics(m *jtype.Method, outer Bindings) Bindings {
	ret := outer.Clone()
	if m == nil || len(m.TypeParameters) == 0 {
		return ret
	}

	own := m.TypeParameterNames()
	enclosing := outer.Clone()
	for _, name := range own {
		delete(enclosing, name)
	}

	for _, tp := range m.TypeParameters {
		bounds := make([]*jtype.TypeRef, len(tp.Bounds))
		for i, bound := range tp.Bounds {
			bounds[i] = e.substitute(enclosing, bound, own)
		}
		ret[tp.Name] = jtype.Var(tp.Name, bounds...)
	}
	return ret
}

// ExtractPlaceholders maps each formal parameter of the use site's declaration
// to the argument given for it, descending into the arguments themselves. The
// first binding found for a name is kept
func (e *Engine) ExtractPlaceholders(ref *jtype.TypeRef) map[string]jtype.TypeArg {
	ret := make(map[string]jtype.TypeArg)
	e.extractPlaceholders(ref, ret)
	return ret
}

func (e *Engine) extractPlaceholders(ref *jtype.TypeRef, ret map[string]jtype.TypeArg) {
	if ref == nil {
		return
	}
	if ref.IsArray() {
		e.extractPlaceholders(ref.Elem, ret)
		return
	}
	if !ref.UsesGenerics() {
		return
	}

	var formals []jtype.TypeArg
	if decl := e.graph.DeclarationOf(ref); decl != nil && len(decl.TypeParameters) == len(ref.Args) {
		formals = jtype.PlaceholderArgs(decl.TypeParameters)
	} else {
		formals = ref.Args
	}

	for i, formal := range formals {
		p, ok := formal.(*jtype.Placeholder)
		if !ok {
			continue
		}
		if _, seen := ret[p.Name]; seen {
			continue
		}
		value := ref.Args[i]
		ret[p.Name] = value
		switch v := value.(type) {
		case *jtype.Wildcard:
			e.extractPlaceholders(v.Lower, ret)
			for _, upper := range v.Upper {
				e.extractPlaceholders(upper, ret)
			}
		case *jtype.Concrete:
			e.extractPlaceholders(v.Type, ret)
		}
	}
}
