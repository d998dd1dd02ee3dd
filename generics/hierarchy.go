package generics

import (
	log "github.com/sirupsen/logrus"

	"github.com/NickyBoy89/jgenerics/jtype"
)

// Parameterize returns the form target takes when reached from useSite: for a
// use site `ArrayList<String>` and the target `Iterable`, this is
// `Iterable<String>`. The hierarchy between the two is walked one hop at a
// time, composing bindings at each level.
//
// If only one of the two is an array, the shapes cannot be matched and target
// is returned unchanged
func (e *Engine) Parameterize(useSite, target *jtype.TypeRef) (*jtype.TypeRef, error) {
	if useSite.IsArray() || target.IsArray() {
		if useSite.IsArray() && target.IsArray() {
			elem, err := e.Parameterize(useSite.Elem, target.Elem)
			if err != nil {
				return nil, err
			}
			return elem.MakeArray(), nil
		}
		return target, nil
	}

	useDecl := e.graph.DeclarationOf(useSite)
	targetDecl := e.graph.DeclarationOf(target)
	if targetDecl == nil {
		log.WithFields(log.Fields{
			"target": target.String(),
		}).Debug("Target has no declaration, substituting it directly")
		b, err := e.CreateGenericsSpec(useSite, nil)
		if err != nil {
			return nil, err
		}
		return e.Substitute(b, target), nil
	}

	if useDecl != nil && useDecl != targetDecl && e.graph.IsSubtypeOf(useDecl, targetDecl) {
		hop := e.graph.NextHopToward(useDecl, targetDecl)
		if hop == nil {
			return nil, &HierarchyError{From: useSite.String(), Toward: targetDecl.Name}
		}
		if e.graph.DeclarationOf(hop) != targetDecl {
			log.WithFields(log.Fields{
				"useSite": useSite.String(),
				"hop":     hop.String(),
				"target":  targetDecl.Name,
			}).Debug("Walking one level up the hierarchy")

			intermediate, err := e.Parameterize(useSite, hop)
			if err != nil {
				return nil, err
			}
			return e.Parameterize(intermediate, target)
		}
	}

	b, err := e.CreateGenericsSpec(useSite, nil)
	if err != nil {
		return nil, err
	}
	shape := targetDecl.Ref()
	if b, err = e.CreateGenericsSpec(shape, b); err != nil {
		return nil, err
	}
	if err := e.ExtractSuperClassGenerics(useSite, shape, b); err != nil {
		return nil, err
	}
	return e.Substitute(b, shape), nil
}

// ExtractSuperClassGenerics unifies a type with one of its ancestors (or with a
// type at the same level), as declared in terms of placeholders, recording in b
// what each placeholder of toward corresponds to in from. The bindings are
// updated in place, and accumulate across the recursive walk
func (e *Engine) ExtractSuperClassGenerics(from, toward *jtype.TypeRef, b Bindings) error {
	if from == nil || toward == nil || from == toward {
		return nil
	}
	if from.IsArray() && toward.IsArray() {
		return e.ExtractSuperClassGenerics(from.Elem, toward.Elem, b)
	}
	if toward.Placeholder {
		b[toward.Name] = from
		return nil
	}

	if e.sameDeclaration(from, toward) {
		return e.unifyArgs(from.Args, toward.Args, b)
	}

	fromDecl := e.graph.DeclarationOf(from)
	towardDecl := e.graph.DeclarationOf(toward)
	if fromDecl == nil || towardDecl == nil || !e.graph.IsSubtypeOf(fromDecl, towardDecl) {
		// Not an ancestor, so only a structural match is possible
		log.WithFields(log.Fields{
			"from":   from.String(),
			"toward": toward.String(),
		}).Debug("Types are unrelated, matching their arguments structurally")
		return e.unifyArgs(from.Args, toward.Args, b)
	}

	spec, err := e.CreateGenericsSpec(from, nil)
	if err != nil {
		return err
	}
	hop := e.graph.NextHopToward(fromDecl, towardDecl)
	if hop == nil {
		return &HierarchyError{From: from.String(), Toward: toward.String()}
	}
	return e.ExtractSuperClassGenerics(e.Substitute(spec, hop), toward, b)
}

// unifyArgs matches two argument lists position by position. Lists of
// different lengths, or a declaration without arguments, connect nothing
func (e *Engine) unifyArgs(usage, declaration []jtype.TypeArg, b Bindings) error {
	if len(usage) == 0 || len(declaration) == 0 || len(usage) != len(declaration) {
		return nil
	}

	for i, di := range declaration {
		ui := usage[i]
		var err error
		switch d := di.(type) {
		case *jtype.Placeholder:
			if t := e.argType(ui); t != nil {
				b[d.Name] = t
			}
		case *jtype.Wildcard:
			if uw, ok := ui.(*jtype.Wildcard); ok {
				if err = e.ExtractSuperClassGenerics(uw.Lower, d.Lower, b); err == nil {
					err = e.unifyBounds(uw.Upper, d.Upper, b)
				}
			} else {
				cu := e.argType(ui)
				if err = e.ExtractSuperClassGenerics(cu, d.Lower, b); err != nil {
					break
				}
				for _, upper := range d.Upper {
					if err = e.ExtractSuperClassGenerics(cu, upper, b); err != nil {
						break
					}
				}
			}
		case *jtype.Concrete:
			err = e.ExtractSuperClassGenerics(e.argType(ui), d.Type, b)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) unifyBounds(usage, declaration []*jtype.TypeRef, b Bindings) error {
	for i := 0; i < len(usage) && i < len(declaration); i++ {
		if err := e.ExtractSuperClassGenerics(usage[i], declaration[i], b); err != nil {
			return err
		}
	}
	return nil
}

// argType is the single type standing in an argument slot, with bound-less
// wildcards standing for the top type
func (e *Engine) argType(arg jtype.TypeArg) *jtype.TypeRef {
	if t := jtype.ArgType(arg); t != nil {
		return t
	}
	if _, ok := arg.(*jtype.Wildcard); ok {
		return e.top()
	}
	return nil
}

// ParameterizeMethod returns a method's signature as seen from a use site of
// (a subtype of) the type declaring it. Type parameters declared by the method
// itself stay generic
func (e *Engine) ParameterizeMethod(useSite *jtype.TypeRef, m *jtype.Method) (*jtype.Method, error) {
	if m.Owner == nil {
		return nil, preconditionf("method %s does not belong to a declaration", m.Name)
	}
	owner, err := e.Parameterize(useSite, m.Owner.Ref())
	if err != nil {
		return nil, err
	}
	b, err := e.CreateGenericsSpec(owner, nil)
	if err != nil {
		return nil, err
	}
	return e.SubstituteMethod(e.AddMethodGenerics(m, b), m), nil
}
