package jtype

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// ObjectName is the name of the top type every reference type extends
const ObjectName = "Object"

var primitiveNames = []string{"boolean", "byte", "short", "char", "int", "long", "float", "double", "void"}

// Registry holds the canonical declarations of primitive and well-known
// library types. A registry is created by the caller and handed to the type
// graph and the engine, nothing about it is shared between registries
type Registry struct {
	decls map[string]*Declaration
	order []*Declaration
}

// NewRegistry creates a registry populated with the primitives, `Object`, and
// the core `java.lang`/`java.util` types used by most programs
func NewRegistry() *Registry {
	r := &Registry{decls: make(map[string]*Declaration)}

	for _, name := range primitiveNames {
		r.define(&Declaration{Name: name, Primitive: true})
	}

	r.define(Class(ObjectName))

	t := Param("T")
	comparable := r.define(Interface("Comparable", t).Declare(&Method{
		Name:       "compareTo",
		ReturnType: Named("int"),
		Parameters: []*Parameter{{Name: "o", Type: t.Ref()}},
	}))
	charSequence := r.define(Interface("CharSequence"))

	t = Param("T")
	iterable := r.define(Interface("Iterable", t))

	e := Param("E")
	collection := r.define(Interface("Collection", e).Extends(Instantiate(iterable, e.Ref())).Declare(&Method{
		Name:       "add",
		ReturnType: Named("boolean"),
		Parameters: []*Parameter{{Name: "e", Type: e.Ref()}},
	}))
	e = Param("E")
	list := r.define(Interface("List", e).Extends(Instantiate(collection, e.Ref())).Declare(&Method{
		Name:       "get",
		ReturnType: e.Ref(),
		Parameters: []*Parameter{{Name: "index", Type: Named("int")}},
	}))
	e = Param("E")
	set := r.define(Interface("Set", e).Extends(Instantiate(collection, e.Ref())))
	e = Param("E")
	r.define(Class("ArrayList", e).Implements(Instantiate(list, e.Ref())))
	e = Param("E")
	r.define(Class("HashSet", e).Implements(Instantiate(set, e.Ref())))

	k, v := Param("K"), Param("V")
	mapDecl := r.define(Interface("Map", k, v).Declare(&Method{
		Name:       "get",
		ReturnType: v.Ref(),
		Parameters: []*Parameter{{Name: "key", Type: Named(ObjectName)}},
	}, &Method{
		Name:       "put",
		ReturnType: v.Ref(),
		Parameters: []*Parameter{{Name: "key", Type: k.Ref()}, {Name: "value", Type: v.Ref()}},
	}))
	k, v = Param("K"), Param("V")
	r.define(Class("HashMap", k, v).Implements(Instantiate(mapDecl, k.Ref(), v.Ref())))

	// <V> Function<T, V> andThen(Function<? super R, ? extends V> after)
	t, res := Param("T"), Param("R")
	function := Interface("Function", t, res)
	after := Param("V")
	function.Declare(&Method{
		Name:       "apply",
		ReturnType: res.Ref(),
		Parameters: []*Parameter{{Name: "t", Type: t.Ref()}},
	}, &Method{
		Name:           "andThen",
		TypeParameters: []*Placeholder{after},
		ReturnType:     Ref(function, t, after),
		Parameters: []*Parameter{{
			Name: "after",
			Type: Ref(function, Super(res.Ref()), Extends(after.Ref())),
		}},
	})
	r.define(function)

	number := r.define(Class("Number"))
	for _, boxed := range []string{"Byte", "Short", "Integer", "Long", "Float", "Double"} {
		decl := Class(boxed)
		decl.Extends(Ref(number)).Implements(Instantiate(comparable, Ref(decl)))
		r.define(decl)
	}
	for _, boxed := range []string{"Boolean", "Character", "String"} {
		decl := Class(boxed)
		decl.Implements(Instantiate(comparable, Ref(decl)))
		if boxed == "String" {
			decl.Implements(Ref(charSequence))
		}
		r.define(decl)
	}

	// Enum<E extends Enum<E>> implements Comparable<E>
	e = &Placeholder{Name: "E"}
	enum := Class("Enum", e)
	e.Bounds = []*TypeRef{Instantiate(enum, Var("E"))}
	enum.Implements(Instantiate(comparable, e.Ref()))
	r.define(enum)

	return r
}

func (r *Registry) define(decl *Declaration) *Declaration {
	if _, exists := r.decls[decl.Name]; exists {
		panic(fmt.Errorf("duplicate registry declaration: %s", decl.Name))
	}
	r.decls[decl.Name] = decl
	r.order = append(r.order, decl)
	return decl
}

// Object returns a reference to the top type, which unresolved placeholders
// erase to
func (r *Registry) Object() *TypeRef {
	return Ref(r.decls[ObjectName])
}

// Lookup returns the declaration registered under the given name, or nil
func (r *Registry) Lookup(name string) *Declaration {
	return r.decls[name]
}

// Type returns a reference to a registered type with the given arguments. It
// panics if the type is not registered
func (r *Registry) Type(name string, args ...*TypeRef) *TypeRef {
	decl := r.decls[name]
	if decl == nil {
		panic(fmt.Errorf("type %s is not registered", name))
	}
	return Instantiate(decl, args...)
}

// Declarations returns every registered declaration, in registration order
func (r *Registry) Declarations() []*Declaration {
	return append([]*Declaration(nil), r.order...)
}

// IsPrimitive returns true if the name is one of the Java primitive types
func IsPrimitive(name string) bool {
	return slices.Contains(primitiveNames, name)
}
