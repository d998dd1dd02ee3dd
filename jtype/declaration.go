package jtype

// Declaration is the canonical, unparameterized definition of a class or
// interface. Its supertypes are expressed in terms of its own formal
// parameters, and are never pre-substituted
type Declaration struct {
	// The simple name of the type
	Name string
	// Whether the type is declared as an interface
	Interface bool
	// Whether the type is a primitive, such as `int`, which has no supertypes
	Primitive bool
	// Formal type parameters, in declaration order
	TypeParameters []*Placeholder
	// The direct superclass, nil if none was declared
	Superclass *TypeRef
	// The direct interfaces (`implements`, or `extends` for an interface)
	Interfaces []*TypeRef
	// Methods declared directly on the type
	Methods []*Method
}

// Class starts a class declaration with the given formal parameters
func Class(name string, params ...*Placeholder) *Declaration {
	return &Declaration{Name: name, TypeParameters: params}
}

// Interface starts an interface declaration with the given formal parameters
func Interface(name string, params ...*Placeholder) *Declaration {
	return &Declaration{Name: name, Interface: true, TypeParameters: params}
}

// Extends sets the direct superclass of a class, or adds a super-interface to
// an interface
func (d *Declaration) Extends(super *TypeRef) *Declaration {
	if d.Interface {
		d.Interfaces = append(d.Interfaces, super)
	} else {
		d.Superclass = super
	}
	return d
}

// Implements adds direct interfaces to the declaration
func (d *Declaration) Implements(interfaces ...*TypeRef) *Declaration {
	d.Interfaces = append(d.Interfaces, interfaces...)
	return d
}

// Declare adds methods to the declaration, taking ownership of them
func (d *Declaration) Declare(methods ...*Method) *Declaration {
	for _, m := range methods {
		m.Owner = d
	}
	d.Methods = append(d.Methods, methods...)
	return d
}

// FormalNames returns the names of the declaration's formal parameters
func (d *Declaration) FormalNames() []string {
	if d == nil {
		return nil
	}
	return PlaceholderNames(d.TypeParameters)
}

// IsTypeParameter checks if a given name is a formal parameter of this type
func (d *Declaration) IsTypeParameter(name string) bool {
	for _, tp := range d.TypeParameters {
		if tp.Name == name {
			return true
		}
	}
	return false
}

// Ref returns the declaration's own generic shape, such as `Map<K, V>` for
// `interface Map<K, V>`
func (d *Declaration) Ref() *TypeRef {
	return Ref(d, PlaceholderArgs(d.TypeParameters)...)
}

// Raw returns a reference to the declaration without any type arguments
func (d *Declaration) Raw() *TypeRef {
	return Ref(d)
}

// Supertypes returns the direct superclass (if any) followed by the direct
// interfaces
func (d *Declaration) Supertypes() []*TypeRef {
	supers := make([]*TypeRef, 0, len(d.Interfaces)+1)
	if d.Superclass != nil {
		supers = append(supers, d.Superclass)
	}
	return append(supers, d.Interfaces...)
}

// Finder searches through a set of methods
type Finder interface {
	By(criteria func(m *Method) bool) []*Method
	ByName(name string) []*Method
}

// FindMethod searches through the methods declared directly on the type
func (d *Declaration) FindMethod() Finder {
	dm := declMethodFinder(*d)
	return &dm
}

type declMethodFinder Declaration

func (dm *declMethodFinder) By(criteria func(m *Method) bool) []*Method {
	results := []*Method{}
	for _, method := range dm.Methods {
		if criteria(method) {
			results = append(results, method)
		}
	}
	return results
}

func (dm *declMethodFinder) ByName(name string) []*Method {
	return dm.By(func(m *Method) bool {
		return m.Name == name
	})
}

// Method is the signature of a single method
type Method struct {
	Name string
	// Type parameters declared on the method itself (e.g. `<R>`)
	TypeParameters []*Placeholder
	ReturnType     *TypeRef
	Parameters     []*Parameter
	// Declared exceptions, from the `throws` clause
	Exceptions []*TypeRef
	Static     bool
	// The declaration the method belongs to
	Owner *Declaration
}

// Parameter is a single named method parameter
type Parameter struct {
	Name string
	Type *TypeRef
	// Source text of a default value, for languages that have them
	Default string
}

// ParameterByName returns a parameter given its name
func (m *Method) ParameterByName(name string) *Parameter {
	for _, param := range m.Parameters {
		if param.Name == name {
			return param
		}
	}
	return nil
}

// ParameterTypes returns the types of all the parameters, in order
func (m *Method) ParameterTypes() []*TypeRef {
	types := make([]*TypeRef, len(m.Parameters))
	for ind, param := range m.Parameters {
		types[ind] = param.Type
	}
	return types
}

// TypeParameterNames returns the names of the method's own type parameters
func (m *Method) TypeParameterNames() []string {
	if m == nil {
		return nil
	}
	return PlaceholderNames(m.TypeParameters)
}
