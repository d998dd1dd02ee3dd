package symbol

import "github.com/NickyBoy89/jgenerics/jtype"

// ClassScope represents a single declared class, interface, or enum, and the
// types nested in it
type ClassScope struct {
	// The declaration extracted from the class's header and method signatures
	Decl *jtype.Declaration
	// Every class that is nested within the base class
	Subclasses []*ClassScope
	// Type parameters visible inside the class body: the class's own, followed
	// by those of enclosing classes that are not shadowed
	TypeParameters []*jtype.Placeholder
	// Whether this class is an enum
	IsEnum bool
	// Whether this class is nested as static, and so cannot see the enclosing
	// class's type parameters
	Static bool
}

// IsTypeParameter checks if a given name is a type parameter visible in this
// class
func (cs *ClassScope) IsTypeParameter(name string) bool {
	for _, tp := range cs.TypeParameters {
		if tp.Name == name {
			return true
		}
	}
	return false
}

// TypeParameterNames returns the names of every type parameter visible in the
// class
func (cs *ClassScope) TypeParameterNames() []string {
	if cs == nil {
		return nil
	}
	return jtype.PlaceholderNames(cs.TypeParameters)
}

// FindClass searches through a class and its nested classes, and returns the
// declaration of the found class, or nil if none was found
func (cs *ClassScope) FindClass(name string) *jtype.Declaration {
	if scope := cs.FindClassScope(name); scope != nil {
		return scope.Decl
	}
	return nil
}

// FindClassScope searches for the class scope (not just its declaration) by
// name
func (cs *ClassScope) FindClassScope(name string) *ClassScope {
	if cs.Decl.Name == name {
		return cs
	}
	for _, subclass := range cs.Subclasses {
		if scope := subclass.FindClassScope(name); scope != nil {
			return scope
		}
	}
	return nil
}

// Declarations returns the class's declaration followed by those of all its
// nested classes, depth-first
func (cs *ClassScope) Declarations() []*jtype.Declaration {
	decls := []*jtype.Declaration{cs.Decl}
	for _, subclass := range cs.Subclasses {
		decls = append(decls, subclass.Declarations()...)
	}
	return decls
}
