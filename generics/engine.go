// Package generics computes the instantiated form of generic types, supertypes
// and method signatures as they appear from a parameterized use site.
//
// Every operation is a pure function of its arguments and of the type graph it
// was given: binding maps are built per call and results are freshly built
// references, so an Engine may be shared between goroutines as long as its
// Graph is safe for concurrent reads.
package generics

import (
	"github.com/NickyBoy89/jgenerics/jtype"
)

// Graph is the view of the declaration graph the engine walks. It is consulted,
// never modified
type Graph interface {
	// DeclarationOf returns the canonical declaration of a referenced type, or
	// nil for placeholders, arrays, and unknown types
	DeclarationOf(ref *jtype.TypeRef) *jtype.Declaration
	// IsSubtypeOf reports whether sub transitively and properly extends or
	// implements super
	IsSubtypeOf(sub, super *jtype.Declaration) bool
	// NextHopToward returns the direct supertype of from, as declared by from,
	// on a path leading to toward. It returns nil if there is none
	NextHopToward(from, toward *jtype.Declaration) *jtype.TypeRef
}

// Engine resolves generic types against a single type graph
type Engine struct {
	graph    Graph
	registry *jtype.Registry
}

// New creates an engine over a type graph. The registry supplies the top type
// that unresolved placeholders erase to
func New(graph Graph, registry *jtype.Registry) *Engine {
	return &Engine{graph: graph, registry: registry}
}

// top returns the type that anything unresolvable falls back to
func (e *Engine) top() *jtype.TypeRef {
	return e.registry.Object()
}

// Wildcard builds a `?` type argument with the given upper bounds, for callers
// that construct synthetic types to check other types against
func Wildcard(upper ...*jtype.TypeRef) *jtype.Wildcard {
	return jtype.Extends(upper...)
}

// sameDeclaration reports whether two references name the same declared type,
// regardless of their arguments
func (e *Engine) sameDeclaration(a, b *jtype.TypeRef) bool {
	if a.IsArray() || b.IsArray() || a.Placeholder || b.Placeholder {
		return false
	}
	da, db := e.graph.DeclarationOf(a), e.graph.DeclarationOf(b)
	if da == nil || db == nil {
		return a.Name == b.Name
	}
	return da == db
}
