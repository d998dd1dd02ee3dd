// Package typegraph holds declarations in memory and answers the subtype
// queries the generics engine needs.
package typegraph

import (
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/NickyBoy89/jgenerics/jtype"
)

// Graph is a set of declarations, keyed by their simple names
type Graph struct {
	mu       sync.RWMutex
	decls    map[string]*jtype.Declaration
	registry *jtype.Registry
}

// New creates a graph that already contains every declaration of the registry
func New(registry *jtype.Registry) *Graph {
	g := &Graph{
		decls:    make(map[string]*jtype.Declaration),
		registry: registry,
	}
	for _, decl := range registry.Declarations() {
		g.decls[decl.Name] = decl
	}
	return g
}

// Add registers declarations with the graph. A name that is already taken, or
// a type that ends up extending itself, is an error, and nothing from the call
// is registered in that case
func (g *Graph) Add(decls ...*jtype.Declaration) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	pending := make(map[string]*jtype.Declaration, len(decls))
	for _, decl := range decls {
		if _, exists := g.decls[decl.Name]; exists {
			return fmt.Errorf("type %s is already declared", decl.Name)
		}
		if _, exists := pending[decl.Name]; exists {
			return fmt.Errorf("type %s is declared twice", decl.Name)
		}
		pending[decl.Name] = decl
	}

	resolve := func(ref *jtype.TypeRef) *jtype.Declaration {
		if ref == nil || ref.Placeholder || ref.IsArray() {
			return nil
		}
		if ref.Decl != nil {
			return ref.Decl
		}
		if decl, ok := pending[ref.Name]; ok {
			return decl
		}
		return g.decls[ref.Name]
	}
	// The graph was acyclic before the call, so any new cycle runs through one
	// of the added declarations
	for _, decl := range decls {
		if inherits(decl, decl, resolve, make(map[*jtype.Declaration]struct{})) {
			return fmt.Errorf("cyclic inheritance involving %s", decl.Name)
		}
	}

	for _, decl := range decls {
		g.decls[decl.Name] = decl
	}
	return nil
}

// inherits reports whether from declares goal among its supertypes, at any
// depth
func inherits(from, goal *jtype.Declaration, resolve func(*jtype.TypeRef) *jtype.Declaration, visited map[*jtype.Declaration]struct{}) bool {
	for _, super := range from.Supertypes() {
		decl := resolve(super)
		if decl == nil {
			continue
		}
		if decl == goal {
			return true
		}
		if _, seen := visited[decl]; seen {
			continue
		}
		visited[decl] = struct{}{}
		if inherits(decl, goal, resolve, visited) {
			return true
		}
	}
	return false
}

// Lookup returns a declaration by its simple name, or nil
func (g *Graph) Lookup(name string) *jtype.Declaration {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.decls[name]
}

// Registry returns the registry the graph was seeded from
func (g *Graph) Registry() *jtype.Registry {
	return g.registry
}

// DeclarationOf resolves the declaration of a reference. Placeholders and
// arrays have none
func (g *Graph) DeclarationOf(ref *jtype.TypeRef) *jtype.Declaration {
	if ref == nil || ref.Placeholder || ref.IsArray() {
		return nil
	}
	if ref.Decl != nil {
		return ref.Decl
	}
	return g.Lookup(ref.Name)
}

func (g *Graph) isObject(decl *jtype.Declaration) bool {
	return decl != nil && decl == g.Lookup(jtype.ObjectName)
}

// supertypes returns the declared direct supertypes of a declaration,
// including the implicit `Object` superclass of classes that declare none
func (g *Graph) supertypes(decl *jtype.Declaration) []*jtype.TypeRef {
	supers := decl.Supertypes()
	if decl.Superclass == nil && !decl.Interface && !decl.Primitive && !g.isObject(decl) {
		if object := g.Lookup(jtype.ObjectName); object != nil {
			supers = append(supers, object.Raw())
		}
	}
	return supers
}

// IsSubtypeOf reports whether sub extends or implements super, directly or
// through any number of hops. A type is not its own subtype
func (g *Graph) IsSubtypeOf(sub, super *jtype.Declaration) bool {
	if sub == nil || super == nil || sub == super || sub.Primitive {
		return false
	}
	if g.isObject(super) {
		return true
	}
	return g.reaches(sub, super, map[*jtype.Declaration]struct{}{sub: {}})
}

func (g *Graph) reaches(from, goal *jtype.Declaration, visited map[*jtype.Declaration]struct{}) bool {
	for _, super := range g.supertypes(from) {
		decl := g.DeclarationOf(super)
		if decl == nil {
			continue
		}
		if decl == goal {
			return true
		}
		if _, seen := visited[decl]; seen {
			continue
		}
		visited[decl] = struct{}{}
		if g.reaches(decl, goal, visited) {
			return true
		}
	}
	return false
}

// NextHopToward returns the supertype reference, exactly as declared by from,
// that leads toward the goal. For an interface goal the interfaces are tried
// before the superclass, otherwise the superclass comes first
func (g *Graph) NextHopToward(from, toward *jtype.Declaration) *jtype.TypeRef {
	if from == nil || toward == nil {
		return nil
	}

	candidates := g.supertypes(from)
	if toward.Interface && from.Superclass != nil {
		candidates = append(append([]*jtype.TypeRef(nil), from.Interfaces...), from.Superclass)
	}

	for _, candidate := range candidates {
		decl := g.DeclarationOf(candidate)
		if decl == toward || g.IsSubtypeOf(decl, toward) {
			return candidate
		}
	}
	// Interfaces reach Object without declaring it
	if g.isObject(toward) && !from.Primitive {
		return toward.Raw()
	}

	log.WithFields(log.Fields{
		"from":   from.Name,
		"toward": toward.Name,
	}).Debug("No supertype leads toward goal")
	return nil
}
