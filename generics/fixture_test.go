package generics

import (
	"testing"

	"github.com/NickyBoy89/jgenerics/jtype"
	"github.com/NickyBoy89/jgenerics/typegraph"
)

type fixture struct {
	engine   *Engine
	graph    *typegraph.Graph
	registry *jtype.Registry
}

// newFixture builds an engine over the library types plus
//
//	class Pair<K, V>
//	class StringIntPair extends Pair<String, Integer>
//	class A<V, W, X>
//	class B<T, U> extends A<T, U, String>
//	class C<T> extends B<T, Long>
//	class Box<T extends Number> { <R extends Comparable<T>> R pick(T value); <T> T shadow(T value) }
func newFixture(t *testing.T) *fixture {
	t.Helper()
	registry := jtype.NewRegistry()
	graph := typegraph.New(registry)

	pair := jtype.Class("Pair", jtype.Param("K"), jtype.Param("V"))
	stringIntPair := jtype.Class("StringIntPair").Extends(jtype.Instantiate(pair, registry.Type("String"), registry.Type("Integer")))

	a := jtype.Class("A", jtype.Param("V"), jtype.Param("W"), jtype.Param("X"))
	bt, bu := jtype.Param("T"), jtype.Param("U")
	b := jtype.Class("B", bt, bu).Extends(jtype.Instantiate(a, bt.Ref(), bu.Ref(), registry.Type("String")))
	ct := jtype.Param("T")
	c := jtype.Class("C", ct).Extends(jtype.Instantiate(b, ct.Ref(), registry.Type("Long")))

	boxT := jtype.Param("T", registry.Type("Number"))
	pickR := jtype.Param("R", registry.Type("Comparable", boxT.Ref()))
	shadowT := jtype.Param("T")
	box := jtype.Class("Box", boxT).Declare(&jtype.Method{
		Name:           "pick",
		TypeParameters: []*jtype.Placeholder{pickR},
		ReturnType:     pickR.Ref(),
		Parameters:     []*jtype.Parameter{{Name: "value", Type: boxT.Ref()}},
	}, &jtype.Method{
		Name:           "shadow",
		TypeParameters: []*jtype.Placeholder{shadowT},
		ReturnType:     shadowT.Ref(),
		Parameters:     []*jtype.Parameter{{Name: "value", Type: shadowT.Ref()}},
	})

	if err := graph.Add(pair, stringIntPair, a, b, c, box); err != nil {
		t.Fatalf("Failed to build type graph: %v", err)
	}
	return &fixture{
		engine:   New(graph, registry),
		graph:    graph,
		registry: registry,
	}
}

// ref builds a reference to a declaration in the fixture's graph
func (f *fixture) ref(t *testing.T, name string, args ...*jtype.TypeRef) *jtype.TypeRef {
	t.Helper()
	decl := f.graph.Lookup(name)
	if decl == nil {
		t.Fatalf("Type %s is not declared", name)
	}
	return jtype.Instantiate(decl, args...)
}

// shape returns a declaration's own generic shape, such as Pair<K, V>
func (f *fixture) shape(t *testing.T, name string) *jtype.TypeRef {
	t.Helper()
	decl := f.graph.Lookup(name)
	if decl == nil {
		t.Fatalf("Type %s is not declared", name)
	}
	return decl.Ref()
}

func (f *fixture) method(t *testing.T, owner, name string) *jtype.Method {
	t.Helper()
	methods := f.graph.Lookup(owner).FindMethod().ByName(name)
	if len(methods) != 1 {
		t.Fatalf("Expected one method %s.%s, got %d", owner, name, len(methods))
	}
	return methods[0]
}

// brokenGraph claims every type is a subtype of every other, without ever
// supplying a hop
type brokenGraph struct {
	decls map[string]*jtype.Declaration
}

func (g *brokenGraph) DeclarationOf(ref *jtype.TypeRef) *jtype.Declaration {
	if ref == nil || ref.Placeholder || ref.IsArray() {
		return nil
	}
	return g.decls[ref.Name]
}

func (g *brokenGraph) IsSubtypeOf(sub, super *jtype.Declaration) bool {
	return sub != super
}

func (g *brokenGraph) NextHopToward(from, toward *jtype.Declaration) *jtype.TypeRef {
	return nil
}
