// Package nodeutil contains small helpers for walking tree-sitter nodes
package nodeutil

import (
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
)

// AssertTypeIs panics if the node is not of the expected type
func AssertTypeIs(node *sitter.Node, expectedType string) {
	if node == nil {
		panic(fmt.Errorf("expected node of type %s, got nil", expectedType))
	}
	if node.Type() != expectedType {
		panic(fmt.Errorf("mismatched types: expected %s, got %s", expectedType, node.Type()))
	}
}

// NamedChildrenOf returns the named children of a node, or nothing for a nil
// node
func NamedChildrenOf(node *sitter.Node) []*sitter.Node {
	if node == nil {
		return nil
	}
	count := int(node.NamedChildCount())
	children := make([]*sitter.Node, 0, count)
	for i := 0; i < count; i++ {
		children = append(children, node.NamedChild(i))
	}
	return children
}

// UnnamedChildrenOf returns the anonymous children of a node, such as keywords
// and punctuation
func UnnamedChildrenOf(node *sitter.Node) []*sitter.Node {
	if node == nil {
		return nil
	}
	var children []*sitter.Node
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if !child.IsNamed() {
			children = append(children, child)
		}
	}
	return children
}

// ChildrenOf returns every child of a node, named or not
func ChildrenOf(node *sitter.Node) []*sitter.Node {
	if node == nil {
		return nil
	}
	count := int(node.ChildCount())
	children := make([]*sitter.Node, 0, count)
	for i := 0; i < count; i++ {
		children = append(children, node.Child(i))
	}
	return children
}

// FindFirst searches depth-first for the first node of the given type
func FindFirst(node *sitter.Node, nodeType string) *sitter.Node {
	if node == nil {
		return nil
	}
	if node.Type() == nodeType {
		return node
	}
	for _, child := range ChildrenOf(node) {
		if found := FindFirst(child, nodeType); found != nil {
			return found
		}
	}
	return nil
}
