package astutil

import (
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/NickyBoy89/jgenerics/jtype"
	"github.com/NickyBoy89/jgenerics/nodeutil"
)

// IsJavaTypeNode returns true for any node that spells out a Java type
func IsJavaTypeNode(node *sitter.Node) bool {
	if node == nil {
		return false
	}
	switch node.Type() {
	case "integral_type", "floating_point_type", "void_type", "boolean_type",
		"generic_type", "array_type", "type_identifier", "scoped_type_identifier",
		"annotated_type":
		return true
	default:
		return false
	}
}

// ParseType parses a Java type node into a type reference.
// This version does not handle type parameters - use ParseTypeWithTypeParams for generic contexts.
func ParseType(node *sitter.Node, source []byte) *jtype.TypeRef {
	return ParseTypeWithTypeParams(node, source, nil)
}

// ParseTypeWithTypeParams parses a Java type node into a type reference.
// typeParams is a list of type parameter names in scope, which are parsed as
// placeholders instead of named types
func ParseTypeWithTypeParams(node *sitter.Node, source []byte, typeParams []string) *jtype.TypeRef {
	isTypeParam := func(name string) bool {
		for _, tp := range typeParams {
			if tp == name {
				return true
			}
		}
		return false
	}

	switch node.Type() {
	case "integral_type", "floating_point_type", "boolean_type", "void_type":
		return jtype.Named(node.Content(source))
	case "type_identifier":
		typeName := node.Content(source)
		if isTypeParam(typeName) {
			return jtype.Var(typeName)
		}
		return jtype.Named(typeName)
	case "scoped_type_identifier":
		// Only the simple name is kept, ex: java.util.List -> List
		return jtype.Named(simpleName(node.Content(source)))
	case "generic_type":
		// A generic type is any type that is of the form GenericType<T>
		base := ParseTypeWithTypeParams(node.NamedChild(0), source, typeParams)

		var args []jtype.TypeArg
		for _, child := range nodeutil.NamedChildrenOf(node) {
			if child.Type() == "type_arguments" {
				for _, argNode := range nodeutil.NamedChildrenOf(child) {
					if arg := ParseTypeArgument(argNode, source, typeParams); arg != nil {
						args = append(args, arg)
					}
				}
				break
			}
		}
		return jtype.Named(base.Name, args...)
	case "array_type":
		elem := ParseTypeWithTypeParams(node.ChildByFieldName("element"), source, typeParams)
		dims := strings.Count(node.ChildByFieldName("dimensions").Content(source), "[")
		for i := 0; i < dims; i++ {
			elem = elem.MakeArray()
		}
		return elem
	case "annotated_type":
		// Annotations come first, the type itself is the last named child
		return ParseTypeWithTypeParams(node.NamedChild(int(node.NamedChildCount())-1), source, typeParams)
	}
	panic(fmt.Errorf("unknown type to convert: %s", node.Type()))
}

// ParseTypeArgument parses a single entry of a `type_arguments` list, which
// may be a wildcard. Annotations and other non-type nodes give nil
func ParseTypeArgument(node *sitter.Node, source []byte, typeParams []string) jtype.TypeArg {
	if node.Type() == "wildcard" {
		return parseWildcard(node, source, typeParams)
	}
	if !IsJavaTypeNode(node) {
		return nil
	}
	return jtype.ArgOf(ParseTypeWithTypeParams(node, source, typeParams))
}

// parseWildcard handles `?`, `? extends X`, and `? super X`
func parseWildcard(node *sitter.Node, source []byte, typeParams []string) *jtype.Wildcard {
	var lower bool
	wildcard := &jtype.Wildcard{}
	for _, child := range nodeutil.ChildrenOf(node) {
		switch {
		case child.Type() == "super":
			lower = true
		case IsJavaTypeNode(child):
			bound := ParseTypeWithTypeParams(child, source, typeParams)
			if lower {
				wildcard.Lower = bound
			} else {
				wildcard.Upper = append(wildcard.Upper, bound)
			}
		}
	}
	return wildcard
}

func simpleName(qualified string) string {
	if ind := strings.LastIndex(qualified, "."); ind != -1 {
		return qualified[ind+1:]
	}
	return qualified
}
