package symbol

import (
	log "github.com/sirupsen/logrus"
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/NickyBoy89/jgenerics/astutil"
	"github.com/NickyBoy89/jgenerics/jtype"
	"github.com/NickyBoy89/jgenerics/nodeutil"
)

func extractTypeParameterBounds(param *sitter.Node, source []byte, inScope []string) []*jtype.TypeRef {
	if param == nil {
		return nil
	}

	// Prefer field-based access when available.
	boundsNode := param.ChildByFieldName("bounds")
	if boundsNode == nil {
		boundsNode = param.ChildByFieldName("bound")
	}

	var boundTypeNodes []*sitter.Node
	var collectFrom func(n *sitter.Node)
	collectFrom = func(n *sitter.Node) {
		if n == nil {
			return
		}
		if astutil.IsJavaTypeNode(n) {
			boundTypeNodes = append(boundTypeNodes, n)
			return
		}
		for _, child := range nodeutil.NamedChildrenOf(n) {
			// If the child is a type node at this level, keep it as a whole bound.
			if astutil.IsJavaTypeNode(child) {
				boundTypeNodes = append(boundTypeNodes, child)
				continue
			}
			// Otherwise recurse; this covers containers like type_bound/type_bounds.
			collectFrom(child)
		}
	}

	if boundsNode != nil {
		collectFrom(boundsNode)
	} else {
		// Fall back to scanning named children after the parameter name.
		// (tree-sitter grammars can differ in whether bounds are exposed via fields).
		for i := 1; i < int(param.NamedChildCount()); i++ {
			collectFrom(param.NamedChild(i))
		}
	}

	if len(boundTypeNodes) == 0 {
		return nil
	}

	// De-duplicate by node range (same node can be reached via recursion).
	seen := make(map[[2]uint32]struct{}, len(boundTypeNodes))
	bounds := make([]*jtype.TypeRef, 0, len(boundTypeNodes))
	for _, n := range boundTypeNodes {
		key := [2]uint32{n.StartByte(), n.EndByte()}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		bounds = append(bounds, astutil.ParseTypeWithTypeParams(n, source, inScope))
	}
	return bounds
}

// extractTypeParameters parses a `type_parameters` list. A bound may mention
// any parameter of the same list, as in `<K extends Comparable<V>, V>`, so
// every name is collected before the bounds are parsed
func extractTypeParameters(node *sitter.Node, source []byte, enclosing []string) []*jtype.Placeholder {
	if node == nil {
		return nil
	}

	var paramNodes []*sitter.Node
	var names []string
	for _, param := range nodeutil.NamedChildrenOf(node) {
		if param.Type() != "type_parameter" {
			continue
		}
		nameNode := param.NamedChild(0)
		if nameNode == nil {
			continue
		}
		// Annotations on a type parameter come before its name
		for nameNode.Type() != "type_identifier" && nameNode.Type() != "identifier" {
			nameNode = nameNode.NextNamedSibling()
			if nameNode == nil {
				break
			}
		}
		if nameNode == nil {
			continue
		}
		paramNodes = append(paramNodes, param)
		names = append(names, nameNode.Content(source))
	}

	inScope := append(append([]string{}, enclosing...), names...)
	params := make([]*jtype.Placeholder, len(paramNodes))
	for i, param := range paramNodes {
		params[i] = jtype.Param(names[i], extractTypeParameterBounds(param, source, inScope)...)
	}
	return params
}

// ParseSymbols generates a symbol table for a single class file.
func ParseSymbols(root *sitter.Node, source []byte) *FileScope {
	var filePackage string

	var topLevelNodes []*sitter.Node

	imports := make(map[string]string)
	for _, node := range nodeutil.NamedChildrenOf(root) {
		switch node.Type() {
		case "package_declaration":
			filePackage = node.NamedChild(0).Content(source)
		case "import_declaration":
			// Wildcard and static imports have no single imported type
			imported := node.NamedChild(0)
			if imported.Type() != "scoped_identifier" || nodeutil.FindFirst(node, "asterisk") != nil {
				continue
			}
			imports[imported.ChildByFieldName("name").Content(source)] = imported.ChildByFieldName("scope").Content(source)
		case "class_declaration", "interface_declaration", "enum_declaration":
			topLevelNodes = append(topLevelNodes, node)
		case "record_declaration", "annotation_type_declaration":
			log.WithFields(log.Fields{
				"kind": node.Type(),
				"name": node.ChildByFieldName("name").Content(source),
			}).Warn("Skipping unsupported declaration")
		}
	}

	classScopes := make([]*ClassScope, 0, len(topLevelNodes))
	for _, decl := range topLevelNodes {
		classScopes = append(classScopes, parseClassScope(decl, source))
	}

	return &FileScope{
		Imports:         imports,
		Package:         filePackage,
		TopLevelClasses: classScopes,
	}
}

func parseClassScope(root *sitter.Node, source []byte) *ClassScope {
	return parseClassScopeWithParentTypeParams(root, source, nil)
}

func hasModifier(node *sitter.Node, modifier string) bool {
	if node.NamedChildCount() == 0 || node.NamedChild(0).Type() != "modifiers" {
		return false
	}
	for _, child := range nodeutil.UnnamedChildrenOf(node.NamedChild(0)) {
		if child.Type() == modifier {
			return true
		}
	}
	return false
}

// typeListOf returns the type nodes listed in a clause such as `implements A, B`
// or `extends A, B`
func typeListOf(clause *sitter.Node) []*sitter.Node {
	if clause == nil {
		return nil
	}
	if list := nodeutil.FindFirst(clause, "type_list"); list != nil {
		clause = list
	}
	var types []*sitter.Node
	for _, child := range nodeutil.NamedChildrenOf(clause) {
		if astutil.IsJavaTypeNode(child) {
			types = append(types, child)
		}
	}
	return types
}

func parseClassScopeWithParentTypeParams(root *sitter.Node, source []byte, parentTypeParams []*jtype.Placeholder) *ClassScope {
	nodeutil.AssertTypeIs(root.ChildByFieldName("name"), "identifier")

	className := root.ChildByFieldName("name").Content(source)
	isInterface := root.Type() == "interface_declaration"
	isEnum := root.Type() == "enum_declaration"

	scope := &ClassScope{
		IsEnum: isEnum,
		// Nested interfaces and enums are implicitly static
		Static: hasModifier(root, "static") || isInterface || isEnum,
	}
	if scope.Static {
		parentTypeParams = nil
	}

	// Extract this class's own type parameters first (e.g., class Foo<T, U>)
	ownTypeParams := extractTypeParameters(root.ChildByFieldName("type_parameters"), source, jtype.PlaceholderNames(parentTypeParams))

	// Merge parent type parameters (for nested classes), applying shadowing:
	// class Outer<T> { class Inner<T> { } } where Inner's T shadows Outer's T.
	scope.TypeParameters = MergeTypeParams(parentTypeParams, ownTypeParams)
	inScope := scope.TypeParameterNames()

	if isInterface {
		scope.Decl = jtype.Interface(className, ownTypeParams...)
	} else {
		scope.Decl = jtype.Class(className, ownTypeParams...)
	}

	if superclass := root.ChildByFieldName("superclass"); superclass != nil {
		scope.Decl.Superclass = astutil.ParseTypeWithTypeParams(superclass.NamedChild(0), source, inScope)
	}
	if isEnum {
		// enum E is shorthand for E extends Enum<E>
		scope.Decl.Superclass = jtype.Named("Enum", jtype.ArgOf(jtype.Named(className)))
	}

	var interfacesClause *sitter.Node
	if isInterface {
		for _, child := range nodeutil.NamedChildrenOf(root) {
			if child.Type() == "extends_interfaces" {
				interfacesClause = child
			}
		}
	} else {
		interfacesClause = root.ChildByFieldName("interfaces")
	}
	for _, typeNode := range typeListOf(interfacesClause) {
		scope.Decl.Interfaces = append(scope.Decl.Interfaces, astutil.ParseTypeWithTypeParams(typeNode, source, inScope))
	}

	// Parse the body of the class (or enum)

	for _, node := range nodeutil.NamedChildrenOf(root.ChildByFieldName("body")) {
		switch node.Type() {
		case "enum_body_declarations":
			// Parse the methods inside the enum
			for _, declNode := range nodeutil.NamedChildrenOf(node) {
				parseClassMember(scope, declNode, source)
			}
		default:
			parseClassMember(scope, node, source)
		}
	}

	log.WithFields(log.Fields{
		"declaration": scope.Decl.String(),
		"methods":     len(scope.Decl.Methods),
		"nested":      len(scope.Subclasses),
	}).Debug("Parsed declaration")

	return scope
}

// parseClassMember parses a single class member (method or nested class).
// Fields and constructors carry no type-level information and are skipped
func parseClassMember(scope *ClassScope, node *sitter.Node, source []byte) {
	switch node.Type() {
	case "method_declaration":
		scope.Decl.Declare(parseMethod(scope, node, source))
	case "class_declaration", "interface_declaration", "enum_declaration":
		other := parseClassScopeWithParentTypeParams(node, source, scope.TypeParameters)
		scope.Subclasses = append(scope.Subclasses, other)
	}
}

func parseMethod(scope *ClassScope, node *sitter.Node, source []byte) *jtype.Method {
	nodeutil.AssertTypeIs(node.ChildByFieldName("name"), "identifier")

	isStatic := hasModifier(node, "static")

	// Static methods cannot see the type parameters of their class
	visible := scope.TypeParameters
	if isStatic {
		visible = nil
	}

	methodTypeParams := extractTypeParameters(node.ChildByFieldName("type_parameters"), source, jtype.PlaceholderNames(visible))
	combinedTypeParamNames := jtype.PlaceholderNames(MergeTypeParams(visible, methodTypeParams))

	method := &jtype.Method{
		Name:           node.ChildByFieldName("name").Content(source),
		TypeParameters: methodTypeParams,
		ReturnType:     astutil.ParseTypeWithTypeParams(node.ChildByFieldName("type"), source, combinedTypeParamNames),
		Static:         isStatic,
	}

	// Parse the parameters

	for _, parameter := range nodeutil.NamedChildrenOf(node.ChildByFieldName("parameters")) {
		var paramName string
		var paramType *jtype.TypeRef

		switch parameter.Type() {
		case "formal_parameter":
			paramName = parameter.ChildByFieldName("name").Content(source)
			paramType = astutil.ParseTypeWithTypeParams(parameter.ChildByFieldName("type"), source, combinedTypeParamNames)
			// C-style array declarations, such as `String args[]`
			if dims := parameter.ChildByFieldName("dimensions"); dims != nil {
				for i := 0; i < countDimensions(dims, source); i++ {
					paramType = paramType.MakeArray()
				}
			}
		case "spread_parameter":
			// If this is a spread parameter, then it will be in the format:
			// (modifiers)? (type) (variable_declarator name: (name))
			for _, child := range nodeutil.NamedChildrenOf(parameter) {
				switch {
				case astutil.IsJavaTypeNode(child) && paramType == nil:
					paramType = astutil.ParseTypeWithTypeParams(child, source, combinedTypeParamNames).MakeArray()
				case child.Type() == "variable_declarator":
					paramName = child.ChildByFieldName("name").Content(source)
				}
			}
		default:
			// Receiver parameters such as `Foo this` are not real parameters
			continue
		}

		method.Parameters = append(method.Parameters, &jtype.Parameter{
			Name: paramName,
			Type: paramType,
		})
	}

	for _, child := range nodeutil.NamedChildrenOf(node) {
		if child.Type() != "throws" {
			continue
		}
		for _, exception := range nodeutil.NamedChildrenOf(child) {
			if astutil.IsJavaTypeNode(exception) {
				method.Exceptions = append(method.Exceptions, astutil.ParseTypeWithTypeParams(exception, source, combinedTypeParamNames))
			}
		}
	}

	return method
}

func countDimensions(dims *sitter.Node, source []byte) int {
	var count int
	for _, c := range dims.Content(source) {
		if c == '[' {
			count++
		}
	}
	return count
}
