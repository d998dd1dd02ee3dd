package main

import (
	"fmt"

	"github.com/NickyBoy89/jgenerics/astutil"
	"github.com/NickyBoy89/jgenerics/jtype"
	"github.com/NickyBoy89/jgenerics/nodeutil"
	"github.com/NickyBoy89/jgenerics/parsing"
)

// ParseTypeExpr parses a standalone Java type expression, such as
// `Map<String, List<Integer>>`. The grammar only accepts types in a
// declaration, so the expression is parsed as the type of a field
func ParseTypeExpr(expr string) (*jtype.TypeRef, error) {
	file := parsing.SourceFile{
		Name:   "<type expression>",
		Source: []byte(fmt.Sprintf("class TypeExpression { %s value; }", expr)),
	}
	if err := file.ParseAST(); err != nil {
		return nil, err
	}
	if file.Ast.HasError() {
		return nil, fmt.Errorf("invalid type expression %q", expr)
	}

	field := nodeutil.FindFirst(file.Ast, "field_declaration")
	if field == nil {
		return nil, fmt.Errorf("invalid type expression %q", expr)
	}
	typeNode := field.ChildByFieldName("type")
	if !astutil.IsJavaTypeNode(typeNode) {
		return nil, fmt.Errorf("%q is not a type", expr)
	}
	return astutil.ParseType(typeNode, file.Source), nil
}
