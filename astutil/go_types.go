package astutil

import (
	"go/ast"

	"github.com/NickyBoy89/jgenerics/jtype"
)

var primitiveGoTypes = map[string]string{
	"int":     "int32",
	"short":   "int16",
	"long":    "int64",
	"char":    "rune",
	"byte":    "byte",
	"float":   "float32",
	"double":  "float64",
	"boolean": "bool",
}

// GoTypeExpr converts a type reference into the Go type expression that would
// represent it. Reference types become pointers, type parameters are kept bare,
// and arrays become slices
func GoTypeExpr(ref *jtype.TypeRef) ast.Expr {
	if ref.IsArray() {
		return &ast.ArrayType{Elt: GoTypeExpr(ref.Elem)}
	}
	if ref.Placeholder {
		return &ast.Ident{Name: ref.Name}
	}
	if goName, ok := primitiveGoTypes[ref.Name]; ok {
		return &ast.Ident{Name: goName}
	}
	switch ref.Name {
	case "void":
		return &ast.Ident{}
	case "String":
		// Special case for strings, because in Go, these are primitive types
		return &ast.Ident{Name: "string"}
	case jtype.ObjectName:
		return &ast.Ident{Name: "any"}
	}

	base := &ast.Ident{Name: ref.Name}
	if len(ref.Args) == 0 {
		return &ast.StarExpr{X: base}
	}

	typeArgs := make([]ast.Expr, len(ref.Args))
	for i, arg := range ref.Args {
		typeArgs[i] = GoTypeArgExpr(arg)
	}

	// The pointer wraps the entire indexed expression: *List[T], not (*List)[T]
	if len(typeArgs) == 1 {
		return &ast.StarExpr{X: &ast.IndexExpr{X: base, Index: typeArgs[0]}}
	}
	return &ast.StarExpr{X: &ast.IndexListExpr{X: base, Indices: typeArgs}}
}

// GoTypeArgExpr converts a single type argument. Go has no wildcards, so an
// upper-bounded wildcard becomes its bound, and any other wildcard becomes `any`
func GoTypeArgExpr(arg jtype.TypeArg) ast.Expr {
	switch a := arg.(type) {
	case *jtype.Concrete:
		return GoTypeExpr(a.Type)
	case *jtype.Placeholder:
		return &ast.Ident{Name: a.Name}
	case *jtype.Wildcard:
		if a.Lower == nil && len(a.Upper) > 0 {
			return GoTypeExpr(a.Upper[0])
		}
	}
	return &ast.Ident{Name: "any"}
}

// GoConstraintExpr converts the bounds of a type parameter into a Go
// constraint. Missing bounds default to the "any" constraint
func GoConstraintExpr(bounds []*jtype.TypeRef) ast.Expr {
	if len(bounds) == 0 {
		return &ast.Ident{Name: "any"}
	}
	if len(bounds) == 1 {
		return GoTypeExpr(bounds[0])
	}

	fields := make([]*ast.Field, len(bounds))
	for i, b := range bounds {
		fields[i] = &ast.Field{Type: GoTypeExpr(b)}
	}
	return &ast.InterfaceType{Methods: &ast.FieldList{List: fields}}
}
