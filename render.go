package main

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/printer"
	"go/token"
	"unicode"

	"github.com/NickyBoy89/jgenerics/astutil"
	"github.com/NickyBoy89/jgenerics/jtype"
)

// Output formats understood by the renderer
const (
	formatJava = "java"
	formatGo   = "go"
)

// ShortName returns the short-name representation of a class's name for use
// as a receiver
// Ex: Test -> tt
func ShortName(longName string) string {
	if len(longName) == 0 {
		return ""
	}
	return string(unicode.ToLower(rune(longName[0]))) + string(unicode.ToLower(rune(longName[len(longName)-1])))
}

// GenFuncDeclWithTypeParams creates a function declaration with type parameters.
// A nil body renders the signature alone
func GenFuncDeclWithTypeParams(name string, typeParams []*jtype.Placeholder, params, results *ast.FieldList, body *ast.BlockStmt) *ast.FuncDecl {
	funcDecl := &ast.FuncDecl{
		Name: &ast.Ident{Name: name},
		Type: &ast.FuncType{
			Params:  params,
			Results: results,
		},
		Body: body,
	}

	// Add type parameters if present
	if len(typeParams) > 0 {
		funcDecl.Type.TypeParams = &ast.FieldList{List: makeTypeParamFields(typeParams)}
	}

	return funcDecl
}

func makeTypeParamFields(typeParams []*jtype.Placeholder) []*ast.Field {
	if len(typeParams) == 0 {
		return nil
	}

	fields := make([]*ast.Field, len(typeParams))
	for i, tp := range typeParams {
		fields[i] = &ast.Field{
			Names: []*ast.Ident{{Name: tp.Name}},
			Type:  astutil.GoConstraintExpr(tp.Bounds),
		}
	}
	return fields
}

// GenMethodDecl renders a method signature as a Go function. Go methods cannot
// declare their own type parameters, so an instance method takes its receiver
// as the first parameter instead
func GenMethodDecl(m *jtype.Method, owner *jtype.TypeRef) *ast.FuncDecl {
	params := &ast.FieldList{}
	if !m.Static && owner != nil {
		params.List = append(params.List, &ast.Field{
			Names: []*ast.Ident{{Name: ShortName(owner.Name)}},
			Type:  astutil.GoTypeExpr(owner),
		})
	}
	for _, param := range m.Parameters {
		params.List = append(params.List, &ast.Field{
			Names: []*ast.Ident{{Name: param.Name}},
			Type:  astutil.GoTypeExpr(param.Type),
		})
	}

	var results *ast.FieldList
	if m.ReturnType != nil && m.ReturnType.Name != "void" {
		results = &ast.FieldList{List: []*ast.Field{{Type: astutil.GoTypeExpr(m.ReturnType)}}}
	}

	return GenFuncDeclWithTypeParams(m.Name, m.TypeParameters, params, results, nil)
}

func printNode(node any) (string, error) {
	var buf bytes.Buffer
	if err := printer.Fprint(&buf, token.NewFileSet(), node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// renderType renders a type in the requested format
func renderType(ref *jtype.TypeRef, format string) (string, error) {
	switch format {
	case formatJava:
		return ref.String(), nil
	case formatGo:
		return printNode(astutil.GoTypeExpr(ref))
	}
	return "", fmt.Errorf("unknown output format %q", format)
}

// renderMethod renders a method signature in the requested format. owner is the
// parameterized type the method was reached through
func renderMethod(m *jtype.Method, owner *jtype.TypeRef, format string) (string, error) {
	switch format {
	case formatJava:
		return m.String(), nil
	case formatGo:
		return printNode(GenMethodDecl(m, owner))
	}
	return "", fmt.Errorf("unknown output format %q", format)
}
