package astutil

import (
	"context"
	"testing"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"

	"github.com/NickyBoy89/jgenerics/jtype"
)

// parseJavaType parses a Java source file and returns the root of its syntax tree
func parseJavaType(t *testing.T, source string) *sitter.Node {
	t.Helper()
	parser := sitter.NewParser()
	parser.SetLanguage(java.GetLanguage())
	tree, err := parser.ParseCtx(context.Background(), nil, []byte(source))
	if err != nil {
		t.Fatalf("Failed to parse source: %v", err)
	}
	return tree.RootNode()
}

// findNode recursively searches for a node of a given type
func findNode(node *sitter.Node, typeName string) *sitter.Node {
	if node.Type() == typeName {
		return node
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		found := findNode(node.Child(i), typeName)
		if found != nil {
			return found
		}
	}
	return nil
}

// fieldType parses `class C { <typ> field; }` and returns the field's type node
func fieldType(t *testing.T, typ string) (*sitter.Node, []byte) {
	t.Helper()
	source := "class C { " + typ + " field; }"
	root := parseJavaType(t, source)
	field := findNode(root, "field_declaration")
	if field == nil {
		t.Fatalf("Could not find field_declaration in %q", source)
	}
	return field.ChildByFieldName("type"), []byte(source)
}

func TestParseTypeWithTypeParams_TypeIdentifier(t *testing.T) {
	tests := []struct {
		name            string
		source          string
		typeParams      []string
		wantPlaceholder bool
		wantName        string
	}{
		{
			name:     "type_identifier not in typeParams is a named type",
			source:   "SomeClass",
			wantName: "SomeClass",
		},
		{
			name:     "type_identifier T without typeParams is a named type",
			source:   "T",
			wantName: "T",
		},
		{
			name:            "type_identifier T with matching typeParam is a placeholder",
			source:          "T",
			typeParams:      []string{"T"},
			wantPlaceholder: true,
			wantName:        "T",
		},
		{
			name:            "type_identifier V with multiple typeParams matches correctly",
			source:          "V",
			typeParams:      []string{"K", "V"},
			wantPlaceholder: true,
			wantName:        "V",
		},
		{
			name:       "type_identifier X not in typeParams list is a named type",
			source:     "X",
			typeParams: []string{"T", "U"},
			wantName:   "X",
		},
		{
			name:     "primitives keep their Java spelling",
			source:   "int",
			wantName: "int",
		},
		{
			name:     "scoped types keep their simple name",
			source:   "java.util.List",
			wantName: "List",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, source := fieldType(t, tt.source)
			result := ParseTypeWithTypeParams(node, source, tt.typeParams)

			if result.Name != tt.wantName {
				t.Errorf("Expected name '%s', got '%s'", tt.wantName, result.Name)
			}
			if result.Placeholder != tt.wantPlaceholder {
				t.Errorf("Expected placeholder=%v, got %v", tt.wantPlaceholder, result.Placeholder)
			}
		})
	}
}

func TestParseTypeWithTypeParams_Composite(t *testing.T) {
	tests := []struct {
		name       string
		source     string
		typeParams []string
		want       string
	}{
		{"generic", "List<String>", nil, "List<String>"},
		{"nested generic", "Map<String, List<Integer>>", nil, "Map<String, List<Integer>>"},
		{"array", "int[]", nil, "int[]"},
		{"multi-dimensional array", "String[][]", nil, "String[][]"},
		{"array of generic", "List<T>[]", []string{"T"}, "List<T>[]"},
		{"unbounded wildcard", "List<?>", nil, "List<?>"},
		{"upper wildcard", "List<? extends Number>", nil, "List<? extends Number>"},
		{"lower wildcard", "Comparable<? super T>", []string{"T"}, "Comparable<? super T>"},
		{"scoped generic", "java.util.Map<K, V>", []string{"K", "V"}, "Map<K, V>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, source := fieldType(t, tt.source)
			result := ParseTypeWithTypeParams(node, source, tt.typeParams)
			if got := result.String(); got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestParseTypeArgumentKinds(t *testing.T) {
	node, source := fieldType(t, "Map<T, ? super String>")
	result := ParseTypeWithTypeParams(node, source, []string{"T"})

	if len(result.Args) != 2 {
		t.Fatalf("Expected 2 type arguments, got %d", len(result.Args))
	}
	if p, ok := result.Args[0].(*jtype.Placeholder); !ok || p.Name != "T" {
		t.Errorf("Expected placeholder T, got %#v", result.Args[0])
	}
	w, ok := result.Args[1].(*jtype.Wildcard)
	if !ok {
		t.Fatalf("Expected wildcard, got %T", result.Args[1])
	}
	if w.Lower == nil || w.Lower.Name != "String" || len(w.Upper) != 0 {
		t.Errorf("Expected `? super String`, got %s", w)
	}
}

func TestIsJavaTypeNode(t *testing.T) {
	if IsJavaTypeNode(nil) {
		t.Error("Expected nil not to be a type node")
	}
	node, _ := fieldType(t, "List<String>")
	if !IsJavaTypeNode(node) {
		t.Errorf("Expected %s to be a type node", node.Type())
	}
	if IsJavaTypeNode(node.Parent()) {
		t.Errorf("Expected %s not to be a type node", node.Parent().Type())
	}
}
