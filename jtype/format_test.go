package jtype

import "testing"

func TestTypeRefString(t *testing.T) {
	r := NewRegistry()
	tests := []struct {
		name string
		ref  *TypeRef
		want string
	}{
		{"named", Named("Integer"), "Integer"},
		{"placeholder", Var("T", Named("Number")), "T"},
		{"array", ArrayOf(ArrayOf(Named("int"))), "int[][]"},
		{"generic", r.Type("Map", r.Type("String"), r.Type("List", Var("T"))), "Map<String, List<T>>"},
		{"wildcards", Named("Map", Unbounded(), Super(Named("Integer"))), "Map<?, ? super Integer>"},
		{"upper wildcard", Named("List", Extends(Named("Number"), Named("Runnable"))), "List<? extends Number & Runnable>"},
		{"nil", nil, "<nil>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ref.String(); got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestDeclarationString(t *testing.T) {
	r := NewRegistry()

	tp := Param("T", Named("Number"), r.Type("Comparable", Var("T")))
	decl := Class("Box", tp).Extends(r.Type("ArrayList", tp.Ref())).Implements(r.Type("CharSequence"))
	if got, want := decl.String(), "class Box<T extends Number & Comparable<T>> extends ArrayList<T> implements CharSequence"; got != want {
		t.Errorf("Expected %s, got %s", want, got)
	}

	if got, want := r.Lookup("List").String(), "interface List<E> extends Collection<E>"; got != want {
		t.Errorf("Expected %s, got %s", want, got)
	}
}

func TestMethodString(t *testing.T) {
	r := NewRegistry()
	andThen := r.Lookup("Function").FindMethod().ByName("andThen")
	if len(andThen) != 1 {
		t.Fatalf("Expected 1 andThen method, got %d", len(andThen))
	}
	want := "<V> Function<T, V> andThen(Function<? super R, ? extends V> after)"
	if got := andThen[0].String(); got != want {
		t.Errorf("Expected %s, got %s", want, got)
	}

	m := &Method{
		Name:       "read",
		Static:     true,
		ReturnType: Named("int"),
		Parameters: []*Parameter{{Name: "buf", Type: ArrayOf(Named("byte"))}},
		Exceptions: []*TypeRef{Named("IOException")},
	}
	if got, want := m.String(), "static int read(byte[] buf) throws IOException"; got != want {
		t.Errorf("Expected %s, got %s", want, got)
	}
}
