package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/NickyBoy89/jgenerics/generics"
	"github.com/NickyBoy89/jgenerics/jtype"
)

const shapesSource = `
package shapes;

class Pair<K, V> {
    V second(K key) { return null; }
    <R> Pair<R, V> swapFirst(R first) { return null; }
    static <T extends Comparable<T>> T max(T[] values) { return null; }
}

class Tagged<T> extends Pair<String, T> {}
`

func writeSource(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Shapes.java")
	if err := os.WriteFile(path, []byte(shapesSource), 0o644); err != nil {
		t.Fatalf("Failed to write source: %v", err)
	}
	return path
}

// normalizeSpaces collapses whitespace, and drops the trailing comma some
// go/printer releases put after a lone pointer constraint, as in [T *C,]
func normalizeSpaces(s string) string {
	return strings.ReplaceAll(strings.Join(strings.Fields(s), " "), ",]", "]")
}

func TestRun(t *testing.T) {
	path := writeSource(t)

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "library type",
			args: []string{"-use", "ArrayList<String>", "-target", "Iterable"},
			want: []string{"Iterable<String>"},
		},
		{
			name: "loaded types",
			args: []string{"-use", "Tagged<Integer>", "-target", "Pair", path},
			want: []string{"Pair<String, Integer>"},
		},
		{
			name: "use site alone",
			args: []string{"-use", "java.util.Map<String, Long>"},
			want: []string{"Map<String, Long>"},
		},
		{
			name: "go output",
			args: []string{"-use", "HashMap<String, List<Integer>>", "-target", "Map", "-format", "go"},
			want: []string{"*Map[string, *List[*Integer]]"},
		},
		{
			name: "method",
			args: []string{"-use", "Tagged<Integer>", "-target", "Pair", "-method", "second", path},
			want: []string{"Integer second(String key)"},
		},
		{
			name: "generic method",
			args: []string{"-use", "Tagged<Integer>", "-target", "Pair", "-method", "swapFirst", path},
			want: []string{"<R> Pair<R, Integer> swapFirst(R first)"},
		},
		{
			name: "generic method as go",
			args: []string{"-use", "Tagged<Integer>", "-target", "Pair", "-method", "swapFirst", "-format", "go", path},
			want: []string{"func swapFirst[R any](pr *Pair[string, *Integer], first R) *Pair[R, *Integer]"},
		},
		{
			name: "static method as go",
			args: []string{"-use", "Tagged<Integer>", "-target", "Pair", "-method", "max", "-format", "go", path},
			want: []string{"func max[T *Comparable[T]](values []T) T"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			if err := run(context.Background(), tt.args, &out); err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			got := strings.Split(strings.TrimSpace(out.String()), "\n")
			if len(got) != len(tt.want) {
				t.Fatalf("Expected %d lines, got:\n%s", len(tt.want), out.String())
			}
			for i := range got {
				if normalizeSpaces(got[i]) != tt.want[i] {
					t.Errorf("Expected %s, got %s", tt.want[i], got[i])
				}
			}
		})
	}
}

func TestRunRejectsCyclicSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Cycle.java")
	if err := os.WriteFile(path, []byte("class A extends B {} class B extends A {}"), 0o644); err != nil {
		t.Fatalf("Failed to write source: %v", err)
	}

	var out bytes.Buffer
	if err := run(context.Background(), []string{"-use", "A", "-target", "Object", path}, &out); err == nil {
		t.Errorf("Expected an error for cyclic inheritance, got output:\n%s", out.String())
	}
}

func TestRunErrors(t *testing.T) {
	path := writeSource(t)

	tests := []struct {
		name string
		args []string
	}{
		{"missing use site", []string{"-target", "List"}},
		{"unknown format", []string{"-use", "List<String>", "-format", "rust"}},
		{"unknown use site", []string{"-use", "Nope<String>"}},
		{"unknown target", []string{"-use", "List<String>", "-target", "Nope"}},
		{"invalid expression", []string{"-use", "List<<String"}},
		{"unknown method", []string{"-use", "List<String>", "-method", "nope"}},
		{"missing file", []string{"-use", "List<String>", filepath.Join(t.TempDir(), "Missing.java")}},
		{"unknown flag", []string{"-nope", path}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			if err := run(context.Background(), tt.args, &out); err == nil {
				t.Errorf("Expected an error, got output:\n%s", out.String())
			}
		})
	}
}

func TestRunArityMismatch(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), []string{"-use", "Map<String>"}, &out)
	if !errors.Is(err, generics.ErrPrecondition) {
		t.Errorf("Expected a precondition error, got %v", err)
	}
}

func TestParseTypeExpr(t *testing.T) {
	tests := []struct {
		expr string
		want string
	}{
		{"String", "String"},
		{"int[]", "int[]"},
		{"Map<String, List<? extends Number>>", "Map<String, List<? extends Number>>"},
		{"java.util.List<Integer>", "List<Integer>"},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := ParseTypeExpr(tt.expr)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}

	if _, err := ParseTypeExpr("List<"); err == nil {
		t.Error("Expected an error for an incomplete expression")
	}
}

func TestShortName(t *testing.T) {
	if got := ShortName("Pair"); got != "pr" {
		t.Errorf("Expected pr, got %s", got)
	}
	if got := ShortName(""); got != "" {
		t.Errorf("Expected an empty name, got %s", got)
	}
}

func TestGenMethodDeclVoid(t *testing.T) {
	m := &jtype.Method{
		Name:       "clear",
		ReturnType: jtype.Named("void"),
	}
	out, err := renderMethod(m, jtype.Named("Box"), formatGo)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if want := "func clear(bx *Box)"; normalizeSpaces(out) != want {
		t.Errorf("Expected %s, got %s", want, out)
	}
}
