package jtype

import "strings"

// String renders the reference in Java syntax, e.g. `Map<String, List<T>>[]`
func (t *TypeRef) String() string {
	if t == nil {
		return "<nil>"
	}
	if t.IsArray() {
		return t.Elem.String() + "[]"
	}
	if len(t.Args) == 0 {
		return t.Name
	}
	return t.Name + "<" + joinArgs(t.Args) + ">"
}

func (c *Concrete) String() string {
	return c.Type.String()
}

// String renders only the parameter's name, as it would appear in an argument
// list. Use Declare for the declaring form
func (p *Placeholder) String() string {
	return p.Name
}

// Declare renders the parameter as it appears in a type parameter list,
// e.g. `T extends Number & Comparable<T>`
func (p *Placeholder) Declare() string {
	if len(p.Bounds) == 0 {
		return p.Name
	}
	return p.Name + " extends " + joinTypes(p.Bounds, " & ")
}

func (w *Wildcard) String() string {
	switch {
	case w.Lower != nil:
		return "? super " + w.Lower.String()
	case len(w.Upper) > 0:
		return "? extends " + joinTypes(w.Upper, " & ")
	}
	return "?"
}

func (d *Declaration) String() string {
	var sb strings.Builder
	if d.Interface {
		sb.WriteString("interface ")
	} else {
		sb.WriteString("class ")
	}
	sb.WriteString(d.Name)
	sb.WriteString(declareParams(d.TypeParameters))

	if d.Superclass != nil {
		sb.WriteString(" extends ")
		sb.WriteString(d.Superclass.String())
	}
	if len(d.Interfaces) > 0 {
		if d.Interface {
			sb.WriteString(" extends ")
		} else {
			sb.WriteString(" implements ")
		}
		sb.WriteString(joinTypes(d.Interfaces, ", "))
	}
	return sb.String()
}

// String renders the method header, e.g. `<R> R map(Function<T, R> f)`
func (m *Method) String() string {
	var sb strings.Builder
	if m.Static {
		sb.WriteString("static ")
	}
	if len(m.TypeParameters) > 0 {
		sb.WriteString(declareParams(m.TypeParameters))
		sb.WriteByte(' ')
	}
	if m.ReturnType != nil {
		sb.WriteString(m.ReturnType.String())
		sb.WriteByte(' ')
	}
	sb.WriteString(m.Name)
	sb.WriteByte('(')
	for i, param := range m.Parameters {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(param.Type.String())
		sb.WriteByte(' ')
		sb.WriteString(param.Name)
	}
	sb.WriteByte(')')
	if len(m.Exceptions) > 0 {
		sb.WriteString(" throws ")
		sb.WriteString(joinTypes(m.Exceptions, ", "))
	}
	return sb.String()
}

func declareParams(params []*Placeholder) string {
	if len(params) == 0 {
		return ""
	}
	decls := make([]string, len(params))
	for i, p := range params {
		decls[i] = p.Declare()
	}
	return "<" + strings.Join(decls, ", ") + ">"
}

func joinArgs(args []TypeArg) string {
	rendered := make([]string, len(args))
	for i, arg := range args {
		rendered[i] = arg.String()
	}
	return strings.Join(rendered, ", ")
}

func joinTypes(types []*TypeRef, sep string) string {
	rendered := make([]string, len(types))
	for i, t := range types {
		rendered[i] = t.String()
	}
	return strings.Join(rendered, sep)
}
