package symbol

import "github.com/NickyBoy89/jgenerics/jtype"

// MergeTypeParams merges outer and inner type parameters, applying Java-style
// shadowing: if an inner type parameter has the same name as an outer one, the
// inner one replaces it.
func MergeTypeParams(outer, inner []*jtype.Placeholder) []*jtype.Placeholder {
	if len(outer) == 0 {
		return append([]*jtype.Placeholder{}, inner...)
	}
	if len(inner) == 0 {
		return append([]*jtype.Placeholder{}, outer...)
	}

	shadowed := make(map[string]struct{}, len(inner))
	for _, p := range inner {
		shadowed[p.Name] = struct{}{}
	}

	merged := make([]*jtype.Placeholder, 0, len(outer)+len(inner))
	for _, p := range outer {
		if _, ok := shadowed[p.Name]; ok {
			continue
		}
		merged = append(merged, p)
	}
	merged = append(merged, inner...)
	return merged
}
