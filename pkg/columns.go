package extractor

// maxColumnDepth bounds nested-structure flattening so one pathological shape
// cannot explode a table definition
const maxColumnDepth = 3

// Column is one named, typed column of a tabular output
type Column struct {
	Name string
	Type TargetType
}

// Columns flattens a structure shape (or a list of structures) into an
// ordered column list. Scalar members become one column each; nested
// structures are flattened with a hyphen-joined parent prefix so same-named
// leaves stay distinct; list members stay a single column.
func Columns(shape *ResolvedShape) []Column {
	if shape != nil && shape.Kind == KindList && shape.Member != nil && shape.Member.Kind == KindStructure {
		shape = shape.Member
	}
	if shape == nil || shape.Kind != KindStructure {
		return nil
	}
	return flattenColumns(shape, "", 0)
}

func flattenColumns(shape *ResolvedShape, prefix string, depth int) []Column {
	var out []Column
	for _, m := range shape.Members {
		name := KebabCase(m.Name)
		if prefix != "" {
			name = prefix + "-" + name
		}

		child := m.Shape
		if child != nil && child.Kind == KindStructure && len(child.Members) > 0 && depth < maxColumnDepth {
			out = append(out, flattenColumns(child, name, depth+1)...)
			continue
		}

		out = append(out, Column{Name: name, Type: MapType(child, m.Name)})
	}
	return out
}
