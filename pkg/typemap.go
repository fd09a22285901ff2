package extractor

import "strings"

// TypeKind identifies a target (Nushell) type
type TypeKind string

const (
	TypeAny      TypeKind = "any"
	TypeNothing  TypeKind = "nothing"
	TypeString   TypeKind = "string"
	TypeInt      TypeKind = "int"
	TypeFloat    TypeKind = "float"
	TypeBool     TypeKind = "bool"
	TypeBinary   TypeKind = "binary"
	TypeDateTime TypeKind = "datetime"
	TypeFilesize TypeKind = "filesize"
	TypeList     TypeKind = "list"
	TypeTable    TypeKind = "table"
	TypeRecord   TypeKind = "record"
)

// TargetType is a mapped target type. Choices carries the completion set when
// the source shape was enum-constrained; Note explains fallbacks taken on
// self-referencing or union shapes.
type TargetType struct {
	Kind    TypeKind
	Elem    *TargetType
	Choices []string
	Note    string
}

// Nu renders the type in Nushell type syntax
func (t TargetType) Nu() string {
	if t.Kind == TypeList && t.Elem != nil {
		return "list<" + t.Elem.Nu() + ">"
	}
	if t.Kind == "" {
		return string(TypeAny)
	}
	return string(t.Kind)
}

// MapType maps a resolved shape plus its enclosing field name to a target
// type. The rule table is ordered; the first matching rule wins, and the same
// (shape, fieldName) pair always maps to the same type. Unrecognized input
// maps to any, never to an error.
func MapType(shape *ResolvedShape, fieldName string) TargetType {
	if shape == nil {
		return TargetType{Kind: TypeAny, Note: "no shape"}
	}

	// 1. enum constraint wins over everything else
	if shape.Kind == KindEnum {
		return TargetType{Kind: TypeString, Choices: shape.EnumValues}
	}

	// 2. numeric fields that are really byte counts
	if isByteSizeField(fieldName) && (shape.Kind == KindInt || shape.Kind == KindFloat) {
		return TargetType{Kind: TypeFilesize}
	}

	switch shape.Kind {
	// 3-5. scalars
	case KindTimestamp:
		return TargetType{Kind: TypeDateTime}
	case KindBlob:
		return TargetType{Kind: TypeBinary}
	case KindBool:
		return TargetType{Kind: TypeBool}
	case KindString:
		return TargetType{Kind: TypeString}
	case KindInt:
		return TargetType{Kind: TypeInt}
	case KindFloat:
		return TargetType{Kind: TypeFloat}

	// 6-7. lists: a list of plain structures becomes a table so pipelines can
	// sort and filter its columns; recursive or union elements fall back to a
	// generic list
	case KindList:
		elem := shape.Member
		if elem != nil && elem.Kind == KindStructure {
			return TargetType{Kind: TypeTable}
		}
		if elem != nil && (elem.SelfRef || elem.Union) {
			note := "element is a union shape"
			if elem.SelfRef {
				note = "element is self-referencing"
			}
			et := MapType(elem, "")
			return TargetType{Kind: TypeList, Elem: &et, Note: note}
		}
		et := MapType(elem, "")
		return TargetType{Kind: TypeList, Elem: &et}

	// 8. maps become records; Nushell records are string-keyed, so the key
	// type is informational only
	case KindMap:
		return TargetType{Kind: TypeRecord}

	// 9. structures become records; a self-referencing structure resolves to
	// an any node before it reaches here
	case KindStructure:
		return TargetType{Kind: TypeRecord}
	}

	// 10. anything unrecognized
	return TargetType{Kind: TypeAny, Note: shape.Note}
}

// isByteSizeField reports whether a field name suggests a byte count
func isByteSizeField(name string) bool {
	norm := normalizeFieldName(name)
	if norm == "" {
		return false
	}
	return strings.Contains(norm, "size") ||
		strings.Contains(norm, "bytes") ||
		strings.Contains(norm, "contentlength")
}
