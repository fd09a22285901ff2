package extractor

import (
	"fmt"
	"strconv"
)

// DefaultValue produces a type-appropriate sample value for a mapped type,
// rendered as a Nushell literal. It exists to support example generation and
// validation fixtures; it never fails, falling back to the primitive's zero
// value for anything it cannot model.
func DefaultValue(t TargetType, shape *ResolvedShape) string {
	switch t.Kind {
	case TypeString:
		if len(t.Choices) > 0 {
			return strconv.Quote(t.Choices[0])
		}
		return `""`
	case TypeInt:
		if shape != nil && shape.Min != nil {
			return strconv.FormatInt(int64(*shape.Min), 10)
		}
		return "0"
	case TypeFloat:
		if shape != nil && shape.Min != nil {
			return strconv.FormatFloat(*shape.Min, 'g', -1, 64)
		}
		return "0.0"
	case TypeBool:
		return "false"
	case TypeList, TypeTable:
		return "[]"
	case TypeRecord:
		return "{}"
	case TypeBinary:
		return "0x[]"
	case TypeFilesize:
		return "0b"
	case TypeDateTime:
		// illustrative, not authoritative: the sample is whatever "now" is
		return "(date now)"
	default:
		return "null"
	}
}

// SampleRecord renders a record literal with a default value per member of a
// structure shape. Non-structure shapes yield the default for their own
// mapped type.
func SampleRecord(shape *ResolvedShape) string {
	if shape == nil || shape.Kind != KindStructure {
		return DefaultValue(MapType(shape, ""), shape)
	}
	out := "{"
	for i, m := range shape.Members {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%s: %s", KebabCase(m.Name), DefaultValue(MapType(m.Shape, m.Name), m.Shape))
	}
	return out + "}"
}
