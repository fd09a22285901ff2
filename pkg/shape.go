package extractor

// ShapeKind identifies the primary kind of a resolved shape. Downstream
// components switch over this closed set instead of probing the raw model's
// optional fields.
type ShapeKind string

const (
	KindAny       ShapeKind = "any"
	KindString    ShapeKind = "string"
	KindInt       ShapeKind = "int"
	KindFloat     ShapeKind = "float"
	KindBool      ShapeKind = "bool"
	KindBlob      ShapeKind = "blob"
	KindTimestamp ShapeKind = "timestamp"
	KindEnum      ShapeKind = "enum"
	KindStructure ShapeKind = "structure"
	KindList      ShapeKind = "list"
	KindMap       ShapeKind = "map"
)

// maxResolveDepth bounds recursion independently of cycle detection. The path
// set alone guarantees termination; the depth cap additionally keeps resolved
// trees of pathological (deeply nested but acyclic) models small.
const maxResolveDepth = 32

// ResolvedShape is a shape with all member references substituted by their
// concrete definitions, cycle-safe
type ResolvedShape struct {
	Name          string
	Kind          ShapeKind
	Members       []ResolvedMember
	Member        *ResolvedShape
	Key           *ResolvedShape
	Value         *ResolvedShape
	EnumValues    []string
	Min           *float64
	Max           *float64
	Pattern       string
	Documentation string
	SelfRef       bool
	Union         bool
	Note          string
}

// ResolvedMember is one member of a resolved structure, in declaration order
type ResolvedMember struct {
	Name              string
	Shape             *ResolvedShape
	Required          bool
	Documentation     string
	Deprecated        bool
	DeprecatedMessage string
}

// IsEmptyStructure reports whether the shape is a structure with no members.
// Operations whose output resolves to an empty structure return nothing.
func (s *ResolvedShape) IsEmptyStructure() bool {
	return s != nil && s.Kind == KindStructure && len(s.Members) == 0
}

// Resolver resolves named shape references against a model's shape table.
// A Resolver is cheap and read-only; each Resolve call carries its own path
// set, so a single Resolver may be shared across concurrent resolutions.
type Resolver struct {
	shapes map[string]*RawShape
}

// NewResolver creates a resolver over the given shape table
func NewResolver(shapes map[string]*RawShape) *Resolver {
	return &Resolver{shapes: shapes}
}

// Resolve resolves the named shape into a concrete node. Missing, untyped,
// union and self-referencing shapes all resolve to an annotated "any" node;
// resolution never fails.
func (r *Resolver) Resolve(name string) *ResolvedShape {
	return r.resolve(name, make(map[string]bool), 0)
}

func (r *Resolver) resolve(name string, path map[string]bool, depth int) *ResolvedShape {
	if name == "" {
		return anyShape("", "missing shape reference")
	}
	if path[name] {
		s := anyShape(name, "self-referencing shape")
		s.SelfRef = true
		return s
	}
	if depth > maxResolveDepth {
		return anyShape(name, "maximum resolution depth exceeded")
	}

	raw, ok := r.shapes[name]
	if !ok || raw == nil {
		return anyShape(name, "shape not defined in model")
	}
	if raw.Type == "" {
		return anyShape(name, "shape has no type")
	}
	if raw.Union {
		s := anyShape(name, "union shape; member alternatives are not expanded")
		s.Union = true
		return s
	}

	out := &ResolvedShape{
		Name:          name,
		Min:           raw.Min,
		Max:           raw.Max,
		Pattern:       raw.Pattern,
		Documentation: raw.Documentation,
	}

	// name joins the active resolution path while children resolve
	path[name] = true
	defer delete(path, name)

	switch raw.Type {
	case "string":
		if len(raw.Enum) > 0 {
			out.Kind = KindEnum
			out.EnumValues = raw.Enum
		} else {
			out.Kind = KindString
		}
	case "boolean":
		out.Kind = KindBool
	case "integer", "long":
		out.Kind = KindInt
	case "float", "double":
		out.Kind = KindFloat
	case "timestamp":
		out.Kind = KindTimestamp
	case "blob":
		out.Kind = KindBlob
	case "list":
		out.Kind = KindList
		if raw.Member != nil {
			out.Member = r.resolve(raw.Member.Shape, path, depth+1)
		} else {
			out.Member = anyShape("", "list has no member shape")
		}
	case "map":
		out.Kind = KindMap
		if raw.Key != nil {
			out.Key = r.resolve(raw.Key.Shape, path, depth+1)
		} else {
			out.Key = anyShape("", "map has no key shape")
		}
		if raw.Value != nil {
			out.Value = r.resolve(raw.Value.Shape, path, depth+1)
		} else {
			out.Value = anyShape("", "map has no value shape")
		}
	case "structure":
		out.Kind = KindStructure
		required := make(map[string]bool, len(raw.Required))
		for _, name := range raw.Required {
			required[name] = true
		}
		for _, m := range raw.Members {
			child := r.resolve(m.Ref.Shape, path, depth+1)
			doc := m.Ref.Documentation
			if doc == "" {
				doc = child.Documentation
			}
			out.Members = append(out.Members, ResolvedMember{
				Name:              m.Name,
				Shape:             child,
				Required:          required[m.Name],
				Documentation:     doc,
				Deprecated:        m.Ref.Deprecated,
				DeprecatedMessage: m.Ref.DeprecatedMessage,
			})
		}
	default:
		return anyShape(name, "unrecognized shape type "+raw.Type)
	}

	return out
}

func anyShape(name, note string) *ResolvedShape {
	return &ResolvedShape{Name: name, Kind: KindAny, Note: note}
}
