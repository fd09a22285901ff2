package extractor

import (
	"sort"
	"strings"
)

// crudVerbs are the leading verbs stripped when deriving a resource noun from
// an operation name
var crudVerbs = []string{"list", "create", "describe", "update", "delete", "get", "put"}

// InferResources derives best-effort logical resource groupings from
// operation-name patterns. Operations with no recognizable verb/noun split
// contribute to no resource; that is not an error. Results are sorted by
// resource name; each resource's operations keep extraction order.
func InferResources(ops []Operation) []Resource {
	groups := make(map[string][]string)
	var order []string

	for _, op := range ops {
		noun := resourceNoun(op.Name)
		if noun == "" {
			continue
		}
		if _, seen := groups[noun]; !seen {
			order = append(order, noun)
		}
		groups[noun] = append(groups[noun], op.Name)
	}

	sort.Strings(order)
	out := make([]Resource, 0, len(order))
	for _, noun := range order {
		out = append(out, Resource{Name: noun, Operations: groups[noun]})
	}
	return out
}

// resourceNoun strips a leading CRUD verb from a kebab-case operation name and
// singularizes the remainder. Empty result means no usable split.
func resourceNoun(opName string) string {
	for _, verb := range crudVerbs {
		rest, ok := strings.CutPrefix(opName, verb+"-")
		if !ok {
			continue
		}
		if noun := singularize(rest); noun != "" {
			return noun
		}
	}
	return ""
}

// singularize applies the two plural patterns AWS operation nouns actually
// use. It is deliberately naive; the grouping is an annotation, not an
// authority.
func singularize(noun string) string {
	switch {
	case strings.HasSuffix(noun, "ies"):
		return strings.TrimSuffix(noun, "ies") + "y"
	case strings.HasSuffix(noun, "ss"):
		return noun
	case strings.HasSuffix(noun, "s"):
		return strings.TrimSuffix(noun, "s")
	default:
		return noun
	}
}
