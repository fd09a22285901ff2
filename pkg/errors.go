package extractor

import "sort"

// ExtractErrors harvests every shape marked as an exception into a uniform
// error taxonomy. Shapes without the exception marker are ignored even when
// structurally similar. The result is sorted by name so the persisted schema
// is stable across runs.
func ExtractErrors(model *ServiceModel) []ErrorDescriptor {
	if model == nil {
		return []ErrorDescriptor{}
	}

	out := make([]ErrorDescriptor, 0)
	for name, shape := range model.Shapes {
		if shape == nil || !shape.Exception {
			continue
		}

		desc := ErrorDescriptor{
			Name:        name,
			Description: shape.Documentation,
		}
		if shape.Error != nil {
			desc.HTTPStatus = shape.Error.HTTPStatusCode
		}
		// the retryable marker's presence is what counts; throttling is just
		// a refinement of it
		if shape.Retryable != nil {
			desc.Retryable = true
		}
		out = append(out, desc)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
