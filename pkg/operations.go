package extractor

// Default HTTP binding for operations whose model entry omits one. The query
// and json protocols post everything to the service root.
const (
	defaultHTTPMethod = "POST"
	defaultHTTPURI    = "/"
)

// ExtractOperations normalizes every raw operation entry of the model into a
// canonical Operation, in the model's declaration order. Sparse entries never
// fail: missing HTTP bindings, shapes, errors and documentation all default.
func ExtractOperations(model *ServiceModel) []Operation {
	if model == nil {
		return nil
	}

	resolver := NewResolver(model.Shapes)
	out := make([]Operation, 0, len(model.Operations))
	for _, entry := range model.Operations {
		out = append(out, extractOperation(entry, resolver))
	}
	return out
}

// extractOperation normalizes one raw operation entry
func extractOperation(entry NamedOperation, resolver *Resolver) Operation {
	raw := entry.Op

	original := raw.Name
	if original == "" {
		original = entry.Key
	}

	op := Operation{
		Name:              KebabCase(original),
		OriginalName:      original,
		HTTPMethod:        defaultHTTPMethod,
		HTTPURI:           defaultHTTPURI,
		Errors:            []string{},
		Documentation:     raw.Documentation,
		Deprecated:        raw.Deprecated,
		DeprecatedMessage: raw.DeprecatedMessage,
	}

	if raw.HTTP != nil {
		if raw.HTTP.Method != "" {
			op.HTTPMethod = raw.HTTP.Method
		}
		if raw.HTTP.RequestURI != "" {
			op.HTTPURI = raw.HTTP.RequestURI
		}
	}

	if raw.Input != nil && raw.Input.Shape != "" {
		op.InputShape = raw.Input.Shape
		op.Input = resolver.Resolve(raw.Input.Shape)
	}
	if raw.Output != nil && raw.Output.Shape != "" {
		op.OutputShape = raw.Output.Shape
		op.Output = resolver.Resolve(raw.Output.Shape)
	}

	for _, e := range raw.Errors {
		if e.Shape != "" {
			op.Errors = append(op.Errors, e.Shape)
		}
	}

	return op
}
