package extractor

// Field-name patterns used for pagination inference. Names are compared after
// normalization, so NextToken, nextToken and next-token all match.
var (
	tokenFieldNames = map[string]bool{
		"nexttoken":  true,
		"nextmarker": true,
	}
	limitFieldNames = map[string]bool{
		"maxresults": true,
		"maxitems":   true,
		"maxkeys":    true,
	}
)

// DetectPagination classifies an operation as paginated and extracts its
// token, limit and result-key metadata. An explicit model-supplied config
// wins; otherwise pagination is inferred from matching token, limit and
// result fields. An operation with no output shape is never paginated.
func DetectPagination(op Operation, explicit map[string]PaginationConfig) PaginationDescriptor {
	if cfg, ok := explicit[op.OriginalName]; ok {
		return PaginationDescriptor{
			Paginated:   true,
			InputToken:  cfg.InputToken,
			OutputToken: cfg.OutputToken,
			LimitKey:    cfg.LimitKey,
			ResultKey:   cfg.ResultKey,
		}
	}

	if op.Output == nil || op.Output.Kind != KindStructure {
		return PaginationDescriptor{}
	}
	if op.Input == nil || op.Input.Kind != KindStructure {
		return PaginationDescriptor{}
	}

	inputToken := findMemberByPattern(op.Input, tokenFieldNames)
	outputToken := findMemberByPattern(op.Output, tokenFieldNames)
	limitKey := findMemberByPattern(op.Input, limitFieldNames)
	resultKey := findListMember(op.Output)

	if inputToken == "" || outputToken == "" || limitKey == "" || resultKey == "" {
		return PaginationDescriptor{}
	}

	return PaginationDescriptor{
		Paginated:   true,
		InputToken:  inputToken,
		OutputToken: outputToken,
		LimitKey:    limitKey,
		ResultKey:   resultKey,
	}
}

// findMemberByPattern returns the first member, in declaration order, whose
// normalized name is in the pattern set
func findMemberByPattern(shape *ResolvedShape, patterns map[string]bool) string {
	for _, m := range shape.Members {
		if patterns[normalizeFieldName(m.Name)] {
			return m.Name
		}
	}
	return ""
}

// findListMember returns the first list-typed member, in declaration order
func findListMember(shape *ResolvedShape) string {
	for _, m := range shape.Members {
		if m.Shape != nil && m.Shape.Kind == KindList {
			return m.Name
		}
	}
	return ""
}
