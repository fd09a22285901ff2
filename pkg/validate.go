package extractor

import (
	"fmt"
	"strings"
)

// ValidationResult holds the outcome of validating a candidate schema record
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// ValidateServiceSchema checks a fully-built schema record before it is
// persisted. It is the only place in this package where a defect halts the
// pipeline; everything upstream degrades instead. The caller decides whether
// to persist an invalid schema.
func ValidateServiceSchema(s *ServiceSchema) ValidationResult {
	var errs []string

	if s == nil {
		return ValidationResult{Valid: false, Errors: []string{"schema is nil"}}
	}

	if s.Service == "" {
		errs = append(errs, "service name is required")
	}
	if len(s.Operations) == 0 {
		errs = append(errs, "schema has no operations")
	}
	if s.Metadata == (SchemaMetadata{}) {
		errs = append(errs, "schema has no metadata")
	}
	if !strings.Contains(s.GeneratedAt, "T") || !strings.HasSuffix(s.GeneratedAt, "Z") {
		errs = append(errs, "generated_at must be an ISO-8601 UTC timestamp")
	}
	if s.SchemaVersion == "" {
		errs = append(errs, "schema_version is required")
	}

	for i, op := range s.Operations {
		label := op.OriginalName
		if label == "" {
			label = fmt.Sprintf("#%d", i)
		}
		if op.OriginalName == "" {
			errs = append(errs, fmt.Sprintf("Operation %s: original_name is required", label))
		}
		if op.Name == "" {
			errs = append(errs, fmt.Sprintf("Operation %s: name is required", label))
		}
		if op.HTTPMethod == "" {
			errs = append(errs, fmt.Sprintf("Operation %s: http_method is required", label))
		}
		if op.HTTPURI == "" {
			errs = append(errs, fmt.Sprintf("Operation %s: http_uri is required", label))
		}
	}

	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}
