package extractor

import (
	"fmt"
	"strings"
)

// GeneratePolicy creates an IAM policy covering a schema's operations. With
// controlPlaneOnly set, only operations classified as control_plane are
// included (useful together with ClassifyOperations).
func GeneratePolicy(schema *ServiceSchema, controlPlaneOnly bool) (*IAMPolicy, error) {
	if schema == nil {
		return nil, fmt.Errorf("no schema to generate policy from")
	}

	prefix := schema.Metadata.EndpointPrefix
	if prefix == "" {
		prefix = schema.Service
	}
	prefix = strings.ToLower(prefix)

	var actions []string
	for _, op := range schema.Operations {
		if controlPlaneOnly && op.Type != "control_plane" {
			continue
		}
		actions = append(actions, fmt.Sprintf("%s:%s", prefix, op.OriginalName))
	}

	if len(actions) == 0 {
		return nil, fmt.Errorf("no operations found for service %s", schema.Service)
	}

	policy := createPolicy(actions, resourcePattern(prefix))
	return &policy, nil
}

// resourcePattern creates a wildcard resource ARN pattern for the service
func resourcePattern(service string) string {
	switch service {
	case "s3":
		// S3 has global ARNs
		return "*"
	case "iam":
		// IAM is a global service (no region)
		return "arn:aws:iam::*:*"
	default:
		return fmt.Sprintf("arn:aws:%s:*:*:*", service)
	}
}

// createPolicy creates an IAM policy with the given actions and resources
func createPolicy(actions []string, resource string) IAMPolicy {
	if len(actions) == 0 {
		return IAMPolicy{
			Version:   "2012-10-17",
			Statement: []PolicyStatement{},
		}
	}

	return IAMPolicy{
		Version: "2012-10-17",
		Statement: []PolicyStatement{
			{
				Effect:   "Allow",
				Action:   actions,
				Resource: resource,
			},
		},
	}
}

// ValidatePolicyJSON performs basic structural checks on a generated policy
func ValidatePolicyJSON(policy *IAMPolicy) error {
	if policy == nil {
		return fmt.Errorf("policy is nil")
	}
	if policy.Version == "" {
		return fmt.Errorf("policy Version is required")
	}
	if len(policy.Statement) == 0 {
		return fmt.Errorf("policy must have at least one statement")
	}

	for i, stmt := range policy.Statement {
		if stmt.Effect != "Allow" && stmt.Effect != "Deny" {
			return fmt.Errorf("statement %d: Effect must be 'Allow' or 'Deny'", i)
		}
		if len(stmt.Action) == 0 {
			return fmt.Errorf("statement %d: Action is required", i)
		}
		if stmt.Resource == nil {
			return fmt.Errorf("statement %d: Resource is required", i)
		}
	}

	return nil
}
