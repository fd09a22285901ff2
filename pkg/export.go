package extractor

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// WriteServiceSchemaJSON writes a service schema to a JSON file
func WriteServiceSchemaJSON(schema *ServiceSchema, outputPath string) error {
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal schema JSON: %w", err)
	}

	return os.WriteFile(outputPath, data, 0644)
}

// RenderNuModule renders all signatures of a service as a Nushell source
// module: a static completer per enum parameter, then one exported command per
// operation whose body delegates to the runtime dispatcher.
func RenderNuModule(service string, sigs []Signature) string {
	var b strings.Builder

	b.WriteString("# Generated AWS CLI wrappers. DO NOT EDIT.\n")
	b.WriteString("# service: " + service + "\n\n")

	for _, sig := range sigs {
		for _, p := range sig.Parameters {
			if len(p.Choices) == 0 {
				continue
			}
			b.WriteString(fmt.Sprintf("def %q [] {\n    [", p.Completion))
			for i, choice := range p.Choices {
				if i > 0 {
					b.WriteByte(' ')
				}
				b.WriteString(strconv.Quote(choice))
			}
			b.WriteString("]\n}\n\n")
		}
	}

	for _, sig := range sigs {
		b.WriteString(sig.Render())
		b.WriteString(fmt.Sprintf(" {\n    aws-invoke %q %q\n}\n\n", sig.Service, sig.OriginalName))
	}

	return b.String()
}

// WriteNuModule writes the rendered Nushell module for a service
func WriteNuModule(service string, sigs []Signature, outputPath string) error {
	return os.WriteFile(outputPath, []byte(RenderNuModule(service, sigs)), 0644)
}

// WritePolicyJSON writes a generated IAM policy to a JSON file
func WritePolicyJSON(policy *IAMPolicy, outputPath string) error {
	data, err := json.MarshalIndent(policy, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal policy JSON: %w", err)
	}

	return os.WriteFile(outputPath, data, 0644)
}
