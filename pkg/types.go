package extractor

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ServiceModel represents the top-level structure of an AWS API model JSON file
type ServiceModel struct {
	Metadata   ModelMetadata               `json:"metadata"`
	Operations RawOperationList            `json:"operations"`
	Shapes     map[string]*RawShape        `json:"shapes"`
	Pagination map[string]PaginationConfig `json:"pagination,omitempty"`
}

// ModelMetadata holds the service-level metadata block of the model
type ModelMetadata struct {
	APIVersion       string `json:"apiVersion"`
	Protocol         string `json:"protocol"`
	ServiceFullName  string `json:"serviceFullName"`
	EndpointPrefix   string `json:"endpointPrefix"`
	SignatureVersion string `json:"signatureVersion"`
}

// RawOperation represents one operation entry as it appears in the model
type RawOperation struct {
	Name              string     `json:"name"`
	HTTP              *RawHTTP   `json:"http,omitempty"`
	Input             *ShapeRef  `json:"input,omitempty"`
	Output            *ShapeRef  `json:"output,omitempty"`
	Errors            []ShapeRef `json:"errors,omitempty"`
	Documentation     string     `json:"documentation,omitempty"`
	Deprecated        bool       `json:"deprecated,omitempty"`
	DeprecatedMessage string     `json:"deprecatedMessage,omitempty"`
}

// RawHTTP holds the HTTP binding of an operation
type RawHTTP struct {
	Method     string `json:"method"`
	RequestURI string `json:"requestUri"`
}

// ShapeRef is a reference to a named shape, optionally carrying member-level
// documentation and deprecation
type ShapeRef struct {
	Shape             string `json:"shape"`
	Documentation     string `json:"documentation,omitempty"`
	Deprecated        bool   `json:"deprecated,omitempty"`
	DeprecatedMessage string `json:"deprecatedMessage,omitempty"`
}

// RawShape represents a shape definition in the AWS API model. All fields are
// optional; malformed or sparse shapes are handled by the resolver, never
// rejected here.
type RawShape struct {
	Type          string        `json:"type"`
	Members       MemberList    `json:"members,omitempty"`
	Member        *ShapeRef     `json:"member,omitempty"`
	Key           *ShapeRef     `json:"key,omitempty"`
	Value         *ShapeRef     `json:"value,omitempty"`
	Required      []string      `json:"required,omitempty"`
	Enum          []string      `json:"enum,omitempty"`
	Min           *float64      `json:"min,omitempty"`
	Max           *float64      `json:"max,omitempty"`
	Pattern       string        `json:"pattern,omitempty"`
	Documentation string        `json:"documentation,omitempty"`
	Union         bool          `json:"union,omitempty"`
	Exception     bool          `json:"exception,omitempty"`
	Error         *RawError     `json:"error,omitempty"`
	Retryable     *RawRetryable `json:"retryable,omitempty"`
}

// RawError holds the error metadata block of an exception shape
type RawError struct {
	HTTPStatusCode int `json:"httpStatusCode"`
}

// RawRetryable marks an exception shape as retryable. Its presence on a shape
// means retryable; Throttling distinguishes throttling errors.
type RawRetryable struct {
	Throttling bool `json:"throttling"`
}

// Member is one named member of a structure shape
type Member struct {
	Name string
	Ref  ShapeRef
}

// MemberList preserves the declaration order of structure members. Parameter
// and column ordering are derived from it, so decoding through a plain Go map
// would corrupt the output.
type MemberList []Member

// UnmarshalJSON decodes a JSON object into an ordered member list
func (m *MemberList) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("failed to decode members: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("members: expected JSON object, got %v", tok)
	}

	var out MemberList
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("failed to decode member name: %w", err)
		}
		name, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("members: expected member name, got %v", keyTok)
		}

		var ref ShapeRef
		if err := dec.Decode(&ref); err != nil {
			return fmt.Errorf("failed to decode member %s: %w", name, err)
		}
		out = append(out, Member{Name: name, Ref: ref})
	}

	*m = out
	return nil
}

// Get returns the member with the given name, or nil
func (m MemberList) Get(name string) *Member {
	for i := range m {
		if m[i].Name == name {
			return &m[i]
		}
	}
	return nil
}

// NamedOperation pairs an operation with its key in the model's operation map
type NamedOperation struct {
	Key string
	Op  RawOperation
}

// RawOperationList preserves the declaration order of the model's operations
type RawOperationList []NamedOperation

// UnmarshalJSON decodes a JSON object into an ordered operation list
func (l *RawOperationList) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("failed to decode operations: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("operations: expected JSON object, got %v", tok)
	}

	var out RawOperationList
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("failed to decode operation name: %w", err)
		}
		name, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("operations: expected operation name, got %v", keyTok)
		}

		var op RawOperation
		if err := dec.Decode(&op); err != nil {
			return fmt.Errorf("failed to decode operation %s: %w", name, err)
		}
		out = append(out, NamedOperation{Key: name, Op: op})
	}

	*l = out
	return nil
}

// PaginationConfig is an explicit per-operation pagination override supplied
// by the model
type PaginationConfig struct {
	InputToken  string `json:"input_token"`
	OutputToken string `json:"output_token"`
	LimitKey    string `json:"limit_key"`
	ResultKey   string `json:"result_key"`
}

// Operation is the canonical, immutable form of one extracted operation.
// Created once by ExtractOperations and consumed read-only by every downstream
// component.
type Operation struct {
	Name              string
	OriginalName      string
	HTTPMethod        string
	HTTPURI           string
	Input             *ResolvedShape
	Output            *ResolvedShape
	InputShape        string
	OutputShape       string
	Errors            []string
	Documentation     string
	Deprecated        bool
	DeprecatedMessage string
}

// PaginationDescriptor describes how an operation's output can be paged
type PaginationDescriptor struct {
	Paginated   bool   `json:"paginated"`
	InputToken  string `json:"input_token,omitempty"`
	OutputToken string `json:"output_token,omitempty"`
	LimitKey    string `json:"limit_key,omitempty"`
	ResultKey   string `json:"result_key,omitempty"`
}

// ErrorDescriptor represents one exception shape in a uniform error taxonomy
type ErrorDescriptor struct {
	Name        string `json:"name"`
	HTTPStatus  int    `json:"http_status"`
	Retryable   bool   `json:"retryable"`
	Description string `json:"description,omitempty"`
}

// Resource is an inferred logical grouping of operations sharing a noun
type Resource struct {
	Name       string   `json:"name"`
	Operations []string `json:"operations"`
}

// ServiceSchema is the terminal schema record persisted for the runtime
// dispatcher as <service>.json
type ServiceSchema struct {
	Service          string            `json:"service"`
	Operations       []SchemaOperation `json:"operations"`
	Errors           []ErrorDescriptor `json:"errors"`
	Resources        []Resource        `json:"resources,omitempty"`
	Metadata         SchemaMetadata    `json:"metadata"`
	GeneratedAt      string            `json:"generated_at"`
	SchemaVersion    string            `json:"schema_version"`
	ExtractorVersion string            `json:"extractor_version"`
}

// SchemaMetadata carries service metadata into the persisted schema
type SchemaMetadata struct {
	APIVersion      string `json:"api_version"`
	Protocol        string `json:"protocol"`
	ServiceFullName string `json:"service_full_name"`
	EndpointPrefix  string `json:"endpoint_prefix"`
}

// SchemaOperation is one operation entry of the persisted schema
type SchemaOperation struct {
	Name          string                `json:"name"`
	OriginalName  string                `json:"original_name"`
	Type          string                `json:"type,omitempty"`
	HTTPMethod    string                `json:"http_method"`
	HTTPURI       string                `json:"http_uri"`
	InputShape    string                `json:"input_shape,omitempty"`
	OutputShape   string                `json:"output_shape,omitempty"`
	Errors        []string              `json:"errors,omitempty"`
	Documentation string                `json:"documentation,omitempty"`
	Deprecated    bool                  `json:"deprecated,omitempty"`
	Pagination    *PaginationDescriptor `json:"pagination,omitempty"`
}

// ClassificationResult holds the control plane vs data plane classification
// returned by the Bedrock inline agent
type ClassificationResult struct {
	ControlPlane []string `json:"control_plane"`
	DataPlane    []string `json:"data_plane"`
}

// IAMPolicy represents a generated IAM policy document
type IAMPolicy struct {
	Version   string            `json:"Version"`
	Statement []PolicyStatement `json:"Statement"`
}

// PolicyStatement is one statement of an IAM policy
type PolicyStatement struct {
	Effect   string   `json:"Effect"`
	Action   []string `json:"Action"`
	Resource any      `json:"Resource"`
}
