package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractOperationsOrderAndNames(t *testing.T) {
	ops := ExtractOperations(testModel())
	require.Len(t, ops, 3)

	assert.Equal(t, "list-buckets", ops[0].Name)
	assert.Equal(t, "ListBuckets", ops[0].OriginalName)
	assert.Equal(t, "create-bucket", ops[1].Name)
	assert.Equal(t, "delete-bucket", ops[2].Name)
}

func TestExtractOperationsHTTPBinding(t *testing.T) {
	ops := ExtractOperations(testModel())

	assert.Equal(t, "GET", ops[0].HTTPMethod)
	assert.Equal(t, "/", ops[0].HTTPURI)
	assert.Equal(t, "PUT", ops[1].HTTPMethod)
	assert.Equal(t, "/{Bucket}", ops[1].HTTPURI)

	// DeleteBucket carries no http block and gets the protocol default
	assert.Equal(t, "POST", ops[2].HTTPMethod)
	assert.Equal(t, "/", ops[2].HTTPURI)
}

func TestExtractOperationsShapes(t *testing.T) {
	ops := ExtractOperations(testModel())

	lb := ops[0]
	assert.Equal(t, "ListBucketsRequest", lb.InputShape)
	assert.Equal(t, "ListBucketsOutput", lb.OutputShape)
	require.NotNil(t, lb.Input)
	require.NotNil(t, lb.Output)
	assert.Equal(t, KindStructure, lb.Input.Kind)

	// CreateBucket has no output
	assert.Nil(t, ops[1].Output)
	assert.Empty(t, ops[1].OutputShape)
}

func TestExtractOperationsErrors(t *testing.T) {
	ops := ExtractOperations(testModel())

	assert.Equal(t, []string{"NoSuchBucket"}, ops[1].Errors)
	// never nil, even with no declared errors
	assert.NotNil(t, ops[0].Errors)
	assert.Empty(t, ops[0].Errors)
}

func TestExtractOperationsFallsBackToMapKey(t *testing.T) {
	model := &ServiceModel{
		Operations: RawOperationList{
			{Key: "HeadObject", Op: RawOperation{}},
		},
		Shapes: map[string]*RawShape{},
	}

	ops := ExtractOperations(model)
	require.Len(t, ops, 1)
	assert.Equal(t, "HeadObject", ops[0].OriginalName)
	assert.Equal(t, "head-object", ops[0].Name)
}

func TestExtractOperationsDeprecated(t *testing.T) {
	model := testModel()
	model.Operations = append(model.Operations, NamedOperation{
		Key: "ListObjects",
		Op: RawOperation{
			Name:              "ListObjects",
			Deprecated:        true,
			DeprecatedMessage: "Use ListObjectsV2.",
		},
	})

	ops := ExtractOperations(model)
	last := ops[len(ops)-1]
	assert.True(t, last.Deprecated)
	assert.Equal(t, "Use ListObjectsV2.", last.DeprecatedMessage)
}

func TestExtractOperationsNilModel(t *testing.T) {
	assert.Nil(t, ExtractOperations(nil))
}
