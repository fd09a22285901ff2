package extractor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyOperationsEmpty(t *testing.T) {
	got, err := ClassifyOperations(context.Background(), "s3", nil)
	require.NoError(t, err)
	assert.Empty(t, got.ControlPlane)
	assert.Empty(t, got.DataPlane)
}

func TestBuildClassificationInput(t *testing.T) {
	prompt := buildClassificationInput("dynamodb", []string{"CreateTable", "GetItem", "Query"})

	assert.Contains(t, prompt, "Service: dynamodb")
	assert.Contains(t, prompt, "CreateTable, GetItem, Query")
	assert.Contains(t, prompt, "CONTROL_PLANE")
	assert.Contains(t, prompt, "DATA_PLANE")
}

func TestParseClassificationResponse(t *testing.T) {
	raw := `{"control_plane": ["CreateTable"], "data_plane": ["GetItem", "Query"]}`

	got, err := parseClassificationResponse(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"CreateTable"}, got.ControlPlane)
	assert.Equal(t, []string{"GetItem", "Query"}, got.DataPlane)
}

func TestParseClassificationResponseWithProse(t *testing.T) {
	raw := "Here is the classification:\n```json\n" +
		`{"control_plane": ["DeleteBucket"], "data_plane": ["GetObject"]}` +
		"\n```\nLet me know if you need anything else."

	got, err := parseClassificationResponse(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"DeleteBucket"}, got.ControlPlane)
	assert.Equal(t, []string{"GetObject"}, got.DataPlane)
}

func TestParseClassificationResponseErrors(t *testing.T) {
	_, err := parseClassificationResponse("no json here")
	require.Error(t, err)

	_, err = parseClassificationResponse("{ truncated")
	require.Error(t, err)

	_, err = parseClassificationResponse(`{"control_plane": "not a list"}`)
	require.Error(t, err)
}

func TestApplyClassification(t *testing.T) {
	ops := []SchemaOperation{
		{OriginalName: "CreateBucket"},
		{OriginalName: "GetObject"},
		{OriginalName: "UnheardOf"},
	}
	classification := &ClassificationResult{
		ControlPlane: []string{"CreateBucket"},
		DataPlane:    []string{"GetObject"},
	}

	got := ApplyClassification(ops, classification)
	assert.Equal(t, "control_plane", got[0].Type)
	assert.Equal(t, "data_plane", got[1].Type)

	// operations the agent never mentioned default to data plane
	assert.Equal(t, "data_plane", got[2].Type)
}

func TestCountControlPlaneOperations(t *testing.T) {
	ops := []SchemaOperation{
		{OriginalName: "A", Type: "control_plane"},
		{OriginalName: "B", Type: "data_plane"},
		{OriginalName: "C", Type: "control_plane"},
		{OriginalName: "D"},
	}

	assert.Equal(t, 2, CountControlPlaneOperations(ops))
	assert.Zero(t, CountControlPlaneOperations(nil))
}
