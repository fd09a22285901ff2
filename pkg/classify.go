package extractor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentruntime/types"
	"github.com/sirupsen/logrus"
)

const maxOperationsPerBatch = 100

const classifierInstruction = `You are an AWS architecture expert specialized in classifying AWS API operations.
Your task is to classify AWS API operations into two categories:
1. CONTROL_PLANE: Operations that manage AWS infrastructure (create, configure, delete resources)
2. DATA_PLANE: Operations that work with data within existing resources

Respond with ONLY valid JSON in this format:
{
  "control_plane": ["operation1", "operation2"],
  "data_plane": ["operation3", "operation4"]
}

Ensure every operation from the input list appears in exactly one category.`

// ClassifyOperations uses an AWS Bedrock inline agent to classify a schema's
// operations as control plane vs data plane. This is the one network-using
// feature of the package; the schema pipeline itself never calls it.
func ClassifyOperations(ctx context.Context, service string, ops []SchemaOperation) (*ClassificationResult, error) {
	if len(ops) == 0 {
		return &ClassificationResult{
			ControlPlane: []string{},
			DataPlane:    []string{},
		}, nil
	}

	names := make([]string, 0, len(ops))
	for _, op := range ops {
		names = append(names, op.OriginalName)
	}

	return classifyInBatches(ctx, service, names, maxOperationsPerBatch)
}

// classifyInBatches processes large operation lists in smaller batches
func classifyInBatches(ctx context.Context, service string, names []string, batchSize int) (*ClassificationResult, error) {
	var allControlPlane []string
	var allDataPlane []string

	batches := (len(names) + batchSize - 1) / batchSize
	for i := 0; i < len(names); i += batchSize {
		end := min(i+batchSize, len(names))
		batch := names[i:end]

		logrus.WithFields(logrus.Fields{
			"service": service,
			"batch":   (i / batchSize) + 1,
			"batches": batches,
			"size":    len(batch),
		}).Info("classifying operations")

		response, err := invokeInlineAgent(ctx, buildClassificationInput(service, batch))
		if err != nil {
			return nil, fmt.Errorf("failed to invoke inline agent for batch %d: %w", (i/batchSize)+1, err)
		}

		result, err := parseClassificationResponse(response)
		if err != nil {
			return nil, fmt.Errorf("failed to parse classification response for batch %d: %w", (i/batchSize)+1, err)
		}

		allControlPlane = append(allControlPlane, result.ControlPlane...)
		allDataPlane = append(allDataPlane, result.DataPlane...)
	}

	return &ClassificationResult{
		ControlPlane: allControlPlane,
		DataPlane:    allDataPlane,
	}, nil
}

// buildClassificationInput creates the prompt for operation classification
func buildClassificationInput(service string, names []string) string {
	return fmt.Sprintf(`Classify these AWS API operations into CONTROL_PLANE vs DATA_PLANE.

CONTROL_PLANE: operations that manage the infrastructure itself, such as
creating, configuring, deleting or modifying resources, their permissions,
tags or settings (CreateTable, DeleteBucket, PutBucketPolicy, AttachRolePolicy).

DATA_PLANE: operations that read, write or query data stored within existing
resources without changing the resource configuration (GetItem, Query, Scan,
GetObject, PutObject, Invoke, DescribeInstances).

When in doubt, classify as DATA_PLANE.

Service: %s
Operations: %s

Respond with ONLY valid JSON in exactly this format:
{
  "control_plane": ["operation1", "operation2"],
  "data_plane": ["operation3", "operation4"]
}

Ensure every operation from the input list appears in exactly one category.
Do not add explanations or additional text.`, service, strings.Join(names, ", "))
}

// invokeInlineAgent creates and invokes an inline Bedrock agent
func invokeInlineAgent(ctx context.Context, inputText string) (string, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := bedrockagentruntime.NewFromConfig(cfg)

	result, err := client.InvokeInlineAgent(ctx, &bedrockagentruntime.InvokeInlineAgentInput{
		FoundationModel: aws.String("us.anthropic.claude-3-5-sonnet-20241022-v2:0"),
		Instruction:     aws.String(classifierInstruction),
		AgentName:       aws.String("OperationClassifier"),
		InputText:       aws.String(inputText),
		SessionId:       aws.String("classification-session"),
		EnableTrace:     aws.Bool(false),
	})
	if err != nil {
		return "", fmt.Errorf("failed to invoke inline agent: %w", err)
	}

	var responseText strings.Builder
	for event := range result.GetStream().Events() {
		if chunk, ok := event.(*types.InlineAgentResponseStreamMemberChunk); ok {
			if chunk.Value.Bytes != nil {
				responseText.Write(chunk.Value.Bytes)
			}
		}
	}

	if err := result.GetStream().Err(); err != nil {
		return "", fmt.Errorf("error reading stream: %w", err)
	}

	return responseText.String(), nil
}

// parseClassificationResponse parses the JSON response from the agent,
// tolerating surrounding prose
func parseClassificationResponse(response string) (*ClassificationResult, error) {
	response = strings.TrimSpace(response)

	start := strings.Index(response, "{")
	if start == -1 {
		return nil, fmt.Errorf("no valid JSON found in response: %s", response)
	}

	end := strings.LastIndex(response, "}")
	if end == -1 || end <= start {
		return nil, fmt.Errorf("incomplete JSON in response: %s", response)
	}

	var result ClassificationResult
	if err := json.Unmarshal([]byte(response[start:end+1]), &result); err != nil {
		return nil, fmt.Errorf("failed to parse classification JSON: %w", err)
	}

	return &result, nil
}

// ApplyClassification annotates schema operations with their classification.
// Unlisted operations default to data_plane.
func ApplyClassification(ops []SchemaOperation, classification *ClassificationResult) []SchemaOperation {
	controlPlane := make(map[string]bool, len(classification.ControlPlane))
	for _, name := range classification.ControlPlane {
		controlPlane[name] = true
	}

	for i := range ops {
		if controlPlane[ops[i].OriginalName] {
			ops[i].Type = "control_plane"
		} else {
			ops[i].Type = "data_plane"
		}
	}
	return ops
}

// CountControlPlaneOperations counts operations classified as control plane
func CountControlPlaneOperations(ops []SchemaOperation) int {
	count := 0
	for _, op := range ops {
		if op.Type == "control_plane" {
			count++
		}
	}
	return count
}
