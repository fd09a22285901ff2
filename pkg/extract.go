package extractor

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadServiceModel parses raw model JSON into a ServiceModel. The decode is
// lenient: missing sections simply stay empty, so partial models flow through
// the pipeline's fallback behaviors instead of failing here.
func LoadServiceModel(data []byte) (*ServiceModel, error) {
	var model ServiceModel
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, fmt.Errorf("failed to parse service model JSON: %w", err)
	}
	return &model, nil
}

// LoadServiceModelFile reads and parses a model JSON file from disk
func LoadServiceModelFile(path string) (*ServiceModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model file %s: %w", path, err)
	}

	model, err := LoadServiceModel(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse model file %s: %w", path, err)
	}
	return model, nil
}

// FindServiceModelFile locates the model JSON file for a service under the
// models directory, expecting the api-models-aws layout
// (<modelsDir>/<service>/service/*.json) and falling back to any JSON file
// under <modelsDir>/<service>.
func FindServiceModelFile(modelsDir, service string) (string, error) {
	serviceDir := filepath.Join(modelsDir, service, "service")
	if _, err := os.Stat(serviceDir); os.IsNotExist(err) {
		serviceDir = filepath.Join(modelsDir, service)
		if _, err := os.Stat(serviceDir); os.IsNotExist(err) {
			return "", fmt.Errorf("service directory not found: %s", serviceDir)
		}
	}

	var jsonFile string
	err := filepath.Walk(serviceDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if strings.HasSuffix(path, ".json") {
			jsonFile = path
			return filepath.SkipAll
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("error searching for model JSON file: %w", err)
	}

	if jsonFile == "" {
		return "", fmt.Errorf("no model JSON file found for service %s", service)
	}
	return jsonFile, nil
}

// ExtractServiceSchema is the end-to-end extraction entry point: locate the
// service's model file, load it and compile the schema record. The raw model
// is returned alongside the schema for callers that also render signatures.
func ExtractServiceSchema(modelsDir, service string) (*ServiceSchema, *ServiceModel, error) {
	modelFile, err := FindServiceModelFile(modelsDir, service)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to find model file for service %s: %w", service, err)
	}

	model, err := LoadServiceModelFile(modelFile)
	if err != nil {
		return nil, nil, err
	}

	return BuildServiceSchema(service, model), model, nil
}
