package extractor

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the optional extractor.yaml configuration file
type Config struct {
	// ModelsDir is the root of the api-models-aws checkout
	ModelsDir string `yaml:"models_dir"`
	// OutputDir receives <service>.json and <service>.nu files
	OutputDir string `yaml:"output_dir"`
	// MaxParallel bounds the signature-build worker pool (0 = auto)
	MaxParallel int64 `yaml:"max_parallel"`
	// Classify enables Bedrock control/data plane classification by default
	Classify bool `yaml:"classify"`
	// ServiceAliases maps a service name to its model directory name when the
	// two differ (e.g. opensearch -> opensearchservice)
	ServiceAliases map[string]string `yaml:"service_aliases"`
}

// DefaultConfig returns the configuration used when no extractor.yaml exists
func DefaultConfig() *Config {
	return &Config{
		ModelsDir: "models",
		OutputDir: "schemas",
	}
}

// LoadConfig reads an extractor.yaml file. A missing file is not an error;
// the defaults apply.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// ResolveModelName maps a service name through the configured aliases
func (c *Config) ResolveModelName(service string) string {
	if c == nil {
		return service
	}
	if alias, ok := c.ServiceAliases[service]; ok && alias != "" {
		return alias
	}
	return service
}
