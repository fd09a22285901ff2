package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	extractor "github.com/lprior-repo/aws-cli-nushell/pkg"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type rootOptions struct {
	configPath string
	modelsDir  string
	outputDir  string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "aws-nu",
		Short:        "Extract AWS service model schemas and generate Nushell command signatures",
		Version:      extractor.ExtractorVersion,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "extractor.yaml", "path to the extractor config file")
	cmd.PersistentFlags().StringVar(&opts.modelsDir, "models", "", "root of the api-models-aws checkout (overrides config)")
	cmd.PersistentFlags().StringVar(&opts.outputDir, "output", "", "output directory for generated files (overrides config)")

	cmd.AddCommand(newExtractCmd(opts))
	cmd.AddCommand(newRenderCmd(opts))
	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newPolicyCmd())

	return cmd
}

// loadConfig loads the extractor config and applies flag overrides
func (o *rootOptions) loadConfig() (*extractor.Config, error) {
	cfg, err := extractor.LoadConfig(o.configPath)
	if err != nil {
		return nil, err
	}
	if o.modelsDir != "" {
		cfg.ModelsDir = o.modelsDir
	}
	if o.outputDir != "" {
		cfg.OutputDir = o.outputDir
	}
	return cfg, nil
}

func newExtractCmd(opts *rootOptions) *cobra.Command {
	var servicesFlag string
	var classify bool

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract service schemas to <service>.json files",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if classify {
				cfg.Classify = true
			}

			services := splitServices(servicesFlag)
			if len(services) == 0 {
				return fmt.Errorf("at least one service is required (--service=s3,dynamodb,...)")
			}

			if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}

			totalOperations := 0
			successful := 0
			for _, service := range services {
				modelName := cfg.ResolveModelName(service)
				schema, _, err := extractor.ExtractServiceSchema(cfg.ModelsDir, modelName)
				if err != nil {
					logrus.WithError(err).WithField("service", service).Error("extraction failed")
					continue
				}

				if cfg.Classify {
					classification, err := extractor.ClassifyOperations(cmd.Context(), service, schema.Operations)
					if err != nil {
						logrus.WithError(err).WithField("service", service).Warn("classification failed; continuing without it")
					} else {
						schema.Operations = extractor.ApplyClassification(schema.Operations, classification)
						logrus.WithFields(logrus.Fields{
							"service":       service,
							"control_plane": extractor.CountControlPlaneOperations(schema.Operations),
						}).Info("classified operations")
					}
				}

				if result := extractor.ValidateServiceSchema(schema); !result.Valid {
					for _, msg := range result.Errors {
						logrus.WithField("service", service).Error(msg)
					}
					continue
				}

				outputFile := filepath.Join(cfg.OutputDir, service+".json")
				if err := extractor.WriteServiceSchemaJSON(schema, outputFile); err != nil {
					logrus.WithError(err).WithField("service", service).Error("failed to write schema")
					continue
				}

				logrus.WithFields(logrus.Fields{
					"service":    service,
					"operations": len(schema.Operations),
					"file":       outputFile,
				}).Info("schema written")
				totalOperations += len(schema.Operations)
				successful++
			}

			logrus.WithFields(logrus.Fields{
				"services":   fmt.Sprintf("%d/%d", successful, len(services)),
				"operations": totalOperations,
			}).Info("extraction complete")

			if successful == 0 {
				return fmt.Errorf("no services extracted successfully")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&servicesFlag, "service", "", "AWS service name(s), comma-separated (e.g. acm,dynamodb,lambda)")
	cmd.Flags().BoolVar(&classify, "classify", false, "classify operations as control plane vs data plane via AWS Bedrock")

	return cmd
}

func newRenderCmd(opts *rootOptions) *cobra.Command {
	var servicesFlag string
	var parallel int64

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render Nushell command modules to <service>.nu files",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			services := splitServices(servicesFlag)
			if len(services) == 0 {
				return fmt.Errorf("at least one service is required (--service=s3,dynamodb,...)")
			}

			if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}

			maxParallel := parallel
			if maxParallel <= 0 {
				maxParallel = cfg.MaxParallel
			}

			for _, service := range services {
				modelName := cfg.ResolveModelName(service)
				modelFile, err := extractor.FindServiceModelFile(cfg.ModelsDir, modelName)
				if err != nil {
					return err
				}
				model, err := extractor.LoadServiceModelFile(modelFile)
				if err != nil {
					return err
				}

				sigs, err := extractor.BuildSignatures(cmd.Context(), service, model, maxParallel)
				if err != nil {
					return err
				}

				outputFile := filepath.Join(cfg.OutputDir, service+".nu")
				if err := extractor.WriteNuModule(service, sigs, outputFile); err != nil {
					return fmt.Errorf("failed to write module for %s: %w", service, err)
				}

				logrus.WithFields(logrus.Fields{
					"service":  service,
					"commands": len(sigs),
					"file":     outputFile,
				}).Info("module written")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&servicesFlag, "service", "", "AWS service name(s), comma-separated")
	cmd.Flags().Int64Var(&parallel, "parallel", 0, "max concurrent signature builds (0 = auto)")

	return cmd
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <schema.json>...",
		Short: "Validate previously extracted schema files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			invalid := 0
			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("failed to read schema file %s: %w", path, err)
				}

				var schema extractor.ServiceSchema
				if err := json.Unmarshal(data, &schema); err != nil {
					return fmt.Errorf("failed to parse schema file %s: %w", path, err)
				}

				result := extractor.ValidateServiceSchema(&schema)
				if result.Valid {
					logrus.WithField("file", path).Info("schema is valid")
					continue
				}

				invalid++
				for _, msg := range result.Errors {
					logrus.WithField("file", path).Error(msg)
				}
			}

			if invalid > 0 {
				return fmt.Errorf("%d schema file(s) failed validation", invalid)
			}
			return nil
		},
	}
}

func newPolicyCmd() *cobra.Command {
	var controlPlaneOnly bool
	var outputFile string

	cmd := &cobra.Command{
		Use:   "policy <schema.json>",
		Short: "Generate an IAM policy covering a schema's operations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read schema file %s: %w", args[0], err)
			}

			var schema extractor.ServiceSchema
			if err := json.Unmarshal(data, &schema); err != nil {
				return fmt.Errorf("failed to parse schema file %s: %w", args[0], err)
			}

			policy, err := extractor.GeneratePolicy(&schema, controlPlaneOnly)
			if err != nil {
				return err
			}
			if err := extractor.ValidatePolicyJSON(policy); err != nil {
				return err
			}

			if outputFile != "" {
				return extractor.WritePolicyJSON(policy, outputFile)
			}

			out, err := json.MarshalIndent(policy, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal policy JSON: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().BoolVar(&controlPlaneOnly, "control-plane-only", false, "include only operations classified as control plane")
	cmd.Flags().StringVar(&outputFile, "output-file", "", "write the policy to a file instead of stdout")

	return cmd
}

func splitServices(flag string) []string {
	var out []string
	for _, s := range strings.Split(flag, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
