package extractor

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Versions stamped into every persisted schema
const (
	SchemaVersion    = "1.1.0"
	ExtractorVersion = "0.4.0"
)

const (
	// minConcurrency is the minimum number of concurrent signature builds
	minConcurrency = 2
	// maxConcurrencyCap keeps the pool from oversubscribing small machines
	maxConcurrencyCap = 8
)

// DefaultMaxConcurrency returns the default signature-build concurrency based
// on available CPUs.
func DefaultMaxConcurrency() int64 {
	numCPU := int64(runtime.NumCPU())
	return min(max(numCPU, minConcurrency), maxConcurrencyCap)
}

// BuildServiceSchema compiles a raw service model into the normalized schema
// record persisted for the runtime dispatcher. Partial or empty models are
// accepted; every structural defect degrades to a documented fallback.
func BuildServiceSchema(service string, model *ServiceModel) *ServiceSchema {
	schema := &ServiceSchema{
		Service:          service,
		Operations:       []SchemaOperation{},
		Errors:           []ErrorDescriptor{},
		GeneratedAt:      time.Now().UTC().Format(time.RFC3339),
		SchemaVersion:    SchemaVersion,
		ExtractorVersion: ExtractorVersion,
	}
	if model == nil {
		return schema
	}

	schema.Metadata = SchemaMetadata{
		APIVersion:      model.Metadata.APIVersion,
		Protocol:        model.Metadata.Protocol,
		ServiceFullName: model.Metadata.ServiceFullName,
		EndpointPrefix:  model.Metadata.EndpointPrefix,
	}

	ops := ExtractOperations(model)
	for _, op := range ops {
		entry := SchemaOperation{
			Name:          op.Name,
			OriginalName:  op.OriginalName,
			HTTPMethod:    op.HTTPMethod,
			HTTPURI:       op.HTTPURI,
			InputShape:    op.InputShape,
			OutputShape:   op.OutputShape,
			Errors:        op.Errors,
			Documentation: op.Documentation,
			Deprecated:    op.Deprecated,
		}
		if pag := DetectPagination(op, model.Pagination); pag.Paginated {
			entry.Pagination = &pag
		}
		schema.Operations = append(schema.Operations, entry)
	}

	schema.Errors = ExtractErrors(model)
	schema.Resources = InferResources(ops)
	return schema
}

// BuildSignatures synthesizes one signature per operation. Operations are
// independent, so the work runs through a bounded worker pool; results are
// index-tagged, so output order always matches extraction order regardless of
// completion order.
func BuildSignatures(ctx context.Context, service string, model *ServiceModel, maxConcurrency int64) ([]Signature, error) {
	ops := ExtractOperations(model)
	sigs := make([]Signature, len(ops))
	if len(ops) == 0 {
		return sigs, nil
	}

	if maxConcurrency <= 0 {
		maxConcurrency = DefaultMaxConcurrency()
	}

	var pagination map[string]PaginationConfig
	if model != nil {
		pagination = model.Pagination
	}

	sem := semaphore.NewWeighted(maxConcurrency)
	group, groupCtx := errgroup.WithContext(ctx)
	for i, op := range ops {
		group.Go(func() error {
			if err := sem.Acquire(groupCtx, 1); err != nil {
				return fmt.Errorf("acquire semaphore: %w", err)
			}
			defer sem.Release(1)

			sigs[i] = AssembleSignature(service, op, DetectPagination(op, pagination))
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("parallel signature generation: %w", err)
	}
	return sigs, nil
}
