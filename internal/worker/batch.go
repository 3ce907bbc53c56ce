package worker

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/mkotturi/claimtriage/internal/ingest"
	"github.com/mkotturi/claimtriage/internal/model"
)

// Processor handles a single claim document end to end
type Processor interface {
	ProcessDocument(ctx context.Context, path string) *model.ProcessResult
}

// DocumentJob processes one document through a Processor
type DocumentJob struct {
	Path      string
	Processor Processor
}

// Execute runs the job
func (j *DocumentJob) Execute(ctx context.Context) Result {
	return &DocumentResult{
		Path:   j.Path,
		Result: j.Processor.ProcessDocument(ctx, j.Path),
	}
}

// DocumentResult wraps a processing outcome for the pool
type DocumentResult struct {
	Path   string
	Result *model.ProcessResult
}

// GetError surfaces failed documents to the pool's consumers. Successful
// results, including those routed to manual review, return nil.
func (r *DocumentResult) GetError() error {
	if r.Result == nil {
		return errors.New("no result")
	}
	if r.Result.Status != model.StatusSuccess {
		return errors.New(r.Result.Error)
	}
	return nil
}

// BatchProcessor processes claim documents concurrently
type BatchProcessor struct {
	processor   Processor
	concurrency int
}

// NewBatchProcessor creates a batch processor with the given concurrency
func NewBatchProcessor(processor Processor, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		processor:   processor,
		concurrency: concurrency,
	}
}

// ProcessPaths runs every document through the pool. Results come back in
// the same order as paths regardless of completion order.
func (b *BatchProcessor) ProcessPaths(ctx context.Context, paths []string) []*model.ProcessResult {
	if len(paths) == 0 {
		return []*model.ProcessResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, path := range paths {
		pool.Submit(&DocumentJob{
			Path:      path,
			Processor: b.processor,
		})
	}

	poolResults := pool.Wait()

	order := make(map[string]int, len(paths))
	for i, path := range paths {
		order[path] = i
	}

	results := make([]*model.ProcessResult, 0, len(poolResults))
	docResults := make([]*DocumentResult, 0, len(poolResults))
	for _, r := range poolResults {
		docResults = append(docResults, r.(*DocumentResult))
	}
	sort.Slice(docResults, func(i, j int) bool {
		return order[docResults[i].Path] < order[docResults[j].Path]
	})
	for _, r := range docResults {
		results = append(results, r.Result)
	}

	return results
}

// ProcessDirectory discovers claim documents in dir and processes them
func (b *BatchProcessor) ProcessDirectory(ctx context.Context, dir string) ([]*model.ProcessResult, error) {
	paths, err := ingest.ListDocuments(dir)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no claim documents found in %s", dir)
	}

	return b.ProcessPaths(ctx, paths), nil
}
