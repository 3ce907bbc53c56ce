package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/mkotturi/claimtriage/internal/cache"
	"github.com/mkotturi/claimtriage/internal/ingest"
	"github.com/mkotturi/claimtriage/internal/llm"
	"github.com/mkotturi/claimtriage/internal/model"
	"github.com/mkotturi/claimtriage/internal/route"
	"github.com/mkotturi/claimtriage/internal/validate"
	"github.com/mkotturi/claimtriage/internal/worker"
)

// Pipeline orchestrates the complete claim triage process: read the
// document, extract fields, validate, scan for fraud language, route.
type Pipeline struct {
	reader    *ingest.Reader
	extractor *llm.Extractor
	config    *model.Config
}

// NewPipeline creates a pipeline from the given configuration.
func NewPipeline(cfg *model.Config) (*Pipeline, error) {
	extractor, err := llm.NewExtractor(llm.ConfigFromModel(cfg.LLM))
	if err != nil {
		return nil, fmt.Errorf("initialize LLM provider: %w", err)
	}

	if c := cache.New(cfg.Cache); c != nil {
		extractor.SetCache(c)
	}
	if cfg.RateLimiting.RequestsPerSecond > 0 {
		extractor.SetLimiter(worker.NewLimiter(
			cfg.RateLimiting.RequestsPerSecond,
			cfg.RateLimiting.BurstSize,
		))
	}

	return &Pipeline{
		reader:    ingest.NewReader(),
		extractor: extractor,
		config:    cfg,
	}, nil
}

// ProviderName returns the name of the active extraction provider.
func (p *Pipeline) ProviderName() string {
	return p.extractor.ProviderName()
}

// ProcessDocument runs one claim document through the full pipeline. It
// never returns an error: failures are recorded in the result's Status and
// Error fields so batch runs keep going.
func (p *Pipeline) ProcessDocument(ctx context.Context, path string) *model.ProcessResult {
	result := &model.ProcessResult{
		DocumentName:    filepath.Base(path),
		ProcessedAt:     time.Now().UTC(),
		MissingFields:   []string{},
		FraudIndicators: []string{},
	}

	text, err := p.reader.ReadText(path)
	if err != nil {
		result.Status = model.StatusReadFailed
		result.Error = err.Error()
		return result
	}

	record, warnings, err := p.extractor.Extract(ctx, text)
	if err != nil {
		result.Status = model.StatusExtractionFailed
		result.Error = err.Error()
		return result
	}
	result.Warnings = warnings

	missing := validate.MissingFields(record)
	fraud := validate.FraudIndicators(record.Description())
	decision := route.Decide(route.InputFromRecord(record, missing, fraud))

	result.Status = model.StatusSuccess
	result.ExtractedFields = record
	result.MissingFields = missing
	result.FraudIndicators = fraud
	result.RecommendedRoute = decision.Route
	result.Reasoning = decision.Reasoning
	result.EstimatedDamage = record.DamageAmount()

	return result
}

// Summarize aggregates batch results into stats and line items.
func Summarize(results []*model.ProcessResult) model.BatchSummary {
	stats := model.NewBatchStats()
	entries := make([]model.BatchEntry, 0, len(results))

	for _, r := range results {
		stats.Total++
		entry := model.BatchEntry{Filename: r.DocumentName}
		if r.Status == model.StatusSuccess {
			stats.Successful++
			stats.Routes[r.RecommendedRoute]++
			entry.Route = r.RecommendedRoute
			entry.Status = "success"
		} else {
			stats.Failed++
			entry.Status = "failed"
			entry.Error = r.Error
		}
		entries = append(entries, entry)
	}

	return model.BatchSummary{
		ProcessedAt: time.Now().UTC(),
		Statistics:  stats,
		Results:     entries,
	}
}
