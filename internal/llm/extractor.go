package llm

import (
	"context"
	"fmt"

	"github.com/mkotturi/claimtriage/internal/cache"
	"github.com/mkotturi/claimtriage/internal/model"
)

// RateLimiter throttles extraction calls per provider. Satisfied by
// worker.Limiter; nil means unlimited.
type RateLimiter interface {
	Wait(ctx context.Context, key string) error
}

// Extractor turns document text into a ClaimRecord via the configured
// provider, with optional response caching and rate limiting. A transport
// or API failure is an error; a malformed or incomplete model response is
// not. It degrades to an empty or partial record plus warnings, and the
// field validator reports the gaps.
type Extractor struct {
	provider Provider
	config   Config
	cache    cache.Cache
	limiter  RateLimiter
}

// NewExtractor creates an extractor with the provider named in config.
func NewExtractor(config Config) (*Extractor, error) {
	provider, err := NewProvider(config)
	if err != nil {
		return nil, fmt.Errorf("create provider: %w", err)
	}

	return &Extractor{
		provider: provider,
		config:   config,
	}, nil
}

// NewExtractorWithProvider creates an extractor around an existing provider.
func NewExtractorWithProvider(provider Provider, config Config) *Extractor {
	return &Extractor{
		provider: provider,
		config:   config,
	}
}

// SetCache enables response caching (nil disables it).
func (e *Extractor) SetCache(c cache.Cache) {
	e.cache = c
}

// SetLimiter enables rate limiting of provider calls (nil disables it).
func (e *Extractor) SetLimiter(l RateLimiter) {
	e.limiter = l
}

// ProviderName returns the active provider's name.
func (e *Extractor) ProviderName() string {
	if e.provider == nil {
		return ""
	}
	return e.provider.Name()
}

// Model returns the configured model name.
func (e *Extractor) Model() string {
	return e.config.Model
}

// Extract returns the structured fields for one document's text, plus any
// warnings accumulated while cleaning up the model's response.
func (e *Extractor) Extract(ctx context.Context, documentText string) (*model.ClaimRecord, []string, error) {
	output, cached, err := e.rawOutput(ctx, documentText)
	if err != nil {
		return nil, nil, err
	}

	var warnings []string
	if cached {
		warnings = append(warnings, "extraction served from cache")
	}

	record, notes, err := DecodeClaimRecord(output)
	warnings = append(warnings, notes...)
	if err != nil {
		// Unrecoverable payload: per the collaborator contract this reads
		// as "all fields absent", not as a failed document.
		warnings = append(warnings, fmt.Sprintf("unparseable extraction response: %v", err))
		return &model.ClaimRecord{}, warnings, nil
	}

	return record, warnings, nil
}

// rawOutput fetches the model response, via cache when possible.
func (e *Extractor) rawOutput(ctx context.Context, documentText string) (string, bool, error) {
	key := cache.ExtractionKey(e.ProviderName(), e.config.Model, documentText)

	if e.cache != nil {
		if payload, found := e.cache.Get(key); found {
			return string(payload), true, nil
		}
	}

	if e.limiter != nil {
		if err := e.limiter.Wait(ctx, e.ProviderName()); err != nil {
			return "", false, fmt.Errorf("rate limit wait: %w", err)
		}
	}

	resp, err := e.provider.ExtractFields(ctx, ExtractRequest{
		DocumentText: documentText,
		Model:        e.config.Model,
		MaxTokens:    e.config.MaxTokens,
	})
	if err != nil {
		return "", false, fmt.Errorf("extract fields: %w", err)
	}

	if e.cache != nil {
		_ = e.cache.Set(key, []byte(resp.Output), 0)
	}

	return resp.Output, false, nil
}
