package llm

import (
	"context"
	"fmt"
)

// Provider defines the interface for LLM extraction backends
type Provider interface {
	// Name returns the provider name
	Name() string

	// ExtractFields sends the document text to the model and returns the raw
	// response. The caller is responsible for JSON cleanup and decoding.
	ExtractFields(ctx context.Context, req ExtractRequest) (*ExtractResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// ExtractRequest contains the input for one extraction call
type ExtractRequest struct {
	// DocumentText is the raw FNOL document text
	DocumentText string

	// Prompt is an optional custom prompt (if empty, use the default)
	Prompt string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// ExtractResponse contains the model's raw output
type ExtractResponse struct {
	// Output is the response text, expected to contain a JSON object
	Output string

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "gemini", "openai", "ollama"
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for Gemini/OpenAI
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests
	Timeout int // seconds

	// MaxTokens for response generation
	MaxTokens int
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:  "gemini",
		Model:     "gemini-2.5-flash",
		Timeout:   60,
		MaxTokens: 2048,
	}
}

// systemInstruction frames every extraction call.
const systemInstruction = "You are an expert insurance claims processor. You extract structured fields from FNOL documents and return only valid JSON."

// BuildExtractionPrompt constructs the default field-extraction prompt. The
// JSON skeleton doubles as the schema the response is validated against.
func BuildExtractionPrompt(documentText string) string {
	return fmt.Sprintf(`You are an expert insurance claims processor. Extract structured information from this FNOL document.

DOCUMENT TEXT:
%s

Extract these fields in JSON format. Use null if not found:

{
  "policyInformation": {
    "policyNumber": "string or null",
    "policyholderName": "string or null",
    "effectiveDates": "string or null"
  },
  "incidentInformation": {
    "date": "MM/DD/YYYY or null",
    "time": "HH:MM AM/PM or null",
    "location": {
      "street": "string or null",
      "city": "string or null",
      "state": "string or null",
      "zip": "string or null"
    },
    "description": "string or null"
  },
  "involvedParties": {
    "claimant": {
      "name": "string or null",
      "phone": "string or null",
      "email": "string or null"
    },
    "thirdParties": []
  },
  "assetDetails": {
    "assetType": "vehicle/property/other or null",
    "assetId": "string or null",
    "vehicleInfo": {
      "year": "string or null",
      "make": "string or null",
      "model": "string or null"
    },
    "estimatedDamage": "number or null"
  },
  "otherMandatoryFields": {
    "claimType": "auto/property/injury/other or null",
    "attachments": "string or null",
    "initialEstimate": "number or null"
  }
}

RULES:
1. Extract exact values - don't infer
2. Dates in MM/DD/YYYY format
3. Currency as numbers only
4. Infer claimType from context
5. Return ONLY valid JSON
`, documentText)
}
