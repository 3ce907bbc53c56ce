package llm

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildClaimJSONSchema returns the extraction response schema as a generic
// map. Sections are optional since an incomplete response is degraded to
// missing fields, not rejected, but a present section must be an object
// with correctly typed leaves.
func BuildClaimJSONSchema() map[string]any {
	nullableString := map[string]any{"type": []string{"string", "null"}}
	nullableNumber := map[string]any{"type": []string{"number", "null"}}

	party := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name":  nullableString,
			"phone": nullableString,
			"email": nullableString,
		},
	}

	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"policyInformation": map[string]any{
				"type": []string{"object", "null"},
				"properties": map[string]any{
					"policyNumber":     nullableString,
					"policyholderName": nullableString,
					"effectiveDates":   nullableString,
				},
			},
			"incidentInformation": map[string]any{
				"type": []string{"object", "null"},
				"properties": map[string]any{
					"date": nullableString,
					"time": nullableString,
					"location": map[string]any{
						"type": []string{"object", "null"},
						"properties": map[string]any{
							"street": nullableString,
							"city":   nullableString,
							"state":  nullableString,
							"zip":    nullableString,
						},
					},
					"description": nullableString,
				},
			},
			"involvedParties": map[string]any{
				"type": []string{"object", "null"},
				"properties": map[string]any{
					"claimant": party,
					"thirdParties": map[string]any{
						"type":  []string{"array", "null"},
						"items": party,
					},
				},
			},
			"assetDetails": map[string]any{
				"type": []string{"object", "null"},
				"properties": map[string]any{
					"assetType": nullableString,
					"assetId":   nullableString,
					"vehicleInfo": map[string]any{
						"type": []string{"object", "null"},
						"properties": map[string]any{
							"year":  nullableString,
							"make":  nullableString,
							"model": nullableString,
						},
					},
					"estimatedDamage": nullableNumber,
				},
			},
			"otherMandatoryFields": map[string]any{
				"type": []string{"object", "null"},
				"properties": map[string]any{
					"claimType":       nullableString,
					"attachments":     nullableString,
					"initialEstimate": nullableNumber,
				},
			},
		},
	}
}

// ValidateRecordJSON validates a sanitized extraction payload against the
// claim schema. A validation error is advisory: the caller records it as a
// warning and keeps whatever fields did decode.
func ValidateRecordJSON(data []byte) error {
	schemaBytes, err := json.Marshal(BuildClaimJSONSchema())
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("claim.schema.json", bytes.NewReader(schemaBytes)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("claim.schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("payload does not match claim schema: %w", err)
	}
	return nil
}
