package llm

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/mkotturi/claimtriage/internal/model"
)

var (
	reJSONFence  = regexp.MustCompile("```(?:json)?\\s*")
	reJSONObject = regexp.MustCompile(`(?s)\{.*\}`)
)

// ExtractJSON pulls a JSON object out of markdown fences or surrounding
// prose. Models occasionally wrap their output despite being told not to.
// If no object is found the trimmed input is returned as-is and left for
// the decoder to reject.
func ExtractJSON(text string) string {
	text = reJSONFence.ReplaceAllString(text, "")
	if match := reJSONObject.FindString(text); match != "" {
		return match
	}
	return strings.TrimSpace(text)
}

// sections are the top-level keys of the extraction schema.
var sections = []string{
	"policyInformation",
	"incidentInformation",
	"involvedParties",
	"assetDetails",
	"otherMandatoryFields",
}

// SanitizeRecordJSON normalizes a raw extraction payload so that a lenient
// decode succeeds: money fields arriving as strings ("$8,500") are coerced
// to numbers, string leaves arriving as numbers are coerced back, and
// structurally wrong values are dropped rather than allowed to fail the
// whole decode. Returns the cleaned JSON plus notes describing every
// adjustment made.
func SanitizeRecordJSON(raw []byte) ([]byte, []string, error) {
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, nil, fmt.Errorf("sanitize: decode: %w", err)
	}

	notes := []string{}

	// Sections that are not objects cannot carry fields; drop them so the
	// fields read as absent instead of failing the decode.
	for _, key := range sections {
		if v, ok := m[key]; ok && v != nil {
			if _, isMap := v.(map[string]any); !isMap {
				delete(m, key)
				notes = append(notes, key+": not an object, dropped")
			}
		}
	}

	if asset, ok := childObject(m, "assetDetails"); ok {
		notes = coerceMoney(asset, "estimatedDamage", notes)
		if vi, ok := childObject(asset, "vehicleInfo"); ok {
			notes = coerceString(vi, "year", notes)
		}
		notes = coerceString(asset, "assetId", notes)
	}
	if other, ok := childObject(m, "otherMandatoryFields"); ok {
		notes = coerceMoney(other, "initialEstimate", notes)
	}
	if incident, ok := childObject(m, "incidentInformation"); ok {
		if loc, ok := childObject(incident, "location"); ok {
			notes = coerceString(loc, "zip", notes)
		}
	}
	if policy, ok := childObject(m, "policyInformation"); ok {
		notes = coerceString(policy, "policyNumber", notes)
	}
	if parties, ok := childObject(m, "involvedParties"); ok {
		if v, ok := parties["thirdParties"]; ok && v != nil {
			if _, isList := v.([]any); !isList {
				delete(parties, "thirdParties")
				notes = append(notes, "involvedParties.thirdParties: not a list, dropped")
			}
		}
	}

	out, err := json.Marshal(m)
	if err != nil {
		return nil, notes, fmt.Errorf("sanitize: encode: %w", err)
	}
	return out, notes, nil
}

// DecodeClaimRecord turns a raw model response into a ClaimRecord. The
// returned notes describe cleanup applied along the way. An error means the
// payload was unrecoverable; the caller decides how to degrade.
func DecodeClaimRecord(output string) (*model.ClaimRecord, []string, error) {
	cleaned := ExtractJSON(output)

	sanitized, notes, err := SanitizeRecordJSON([]byte(cleaned))
	if err != nil {
		return nil, notes, err
	}

	// Advisory only: a schema violation still decodes to whatever fields
	// survived, and validation reports the rest as missing.
	if err := ValidateRecordJSON(sanitized); err != nil {
		notes = append(notes, "schema: "+err.Error())
	}

	var record model.ClaimRecord
	if err := json.Unmarshal(sanitized, &record); err != nil {
		return nil, notes, fmt.Errorf("decode claim record: %w", err)
	}

	return &record, notes, nil
}

func childObject(m map[string]any, key string) (map[string]any, bool) {
	v, ok := m[key].(map[string]any)
	return v, ok
}

// coerceMoney normalizes a money field to a number or removes it.
// Accepts numbers, numeric strings, and currency-formatted strings.
func coerceMoney(m map[string]any, key string, notes []string) []string {
	v, ok := m[key]
	if !ok || v == nil {
		return notes
	}

	switch t := v.(type) {
	case float64:
		return notes
	case string:
		s := strings.TrimSpace(t)
		s = strings.NewReplacer("$", "", ",", "", " ", "").Replace(s)
		if s == "" || strings.EqualFold(s, "null") {
			delete(m, key)
			return append(notes, key+": empty, dropped")
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			m[key] = f
			return append(notes, key+": coerced string to number")
		}
		delete(m, key)
		return append(notes, key+": not numeric, dropped")
	default:
		delete(m, key)
		return append(notes, key+": unexpected type, dropped")
	}
}

// coerceString normalizes a string field that models sometimes emit as a
// bare number (years, zip codes, identifiers).
func coerceString(m map[string]any, key string, notes []string) []string {
	if v, ok := m[key].(float64); ok {
		if v == float64(int64(v)) {
			m[key] = strconv.FormatInt(int64(v), 10)
		} else {
			m[key] = strconv.FormatFloat(v, 'f', -1, 64)
		}
		notes = append(notes, key+": coerced number to string")
	}
	return notes
}
