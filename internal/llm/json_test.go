package llm

import (
	"strings"
	"testing"
)

func TestExtractJSON_Plain(t *testing.T) {
	input := `{"policyInformation": {"policyNumber": "POL-1"}}`

	result := ExtractJSON(input)

	if result != input {
		t.Errorf("Expected plain JSON unchanged, got '%s'", result)
	}
}

func TestExtractJSON_MarkdownFence(t *testing.T) {
	input := "```json\n{\"policyInformation\": null}\n```"

	result := ExtractJSON(input)

	if result != `{"policyInformation": null}` {
		t.Errorf("Expected fence stripped, got '%s'", result)
	}
}

func TestExtractJSON_BareFence(t *testing.T) {
	input := "```\n{\"a\": 1}\n```"

	result := ExtractJSON(input)

	if result != `{"a": 1}` {
		t.Errorf("Expected bare fence stripped, got '%s'", result)
	}
}

func TestExtractJSON_SurroundingProse(t *testing.T) {
	input := "Here is the extracted data:\n{\"a\": 1}\nLet me know if you need anything else."

	result := ExtractJSON(input)

	if result != `{"a": 1}` {
		t.Errorf("Expected object isolated from prose, got '%s'", result)
	}
}

func TestExtractJSON_NoObject(t *testing.T) {
	input := "  no structured data here  "

	result := ExtractJSON(input)

	if result != "no structured data here" {
		t.Errorf("Expected trimmed input returned, got '%s'", result)
	}
}

func TestSanitizeRecordJSON_CurrencyString(t *testing.T) {
	raw := []byte(`{"assetDetails": {"estimatedDamage": "$8,500"}}`)

	out, notes, err := SanitizeRecordJSON(raw)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !strings.Contains(string(out), `"estimatedDamage":8500`) {
		t.Errorf("Expected currency string coerced to number, got %s", out)
	}

	if len(notes) == 0 {
		t.Error("Expected a coercion note")
	}
}

func TestSanitizeRecordJSON_InitialEstimateString(t *testing.T) {
	raw := []byte(`{"otherMandatoryFields": {"initialEstimate": "12000.50"}}`)

	out, _, err := SanitizeRecordJSON(raw)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !strings.Contains(string(out), `"initialEstimate":12000.5`) {
		t.Errorf("Expected numeric string coerced, got %s", out)
	}
}

func TestSanitizeRecordJSON_NonNumericMoneyDropped(t *testing.T) {
	raw := []byte(`{"assetDetails": {"estimatedDamage": "unknown"}}`)

	out, notes, err := SanitizeRecordJSON(raw)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if strings.Contains(string(out), "estimatedDamage") {
		t.Errorf("Expected non-numeric damage dropped, got %s", out)
	}

	found := false
	for _, n := range notes {
		if strings.Contains(n, "not numeric") {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected drop note, got %v", notes)
	}
}

func TestSanitizeRecordJSON_NumericYearCoerced(t *testing.T) {
	raw := []byte(`{"assetDetails": {"vehicleInfo": {"year": 2021}}}`)

	out, _, err := SanitizeRecordJSON(raw)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !strings.Contains(string(out), `"year":"2021"`) {
		t.Errorf("Expected year coerced to string, got %s", out)
	}
}

func TestSanitizeRecordJSON_NonObjectSectionDropped(t *testing.T) {
	raw := []byte(`{"policyInformation": "POL-123", "otherMandatoryFields": {"claimType": "auto"}}`)

	out, notes, err := SanitizeRecordJSON(raw)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if strings.Contains(string(out), "policyInformation") {
		t.Errorf("Expected malformed section dropped, got %s", out)
	}

	if !strings.Contains(string(out), "claimType") {
		t.Errorf("Expected well-formed section kept, got %s", out)
	}

	if len(notes) == 0 {
		t.Error("Expected a note about the dropped section")
	}
}

func TestSanitizeRecordJSON_InvalidJSON(t *testing.T) {
	_, _, err := SanitizeRecordJSON([]byte("not json at all"))

	if err == nil {
		t.Fatal("Expected error for invalid JSON")
	}
}

func TestDecodeClaimRecord_FullResponse(t *testing.T) {
	output := "```json\n" + `{
	  "policyInformation": {"policyNumber": "POL-789", "policyholderName": "Jane Doe"},
	  "incidentInformation": {"date": "03/02/2024", "location": {"city": "Portland"}, "description": "Hail damage to roof"},
	  "involvedParties": {"claimant": {"name": "Jane Doe"}},
	  "assetDetails": {"assetType": "property", "estimatedDamage": "$9,750.25"},
	  "otherMandatoryFields": {"claimType": "property"}
	}` + "\n```"

	record, _, err := DecodeClaimRecord(output)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if record.PolicyInformation.PolicyNumber != "POL-789" {
		t.Errorf("Expected POL-789, got '%s'", record.PolicyInformation.PolicyNumber)
	}

	if record.Description() != "Hail damage to roof" {
		t.Errorf("Unexpected description '%s'", record.Description())
	}

	if d := record.DamageAmount(); d == nil || *d != 9750.25 {
		t.Errorf("Expected damage 9750.25, got %v", d)
	}
}

func TestDecodeClaimRecord_Unrecoverable(t *testing.T) {
	_, _, err := DecodeClaimRecord("the document appears to be blank")

	if err == nil {
		t.Fatal("Expected error for unrecoverable payload")
	}
}

func TestDecodeClaimRecord_PartialSections(t *testing.T) {
	output := `{"otherMandatoryFields": {"claimType": "injury"}}`

	record, _, err := DecodeClaimRecord(output)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if record.ClaimType() != "injury" {
		t.Errorf("Expected claim type 'injury', got '%s'", record.ClaimType())
	}

	if record.PolicyInformation.PolicyNumber != "" {
		t.Error("Expected absent sections to stay empty")
	}
}
