package validate

import (
	"strings"

	"github.com/mkotturi/claimtriage/internal/model"
)

// mandatoryField pairs a reported field name with a tolerant accessor.
// Accessors never fail on missing nested containers: an absent container is
// simply an absent field.
type mandatoryField struct {
	Name  string
	Value func(*model.ClaimRecord) string
}

// mandatoryFields is the fixed check list. Order here is the order missing
// fields are reported in.
var mandatoryFields = []mandatoryField{
	{"policyNumber", func(c *model.ClaimRecord) string { return c.PolicyInformation.PolicyNumber }},
	{"policyholderName", func(c *model.ClaimRecord) string { return c.PolicyInformation.PolicyholderName }},
	{"incidentDate", func(c *model.ClaimRecord) string { return c.IncidentInformation.Date }},
	{"incidentLocation", func(c *model.ClaimRecord) string { return c.IncidentInformation.Location.City }},
	{"description", func(c *model.ClaimRecord) string { return c.IncidentInformation.Description }},
	{"claimantName", func(c *model.ClaimRecord) string { return c.InvolvedParties.Claimant.Name }},
	{"assetType", func(c *model.ClaimRecord) string { return c.AssetDetails.AssetType }},
	{"claimType", func(c *model.ClaimRecord) string { return c.OtherMandatoryFields.ClaimType }},
}

// MandatoryFieldNames returns the names checked, in check order.
func MandatoryFieldNames() []string {
	names := make([]string, len(mandatoryFields))
	for i, f := range mandatoryFields {
		names[i] = f.Name
	}
	return names
}

// MissingFields returns the mandatory fields absent from the record, in
// check order. An empty result means the record is complete. A nil record
// reports every mandatory field missing.
func MissingFields(record *model.ClaimRecord) []string {
	missing := []string{}
	for _, f := range mandatoryFields {
		if record == nil || strings.TrimSpace(f.Value(record)) == "" {
			missing = append(missing, f.Name)
		}
	}
	return missing
}
