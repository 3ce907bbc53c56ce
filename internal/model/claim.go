package model

import "strings"

// ClaimRecord is the structured field set extracted from one FNOL document.
// The shape mirrors the extraction schema sent to the LLM; any field the
// model could not find is left empty or nil. Immutable after extraction.
type ClaimRecord struct {
	PolicyInformation    PolicyInformation    `json:"policyInformation"`
	IncidentInformation  IncidentInformation  `json:"incidentInformation"`
	InvolvedParties      InvolvedParties      `json:"involvedParties"`
	AssetDetails         AssetDetails         `json:"assetDetails"`
	OtherMandatoryFields OtherMandatoryFields `json:"otherMandatoryFields"`
}

// PolicyInformation identifies the policy the claim is filed against.
type PolicyInformation struct {
	PolicyNumber     string `json:"policyNumber"`
	PolicyholderName string `json:"policyholderName"`
	EffectiveDates   string `json:"effectiveDates,omitempty"`
}

// IncidentInformation describes when and where the loss occurred.
type IncidentInformation struct {
	Date        string   `json:"date"`
	Time        string   `json:"time,omitempty"`
	Location    Location `json:"location"`
	Description string   `json:"description"`
}

// Location is the incident address as extracted.
type Location struct {
	Street string `json:"street,omitempty"`
	City   string `json:"city"`
	State  string `json:"state,omitempty"`
	Zip    string `json:"zip,omitempty"`
}

// InvolvedParties lists the claimant and any third parties.
type InvolvedParties struct {
	Claimant     Party   `json:"claimant"`
	ThirdParties []Party `json:"thirdParties,omitempty"`
}

// Party is a person referenced by the claim.
type Party struct {
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

// AssetDetails describes the damaged asset.
type AssetDetails struct {
	AssetType       string      `json:"assetType"`
	AssetID         string      `json:"assetId,omitempty"`
	VehicleInfo     VehicleInfo `json:"vehicleInfo,omitempty"`
	EstimatedDamage *float64    `json:"estimatedDamage"`
}

// VehicleInfo is populated when the asset is a vehicle.
type VehicleInfo struct {
	Year  string `json:"year,omitempty"`
	Make  string `json:"make,omitempty"`
	Model string `json:"model,omitempty"`
}

// OtherMandatoryFields holds the remaining fields the intake form requires.
type OtherMandatoryFields struct {
	ClaimType       string   `json:"claimType"`
	Attachments     string   `json:"attachments,omitempty"`
	InitialEstimate *float64 `json:"initialEstimate,omitempty"`
}

// Description returns the incident description, empty if absent.
func (c *ClaimRecord) Description() string {
	if c == nil {
		return ""
	}
	return c.IncidentInformation.Description
}

// ClaimType returns the lowercased claim type, empty if absent.
func (c *ClaimRecord) ClaimType() string {
	if c == nil {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(c.OtherMandatoryFields.ClaimType))
}

// DamageAmount resolves the damage estimate for routing: the asset-level
// estimate wins, the intake-level initial estimate is the fallback. A nil
// return means no estimate could be resolved at all.
func (c *ClaimRecord) DamageAmount() *float64 {
	if c == nil {
		return nil
	}
	if c.AssetDetails.EstimatedDamage != nil {
		return c.AssetDetails.EstimatedDamage
	}
	return c.OtherMandatoryFields.InitialEstimate
}
