package model

import "time"

// Route is the terminal classification assigned to a claim.
type Route string

const (
	RouteInvestigation   Route = "investigation"
	RouteManualReview    Route = "manual-review"
	RouteSpecialistQueue Route = "specialist-queue"
	RouteFastTrack       Route = "fast-track"
)

// AllRoutes lists the four routes in reporting order.
var AllRoutes = []Route{
	RouteFastTrack,
	RouteManualReview,
	RouteInvestigation,
	RouteSpecialistQueue,
}

// Processing status for a single document.
const (
	StatusSuccess          = "success"
	StatusReadFailed       = "read-failed"
	StatusExtractionFailed = "extraction-failed"
)

// ProcessResult is the per-document output record, written once per
// document. A failed document carries a non-success Status and an Error
// instead of routing fields.
type ProcessResult struct {
	DocumentName     string       `json:"documentName"`
	ProcessedAt      time.Time    `json:"processedAt"`
	Status           string       `json:"status"`
	Error            string       `json:"error,omitempty"`
	ExtractedFields  *ClaimRecord `json:"extractedFields,omitempty"`
	MissingFields    []string     `json:"missingFields"`
	RecommendedRoute Route        `json:"recommendedRoute,omitempty"`
	Reasoning        string       `json:"reasoning,omitempty"`
	FraudIndicators  []string     `json:"fraudIndicators"`
	EstimatedDamage  *float64     `json:"estimatedDamage"`
	Warnings         []string     `json:"warnings,omitempty"`
}

// RouteDecision pairs a route with its one-line justification.
type RouteDecision struct {
	Route     Route  `json:"recommendedRoute"`
	Reasoning string `json:"reasoning"`
}

// BatchStats aggregates counts across a batch run.
type BatchStats struct {
	Total      int           `json:"total"`
	Successful int           `json:"successful"`
	Failed     int           `json:"failed"`
	Routes     map[Route]int `json:"routes"`
}

// NewBatchStats returns stats with every route counter present, so the
// summary JSON always lists all four routes.
func NewBatchStats() BatchStats {
	routes := make(map[Route]int, len(AllRoutes))
	for _, r := range AllRoutes {
		routes[r] = 0
	}
	return BatchStats{Routes: routes}
}

// BatchEntry is the per-file line item in the batch summary.
type BatchEntry struct {
	Filename string `json:"filename"`
	Route    Route  `json:"route,omitempty"`
	Status   string `json:"status"`
	Error    string `json:"error,omitempty"`
}

// BatchSummary is the summary report written after a batch run.
type BatchSummary struct {
	ProcessedAt time.Time    `json:"processedAt"`
	Statistics  BatchStats   `json:"statistics"`
	Results     []BatchEntry `json:"results"`
}
