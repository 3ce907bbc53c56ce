package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mkotturi/claimtriage/internal/model"
)

// Renderer writes results to disk and prints human-readable summaries.
type Renderer struct {
	verbose bool
}

// NewRenderer creates a renderer.
func NewRenderer(verbose bool) *Renderer {
	return &Renderer{verbose: verbose}
}

// WriteResult saves one document's result as pretty-printed JSON in
// outputDir and returns the path written. The filename derives from the
// document name, so re-runs overwrite instead of piling up.
func (r *Renderer) WriteResult(result *model.ProcessResult, outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	stem := strings.TrimSuffix(result.DocumentName, filepath.Ext(result.DocumentName))
	path := filepath.Join(outputDir, stem+"_result.json")

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal result: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write result: %w", err)
	}

	if r.verbose {
		fmt.Printf("  ✓ Saved to: %s\n", path)
	}
	return path, nil
}

// WriteSummary saves the batch summary JSON and returns the path written.
func (r *Renderer) WriteSummary(summary model.BatchSummary, outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	timestamp := summary.ProcessedAt.Format("20060102_150405")
	path := filepath.Join(outputDir, fmt.Sprintf("batch_summary_%s.json", timestamp))

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal summary: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write summary: %w", err)
	}

	return path, nil
}

// RenderResult prints the single-document processing summary.
func (r *Renderer) RenderResult(result *model.ProcessResult) {
	banner := strings.Repeat("=", 60)
	fmt.Println()
	fmt.Println(banner)
	fmt.Println("PROCESSING SUMMARY")
	fmt.Println(banner)

	if result.Status != model.StatusSuccess {
		fmt.Printf("✗ %s: %s\n", result.Status, result.Error)
		return
	}

	fmt.Printf("Route: %s\n", result.RecommendedRoute)
	fmt.Printf("Reason: %s\n", result.Reasoning)
	if len(result.MissingFields) > 0 {
		fmt.Printf("Missing: %s\n", strings.Join(result.MissingFields, ", "))
	}
	if len(result.FraudIndicators) > 0 {
		fmt.Printf("⚠ Fraud indicators: %s\n", strings.Join(result.FraudIndicators, ", "))
	}
	if result.EstimatedDamage != nil {
		fmt.Printf("Estimated damage: $%.2f\n", *result.EstimatedDamage)
	}
}

// RenderBatchHeader prints the banner that opens a batch run.
func (r *Renderer) RenderBatchHeader(count int) {
	banner := strings.Repeat("=", 70)
	fmt.Println()
	fmt.Println(banner)
	fmt.Printf("BATCH PROCESSING: %d documents\n", count)
	fmt.Println(banner)
}

// RenderBatchSummary prints statistics, routing distribution and the route
// chart after a batch run.
func (r *Renderer) RenderBatchSummary(summary model.BatchSummary, summaryPath string) {
	banner := strings.Repeat("=", 70)
	stats := summary.Statistics

	fmt.Println()
	fmt.Println(banner)
	fmt.Println("BATCH PROCESSING SUMMARY")
	fmt.Println(banner)
	fmt.Println("\nStatistics:")
	fmt.Printf("   Total Processed: %d\n", stats.Total)
	fmt.Printf("   ✓ Successful: %d\n", stats.Successful)
	fmt.Printf("   ✗ Failed: %d\n", stats.Failed)

	fmt.Println("\nRouting Distribution:")
	for _, route := range model.AllRoutes {
		count := stats.Routes[route]
		if count == 0 {
			continue
		}
		percentage := float64(count) / float64(stats.Total) * 100
		fmt.Printf("   %s: %d (%.1f%%)\n", route, count, percentage)
	}

	if summaryPath != "" {
		fmt.Printf("\nSummary saved to: %s\n", summaryPath)
	}
	fmt.Println(banner)

	r.renderRouteChart(stats)
}

var routeSymbols = map[model.Route]string{
	model.RouteFastTrack:       "🟢",
	model.RouteManualReview:    "🟡",
	model.RouteInvestigation:   "🔴",
	model.RouteSpecialistQueue: "🟣",
}

// renderRouteChart prints an ASCII bar chart of route counts.
func (r *Renderer) renderRouteChart(stats model.BatchStats) {
	divider := strings.Repeat("-", 70)
	fmt.Println("\nRoute Distribution Chart:")
	fmt.Println(divider)

	maxCount := 1
	for _, count := range stats.Routes {
		if count > maxCount {
			maxCount = count
		}
	}

	for _, route := range model.AllRoutes {
		count := stats.Routes[route]
		if count == 0 {
			continue
		}
		barLength := count * 40 / maxCount
		bar := strings.Repeat("█", barLength)
		fmt.Printf("%s %-20s | %s %d\n", routeSymbols[route], route, bar, count)
	}

	fmt.Println(divider)
}

// RenderProgress prints the per-document progress line during a batch run.
func (r *Renderer) RenderProgress(index, total int, result *model.ProcessResult) {
	fmt.Printf("\n[%d/%d] Processing: %s\n", index, total, result.DocumentName)
	fmt.Println(strings.Repeat("-", 70))
	if result.Status == model.StatusSuccess {
		fmt.Printf("✓ Successfully processed - Route: %s\n", result.RecommendedRoute)
	} else {
		fmt.Printf("✗ Failed: %s\n", result.Error)
	}
}
