package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/mkotturi/claimtriage/internal/export"
	"github.com/mkotturi/claimtriage/internal/model"
	"github.com/mkotturi/claimtriage/internal/pipeline"
	"github.com/mkotturi/claimtriage/internal/worker"
	"github.com/spf13/cobra"
)

var (
	concurrency  int
	batchTimeout time.Duration
	xlsxOut      bool
	rps          float64
	burst        int
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <directory>",
	Short: "Process a directory of FNOL documents in parallel",
	Long: `Batch processes every FNOL document in a directory:
- Discover *.pdf and *.txt files
- Process documents in parallel with configurable worker count
- Rate-limit extraction API calls across workers
- Save an individual JSON result per document
- Generate a batch summary report with routing statistics

Example:
  claimtriage batch ./data/sample_fnols
  claimtriage batch ./intake --concurrency 8 --output-dir ./results
  claimtriage batch ./intake --xlsx --rps 1`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", 4, "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./claimtriage-results", "output directory for results")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 30*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable extraction cache (force fresh API calls)")
	batchCmd.Flags().BoolVar(&xlsxOut, "xlsx", false, "also write the batch summary as an XLSX workbook")

	// Rate limiting flags
	batchCmd.Flags().Float64Var(&rps, "rps", 2, "extraction API requests per second")
	batchCmd.Flags().IntVar(&burst, "burst", 4, "extraction API burst size")

	// LLM flags
	batchCmd.Flags().StringVar(&llmProvider, "llm-provider", "gemini", "LLM provider (gemini, openai, ollama)")
	batchCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name (defaults per provider)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	dir := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	if _, err := os.Stat(dir); err != nil {
		return fmt.Errorf("input directory: %w", err)
	}

	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	cfg.Concurrency.Workers = concurrency
	cfg.RateLimiting.RequestsPerSecond = rps
	cfg.RateLimiting.BurstSize = burst
	cfg.Output.XLSX = xlsxOut

	if verbose {
		fmt.Fprintf(os.Stderr, "Input dir: %s\n", dir)
		fmt.Fprintf(os.Stderr, "Workers: %d\n", concurrency)
		fmt.Fprintf(os.Stderr, "Rate limit: %.1f rps (burst %d)\n", rps, burst)
		fmt.Fprintf(os.Stderr, "Output dir: %s\n", cfg.Output.Dir)
		fmt.Fprintln(os.Stderr)
	}

	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return err
	}

	processor := worker.NewBatchProcessor(p, cfg.Concurrency.Workers)

	results, err := processor.ProcessDirectory(ctx, dir)
	if err != nil {
		return err
	}

	renderer := pipeline.NewRenderer(verbose)
	renderer.RenderBatchHeader(len(results))

	for i, result := range results {
		renderer.RenderProgress(i+1, len(results), result)
		if result.Status != model.StatusSuccess {
			continue
		}
		if _, err := renderer.WriteResult(result, cfg.Output.Dir); err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.DocumentName, err)
		}
	}

	summary := pipeline.Summarize(results)

	summaryPath, err := renderer.WriteSummary(summary, cfg.Output.Dir)
	if err != nil {
		return fmt.Errorf("write summary: %w", err)
	}

	if cfg.Output.XLSX {
		xlsxPath, err := export.WriteBatchXLSX(results, cfg.Output.Dir)
		if err != nil {
			return fmt.Errorf("write xlsx: %w", err)
		}
		fmt.Printf("\nWorkbook saved to: %s\n", xlsxPath)
	}

	renderer.RenderBatchSummary(summary, summaryPath)

	if summary.Statistics.Failed > 0 {
		return fmt.Errorf("%d of %d documents failed", summary.Statistics.Failed, summary.Statistics.Total)
	}
	return nil
}
