package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/mkotturi/claimtriage/internal/model"
	"github.com/mkotturi/claimtriage/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	outputDir   string
	timeout     time.Duration
	noCache     bool
	llmProvider string
	llmModel    string
)

// processCmd represents the process command
var processCmd = &cobra.Command{
	Use:   "process <file>",
	Short: "Process a single FNOL document",
	Long: `Process runs one FNOL document through the full triage pipeline:
- Extract the document text (PDF or plain text)
- Extract structured claim fields with the configured LLM
- Validate the mandatory intake fields
- Scan the incident description for fraud language
- Recommend a route and save the result as JSON

Example:
  claimtriage process claim.pdf
  claimtriage process fnol_01.txt --output-dir ./results
  claimtriage process claim.pdf --llm-provider openai --llm-model gpt-4o-mini`,
	Args: cobra.ExactArgs(1),
	RunE: runProcess,
}

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().StringVar(&outputDir, "output-dir", "./claimtriage-results", "output directory for results")
	processCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall processing timeout")
	processCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable extraction cache (force fresh API calls)")

	// LLM flags
	processCmd.Flags().StringVar(&llmProvider, "llm-provider", "gemini", "LLM provider (gemini, openai, ollama)")
	processCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name (defaults per provider)")
}

func runProcess(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if verbose {
		fmt.Fprintf(os.Stderr, "Processing: %s\n", file)
		fmt.Fprintf(os.Stderr, "Timeout: %v\n", timeout)
		fmt.Fprintf(os.Stderr, "Cache: %v\n", !noCache)
		fmt.Fprintln(os.Stderr)
	}

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return err
	}

	result := p.ProcessDocument(ctx, file)

	renderer := pipeline.NewRenderer(verbose)
	if _, err := renderer.WriteResult(result, cfg.Output.Dir); err != nil {
		return fmt.Errorf("write result: %w", err)
	}

	renderer.RenderResult(result)

	if result.Status != model.StatusSuccess {
		return fmt.Errorf("processing failed: %s", result.Error)
	}
	return nil
}

// buildConfig assembles runtime configuration from defaults, flags and the
// environment. API keys only ever come from the environment.
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	cfg.LLM.Provider = llmProvider
	// An empty model lets each provider pick its own default
	cfg.LLM.Model = llmModel
	cfg.Cache.Enabled = !noCache
	cfg.Output.Dir = outputDir
	cfg.Output.Verbose = verbose

	switch llmProvider {
	case "gemini", "":
		if cfg.LLM.Model == "" {
			cfg.LLM.Model = "gemini-2.5-flash"
		}
		cfg.LLM.APIKey = os.Getenv("GEMINI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
		}
	case "openai":
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "ollama":
		// Ollama doesn't need an API key
		if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
			cfg.LLM.BaseURL = baseURL
		}
	}

	return cfg, nil
}
