package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/carmitra/carmitra/internal/advisor"
	"github.com/carmitra/carmitra/internal/model"
)

var (
	prefsFile   string
	budgetMin   int
	budgetMax   int
	outJSON     string
	outMD       string
	timeout     time.Duration
	noCache     bool
	noFooter    bool
	llmEnabled  bool
	llmProvider string
	llmModel    string
)

// recommendCmd represents the recommend command
var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Generate car recommendations from buyer preferences",
	Long: `Recommend composes a prompt from the buyer questionnaire, asks the
configured LLM provider for five candidates, and normalizes the reply
into structured records. When no provider is configured or the call
fails, a curated built-in dataset filtered by the budget ceiling is
returned instead.

Example:
  carmitra recommend --budget-min 300000 --budget-max 1000000
  carmitra recommend --prefs prefs.yaml --json out.json --md report.md
  carmitra recommend --llm --llm-model gpt-4o-mini`,
	RunE: runRecommend,
}

func init() {
	rootCmd.AddCommand(recommendCmd)

	// Preference flags
	recommendCmd.Flags().StringVar(&prefsFile, "prefs", "", "preferences YAML file")
	recommendCmd.Flags().IntVar(&budgetMin, "budget-min", 300_000, "minimum budget in rupees")
	recommendCmd.Flags().IntVar(&budgetMax, "budget-max", 1_000_000, "maximum budget in rupees")

	// Output flags
	recommendCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (optional)")
	recommendCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	recommendCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")

	// Runtime flags
	recommendCmd.Flags().DurationVar(&timeout, "timeout", time.Minute, "overall request timeout")
	recommendCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable response cache (force a fresh request)")

	// LLM flags
	recommendCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM-backed recommendations")
	recommendCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai)")
	recommendCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name (provider default when empty)")
}

func runRecommend(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	prefs, err := loadPreferences()
	if err != nil {
		return err
	}

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Budget: ₹%d – ₹%d\n", prefs.BudgetMin, prefs.BudgetMax)
		fmt.Fprintf(os.Stderr, "Provider: %s\n", orNone(cfg.LLM.Provider))
		fmt.Fprintf(os.Stderr, "Cache: %v\n\n", cfg.Cache.Enabled)
	}

	a := advisor.New(cfg, log)
	result := a.Recommend(ctx, prefs)

	renderer := advisor.NewRenderer(cfg.Output.IncludeFooter)

	if outJSON != "" {
		if err := renderer.RenderJSON(result, outJSON); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", outJSON)
		}
	}

	if outMD != "" {
		if err := renderer.RenderMarkdown(result, outMD); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote Markdown: %s\n", outMD)
		}
	}

	renderer.RenderSummary(result)
	return nil
}

// loadPreferences reads the preferences file when given, otherwise builds
// preferences from the budget flags.
func loadPreferences() (model.Preferences, error) {
	if prefsFile == "" {
		prefs := model.DefaultPreferences()
		prefs.BudgetMin = budgetMin
		prefs.BudgetMax = budgetMax
		return prefs, nil
	}

	data, err := os.ReadFile(prefsFile)
	if err != nil {
		return model.Preferences{}, fmt.Errorf("read preferences: %w", err)
	}

	prefs := model.DefaultPreferences()
	if err := yaml.Unmarshal(data, &prefs); err != nil {
		return model.Preferences{}, fmt.Errorf("parse preferences: %w", err)
	}
	return prefs, nil
}

// buildConfig assembles the runtime configuration from defaults and flags.
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = !noCache
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter

	if llmEnabled {
		cfg.LLM.Provider = llmProvider
		cfg.LLM.Model = llmModel

		switch llmProvider {
		case "openai":
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
			if cfg.LLM.APIKey == "" {
				return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
			}
			if baseURL := os.Getenv("OPENAI_BASE_URL"); baseURL != "" {
				cfg.LLM.BaseURL = baseURL
			}
		}
	}

	return cfg, nil
}

func orNone(s string) string {
	if s == "" {
		return "none (built-in dataset)"
	}
	return s
}
