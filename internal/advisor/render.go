package advisor

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/carmitra/carmitra/internal/score"
)

// Renderer writes recommendation results as JSON, Markdown, or a terminal
// summary.
type Renderer struct {
	includeFooter bool
	scorer        *score.Scorer
}

// NewRenderer creates a renderer.
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{
		includeFooter: includeFooter,
		scorer:        score.NewScorer(),
	}
}

// RenderJSON writes the result as indented JSON to the given path.
func (r *Renderer) RenderJSON(result *RecommendationResult, path string) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write JSON: %w", err)
	}
	return nil
}

// RenderMarkdown writes the result as a Markdown report to the given path.
func (r *Renderer) RenderMarkdown(result *RecommendationResult, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create markdown file: %w", err)
	}
	defer f.Close()

	r.writeMarkdown(f, result)
	return nil
}

func (r *Renderer) writeMarkdown(w io.Writer, result *RecommendationResult) {
	fmt.Fprintf(w, "# Car Recommendations\n\n")
	fmt.Fprintf(w, "Budget: ₹%d – ₹%d\n\n", result.Preferences.BudgetMin, result.Preferences.BudgetMax)

	for i, c := range result.Candidates {
		fmt.Fprintf(w, "## %d. %s\n\n", i+1, c.DisplayName())
		fmt.Fprintf(w, "**Price:** %s\n\n", c.Price)
		fmt.Fprintf(w, "%s\n\n", c.WhySuitable)

		if len(c.KeyFeatures) > 0 {
			fmt.Fprintf(w, "**Key features:** %s\n\n", strings.Join(c.KeyFeatures, ", "))
		}
		if len(c.Pros) > 0 {
			fmt.Fprintf(w, "**Pros:**\n")
			for _, p := range c.Pros {
				fmt.Fprintf(w, "- %s\n", p)
			}
			fmt.Fprintln(w)
		}
		if len(c.Cons) > 0 {
			fmt.Fprintf(w, "**Cons:**\n")
			for _, con := range c.Cons {
				fmt.Fprintf(w, "- %s\n", con)
			}
			fmt.Fprintln(w)
		}

		vector := r.scorer.Score(c)
		fmt.Fprintf(w, "| Criterion | Score |\n|---|---|\n")
		for j, name := range score.Criteria {
			fmt.Fprintf(w, "| %s | %.1f |\n", name, vector[j])
		}
		fmt.Fprintln(w)
	}

	if r.includeFooter {
		fmt.Fprintf(w, "---\n\nGenerated %s (source: %s)\n",
			result.GeneratedAt.Format("2006-01-02 15:04 UTC"), result.Source)
	}
}

// RenderSummary prints a short recommendation summary to stdout.
func (r *Renderer) RenderSummary(result *RecommendationResult) {
	fmt.Printf("\n%d recommendation(s) for budget ₹%d – ₹%d\n\n",
		len(result.Candidates), result.Preferences.BudgetMin, result.Preferences.BudgetMax)

	for i, c := range result.Candidates {
		vector := r.scorer.Score(c)
		var total float64
		for _, v := range vector {
			total += v
		}
		avg := 0.0
		if len(vector) > 0 {
			avg = total / float64(len(vector))
		}
		fmt.Printf("%d. %-30s %-24s score %.1f/10\n", i+1, c.DisplayName(), c.Price, avg)
	}

	if result.Source == SourceFallback {
		fmt.Println("\nShowing built-in recommendations (advisory service unavailable).")
	}
}
