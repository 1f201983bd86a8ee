package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/carmitra/carmitra/internal/advisor"
	"github.com/carmitra/carmitra/internal/aggregate"
	"github.com/carmitra/carmitra/internal/extract"
	"github.com/carmitra/carmitra/internal/model"
	"github.com/carmitra/carmitra/internal/score"
)

// compareCmd represents the compare command
var compareCmd = &cobra.Command{
	Use:   "compare <candidates.json>",
	Short: "Compare saved recommendations side by side",
	Long: `Compare loads a recommendation file (the output of 'recommend --json'
or a plain JSON array of candidates) and prints a criteria score matrix,
price-band grouping, best-in-class picks and the features every
candidate shares.

Example:
  carmitra recommend --json out.json
  carmitra compare out.json`,
	Args: cobra.ExactArgs(1),
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	candidates, err := loadCandidates(args[0])
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		fmt.Println("Nothing to compare: the file contains no candidates.")
		return nil
	}

	scorer := score.NewScorer()
	engine := aggregate.NewEngine()

	printScoreMatrix(scorer, candidates)
	printPriceBands(candidates)
	printBestInClass(scorer, engine, candidates)

	if common := engine.CommonFeatures(candidates); len(common) > 0 {
		fmt.Printf("Features shared by all candidates: %s\n\n", strings.Join(common, ", "))
	} else {
		fmt.Println("No feature is shared by every candidate.")
		fmt.Println()
	}

	return nil
}

// loadCandidates accepts either a RecommendationResult or a bare candidate
// array.
func loadCandidates(path string) ([]model.CandidateRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read candidates: %w", err)
	}

	var result advisor.RecommendationResult
	if err := json.Unmarshal(data, &result); err == nil && len(result.Candidates) > 0 {
		return result.Candidates, nil
	}

	var candidates []model.CandidateRecord
	if err := json.Unmarshal(data, &candidates); err != nil {
		return nil, fmt.Errorf("parse candidates: %w", err)
	}
	return candidates, nil
}

func printScoreMatrix(scorer *score.Scorer, candidates []model.CandidateRecord) {
	fmt.Printf("%-24s", "Criterion")
	for _, c := range candidates {
		fmt.Printf(" %-20s", truncate(c.Model, 20))
	}
	fmt.Println()

	vectors := make([][]float64, len(candidates))
	for i, c := range candidates {
		vectors[i] = scorer.Score(c)
	}

	for row, name := range score.Criteria {
		fmt.Printf("%-24s", name)
		for _, v := range vectors {
			fmt.Printf(" %-20.1f", v[row])
		}
		fmt.Println()
	}
	fmt.Println()
}

// printPriceBands groups candidates by representative price: budget up to
// 8 lakh, mid-range up to 20 lakh, premium above.
func printPriceBands(candidates []model.CandidateRecord) {
	bands := map[string][]string{}
	for _, c := range candidates {
		price := extract.RepresentativePrice(c.Price)
		var band string
		switch {
		case price <= 8:
			band = "Budget (up to ₹8L)"
		case price <= 20:
			band = "Mid-range (₹8L – ₹20L)"
		default:
			band = "Premium (above ₹20L)"
		}
		bands[band] = append(bands[band], c.DisplayName())
	}

	fmt.Println("Price bands:")
	for _, band := range []string{"Budget (up to ₹8L)", "Mid-range (₹8L – ₹20L)", "Premium (above ₹20L)"} {
		if names, ok := bands[band]; ok {
			fmt.Printf("  %-24s %s\n", band, strings.Join(names, ", "))
		}
	}
	fmt.Println()
}

func printBestInClass(scorer *score.Scorer, engine *aggregate.Engine, candidates []model.CandidateRecord) {
	picks := []struct {
		label string
		key   func(model.CandidateRecord) float64
	}{
		{"Most affordable", func(c model.CandidateRecord) float64 {
			return -extract.RepresentativePrice(c.Price)
		}},
		{"Best for seniors", func(c model.CandidateRecord) float64 {
			return scorer.Score(c)[1]
		}},
		{"Most feature rich", func(c model.CandidateRecord) float64 {
			return float64(len(c.KeyFeatures))
		}},
		{"Lowest maintenance", func(c model.CandidateRecord) float64 {
			return maintenanceRank(c.MaintenanceCost)
		}},
	}

	fmt.Println("Best in class:")
	for _, p := range picks {
		if best, ok := engine.BestCandidate(candidates, p.key); ok {
			fmt.Printf("  %-24s %s\n", p.label, best.DisplayName())
		}
	}
	fmt.Println()
}

// maintenanceRank orders the Low/Medium/High assessment so that cheaper
// upkeep wins; unrecognized text ranks below all three.
func maintenanceRank(cost string) float64 {
	switch strings.ToLower(strings.TrimSpace(cost)) {
	case "low":
		return 3
	case "medium":
		return 2
	case "high":
		return 1
	default:
		return 0
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
