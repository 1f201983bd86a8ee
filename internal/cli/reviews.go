package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/carmitra/carmitra/internal/advisor"
	"github.com/carmitra/carmitra/internal/aggregate"
	"github.com/carmitra/carmitra/internal/model"
	"github.com/carmitra/carmitra/internal/review"
)

var (
	reviewBrand    string
	reviewModel    string
	reviewQuery    string
	reviewMinStars float64
	verifiedOnly   bool
	seniorOnly     bool
	sortBy         string

	addReviewer string
	addRating   float64
	addText     string
	addPros     []string
	addCons     []string
	addSenior   bool
)

// reviewsCmd represents the reviews command
var reviewsCmd = &cobra.Command{
	Use:   "reviews",
	Short: "Browse, add and analyze owner reviews",
}

var reviewsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List reviews, optionally filtered",
	Long: `List prints the review collection. Filters combine with AND; the
query flag searches review text, car identity, pros and cons.

Example:
  carmitra reviews list --brand Honda
  carmitra reviews list --query "service" --min-rating 4 --sort helpful`,
	RunE: runReviewsList,
}

var reviewsAddCmd = &cobra.Command{
	Use:   "add <brand> <model>",
	Short: "Add an owner review",
	Args:  cobra.ExactArgs(2),
	RunE:  runReviewsAdd,
}

var reviewsAnalyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Show rating analytics across all reviews",
	RunE:  runReviewsAnalytics,
}

var reviewsAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run sentiment analysis over reviews",
	Long: `Analyze sends each review through the configured LLM provider and
prints a per-review sentiment verdict. Without a provider every review
resolves to a neutral verdict.`,
	RunE: runReviewsAnalyze,
}

func init() {
	rootCmd.AddCommand(reviewsCmd)
	reviewsCmd.AddCommand(reviewsListCmd)
	reviewsCmd.AddCommand(reviewsAddCmd)
	reviewsCmd.AddCommand(reviewsAnalyticsCmd)
	reviewsCmd.AddCommand(reviewsAnalyzeCmd)

	for _, c := range []*cobra.Command{reviewsListCmd, reviewsAnalyzeCmd} {
		c.Flags().StringVar(&reviewBrand, "brand", "", "filter by brand")
		c.Flags().StringVar(&reviewModel, "model", "", "filter by model")
		c.Flags().StringVar(&reviewQuery, "query", "", "text search over reviews")
		c.Flags().Float64Var(&reviewMinStars, "min-rating", 0, "minimum overall rating")
		c.Flags().BoolVar(&verifiedOnly, "verified", false, "verified purchases only")
		c.Flags().BoolVar(&seniorOnly, "senior", false, "senior-recommended only")
		c.Flags().StringVar(&sortBy, "sort", "newest", "sort order (newest, oldest, rating, helpful)")
	}

	reviewsAddCmd.Flags().StringVar(&addReviewer, "name", "", "reviewer name (anonymous when empty)")
	reviewsAddCmd.Flags().Float64Var(&addRating, "rating", 4, "overall rating, 1-5")
	reviewsAddCmd.Flags().StringVar(&addText, "text", "", "review text")
	reviewsAddCmd.Flags().StringSliceVar(&addPros, "pro", nil, "a positive point (repeatable)")
	reviewsAddCmd.Flags().StringSliceVar(&addCons, "con", nil, "a negative point (repeatable)")
	reviewsAddCmd.Flags().BoolVar(&addSenior, "senior-recommended", false, "recommend for senior buyers")
	_ = reviewsAddCmd.MarkFlagRequired("text")

	reviewsAnalyzeCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM-backed analysis")
	reviewsAnalyzeCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai)")
	reviewsAnalyzeCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name")
}

func filterOptions() review.FilterOptions {
	return review.FilterOptions{
		Brand:        reviewBrand,
		Model:        reviewModel,
		Query:        reviewQuery,
		MinRating:    reviewMinStars,
		VerifiedOnly: verifiedOnly,
		SeniorOnly:   seniorOnly,
		SortBy:       review.SortOrder(sortBy),
	}
}

func runReviewsList(cmd *cobra.Command, args []string) error {
	store := review.NewStore()
	matched := review.Filter(store.All(), filterOptions())

	if len(matched) == 0 {
		fmt.Println("No reviews match the given filters.")
		return nil
	}

	for _, r := range matched {
		printReview(r)
	}
	fmt.Printf("%d review(s)\n", len(matched))
	return nil
}

func runReviewsAdd(cmd *cobra.Command, args []string) error {
	store := review.NewStore()

	added := store.Add(model.ReviewRecord{
		CarBrand:          args[0],
		CarModel:          args[1],
		ReviewerName:      addReviewer,
		Rating:            addRating,
		ReviewText:        addText,
		Pros:              addPros,
		Cons:              addCons,
		SeniorRecommended: addSenior,
	})

	fmt.Printf("✓ Added review #%d for %s %s (rating %.1f)\n",
		added.ID, added.CarBrand, added.CarModel, added.Rating)
	printReview(added)
	return nil
}

func runReviewsAnalytics(cmd *cobra.Command, args []string) error {
	store := review.NewStore()
	engine := aggregate.NewEngine()
	reviews := store.All()

	fmt.Printf("Reviews: %d, overall average %.2f/5\n\n", len(reviews), engine.OverallAverage(reviews))

	fmt.Println("Brands by mean rating:")
	for _, s := range engine.BrandRollups(reviews) {
		fmt.Printf("  %-16s %.2f/5 (%d review(s))\n", s.Brand, s.MeanRating, s.Count)
	}
	fmt.Println()

	fmt.Println("Categories, strongest first:")
	for _, s := range engine.RankedCategories(engine.CategoryAverages(reviews)) {
		fmt.Printf("  %-24s %.2f/5\n", s.Category, s.Average)
	}
	fmt.Println()

	if best, ok := engine.BestReview(reviews, func(r model.ReviewRecord) float64 {
		return float64(r.HelpfulVotes)
	}); ok {
		fmt.Printf("Most helpful review: #%d %s %s by %s (%d votes)\n",
			best.ID, best.CarBrand, best.CarModel, best.ReviewerName, best.HelpfulVotes)
	}
	return nil
}

func runReviewsAnalyze(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	store := review.NewStore()
	matched := review.Filter(store.All(), filterOptions())
	if len(matched) == 0 {
		fmt.Println("No reviews match the given filters.")
		return nil
	}

	a := advisor.New(cfg, log)
	results := a.AnalyzeReviews(ctx, matched)

	for _, r := range results {
		if r.Err != nil {
			fmt.Printf("  review #%-3d %-24s analysis failed: %v\n", r.ReviewID, r.Car, r.Err)
			continue
		}
		fmt.Printf("  review #%-3d %-24s %-8s (confidence %.1f) %s\n",
			r.ReviewID, r.Car, r.Sentiment.Label, r.Sentiment.Confidence, r.Sentiment.Summary)
	}
	return nil
}

func printReview(r model.ReviewRecord) {
	verified := ""
	if r.Verified {
		verified = " [verified]"
	}
	fmt.Printf("#%d %s %s — %.1f/5 by %s on %s%s\n",
		r.ID, r.CarBrand, r.CarModel, r.Rating, r.ReviewerName, r.Date.Format("2006-01-02"), verified)
	fmt.Printf("   %s\n", r.ReviewText)
	if len(r.Pros) > 0 {
		fmt.Printf("   + %s\n", strings.Join(r.Pros, "; "))
	}
	if len(r.Cons) > 0 {
		fmt.Printf("   - %s\n", strings.Join(r.Cons, "; "))
	}
	fmt.Println()
}
