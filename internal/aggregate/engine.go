// Package aggregate computes summary statistics over candidate and review
// collections: per-category averages, best-in-class selections, feature-set
// intersections, and brand rollups. Every operation treats an empty input as
// an empty or neutral aggregate, never an error.
package aggregate

import (
	"sort"

	"github.com/carmitra/carmitra/internal/model"
)

// Engine aggregates candidate and review collections. It holds no state; the
// collections it reads are caller-owned snapshots.
type Engine struct{}

// NewEngine creates a new aggregation engine.
func NewEngine() *Engine {
	return &Engine{}
}

// CategoryAverages averages each rating category over the reviews that
// actually rated it. Categories absent from every review produce no entry,
// not a zero.
func (e *Engine) CategoryAverages(reviews []model.ReviewRecord) map[string]float64 {
	sums := make(map[string]float64)
	counts := make(map[string]int)

	for _, r := range reviews {
		for category, rating := range r.CategoryRatings {
			sums[category] += rating
			counts[category]++
		}
	}

	averages := make(map[string]float64, len(sums))
	for category, sum := range sums {
		averages[category] = sum / float64(counts[category])
	}
	return averages
}

// OverallAverage is the mean of the overall ratings, or 0 for no reviews.
func (e *Engine) OverallAverage(reviews []model.ReviewRecord) float64 {
	if len(reviews) == 0 {
		return 0
	}
	var sum float64
	for _, r := range reviews {
		sum += r.Rating
	}
	return sum / float64(len(reviews))
}

// BestCandidate returns the candidate maximizing key. Ties resolve to the
// first such element in input order. ok is false for an empty collection.
func (e *Engine) BestCandidate(candidates []model.CandidateRecord, key func(model.CandidateRecord) float64) (best model.CandidateRecord, ok bool) {
	if len(candidates) == 0 {
		return model.CandidateRecord{}, false
	}
	best = candidates[0]
	bestKey := key(best)
	for _, c := range candidates[1:] {
		if k := key(c); k > bestKey {
			best, bestKey = c, k
		}
	}
	return best, true
}

// BestReview returns the review maximizing key, first-wins on ties.
func (e *Engine) BestReview(reviews []model.ReviewRecord, key func(model.ReviewRecord) float64) (best model.ReviewRecord, ok bool) {
	if len(reviews) == 0 {
		return model.ReviewRecord{}, false
	}
	best = reviews[0]
	bestKey := key(best)
	for _, r := range reviews[1:] {
		if k := key(r); k > bestKey {
			best, bestKey = r, k
		}
	}
	return best, true
}

// CommonFeatures intersects the key-feature lists of all candidates,
// preserving the first candidate's feature order. An empty collection, or
// any candidate with an empty feature list, yields an empty intersection.
func (e *Engine) CommonFeatures(candidates []model.CandidateRecord) []string {
	if len(candidates) == 0 {
		return nil
	}

	common := make([]string, 0, len(candidates[0].KeyFeatures))
	common = append(common, candidates[0].KeyFeatures...)

	for _, c := range candidates[1:] {
		present := make(map[string]bool, len(c.KeyFeatures))
		for _, f := range c.KeyFeatures {
			present[f] = true
		}

		kept := common[:0]
		for _, f := range common {
			if present[f] {
				kept = append(kept, f)
			}
		}
		common = kept
		if len(common) == 0 {
			break
		}
	}
	return common
}

// AllFeatures returns the sorted union of key features across candidates,
// used as the row set of the feature comparison matrix.
func (e *Engine) AllFeatures(candidates []model.CandidateRecord) []string {
	seen := make(map[string]bool)
	var features []string
	for _, c := range candidates {
		for _, f := range c.KeyFeatures {
			if !seen[f] {
				seen[f] = true
				features = append(features, f)
			}
		}
	}
	sort.Strings(features)
	return features
}

// BrandStat is one brand's rollup: how many reviews it has and their mean
// overall rating.
type BrandStat struct {
	Brand      string  `json:"brand"`
	Count      int     `json:"count"`
	MeanRating float64 `json:"mean_rating"`
}

// BrandRollups groups reviews by brand and computes per-group count and mean
// rating, ordered by mean rating descending (brand name breaks ties) so the
// result doubles as a ranking.
func (e *Engine) BrandRollups(reviews []model.ReviewRecord) []BrandStat {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, r := range reviews {
		sums[r.CarBrand] += r.Rating
		counts[r.CarBrand]++
	}

	stats := make([]BrandStat, 0, len(sums))
	for brand, sum := range sums {
		stats = append(stats, BrandStat{
			Brand:      brand,
			Count:      counts[brand],
			MeanRating: sum / float64(counts[brand]),
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].MeanRating != stats[j].MeanRating {
			return stats[i].MeanRating > stats[j].MeanRating
		}
		return stats[i].Brand < stats[j].Brand
	})
	return stats
}

// CategoryStat pairs a category with its average for ranked output.
type CategoryStat struct {
	Category string  `json:"category"`
	Average  float64 `json:"average"`
}

// RankedCategories orders category averages from strongest to weakest,
// category name breaking ties.
func (e *Engine) RankedCategories(averages map[string]float64) []CategoryStat {
	stats := make([]CategoryStat, 0, len(averages))
	for category, avg := range averages {
		stats = append(stats, CategoryStat{Category: category, Average: avg})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Average != stats[j].Average {
			return stats[i].Average > stats[j].Average
		}
		return stats[i].Category < stats[j].Category
	})
	return stats
}
