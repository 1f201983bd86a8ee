package review

import (
	"sort"
	"strings"

	"github.com/carmitra/carmitra/internal/model"
)

// SortOrder selects how filtered reviews are ordered.
type SortOrder string

const (
	SortNewest      SortOrder = "newest"
	SortOldest      SortOrder = "oldest"
	SortHighRating  SortOrder = "rating"
	SortMostHelpful SortOrder = "helpful"
)

// FilterOptions narrows a review collection. Zero values mean "no filter".
type FilterOptions struct {
	Brand        string
	Model        string
	Query        string // case-insensitive substring over text, identity, pros and cons
	MinRating    float64
	VerifiedOnly bool
	SeniorOnly   bool
	SortBy       SortOrder
}

// Filter returns the reviews matching opts, ordered per opts.SortBy
// (newest first by default). The input slice is not modified.
func Filter(reviews []model.ReviewRecord, opts FilterOptions) []model.ReviewRecord {
	var matched []model.ReviewRecord
	for _, r := range reviews {
		if opts.Brand != "" && !strings.EqualFold(r.CarBrand, opts.Brand) {
			continue
		}
		if opts.Model != "" && !strings.EqualFold(r.CarModel, opts.Model) {
			continue
		}
		if opts.MinRating > 0 && r.Rating < opts.MinRating {
			continue
		}
		if opts.VerifiedOnly && !r.Verified {
			continue
		}
		if opts.SeniorOnly && !r.SeniorRecommended {
			continue
		}
		if opts.Query != "" && !matchesQuery(r, opts.Query) {
			continue
		}
		matched = append(matched, r)
	}

	sortReviews(matched, opts.SortBy)
	return matched
}

func matchesQuery(r model.ReviewRecord, query string) bool {
	query = strings.ToLower(query)
	if strings.Contains(strings.ToLower(r.ReviewText), query) ||
		strings.Contains(strings.ToLower(r.CarBrand), query) ||
		strings.Contains(strings.ToLower(r.CarModel), query) {
		return true
	}
	for _, p := range r.Pros {
		if strings.Contains(strings.ToLower(p), query) {
			return true
		}
	}
	for _, c := range r.Cons {
		if strings.Contains(strings.ToLower(c), query) {
			return true
		}
	}
	return false
}

func sortReviews(reviews []model.ReviewRecord, order SortOrder) {
	switch order {
	case SortOldest:
		sort.SliceStable(reviews, func(i, j int) bool { return reviews[i].Date.Before(reviews[j].Date) })
	case SortHighRating:
		sort.SliceStable(reviews, func(i, j int) bool { return reviews[i].Rating > reviews[j].Rating })
	case SortMostHelpful:
		sort.SliceStable(reviews, func(i, j int) bool { return reviews[i].HelpfulVotes > reviews[j].HelpfulVotes })
	default: // SortNewest
		sort.SliceStable(reviews, func(i, j int) bool { return reviews[i].Date.After(reviews[j].Date) })
	}
}
