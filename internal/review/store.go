// Package review holds the session-scoped review collection: a fixed seed
// set plus user submissions. The store is the state container the shell owns
// and passes into core calls; reviews are append-only.
package review

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/carmitra/carmitra/internal/model"
)

// Store keeps reviews in memory. Seed reviews occupy the low id range and
// user submissions continue the sequence.
type Store struct {
	mu      sync.Mutex
	reviews []model.ReviewRecord
	nextID  int
}

// NewStore creates a store pre-populated with the seed reviews.
func NewStore() *Store {
	seeds := seedReviews(time.Now())
	return &Store{
		reviews: seeds,
		nextID:  len(seeds) + 1,
	}
}

// Add appends a user-submitted review, assigning the next sequential id,
// stamping the submission time, zeroing helpful votes and marking it
// unverified. Ratings are clamped into [1.0, 5.0] rather than rejected.
func (s *Store) Add(r model.ReviewRecord) model.ReviewRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	r.ID = s.nextID
	s.nextID++
	r.Date = time.Now()
	r.HelpfulVotes = 0
	r.Verified = false
	if r.ReviewerName == "" {
		r.ReviewerName = "Anonymous Senior Buyer"
	}

	r.Rating = clampRating(r.Rating)
	for category, rating := range r.CategoryRatings {
		r.CategoryRatings[category] = clampRating(rating)
	}

	s.reviews = append(s.reviews, r)
	return r
}

// All returns a copy of every review, newest first.
func (s *Store) All() []model.ReviewRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.ReviewRecord, len(s.reviews))
	copy(out, s.reviews)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// ForCar returns the reviews for a specific brand and model,
// case-insensitively, newest first.
func (s *Store) ForCar(brand, carModel string) []model.ReviewRecord {
	var matched []model.ReviewRecord
	for _, r := range s.All() {
		if strings.EqualFold(r.CarBrand, brand) && strings.EqualFold(r.CarModel, carModel) {
			matched = append(matched, r)
		}
	}
	return matched
}

func clampRating(v float64) float64 {
	if v < 1.0 {
		return 1.0
	}
	if v > 5.0 {
		return 5.0
	}
	return v
}
