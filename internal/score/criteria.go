// Package score maps candidate records to bounded per-criterion scores for
// radar-style comparison. Scoring is deterministic: a fixed candidate always
// yields the identical vector, with no randomness and no external calls.
package score

import (
	"strings"

	"github.com/carmitra/carmitra/internal/extract"
	"github.com/carmitra/carmitra/internal/model"
)

// Criteria is the fixed, ordered list of comparison axes. Score vectors are
// indexed in this order.
var Criteria = []string{
	"Safety Rating",
	"Senior Friendly",
	"Fuel Efficiency",
	"Value for Money",
	"Comfort Level",
	"Ease of Use",
	"Feature Richness",
}

const (
	defaultSafetyScore   = 5
	defaultSeniorScore   = 5
	defaultMileage       = 15 // kmpl assumed when the field yields no number
	baseComfortScore     = 6
	baseEaseScore        = 7
	maxCriterionScore    = 10
	comfortKeywordWeight = 1
)

var comfortKeywords = []string{"comfortable", "spacious", "luxury", "smooth", "refined"}

// Scorer computes score vectors for candidate records.
type Scorer struct{}

// NewScorer creates a new scorer.
func NewScorer() *Scorer {
	return &Scorer{}
}

// Score returns one value per entry of Criteria, each clamped to [0, 10].
// Missing fields resolve to documented defaults, so an all-default candidate
// still produces a full vector.
func (s *Scorer) Score(c model.CandidateRecord) []float64 {
	return []float64{
		s.safetyScore(c),
		s.seniorScore(c),
		s.efficiencyScore(c),
		s.valueScore(c),
		s.comfortScore(c),
		s.easeScore(c),
		s.featureScore(c),
	}
}

// safetyScore maps the free-text safety rating through an ordered rule list;
// the first matching rule wins, anything unrecognized scores neutral.
func (s *Scorer) safetyScore(c model.CandidateRecord) float64 {
	text := strings.ToLower(c.SafetyRating)
	switch {
	case strings.Contains(text, "5") || strings.Contains(text, "excellent"):
		return 10
	case strings.Contains(text, "4") || strings.Contains(text, "good"):
		return 8
	case strings.Contains(text, "3") || strings.Contains(text, "average"):
		return 6
	default:
		return defaultSafetyScore
	}
}

func (s *Scorer) seniorScore(c model.CandidateRecord) float64 {
	if c.SeniorFriendlyRating == 0 {
		return defaultSeniorScore
	}
	return clamp(float64(c.SeniorFriendlyRating))
}

// efficiencyScore rescales mileage linearly from an assumed 5-25 kmpl domain
// onto [0, 10].
func (s *Scorer) efficiencyScore(c model.CandidateRecord) float64 {
	kmpl := extract.FirstInt(c.FuelEfficiency, defaultMileage)
	return clamp(float64(kmpl-5) / 2)
}

// valueScore saturates at a 10-item feature list.
func (s *Scorer) valueScore(c model.CandidateRecord) float64 {
	return clamp(float64(len(c.KeyFeatures)))
}

func (s *Scorer) comfortScore(c model.CandidateRecord) float64 {
	score := float64(baseComfortScore)
	description := strings.ToLower(c.WhySuitable)
	for _, keyword := range comfortKeywords {
		if strings.Contains(description, keyword) {
			score += comfortKeywordWeight
		}
	}
	return clamp(score)
}

func (s *Scorer) easeScore(c model.CandidateRecord) float64 {
	score := float64(baseEaseScore)
	description := strings.ToLower(c.WhySuitable)
	if strings.Contains(description, "automatic") || strings.Contains(description, "easy") {
		score += 2
	}
	if strings.Contains(description, "compact") || strings.Contains(description, "small") {
		score++
	}
	return clamp(score)
}

func (s *Scorer) featureScore(c model.CandidateRecord) float64 {
	return clamp(float64(2 * len(c.KeyFeatures)))
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > maxCriterionScore {
		return maxCriterionScore
	}
	return v
}
