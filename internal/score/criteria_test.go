package score

import (
	"testing"

	"github.com/carmitra/carmitra/internal/model"
)

func TestScorer_VectorShapeAndBounds(t *testing.T) {
	scorer := NewScorer()

	candidates := []model.CandidateRecord{
		{}, // all-default record must still score
		{
			Model:                "Swift",
			Brand:                "Maruti Suzuki",
			Price:                "₹6L - ₹9L",
			WhySuitable:          "Compact, easy to drive, comfortable and smooth automatic.",
			KeyFeatures:          []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"},
			SeniorFriendlyRating: 9,
			FuelEfficiency:       "22-24 kmpl",
			SafetyRating:         "4 stars",
		},
		{FuelEfficiency: "40 kmpl", SeniorFriendlyRating: 15},
	}

	for i, c := range candidates {
		vec := scorer.Score(c)
		if len(vec) != len(Criteria) {
			t.Fatalf("candidate %d: expected %d-element vector, got %d", i, len(Criteria), len(vec))
		}
		for j, v := range vec {
			if v < 0 || v > 10 {
				t.Errorf("candidate %d, criterion %q: score %v out of [0,10]", i, Criteria[j], v)
			}
		}
	}
}

func TestScorer_SafetyRules(t *testing.T) {
	scorer := NewScorer()

	tests := []struct {
		rating string
		want   float64
	}{
		{"5 stars", 10},
		{"excellent build", 10},
		{"4 stars", 8},
		{"good", 8},
		{"3 stars", 6},
		{"average at best", 6},
		{"", 5},
		{"unrated", 5},
	}

	for _, tt := range tests {
		vec := scorer.Score(model.CandidateRecord{SafetyRating: tt.rating})
		if vec[0] != tt.want {
			t.Errorf("safety %q: got %v, want %v", tt.rating, vec[0], tt.want)
		}
	}
}

func TestScorer_EfficiencyRescaling(t *testing.T) {
	scorer := NewScorer()

	tests := []struct {
		fuel string
		want float64
	}{
		{"22-24 kmpl", 8.5}, // (22-5)/2
		{"5 kmpl", 0},
		{"25 kmpl", 10},
		{"40 kmpl", 10},   // clamped
		{"", 5},           // default 15 kmpl -> (15-5)/2
		{"city only", 5},  // no digits, same default
	}

	for _, tt := range tests {
		vec := scorer.Score(model.CandidateRecord{FuelEfficiency: tt.fuel})
		if vec[2] != tt.want {
			t.Errorf("efficiency %q: got %v, want %v", tt.fuel, vec[2], tt.want)
		}
	}
}

func TestScorer_ComfortAndEaseKeywords(t *testing.T) {
	scorer := NewScorer()

	c := model.CandidateRecord{
		WhySuitable: "A comfortable, spacious car with a smooth automatic gearbox in a compact body.",
	}
	vec := scorer.Score(c)

	if vec[4] != 9 { // base 6 + comfortable + spacious + smooth
		t.Errorf("comfort: got %v, want 9", vec[4])
	}
	if vec[5] != 10 { // base 7 + 2 (automatic) + 1 (compact)
		t.Errorf("ease of use: got %v, want 10", vec[5])
	}

	neutral := scorer.Score(model.CandidateRecord{WhySuitable: "It is a car."})
	if neutral[4] != 6 || neutral[5] != 7 {
		t.Errorf("neutral description: got comfort %v ease %v, want 6 and 7", neutral[4], neutral[5])
	}
}

func TestScorer_FeatureCounts(t *testing.T) {
	scorer := NewScorer()

	vec := scorer.Score(model.CandidateRecord{KeyFeatures: []string{"a", "b", "c"}})
	if vec[3] != 3 {
		t.Errorf("value: got %v, want 3", vec[3])
	}
	if vec[6] != 6 {
		t.Errorf("feature richness: got %v, want 6", vec[6])
	}

	many := make([]string, 12)
	vec = scorer.Score(model.CandidateRecord{KeyFeatures: many})
	if vec[3] != 10 || vec[6] != 10 {
		t.Errorf("saturation: got value %v richness %v, want 10 and 10", vec[3], vec[6])
	}
}

func TestScorer_Deterministic(t *testing.T) {
	scorer := NewScorer()
	c := model.CandidateRecord{
		WhySuitable:    "Smooth, refined and easy to park.",
		SafetyRating:   "4 stars",
		FuelEfficiency: "17-19 kmpl",
		KeyFeatures:    []string{"x", "y"},
	}

	first := scorer.Score(c)
	for i := 0; i < 50; i++ {
		again := scorer.Score(c)
		for j := range first {
			if first[j] != again[j] {
				t.Fatalf("score vector changed between calls at %q", Criteria[j])
			}
		}
	}
}
