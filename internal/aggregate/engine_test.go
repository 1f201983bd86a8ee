package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carmitra/carmitra/internal/model"
)

func TestCategoryAverages_SkipsAbsentCategories(t *testing.T) {
	engine := NewEngine()

	reviews := []model.ReviewRecord{
		{Rating: 4.0, CategoryRatings: map[string]float64{"Fuel Efficiency": 4.0, "Safety Features": 5.0}},
		{Rating: 5.0, CategoryRatings: map[string]float64{"Fuel Efficiency": 5.0}},
		{Rating: 3.0, CategoryRatings: map[string]float64{"Safety Features": 3.0}},
	}

	averages := engine.CategoryAverages(reviews)

	assert.InDelta(t, 4.5, averages["Fuel Efficiency"], 1e-9)
	assert.InDelta(t, 4.0, averages["Safety Features"], 1e-9)

	_, present := averages["Comfort & Interior"]
	assert.False(t, present, "a category rated by nobody must have no entry")
}

func TestCategoryAverages_Empty(t *testing.T) {
	engine := NewEngine()
	assert.Empty(t, engine.CategoryAverages(nil))
}

func TestOverallAverage(t *testing.T) {
	engine := NewEngine()

	assert.Equal(t, 0.0, engine.OverallAverage(nil))

	reviews := []model.ReviewRecord{{Rating: 4.0}, {Rating: 5.0}}
	assert.InDelta(t, 4.5, engine.OverallAverage(reviews), 1e-9)
}

func TestBestCandidate_StableOnTies(t *testing.T) {
	engine := NewEngine()

	candidates := []model.CandidateRecord{
		{Model: "First", SeniorFriendlyRating: 9},
		{Model: "Second", SeniorFriendlyRating: 9},
		{Model: "Third", SeniorFriendlyRating: 7},
	}

	best, ok := engine.BestCandidate(candidates, func(c model.CandidateRecord) float64 {
		return float64(c.SeniorFriendlyRating)
	})
	require.True(t, ok)
	assert.Equal(t, "First", best.Model, "ties must resolve to the first element in input order")

	_, ok = engine.BestCandidate(nil, func(model.CandidateRecord) float64 { return 0 })
	assert.False(t, ok)
}

func TestBestReview(t *testing.T) {
	engine := NewEngine()

	reviews := []model.ReviewRecord{
		{ID: 1, HelpfulVotes: 12},
		{ID: 2, HelpfulVotes: 45},
		{ID: 3, HelpfulVotes: 45},
	}

	best, ok := engine.BestReview(reviews, func(r model.ReviewRecord) float64 {
		return float64(r.HelpfulVotes)
	})
	require.True(t, ok)
	assert.Equal(t, 2, best.ID)
}

func TestCommonFeatures(t *testing.T) {
	engine := NewEngine()

	candidates := []model.CandidateRecord{
		{KeyFeatures: []string{"A", "B", "C"}},
		{KeyFeatures: []string{"B", "C", "D"}},
		{KeyFeatures: []string{"C"}},
	}
	assert.Equal(t, []string{"C"}, engine.CommonFeatures(candidates))

	assert.Empty(t, engine.CommonFeatures(nil))

	withEmpty := append(candidates, model.CandidateRecord{})
	assert.Empty(t, engine.CommonFeatures(withEmpty), "one empty feature list empties the intersection")
}

func TestAllFeatures_SortedUnion(t *testing.T) {
	engine := NewEngine()

	candidates := []model.CandidateRecord{
		{KeyFeatures: []string{"Rear camera", "ABS"}},
		{KeyFeatures: []string{"ABS", "Cruise control"}},
	}
	assert.Equal(t, []string{"ABS", "Cruise control", "Rear camera"}, engine.AllFeatures(candidates))
}

func TestBrandRollups(t *testing.T) {
	engine := NewEngine()

	reviews := []model.ReviewRecord{
		{CarBrand: "Honda", Rating: 4.8},
		{CarBrand: "Tata", Rating: 4.1},
		{CarBrand: "Honda", Rating: 4.2},
	}

	stats := engine.BrandRollups(reviews)
	require.Len(t, stats, 2)

	assert.Equal(t, "Honda", stats[0].Brand)
	assert.Equal(t, 2, stats[0].Count)
	assert.InDelta(t, 4.5, stats[0].MeanRating, 1e-9)

	assert.Equal(t, "Tata", stats[1].Brand)
	assert.Equal(t, 1, stats[1].Count)

	assert.Empty(t, engine.BrandRollups(nil))
}

func TestRankedCategories(t *testing.T) {
	engine := NewEngine()

	ranked := engine.RankedCategories(map[string]float64{
		"Ease of Use":     4.6,
		"Fuel Efficiency": 4.2,
		"Safety Features": 4.6,
	})

	require.Len(t, ranked, 3)
	assert.Equal(t, "Ease of Use", ranked[0].Category)
	assert.Equal(t, "Safety Features", ranked[1].Category)
	assert.Equal(t, "Fuel Efficiency", ranked[2].Category)
}
