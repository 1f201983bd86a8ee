package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carmitra/carmitra/internal/model"
)

func TestNewStore_Seeded(t *testing.T) {
	store := NewStore()
	all := store.All()

	require.Len(t, all, 5)
	for _, r := range all {
		assert.True(t, r.Verified, "seed reviews are verified")
		assert.GreaterOrEqual(t, r.Rating, 1.0)
		assert.LessOrEqual(t, r.Rating, 5.0)
	}
}

func TestStore_AddAssignsSequentialIDsAndDefaults(t *testing.T) {
	store := NewStore()

	first := store.Add(model.ReviewRecord{
		CarBrand:   "Kia",
		CarModel:   "Seltos",
		Rating:     4.2,
		ReviewText: "Feature loaded and easy to live with.",
	})
	second := store.Add(model.ReviewRecord{
		CarBrand:   "Honda",
		CarModel:   "Amaze",
		Rating:     6.5, // out of range, must clamp
		ReviewText: "Compact sedan, simple controls.",
		CategoryRatings: map[string]float64{
			"Ease of Use": 0.2, // out of range, must clamp
		},
	})

	assert.Equal(t, 6, first.ID, "user reviews continue after the seed range")
	assert.Equal(t, 7, second.ID)

	assert.False(t, first.Verified)
	assert.Zero(t, first.HelpfulVotes)
	assert.False(t, first.Date.IsZero())
	assert.Equal(t, "Anonymous Senior Buyer", first.ReviewerName)

	assert.Equal(t, 5.0, second.Rating)
	assert.Equal(t, 1.0, second.CategoryRatings["Ease of Use"])

	assert.Len(t, store.All(), 7)
}

func TestStore_ForCar(t *testing.T) {
	store := NewStore()
	store.Add(model.ReviewRecord{CarBrand: "honda", CarModel: "city", Rating: 4.0, ReviewText: "Second opinion."})

	matched := store.ForCar("Honda", "City")
	require.Len(t, matched, 2, "lookup is case-insensitive")
}

func TestFilter(t *testing.T) {
	store := NewStore()
	all := store.All()

	highRated := Filter(all, FilterOptions{MinRating: 4.5})
	for _, r := range highRated {
		assert.GreaterOrEqual(t, r.Rating, 4.5)
	}
	assert.NotEmpty(t, highRated)

	byQuery := Filter(all, FilterOptions{Query: "cvt"})
	require.Len(t, byQuery, 1)
	assert.Equal(t, "City", byQuery[0].CarModel)

	byHelpful := Filter(all, FilterOptions{SortBy: SortMostHelpful})
	require.NotEmpty(t, byHelpful)
	assert.Equal(t, "Innova Crysta", byHelpful[0].CarModel)

	assert.Empty(t, Filter(nil, FilterOptions{}))
}

func TestFilter_SortOrders(t *testing.T) {
	store := NewStore()
	all := store.All()

	oldest := Filter(all, FilterOptions{SortBy: SortOldest})
	require.NotEmpty(t, oldest)
	for i := 1; i < len(oldest); i++ {
		assert.False(t, oldest[i].Date.Before(oldest[i-1].Date))
	}

	byRating := Filter(all, FilterOptions{SortBy: SortHighRating})
	for i := 1; i < len(byRating); i++ {
		assert.GreaterOrEqual(t, byRating[i-1].Rating, byRating[i].Rating)
	}
}
