package model

import "time"

// ReviewRecord represents one authored or seeded car review.
// Reviews are append-only: never edited or deleted once created.
type ReviewRecord struct {
	ID                int                `json:"id"`
	CarBrand          string             `json:"car_brand"`
	CarModel          string             `json:"car_model"`
	ReviewerName      string             `json:"reviewer_name,omitempty"`
	Rating            float64            `json:"rating"` // overall, 1.0-5.0
	ReviewText        string             `json:"review_text"`
	Pros              []string           `json:"pros,omitempty"`
	Cons              []string           `json:"cons,omitempty"`
	CategoryRatings   map[string]float64 `json:"category_ratings,omitempty"` // subset of ReviewCategories, values 1.0-5.0
	Date              time.Time          `json:"date"`
	Verified          bool               `json:"verified"`
	HelpfulVotes      int                `json:"helpful_votes"`
	SeniorRecommended bool               `json:"senior_recommended"`
}

// ReviewCategories is the fixed, closed set of rating categories. A review
// may rate any subset; unrated categories are absent from CategoryRatings,
// not zero.
var ReviewCategories = []string{
	"Overall Experience",
	"Comfort & Interior",
	"Performance & Driving",
	"Fuel Efficiency",
	"Safety Features",
	"Ease of Use",
	"Value for Money",
	"Service & Maintenance",
}
