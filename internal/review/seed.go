package review

import (
	"time"

	"github.com/carmitra/carmitra/internal/model"
)

// seedReviews returns the hand-authored reviews shown before any user has
// submitted one. Dates are anchored to now so age-based filtering behaves
// sensibly in a fresh session.
func seedReviews(now time.Time) []model.ReviewRecord {
	return []model.ReviewRecord{
		{
			ID:           1,
			CarBrand:     "Maruti Suzuki",
			CarModel:     "Swift",
			ReviewerName: "Rajesh Kumar (62 years)",
			Rating:       4.5,
			ReviewText: "Excellent car for senior citizens! Very easy to drive and park. " +
				"The automatic variant is perfect for city traffic and the service network " +
				"is outstanding. Fuel efficiency is amazing, 18+ kmpl in the city. " +
				"Only complaint is that the rear seat could be more spacious.",
			Pros: []string{"Excellent fuel efficiency", "Easy to drive", "Wide service network", "Compact size for parking"},
			Cons: []string{"Limited rear space", "Road noise on highways"},
			CategoryRatings: map[string]float64{
				"Overall Experience":    4.5,
				"Comfort & Interior":    4.0,
				"Performance & Driving": 4.5,
				"Fuel Efficiency":       5.0,
				"Safety Features":       4.0,
				"Ease of Use":           5.0,
				"Value for Money":       4.5,
				"Service & Maintenance": 5.0,
			},
			Date:              now.AddDate(0, 0, -15),
			Verified:          true,
			HelpfulVotes:      23,
			SeniorRecommended: true,
		},
		{
			ID:           2,
			CarBrand:     "Honda",
			CarModel:     "City",
			ReviewerName: "Sunita Sharma (68 years)",
			Rating:       4.8,
			ReviewText: "Bought this for my retirement years and absolutely loving it! " +
				"The CVT automatic is so smooth, no jerks at all. The rear seat is very " +
				"comfortable and the build quality feels premium. Slightly expensive " +
				"compared to others, but the refinement justifies the price.",
			Pros: []string{"Smooth CVT transmission", "Excellent build quality", "Spacious interior", "Premium feel"},
			Cons: []string{"Higher price", "Slightly expensive maintenance"},
			CategoryRatings: map[string]float64{
				"Overall Experience":    4.8,
				"Comfort & Interior":    5.0,
				"Performance & Driving": 4.5,
				"Fuel Efficiency":       4.5,
				"Safety Features":       4.8,
				"Ease of Use":           4.8,
				"Value for Money":       4.0,
				"Service & Maintenance": 4.5,
			},
			Date:              now.AddDate(0, 0, -8),
			Verified:          true,
			HelpfulVotes:      31,
			SeniorRecommended: true,
		},
		{
			ID:           3,
			CarBrand:     "Hyundai",
			CarModel:     "Creta",
			ReviewerName: "Ashok Mehta (65 years)",
			Rating:       4.3,
			ReviewText: "Good SUV for senior citizens. The high seating position makes it " +
				"easy to get in and out, very important for people with joint issues. " +
				"Visibility is excellent and it is loaded with safety systems. The ride " +
				"is a bit firm on bad roads and city fuel efficiency could be better.",
			Pros: []string{"High seating position", "Easy entry/exit", "Feature loaded", "Good safety"},
			Cons: []string{"Firm ride quality", "Lower city fuel efficiency"},
			CategoryRatings: map[string]float64{
				"Overall Experience":    4.3,
				"Comfort & Interior":    4.5,
				"Performance & Driving": 4.2,
				"Fuel Efficiency":       3.8,
				"Safety Features":       4.8,
				"Ease of Use":           4.5,
				"Value for Money":       4.2,
				"Service & Maintenance": 4.0,
			},
			Date:              now.AddDate(0, 0, -22),
			Verified:          true,
			HelpfulVotes:      18,
			SeniorRecommended: true,
		},
		{
			ID:           4,
			CarBrand:     "Toyota",
			CarModel:     "Innova Crysta",
			ReviewerName: "Dr. Ramesh Gupta (71 years)",
			Rating:       4.9,
			ReviewText: "Purchased this for our large joint family and it has been " +
				"fantastic. Extremely reliable, no major issues in two years, and very " +
				"comfortable for long drives. All seven seats are usable. Maintenance " +
				"cost is reasonable considering the build quality.",
			Pros: []string{"Ultra reliable", "Spacious 7-seater", "Comfortable long drives", "Strong build quality"},
			Cons: []string{"Higher fuel consumption", "Premium price point"},
			CategoryRatings: map[string]float64{
				"Overall Experience":    4.9,
				"Comfort & Interior":    4.8,
				"Performance & Driving": 4.5,
				"Fuel Efficiency":       3.5,
				"Safety Features":       4.8,
				"Ease of Use":           4.5,
				"Value for Money":       4.5,
				"Service & Maintenance": 5.0,
			},
			Date:              now.AddDate(0, 0, -30),
			Verified:          true,
			HelpfulVotes:      45,
			SeniorRecommended: true,
		},
		{
			ID:           5,
			CarBrand:     "Tata",
			CarModel:     "Nexon",
			ReviewerName: "Priya Nair (63 years)",
			Rating:       4.1,
			ReviewText: "Bought this after reading about its 5-star safety rating. As a " +
				"single senior woman, safety was my top priority and the car feels very " +
				"solid. The touchscreen and reverse camera are helpful. The engine is a " +
				"bit noisy and rear seat space is just adequate.",
			Pros: []string{"Excellent safety rating", "Solid build quality", "Modern features", "Good value"},
			Cons: []string{"Engine noise", "Limited rear space"},
			CategoryRatings: map[string]float64{
				"Overall Experience":    4.1,
				"Comfort & Interior":    3.8,
				"Performance & Driving": 4.0,
				"Fuel Efficiency":       4.2,
				"Safety Features":       5.0,
				"Ease of Use":           4.0,
				"Value for Money":       4.5,
				"Service & Maintenance": 4.0,
			},
			Date:              now.AddDate(0, 0, -12),
			Verified:          true,
			HelpfulVotes:      27,
			SeniorRecommended: true,
		},
	}
}
