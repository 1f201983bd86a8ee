package model

import "strings"

// CandidateRecord represents one recommendable car. Records are produced by
// the normalizer (from an upstream payload, the line-oriented fallback parser,
// or the built-in dataset) and are read-only afterwards.
type CandidateRecord struct {
	Model                string   `json:"model" yaml:"model"`
	Brand                string   `json:"brand" yaml:"brand"`
	Price                string   `json:"price" yaml:"price"`                               // free-text range, e.g. "₹6L - ₹9L"
	WhySuitable          string   `json:"why_suitable" yaml:"why_suitable"`
	KeyFeatures          []string `json:"key_features,omitempty" yaml:"key_features,omitempty"`
	Pros                 []string `json:"pros,omitempty" yaml:"pros,omitempty"`
	Cons                 []string `json:"cons,omitempty" yaml:"cons,omitempty"`
	SeniorFriendlyRating int      `json:"senior_friendly_rating,omitempty" yaml:"senior_friendly_rating,omitempty"` // 0-10, 0 means unset
	FuelEfficiency       string   `json:"fuel_efficiency,omitempty" yaml:"fuel_efficiency,omitempty"`               // free-text, e.g. "22-24 kmpl"
	SafetyRating         string   `json:"safety_rating,omitempty" yaml:"safety_rating,omitempty"`                   // free-text, e.g. "4 stars"
	MaintenanceCost      string   `json:"maintenance_cost,omitempty" yaml:"maintenance_cost,omitempty"`             // Low/Medium/High or empty
}

// Valid reports whether the record carries every required field.
// Records failing this check are dropped during normalization, never repaired.
func (c CandidateRecord) Valid() bool {
	return strings.TrimSpace(c.Model) != "" &&
		strings.TrimSpace(c.Brand) != "" &&
		strings.TrimSpace(c.Price) != "" &&
		strings.TrimSpace(c.WhySuitable) != ""
}

// DisplayName is the brand+model key used for de-duplication within a
// comparison collection.
func (c CandidateRecord) DisplayName() string {
	return strings.TrimSpace(c.Brand + " " + c.Model)
}
