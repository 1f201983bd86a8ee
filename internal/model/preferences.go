package model

// Preferences captures the buyer questionnaire answers that drive
// recommendation prompts and the budget filter of the fallback dataset.
type Preferences struct {
	BudgetMin              int      `json:"budget_min" yaml:"budget_min"` // rupees
	BudgetMax              int      `json:"budget_max" yaml:"budget_max"` // rupees
	PrimaryUse             string   `json:"primary_use,omitempty" yaml:"primary_use,omitempty"`
	FamilySize             string   `json:"family_size,omitempty" yaml:"family_size,omitempty"`
	DrivingExperience      string   `json:"driving_experience,omitempty" yaml:"driving_experience,omitempty"`
	FuelPreference         string   `json:"fuel_preference,omitempty" yaml:"fuel_preference,omitempty"`
	ImportantFeatures      []string `json:"important_features,omitempty" yaml:"important_features,omitempty"`
	PhysicalConsiderations []string `json:"physical_considerations,omitempty" yaml:"physical_considerations,omitempty"`
	BrandPreferences       []string `json:"brand_preferences,omitempty" yaml:"brand_preferences,omitempty"`
	AdditionalRequirements string   `json:"additional_requirements,omitempty" yaml:"additional_requirements,omitempty"`
}

// DefaultPreferences returns the budget assumed when the questionnaire was
// skipped: 3 to 10 lakh rupees.
func DefaultPreferences() Preferences {
	return Preferences{
		BudgetMin: 300_000,
		BudgetMax: 1_000_000,
	}
}
