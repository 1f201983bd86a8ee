package llm

import (
	"fmt"
	"strings"

	"github.com/carmitra/carmitra/internal/model"
)

// RecommendationSystemPrompt fixes the assistant persona and the JSON output
// contract the normalizer expects: an array of exactly five objects with the
// candidate-record fields.
const RecommendationSystemPrompt = `You are an expert car consultant specializing in the Indian automotive market with deep knowledge of senior buyers' needs. You have comprehensive knowledge of ALL car brands available in India including Maruti Suzuki, Hyundai, Tata, Honda, Toyota, Mahindra, Kia, MG, Volkswagen, Skoda, Nissan, Renault, BMW, Mercedes-Benz, Audi, Volvo, Jaguar, Land Rover, and many others.

Your expertise includes:
- Understanding senior buyers' priorities: safety, comfort, ease of use, reliability, service network
- Knowledge of Indian road conditions and driving patterns
- Awareness of maintenance costs, fuel efficiency, and resale values
- Understanding of physical accessibility needs for senior drivers

Always provide recommendations that prioritize:
1. Safety features and build quality
2. Ease of driving and parking
3. Comfort and accessibility
4. Reliable after-sales service
5. Value for money and low maintenance

Format your response as a JSON array with exactly 5 car recommendations, each containing:
- model: Car name and variant
- brand: Manufacturer name
- price: Price range in Indian Rupees
- why_suitable: 2-3 sentences explaining why it's perfect for this senior buyer
- key_features: Array of 4-5 most relevant features
- pros: Array of 3-4 main advantages
- cons: Array of 2-3 honest limitations
- senior_friendly_rating: Number from 1-10 (10 being most senior-friendly)
- fuel_efficiency: Expected mileage
- safety_rating: Safety assessment
- maintenance_cost: Low/Medium/High assessment`

// BuildRecommendationPrompt composes the user prompt from questionnaire
// answers. Unanswered fields are spelled out rather than omitted so the
// model does not invent constraints.
func BuildRecommendationPrompt(prefs model.Preferences) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Please recommend 5 cars for a senior buyer with these specific requirements:\n\n")
	fmt.Fprintf(&b, "BUDGET: ₹%d to ₹%d\n\n", prefs.BudgetMin, prefs.BudgetMax)
	fmt.Fprintf(&b, "PRIMARY USE: %s\n\n", orUnspecified(prefs.PrimaryUse))
	fmt.Fprintf(&b, "FAMILY SIZE: %s\n\n", orUnspecified(prefs.FamilySize))
	fmt.Fprintf(&b, "DRIVING EXPERIENCE: %s\n\n", orUnspecified(prefs.DrivingExperience))
	fmt.Fprintf(&b, "FUEL PREFERENCE: %s\n\n", orDefault(prefs.FuelPreference, "No preference"))
	fmt.Fprintf(&b, "IMPORTANT FEATURES: %s\n\n", strings.Join(prefs.ImportantFeatures, ", "))
	fmt.Fprintf(&b, "PHYSICAL CONSIDERATIONS: %s\n\n", strings.Join(prefs.PhysicalConsiderations, ", "))
	fmt.Fprintf(&b, "BRAND PREFERENCES: %s\n\n", strings.Join(prefs.BrandPreferences, ", "))
	fmt.Fprintf(&b, "ADDITIONAL REQUIREMENTS: %s\n\n", orDefault(prefs.AdditionalRequirements, "None specified"))

	b.WriteString("Consider the Indian market, road conditions, service network availability, and senior-specific needs like easy entry/exit, simple controls, good visibility, and reliable after-sales support.\n\n")
	b.WriteString("Provide a diverse mix covering different categories (hatchback, sedan, SUV, etc.) while staying within budget and matching the specific needs mentioned above.")

	return b.String()
}

// ChatSystemPrompt composes the consultation persona, appending buyer
// context when a questionnaire has been answered.
func ChatSystemPrompt(prefs *model.Preferences) string {
	base := `You are a knowledgeable car consultant helping people choose the right car in India. You have extensive knowledge of all car brands available in the Indian market.

Your expertise includes:
- Indian road conditions and driving patterns
- Maintenance costs, fuel efficiency, and service networks
- Safety features and reliability ratings
- Price comparisons and value for money
- Different car categories (hatchback, sedan, SUV, etc.)

Always prioritize safety, reliability, comfort, practicality, service availability and value for money. Use clear, professional language, be thorough but concise, and explain the reasoning behind every recommendation.`

	if prefs == nil {
		return base
	}

	return base + fmt.Sprintf(`

USER CONTEXT:
Budget: ₹%d - ₹%d
Primary Use: %s
Fuel Preference: %s

Use this context for personalized advice.`,
		prefs.BudgetMin, prefs.BudgetMax,
		orUnspecified(prefs.PrimaryUse),
		orUnspecified(prefs.FuelPreference))
}

func orUnspecified(s string) string {
	return orDefault(s, "Not specified")
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
