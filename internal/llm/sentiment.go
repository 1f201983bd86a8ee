package llm

import (
	"context"
	"fmt"
	"strings"
)

// Sentiment is the outcome of analyzing one review text. Analysis is purely
// advisory: a failure resolves to the neutral default, never an error.
type Sentiment struct {
	Label      string  `json:"label"` // positive, negative or neutral
	Confidence float64 `json:"confidence"`
	Summary    string  `json:"summary"`
}

// NeutralSentiment is returned whenever analysis cannot run.
func NeutralSentiment() Sentiment {
	return Sentiment{Label: "neutral", Confidence: 0.5, Summary: "Analysis unavailable"}
}

const sentimentSystemPrompt = "You are an expert at analyzing car reviews for senior buyers."

// AnalyzeSentiment classifies a review text through the provider. A nil or
// failing provider yields the neutral default.
func AnalyzeSentiment(ctx context.Context, p Provider, reviewText string) Sentiment {
	if p == nil {
		return NeutralSentiment()
	}

	prompt := fmt.Sprintf(`Analyze the sentiment of this car review and provide insights:

Review: %q

Please provide:
1. Sentiment (positive/negative/neutral)
2. Confidence score (0-1)
3. Key insights for senior car buyers
4. Summary of main points`, reviewText)

	response, err := p.Complete(ctx, CompletionRequest{
		System:      sentimentSystemPrompt,
		Prompt:      prompt,
		MaxTokens:   300,
		Temperature: 0.3,
	})
	if err != nil {
		return NeutralSentiment()
	}

	label := "neutral"
	lower := strings.ToLower(response)
	switch {
	case strings.Contains(lower, "positive"):
		label = "positive"
	case strings.Contains(lower, "negative"):
		label = "negative"
	}

	return Sentiment{Label: label, Confidence: 0.8, Summary: response}
}
