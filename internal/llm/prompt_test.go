package llm

import (
	"fmt"
	"strings"
	"testing"

	"github.com/carmitra/carmitra/internal/model"
)

func TestTruncateHistory(t *testing.T) {
	var history []Exchange
	for i := 0; i < 25; i++ {
		history = append(history, Exchange{
			User:      fmt.Sprintf("question %d", i),
			Assistant: fmt.Sprintf("answer %d", i),
		})
	}

	truncated := TruncateHistory(history)
	if len(truncated) != MaxHistoryExchanges {
		t.Fatalf("expected %d exchanges, got %d", MaxHistoryExchanges, len(truncated))
	}
	if truncated[0].User != "question 15" {
		t.Errorf("expected oldest kept exchange to be question 15, got %q", truncated[0].User)
	}
	if truncated[len(truncated)-1].User != "question 24" {
		t.Errorf("expected most recent exchange last, got %q", truncated[len(truncated)-1].User)
	}

	short := []Exchange{{User: "only one"}}
	if got := TruncateHistory(short); len(got) != 1 {
		t.Errorf("short history must pass through unchanged, got %d", len(got))
	}
}

func TestBuildRecommendationPrompt(t *testing.T) {
	prefs := model.Preferences{
		BudgetMin:         500_000,
		BudgetMax:         1_200_000,
		PrimaryUse:        "City commuting",
		FuelPreference:    "Petrol",
		ImportantFeatures: []string{"Automatic transmission", "High seating"},
	}

	prompt := BuildRecommendationPrompt(prefs)

	for _, want := range []string{
		"₹500000 to ₹1200000",
		"City commuting",
		"Petrol",
		"Automatic transmission, High seating",
		"FAMILY SIZE: Not specified",
		"ADDITIONAL REQUIREMENTS: None specified",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestChatSystemPrompt(t *testing.T) {
	base := ChatSystemPrompt(nil)
	if strings.Contains(base, "USER CONTEXT") {
		t.Error("no preferences must mean no context block")
	}

	prefs := model.DefaultPreferences()
	prefs.PrimaryUse = "Highway trips"
	withContext := ChatSystemPrompt(&prefs)
	if !strings.Contains(withContext, "USER CONTEXT") || !strings.Contains(withContext, "Highway trips") {
		t.Error("context block missing from personalized prompt")
	}
}
