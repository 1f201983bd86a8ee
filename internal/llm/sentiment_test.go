package llm

import (
	"context"
	"errors"
	"testing"
)

// stubProvider returns a fixed response or error.
type stubProvider struct {
	response string
	err      error
}

func (s *stubProvider) Name() string                        { return "stub" }
func (s *stubProvider) IsAvailable(_ context.Context) bool  { return s.err == nil }
func (s *stubProvider) Complete(_ context.Context, _ CompletionRequest) (string, error) {
	return s.response, s.err
}

func TestAnalyzeSentiment_NilProvider(t *testing.T) {
	got := AnalyzeSentiment(context.Background(), nil, "great car")
	if got.Label != "neutral" || got.Confidence != 0.5 {
		t.Errorf("expected neutral default, got %+v", got)
	}
}

func TestAnalyzeSentiment_ProviderError(t *testing.T) {
	p := &stubProvider{err: errors.New("rate limited")}
	got := AnalyzeSentiment(context.Background(), p, "great car")
	if got.Label != "neutral" {
		t.Errorf("provider failure must resolve to neutral, got %+v", got)
	}
}

func TestAnalyzeSentiment_Labels(t *testing.T) {
	tests := []struct {
		response string
		want     string
	}{
		{"Sentiment: positive. The reviewer is delighted.", "positive"},
		{"Sentiment: negative. Several complaints about noise.", "negative"},
		{"Hard to say either way.", "neutral"},
	}

	for _, tt := range tests {
		p := &stubProvider{response: tt.response}
		got := AnalyzeSentiment(context.Background(), p, "review text")
		if got.Label != tt.want {
			t.Errorf("response %q: got label %q, want %q", tt.response, got.Label, tt.want)
		}
		if got.Confidence != 0.8 {
			t.Errorf("successful analysis confidence = %v, want 0.8", got.Confidence)
		}
	}
}
