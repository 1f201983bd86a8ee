package worker

import (
	"context"

	"github.com/carmitra/carmitra/internal/llm"
	"github.com/carmitra/carmitra/internal/model"
)

// AnalyzeJob runs sentiment analysis for a single review.
type AnalyzeJob struct {
	Review   model.ReviewRecord
	Provider llm.Provider
	Limiter  *Limiter
}

// AnalyzeResult carries the sentiment outcome for one review.
type AnalyzeResult struct {
	ReviewID  int
	Car       string
	Sentiment llm.Sentiment
	Err       error
}

// GetError returns the job error, if any.
func (r AnalyzeResult) GetError() error {
	return r.Err
}

// Execute analyzes the review text, respecting the provider rate limit.
func (j AnalyzeJob) Execute(ctx context.Context) Result {
	result := AnalyzeResult{
		ReviewID: j.Review.ID,
		Car:      j.Review.CarBrand + " " + j.Review.CarModel,
	}

	if j.Provider != nil && j.Limiter != nil {
		if err := j.Limiter.Wait(ctx, j.Provider.Name()); err != nil {
			result.Err = err
			result.Sentiment = llm.NeutralSentiment()
			return result
		}
	}

	result.Sentiment = llm.AnalyzeSentiment(ctx, j.Provider, j.Review.ReviewText)
	return result
}
