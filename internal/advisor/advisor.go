// Package advisor orchestrates the recommendation flow: prompt composition,
// the provider call behind a cache and a rate limiter, payload normalization,
// and the static fallback when every upstream path fails.
package advisor

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/carmitra/carmitra/internal/cache"
	"github.com/carmitra/carmitra/internal/llm"
	"github.com/carmitra/carmitra/internal/model"
	"github.com/carmitra/carmitra/internal/normalize"
	"github.com/carmitra/carmitra/internal/worker"
)

// Source identifies where a recommendation set came from.
const (
	SourceLLM      = "llm"
	SourceCache    = "cache"
	SourceFallback = "fallback"
)

// RecommendationResult is a complete recommendation set with provenance.
type RecommendationResult struct {
	Preferences model.Preferences       `json:"preferences"`
	Candidates  []model.CandidateRecord `json:"candidates"`
	Source      string                  `json:"source"`
	GeneratedAt time.Time               `json:"generated_at"`
}

// Advisor coordinates the provider, cache, limiter and normalizer.
type Advisor struct {
	provider   llm.Provider // nil when generation is disabled
	normalizer *normalize.Normalizer
	cache      cache.Cache // nil when caching is disabled
	limiter    *worker.Limiter
	config     *model.Config
	log        zerolog.Logger
}

// New creates an advisor from the given configuration. A provider
// initialization failure degrades to the fallback dataset rather than
// aborting: the advisor always answers.
func New(cfg *model.Config, log zerolog.Logger) *Advisor {
	var provider llm.Provider
	if cfg.LLM.Provider != "" {
		p, err := llm.NewProvider(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			log.Warn().Err(err).Msg("LLM provider unavailable, using built-in dataset")
		} else {
			provider = p
		}
	}

	var store cache.Cache
	if cfg.Cache.Enabled {
		if cfg.Cache.Dir != "" {
			store = cache.NewLayeredCache(cfg.Recommend.CacheTTL, cfg.Cache.Dir, cfg.Recommend.CacheTTL)
		} else {
			store = cache.NewMemoryCache(cfg.Recommend.CacheTTL, 10*time.Minute)
		}
	}

	rps := cfg.LLM.RequestsPerSecond
	if rps <= 0 {
		rps = 1
	}

	return &Advisor{
		provider:   provider,
		normalizer: normalize.New(cfg.Recommend.MaxResults),
		cache:      store,
		limiter:    worker.NewLimiter(rps, 2),
		config:     cfg,
		log:        log,
	}
}

// Recommend produces a recommendation set for the given preferences. It never
// fails: provider errors, unparseable payloads and empty parses all resolve
// to the built-in dataset filtered by the budget ceiling.
func (a *Advisor) Recommend(ctx context.Context, prefs model.Preferences) *RecommendationResult {
	result := &RecommendationResult{
		Preferences: prefs,
		GeneratedAt: time.Now().UTC(),
	}

	if a.provider == nil {
		result.Candidates = a.fallback(prefs)
		result.Source = SourceFallback
		return result
	}

	prompt := llm.BuildRecommendationPrompt(prefs)
	key := cache.Key("recommend:" + prompt)

	if a.cache != nil {
		if payload, found := a.cache.Get(key); found {
			if candidates := a.normalizer.Normalize(string(payload)); len(candidates) > 0 {
				a.log.Debug().Str("key", key).Msg("recommendation cache hit")
				result.Candidates = candidates
				result.Source = SourceCache
				return result
			}
		}
	}

	payload, err := a.complete(ctx, llm.CompletionRequest{
		System: llm.RecommendationSystemPrompt,
		Prompt: prompt,
	})
	if err != nil {
		a.log.Warn().Err(err).Msg("completion failed, using built-in dataset")
		result.Candidates = a.fallback(prefs)
		result.Source = SourceFallback
		return result
	}

	candidates := a.normalizer.Normalize(payload)
	if len(candidates) == 0 {
		a.log.Warn().Msg("no candidates recovered from payload, using built-in dataset")
		result.Candidates = a.fallback(prefs)
		result.Source = SourceFallback
		return result
	}

	if a.cache != nil {
		if err := a.cache.Set(key, []byte(payload), a.config.Recommend.CacheTTL); err != nil {
			a.log.Warn().Err(err).Msg("failed to cache recommendation payload")
		}
	}

	result.Candidates = candidates
	result.Source = SourceLLM
	return result
}

// Chat answers a free-form consultation message. Failures resolve to an
// apology string so the conversation surface never sees an error.
func (a *Advisor) Chat(ctx context.Context, message string, history []llm.Exchange, prefs *model.Preferences) string {
	const apology = "I apologize, but I'm having trouble connecting to the advisory service right now. Please try again in a moment."

	if a.provider == nil {
		return apology
	}

	reply, err := a.complete(ctx, llm.CompletionRequest{
		System:  llm.ChatSystemPrompt(prefs),
		Prompt:  message,
		History: llm.TruncateHistory(history),
	})
	if err != nil {
		a.log.Warn().Err(err).Msg("chat completion failed")
		return apology
	}
	return reply
}

// AnalyzeReviews runs sentiment analysis over reviews concurrently, bounded
// by the configured worker count and the provider rate limit.
func (a *Advisor) AnalyzeReviews(ctx context.Context, reviews []model.ReviewRecord) []worker.AnalyzeResult {
	pool := worker.NewPool(a.config.Concurrency.AnalysisWorkers)
	pool.Start()

	for _, r := range reviews {
		if ctx.Err() != nil {
			break
		}
		pool.Submit(worker.AnalyzeJob{
			Review:   r,
			Provider: a.provider,
			Limiter:  a.limiter,
		})
	}

	var results []worker.AnalyzeResult
	for _, r := range pool.Wait() {
		if ar, ok := r.(worker.AnalyzeResult); ok {
			results = append(results, ar)
		}
	}
	return results
}

func (a *Advisor) complete(ctx context.Context, req llm.CompletionRequest) (string, error) {
	if err := a.limiter.Wait(ctx, a.provider.Name()); err != nil {
		return "", err
	}
	return a.provider.Complete(ctx, req)
}

func (a *Advisor) fallback(prefs model.Preferences) []model.CandidateRecord {
	candidates := normalize.FallbackCandidates(float64(prefs.BudgetMax))
	if len(candidates) > a.config.Recommend.MaxResults {
		candidates = candidates[:a.config.Recommend.MaxResults]
	}
	return candidates
}
