package gemini

import (
	"context"
	"log/slog"

	"github.com/tmc/langchaingo/llms/googleai"

	"github.com/altitut/FundingMatch-sub001/ai"
	"github.com/altitut/FundingMatch-sub001/ratelimit"
)

// Embedder implements ai.Embedder using the Gemini embedding API.
// Every remote call goes through the shared executor, which paces calls
// and retries quota failures.
type Embedder struct {
	client      *googleai.GoogleAI
	executor    *ratelimit.Executor
	maxAttempts int
	logger      *slog.Logger
}

// newEmbedder is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newEmbedder(client *googleai.GoogleAI, executor *ratelimit.Executor, maxAttempts int) *Embedder {
	return &Embedder{
		client:      client,
		executor:    executor,
		maxAttempts: maxAttempts,
		logger:      slog.Default().With("component", "gemini-embedder"),
	}
}

// NewEmbedder creates a standalone embedder using the provided configuration.
// It carries its own rate limiter; prefer NewProvider when the generation
// service is also in use so both share one quota budget.
//
// Returns ai.Embedder interface to enforce abstraction.
func NewEmbedder(ctx context.Context, config *ai.Config) (ai.Embedder, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := googleai.New(ctx,
		googleai.WithAPIKey(config.APIKey),
		googleai.WithDefaultEmbeddingModel(config.EmbeddingModel),
	)
	if err != nil {
		return nil, err
	}

	limiter, err := ratelimit.NewLimiter(config.CallsPerMinute)
	if err != nil {
		return nil, err
	}
	executor, err := ratelimit.NewExecutor(limiter)
	if err != nil {
		return nil, err
	}

	return newEmbedder(client, executor, config.MaxAttempts), nil
}

// EmbedText generates a vector embedding for a single text string.
func (e *Embedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	vectors, err := e.EmbedTexts(ctx, []string{text})
	if err != nil {
		return nil, err
	}

	if len(vectors) == 0 {
		e.logger.Warn("embedder returned empty result")
		return []float32{}, nil
	}

	return vectors[0], nil
}

// EmbedTexts generates vector embeddings for multiple text strings in a batch.
func (e *Embedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	e.logger.Debug("generating embeddings for texts", "count", len(texts))

	var vectors [][]float32
	err := e.executor.Execute(ctx, func() error {
		var callErr error
		vectors, callErr = e.client.CreateEmbedding(ctx, texts)
		return callErr
	}, e.maxAttempts)
	if err != nil {
		e.logger.Error("failed to generate embeddings", "count", len(texts), "err", err)
		return nil, err
	}

	return vectors, nil
}
