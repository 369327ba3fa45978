package gemini

import (
	"context"
	"log/slog"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"

	"github.com/altitut/FundingMatch-sub001/ratelimit"
)

// Generation parameters for match explanations. The temperature leaves room
// for varied phrasing while the token cap keeps explanations to a paragraph.
const (
	generationTemperature = 0.7
	generationMaxTokens   = 1000
)

// Generator implements ai.Generator using the Gemini completion API.
// Every remote call goes through the shared executor, which paces calls
// and retries quota failures.
type Generator struct {
	client      *googleai.GoogleAI
	executor    *ratelimit.Executor
	maxAttempts int
	logger      *slog.Logger
}

// newGenerator is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newGenerator(client *googleai.GoogleAI, executor *ratelimit.Executor, maxAttempts int) *Generator {
	return &Generator{
		client:      client,
		executor:    executor,
		maxAttempts: maxAttempts,
		logger:      slog.Default().With("component", "gemini-generator"),
	}
}

// GenerateText generates a completion for the given prompt.
func (g *Generator) GenerateText(ctx context.Context, prompt string) (string, error) {
	g.logger.Debug("generating text", "prompt_length", len(prompt))

	var completion string
	err := g.executor.Execute(ctx, func() error {
		var callErr error
		completion, callErr = llms.GenerateFromSinglePrompt(ctx, g.client, prompt,
			llms.WithTemperature(generationTemperature),
			llms.WithMaxTokens(generationMaxTokens),
		)
		return callErr
	}, g.maxAttempts)
	if err != nil {
		g.logger.Error("failed to generate text", "err", err)
		return "", err
	}

	return completion, nil
}
