package advice

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"google.golang.org/genai"

	"github.com/neexbeast/tripwise/internal/config"
	"github.com/neexbeast/tripwise/internal/metrics"
)

const geminiService = "gemini"

// TextGenerator turns a prompt into free text.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeminiClient is a TextGenerator backed by the Gemini API.
type GeminiClient struct {
	client  *genai.Client
	model   string
	metrics *metrics.Metrics
}

// NewGeminiClient creates a Gemini client for cfg.Model.
func NewGeminiClient(ctx context.Context, cfg config.Gemini, m *metrics.Metrics) (*GeminiClient, error) {
	cc := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiClient{client: client, model: cfg.Model, metrics: m}, nil
}

// Generate sends a single-turn prompt and returns the reply text.
func (g *GeminiClient) Generate(ctx context.Context, prompt string) (text string, err error) {
	defer func(start time.Time) { g.metrics.ObserveUpstream(geminiService, start, err) }(time.Now())

	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	text = result.Text()
	if text == "" {
		return "", errors.New("gemini returned an empty response")
	}
	return text, nil
}
