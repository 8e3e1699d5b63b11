// Package llm talks to the chat and embedding models. Every provider
// (Google AI, Moonshot, Groq, OpenAI) is reached through its
// OpenAI-compatible endpoint, so one client type covers all of them.
// Models are named "provider/model"; a bare model name means OpenAI.
package llm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/trykin/spark/pkg/config"
	"github.com/trykin/spark/pkg/models"
)

// requestTimeout bounds a single non-streaming completion call.
const requestTimeout = 30 * time.Second

// Request is a single chat completion request.
type Request struct {
	Messages    []models.ChatMessage
	Temperature float32
	MaxTokens   int
	// JSONMode asks the provider for a JSON object response. Used by
	// the preflight classifiers.
	JSONMode bool
}

// Client routes chat completions to the configured primary, fallback,
// and preflight models, and embedding calls to OpenAI.
type Client struct {
	cfg    *config.Settings
	logger *slog.Logger

	// baseURLs maps provider name to API base URL. Tests point these
	// at httptest servers.
	baseURLs map[string]string
}

// NewClient creates a client from the loaded settings.
func NewClient(cfg *config.Settings, logger *slog.Logger) *Client {
	return &Client{
		cfg:    cfg,
		logger: logger,
		baseURLs: map[string]string{
			"gemini":   "https://generativelanguage.googleapis.com/v1beta/openai",
			"moonshot": "https://api.moonshot.ai/v1",
			"groq":     "https://api.groq.com/openai/v1",
			"openai":   "https://api.openai.com/v1",
		},
	}
}

// splitModel splits a "provider/model" spec. A spec without a slash is
// treated as an OpenAI model.
func splitModel(spec string) (provider, model string) {
	if i := strings.IndexByte(spec, '/'); i >= 0 {
		return spec[:i], spec[i+1:]
	}
	return "openai", spec
}

// apiFor builds the provider-specific API client for a model spec.
func (c *Client) apiFor(spec string) (*openai.Client, string, error) {
	provider, model := splitModel(spec)

	baseURL, ok := c.baseURLs[provider]
	if !ok {
		return nil, "", fmt.Errorf("unknown model provider %q in %q", provider, spec)
	}

	var key string
	switch provider {
	case "gemini":
		key = c.cfg.GoogleAIAPIKey
	case "moonshot":
		key = c.cfg.MoonshotAPIKey
	case "groq":
		key = c.cfg.GroqAPIKey
	case "openai":
		key = c.cfg.OpenAIAPIKey
	}
	if key == "" {
		return nil, "", fmt.Errorf("no API key configured for provider %q", provider)
	}

	apiCfg := openai.DefaultConfig(key)
	apiCfg.BaseURL = baseURL
	return openai.NewClientWithConfig(apiCfg), model, nil
}

func toOpenAIMessages(msgs []models.ChatMessage) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, len(msgs))
	for i, m := range msgs {
		out[i] = openai.ChatCompletionMessage{Role: m.Role, Content: m.Content}
	}
	return out
}

// complete runs one non-streaming completion against a single model.
func (c *Client) complete(ctx context.Context, modelSpec string, req Request) (string, error) {
	api, model, err := c.apiFor(modelSpec)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	chatReq := openai.ChatCompletionRequest{
		Model:       model,
		Messages:    toOpenAIMessages(req.Messages),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.JSONMode {
		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := api.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return "", fmt.Errorf("completion with %s failed: %w", modelSpec, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("completion with %s returned no choices", modelSpec)
	}
	return resp.Choices[0].Message.Content, nil
}

// Complete runs a completion against the primary model, falling back
// to the fallback model exactly once on failure.
func (c *Client) Complete(ctx context.Context, req Request) (string, error) {
	text, err := c.complete(ctx, c.cfg.PrimaryModel, req)
	if err == nil {
		return text, nil
	}
	c.logger.Warn("Primary model failed, trying fallback",
		"primary", c.cfg.PrimaryModel,
		"fallback", c.cfg.FallbackModel,
		"error", err)

	text, fbErr := c.complete(ctx, c.cfg.FallbackModel, req)
	if fbErr != nil {
		return "", errors.Join(err, fbErr)
	}
	return text, nil
}

// CompletePreflight runs a completion against the preflight model.
// There is no fallback: preflight callers fail open on error.
func (c *Client) CompletePreflight(ctx context.Context, req Request) (string, error) {
	return c.complete(ctx, c.cfg.PreflightModel, req)
}

// Stream runs a streaming completion against the primary model. On any
// failure of the primary stream, whether it never opened or died
// mid-response, the fallback model is called non-streaming exactly once
// and its whole response is delivered as a single chunk.
func (c *Client) Stream(ctx context.Context, req Request) (<-chan string, <-chan error) {
	chunks := make(chan string, 100)
	errs := make(chan error, 1)

	go func() {
		defer close(chunks)
		defer close(errs)

		emitted, err := c.streamPrimary(ctx, req, chunks)
		if err == nil {
			return
		}

		c.logger.Warn("Primary stream failed, using fallback",
			"primary", c.cfg.PrimaryModel,
			"fallback", c.cfg.FallbackModel,
			"partial_output", emitted,
			"error", err)

		text, fbErr := c.complete(ctx, c.cfg.FallbackModel, req)
		if fbErr != nil {
			errs <- errors.Join(err, fbErr)
			return
		}
		select {
		case chunks <- text:
		case <-ctx.Done():
			errs <- ctx.Err()
		}
	}()

	return chunks, errs
}

// streamPrimary opens the primary stream and forwards deltas. Returns
// whether any token was emitted before the reported error.
func (c *Client) streamPrimary(ctx context.Context, req Request, chunks chan<- string) (bool, error) {
	api, model, err := c.apiFor(c.cfg.PrimaryModel)
	if err != nil {
		return false, err
	}

	stream, err := api.CreateChatCompletionStream(ctx, openai.ChatCompletionRequest{
		Model:       model,
		Messages:    toOpenAIMessages(req.Messages),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Stream:      true,
	})
	if err != nil {
		return false, fmt.Errorf("failed to open stream with %s: %w", c.cfg.PrimaryModel, err)
	}
	defer stream.Close()

	emitted := false
	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return emitted, nil
		}
		if err != nil {
			return emitted, fmt.Errorf("stream from %s failed: %w", c.cfg.PrimaryModel, err)
		}
		if len(resp.Choices) == 0 {
			continue
		}
		delta := resp.Choices[0].Delta.Content
		if delta == "" {
			continue
		}
		select {
		case chunks <- delta:
			emitted = true
		case <-ctx.Done():
			return emitted, ctx.Err()
		}
	}
}
