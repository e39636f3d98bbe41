package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const (
	geminiProvider     = "gemini"
	defaultGeminiModel = "gemini-1.5-flash"
)

// GeminiClient implements LLMClient on top of Google's Gemini models.
type GeminiClient struct {
	client *genai.Client
	model  string
	opts   LLMOptions
}

// NewGeminiClient creates a new Gemini client
func NewGeminiClient(opts LLMOptions) (*GeminiClient, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if opts.Model == "" {
		opts.Model = defaultGeminiModel
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(opts.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		model:  opts.Model,
		opts:   opts,
	}, nil
}

func (c *GeminiClient) Provider() string {
	return geminiProvider
}

func (c *GeminiClient) generativeModel() *genai.GenerativeModel {
	m := c.client.GenerativeModel(c.model)
	if c.opts.Temperature != nil {
		m.SetTemperature(*c.opts.Temperature)
	}
	return m
}

func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("%w: prompt cannot be empty", ErrInvalidInput)
	}

	ctx, cancel := c.opts.withTimeout(ctx)
	defer cancel()

	resp, err := c.generativeModel().GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", ClassifyProviderError(geminiProvider, err)
	}
	return responseText(resp)
}

func (c *GeminiClient) Chat(ctx context.Context, history []ChatMessage) (string, error) {
	if err := validateHistory(history); err != nil {
		return "", err
	}

	cs := c.generativeModel().StartChat()
	cs.History = toGeminiContents(history[:len(history)-1])

	ctx, cancel := c.opts.withTimeout(ctx)
	defer cancel()

	last := history[len(history)-1]
	resp, err := cs.SendMessage(ctx, genai.Text(last.Text))
	if err != nil {
		return "", ClassifyProviderError(geminiProvider, err)
	}
	return responseText(resp)
}

func (c *GeminiClient) Close() error {
	return c.client.Close()
}

func toGeminiContents(history []ChatMessage) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history))
	for _, msg := range history {
		contents = append(contents, &genai.Content{
			Role:  msg.Role,
			Parts: []genai.Part{genai.Text(msg.Text)},
		})
	}
	return contents
}

// responseText joins the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 ||
		resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", newProviderError(geminiProvider, ErrEmptyResponse, nil)
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", newProviderError(geminiProvider, ErrEmptyResponse, nil)
	}
	return sb.String(), nil
}
