package utils

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const (
	openAIProvider     = "openai"
	defaultOpenAIModel = openai.GPT4oMini
)

// OpenAIClient implements LLMClient with the OpenAI chat completions API.
type OpenAIClient struct {
	client *openai.Client
	model  string
	opts   LLMOptions
}

func NewOpenAIClient(opts LLMOptions) (*OpenAIClient, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, fmt.Errorf("openai api key is required")
	}
	if opts.Model == "" {
		opts.Model = defaultOpenAIModel
	}
	oc := openai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		oc.BaseURL = opts.BaseURL
	}
	return &OpenAIClient{
		client: openai.NewClientWithConfig(oc),
		model:  opts.Model,
		opts:   opts,
	}, nil
}

func (c *OpenAIClient) Provider() string {
	return openAIProvider
}

func (c *OpenAIClient) Generate(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("%w: prompt cannot be empty", ErrInvalidInput)
	}
	return c.complete(ctx, []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleUser, Content: prompt},
	})
}

func (c *OpenAIClient) Chat(ctx context.Context, history []ChatMessage) (string, error) {
	if err := validateHistory(history); err != nil {
		return "", err
	}
	return c.complete(ctx, toOpenAIMessages(history))
}

func (c *OpenAIClient) Close() error {
	return nil
}

func (c *OpenAIClient) complete(ctx context.Context, messages []openai.ChatCompletionMessage) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: messages,
	}
	if c.opts.Temperature != nil {
		req.Temperature = *c.opts.Temperature
	}

	ctx, cancel := c.opts.withTimeout(ctx)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", ClassifyProviderError(openAIProvider, err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", newProviderError(openAIProvider, ErrEmptyResponse, nil)
	}
	return resp.Choices[0].Message.Content, nil
}

// toOpenAIMessages maps the Gemini-style "model" role onto "assistant".
func toOpenAIMessages(history []ChatMessage) []openai.ChatCompletionMessage {
	messages := make([]openai.ChatCompletionMessage, 0, len(history))
	for _, msg := range history {
		role := openai.ChatMessageRoleUser
		if msg.Role == RoleModel {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: msg.Text})
	}
	return messages
}
