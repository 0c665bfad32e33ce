package openai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	domai "github.com/Shoaibzaak/docscreen/internal/domain/ai"
	"github.com/Shoaibzaak/docscreen/internal/infra/ai/prompt"
)

const maxTokens = 2048

type Client struct {
	*openai.Client
	Model string
}

func NewClient(apiKey, model string) *Client {
	return &Client{Client: openai.NewClient(apiKey), Model: model}
}

func (c *Client) model() string {
	if c.Model != "" {
		return c.Model
	}
	return "gpt-4o-mini"
}

// ClassifyDocument sends the normalized image to the vision model and parses
// the JSON label list it returns.
func (c *Client) ClassifyDocument(ctx context.Context, image []byte) ([]domai.Label, error) {
	req := openai.ChatCompletionRequest{
		Model: c.model(),
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompt.ClassifySystemPrompt()},
			imageMessage(prompt.ClassifyUserPrompt(), image),
		},
	}
	content, err := c.complete(ctx, req)
	if err != nil {
		return nil, err
	}

	var out struct {
		Labels []domai.Label `json:"labels"`
	}
	if err := json.Unmarshal([]byte(content), &out); err != nil {
		return nil, fmt.Errorf("failed to parse classification response: %w", err)
	}
	return out.Labels, nil
}

// ExtractText transcribes the text visible in the image. An empty string is a
// valid answer, not an error.
func (c *Client) ExtractText(ctx context.Context, image []byte) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: c.model(),
		Messages: []openai.ChatCompletionMessage{
			imageMessage(prompt.ExtractTextPrompt(), image),
		},
	}
	content, err := c.complete(ctx, req)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(content), nil
}

// AssessTextFraud asks the model for a risk narrative over extracted text.
func (c *Client) AssessTextFraud(ctx context.Context, text, declaredType string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: c.model(),
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompt.FraudSystemPrompt()},
			{Role: openai.ChatMessageRoleUser, Content: prompt.FraudUserPrompt(text, declaredType)},
		},
	}
	content, err := c.complete(ctx, req)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(content), nil
}

// Advise answers a single templated eligibility question.
func (c *Client) Advise(ctx context.Context, question string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: c.model(),
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: question},
		},
	}
	content, err := c.complete(ctx, req)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(content), nil
}

func (c *Client) complete(ctx context.Context, req openai.ChatCompletionRequest) (string, error) {
	// For reasoning models (o1/o3/o4/gpt-5*) use MaxCompletionTokens instead of MaxTokens
	model := req.Model
	if strings.HasPrefix(model, "o1") || strings.HasPrefix(model, "o3") || strings.HasPrefix(model, "o4") || strings.HasPrefix(model, "gpt-5") {
		req.MaxCompletionTokens = maxTokens
	} else {
		req.MaxTokens = maxTokens
	}

	resp, err := c.CreateChatCompletion(ctx, req)
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == 429 {
			return "", fmt.Errorf("%w: %v", domai.ErrQuotaExceeded, err)
		}
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// imageMessage builds a multi-part user message carrying the JPEG inline as a
// data URL; the normalized form is small enough that no object store hop is
// needed.
func imageMessage(text string, image []byte) openai.ChatCompletionMessage {
	return openai.ChatCompletionMessage{
		Role: openai.ChatMessageRoleUser,
		MultiContent: []openai.ChatMessagePart{
			{Type: openai.ChatMessagePartTypeText, Text: text},
			{
				Type: openai.ChatMessagePartTypeImageURL,
				ImageURL: &openai.ChatMessageImageURL{
					URL:    "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(image),
					Detail: openai.ImageURLDetailLow,
				},
			},
		},
	}
}
