// Package openai adapts the OpenAI chat completions API to the text
// generation and mood classification ports.
package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/ewilliams-labs/moodreel/internal/core/domain"
	"github.com/ewilliams-labs/moodreel/internal/core/ports"
)

// DefaultModel is used when no model is configured.
const DefaultModel = string(openai.ChatModelGPT4oMini)

// EmotionScore is one classified emotion.
type EmotionScore struct {
	Label string  `json:"label" jsonschema_description:"Lower-case emotion name such as joy, sadness, anger, fear, surprise, love, excitement, calm, curiosity or wonder"`
	Score float64 `json:"score" jsonschema_description:"Confidence between 0 and 1"`
}

// EmotionResponse is the structured classifier output.
type EmotionResponse struct {
	Emotions []EmotionScore `json:"emotions" jsonschema_description:"Detected emotions, strongest first, at most five"`
}

// GenerateSchema generates a JSON schema for structured outputs
func GenerateSchema[T any]() interface{} {
	reflector := &jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	return reflector.Reflect(v)
}

var emotionResponseSchema = GenerateSchema[EmotionResponse]()

type Client struct {
	client openai.Client
	model  string
}

var (
	_ ports.TextGenerator  = (*Client)(nil)
	_ ports.MoodClassifier = (*Client)(nil)
)

// NewClient builds a client. SDK retries are off; the caller falls back instead.
func NewClient(apiKey, model, baseURL string) *Client {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		client: openai.NewClient(opts...),
		model:  model,
	}
}

// Generate completes a screenplay prompt.
func (c *Client) Generate(ctx context.Context, prompt string, params domain.GenerationParams) (string, error) {
	req := openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage("You are a screenwriter. Output only the screenplay."),
			openai.UserMessage(prompt),
		},
		Model: openai.ChatModel(c.model),
	}
	if params.MaxTokens > 0 {
		req.MaxCompletionTokens = openai.Int(int64(params.MaxTokens))
	}
	if params.Temperature > 0 {
		req.Temperature = openai.Float(params.Temperature)
	}
	if params.TopP > 0 {
		req.TopP = openai.Float(params.TopP)
	}

	completion, err := c.client.Chat.Completions.New(ctx, req)
	if err != nil {
		return "", fmt.Errorf("openai: chat completion: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("openai: no choices in response")
	}
	content := completion.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("openai: empty response, finish reason %q", completion.Choices[0].FinishReason)
	}
	return content, nil
}

// Classify asks for a schema-constrained emotion list.
func (c *Client) Classify(ctx context.Context, text string) ([]domain.MoodSignal, error) {
	schemaParam := openai.ResponseFormatJSONSchemaJSONSchemaParam{
		Name:        "emotion_profile",
		Description: openai.String("Emotions detected in the user's text"),
		Schema:      emotionResponseSchema,
		Strict:      openai.Bool(true),
	}

	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage("Classify the emotions expressed in the user's text."),
			openai.UserMessage(text),
		},
		Model: openai.ChatModel(c.model),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
				JSONSchema: schemaParam,
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("openai: classify: %w", err)
	}
	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("openai: no choices in response")
	}

	var resp EmotionResponse
	if err := json.Unmarshal([]byte(completion.Choices[0].Message.Content), &resp); err != nil {
		return nil, fmt.Errorf("openai: decode emotions: %w", err)
	}
	signals := make([]domain.MoodSignal, 0, len(resp.Emotions))
	for _, e := range resp.Emotions {
		label := strings.ToLower(strings.TrimSpace(e.Label))
		if label == "" || e.Score <= 0 {
			continue
		}
		signals = append(signals, domain.MoodSignal{Label: label, Confidence: math.Min(e.Score, 1)})
	}
	if len(signals) == 0 {
		return nil, fmt.Errorf("openai: no emotions in response")
	}
	return signals, nil
}
