// Package ollama provides an adapter for the Ollama LLM service.
// It writes screenplays from prompts and classifies mood text by asking a
// local Ollama instance for a structured JSON emotion list.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/ewilliams-labs/moodreel/internal/core/domain"
)

const (
	defaultBaseURL = "http://localhost:11434"
	DefaultModel   = "llama3.2"
)

const classifierPrompt = "You are an emotion classifier. Read the user's text and return ONLY a JSON object of the form {\"emotions\": [{\"label\": \"joy\", \"score\": 0.8}]}.\n\nRules:\nLabels: use lower-case single words from anger, disgust, fear, joy, neutral, sadness, surprise, love, excitement, calm, curiosity, wonder.\nScores: 0.0 to 1.0, highest first, at most five entries.\nOutput: No conversational text."

const writerPrompt = "You are a screenwriter. Write short, vivid screenplays in standard format. Output only the screenplay."

type Client struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatOptions struct {
	NumPredict    int     `json:"num_predict,omitempty"`
	Temperature   float64 `json:"temperature,omitempty"`
	TopP          float64 `json:"top_p,omitempty"`
	TopK          int     `json:"top_k,omitempty"`
	RepeatPenalty float64 `json:"repeat_penalty,omitempty"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
	Format   string        `json:"format,omitempty"`
	Options  *chatOptions  `json:"options,omitempty"`
}

type chatResponse struct {
	Message chatMessage `json:"message"`
	Error   string      `json:"error,omitempty"`
}

type emotionList struct {
	Emotions []struct {
		Label string  `json:"label"`
		Score float64 `json:"score"`
	} `json:"emotions"`
}

func NewClient(baseURL, model string, timeout time.Duration) *Client {
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if model == "" {
		model = DefaultModel
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		model:   model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Generate sends prompt as a single user turn and returns the reply text.
func (c *Client) Generate(ctx context.Context, prompt string, params domain.GenerationParams) (string, error) {
	content, err := c.chat(ctx, chatRequest{
		Model:  c.model,
		Stream: false,
		Messages: []chatMessage{
			{Role: "system", Content: writerPrompt},
			{Role: "user", Content: prompt},
		},
		Options: &chatOptions{
			NumPredict:    params.MaxTokens,
			Temperature:   params.Temperature,
			TopP:          params.TopP,
			TopK:          params.TopK,
			RepeatPenalty: params.RepetitionPenalty,
		},
	})
	if err != nil {
		return "", err
	}
	return content, nil
}

// Classify asks the model for a JSON emotion list.
func (c *Client) Classify(ctx context.Context, text string) ([]domain.MoodSignal, error) {
	content, err := c.chat(ctx, chatRequest{
		Model:  c.model,
		Stream: false,
		Format: "json",
		Messages: []chatMessage{
			{Role: "system", Content: classifierPrompt},
			{Role: "user", Content: text},
		},
	})
	if err != nil {
		return nil, err
	}

	var parsed emotionList
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return nil, fmt.Errorf("ollama: decode emotions: %w", err)
	}
	signals := make([]domain.MoodSignal, 0, len(parsed.Emotions))
	for _, e := range parsed.Emotions {
		label := strings.ToLower(strings.TrimSpace(e.Label))
		if label == "" || e.Score <= 0 {
			continue
		}
		signals = append(signals, domain.MoodSignal{Label: label, Confidence: math.Min(e.Score, 1)})
	}
	if len(signals) == 0 {
		return nil, fmt.Errorf("ollama: no emotions in response")
	}
	return signals, nil
}

func (c *Client) chat(ctx context.Context, payload chatRequest) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("ollama: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("ollama: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("ollama: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("ollama: unexpected status %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("ollama: decode response: %w", err)
	}
	if parsed.Error != "" {
		return "", fmt.Errorf("ollama: %s", parsed.Error)
	}

	if strings.TrimSpace(parsed.Message.Content) == "" {
		return "", fmt.Errorf("ollama: empty response")
	}
	return parsed.Message.Content, nil
}
