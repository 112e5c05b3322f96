// Package huggingface classifies mood text with a hosted text-classification
// model on the Hugging Face Inference API.
package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/ewilliams-labs/moodreel/internal/core/domain"
	"github.com/ewilliams-labs/moodreel/internal/core/ports"
)

const (
	DefaultBaseURL = "https://api-inference.huggingface.co/models"
	DefaultModel   = "j-hartmann/emotion-english-distilroberta-base"
	topK           = 7
)

// Client calls a text-classification model.
type Client struct {
	httpClient *http.Client
	endpoint   string
}

var _ ports.MoodClassifier = (*Client)(nil)

type classifyRequest struct {
	Inputs     string         `json:"inputs"`
	Parameters map[string]int `json:"parameters,omitempty"`
	Options    map[string]any `json:"options,omitempty"`
}

type labelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// NewClient builds a client. A non-empty token is sent as a bearer token
// through an oauth2 static token source.
func NewClient(ctx context.Context, baseURL, model, token string, timeout time.Duration) *Client {
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = DefaultModel
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	httpClient := &http.Client{Timeout: timeout}
	if token != "" {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, httpClient)
		httpClient = oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}))
		httpClient.Timeout = timeout
	}
	return &Client{
		httpClient: httpClient,
		endpoint:   baseURL + "/" + model,
	}
}

// Classify returns the model's label scores, highest first.
func (c *Client) Classify(ctx context.Context, text string) ([]domain.MoodSignal, error) {
	body, err := json.Marshal(classifyRequest{
		Inputs:     text,
		Parameters: map[string]int{"top_k": topK},
		Options:    map[string]any{"wait_for_model": false},
	})
	if err != nil {
		return nil, fmt.Errorf("huggingface: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("huggingface: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Single attempt: a cold model (503) falls back to keyword scoring.
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("huggingface: request failed: %w", err)
	}
	defer resp.Body.Close()

	var raw json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("huggingface: decode response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		var e errorResponse
		_ = json.Unmarshal(raw, &e)
		return nil, fmt.Errorf("huggingface: status %d: %s", resp.StatusCode, e.Error)
	}

	scores, err := decodeScores(raw)
	if err != nil {
		return nil, err
	}
	signals := make([]domain.MoodSignal, 0, len(scores))
	for _, s := range scores {
		if s.Score <= 0 {
			continue
		}
		signals = append(signals, domain.MoodSignal{Label: strings.ToLower(s.Label), Confidence: math.Min(s.Score, 1)})
	}
	if len(signals) == 0 {
		return nil, fmt.Errorf("huggingface: no labels in response")
	}
	return signals, nil
}

// decodeScores accepts both the nested [[...]] shape returned for a single
// input and a flat list.
func decodeScores(raw json.RawMessage) ([]labelScore, error) {
	var nested [][]labelScore
	if err := json.Unmarshal(raw, &nested); err == nil {
		if len(nested) == 0 {
			return nil, nil
		}
		return nested[0], nil
	}
	var flat []labelScore
	if err := json.Unmarshal(raw, &flat); err != nil {
		return nil, fmt.Errorf("huggingface: decode labels: %w", err)
	}
	return flat, nil
}
