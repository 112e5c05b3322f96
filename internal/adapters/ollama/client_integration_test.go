package ollama

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/ewilliams-labs/moodreel/internal/core/domain"
)

// TestClient_Integration tests against a live Ollama instance.
// This test is skipped unless RUN_AI_TESTS=true is set.
func TestClient_Integration(t *testing.T) {
	if os.Getenv("RUN_AI_TESTS") != "true" {
		t.Skip("Skipping AI-dependent test (set RUN_AI_TESTS=true to enable)")
	}

	ollamaHost := os.Getenv("OLLAMA_HOST")
	if ollamaHost == "" {
		ollamaHost = "http://localhost:11434"
	}

	client := NewClient(ollamaHost, os.Getenv("OLLAMA_MODEL"), 2*time.Minute)

	tests := []struct {
		name    string
		message string
	}{
		{name: "Happy text", message: "I feel incredibly joyful and optimistic today!"},
		{name: "Anxious text", message: "My stomach is in knots before the interview"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signals, err := client.Classify(context.Background(), tt.message)
			if err != nil {
				t.Fatalf("Classify failed: %v", err)
			}
			t.Logf("signals: %+v", signals)
		})
	}

	t.Run("Generate", func(t *testing.T) {
		text, err := client.Generate(context.Background(), "Write a two-line comedy scene.", domain.GenerationParams{MaxTokens: 120, Temperature: 0.8})
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if text == "" {
			t.Fatal("expected text")
		}
	})
}
