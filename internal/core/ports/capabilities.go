package ports

import (
	"context"
	"errors"
	"math/rand"

	"github.com/ewilliams-labs/moodreel/internal/core/domain"
)

// ErrCapabilityUnavailable reports that an optional model backend is not configured.
var ErrCapabilityUnavailable = errors.New("capability unavailable")

// MoodClassifier turns text into ranked mood signals.
type MoodClassifier interface {
	Classify(ctx context.Context, text string) ([]domain.MoodSignal, error)
}

// TextGenerator completes a prompt.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string, params domain.GenerationParams) (string, error)
}

// PosterRenderer draws a poster image and returns encoded PNG bytes.
type PosterRenderer interface {
	Render(ctx context.Context, spec domain.PosterSpec, rng *rand.Rand) ([]byte, error)
}
