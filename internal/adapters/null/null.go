// Package null provides capability adapters for backends that are switched
// off. Every call reports ports.ErrCapabilityUnavailable.
package null

import (
	"context"
	"math/rand"

	"github.com/ewilliams-labs/moodreel/internal/core/domain"
	"github.com/ewilliams-labs/moodreel/internal/core/ports"
)

type Classifier struct{}

func (Classifier) Classify(ctx context.Context, text string) ([]domain.MoodSignal, error) {
	return nil, ports.ErrCapabilityUnavailable
}

type Generator struct{}

func (Generator) Generate(ctx context.Context, prompt string, params domain.GenerationParams) (string, error) {
	return "", ports.ErrCapabilityUnavailable
}

type Renderer struct{}

func (Renderer) Render(ctx context.Context, spec domain.PosterSpec, rng *rand.Rand) ([]byte, error) {
	return nil, ports.ErrCapabilityUnavailable
}

var (
	_ ports.MoodClassifier = Classifier{}
	_ ports.TextGenerator  = Generator{}
	_ ports.PosterRenderer = Renderer{}
)
